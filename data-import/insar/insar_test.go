// Licensed to NASA JPL under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. NASA JPL licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package insar

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZelongGuo/seislip/core/logger"
	"github.com/ZelongGuo/seislip/data-import/gamma"
)

type gammaFixture struct {
	parFile   string
	phaseFile string
	aziFile   string
	incFile   string
}

// Writes a parameter file and a 2x2 raster triplet the way GAMMA lays them
// out on disk
func writeGammaFixture(t *testing.T) gammaFixture {
	t.Helper()
	dir := t.TempDir()

	fx := gammaFixture{
		parFile:   filepath.Join(dir, "scene.utm.dem.par"),
		phaseFile: filepath.Join(dir, "scene.unw"),
		aziFile:   filepath.Join(dir, "scene.azi"),
		incFile:   filepath.Join(dir, "scene.inc"),
	}

	par := `width: 2
nlines: 2
corner_lat:   10.0000000   decimal degrees
corner_lon:   20.0000000   decimal degrees
post_lat:   -0.0010000   decimal degrees
post_lon:    0.0010000   decimal degrees
ellipsoid_name: WGS 84
`
	if err := os.WriteFile(fx.parFile, []byte(par), 0644); err != nil {
		t.Fatal(err)
	}

	phase := gamma.NewRaster(2, 2)
	phase.Values[0][0] = 0
	phase.Values[0][1] = math.Pi
	phase.Values[1][0] = math.Pi / 2
	phase.Values[1][1] = -math.Pi / 2

	azimuth := gamma.NewRaster(2, 2)
	incidence := gamma.NewRaster(2, 2)
	for j := 0; j < 2; j++ {
		for i := 0; i < 2; i++ {
			azimuth.Values[j][i] = 0.1
			incidence.Values[j][i] = math.Pi / 4
		}
	}

	rasters := map[string]*gamma.Raster{
		fx.phaseFile: phase,
		fx.aziFile:   azimuth,
		fx.incFile:   incidence,
	}
	for path, r := range rasters {
		var buf bytes.Buffer
		if err := r.Encode(&buf); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			t.Fatal(err)
		}
	}

	return fx
}

func testProject(lon float64, lat float64) (float64, float64) {
	return lon - 20, lat - 10
}

func TestReadFromGamma(t *testing.T) {
	fx := writeGammaFixture(t)

	scene := NewInSAR("ridgecrest", testProject, &logger.NullLogger{})
	if scene.Data() != nil {
		t.Fatalf("fresh instance should hold no dataset")
	}

	err := scene.ReadFromGamma(fx.parFile, fx.phaseFile, fx.aziFile, fx.incFile, "Sentinel-1", 1)
	if err != nil {
		t.Fatalf("expected ingest to succeed, got: %v", err)
	}

	data := scene.Data()
	if data == nil {
		t.Fatal("no dataset published")
	}
	if data.PointCount() != 4 {
		t.Errorf("got %v points", data.PointCount())
	}

	phaseCh, err := data.Channel(gamma.ChannelPhase)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(phaseCh.Values[0]) {
		t.Errorf("zero-phase pixel not masked, got %v", phaseCh.Values[0])
	}
	// Raster values went through float32 on disk
	if phaseCh.Values[2] != float64(float32(math.Pi)) {
		t.Errorf("phase[2] = %v", phaseCh.Values[2])
	}

	losCh, _ := data.Channel(gamma.ChannelLOS)
	wavelength := 299792458.0 / 5.40500045433e9
	wantLOS := -(float64(float32(math.Pi)) / (2 * math.Pi) * wavelength / 2)
	if math.Abs(losCh.Values[2]-wantLOS) > 1e-15 {
		t.Errorf("los[2] = %v, want %v", losCh.Values[2], wantLOS)
	}

	meta := scene.Meta()
	if meta.Satellite != "Sentinel-1" || meta.DatumName != "WGS 84" {
		t.Errorf("got meta %+v", meta)
	}
}

func TestReadFromGammaDownsample(t *testing.T) {
	fx := writeGammaFixture(t)

	scene := NewInSAR("ridgecrest", testProject, &logger.NullLogger{})
	if err := scene.ReadFromGamma(fx.parFile, fx.phaseFile, fx.aziFile, fx.incFile, "Sentinel-1", 3); err != nil {
		t.Fatal(err)
	}

	// ceil(4/3) = 2 points
	if scene.Data().PointCount() != 2 {
		t.Errorf("got %v points", scene.Data().PointCount())
	}
}

func TestReadFromGammaAtomic(t *testing.T) {
	fx := writeGammaFixture(t)

	scene := NewInSAR("ridgecrest", testProject, &logger.NullLogger{})
	if err := scene.ReadFromGamma(fx.parFile, fx.phaseFile, fx.aziFile, fx.incFile, "Sentinel-1", 1); err != nil {
		t.Fatal(err)
	}
	published := scene.Data()
	publishedMeta := scene.Meta()

	// Second ingest fails at the raster stage: the held dataset must survive
	err := scene.ReadFromGamma(fx.parFile, filepath.Join(t.TempDir(), "missing.unw"), fx.aziFile, fx.incFile, "Sentinel-1", 1)
	if err == nil {
		t.Fatal("expected ingest of missing raster to fail")
	}

	if scene.Data() != published {
		t.Errorf("failed ingest replaced the held dataset")
	}
	if scene.Meta() != publishedMeta {
		t.Errorf("failed ingest replaced the held metadata")
	}
}

func TestReadFromGammaUnknownSatellite(t *testing.T) {
	fx := writeGammaFixture(t)

	scene := NewInSAR("ridgecrest", testProject, &logger.NullLogger{})
	err := scene.ReadFromGamma(fx.parFile, fx.phaseFile, fx.aziFile, fx.incFile, "TerraSAR-X", 1)
	if err == nil {
		t.Fatal("expected unknown satellite to fail")
	}
	if scene.Data() != nil {
		t.Errorf("failed ingest should publish nothing")
	}
}
