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

package gamma

import (
	"errors"
	"math"
	"testing"

	"github.com/ZelongGuo/seislip/core/logger"
)

var testParams = ImageParameters{
	RangeSamples: 2,
	AzimuthLines: 2,
	CornerLat:    10.0,
	CornerLon:    20.0,
	PostLat:      -0.001,
	PostLon:      0.001,
	DatumName:    "WGS 84",
}

// Fake projection capability, deterministic and trivially checkable
func fakeProject(lon float64, lat float64) (float64, float64) {
	return lon - 20, lat - 10
}

func makeTestTriplet() (*Raster, *Raster, *Raster) {
	phase := NewRaster(2, 2)
	phase.Values[0][0] = 0 // no-data sentinel
	phase.Values[0][1] = math.Pi
	phase.Values[1][0] = math.Pi / 2
	phase.Values[1][1] = -math.Pi / 2

	azimuth := NewRaster(2, 2)
	incidence := NewRaster(2, 2)
	for j := 0; j < 2; j++ {
		for i := 0; i < 2; i++ {
			azimuth.Values[j][i] = 0.1
			incidence.Values[j][i] = math.Pi / 4
		}
	}
	return phase, azimuth, incidence
}

func TestGeocodeEndToEnd(t *testing.T) {
	phase, azimuth, incidence := makeTestTriplet()

	data, err := Geocode(phase, azimuth, incidence, testParams, "Sentinel-1", 1, fakeProject, &logger.NullLogger{})
	if err != nil {
		t.Fatalf("expected geocode to succeed, got: %v", err)
	}

	for _, name := range []string{ChannelLon, ChannelLat, ChannelX, ChannelY, ChannelPhase, ChannelLOS, ChannelAzimuth, ChannelIncidence} {
		channel, err := data.Channel(name)
		if err != nil {
			t.Fatalf("channel %v: %v", name, err)
		}
		if len(channel.Values) != 4 {
			t.Errorf("channel %v has %v values", name, len(channel.Values))
		}
	}

	phaseCh, _ := data.Channel(ChannelPhase)
	losCh, _ := data.Channel(ChannelLOS)
	aziCh, _ := data.Channel(ChannelAzimuth)
	incCh, _ := data.Channel(ChannelIncidence)

	// Pixel 0 had phase exactly 0: all three physical channels are masked
	if !math.IsNaN(phaseCh.Values[0]) || !math.IsNaN(aziCh.Values[0]) || !math.IsNaN(incCh.Values[0]) || !math.IsNaN(losCh.Values[0]) {
		t.Errorf("pixel 0 should be NaN in phase/azi/inc/los, got %v/%v/%v/%v",
			phaseCh.Values[0], aziCh.Values[0], incCh.Values[0], losCh.Values[0])
	}

	// Flatten order is azimuth line outer: pixel 1 is phase.Values[1][0]
	wantPhase := []float64{math.Pi / 2, math.Pi, -math.Pi / 2}
	wavelength := 299792458.0 / 5.40500045433e9
	for i, want := range wantPhase {
		if phaseCh.Values[i+1] != want {
			t.Errorf("phase[%v] = %v, want %v", i+1, phaseCh.Values[i+1], want)
		}
		wantLOS := -(want / (2 * math.Pi) * wavelength / 2)
		if math.Abs(losCh.Values[i+1]-wantLOS) > 1e-15 {
			t.Errorf("los[%v] = %v, want %v", i+1, losCh.Values[i+1], wantLOS)
		}
	}

	lonCh, _ := data.Channel(ChannelLon)
	latCh, _ := data.Channel(ChannelLat)
	wantLon := []float64{20.0, 20.001, 20.0, 20.001}
	wantLat := []float64{10.0, 10.0, 9.999, 9.999}
	for i := range wantLon {
		if math.Abs(lonCh.Values[i]-wantLon[i]) > 1e-12 || math.Abs(latCh.Values[i]-wantLat[i]) > 1e-12 {
			t.Errorf("point %v at (%v, %v), want (%v, %v)", i, lonCh.Values[i], latCh.Values[i], wantLon[i], wantLat[i])
		}
	}

	// x/y went through the projection capability
	xCh, _ := data.Channel(ChannelX)
	yCh, _ := data.Channel(ChannelY)
	for i := range wantLon {
		if math.Abs(xCh.Values[i]-(wantLon[i]-20)) > 1e-12 || math.Abs(yCh.Values[i]-(wantLat[i]-10)) > 1e-12 {
			t.Errorf("point %v projected to (%v, %v)", i, xCh.Values[i], yCh.Values[i])
		}
	}

	// Unit tags are fixed
	wantUnits := map[string]string{
		ChannelLon: UnitDegree, ChannelLat: UnitDegree,
		ChannelX: UnitKm, ChannelY: UnitKm,
		ChannelPhase: UnitRadian, ChannelLOS: UnitMetre,
		ChannelAzimuth: UnitDegree, ChannelIncidence: UnitDegree,
	}
	for name, unit := range wantUnits {
		channel, _ := data.Channel(name)
		if channel.Unit != unit {
			t.Errorf("channel %v tagged %q, want %q", name, channel.Unit, unit)
		}
	}
}

func TestGeocodeDecimation(t *testing.T) {
	params := ImageParameters{
		RangeSamples: 3,
		AzimuthLines: 3,
		CornerLat:    10.0,
		CornerLon:    20.0,
		PostLat:      -0.001,
		PostLon:      0.001,
	}

	phase := NewRaster(3, 3)
	azimuth := NewRaster(3, 3)
	incidence := NewRaster(3, 3)
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			phase.Values[j][i] = 1
		}
	}

	data, err := Geocode(phase, azimuth, incidence, params, "s1", 2, fakeProject, &logger.NullLogger{})
	if err != nil {
		t.Fatal(err)
	}

	// ceil(9/2) = 5 points, and point 0 is always pixel 0
	if data.PointCount() != 5 {
		t.Errorf("got %v points, want 5", data.PointCount())
	}
	lonCh, _ := data.Channel(ChannelLon)
	latCh, _ := data.Channel(ChannelLat)
	if lonCh.Values[0] != 20.0 || latCh.Values[0] != 10.0 {
		t.Errorf("point 0 at (%v, %v), want the corner", lonCh.Values[0], latCh.Values[0])
	}

	// Pixel indices kept are 0, 2, 4, 6, 8
	wantLon := []float64{20.0, 20.002, 20.001, 20.0, 20.002}
	wantLat := []float64{10.0, 10.0, 9.999, 9.998, 9.998}
	for i := range wantLon {
		if math.Abs(lonCh.Values[i]-wantLon[i]) > 1e-12 || math.Abs(latCh.Values[i]-wantLat[i]) > 1e-12 {
			t.Errorf("point %v at (%v, %v), want (%v, %v)", i, lonCh.Values[i], latCh.Values[i], wantLon[i], wantLat[i])
		}
	}
}

func TestGeocodeDimensionMismatch(t *testing.T) {
	phase, azimuth, _ := makeTestTriplet()
	incidence := NewRaster(3, 2) // disagrees with params

	_, err := Geocode(phase, azimuth, incidence, testParams, "Sentinel-1", 1, fakeProject, &logger.NullLogger{})

	var dimErr *DimensionMismatchError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected DimensionMismatchError, got: %v", err)
	}
	if dimErr.Name != "incidence" {
		t.Errorf("mismatch attributed to %v", dimErr.Name)
	}
}

func TestGeocodeDimensionMismatchNamesFirstBadRaster(t *testing.T) {
	// All three disagree, the error must always blame phase
	phase := NewRaster(4, 4)
	azimuth := NewRaster(5, 5)
	incidence := NewRaster(6, 6)

	for run := 0; run < 20; run++ {
		_, err := Geocode(phase, azimuth, incidence, testParams, "Sentinel-1", 1, fakeProject, &logger.NullLogger{})

		var dimErr *DimensionMismatchError
		if !errors.As(err, &dimErr) {
			t.Fatalf("expected DimensionMismatchError, got: %v", err)
		}
		if dimErr.Name != "phase" {
			t.Fatalf("run %v attributed mismatch to %v, want phase", run, dimErr.Name)
		}
		if dimErr.GotWidth != 4 || dimErr.GotHeight != 4 {
			t.Fatalf("run %v reported %vx%v, want 4x4", run, dimErr.GotWidth, dimErr.GotHeight)
		}
	}
}

func TestGeocodeUnsupportedSensor(t *testing.T) {
	phase, azimuth, incidence := makeTestTriplet()

	data, err := Geocode(phase, azimuth, incidence, testParams, "Envisat", 1, fakeProject, &logger.NullLogger{})

	var sensorErr *UnsupportedSensorError
	if !errors.As(err, &sensorErr) {
		t.Fatalf("expected UnsupportedSensorError, got: %v", err)
	}
	if data != nil {
		t.Errorf("failed geocode should publish no dataset")
	}
}

func TestGeocodeBadStride(t *testing.T) {
	phase, azimuth, incidence := makeTestTriplet()

	_, err := Geocode(phase, azimuth, incidence, testParams, "Sentinel-1", 0, fakeProject, &logger.NullLogger{})

	var argErr *InvalidArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected InvalidArgumentError, got: %v", err)
	}
}

func TestDatasetUnknownChannel(t *testing.T) {
	phase, azimuth, incidence := makeTestTriplet()

	data, err := Geocode(phase, azimuth, incidence, testParams, "Sentinel-1", 1, fakeProject, &logger.NullLogger{})
	if err != nil {
		t.Fatal(err)
	}

	_, err = data.Channel("Ue")

	var argErr *InvalidArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected InvalidArgumentError, got: %v", err)
	}
}
