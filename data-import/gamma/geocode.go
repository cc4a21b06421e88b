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
	"fmt"
	"math"

	"github.com/ZelongGuo/seislip/core/logger"
)

// Geocode - turns the three co-registered rasters of one interferogram into
// a geolocated point dataset:
//
//  1. pixels with phase exactly 0 are "no data" and get masked to NaN in
//     phase, azimuth and incidence together
//  2. rasters are flattened in file raster-scan order, then decimated keeping
//     every downsample-th point starting at index 0
//  3. phase becomes LOS displacement, angles become geodetic degrees
//  4. per-pixel lon/lat come from the corner coordinate and pixel spacing,
//     flattened and decimated the same way
//  5. every surviving (lon, lat) is projected to planar (x, y) km
//
// Fails with a DimensionMismatchError if any raster disagrees with the
// parameter geometry. All channels of the result have exactly
// ceil(width*height/downsample) points.
func Geocode(phase *Raster, azimuth *Raster, incidence *Raster, params ImageParameters, satellite string, downsample int, project ProjectFunc, jobLog logger.ILogger) (*GeoPointDataset, error) {
	if downsample <= 0 {
		return nil, &InvalidArgumentError{Reason: fmt.Sprintf("downsample stride must be positive, got %v", downsample)}
	}

	// Check the sensor before any work happens so an unknown satellite fails
	// before the rasters get masked
	if _, err := RadarFrequency(satellite); err != nil {
		return nil, err
	}

	// Checked in a fixed order so the error always names the same raster
	// when several disagree
	rasters := []struct {
		name string
		r    *Raster
	}{
		{"phase", phase},
		{"azimuth", azimuth},
		{"incidence", incidence},
	}
	for _, item := range rasters {
		if item.r.RangeSamples != params.RangeSamples || item.r.AzimuthLines != params.AzimuthLines {
			return nil, &DimensionMismatchError{
				Name:       item.name,
				GotWidth:   item.r.RangeSamples,
				GotHeight:  item.r.AzimuthLines,
				WantWidth:  params.RangeSamples,
				WantHeight: params.AzimuthLines,
			}
		}
	}

	// Zero phase means no data, mask all three channels at that pixel
	for j := 0; j < params.RangeSamples; j++ {
		for i := 0; i < params.AzimuthLines; i++ {
			if phase.Values[j][i] == 0 {
				phase.Values[j][i] = math.NaN()
				azimuth.Values[j][i] = math.NaN()
				incidence.Values[j][i] = math.NaN()
			}
		}
	}

	phaseFlat := decimate(phase.Flatten(), downsample)
	aziFlat := decimate(azimuth.Flatten(), downsample)
	incFlat := decimate(incidence.Flatten(), downsample)

	jobLog.Infof("Keeping every %v-th point, %v points per channel", downsample, len(phaseFlat))

	los, err := PhaseToLOS(phaseFlat, satellite)
	if err != nil {
		return nil, err
	}

	aziDeg := AzimuthToDegrees(aziFlat)
	incDeg := IncidenceToDegrees(incFlat)

	// Pixel (j, i) sits at corner + pixel spacing * index, flattened the same
	// way as the rasters so everything stays positionally aligned
	lons := make([]float64, 0, len(phaseFlat))
	lats := make([]float64, 0, len(phaseFlat))
	idx := 0
	for i := 0; i < params.AzimuthLines; i++ {
		for j := 0; j < params.RangeSamples; j++ {
			if idx%downsample == 0 {
				lons = append(lons, params.CornerLon+float64(j)*params.PostLon)
				lats = append(lats, params.CornerLat+float64(i)*params.PostLat)
			}
			idx++
		}
	}

	xs := make([]float64, len(lons))
	ys := make([]float64, len(lats))
	for i := range lons {
		xs[i], ys[i] = project(lons[i], lats[i])
	}

	result := &GeoPointDataset{
		Channels: map[string]PointChannel{
			ChannelLon:       {Values: lons, Unit: UnitDegree},
			ChannelLat:       {Values: lats, Unit: UnitDegree},
			ChannelX:         {Values: xs, Unit: UnitKm},
			ChannelY:         {Values: ys, Unit: UnitKm},
			ChannelPhase:     {Values: phaseFlat, Unit: UnitRadian},
			ChannelLOS:       {Values: los, Unit: UnitMetre},
			ChannelAzimuth:   {Values: aziDeg, Unit: UnitDegree},
			ChannelIncidence: {Values: incDeg, Unit: UnitDegree},
		},
	}

	// Postcondition: positional alignment requires equal channel lengths
	expected := result.PointCount()
	for _, name := range result.ChannelNames() {
		channel, _ := result.Channel(name)
		if len(channel.Values) != expected {
			return nil, fmt.Errorf("channel %v has %v points, expected %v", name, len(channel.Values), expected)
		}
	}

	return result, nil
}

func decimate(values []float64, stride int) []float64 {
	result := make([]float64, 0, (len(values)+stride-1)/stride)
	for i := 0; i < len(values); i += stride {
		result = append(result, values[i])
	}
	return result
}
