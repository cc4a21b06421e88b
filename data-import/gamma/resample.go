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

	"gonum.org/v1/gonum/interp"
)

// Resample - evaluates a bicubic-spline surface fitted over the whole raster
// on a regular grid coarsened by the given factor. Output dimensions are the
// integer floor of the input dimensions over the factor; the matching pixel
// spacing change is ImageParameters.Resampled. Note this is resampling of the
// interpolated surface, not an area average, so it does not anti-alias.
//
// The surface is built from natural cubic splines applied separably, first
// along the azimuth axis then along range. Sample points all lie inside the
// original grid so spline boundary behavior only matters for the fit, not
// for extrapolation.
func Resample(r *Raster, factor int) (*Raster, error) {
	if factor <= 0 {
		return nil, &InvalidArgumentError{Reason: fmt.Sprintf("resample factor must be positive, got %v", factor)}
	}
	if factor == 1 {
		return r, nil
	}

	newRangeSamples := r.RangeSamples / factor
	newAzimuthLines := r.AzimuthLines / factor
	if newRangeSamples < 2 || newAzimuthLines < 2 {
		return nil, &InvalidArgumentError{Reason: fmt.Sprintf("resample factor %v leaves too few samples of %vx%v raster", factor, r.RangeSamples, r.AzimuthLines)}
	}

	aziCoords := make([]float64, r.AzimuthLines)
	for i := range aziCoords {
		aziCoords[i] = float64(i)
	}
	rangeCoords := make([]float64, r.RangeSamples)
	for j := range rangeCoords {
		rangeCoords[j] = float64(j)
	}

	// First pass: interpolate each range row along the azimuth axis,
	// evaluated at the coarse azimuth positions
	intermediate := make([][]float64, r.RangeSamples)
	for j := 0; j < r.RangeSamples; j++ {
		var spline interp.NaturalCubic
		if err := spline.Fit(aziCoords, r.Values[j]); err != nil {
			return nil, err
		}

		intermediate[j] = make([]float64, newAzimuthLines)
		for i := 0; i < newAzimuthLines; i++ {
			intermediate[j][i] = spline.Predict(float64(i * factor))
		}
	}

	// Second pass: interpolate each coarse azimuth column along range
	result := NewRaster(newRangeSamples, newAzimuthLines)
	column := make([]float64, r.RangeSamples)
	for i := 0; i < newAzimuthLines; i++ {
		for j := 0; j < r.RangeSamples; j++ {
			column[j] = intermediate[j][i]
		}

		var spline interp.NaturalCubic
		if err := spline.Fit(rangeCoords, column); err != nil {
			return nil, err
		}

		for j := 0; j < newRangeSamples; j++ {
			result.Values[j][i] = spline.Predict(float64(j * factor))
		}
	}

	return result, nil
}
