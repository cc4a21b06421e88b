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

import "math"

// Conversion of raw radar measurements to physical quantities.

// PhaseToLOS - converts wrapped interferometric phase (radians) to
// line-of-sight displacement in metres for the given satellite:
//
//	los = -(phase / 2pi * wavelength / 2)
//
// The sign convention (positive phase -> negative LOS, motion toward the
// sensor) is fixed and must not be altered. NaN phase stays NaN.
func PhaseToLOS(phase []float64, satellite string) ([]float64, error) {
	wavelength, err := Wavelength(satellite)
	if err != nil {
		return nil, err
	}

	los := make([]float64, len(phase))
	for i, p := range phase {
		los[i] = -(p / (2 * math.Pi) * wavelength / 2)
	}
	return los, nil
}

// AzimuthToDegrees - converts SAR-convention azimuth angles (radians) to
// geodetic degrees. The affine transform encodes the sensor convention,
// reproduce it verbatim.
func AzimuthToDegrees(azimuth []float64) []float64 {
	result := make([]float64, len(azimuth))
	for i, a := range azimuth {
		result[i] = -180 - a*180/math.Pi
	}
	return result
}

// IncidenceToDegrees - converts SAR-convention incidence angles (radians) to
// geodetic degrees
func IncidenceToDegrees(incidence []float64) []float64 {
	result := make([]float64, len(incidence))
	for i, v := range incidence {
		result[i] = 90 - v*180/math.Pi
	}
	return result
}
