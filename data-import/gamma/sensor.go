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

import "strings"

// Radar carrier frequencies per satellite. This is a fixed table, adding a
// sensor is a code change not a runtime concern.

// Speed of light in m/s
const speedOfLight = 299792458.0

// RadarFrequency - looks up the radar carrier frequency in Hz for a satellite
// name. Sentinel-1 (alias "s1") and ALOS match case-insensitively, the ALOS-2
// beam mode names are exact strings.
func RadarFrequency(satellite string) (float64, error) {
	switch strings.ToLower(satellite) {
	case "sentinel-1", "s1":
		return 5.40500045433e9, nil
	case "alos":
		return 1.27e9, nil
	}

	switch satellite {
	case "ALOS-2/U":
		return 1.2575e9, nil
	case "ALOS-2/{F,W}":
		return 1.2365e9, nil
	}

	return 0, &UnsupportedSensorError{Satellite: satellite}
}

// Wavelength - radar carrier wavelength in metres
func Wavelength(satellite string) (float64, error) {
	freq, err := RadarFrequency(satellite)
	if err != nil {
		return 0, err
	}
	return speedOfLight / freq, nil
}
