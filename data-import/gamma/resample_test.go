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
)

func makeRampRaster(rangeSamples int, azimuthLines int) *Raster {
	r := NewRaster(rangeSamples, azimuthLines)
	for j := 0; j < rangeSamples; j++ {
		for i := 0; i < azimuthLines; i++ {
			r.Values[j][i] = 2*float64(j) + 3*float64(i)
		}
	}
	return r
}

func TestResampleIdentity(t *testing.T) {
	r := makeRampRaster(4, 5)

	out, err := Resample(r, 1)
	if err != nil {
		t.Fatalf("factor 1 should be identity, got: %v", err)
	}
	if out != r {
		t.Errorf("factor 1 should return the input unchanged")
	}
}

func TestResampleFactorTwo(t *testing.T) {
	r := makeRampRaster(9, 7)

	out, err := Resample(r, 2)
	if err != nil {
		t.Fatalf("expected resample to succeed, got: %v", err)
	}

	if out.RangeSamples != 4 || out.AzimuthLines != 3 {
		t.Fatalf("got dimensions %vx%v, want 4x3", out.RangeSamples, out.AzimuthLines)
	}

	// The coarse grid points sit on original samples, and a cubic spline
	// passes through its knots, so values must match the original grid
	for j := 0; j < out.RangeSamples; j++ {
		for i := 0; i < out.AzimuthLines; i++ {
			want := r.Values[j*2][i*2]
			if math.Abs(out.Values[j][i]-want) > 1e-9 {
				t.Errorf("Values[%v][%v] = %v, want %v", j, i, out.Values[j][i], want)
			}
		}
	}
}

func TestResampleBadFactor(t *testing.T) {
	r := makeRampRaster(4, 4)

	for _, factor := range []int{0, -2} {
		_, err := Resample(r, factor)

		var argErr *InvalidArgumentError
		if !errors.As(err, &argErr) {
			t.Errorf("factor %v: expected InvalidArgumentError, got: %v", factor, err)
		}
	}
}

func TestResampleFactorTooLarge(t *testing.T) {
	r := makeRampRaster(4, 4)

	_, err := Resample(r, 4)

	var argErr *InvalidArgumentError
	if !errors.As(err, &argErr) {
		t.Errorf("expected InvalidArgumentError for 1-sample output, got: %v", err)
	}
}
