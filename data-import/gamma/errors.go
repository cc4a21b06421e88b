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
	"strings"
)

// Every failure mode of the ingest pipeline gets its own error type so
// callers can tell a bad parameter file from a truncated raster without
// string matching. All of them abort the current ingest, nothing partial
// gets published.

// ParseError - parameter file could not be opened, or required keys were
// missing/unreadable after a full scan
type ParseError struct {
	Path    string
	Missing []string
	Err     error
}

func (e *ParseError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("parameter file %v missing required keys: %v", e.Path, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("failed to read parameter file %v: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FileError - raster file missing, unreadable or truncated. Pixel is the
// flattened pixel index the read failed at, or -1 if the file couldn't be
// opened at all.
type FileError struct {
	Path  string
	Pixel int
	Err   error
}

func (e *FileError) Error() string {
	if e.Pixel >= 0 {
		return fmt.Sprintf("failed to read raster %v at pixel %v: %v", e.Path, e.Pixel, e.Err)
	}
	return fmt.Sprintf("failed to open raster %v: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// DimensionMismatchError - a raster's shape disagrees with the declared
// image geometry
type DimensionMismatchError struct {
	Name       string
	GotWidth   int
	GotHeight  int
	WantWidth  int
	WantHeight int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%v raster is %vx%v, parameter file says %vx%v",
		e.Name, e.GotWidth, e.GotHeight, e.WantWidth, e.WantHeight)
}

// UnsupportedSensorError - satellite name not in the radar frequency table
type UnsupportedSensorError struct {
	Satellite string
}

func (e *UnsupportedSensorError) Error() string {
	return fmt.Sprintf("the radar frequency of satellite \"%v\" is not specified", e.Satellite)
}

// InvalidArgumentError - bad caller-supplied value, eg a non-positive
// resample factor or an unknown dataset channel name
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return e.Reason
}
