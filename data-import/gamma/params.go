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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ZelongGuo/seislip/core/logger"
)

// Reading of GAMMA parameter files (eg *.utm.dem.par). These are plain text,
// one "key: value" per line, and describe the geometry of the co-registered
// raster files sitting next to them.

// Earth circumference in metres, used to express pixel spacing as an
// approximate ground resolution
const earthCircumferenceM = 40075017

// ImageParameters - raster geometry and geo-referencing as declared by a
// GAMMA parameter file. Treated as immutable once returned.
type ImageParameters struct {
	RangeSamples int     // width: samples per azimuth line
	AzimuthLines int     // nlines:
	CornerLat    float64 // degrees
	CornerLon    float64 // degrees
	PostLat      float64 // degrees per pixel along latitude axis, signed
	PostLon      float64 // degrees per pixel along longitude axis, signed
	DatumName    string  // ellipsoid_name:, optional, usually "WGS 84"
}

// PostArcsec - pixel spacing along longitude in arc-seconds. Always derived
// from PostLon so it can't drift after a resample.
func (p ImageParameters) PostArcsec() float64 {
	return p.PostLon * 3600
}

// GroundResolutionM - approximate ground resolution in metres
func (p ImageParameters) GroundResolutionM() float64 {
	return p.PostArcsec() * earthCircumferenceM / 360 / 3600
}

// ExpectedFileSize - the byte length every co-registered raster file must have
func (p ImageParameters) ExpectedFileSize() int64 {
	return int64(p.RangeSamples) * int64(p.AzimuthLines) * 4
}

// Resampled - the parameters describing a raster resampled by the given
// factor: dimensions shrink by integer division, pixel spacing grows
func (p ImageParameters) Resampled(factor int) ImageParameters {
	resampled := p
	resampled.RangeSamples = p.RangeSamples / factor
	resampled.AzimuthLines = p.AzimuthLines / factor
	resampled.PostLat = p.PostLat * float64(factor)
	resampled.PostLon = p.PostLon * float64(factor)
	return resampled
}

// The keys that must all be present for a parameter file to be usable
var requiredParamKeys = []string{"width", "nlines", "corner_lat", "corner_lon", "post_lat", "post_lon"}

// ReadImageParameters - scans a GAMMA parameter file and returns the image
// geometry. Keys are matched by line-start prefix including the colon.
// Missing required keys are only reported after the whole file has been
// scanned, so a ParseError listing several keys means none of the record is
// usable. ellipsoid_name is optional.
func ReadImageParameters(path string, jobLog logger.ILogger) (ImageParameters, error) {
	result := ImageParameters{}

	file, err := os.Open(path)
	if err != nil {
		return result, &ParseError{Path: path, Err: err}
	}
	defer file.Close()

	found := map[string]bool{}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "width:") {
			result.RangeSamples, err = paramIntValue(line)
			found["width"] = err == nil
		} else if strings.HasPrefix(line, "nlines:") {
			result.AzimuthLines, err = paramIntValue(line)
			found["nlines"] = err == nil
		} else if strings.HasPrefix(line, "corner_lat:") {
			result.CornerLat, err = paramFloatValue(line)
			found["corner_lat"] = err == nil
		} else if strings.HasPrefix(line, "corner_lon:") {
			result.CornerLon, err = paramFloatValue(line)
			found["corner_lon"] = err == nil
		} else if strings.HasPrefix(line, "post_lat:") {
			result.PostLat, err = paramFloatValue(line)
			found["post_lat"] = err == nil
		} else if strings.HasPrefix(line, "post_lon:") {
			result.PostLon, err = paramFloatValue(line)
			found["post_lon"] = err == nil
		} else if strings.HasPrefix(line, "ellipsoid_name:") {
			result.DatumName = strings.TrimSpace(paramValue(line))
		}
	}

	if err := scanner.Err(); err != nil {
		return ImageParameters{}, &ParseError{Path: path, Err: err}
	}

	missing := []string{}
	for _, key := range requiredParamKeys {
		if !found[key] {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return ImageParameters{}, &ParseError{Path: path, Missing: missing}
	}

	jobLog.Infof("Range samples: %v, azimuth lines: %v", result.RangeSamples, result.AzimuthLines)
	jobLog.Infof("Pixel resolution is %.3f arc-second, ~%.3f meters", result.PostArcsec(), result.GroundResolutionM())

	return result, nil
}

// Everything after the first colon, untrimmed
func paramValue(line string) string {
	colIdx := strings.Index(line, ":")
	return line[colIdx+1:]
}

func paramIntValue(line string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(paramValue(line)))
}

// Values like "post_lon: 0.0002777778  decimal degrees" carry a trailing unit
// annotation, so only the first whitespace-delimited token counts
func paramFloatValue(line string) (float64, error) {
	fields := strings.Fields(paramValue(line))
	if len(fields) < 1 {
		return 0, fmt.Errorf("no value on line: %v", line)
	}
	return strconv.ParseFloat(fields[0], 64)
}
