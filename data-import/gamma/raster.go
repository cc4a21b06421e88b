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
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/ZelongGuo/seislip/core/logger"
)

// GAMMA rasters are flat binary files with no header: width*height big-endian
// IEEE-754 float32 values, one azimuth line at a time, width samples per line.
// On read we store them transposed, indexed [range][azimuth]. The transpose is
// part of the wire contract - every downstream flatten/geocode step assumes it.

// How often decode progress is reported, in azimuth lines
const decodeProgressLines = 500

// Raster - one decoded GAMMA image, indexed Values[rangeSample][azimuthLine]
type Raster struct {
	RangeSamples int // width
	AzimuthLines int // height
	Values       [][]float64
}

func NewRaster(rangeSamples int, azimuthLines int) *Raster {
	values := make([][]float64, rangeSamples)
	for j := range values {
		values[j] = make([]float64, azimuthLines)
	}
	return &Raster{
		RangeSamples: rangeSamples,
		AzimuthLines: azimuthLines,
		Values:       values,
	}
}

// Flatten - returns one value per pixel in raster-scan order of the original
// file (azimuth line outer, range sample inner), undoing the transpose done
// on read. Index i*width+j lines up with the geocoded coordinate arrays.
func (r *Raster) Flatten() []float64 {
	flat := make([]float64, 0, r.RangeSamples*r.AzimuthLines)
	for i := 0; i < r.AzimuthLines; i++ {
		for j := 0; j < r.RangeSamples; j++ {
			flat = append(flat, r.Values[j][i])
		}
	}
	return flat
}

// Encode - writes the raster back out in the file byte layout it was read
// from. Decode then Encode reproduces the original file bit-for-bit.
func (r *Raster) Encode(w io.Writer) error {
	buf := make([]byte, 4)
	for i := 0; i < r.AzimuthLines; i++ {
		for j := 0; j < r.RangeSamples; j++ {
			binary.BigEndian.PutUint32(buf, math.Float32bits(float32(r.Values[j][i])))
			if _, err := w.Write(buf); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadRaster - decodes a single raster file of the given dimensions. Fails
// with a FileError if the file can't be opened or holds fewer than
// width*height float32 values.
func ReadRaster(path string, rangeSamples int, azimuthLines int, jobLog logger.ILogger) (*Raster, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Pixel: -1, Err: err}
	}
	defer file.Close()

	result := NewRaster(rangeSamples, azimuthLines)
	reader := bufio.NewReader(file)
	buf := make([]byte, 4)

	for i := 0; i < azimuthLines; i++ {
		if i%decodeProgressLines == 0 {
			jobLog.Debugf("Decoding azimuth line %v of %v...", i, azimuthLines)
		}
		for j := 0; j < rangeSamples; j++ {
			if _, err := io.ReadFull(reader, buf); err != nil {
				return nil, &FileError{Path: path, Pixel: i*rangeSamples + j, Err: err}
			}
			result.Values[j][i] = float64(math.Float32frombits(binary.BigEndian.Uint32(buf)))
		}
	}

	return result, nil
}

// ReadRasterTriplet - decodes the three co-registered rasters of one
// interferogram (phase, azimuth angle, incidence angle) in lock-step, one
// pixel from each file per iteration. That way a truncated file is reported
// at the same pixel offset whichever of the three it is. All three files are
// held open for the duration and closed on every exit path.
func ReadRasterTriplet(phasePath string, aziPath string, incPath string, rangeSamples int, azimuthLines int, jobLog logger.ILogger) (*Raster, *Raster, *Raster, error) {
	type namedFile struct {
		path   string
		reader *bufio.Reader
		raster *Raster
	}

	files := []*namedFile{
		{path: phasePath},
		{path: aziPath},
		{path: incPath},
	}

	for _, f := range files {
		file, err := os.Open(f.path)
		if err != nil {
			return nil, nil, nil, &FileError{Path: f.path, Pixel: -1, Err: err}
		}
		defer file.Close()

		f.reader = bufio.NewReader(file)
		f.raster = NewRaster(rangeSamples, azimuthLines)
	}

	jobLog.Infof("Reading phase, azimuth and incidence images...")

	buf := make([]byte, 4)
	for i := 0; i < azimuthLines; i++ {
		if i%decodeProgressLines == 0 {
			jobLog.Debugf("Decoding azimuth line %v of %v...", i, azimuthLines)
		}
		for j := 0; j < rangeSamples; j++ {
			for _, f := range files {
				if _, err := io.ReadFull(f.reader, buf); err != nil {
					return nil, nil, nil, &FileError{Path: f.path, Pixel: i*rangeSamples + j, Err: err}
				}
				f.raster.Values[j][i] = float64(math.Float32frombits(binary.BigEndian.Uint32(buf)))
			}
		}
	}

	jobLog.Infof("Done reading %v pixels per image", rangeSamples*azimuthLines)

	return files[0].raster, files[1].raster, files[2].raster, nil
}
