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
	"github.com/pkg/errors"

	"github.com/ZelongGuo/seislip/core/logger"
	"github.com/ZelongGuo/seislip/data-import/gamma"
)

// AcquisitionMeta - small metadata record published with each dataset
type AcquisitionMeta struct {
	Satellite string `json:"satellite"`
	DatumName string `json:"datum_name"`
}

// InSAR - owns the geocoded dataset of one interferogram. The map projection
// is a capability injected at construction rather than a base class: all the
// ingest needs is project(lon, lat) -> (x, y).
type InSAR struct {
	Name string

	project gamma.ProjectFunc
	jobLog  logger.ILogger

	data *gamma.GeoPointDataset
	meta AcquisitionMeta
}

func NewInSAR(name string, project gamma.ProjectFunc, jobLog logger.ILogger) *InSAR {
	return &InSAR{
		Name:    name,
		project: project,
		jobLog:  jobLog,
	}
}

// ReadFromGamma - ingests one GAMMA interferogram: parameter file, then the
// phase/azimuth/incidence rasters, then geocoding and packaging. The call is
// atomic - on any failure the previously held dataset stays untouched.
// downsample keeps every downsample-th point of the flattened rasters.
func (s *InSAR) ReadFromGamma(paraFile string, phaseFile string, aziFile string, incFile string, satellite string, downsample int) error {
	return s.ReadFromGammaResampled(paraFile, phaseFile, aziFile, incFile, satellite, 1, downsample)
}

// ReadFromGammaResampled - same as ReadFromGamma but first resamples the
// rasters by resampleFactor (bicubic surface evaluation on a coarser grid,
// pixel spacing grows accordingly). Factor 1 is a no-op.
func (s *InSAR) ReadFromGammaResampled(paraFile string, phaseFile string, aziFile string, incFile string, satellite string, resampleFactor int, downsample int) error {
	s.jobLog.Infof("Reading GAMMA files for %v...", s.Name)

	params, err := gamma.ReadImageParameters(paraFile, s.jobLog)
	if err != nil {
		return errors.Wrap(err, "reading image parameters")
	}

	phase, azimuth, incidence, err := gamma.ReadRasterTriplet(phaseFile, aziFile, incFile, params.RangeSamples, params.AzimuthLines, s.jobLog)
	if err != nil {
		return errors.Wrap(err, "reading rasters")
	}

	if resampleFactor != 1 {
		if phase, err = gamma.Resample(phase, resampleFactor); err != nil {
			return errors.Wrap(err, "resampling phase")
		}
		if azimuth, err = gamma.Resample(azimuth, resampleFactor); err != nil {
			return errors.Wrap(err, "resampling azimuth")
		}
		if incidence, err = gamma.Resample(incidence, resampleFactor); err != nil {
			return errors.Wrap(err, "resampling incidence")
		}
		params = params.Resampled(resampleFactor)
		s.jobLog.Infof("Resampled by %v, pixel resolution now %.3f arc-second, ~%.3f meters",
			resampleFactor, params.PostArcsec(), params.GroundResolutionM())
	}

	data, err := gamma.Geocode(phase, azimuth, incidence, params, satellite, downsample, s.project, s.jobLog)
	if err != nil {
		return errors.Wrap(err, "geocoding")
	}

	// Only publish once everything worked
	s.data = data
	s.meta = AcquisitionMeta{
		Satellite: satellite,
		DatumName: params.DatumName,
	}

	s.jobLog.Infof("Ingest of %v complete, %v points", s.Name, data.PointCount())
	return nil
}

// Data - the dataset from the last successful ingest, nil before that
func (s *InSAR) Data() *gamma.GeoPointDataset {
	return s.data
}

// Meta - acquisition metadata from the last successful ingest
func (s *InSAR) Meta() AcquisitionMeta {
	return s.meta
}
