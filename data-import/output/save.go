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

package output

import (
	"path"

	"github.com/pkg/errors"

	"github.com/ZelongGuo/seislip/core/fileaccess"
	"github.com/ZelongGuo/seislip/core/logger"
	"github.com/ZelongGuo/seislip/data-import/insar"
)

// File names written per dataset
const (
	PointsFileName  = "points.json"
	SummaryFileName = "summary.json"
)

// DatasetSummary - what downstream tooling reads before deciding to pull the
// full point file
type DatasetSummary struct {
	Name       string   `json:"name"`
	Satellite  string   `json:"satellite"`
	DatumName  string   `json:"datum_name"`
	PointCount int      `json:"point_count"`
	Channels   []string `json:"channels"`
}

// PointDatasetSaver - writes an ingested dataset out through a FileAccess,
// so the same code lands output locally or in a bucket
type PointDatasetSaver struct {
}

func (s PointDatasetSaver) Save(scene *insar.InSAR, fs fileaccess.FileAccess, bucket string, outPath string, jobLog logger.ILogger) error {
	data := scene.Data()
	if data == nil {
		return errors.Errorf("no dataset to save for %v", scene.Name)
	}
	meta := scene.Meta()

	summary := DatasetSummary{
		Name:       scene.Name,
		Satellite:  meta.Satellite,
		DatumName:  meta.DatumName,
		PointCount: data.PointCount(),
		Channels:   data.ChannelNames(),
	}

	pointsPath := path.Join(outPath, PointsFileName)
	jobLog.Infof("Writing %v points to %v...", summary.PointCount, pointsPath)
	if err := fs.WriteJSON(bucket, pointsPath, data); err != nil {
		return errors.Wrapf(err, "writing %v", pointsPath)
	}

	summaryPath := path.Join(outPath, SummaryFileName)
	if err := fs.WriteJSON(bucket, summaryPath, summary); err != nil {
		return errors.Wrapf(err, "writing %v", summaryPath)
	}

	return nil
}
