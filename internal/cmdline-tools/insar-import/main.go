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

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/spf13/viper"

	"github.com/ZelongGuo/seislip/core/fileaccess"
	"github.com/ZelongGuo/seislip/core/logger"
	"github.com/ZelongGuo/seislip/core/projection"
	"github.com/ZelongGuo/seislip/data-import/gamma"
	"github.com/ZelongGuo/seislip/data-import/insar"
	"github.com/ZelongGuo/seislip/data-import/output"
)

// Converts one GAMMA-processed interferogram (parameter file + phase/azimuth/
// incidence rasters) into a geolocated point dataset and writes it to a local
// directory or an s3:// destination.
//
// Defaults can be put in an insar-import.toml next to the binary or in the
// working directory; flags override the file.

type importConfig struct {
	Name           string
	ParFile        string
	PhaseFile      string
	AziFile        string
	IncFile        string
	Satellite      string
	Downsample     int
	ResampleFactor int
	OriginLon      float64
	OriginLat      float64
	OutPath        string
}

// loadConfig reads insar-import.toml from /etc/insar-import or the working
// directory if one exists. Anything not set there keeps its default.
func loadConfig() importConfig {
	cfg := importConfig{}

	viper.SetConfigName("insar-import")
	viper.AddConfigPath("/etc/insar-import")
	viper.AddConfigPath(".")

	viper.SetDefault("satellite", "Sentinel-1")
	viper.SetDefault("downsample", 3)
	viper.SetDefault("resample_factor", 1)
	viper.SetDefault("origin_lon", 999) // sentinel: default to the raster corner
	viper.SetDefault("origin_lat", 999)

	// A missing config file is fine, flags may cover everything
	_ = viper.ReadInConfig()

	cfg.Name = viper.GetString("name")
	cfg.ParFile = viper.GetString("par_file")
	cfg.PhaseFile = viper.GetString("phase_file")
	cfg.AziFile = viper.GetString("azi_file")
	cfg.IncFile = viper.GetString("inc_file")
	cfg.Satellite = viper.GetString("satellite")
	cfg.Downsample = viper.GetInt("downsample")
	cfg.ResampleFactor = viper.GetInt("resample_factor")
	cfg.OriginLon = viper.GetFloat64("origin_lon")
	cfg.OriginLat = viper.GetFloat64("origin_lat")
	cfg.OutPath = viper.GetString("out_path")

	return cfg
}

func main() {
	fmt.Println("================================")
	fmt.Println("=  GAMMA InSAR point importer  =")
	fmt.Println("================================")

	cfg := loadConfig()

	flag.StringVar(&cfg.Name, "name", cfg.Name, "Dataset name, used in output summary")
	flag.StringVar(&cfg.ParFile, "par", cfg.ParFile, "Path to GAMMA parameter file (eg *.utm.dem.par)")
	flag.StringVar(&cfg.PhaseFile, "phase", cfg.PhaseFile, "Path to phase raster")
	flag.StringVar(&cfg.AziFile, "azi", cfg.AziFile, "Path to azimuth angle raster")
	flag.StringVar(&cfg.IncFile, "inc", cfg.IncFile, "Path to incidence angle raster")
	flag.StringVar(&cfg.Satellite, "satellite", cfg.Satellite, "Satellite the scene was acquired by, eg Sentinel-1, ALOS")
	flag.IntVar(&cfg.Downsample, "downsample", cfg.Downsample, "Keep every n-th point of the flattened rasters")
	flag.IntVar(&cfg.ResampleFactor, "resample", cfg.ResampleFactor, "Bicubic resample factor applied before geocoding, 1 = off")
	flag.Float64Var(&cfg.OriginLon, "lon0", cfg.OriginLon, "Projection origin longitude, defaults to raster corner")
	flag.Float64Var(&cfg.OriginLat, "lat0", cfg.OriginLat, "Projection origin latitude, defaults to raster corner")
	flag.StringVar(&cfg.OutPath, "outpath", cfg.OutPath, "Output directory, or s3://bucket/path")
	flag.Parse()

	jobLog := &logger.StdOutLogger{}
	jobLog.SetLogLevel(logger.LogDebug)

	if len(cfg.ParFile) <= 0 || len(cfg.PhaseFile) <= 0 || len(cfg.AziFile) <= 0 || len(cfg.IncFile) <= 0 || len(cfg.OutPath) <= 0 {
		fmt.Println("Required: -par, -phase, -azi, -inc, -outpath (or the equivalent insar-import.toml keys)")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if len(cfg.Name) <= 0 {
		cfg.Name = strings.TrimSuffix(cfg.PhaseFile, ".unw")
	}

	// The projection origin defaults to the raster corner, which needs the
	// parameter file. It gets parsed again during ingest, that's cheap.
	if cfg.OriginLon > 180 || cfg.OriginLat > 90 {
		params, err := gamma.ReadImageParameters(cfg.ParFile, &logger.NullLogger{})
		if err != nil {
			jobLog.Errorf("%v", err)
			os.Exit(1)
		}
		cfg.OriginLon = params.CornerLon
		cfg.OriginLat = params.CornerLat
	}

	projector, err := projection.NewUTMProjector(cfg.OriginLon, cfg.OriginLat)
	if err != nil {
		jobLog.Errorf("%v", err)
		os.Exit(1)
	}

	scene := insar.NewInSAR(cfg.Name, projector.Project, jobLog)
	err = scene.ReadFromGammaResampled(cfg.ParFile, cfg.PhaseFile, cfg.AziFile, cfg.IncFile, cfg.Satellite, cfg.ResampleFactor, cfg.Downsample)
	if err != nil {
		jobLog.Errorf("IMPORT ERROR: %v", err)
		os.Exit(1)
	}

	// Output lands locally or in S3 depending on the path given
	var fs fileaccess.FileAccess
	bucket := ""
	outPath := cfg.OutPath

	if strings.HasPrefix(cfg.OutPath, "s3://") {
		var pathErr error
		bucket, pathErr = fileaccess.GetBucketFromS3Url(cfg.OutPath)
		if pathErr == nil {
			outPath, pathErr = fileaccess.GetPathFromS3Url(cfg.OutPath)
		}
		if pathErr != nil {
			jobLog.Errorf("%v", pathErr)
			os.Exit(1)
		}

		sess, sessErr := session.NewSession()
		if sessErr != nil {
			jobLog.Errorf("Failed to create AWS session: %v", sessErr)
			os.Exit(1)
		}
		fs = fileaccess.MakeS3Access(s3.New(sess))
	} else {
		fs = &fileaccess.FSAccess{}
	}

	saver := output.PointDatasetSaver{}
	if err := saver.Save(scene, fs, bucket, outPath, jobLog); err != nil {
		jobLog.Errorf("SAVE ERROR: %v", err)
		os.Exit(1)
	}

	jobLog.Infof("Done.")
}
