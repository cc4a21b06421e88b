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

// Default implementation of the project(lon, lat) capability the ingest
// consumes: WGS84 UTM with a fixed origin, planar coordinates in kilometres
// relative to that origin. The UTM zone is fixed by the origin longitude so
// points near a zone boundary stay in one consistent plane.
package projection

import (
	"fmt"
	"math"

	"github.com/wroge/wgs84"
)

// UTMProjector - projects lon/lat to origin-relative UTM kilometres
type UTMProjector struct {
	originLon float64
	originLat float64

	toUTM   wgs84.Func
	originX float64
	originY float64
}

func NewUTMProjector(originLon float64, originLat float64) (*UTMProjector, error) {
	if originLon < -180 || originLon > 180 || originLat < -90 || originLat > 90 {
		return nil, fmt.Errorf("projection origin (%v, %v) outside lon/lat domain", originLon, originLat)
	}

	zone := math.Floor((originLon+180)/6) + 1
	toUTM := wgs84.LonLat().To(wgs84.UTM(zone, originLat >= 0))

	p := &UTMProjector{
		originLon: originLon,
		originLat: originLat,
		toUTM:     toUTM,
	}
	p.originX, p.originY, _ = toUTM(originLon, originLat, 0)

	return p, nil
}

// Project - satisfies gamma.ProjectFunc
func (p *UTMProjector) Project(lon float64, lat float64) (float64, float64) {
	east, north, _ := p.toUTM(lon, lat, 0)
	return (east - p.originX) / 1000, (north - p.originY) / 1000
}
