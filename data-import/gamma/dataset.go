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
	"encoding/json"
	"fmt"
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// The fixed channel set of a geocoded point dataset
const (
	ChannelLon       = "lon"
	ChannelLat       = "lat"
	ChannelX         = "x"
	ChannelY         = "y"
	ChannelPhase     = "phase"
	ChannelLOS       = "los"
	ChannelAzimuth   = "azi"
	ChannelIncidence = "inc"
)

// Unit tags attached to channels
const (
	UnitDegree = "degree"
	UnitKm     = "km"
	UnitRadian = "radian"
	UnitMetre  = "m"
)

// PointChannel - one named column of the dataset with its unit tag
type PointChannel struct {
	Values []float64 `json:"values"`
	Unit   string    `json:"unit"`
}

// JSON can't represent NaN, so masked points are written as null and read
// back as NaN
type jsonPointChannel struct {
	Values []*float64 `json:"values"`
	Unit   string     `json:"unit"`
}

func (c PointChannel) MarshalJSON() ([]byte, error) {
	out := jsonPointChannel{
		Values: make([]*float64, len(c.Values)),
		Unit:   c.Unit,
	}
	for i := range c.Values {
		if !math.IsNaN(c.Values[i]) {
			out.Values[i] = &c.Values[i]
		}
	}
	return json.Marshal(out)
}

func (c *PointChannel) UnmarshalJSON(data []byte) error {
	in := jsonPointChannel{}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	c.Unit = in.Unit
	c.Values = make([]float64, len(in.Values))
	for i, v := range in.Values {
		if v == nil {
			c.Values[i] = math.NaN()
		} else {
			c.Values[i] = *v
		}
	}
	return nil
}

// GeoPointDataset - the final ingest product: per-pixel geolocated, physically
// scaled values. Every channel has the same length and index i refers to the
// same physical pixel in all of them. Built once per ingest, then read-only.
type GeoPointDataset struct {
	Channels map[string]PointChannel `json:"channels"`
}

// Channel - looks up a channel by name, failing with an InvalidArgumentError
// for names outside the fixed channel set
func (d *GeoPointDataset) Channel(name string) (PointChannel, error) {
	channel, ok := d.Channels[name]
	if !ok {
		return PointChannel{}, &InvalidArgumentError{Reason: fmt.Sprintf("channel \"%v\" is not in dataset", name)}
	}
	return channel, nil
}

// ChannelNames - all channel names, sorted for stable output
func (d *GeoPointDataset) ChannelNames() []string {
	names := maps.Keys(d.Channels)
	slices.Sort(names)
	return names
}

// PointCount - number of points in every channel
func (d *GeoPointDataset) PointCount() int {
	for _, channel := range d.Channels {
		return len(channel.Values)
	}
	return 0
}

// ProjectFunc - the map projection capability the packaging step consumes.
// Deterministic, must be defined over the whole valid lon/lat domain, and is
// expected to return planar coordinates in kilometres relative to some fixed
// origin. Where it comes from (UTM or otherwise) is the caller's business.
type ProjectFunc func(lon float64, lat float64) (x float64, y float64)
