// Copyright 2025 The raceplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"raceplot/laps"
)

// channel identifies one telemetry trace. The constant order is the
// facet order, top to bottom.
type channel int

const (
	chSpeed channel = iota
	chThrottle
	chBrake
	chGear
	chRPM
	chDRS
)

var channelNames = [...]string{
	"Speed (km/h)",
	"Throttle (%)",
	"Brake",
	"Gear",
	"RPM",
	"DRS",
}

func (c channel) String() string {
	return channelNames[c]
}

// TelemetryOptions style a telemetry chart.
type TelemetryOptions struct {
	// Drivers orders the traces. If nil, drivers appear in order
	// of first appearance in the sample data.
	Drivers []string

	// Colors maps drivers to line colors. If nil, a default
	// palette is cycled in driver order.
	Colors map[string]color.Color

	Title string
}

// Telemetry plots one lap's telemetry for each driver: speed,
// throttle, brake, gear, engine RPM and DRS state against lap
// distance, one facet per channel with a shared distance axis.
func Telemetry(samples []laps.TelemetrySample, o TelemetryOptions) *gg.Plot {
	drivers := o.Drivers
	if drivers == nil {
		seen := make(map[string]bool)
		for _, s := range samples {
			if !seen[s.Driver] {
				seen[s.Driver] = true
				drivers = append(drivers, s.Driver)
			}
		}
	}
	colors := driverColors(o.Colors, drivers)

	long := unpivotTelemetry(samples)
	p := gg.NewPlot(long)
	p.Add(gg.FacetY{Col: "channel", SplitYScales: true})

	// Filter the faceted grouping rather than the original table
	// so each line layer keeps its subplot assignment.
	faceted := p.Data()
	for _, d := range drivers {
		layer(p, table.FilterEq(faceted, "driver", d), func(p *gg.Plot) gg.Plotter {
			return gg.LayerLines{X: "distance", Y: "value", Color: p.Const(colors[d])}
		})
	}

	p.Add(gg.AxisLabel("x", "Distance (m)"))
	p.Add(gg.AxisLabel("y", ""))
	if o.Title != "" {
		p.Add(gg.Title(o.Title))
	}
	return p
}

// unpivotTelemetry reshapes samples into long form with one row per
// (sample, channel) and columns "driver", "distance", "channel" and
// "value". The channel column is typed so facets order by constant
// value rather than label.
func unpivotTelemetry(samples []laps.TelemetrySample) *table.Table {
	n := len(samples) * len(channelNames)
	drivers := make([]string, 0, n)
	distances := make([]float64, 0, n)
	channels := make([]channel, 0, n)
	values := make([]float64, 0, n)

	for _, s := range samples {
		vals := [...]float64{
			chSpeed:    s.Speed,
			chThrottle: s.Throttle,
			chBrake:    s.Brake,
			chGear:     float64(s.Gear),
			chRPM:      s.RPM,
			chDRS:      float64(s.DRS),
		}
		for c, v := range vals {
			drivers = append(drivers, s.Driver)
			distances = append(distances, s.Distance)
			channels = append(channels, channel(c))
			values = append(values, v)
		}
	}

	return new(table.Builder).
		Add("driver", drivers).
		Add("distance", distances).
		Add("channel", channels).
		Add("value", values).
		Done()
}
