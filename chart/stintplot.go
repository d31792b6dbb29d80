// Copyright 2025 The raceplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"raceplot/laps"
)

// StintLapsOptions style a stint lap-time chart.
type StintLapsOptions struct {
	// Colors maps drivers to line colors. If nil, a default
	// palette is cycled in driver order.
	Colors map[string]color.Color

	// Title defaults to "Lap time comparison of each stint".
	Title string
}

// StintLaps reconciles each driver's laps against their stints and
// plots lap time by lap number, one line per driver with a break at
// every tyre change. The lap-time axis is inverted so faster laps
// read higher. Errors from src are returned unchanged.
func StintLaps(drivers []string, src laps.Source, stints []laps.Stint, o StintLapsOptions) (*gg.Plot, error) {
	title := o.Title
	if title == "" {
		title = "Lap time comparison of each stint"
	}
	colors := driverColors(o.Colors, drivers)

	combined, err := laps.Reconcile(drivers, src, stints)
	if err != nil {
		return nil, err
	}

	lapCol := make([]float64, 0, len(combined))
	secCol := make([]float64, 0, len(combined))
	drvCol := make([]string, 0, len(combined))
	stintCol := make([]int, 0, len(combined))
	for _, l := range combined {
		if l.Time == 0 {
			continue
		}
		lapCol = append(lapCol, float64(l.Number))
		secCol = append(secCol, -l.Seconds())
		drvCol = append(drvCol, l.Driver)
		stintCol = append(stintCol, l.Stint)
	}
	t := new(table.Builder).
		Add("lap", lapCol).
		Add("lap time (s)", secCol).
		Add("driver", drvCol).
		Add("stint", stintCol).
		Done()

	p := gg.NewPlot(t)
	p.SetScale("y", invertedScale(func(v float64) string {
		return fmt.Sprintf("%.6g", v)
	}))

	// One line layer per (driver, stint) pair so the line breaks
	// at pit stops. Stint 0 collects any laps the stint data
	// didn't cover.
	grouped := table.GroupBy(table.GroupBy(t, "driver"), "stint")
	for _, gid := range grouped.Tables() {
		gt := grouped.Table(gid)
		if gt.Len() == 0 {
			continue
		}
		col := colors[gt.MustColumn("driver").([]string)[0]]
		layer(p, gt, func(p *gg.Plot) gg.Plotter {
			return gg.LayerLines{X: "lap", Y: "lap time (s)", Color: p.Const(col)}
		})
	}
	p.Add(gg.LayerTags{X: "lap", Y: "lap time (s)", Label: "driver"})

	p.Add(gg.AxisLabel("x", "Lap"))
	p.Add(gg.AxisLabel("y", "Lap Time (s)"))
	p.Add(gg.Title(title))
	return p, nil
}
