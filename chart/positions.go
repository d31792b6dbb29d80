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

// PositionOptions style a position-change chart.
type PositionOptions struct {
	// Colors maps drivers to line colors; unmapped drivers draw
	// in black.
	Colors map[string]color.Color

	// Title defaults to "Race Position Changes".
	Title string
}

// Positions plots each driver's running position by lap, one line
// per driver, with the axis inverted so the leader reads on top.
// Laps with unknown position are skipped.
func Positions(ll []laps.Lap, o PositionOptions) *gg.Plot {
	title := o.Title
	if title == "" {
		title = "Race Position Changes"
	}
	drivers := laps.Drivers(ll)

	// Position values are negated so the default ascending axis
	// puts P1 on top; the scale formatter restores the sign.
	lapCol := make([]float64, 0, len(ll))
	posCol := make([]float64, 0, len(ll))
	drvCol := make([]string, 0, len(ll))
	for _, l := range ll {
		if l.Position == 0 {
			continue
		}
		lapCol = append(lapCol, float64(l.Number))
		posCol = append(posCol, -float64(l.Position))
		drvCol = append(drvCol, l.Driver)
	}
	t := new(table.Builder).
		Add("lap", lapCol).
		Add("position", posCol).
		Add("driver", drvCol).
		Done()

	p := gg.NewPlot(t)
	p.SetScale("y", invertedScale(wholeNumber))

	for _, d := range drivers {
		dt := table.FilterEq(t, "driver", d)
		if len(dt.Tables()) == 0 {
			continue
		}
		col := o.Colors[d]
		if col == nil {
			col = color.Black
		}
		layer(p, dt, func(p *gg.Plot) gg.Plotter {
			return gg.LayerLines{X: "lap", Y: "position", Color: p.Const(col)}
		})
	}
	p.Add(gg.LayerTags{X: "lap", Y: "position", Label: "driver"})

	p.Add(gg.AxisLabel("x", "Lap"))
	p.Add(gg.AxisLabel("y", "Position"))
	p.Add(gg.Title(title))
	return p
}
