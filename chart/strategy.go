// Copyright 2025 The raceplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"

	"github.com/aclements/go-gg/gg"
	"raceplot/laps"
)

// StrategyOptions style a tyre-strategy chart.
type StrategyOptions struct {
	// Colors maps compounds to bar colors; unmapped compounds
	// draw in gray.
	Colors map[string]color.Color

	// Title defaults to "Tyre Strategy".
	Title string
}

// TyreStrategy plots each driver's stints as a horizontal stack of
// compound-colored bars, laps along the x axis. Drivers are listed
// top to bottom in the given order, so passing the finishing order
// puts the winner on top.
func TyreStrategy(drivers []string, stints []laps.Stint, o StrategyOptions) *gg.Plot {
	title := o.Title
	if title == "" {
		title = "Tyre Strategy"
	}

	// Row 0 is the bottom of the plot, so the first driver gets
	// the highest row.
	rows := make([]string, len(drivers))
	for i, d := range drivers {
		rows[len(drivers)-1-i] = d
	}

	const halfHeight = 0.4

	p := gg.NewPlot(laps.StintTable(stints))
	p.SetScale("x", gg.NewLinearScaler().Include(0))
	p.SetScale("y", categoryScale(rows))

	for i, d := range drivers {
		y := float64(len(drivers) - 1 - i)
		end := 0
		for _, st := range laps.StintsFor(stints, d) {
			start := end
			end += st.Length
			col := compoundColor(o.Colors, st.Compound)
			layer(p, box(float64(start), float64(end), y+halfHeight, y-halfHeight), func(p *gg.Plot) gg.Plotter {
				return gg.LayerArea{X: "x", Upper: "top", Lower: "bottom", Fill: p.Const(col)}
			})
		}
	}

	p.Add(gg.AxisLabel("x", "Lap Number"))
	p.Add(gg.AxisLabel("y", ""))
	p.Add(gg.Title(title))
	return p
}
