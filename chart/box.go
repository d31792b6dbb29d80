// Copyright 2025 The raceplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-moremath/stats"
	"raceplot/laps"
)

// BoxOptions style a lap-time boxplot.
type BoxOptions struct {
	// Order is the category order along the x axis. If nil,
	// drivers appear in order of first appearance. Drivers not in
	// Order are omitted.
	Order []string

	// Colors maps drivers to box fill colors.
	Colors map[string]color.Color

	XLabel string
	Title  string
}

// boxStats are the five-number summary behind one box: quartiles and
// the whisker positions, which extend to the most extreme data
// points within 1.5 IQR of the box.
type boxStats struct {
	q1, median, q3 float64
	lo, hi         float64
}

// newBoxStats summarizes xs, which must be non-empty.
func newBoxStats(xs []float64) boxStats {
	s := stats.Sample{Xs: xs}
	b := boxStats{
		q1:     s.Quantile(0.25),
		median: s.Quantile(0.5),
		q3:     s.Quantile(0.75),
	}
	iqr := b.q3 - b.q1
	fenceLo, fenceHi := b.q1-1.5*iqr, b.q3+1.5*iqr
	b.lo, b.hi = b.q3, b.q1
	for _, x := range xs {
		if x >= fenceLo && x < b.lo {
			b.lo = x
		}
		if x <= fenceHi && x > b.hi {
			b.hi = x
		}
	}
	return b
}

// LapTimeBox plots a boxplot of lap times in seconds, one box per
// driver. Laps without a representative time are skipped.
func LapTimeBox(ll []laps.Lap, o BoxOptions) *gg.Plot {
	order := o.Order
	if order == nil {
		order = laps.Drivers(ll)
	}
	idx := categoryIndex(order)

	times := make(map[string][]float64)
	for _, l := range ll {
		if _, ok := idx[l.Driver]; ok && l.Time != 0 {
			times[l.Driver] = append(times[l.Driver], l.Seconds())
		}
	}

	const halfWidth, capWidth = 0.3, 0.15
	median := color.Gray{0x80}

	p := gg.NewPlot(laps.Table(ll))
	p.SetScale("x", categoryScale(order))

	for _, d := range order {
		xs := times[d]
		if len(xs) == 0 {
			continue
		}
		b := newBoxStats(xs)
		x := idx[d]

		layer(p, box(x-halfWidth, x+halfWidth, b.q3, b.q1), func(p *gg.Plot) gg.Plotter {
			return gg.LayerArea{X: "x", Upper: "top", Lower: "bottom", Fill: p.Const(boxFill(o.Colors, d))}
		})
		for _, seg := range []struct {
			x0, y0, x1, y1 float64
			col            color.Color
		}{
			{x - halfWidth, b.median, x + halfWidth, b.median, median},
			{x, b.q3, x, b.hi, color.Black},
			{x, b.q1, x, b.lo, color.Black},
			{x - capWidth, b.hi, x + capWidth, b.hi, color.Black},
			{x - capWidth, b.lo, x + capWidth, b.lo, color.Black},
		} {
			seg := seg
			layer(p, segment(seg.x0, seg.y0, seg.x1, seg.y1), func(p *gg.Plot) gg.Plotter {
				return gg.LayerPaths{X: "x", Y: "y", Color: p.Const(seg.col)}
			})
		}
	}

	p.Add(gg.AxisLabel("x", o.XLabel))
	p.Add(gg.AxisLabel("y", "Lap Time (s)"))
	if o.Title != "" {
		p.Add(gg.Title(o.Title))
	}
	return p
}

func boxFill(colors map[string]color.Color, driver string) color.Color {
	if c := colors[driver]; c != nil {
		return c
	}
	return color.Gray{0xc0}
}
