// Copyright 2025 The raceplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"sort"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"raceplot/laps"
)

// DistributionOptions style a lap-time distribution chart.
type DistributionOptions struct {
	// Order is the driver order along the x axis, conventionally
	// the finishing order. If nil, drivers appear in order of
	// first appearance. Drivers not in Order are omitted.
	Order []string

	// DriverColors fill the violins.
	DriverColors map[string]color.Color

	// CompoundColors color the individual lap points.
	CompoundColors map[string]color.Color

	// CompoundOrder controls point layering. If nil it defaults
	// to SOFT, MEDIUM, HARD; compounds outside the order are
	// drawn last.
	CompoundOrder []string

	Title string
}

// violinHalfWidth is the x half-extent of the widest violin, in
// category units.
const violinHalfWidth = 0.4

// Distribution plots each driver's lap-time distribution as a violin
// with the individual laps overlaid as a compound-colored swarm.
// Violin widths are comparable across drivers (densities share one
// scale). Laps without a representative time are skipped; drivers
// with fewer than two timed laps get points but no violin.
func Distribution(ll []laps.Lap, o DistributionOptions) *gg.Plot {
	order := o.Order
	if order == nil {
		order = laps.Drivers(ll)
	}
	idx := categoryIndex(order)
	colors := driverColors(o.DriverColors, order)

	byDriver := make(map[string][]laps.Lap)
	for _, l := range ll {
		if _, ok := idx[l.Driver]; ok && l.Time != 0 {
			byDriver[l.Driver] = append(byDriver[l.Driver], l)
		}
	}

	// Estimate all densities first: area normalization needs the
	// global maximum.
	outlines := make(map[string]*violinOutline)
	maxDensity := 0.0
	for d, dl := range byDriver {
		if len(dl) < 2 {
			continue
		}
		secs := make([]float64, len(dl))
		for i, l := range dl {
			secs[i] = l.Seconds()
		}
		out := estimateDensity(secs)
		if out == nil {
			continue
		}
		outlines[d] = out
		if m := out.max(); m > maxDensity {
			maxDensity = m
		}
	}

	p := gg.NewPlot(laps.Table(ll))
	p.SetScale("x", categoryScale(order))

	for _, d := range order {
		out := outlines[d]
		if out == nil || maxDensity == 0 {
			continue
		}
		layer(p, out.polygon(idx[d], violinHalfWidth/maxDensity), func(p *gg.Plot) gg.Plotter {
			return gg.LayerPaths{X: "x", Y: "y", Fill: p.Const(colors[d])}
		})
	}

	addSwarm(p, byDriver, idx, o)

	p.Add(gg.AxisLabel("x", "Driver"))
	p.Add(gg.AxisLabel("y", "Lap Time (s)"))
	if o.Title != "" {
		p.Add(gg.Title(o.Title))
	}
	return p
}

// A violinOutline holds a density estimate sampled at ascending lap
// times.
type violinOutline struct {
	at      []float64 // lap time seconds
	density []float64
}

// estimateDensity runs a KDE over secs. It returns nil for
// degenerate samples (all values equal), for which a density
// estimate is meaningless.
func estimateDensity(secs []float64) *violinOutline {
	min, max := secs[0], secs[0]
	for _, s := range secs {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	if min == max {
		return nil
	}

	in := new(table.Builder).Add("lap time (s)", secs).Done()
	g := ggstat.Density{X: "lap time (s)"}.F(in)
	t := g.Table(g.Tables()[0])
	return &violinOutline{
		at:      t.MustColumn("lap time (s)").([]float64),
		density: t.MustColumn("probability density").([]float64),
	}
}

func (v *violinOutline) max() float64 {
	m := 0.0
	for _, d := range v.density {
		if d > m {
			m = d
		}
	}
	return m
}

// polygon traces the violin at category position x: up the left edge
// and back down the right, mirrored about x, with width scale*density.
func (v *violinOutline) polygon(x, scale float64) *table.Table {
	n := len(v.at)
	xs := make([]float64, 0, 2*n)
	ys := make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		xs = append(xs, x-scale*v.density[i])
		ys = append(ys, v.at[i])
	}
	for i := n - 1; i >= 0; i-- {
		xs = append(xs, x+scale*v.density[i])
		ys = append(ys, v.at[i])
	}
	return new(table.Builder).Add("x", xs).Add("y", ys).Done()
}

// addSwarm layers the individual laps as points, one layer per
// compound so each takes its palette color.
func addSwarm(p *gg.Plot, byDriver map[string][]laps.Lap, idx map[string]float64, o DistributionOptions) {
	compoundOrder := o.CompoundOrder
	if compoundOrder == nil {
		compoundOrder = []string{"SOFT", "MEDIUM", "HARD"}
	}

	type point struct {
		x, y     float64
		compound string
	}
	var points []point
	for d, dl := range byDriver {
		secs := make([]float64, len(dl))
		for i, l := range dl {
			secs[i] = l.Seconds()
		}
		offs := swarmOffsets(secs)
		for i, l := range dl {
			points = append(points, point{idx[d] + offs[i], secs[i], l.Compound})
		}
	}

	rank := make(map[string]int)
	for i, c := range compoundOrder {
		rank[c] = i + 1
	}
	seen := make(map[string]bool)
	var compounds []string
	for _, pt := range points {
		if !seen[pt.compound] {
			seen[pt.compound] = true
			compounds = append(compounds, pt.compound)
		}
	}
	sort.SliceStable(compounds, func(i, j int) bool {
		ri, rj := rank[compounds[i]], rank[compounds[j]]
		if ri == 0 {
			ri = len(compoundOrder) + 2
		}
		if rj == 0 {
			rj = len(compoundOrder) + 2
		}
		return ri < rj
	})

	for _, c := range compounds {
		var xs, ys []float64
		for _, pt := range points {
			if pt.compound == c {
				xs = append(xs, pt.x)
				ys = append(ys, pt.y)
			}
		}
		t := new(table.Builder).Add("x", xs).Add("y", ys).Done()
		col := compoundColor(o.CompoundColors, c)
		layer(p, t, func(p *gg.Plot) gg.Plotter {
			return gg.LayerPoints{X: "x", Y: "y", Color: p.Const(col)}
		})
	}
}

// swarmOffsets spreads coincident values sideways: values are binned
// by height and successive points in a bin step outward
// alternately, beeswarm style. Offsets are deterministic and capped
// inside the violin width.
func swarmOffsets(ys []float64) []float64 {
	offs := make([]float64, len(ys))
	if len(ys) == 0 {
		return offs
	}

	min, max := ys[0], ys[0]
	for _, y := range ys {
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}
	binHeight := (max - min) / 25
	if binHeight == 0 {
		binHeight = 1
	}

	order := make([]int, len(ys))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return ys[order[i]] < ys[order[j]] })

	const step = 0.08
	binStart, binCount := ys[order[0]], 0
	for _, i := range order {
		if ys[i]-binStart > binHeight {
			binStart, binCount = ys[i], 0
		}
		// 0, +step, -step, +2*step, -2*step, ...
		k := (binCount + 1) / 2
		off := float64(k) * step
		if binCount%2 == 0 {
			off = -off
		}
		if off > violinHalfWidth-0.05 {
			off = violinHalfWidth - 0.05
		} else if off < -(violinHalfWidth - 0.05) {
			off = -(violinHalfWidth - 0.05)
		}
		offs[i] = off
		binCount++
	}
	return offs
}
