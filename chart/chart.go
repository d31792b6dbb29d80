// Copyright 2025 The raceplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart builds race charts from timing and telemetry data.
//
// Each constructor reshapes its input into gg tables, layers a
// gg.Plot, and returns it; rendering (and figure geometry) is the
// caller's concern via Plot.WriteSVG. Styling inputs are limited to
// color maps, category orderings, labels and titles. Drivers missing
// from a color map draw in black, compounds in gray.
package chart

import (
	"image/color"
	"math"
	"strconv"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// defaultColors is cycled when no driver color map is supplied.
var defaultColors = []color.Color{
	color.RGBA{0xff, 0xa5, 0x00, 0xff}, // orange
	color.RGBA{0xd0, 0x00, 0x00, 0xff}, // red
	color.RGBA{0x00, 0x41, 0xd0, 0xff}, // blue
	color.RGBA{0x00, 0x80, 0x00, 0xff}, // green
	color.RGBA{0x80, 0x00, 0x80, 0xff}, // purple
	color.RGBA{0x8b, 0x45, 0x13, 0xff}, // brown
}

// driverColors fills in a color for every driver: the mapped color
// if present, otherwise black, or a palette cycle when no map was
// supplied at all.
func driverColors(colors map[string]color.Color, drivers []string) map[string]color.Color {
	out := make(map[string]color.Color, len(drivers))
	for i, d := range drivers {
		switch {
		case colors == nil:
			out[d] = defaultColors[i%len(defaultColors)]
		case colors[d] != nil:
			out[d] = colors[d]
		default:
			out[d] = color.Black
		}
	}
	return out
}

func compoundColor(colors map[string]color.Color, compound string) color.Color {
	if c := colors[compound]; c != nil {
		return c
	}
	return color.Gray{0x80}
}

// categoryScale returns a continuous scale for categories placed at
// integer positions 0..len(names)-1, labeled with names. Ticks that
// fall between categories are unlabeled.
func categoryScale(names []string) gg.Scaler {
	s := gg.NewLinearScaler().Include(-0.5).Include(float64(len(names)) - 0.5)
	s.SetFormatter(func(x float64) string {
		i := int(math.Round(x))
		if math.Abs(x-float64(i)) > 1e-6 || i < 0 || i >= len(names) {
			return ""
		}
		return names[i]
	})
	return s
}

// invertedScale returns a continuous scale for columns that hold
// negated values so that smaller true values sit higher on the axis.
// Tick labels show the true (un-negated) values.
func invertedScale(format func(v float64) string) gg.Scaler {
	s := gg.NewLinearScaler()
	s.SetFormatter(func(x float64) string {
		return format(-x)
	})
	return s
}

func wholeNumber(v float64) string {
	if v != math.Trunc(v) {
		return ""
	}
	return strconv.Itoa(int(v))
}

// categoryIndex maps each name to its position in order.
func categoryIndex(order []string) map[string]float64 {
	idx := make(map[string]float64, len(order))
	for i, n := range order {
		if _, ok := idx[n]; !ok {
			idx[n] = float64(i)
		}
	}
	return idx
}

// segment builds a two-point table for drawing one line segment with
// LayerPaths.
func segment(x0, y0, x1, y1 float64) *table.Table {
	return new(table.Builder).
		Add("x", []float64{x0, x1}).
		Add("y", []float64{y0, y1}).
		Done()
}

// box builds a two-point table spanning [x0, x1] horizontally with
// constant vertical bounds, for drawing one rectangle with
// LayerArea.
func box(x0, x1, top, bottom float64) *table.Table {
	return new(table.Builder).
		Add("x", []float64{x0, x1}).
		Add("top", []float64{top, top}).
		Add("bottom", []float64{bottom, bottom}).
		Done()
}

// layer adds a mark bound to its own data table, leaving the plot's
// main data in place. mark is called after the data swap so it can
// use p.Const for constant aesthetics.
func layer(p *gg.Plot, data table.Grouping, mark func(p *gg.Plot) gg.Plotter) {
	p.Save()
	p.SetData(data)
	p.Add(mark(p))
	p.Restore()
}
