// Copyright 2025 The raceplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/aclements/go-gg/gg"
	"raceplot/laps"
)

// raceLaps builds a small two-driver race with a pit stop each.
func raceLaps() []laps.Lap {
	var ll []laps.Lap
	base := map[string]time.Duration{"VER": 92 * time.Second, "HAM": 93 * time.Second}
	for _, d := range []string{"VER", "HAM"} {
		for i := 1; i <= 10; i++ {
			compound := "SOFT"
			if i > 5 {
				compound = "HARD"
			}
			pos := 1
			if d == "HAM" {
				pos = 2
			}
			ll = append(ll, laps.Lap{
				Driver:   d,
				Number:   i,
				Time:     base[d] + time.Duration(i*37%5)*100*time.Millisecond,
				Compound: compound,
				Position: pos,
			})
		}
	}
	return ll
}

func raceStints() []laps.Stint {
	return []laps.Stint{
		{Driver: "VER", Compound: "SOFT", Length: 5},
		{Driver: "VER", Compound: "HARD", Length: 5},
		{Driver: "HAM", Compound: "SOFT", Length: 5},
		{Driver: "HAM", Compound: "HARD", Length: 5},
	}
}

// renderOK renders p and checks that it produced an SVG document.
func renderOK(t *testing.T, p *gg.Plot) {
	t.Helper()
	var buf bytes.Buffer
	if err := p.WriteSVG(&buf, 800, 400); err != nil {
		t.Fatalf("WriteSVG: unexpected error %s", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Fatalf("WriteSVG: no SVG output, have %q", buf.String()[:min(buf.Len(), 80)])
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func TestLapTimeBox(t *testing.T) {
	p := LapTimeBox(raceLaps(), BoxOptions{
		Order:  []string{"HAM", "VER"},
		Colors: map[string]color.Color{"VER": color.RGBA{0x1e, 0x41, 0xff, 0xff}},
		Title:  "Lap times",
	})
	renderOK(t, p)
}

func TestDistribution(t *testing.T) {
	p := Distribution(raceLaps(), DistributionOptions{
		Order: []string{"VER", "HAM"},
		CompoundColors: map[string]color.Color{
			"SOFT": color.RGBA{0xda, 0x29, 0x1c, 0xff},
			"HARD": color.RGBA{0xf0, 0xf0, 0xec, 0xff},
		},
	})
	renderOK(t, p)
}

func TestPositions(t *testing.T) {
	p := Positions(raceLaps(), PositionOptions{
		Colors: map[string]color.Color{"VER": color.RGBA{0x1e, 0x41, 0xff, 0xff}},
	})
	renderOK(t, p)
}

func TestTyreStrategy(t *testing.T) {
	p := TyreStrategy([]string{"VER", "HAM"}, raceStints(), StrategyOptions{})
	renderOK(t, p)
}

func TestStintLaps(t *testing.T) {
	ll := raceLaps()
	p, err := StintLaps([]string{"VER", "HAM"}, laps.NewSession(ll), raceStints(), StintLapsOptions{})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	renderOK(t, p)
}

func TestTelemetry(t *testing.T) {
	var samples []laps.TelemetrySample
	for _, d := range []string{"NOR", "PIA"} {
		for i := 0; i < 50; i++ {
			samples = append(samples, laps.TelemetrySample{
				Driver:   d,
				Distance: float64(i * 20),
				Speed:    200 + 80*float64(i%10)/10,
				Throttle: float64(i % 100),
				Brake:    float64(i % 2),
				Gear:     4 + i%4,
				RPM:      10000 + float64(i%1000),
				DRS:      i % 2,
			})
		}
	}
	p := Telemetry(samples, TelemetryOptions{Title: "Fastest lap telemetry"})
	renderOK(t, p)
}

func TestCategoryIndex(t *testing.T) {
	idx := categoryIndex([]string{"VER", "HAM", "NOR"})
	for i, d := range []string{"VER", "HAM", "NOR"} {
		if idx[d] != float64(i) {
			t.Errorf("%s: want %d, have %g", d, i, idx[d])
		}
	}
	if _, ok := idx["X"]; ok {
		t.Error("unknown driver should not be indexed")
	}
}

func TestDriverColors(t *testing.T) {
	drivers := []string{"A", "B", "C"}

	// No map: palette cycles in order.
	got := driverColors(nil, drivers)
	for i, d := range drivers {
		if got[d] != defaultColors[i%len(defaultColors)] {
			t.Errorf("%s: want default palette color %d", d, i)
		}
	}

	// Partial map: mapped colors stick, the rest go black.
	red := color.RGBA{0xff, 0, 0, 0xff}
	got = driverColors(map[string]color.Color{"B": red}, drivers)
	if got["B"] != red {
		t.Errorf("B: want mapped color")
	}
	if got["A"] != color.Color(color.Black) {
		t.Errorf("A: want black fallback")
	}
}
