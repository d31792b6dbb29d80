// Copyright 2025 The raceplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laps

import (
	"testing"
	"time"
)

func TestTable(t *testing.T) {
	ll := []Lap{
		{Driver: "VER", Number: 1, Time: 93 * time.Second, Compound: "SOFT", Position: 1, Stint: 1},
		{Driver: "HAM", Number: 1, Compound: "MEDIUM", Position: 2},
	}
	tab := Table(ll)

	if tab.Len() != 2 {
		t.Fatalf("Len: want 2, have %d", tab.Len())
	}
	if drivers := tab.MustColumn("driver").([]string); drivers[1] != "HAM" {
		t.Errorf("driver[1]: want HAM, have %s", drivers[1])
	}
	if secs := tab.MustColumn("lap time (s)").([]float64); secs[0] != 93 || secs[1] != 0 {
		t.Errorf("lap time (s): want [93 0], have %v", secs)
	}
	if stints := tab.MustColumn("stint").([]int); stints[0] != 1 || stints[1] != 0 {
		t.Errorf("stint: want [1 0], have %v", stints)
	}
}

func TestStintTable(t *testing.T) {
	tab := StintTable([]Stint{{Driver: "VER", Compound: "SOFT", Length: 14}})
	if tab.Len() != 1 {
		t.Fatalf("Len: want 1, have %d", tab.Len())
	}
	if lengths := tab.MustColumn("stint length").([]int); lengths[0] != 14 {
		t.Errorf("stint length: want 14, have %d", lengths[0])
	}
}

func TestTelemetryTable(t *testing.T) {
	tab := TelemetryTable([]TelemetrySample{
		{Driver: "NOR", Distance: 120, Speed: 301.5, Throttle: 100, Gear: 8, RPM: 11800, DRS: 1},
	})
	if tab.Len() != 1 {
		t.Fatalf("Len: want 1, have %d", tab.Len())
	}
	if speeds := tab.MustColumn("speed").([]float64); speeds[0] != 301.5 {
		t.Errorf("speed: want 301.5, have %g", speeds[0])
	}
	if gears := tab.MustColumn("gear").([]float64); gears[0] != 8 {
		t.Errorf("gear: want 8, have %g", gears[0])
	}
}
