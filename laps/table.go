// Copyright 2025 The raceplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laps

import (
	"time"

	"github.com/aclements/go-gg/table"
)

// Table converts ll to a gg table with one row per lap and columns
// "driver", "lap", "lap time", "lap time (s)", "compound",
// "position" and "stint". "lap time" holds time.Duration for
// readable printing; "lap time (s)" holds float64 seconds for
// plotting.
func Table(ll []Lap) *table.Table {
	drivers := make([]string, len(ll))
	numbers := make([]int, len(ll))
	times := make([]time.Duration, len(ll))
	seconds := make([]float64, len(ll))
	compounds := make([]string, len(ll))
	positions := make([]int, len(ll))
	stints := make([]int, len(ll))
	for i, l := range ll {
		drivers[i] = l.Driver
		numbers[i] = l.Number
		times[i] = l.Time
		seconds[i] = l.Seconds()
		compounds[i] = l.Compound
		positions[i] = l.Position
		stints[i] = l.Stint
	}

	return new(table.Builder).
		Add("driver", drivers).
		Add("lap", numbers).
		Add("lap time", times).
		Add("lap time (s)", seconds).
		Add("compound", compounds).
		Add("position", positions).
		Add("stint", stints).
		Done()
}

// StintTable converts stints to a gg table with columns "driver",
// "compound" and "stint length".
func StintTable(stints []Stint) *table.Table {
	drivers := make([]string, len(stints))
	compounds := make([]string, len(stints))
	lengths := make([]int, len(stints))
	for i, st := range stints {
		drivers[i] = st.Driver
		compounds[i] = st.Compound
		lengths[i] = st.Length
	}

	return new(table.Builder).
		Add("driver", drivers).
		Add("compound", compounds).
		Add("stint length", lengths).
		Done()
}

// TelemetryTable converts samples to a gg table with one row per
// sample and one column per telemetry channel.
func TelemetryTable(samples []TelemetrySample) *table.Table {
	drivers := make([]string, len(samples))
	distances := make([]float64, len(samples))
	speeds := make([]float64, len(samples))
	throttles := make([]float64, len(samples))
	brakes := make([]float64, len(samples))
	gears := make([]float64, len(samples))
	rpms := make([]float64, len(samples))
	drss := make([]float64, len(samples))
	for i, s := range samples {
		drivers[i] = s.Driver
		distances[i] = s.Distance
		speeds[i] = s.Speed
		throttles[i] = s.Throttle
		brakes[i] = s.Brake
		gears[i] = float64(s.Gear)
		rpms[i] = s.RPM
		drss[i] = float64(s.DRS)
	}

	return new(table.Builder).
		Add("driver", drivers).
		Add("distance", distances).
		Add("speed", speeds).
		Add("throttle", throttles).
		Add("brake", brakes).
		Add("gear", gears).
		Add("rpm", rpms).
		Add("drs", drss).
		Done()
}
