// Copyright 2025 The raceplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package laps models motorsport timing data and derives the
// stint-annotated lap collections consumed by package chart.
//
// The records here are deliberately flat: one Lap per completed lap,
// one Stint per tyre stint, one TelemetrySample per distance sample.
// Anomalous-lap filtering (pit in/out laps, safety car laps and so
// on) is the data supplier's responsibility; this package assumes lap
// numbers are 1-based and contiguous per driver.
package laps

import (
	"fmt"
	"time"
)

// A Lap records one completed lap for one driver.
type Lap struct {
	// Driver is the driver's identifier, typically a three
	// letter abbreviation such as "VER".
	Driver string

	// Number is the 1-based lap number within the session.
	Number int

	// Time is the lap duration. It is 0 for laps with no
	// representative time (in or out laps, red flags).
	Time time.Duration

	// Compound is the tyre compound the lap was driven on, such
	// as "SOFT", "MEDIUM" or "HARD".
	Compound string

	// Position is the running position at the end of the lap,
	// with 1 leading. It is 0 when unknown.
	Position int

	// Stint is the 1-based stint this lap belongs to. It is 0
	// until assigned by Reconcile.
	Stint int
}

// Seconds returns the lap time in seconds, or 0 for laps without a
// representative time.
func (l Lap) Seconds() float64 {
	return l.Time.Seconds()
}

// A Stint records one tyre stint for one driver.
type Stint struct {
	Driver   string
	Compound string

	// Length is the number of laps in the stint.
	Length int
}

// A TelemetrySample is one distance-sampled telemetry point from a
// single lap.
type TelemetrySample struct {
	Driver   string
	Distance float64 // meters from the start line
	Speed    float64 // km/h
	Throttle float64 // percent, 0-100
	Brake    float64 // 0 or 1
	Gear     int
	RPM      float64
	DRS      int // 1 when the drag reduction system is open
}

// A Source supplies one driver's laps, already filtered to
// representative laps and in chronological order. Lookup errors are
// returned to the caller unchanged.
type Source interface {
	DriverLaps(driver string) ([]Lap, error)
}

// A Session is an in-memory Source over a flat lap list. It
// preserves each driver's lap order from the input.
type Session struct {
	byDriver map[string][]Lap
	drivers  []string
}

// NewSession indexes all by driver.
func NewSession(all []Lap) *Session {
	s := &Session{byDriver: make(map[string][]Lap)}
	for _, l := range all {
		if _, ok := s.byDriver[l.Driver]; !ok {
			s.drivers = append(s.drivers, l.Driver)
		}
		s.byDriver[l.Driver] = append(s.byDriver[l.Driver], l)
	}
	return s
}

// DriverLaps returns driver's laps in input order. A driver with no
// laps yields an empty slice, not an error.
func (s *Session) DriverLaps(driver string) ([]Lap, error) {
	return s.byDriver[driver], nil
}

// Drivers returns the session's drivers in order of first appearance.
func (s *Session) Drivers() []string {
	return append([]string(nil), s.drivers...)
}

// StintsFor returns driver's stints from stints, preserving stored
// order, which is assumed chronological.
func StintsFor(stints []Stint, driver string) []Stint {
	var out []Stint
	for _, st := range stints {
		if st.Driver == driver {
			out = append(out, st)
		}
	}
	return out
}

// Drivers returns the distinct drivers in ll, in order of first
// appearance.
func Drivers(ll []Lap) []string {
	var out []string
	seen := make(map[string]bool)
	for _, l := range ll {
		if !seen[l.Driver] {
			seen[l.Driver] = true
			out = append(out, l.Driver)
		}
	}
	return out
}

// FormatTime renders a lap duration as m:ss.mmm, the conventional
// timing-screen format.
func FormatTime(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	ms := d.Milliseconds()
	return fmt.Sprintf("%d:%02d.%03d", ms/60000, ms/1000%60, ms%1000)
}
