// Copyright 2025 The raceplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laps

// Reconcile assigns each driver's laps to stints and concatenates
// all drivers' laps into one annotated sequence.
//
// For each driver in drivers, in order, it fetches that driver's
// laps from src, retags them with the driver identifier, and walks
// the driver's stints from stints in stored order: stint i (1-based)
// with length L covers lap numbers [start, start+L-1], where start
// is 1 for the first stint and one past the previous stint's end for
// the rest. Every lap whose number falls in a stint's range gets
// that stint number. Laps covered by no range keep Stint 0; this
// happens when the stint lengths undercount the laps driven and is
// not an error. A driver with no laps or no stints contributes what
// it has, silently.
//
// The returned slice is freshly allocated and the inputs are never
// modified, so a Source backed by shared storage stays clean across
// calls. The only possible error is one returned by src.DriverLaps,
// which is passed through unchanged.
func Reconcile(drivers []string, src Source, stints []Stint) ([]Lap, error) {
	var combined []Lap
	for _, driver := range drivers {
		dl, err := src.DriverLaps(driver)
		if err != nil {
			return nil, err
		}

		tagged := make([]Lap, len(dl))
		copy(tagged, dl)
		for i := range tagged {
			tagged[i].Driver = driver
			tagged[i].Stint = 0
		}

		start := 1
		for i, st := range StintsFor(stints, driver) {
			end := start + st.Length - 1
			for j := range tagged {
				if n := tagged[j].Number; start <= n && n <= end {
					tagged[j].Stint = i + 1
				}
			}
			start = end + 1
		}

		combined = append(combined, tagged...)
	}
	return combined, nil
}
