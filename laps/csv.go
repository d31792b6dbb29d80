// Copyright 2025 The raceplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laps

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// ReadLaps parses a lap CSV file from r. The expected header is
//
//	driver,lap,time,compound,position
//
// where time is a Go duration ("1m23.456s") or empty for laps with
// no representative time, and position may be empty. Rows appear in
// chronological order per driver.
func ReadLaps(r io.Reader) ([]Lap, error) {
	var out []Lap
	err := readRows(r, []string{"driver", "lap", "time", "compound", "position"}, func(rec []string) error {
		l := Lap{Driver: rec[0], Compound: rec[3]}
		var err error
		if l.Number, err = strconv.Atoi(rec[1]); err != nil || l.Number < 1 {
			return fmt.Errorf("bad lap number %q", rec[1])
		}
		if rec[2] != "" {
			if l.Time, err = time.ParseDuration(rec[2]); err != nil {
				return fmt.Errorf("bad lap time %q", rec[2])
			}
		}
		if rec[4] != "" {
			if l.Position, err = strconv.Atoi(rec[4]); err != nil || l.Position < 1 {
				return fmt.Errorf("bad position %q", rec[4])
			}
		}
		out = append(out, l)
		return nil
	})
	return out, err
}

// ReadStints parses a stint CSV file from r. The expected header is
//
//	driver,compound,length
//
// with one row per stint, in the order the stints occurred.
func ReadStints(r io.Reader) ([]Stint, error) {
	var out []Stint
	err := readRows(r, []string{"driver", "compound", "length"}, func(rec []string) error {
		st := Stint{Driver: rec[0], Compound: rec[1]}
		var err error
		if st.Length, err = strconv.Atoi(rec[2]); err != nil || st.Length < 1 {
			return fmt.Errorf("bad stint length %q", rec[2])
		}
		out = append(out, st)
		return nil
	})
	return out, err
}

// ReadTelemetry parses a telemetry CSV file from r. The expected
// header is
//
//	driver,distance,speed,throttle,brake,gear,rpm,drs
func ReadTelemetry(r io.Reader) ([]TelemetrySample, error) {
	var out []TelemetrySample
	err := readRows(r, []string{"driver", "distance", "speed", "throttle", "brake", "gear", "rpm", "drs"}, func(rec []string) error {
		s := TelemetrySample{Driver: rec[0]}
		var err error
		num := func(name, v string) float64 {
			f, perr := strconv.ParseFloat(v, 64)
			if perr != nil && err == nil {
				err = fmt.Errorf("bad %s %q", name, v)
			}
			return f
		}
		s.Distance = num("distance", rec[1])
		s.Speed = num("speed", rec[2])
		s.Throttle = num("throttle", rec[3])
		s.Brake = num("brake", rec[4])
		s.Gear = int(num("gear", rec[5]))
		s.RPM = num("rpm", rec[6])
		s.DRS = int(num("drs", rec[7]))
		if err != nil {
			return err
		}
		out = append(out, s)
		return nil
	})
	return out, err
}

// readRows reads a header-prefixed CSV stream and calls row for each
// data record. It checks the header against want and reports
// malformed rows with their line number.
func readRows(r io.Reader, want []string, row func(rec []string) error) error {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return fmt.Errorf("empty input")
	} else if err != nil {
		return err
	}
	if len(header) != len(want) {
		return fmt.Errorf("bad header %q, want %q", strings.Join(header, ","), strings.Join(want, ","))
	}
	for i, h := range header {
		if !strings.EqualFold(strings.TrimSpace(h), want[i]) {
			return fmt.Errorf("bad header %q, want %q", strings.Join(header, ","), strings.Join(want, ","))
		}
	}

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if err := row(rec); err != nil {
			return fmt.Errorf("line %d: %s", line, err)
		}
	}
}
