// Copyright 2025 The raceplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command raceplot draws race charts from lap, stint and telemetry
// CSV files.
//
// Input files are flat CSVs with a header row:
//
//	laps:      driver,lap,time,compound,position
//	stints:    driver,compound,length
//	telemetry: driver,distance,speed,throttle,brake,gear,rpm,drs
//
// Lap times are Go durations ("1m23.456s"). The -chart flag selects
// the chart; the inputs it needs depend on the chart (for example,
// "strategy" needs -stints only, "stints" needs both -laps and
// -stints). Driver and compound colors may be supplied as a YAML
// palette file via -colors.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"raceplot/chart"
	"raceplot/laps"
)

func main() {
	log.SetPrefix("raceplot: ")
	log.SetFlags(0)

	var (
		flagChart     = flag.String("chart", "", "chart to draw: telemetry, box, distribution, positions, strategy or stints")
		flagLaps      = flag.String("laps", "", "read lap data from `file`")
		flagStints    = flag.String("stints", "", "read stint data from `file`")
		flagTelemetry = flag.String("telemetry", "", "read telemetry data from `file`")
		flagDrivers   = flag.String("drivers", "", "comma-separated driver `order` (default: order of appearance)")
		flagColors    = flag.String("colors", "", "read driver and compound colors from YAML `file`")
		flagTitle     = flag.String("title", "", "chart title")
		flagOut       = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable     = flag.Bool("table", false, "output the lap table instead of a chart")
		flagWidth     = flag.Int("width", 1000, "output width in `pixels`")
		flagHeight    = flag.Int("height", 500, "output height in `pixels`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -chart kind [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 || (*flagChart == "" && !*flagTable) {
		flag.Usage()
		os.Exit(2)
	}

	var palette Palette
	if *flagColors != "" {
		var err error
		palette, err = ReadPaletteFile(*flagColors)
		if err != nil {
			log.Fatal(err)
		}
	}

	in := inputs{
		laps:      *flagLaps,
		stints:    *flagStints,
		telemetry: *flagTelemetry,
	}

	f := os.Stdout
	if *flagOut != "" {
		var err error
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	if *flagTable {
		printTable(f, in, *flagDrivers)
		return
	}

	p, err := buildChart(*flagChart, in, *flagDrivers, palette, *flagTitle)
	if err != nil {
		log.Fatal(err)
	}
	if err := p.WriteSVG(f, *flagWidth, *flagHeight); err != nil {
		log.Fatal(err)
	}
}

type inputs struct {
	laps, stints, telemetry string
}

func buildChart(kind string, in inputs, driverList string, palette Palette, title string) (*gg.Plot, error) {
	switch kind {
	case "telemetry":
		samples := readTelemetry(in)
		return chart.Telemetry(samples, chart.TelemetryOptions{
			Drivers: splitDrivers(driverList),
			Colors:  palette.Drivers,
			Title:   title,
		}), nil

	case "box":
		ll := readLaps(in)
		return chart.LapTimeBox(ll, chart.BoxOptions{
			Order:  splitDrivers(driverList),
			Colors: palette.Drivers,
			Title:  title,
		}), nil

	case "distribution":
		ll := readLaps(in)
		return chart.Distribution(ll, chart.DistributionOptions{
			Order:          splitDrivers(driverList),
			DriverColors:   palette.Drivers,
			CompoundColors: palette.Compounds,
			Title:          title,
		}), nil

	case "positions":
		ll := readLaps(in)
		return chart.Positions(ll, chart.PositionOptions{
			Colors: palette.Drivers,
			Title:  title,
		}), nil

	case "strategy":
		stints := readStints(in)
		drivers := splitDrivers(driverList)
		if drivers == nil {
			drivers = stintDrivers(stints)
		}
		return chart.TyreStrategy(drivers, stints, chart.StrategyOptions{
			Colors: palette.Compounds,
			Title:  title,
		}), nil

	case "stints":
		ll := readLaps(in)
		stints := readStints(in)
		session := laps.NewSession(ll)
		drivers := splitDrivers(driverList)
		if drivers == nil {
			drivers = session.Drivers()
		}
		return chart.StintLaps(drivers, session, stints, chart.StintLapsOptions{
			Colors: palette.Drivers,
			Title:  title,
		})
	}
	return nil, fmt.Errorf("unknown chart %q", kind)
}

// printTable prints the reconciled lap table, or the raw lap table
// when no stint file was given.
func printTable(w io.Writer, in inputs, driverList string) {
	ll := readLaps(in)
	if in.stints != "" {
		session := laps.NewSession(ll)
		drivers := splitDrivers(driverList)
		if drivers == nil {
			drivers = session.Drivers()
		}
		var err error
		ll, err = laps.Reconcile(drivers, session, readStints(in))
		if err != nil {
			log.Fatal(err)
		}
	}
	table.Fprint(w, laps.Table(ll))
}

func splitDrivers(list string) []string {
	if list == "" {
		return nil
	}
	var out []string
	for _, d := range strings.Split(list, ",") {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	return out
}

func stintDrivers(stints []laps.Stint) []string {
	var out []string
	seen := make(map[string]bool)
	for _, st := range stints {
		if !seen[st.Driver] {
			seen[st.Driver] = true
			out = append(out, st.Driver)
		}
	}
	return out
}

func readLaps(in inputs) []laps.Lap {
	f := openInput(in.laps, "-laps")
	defer f.Close()
	ll, err := laps.ReadLaps(f)
	if err != nil {
		log.Fatalf("%s: %s", in.laps, err)
	}
	return ll
}

func readStints(in inputs) []laps.Stint {
	f := openInput(in.stints, "-stints")
	defer f.Close()
	stints, err := laps.ReadStints(f)
	if err != nil {
		log.Fatalf("%s: %s", in.stints, err)
	}
	return stints
}

func readTelemetry(in inputs) []laps.TelemetrySample {
	f := openInput(in.telemetry, "-telemetry")
	defer f.Close()
	samples, err := laps.ReadTelemetry(f)
	if err != nil {
		log.Fatalf("%s: %s", in.telemetry, err)
	}
	return samples
}

func openInput(path, flagName string) *os.File {
	if path == "" {
		log.Fatalf("this chart needs %s", flagName)
	}
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	return f
}
