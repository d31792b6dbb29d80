// Copyright 2025 The raceplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// A Palette holds driver and compound colors read from a YAML
// palette file:
//
//	drivers:
//	  VER: "#1e41ff"
//	  HAM: "#00d2be"
//	compounds:
//	  SOFT: "#da291c"
//	  MEDIUM: "#ffd12e"
//	  HARD: "#f0f0ec"
//
// Both sections are optional.
type Palette struct {
	Drivers   map[string]color.Color
	Compounds map[string]color.Color
}

type paletteFile struct {
	Drivers   map[string]string `yaml:"drivers"`
	Compounds map[string]string `yaml:"compounds"`
}

// ReadPalette parses a YAML palette from r.
func ReadPalette(r io.Reader) (Palette, error) {
	var pf paletteFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&pf); err != nil && err != io.EOF {
		return Palette{}, err
	}

	var p Palette
	var err error
	if p.Drivers, err = parseColors(pf.Drivers); err != nil {
		return Palette{}, err
	}
	if p.Compounds, err = parseColors(pf.Compounds); err != nil {
		return Palette{}, err
	}
	return p, nil
}

// ReadPaletteFile parses the YAML palette file at path.
func ReadPaletteFile(path string) (Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return Palette{}, err
	}
	defer f.Close()
	p, err := ReadPalette(f)
	if err != nil {
		return Palette{}, fmt.Errorf("%s: %s", path, err)
	}
	return p, nil
}

func parseColors(m map[string]string) (map[string]color.Color, error) {
	if m == nil {
		return nil, nil
	}
	out := make(map[string]color.Color, len(m))
	for name, hex := range m {
		c, err := parseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("%s: %s", name, err)
		}
		out[name] = c
	}
	return out, nil
}

// parseHexColor parses "#rrggbb" or "#rgb".
func parseHexColor(s string) (color.Color, error) {
	var c color.RGBA
	c.A = 0xff
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 0x11
		c.G *= 0x11
		c.B *= 0x11
	default:
		err = fmt.Errorf("bad color %q", s)
	}
	if err != nil {
		return nil, fmt.Errorf("bad color %q", s)
	}
	return c, nil
}
