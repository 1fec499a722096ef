// seehuhn.de/go/scanfill - scanline polygon filling
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the settings which are read from the environment.
// Variable names carry the prefix SCANFILL_, e.g. SCANFILL_SCALE.
type Config struct {
	Background rgb        `envconfig:"BACKGROUND" default:"255,255,255"`
	Scale      int        `envconfig:"SCALE" default:"1"`
	PPMBinary  bool       `envconfig:"PPM_BINARY" default:"false"`
	LogLevel   slog.Level `envconfig:"LOG_LEVEL" default:"WARN"`
}

func loadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("scanfill", &cfg); err != nil {
		return nil, err
	}
	if cfg.Scale < 1 {
		return nil, fmt.Errorf("SCANFILL_SCALE must be at least 1, got %d", cfg.Scale)
	}
	return &cfg, nil
}

// rgb is an opaque colour, given as "R,G,B" in the environment.
type rgb color.RGBA

// Decode implements envconfig.Decoder.
func (c *rgb) Decode(value string) error {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return fmt.Errorf("invalid colour %q, expected R,G,B", value)
	}
	var v [3]int
	for i, s := range parts {
		var err error
		v[i], err = strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("invalid colour %q: %w", value, err)
		}
	}
	*c = rgb(clampRGB(v[0], v[1], v[2]))
	return nil
}

// clampRGB returns the opaque colour with the given components, each
// saturated to the range 0-255.
func clampRGB(r, g, b int) color.RGBA {
	sat := func(v int) uint8 {
		return uint8(min(max(v, 0), 255))
	}
	return color.RGBA{R: sat(r), G: sat(g), B: sat(b), A: 0xff}
}
