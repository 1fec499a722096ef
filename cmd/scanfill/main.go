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

// Command scanfill fills a polygon, read from a vertex file, and writes
// the result as an image.
//
// Usage:
//
//	scanfill output W H vertices.txt [R G B]
//
// The output format is chosen by the file extension: .ppm, .png, .bmp,
// .tif or .tiff. The fill colour defaults to black.
//
// Environment variables:
//
//	SCANFILL_BACKGROUND  background colour as R,G,B (default 255,255,255)
//	SCANFILL_SCALE       integer upscaling factor for the output (default 1)
//	SCANFILL_PPM_BINARY  write binary (P6) instead of plain (P3) PPM files
//	SCANFILL_LOG_LEVEL   DEBUG, INFO, WARN or ERROR (default WARN)
package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strconv"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/scanfill"
	"seehuhn.de/go/scanfill/ppm"
	"seehuhn.de/go/scanfill/vertices"
)

const usage = `usage: scanfill output W H vertices.txt [R G B]

examples:
  scanfill polygon.ppm 120 80 vertices.txt
  scanfill polygon_red.png 120 80 vertices.txt 255 0 0
`

var errUsage = errors.New("invalid arguments")

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "scanfill:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	scanfill.SetLogger(logger)

	err = run(os.Args[1:], cfg, os.Stdout)
	if errors.Is(err, errUsage) {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, "scanfill:", err)
		os.Exit(1)
	}
}

// run executes the command with the given arguments (not including the
// program name) and writes a summary to stdout.
func run(args []string, cfg *Config, stdout io.Writer) error {
	if len(args) != 4 && len(args) != 7 {
		return errUsage
	}
	outName := args[0]
	vertexFile := args[3]

	width, errW := strconv.Atoi(args[1])
	height, errH := strconv.Atoi(args[2])
	if errW != nil || errH != nil || width <= 0 || height <= 0 {
		return fmt.Errorf("width and height must be positive integers, got W=%s, H=%s",
			args[1], args[2])
	}

	fill := color.RGBA{A: 0xff}
	if len(args) == 7 {
		var v [3]int
		for i := range v {
			var err error
			v[i], err = strconv.Atoi(args[4+i])
			if err != nil {
				return fmt.Errorf("invalid colour component %q", args[4+i])
			}
		}
		fill = clampRGB(v[0], v[1], v[2])
	}

	encode, err := encoderFor(outName, cfg)
	if err != nil {
		return err
	}

	pts, err := vertices.ReadFile(vertexFile)
	if err != nil {
		return err
	}
	slog.Debug("vertices loaded", "file", vertexFile, "count", len(pts))

	img := ppm.New(width, height, color.RGBA(cfg.Background))

	f := scanfill.NewFiller()
	f.Clip = rect.Rect{URx: float64(width), URy: float64(height)}
	filled := 0
	f.FillPolygon(pts, func(y, x0, x1 int) {
		scanfill.FillSpan(img, y, x0, x1, fill)
		filled += x1 - x0 + 1
	})

	if err := writeImage(outName, upscale(img, cfg.Scale), encode); err != nil {
		return err
	}
	slog.Info("image written", "file", outName, "pixels", filled)

	fmt.Fprintf(stdout, "vertices:   %d (from %s)\n", len(pts), vertexFile)
	fmt.Fprintf(stdout, "image size: %d x %d pixels\n", width, height)
	fmt.Fprintf(stdout, "fill:       RGB(%d, %d, %d)\n", fill.R, fill.G, fill.B)
	fmt.Fprintf(stdout, "filled:     %d pixels\n", filled)
	fmt.Fprintf(stdout, "output:     %s\n", outName)
	return nil
}
