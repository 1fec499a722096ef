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

// Package vertices reads and writes polygon vertex lists in a simple
// text format.
//
// Each line holds one vertex, either as "x y" or as "id x y". Commas may
// be used instead of whitespace. Lines starting with '#' are comments.
// Numbers are read up to the first token which is not an integer, so
// that trailing comments are allowed. Lines with fewer than two numbers
// are skipped.
//
// Example:
//
//	# id x y
//	1 10 10
//	2 10 50
//	3 40 20  # notch
//	4, 70, 10
package vertices

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrTooFewVertices is returned when the input contains fewer than three
// vertices.
var ErrTooFewVertices = errors.New("fewer than 3 vertices")

// Read reads a vertex list from r.
func Read(r io.Reader) ([]image.Point, error) {
	var pts []image.Point

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p, ok := parseLine(scanner.Text())
		if ok {
			pts = append(pts, p)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(pts) < 3 {
		return pts, ErrTooFewVertices
	}
	return pts, nil
}

// ReadFile reads a vertex list from the named file.
func ReadFile(name string) (pts []image.Point, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	pts, err = Read(f)
	if err != nil {
		return pts, fmt.Errorf("%s: %w", name, err)
	}
	return pts, nil
}

// parseLine extracts a vertex from one line of input.
func parseLine(line string) (image.Point, bool) {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "#") {
		return image.Point{}, false
	}

	var vals []int
	for _, field := range strings.Fields(strings.ReplaceAll(line, ",", " ")) {
		v, err := strconv.Atoi(field)
		if err != nil {
			break
		}
		vals = append(vals, v)
	}

	switch {
	case len(vals) >= 3:
		return image.Point{X: vals[1], Y: vals[2]}, true
	case len(vals) == 2:
		return image.Point{X: vals[0], Y: vals[1]}, true
	default:
		return image.Point{}, false
	}
}

// Write writes the vertices to w, one "id x y" line per vertex, with ids
// starting at 1.
func Write(w io.Writer, pts []image.Point) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# id x y")
	for i, p := range pts {
		fmt.Fprintf(bw, "%d %d %d\n", i+1, p.X, p.Y)
	}
	return bw.Flush()
}
