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

package testcases

import (
	"image"
	"math"
)

// largeCases contain polygons with many scanlines or many edges.
// Some of them extend far beyond the canvas.
var largeCases = []TestCase{
	{
		Name:     "large_square",
		Vertices: []image.Point{pt(50, 50), pt(50, 462), pt(462, 462), pt(462, 50)},
		Width:    512,
		Height:   512,
		Convex:   true,
	},
	{
		Name:     "large_dodecagon",
		Vertices: regularPolygon(256, 256, 200, 12),
		Width:    512,
		Height:   512,
		Convex:   true,
	},
	{
		Name:     "large_spiral",
		Vertices: spiral(256, 256, 20, 240, 5, 400),
		Width:    512,
		Height:   512,
	},
	{
		// taller than the dense edge table limit
		Name:     "very_tall",
		Vertices: []image.Point{pt(0, -100000), pt(250, 100000), pt(500, -100000)},
		Width:    512,
		Height:   512,
		Convex:   true,
	},
	{
		Name: "wide",
		Vertices: []image.Point{
			pt(-100000, 100), pt(100000, 100), pt(100000, 400), pt(-100000, 400),
		},
		Width:  512,
		Height: 512,
		Convex: true,
	},
}

// spiral builds a spiral shaped band with the given number of turns.
// The outer boundary is traced outwards, the inner boundary inwards.
func spiral(cx, cy, rMin, rMax, turns float64, n int) []image.Point {
	width := (rMax - rMin) / (turns + 1)

	pts := make([]image.Point, 0, 2*n)
	for i := range n {
		t := float64(i) / float64(n-1)
		angle := t * turns * 2 * math.Pi
		r := rMin + width + t*turns*width
		pts = append(pts, pt(
			int(math.Round(cx+r*math.Cos(angle))),
			int(math.Round(cy+r*math.Sin(angle))),
		))
	}
	for i := n - 1; i >= 0; i-- {
		t := float64(i) / float64(n-1)
		angle := t * turns * 2 * math.Pi
		r := rMin + t*turns*width + width/2
		pts = append(pts, pt(
			int(math.Round(cx+r*math.Cos(angle))),
			int(math.Round(cy+r*math.Sin(angle))),
		))
	}
	return pts
}
