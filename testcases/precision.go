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

import "image"

// precisionCases exercise the boundary conventions: pixels exactly on
// polygon edges, very thin polygons, and vertices shared by several
// edges.
var precisionCases = []TestCase{
	{
		Name:     "sliver",
		Vertices: []image.Point{pt(0, 0), pt(63, 1), pt(0, 2)},
		Width:    64,
		Height:   64,
		Convex:   true,
	},
	{
		Name:     "near_horizontal",
		Vertices: []image.Point{pt(2, 10), pt(61, 13), pt(61, 20), pt(2, 17)},
		Width:    64,
		Height:   64,
		Convex:   true,
	},
	{
		Name:     "single_row",
		Vertices: []image.Point{pt(5, 5), pt(60, 5), pt(60, 6), pt(5, 6)},
		Width:    64,
		Height:   64,
		Convex:   true,
	},
	{
		Name:     "steep",
		Vertices: []image.Point{pt(30, 2), pt(33, 62), pt(31, 62)},
		Width:    64,
		Height:   64,
		Convex:   true,
	},
	{
		// two triangles meeting in a single vertex
		Name:     "bowtie",
		Vertices: []image.Point{pt(10, 10), pt(54, 54), pt(54, 10), pt(10, 54)},
		Width:    64,
		Height:   64,
	},
	{
		// a square with extra vertices in the middle of every side
		Name: "collinear",
		Vertices: []image.Point{
			pt(10, 10), pt(10, 30), pt(10, 50), pt(30, 50),
			pt(50, 50), pt(50, 30), pt(50, 10), pt(30, 10),
		},
		Width:  60,
		Height: 60,
		Convex: true,
	},
	{
		// local minima and maxima on the same scanline
		Name: "zigzag",
		Vertices: []image.Point{
			pt(4, 32), pt(12, 8), pt(20, 32), pt(28, 8), pt(36, 32),
			pt(44, 8), pt(52, 32), pt(60, 56), pt(4, 56),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name:     "partly_outside",
		Vertices: []image.Point{pt(-10, -10), pt(40, -5), pt(70, 70), pt(-5, 40)},
		Width:    64,
		Height:   64,
		Convex:   true,
	},
}
