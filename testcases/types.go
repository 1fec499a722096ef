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

// Package testcases contains named polygons used to test and benchmark
// the scanline filler.
package testcases

import "image"

// TestCase defines a single polygon fill test.
type TestCase struct {
	Name     string        // lowercase a-z, 0-9 and _ only
	Vertices []image.Point // the polygon, implicitly closed
	Width    int           // canvas width in pixels
	Height   int           // canvas height in pixels

	// Convex is set if the polygon is convex.
	Convex bool
}

// pt is a helper to create an image.Point from x, y coordinates.
func pt(x, y int) image.Point {
	return image.Point{X: x, Y: y}
}
