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

// Package scanfill fills polygons on a pixel raster using the classic
// scanline algorithm with a global edge table and an active edge table.
//
// Pixels are filled according to the even-odd rule. An edge covers the
// scanlines y with ceil(yLow) <= y < ceil(yHigh), and on each scanline a
// span covers the pixels x with ceil(xLeft) <= x < xRight. Polygons which
// share an edge therefore never write the same pixel twice.
//
// Coordinates use the user-space convention: the origin is in the
// bottom-left corner and y increases upwards. Mapping to the storage
// layout of an image is the job of the [Raster].
package scanfill

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"image"
	"image/color"
)

// Polygon is an ordered list of vertices. The polygon is implicitly
// closed: the last vertex connects back to the first one. At least three
// vertices are needed for a polygon to cover any pixels.
type Polygon []image.Point

// Draw fills the polygon with color c on dst.
//
// Polygons with fewer than three vertices leave dst unchanged.
func Draw(dst Raster, poly Polygon, c color.RGBA) {
	f := NewFiller()
	f.FillPolygon(poly, func(y, x0, x1 int) {
		FillSpan(dst, y, x0, x1, c)
	})
}
