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

package scanfill

import "image/color"

// Raster is a pixel grid which can be painted by the filler.
//
// Coordinates are in user space, with the origin in the bottom-left
// corner and y increasing upwards. Implementations must silently ignore
// pixels outside the grid.
type Raster interface {
	SetPixel(x, y int, c color.RGBA)
}

// FillSpan sets the pixels x0, ..., x1 (inclusive) on scanline y to c.
// If x0 > x1, the bounds are swapped.
func FillSpan(dst Raster, y, x0, x1 int, c color.RGBA) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		dst.SetPixel(x, y, c)
	}
}
