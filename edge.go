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

import (
	"cmp"
	"math"
)

// Edge is the scan conversion state of a single non-horizontal polygon side.
type Edge struct {
	// YTop is the first scanline the edge no longer intersects.
	YTop int

	// X is the x-intersection of the edge with the current scanline.
	X float64

	// InvSlope is dx/dy, the change of X from one scanline to the next.
	InvSlope float64
}

// newEdge computes the edge for the side (x1,y1)-(x2,y2).
// The edge is active for the scanlines in [yStart, e.YTop).
// If the side does not cross any scanline, ok is false.
func newEdge(x1, y1, x2, y2 float64) (e Edge, yStart int, ok bool) {
	if y1 == y2 {
		return Edge{}, 0, false
	}
	if y1 > y2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	invSlope := (x2 - x1) / (y2 - y1)

	yLow := math.Ceil(y1)
	yHigh := math.Ceil(y2)
	if yLow == yHigh {
		return Edge{}, 0, false
	}

	e = Edge{
		YTop:     int(yHigh),
		X:        x1 + invSlope*(yLow-y1),
		InvSlope: invSlope,
	}
	return e, int(yLow), true
}

// compareEdges orders edges by their current x-intersection.
// Ties are broken by YTop, so that the order does not depend on the
// order in which edges were activated.
func compareEdges(a, b Edge) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.YTop, b.YTop)
}
