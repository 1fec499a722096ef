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

import "seehuhn.de/go/geom/vec"

// maxSubdivision limits the recursion depth of curve flattening.
// 2^16 segments per curve are more than any raster needs.
const maxSubdivision = 16

// pixelDelta maps a path-space difference vector to pixel space.
// The translation part of the CTM does not affect differences.
func (f *Filler) pixelDelta(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.CTM[0]*v.X + f.CTM[2]*v.Y,
		Y: f.CTM[1]*v.X + f.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// line segments, which are passed to emit in order.
// The curve is raised to a cubic and flattened by flattenCubic.
func (f *Filler) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	c1 := p0.Add(p1.Sub(p0).Mul(2.0 / 3.0))
	c2 := p2.Add(p1.Sub(p2).Mul(2.0 / 3.0))
	f.flattenCubic(p0, c1, c2, p2, emit)
}

// flattenCubic approximates the cubic Bézier curve p0, p1, p2, p3 by line
// segments, which are passed to emit in order. Every segment stays
// within f.Flatness pixels of the curve.
func (f *Filler) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	f.subdivideCubic(p0, p1, p2, p3, maxSubdivision, emit)
}

// subdivideCubic halves the curve with de Casteljau's algorithm until
// the control polygon is close enough to the chord.
func (f *Filler) subdivideCubic(p0, p1, p2, p3 vec.Vec2, depth int, emit func(from, to vec.Vec2)) {
	if depth == 0 || f.cubicIsFlat(p0, p1, p2, p3) {
		emit(p0, p3)
		return
	}

	p01 := p0.Add(p1).Mul(0.5)
	p12 := p1.Add(p2).Mul(0.5)
	p23 := p2.Add(p3).Mul(0.5)
	p012 := p01.Add(p12).Mul(0.5)
	p123 := p12.Add(p23).Mul(0.5)
	mid := p012.Add(p123).Mul(0.5)

	f.subdivideCubic(p0, p01, p012, mid, depth-1, emit)
	f.subdivideCubic(mid, p123, p23, p3, depth-1, emit)
}

// cubicIsFlat reports whether the chord p0-p3 approximates the curve
// within f.Flatness pixels.
//
// The curve differs from the chord, traversed at constant speed, by
// 3t(1-t)^2 d1 + 3t^2(1-t) d2, where d1 and d2 are the offsets of the
// inner control points from the points at 1/3 and 2/3 of the chord.
// This is at most 3/4 max(|d1|, |d2|).
func (f *Filler) cubicIsFlat(p0, p1, p2, p3 vec.Vec2) bool {
	third := p3.Sub(p0).Mul(1.0 / 3.0)
	d1 := f.pixelDelta(p1.Sub(p0.Add(third))).Length()
	d2 := f.pixelDelta(p2.Sub(p3.Sub(third))).Length()
	return 0.75*max(d1, d2) <= f.Flatness
}
