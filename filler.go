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
	"context"
	"log/slog"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// SpanFunc receives the horizontal runs of pixels to fill.
// All pixels x with x0 <= x <= x1 on scanline y are inside the polygon.
type SpanFunc func(y, x0, x1 int)

// Filler converts polygons into spans of pixels, one scanline at a time.
// Create one instance and reuse it for multiple polygons. Internal
// buffers grow as needed but never shrink.
//
// A Filler is not safe for concurrent use.
type Filler struct {
	// CTM transforms path coordinates to pixel coordinates in
	// [Filler.FillPath]. Polygons given to [Filler.FillPolygon] are always
	// in pixel coordinates.
	CTM matrix.Matrix

	// Clip restricts the emitted spans to this rectangle. Coordinates
	// must be integer-aligned. The zero rectangle disables clipping.
	Clip rect.Rect

	// Flatness controls the accuracy of curve approximation in
	// [Filler.FillPath], in pixels. Must be positive.
	Flatness float64

	table  EdgeTable // global edge table of the current polygon
	segs   []segment // polygon sides in pixel coordinates
	active []Edge    // active edge table
}

// NewFiller returns a Filler without clipping and with default values
// for the other parameters.
func NewFiller() *Filler {
	return &Filler{
		CTM:      matrix.Identity,
		Flatness: defaultFlatness,
	}
}

// Reset restores the default parameters, keeping the capacity of the
// internal buffers.
func (f *Filler) Reset() {
	f.CTM = matrix.Identity
	f.Clip = rect.Rect{}
	f.Flatness = defaultFlatness

	f.segs = f.segs[:0]
	f.active = f.active[:0]
}

// FillPolygon computes the pixels covered by the polygon and passes them
// to span, in order of increasing y and, within a scanline, increasing x.
//
// Polygons with fewer than three vertices produce no spans.
func (f *Filler) FillPolygon(poly Polygon, span SpanFunc) {
	f.segs = polygonSegments(f.segs[:0], poly)
	f.table.build(f.segs)
	f.Scan(&f.table, span)
}

// FillPath fills the path using the even-odd rule. Path coordinates are
// mapped to pixels using f.CTM. Curves are approximated by straight
// lines and open subpaths are closed implicitly.
func (f *Filler) FillPath(p path.Path, span SpanFunc) {
	f.collectPath(p)
	f.table.build(f.segs)
	f.Scan(&f.table, span)
}

// Scan sweeps the scanlines of the edge table from bottom to top and
// calls span for every run of pixels between consecutive pairs of edge
// intersections.
//
// If an odd number of edges is active on a scanline, the right-most
// edge is ignored for this scanline.
func (f *Filler) Scan(t *EdgeTable, span SpanFunc) {
	if t.Empty() {
		return
	}

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("scanline fill",
			"edges", t.Len(),
			"yMin", t.YMin,
			"yMax", t.YMax,
			"sparse", t.sparse)
	}

	clipped := f.Clip != (rect.Rect{})
	xMin, xMax := math.MinInt, math.MaxInt
	yMin, yMax := t.YMin, t.YMax
	if clipped {
		xMin = int(f.Clip.LLx)
		xMax = int(f.Clip.URx) - 1
		yMax = min(yMax, int(f.Clip.URy))
		if xMin > xMax {
			return
		}
	}
	yVisible := yMin
	if clipped {
		yVisible = max(yMin, int(f.Clip.LLy))
	}

	f.active = f.active[:0]
	for y := yMin; y < yMax; y++ {
		// activate the edges starting on this scanline
		f.active = append(f.active, t.Bucket(y)...)

		// retire the edges ending below this scanline
		active := f.active[:0]
		for _, e := range f.active {
			if e.YTop > y {
				active = append(active, e)
			}
		}
		f.active = active

		if len(f.active) == 0 {
			next, ok := t.nextStart(y + 1)
			if !ok {
				break
			}
			y = next - 1
			continue
		}

		if y >= yVisible {
			slices.SortStableFunc(f.active, compareEdges)

			for i := 0; i+1 < len(f.active); i += 2 {
				x0 := int(math.Ceil(f.active[i].X))
				x1 := int(math.Floor(f.active[i+1].X - spanEpsilon))
				x0 = max(x0, xMin)
				x1 = min(x1, xMax)
				if x0 <= x1 {
					span(y, x0, x1)
				}
			}
		}

		for i := range f.active {
			f.active[i].X += f.active[i].InvSlope
		}
	}
}

// collectPath walks the path and stores its sides, in pixel
// coordinates, in f.segs.
func (f *Filler) collectPath(p path.Path) {
	f.segs = f.segs[:0]

	var current vec.Vec2 // current point
	var start vec.Vec2   // start of the current subpath
	open := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				f.addSegment(current, start)
			}
			current = pts[0]
			start = current
			open = true

		case path.CmdLineTo:
			f.addSegment(current, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			f.flattenQuadratic(current, pts[0], pts[1], f.addSegment)
			current = pts[1]

		case path.CmdCubeTo:
			f.flattenCubic(current, pts[0], pts[1], pts[2], f.addSegment)
			current = pts[2]

		case path.CmdClose:
			f.addSegment(current, start)
			current = start
		}
	}
	if open {
		f.addSegment(current, start)
	}
}

// addSegment transforms a polygon side to pixel coordinates and stores it.
func (f *Filler) addSegment(p0, p1 vec.Vec2) {
	if p0 == p1 {
		return
	}

	x0 := f.CTM[0]*p0.X + f.CTM[2]*p0.Y + f.CTM[4]
	y0 := f.CTM[1]*p0.X + f.CTM[3]*p0.Y + f.CTM[5]
	x1 := f.CTM[0]*p1.X + f.CTM[2]*p1.Y + f.CTM[4]
	y1 := f.CTM[1]*p1.X + f.CTM[3]*p1.Y + f.CTM[5]

	if !isFinite(x0) || !isFinite(y0) || !isFinite(x1) || !isFinite(y1) {
		return
	}

	f.segs = append(f.segs, segment{x0: x0, y0: y0, x1: x1, y1: y1})
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// Default values for filler parameters.
const (
	// defaultFlatness is the default curve flattening tolerance in
	// pixels. Without anti-aliasing, errors below half a pixel are
	// rarely visible.
	defaultFlatness = 0.25
)

// Numerical constants for the scanline sweep.
const (
	// spanEpsilon is subtracted from the right intersection of a span
	// before rounding down, so that an intersection which should lie
	// exactly on a pixel boundary does not add an extra pixel due to
	// rounding errors in the incremental x updates.
	spanEpsilon = 1e-9

	// denseTableRows is the maximum number of scanlines for which the
	// edge table allocates one bucket per scanline. Taller polygons
	// use a map of occupied scanlines instead.
	denseTableRows = 65536
)
