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
	"iter"
	"maps"
	"math"
	"slices"
)

// segment is a straight polygon side, before conversion to an edge.
type segment struct {
	x0, y0 float64
	x1, y1 float64
}

// EdgeTable is the global edge table of a polygon: the polygon's edges,
// bucketed by the scanline on which they become active.
//
// Small tables store one bucket per scanline in [YMin, YMax]. Tables
// spanning more than denseTableRows scanlines keep only the occupied
// buckets in a map.
type EdgeTable struct {
	// YMin and YMax are the integer vertical bounds of the polygon.
	// Scanlines YMin to YMax-1 can contain filled pixels.
	YMin, YMax int

	dense  [][]Edge       // dense[y-YMin] holds the edges starting at y
	byLine map[int][]Edge // used instead of dense if sparse is set
	starts []int          // sorted keys of byLine
	sparse bool
	n      int // total number of edges
}

// BuildEdgeTable constructs the global edge table for the polygon.
//
// Horizontal sides, and sides which do not cross any scanline, are
// omitted. Polygons with fewer than three vertices give an empty table.
func BuildEdgeTable(poly Polygon) *EdgeTable {
	t := &EdgeTable{}
	t.build(polygonSegments(nil, poly))
	return t
}

// polygonSegments appends the sides of poly to dst, including the side
// which connects the last vertex back to the first one.
func polygonSegments(dst []segment, poly Polygon) []segment {
	n := len(poly)
	if n < 3 {
		return dst
	}
	for i, p := range poly {
		q := poly[(i+1)%n]
		dst = append(dst, segment{
			x0: float64(p.X), y0: float64(p.Y),
			x1: float64(q.X), y1: float64(q.Y),
		})
	}
	return dst
}

// build fills the table from the given polygon sides, reusing the
// table's storage where possible.
func (t *EdgeTable) build(segs []segment) {
	t.n = 0
	t.starts = t.starts[:0]
	clear(t.byLine)

	if len(segs) == 0 {
		t.YMin, t.YMax = 0, 0
		t.dense = t.dense[:0]
		t.sparse = false
		return
	}

	yLow := math.Inf(1)
	yHigh := math.Inf(-1)
	for _, s := range segs {
		yLow = min(yLow, s.y0, s.y1)
		yHigh = max(yHigh, s.y0, s.y1)
	}
	t.YMin = int(math.Ceil(yLow))
	t.YMax = int(math.Ceil(yHigh))

	// The difference can overflow int for huge coordinates, but is
	// correct when read as unsigned.
	t.sparse = uint(t.YMax-t.YMin) >= denseTableRows
	if t.sparse {
		t.dense = t.dense[:0]
		if t.byLine == nil {
			t.byLine = make(map[int][]Edge)
		}
	} else {
		rows := t.YMax - t.YMin + 1
		t.dense = slices.Grow(t.dense[:0], rows)[:rows]
		for i := range t.dense {
			t.dense[i] = t.dense[i][:0]
		}
	}

	for _, s := range segs {
		e, y, ok := newEdge(s.x0, s.y0, s.x1, s.y1)
		if !ok {
			continue
		}
		if t.sparse {
			t.byLine[y] = append(t.byLine[y], e)
		} else {
			t.dense[y-t.YMin] = append(t.dense[y-t.YMin], e)
		}
		t.n++
	}

	if t.sparse {
		t.starts = slices.AppendSeq(t.starts, maps.Keys(t.byLine))
		slices.Sort(t.starts)
	}
}

// Len returns the number of edges in the table.
func (t *EdgeTable) Len() int {
	return t.n
}

// Empty reports whether the table contains no edges.
// Filling an empty table writes no pixels.
func (t *EdgeTable) Empty() bool {
	return t.n == 0
}

// Bucket returns the edges which become active on scanline y.
// The returned slice must not be modified.
func (t *EdgeTable) Bucket(y int) []Edge {
	if t.sparse {
		return t.byLine[y]
	}
	i := y - t.YMin
	if i < 0 || i >= len(t.dense) {
		return nil
	}
	return t.dense[i]
}

// All iterates over the edges in the table, in order of the scanline on
// which they become active.
func (t *EdgeTable) All() iter.Seq2[int, Edge] {
	return func(yield func(int, Edge) bool) {
		if t.sparse {
			for _, y := range t.starts {
				for _, e := range t.byLine[y] {
					if !yield(y, e) {
						return
					}
				}
			}
			return
		}
		for i, bucket := range t.dense {
			for _, e := range bucket {
				if !yield(t.YMin+i, e) {
					return
				}
			}
		}
	}
}

// nextStart returns the first scanline >= y on which edges become active.
// If there is no such scanline, ok is false.
func (t *EdgeTable) nextStart(y int) (next int, ok bool) {
	if t.sparse {
		i, _ := slices.BinarySearch(t.starts, y)
		if i == len(t.starts) {
			return 0, false
		}
		return t.starts[i], true
	}
	for i := max(y-t.YMin, 0); i < len(t.dense); i++ {
		if len(t.dense[i]) > 0 {
			return t.YMin + i, true
		}
	}
	return 0, false
}
