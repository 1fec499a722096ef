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
	"image"
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/scanfill/testcases"
)

func TestBuildEdgeTableSquare(t *testing.T) {
	poly := Polygon{{10, 10}, {10, 50}, {50, 50}, {50, 10}}
	table := BuildEdgeTable(poly)

	if table.YMin != 10 || table.YMax != 50 {
		t.Fatalf("bounds: got [%d, %d], want [10, 50]", table.YMin, table.YMax)
	}
	if table.Len() != 2 {
		t.Fatalf("got %d edges, want 2 (horizontal sides must be dropped)", table.Len())
	}

	bucket := table.Bucket(10)
	if len(bucket) != 2 {
		t.Fatalf("bucket 10: got %d edges, want 2", len(bucket))
	}
	xs := []float64{bucket[0].X, bucket[1].X}
	slices.Sort(xs)
	if xs[0] != 10 || xs[1] != 50 {
		t.Errorf("bucket 10: got x = %v, want [10 50]", xs)
	}
	for _, e := range bucket {
		if e.YTop != 50 {
			t.Errorf("edge %v: got YTop %d, want 50", e, e.YTop)
		}
		if e.InvSlope != 0 {
			t.Errorf("edge %v: got InvSlope %g, want 0", e, e.InvSlope)
		}
	}

	for y := 11; y <= 50; y++ {
		if n := len(table.Bucket(y)); n != 0 {
			t.Errorf("bucket %d: got %d edges, want 0", y, n)
		}
	}
	if table.Bucket(9) != nil || table.Bucket(51) != nil {
		t.Error("buckets outside the bounds must be empty")
	}
}

func TestBuildEdgeTableDegenerate(t *testing.T) {
	cases := []struct {
		name string
		poly Polygon
	}{
		{"nil", nil},
		{"one_vertex", Polygon{{3, 4}}},
		{"two_vertices", Polygon{{0, 0}, {10, 10}}},
		{"horizontal", Polygon{{0, 5}, {10, 5}, {20, 5}}},
		{"point", Polygon{{7, 7}, {7, 7}, {7, 7}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			table := BuildEdgeTable(c.poly)
			if !table.Empty() {
				t.Errorf("got %d edges, want empty table", table.Len())
			}
			for y, e := range table.All() {
				t.Errorf("unexpected edge %v at scanline %d", e, y)
			}
		})
	}
}

func TestNewEdge(t *testing.T) {
	cases := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           Edge
		wantStart      int
		wantOK         bool
	}{
		{
			name: "upwards",
			x1:   0, y1: 0, x2: 10, y2: 5,
			want:      Edge{YTop: 5, X: 0, InvSlope: 2},
			wantStart: 0,
			wantOK:    true,
		},
		{
			name: "downwards",
			x1:   10, y1: 5, x2: 0, y2: 0,
			want:      Edge{YTop: 5, X: 0, InvSlope: 2},
			wantStart: 0,
			wantOK:    true,
		},
		{
			name: "fractional_start",
			x1:   0, y1: 0.5, x2: 10, y2: 10.5,
			want:      Edge{YTop: 11, X: 0.5, InvSlope: 1},
			wantStart: 1,
			wantOK:    true,
		},
		{
			name: "horizontal",
			x1:   0, y1: 3, x2: 10, y2: 3,
		},
		{
			name: "between_scanlines",
			x1:   0, y1: 0.2, x2: 1, y2: 0.8,
		},
		{
			name: "negative",
			x1:   -4, y1: -8, x2: 4, y2: 8,
			want:      Edge{YTop: 8, X: -4, InvSlope: 0.5},
			wantStart: -8,
			wantOK:    true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, start, ok := newEdge(c.x1, c.y1, c.x2, c.y2)
			if ok != c.wantOK {
				t.Fatalf("got ok=%t, want %t", ok, c.wantOK)
			}
			if !ok {
				return
			}
			if e != c.want || start != c.wantStart {
				t.Errorf("got %v starting at %d, want %v starting at %d",
					e, start, c.want, c.wantStart)
			}
		})
	}
}

func TestCompareEdges(t *testing.T) {
	edges := []Edge{
		{YTop: 9, X: 3},
		{YTop: 4, X: 3},
		{YTop: 1, X: 5},
		{YTop: 7, X: -1},
	}
	slices.SortStableFunc(edges, compareEdges)
	want := []Edge{
		{YTop: 7, X: -1},
		{YTop: 4, X: 3},
		{YTop: 9, X: 3},
		{YTop: 1, X: 5},
	}
	if !slices.Equal(edges, want) {
		t.Errorf("got %v, want %v", edges, want)
	}
}

// TestSparseTable checks that tall polygons use the sparse representation
// and give the same buckets as the dense one would.
func TestSparseTable(t *testing.T) {
	poly := Polygon{{0, 0}, {0, 3 * denseTableRows}, {10, 0}}
	table := BuildEdgeTable(poly)
	if !table.sparse {
		t.Fatal("expected a sparse table")
	}
	if table.Len() != 2 {
		t.Fatalf("got %d edges, want 2", table.Len())
	}
	if n := len(table.Bucket(0)); n != 2 {
		t.Errorf("bucket 0: got %d edges, want 2", n)
	}
	if n := len(table.Bucket(1)); n != 0 {
		t.Errorf("bucket 1: got %d edges, want 0", n)
	}

	small := BuildEdgeTable(Polygon{{0, 0}, {0, 30}, {10, 0}})
	if small.sparse {
		t.Error("expected a dense table")
	}
}

// TestBuildEdgeTableHuge checks that the vertical extent of a polygon
// can exceed the range of int without breaking the table layout.
func TestBuildEdgeTableHuge(t *testing.T) {
	const m = math.MaxInt / 2
	poly := Polygon{{0, -m}, {0, m}, {10, 0}}
	table := BuildEdgeTable(poly)
	if !table.sparse {
		t.Fatal("expected a sparse table")
	}
	if table.Len() != 3 {
		t.Fatalf("got %d edges, want 3", table.Len())
	}
	if y, ok := table.nextStart(table.YMin); !ok || y != table.YMin {
		t.Errorf("nextStart(%d) = %d, %t", table.YMin, y, ok)
	}
}

func TestNextStart(t *testing.T) {
	for _, poly := range []Polygon{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		{{0, 0}, {10, 0}, {10, 10 + 2*denseTableRows}, {0, 10 + 2*denseTableRows}},
	} {
		// add a second square far above the first one
		table := &EdgeTable{}
		segs := polygonSegments(nil, poly)
		segs = polygonSegments(segs, Polygon{{0, 100}, {10, 100}, {10, 110}, {0, 110}})
		table.build(segs)

		if y, ok := table.nextStart(1); !ok || y != 100 {
			t.Errorf("sparse=%t: nextStart(1) = %d, %t, want 100, true", table.sparse, y, ok)
		}
		if y, ok := table.nextStart(0); !ok || y != 0 {
			t.Errorf("sparse=%t: nextStart(0) = %d, %t, want 0, true", table.sparse, y, ok)
		}
		if _, ok := table.nextStart(101); ok {
			t.Errorf("sparse=%t: nextStart(101) found a bucket", table.sparse)
		}
	}
}

// TestParity verifies that every scanline strictly inside the vertical
// range of a polygon intersects an even number of edges.
func TestParity(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				table := BuildEdgeTable(tc.Vertices)

				// count[y-YMin] is the number of active edges on scanline y
				count := make([]int, table.YMax-table.YMin+1)
				for start, e := range table.All() {
					count[start-table.YMin]++
					count[e.YTop-table.YMin]--
				}
				active := 0
				for i, delta := range count {
					active += delta
					y := table.YMin + i
					if y > table.YMin && y < table.YMax && active%2 != 0 {
						t.Errorf("scanline %d: %d active edges", y, active)
					}
				}
			})
		}
	}
}

func TestPolygonSegments(t *testing.T) {
	poly := Polygon{image.Pt(0, 0), image.Pt(4, 0), image.Pt(4, 3)}
	segs := polygonSegments(nil, poly)
	want := []segment{
		{x0: 0, y0: 0, x1: 4, y1: 0},
		{x0: 4, y0: 0, x1: 4, y1: 3},
		{x0: 4, y0: 3, x1: 0, y1: 0},
	}
	if !slices.Equal(segs, want) {
		t.Errorf("got %v, want %v", segs, want)
	}
}
