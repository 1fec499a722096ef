package testcases

import (
	"image"
	"math"
)

var fillCases = []TestCase{
	{
		Name:     "square",
		Vertices: []image.Point{pt(10, 10), pt(10, 50), pt(50, 50), pt(50, 10)},
		Width:    60,
		Height:   60,
		Convex:   true,
	},
	{
		Name:     "right_triangle",
		Vertices: []image.Point{pt(0, 0), pt(0, 10), pt(10, 0)},
		Width:    16,
		Height:   16,
		Convex:   true,
	},
	{
		Name:     "triangle",
		Vertices: []image.Point{pt(10, 14), pt(32, 54), pt(54, 14)},
		Width:    64,
		Height:   64,
		Convex:   true,
	},
	{
		Name:     "diamond",
		Vertices: []image.Point{pt(32, 4), pt(60, 32), pt(32, 60), pt(4, 32)},
		Width:    64,
		Height:   64,
		Convex:   true,
	},
	{
		Name:     "hexagon",
		Vertices: regularPolygon(32, 32, 26, 6),
		Width:    64,
		Height:   64,
		Convex:   true,
	},
	{
		Name: "arrow",
		Vertices: []image.Point{
			pt(4, 24), pt(36, 24), pt(36, 8), pt(60, 32),
			pt(36, 56), pt(36, 40), pt(4, 40),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "l_shape",
		Vertices: []image.Point{
			pt(8, 8), pt(56, 8), pt(56, 24), pt(24, 24), pt(24, 56), pt(8, 56),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name:     "comb",
		Vertices: comb(4, 4, 60, 60, 7),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "star",
		Vertices: fivePointStar(32, 32, 25),
		Width:    64,
		Height:   64,
	},
	{
		// the worked example from the exercise sheet
		Name: "exercise",
		Vertices: []image.Point{
			pt(10, 10), pt(10, 50), pt(40, 20), pt(40, 40), pt(70, 10),
		},
		Width:  120,
		Height: 80,
	},
}

// regularPolygon returns the vertices of a regular n-gon, rounded to
// integer coordinates.
func regularPolygon(cx, cy, r float64, n int) []image.Point {
	pts := make([]image.Point, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		pts[i] = pt(
			int(math.Round(cx+r*math.Cos(angle))),
			int(math.Round(cy+r*math.Sin(angle))),
		)
	}
	return pts
}

// fivePointStar builds a five-pointed star (self-intersecting),
// with vertices rounded to integer coordinates.
func fivePointStar(cx, cy, r float64) []image.Point {
	// draw star: 0 -> 2 -> 4 -> 1 -> 3
	order := []int{0, 2, 4, 1, 3}
	pts := make([]image.Point, len(order))
	for i, k := range order {
		angle := float64(k)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(
			int(math.Round(cx+r*math.Cos(angle))),
			int(math.Round(cy+r*math.Sin(angle))),
		)
	}
	return pts
}

// comb builds a polygon with n teeth pointing upwards, inside the
// rectangle (x1, y1)-(x2, y2). The base of the comb is a quarter of the
// total height.
func comb(x1, y1, x2, y2, n int) []image.Point {
	base := y1 + (y2-y1)/4
	step := float64(x2-x1) / float64(n)

	pts := []image.Point{pt(x1, y1), pt(x2, y1)}
	for i := n; i > 0; i-- {
		right := x1 + int(math.Round(float64(i)*step))
		left := x1 + int(math.Round((float64(i)-0.5)*step))
		pts = append(pts, pt(right, y2), pt(left, base))
	}
	pts = append(pts, pt(x1, y2))
	return pts
}
