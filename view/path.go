package view

import (
	"cxdash/models"
	"cxdash/utils"
	"math"
	"strings"
)

// linePath returns SVG path data through points, which must be sorted by X.
func linePath(curve string, points []Point) string {
	if len(points) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("M" + coord(points[0].X, points[0].Y))
	if len(points) == 1 {
		return b.String()
	}
	if curve != models.MONOTONE_CURVE || len(points) == 2 {
		for _, p := range points[1:] {
			b.WriteString("L" + coord(p.X, p.Y))
		}
		return b.String()
	}

	tangents := monotoneTangents(points)
	for i := 1; i < len(points); i++ {
		p0, p1 := points[i-1], points[i]
		dx := (p1.X - p0.X) / 3
		b.WriteString("C" + coord(p0.X+dx, p0.Y+dx*tangents[i-1]) +
			"," + coord(p1.X-dx, p1.Y-dx*tangents[i]) +
			"," + coord(p1.X, p1.Y))
	}
	return b.String()
}

// monotoneTangents computes Fritsch-Carlson tangents, so the curve never overshoots between two points.
func monotoneTangents(points []Point) []float64 {
	n := len(points)
	tangents := make([]float64, n)
	for i := 1; i < n-1; i++ {
		p0, p1, p2 := points[i-1], points[i], points[i+1]
		h0, h1 := p1.X-p0.X, p2.X-p1.X
		s0, s1 := (p1.Y-p0.Y)/h0, (p2.Y-p1.Y)/h1
		p := (s0*h1 + s1*h0) / (h0 + h1)
		tangents[i] = (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
	}
	tangents[0] = endTangent(points[0], points[1], tangents[1])
	tangents[n-1] = endTangent(points[n-2], points[n-1], tangents[n-2])
	return tangents
}

func endTangent(a, b Point, t float64) float64 {
	h := b.X - a.X
	if h == 0 {
		return t
	}
	return (3*(b.Y-a.Y)/h - t) / 2
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func coord(x, y float64) string {
	return utils.FormatNumber(x, 2) + "," + utils.FormatNumber(y, 2)
}
