// seehuhn.de/go/iconfont - build icon fonts from SVG files
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

// Package outline represents glyph outlines and implements the clean-up
// operations applied to them before a font is written.
//
// Outlines use font coordinates: the y axis points upwards.
package outline

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Command identifies the type of a path segment.
type Command uint8

// These are the available path commands.
const (
	MoveTo Command = iota
	LineTo
	QuadTo
	CubeTo
	Close
)

// NumPoints returns the number of points used by the command.
func (cmd Command) NumPoints() int {
	switch cmd {
	case MoveTo, LineTo:
		return 1
	case QuadTo:
		return 2
	case CubeTo:
		return 3
	default:
		return 0
	}
}

func (cmd Command) String() string {
	switch cmd {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case QuadTo:
		return "QuadTo"
	case CubeTo:
		return "CubeTo"
	case Close:
		return "Close"
	default:
		return "Command(?)"
	}
}

// Segment is one element of a path.  Only the first Cmd.NumPoints()
// entries of Pts are used; the last of these is the end point.
type Segment struct {
	Cmd Command
	Pts [3]vec.Vec2
}

// End returns the end point of the segment.
// This must not be called for Close segments.
func (s Segment) End() vec.Vec2 {
	return s.Pts[s.Cmd.NumPoints()-1]
}

// Path is a sequence of contours.  Every contour starts with a MoveTo
// segment.  A contour may end with a Close segment; contours without one
// are closed implicitly when the outline is filled.
type Path []Segment

// MoveTo starts a new contour.
func (p *Path) MoveTo(x, y float64) {
	*p = append(*p, Segment{Cmd: MoveTo, Pts: [3]vec.Vec2{{X: x, Y: y}}})
}

// LineTo appends a straight line.
func (p *Path) LineTo(x, y float64) {
	*p = append(*p, Segment{Cmd: LineTo, Pts: [3]vec.Vec2{{X: x, Y: y}}})
}

// QuadTo appends a quadratic Bézier curve.
func (p *Path) QuadTo(x1, y1, x, y float64) {
	*p = append(*p, Segment{Cmd: QuadTo, Pts: [3]vec.Vec2{{X: x1, Y: y1}, {X: x, Y: y}}})
}

// CubeTo appends a cubic Bézier curve.
func (p *Path) CubeTo(x1, y1, x2, y2, x, y float64) {
	*p = append(*p, Segment{Cmd: CubeTo, Pts: [3]vec.Vec2{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x, Y: y}}})
}

// ClosePath closes the current contour.
func (p *Path) ClosePath() {
	*p = append(*p, Segment{Cmd: Close})
}

// Contours splits the path into its contours.
// Segments before the first MoveTo are dropped.
func (p Path) Contours() []Path {
	var res []Path
	start := -1
	for i, seg := range p {
		if seg.Cmd == MoveTo {
			if start >= 0 {
				res = append(res, p[start:i])
			}
			start = i
		}
	}
	if start >= 0 {
		res = append(res, p[start:])
	}
	return res
}

// Join concatenates contours into a single path.
func Join(contours []Path) Path {
	var res Path
	for _, c := range contours {
		res = append(res, c...)
	}
	return res
}

// Transform returns a copy of the path with m applied to every point.
// The matrix uses the PDF convention: a point (x, y) is mapped to
// (m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]).
func (p Path) Transform(m matrix.Matrix) Path {
	res := make(Path, len(p))
	for i, seg := range p {
		res[i].Cmd = seg.Cmd
		for j := 0; j < seg.Cmd.NumPoints(); j++ {
			res[i].Pts[j] = m.Apply(seg.Pts[j])
		}
	}
	return res
}

// Translate returns a copy of the path, shifted by (dx, dy).
func (p Path) Translate(dx, dy float64) Path {
	return p.Transform(matrix.Translate(dx, dy))
}

// Round returns a copy of the path with all coordinates rounded to
// integers.
func (p Path) Round() Path {
	res := make(Path, len(p))
	for i, seg := range p {
		res[i].Cmd = seg.Cmd
		for j := 0; j < seg.Cmd.NumPoints(); j++ {
			res[i].Pts[j] = vec.Vec2{
				X: roundZero(seg.Pts[j].X),
				Y: roundZero(seg.Pts[j].Y),
			}
		}
	}
	return res
}

// roundZero rounds to the nearest integer and avoids negative zero.
func roundZero(x float64) float64 {
	x = math.Round(x)
	if x == 0 {
		return 0
	}
	return x
}

// BBox returns the exact bounding box of the path, taking curve extrema
// into account.  The bounding box of an empty path is the zero rectangle.
func (p Path) BBox() rect.Rect {
	var bbox rect.Rect
	first := true
	add := func(v vec.Vec2) {
		if first {
			bbox = rect.Rect{LLx: v.X, LLy: v.Y, URx: v.X, URy: v.Y}
			first = false
			return
		}
		bbox.LLx = math.Min(bbox.LLx, v.X)
		bbox.LLy = math.Min(bbox.LLy, v.Y)
		bbox.URx = math.Max(bbox.URx, v.X)
		bbox.URy = math.Max(bbox.URy, v.Y)
	}

	var pen vec.Vec2
	for _, seg := range p {
		switch seg.Cmd {
		case MoveTo, LineTo:
			pen = seg.Pts[0]
			add(pen)
		case QuadTo:
			p0, p1, p2 := pen, seg.Pts[0], seg.Pts[1]
			add(p2)
			for _, t := range quadExtrema(p0, p1, p2) {
				add(quadAt(p0, p1, p2, t))
			}
			pen = p2
		case CubeTo:
			p0, p1, p2, p3 := pen, seg.Pts[0], seg.Pts[1], seg.Pts[2]
			add(p3)
			for _, t := range cubeExtrema(p0, p1, p2, p3) {
				add(cubeAt(p0, p1, p2, p3, t))
			}
			pen = p3
		}
	}
	return bbox
}

func quadExtrema(p0, p1, p2 vec.Vec2) []float64 {
	var res []float64
	for _, c := range [2][3]float64{{p0.X, p1.X, p2.X}, {p0.Y, p1.Y, p2.Y}} {
		den := c[0] - 2*c[1] + c[2]
		if den == 0 {
			continue
		}
		t := (c[0] - c[1]) / den
		if t > 0 && t < 1 {
			res = append(res, t)
		}
	}
	return res
}

func cubeExtrema(p0, p1, p2, p3 vec.Vec2) []float64 {
	var res []float64
	for _, c := range [2][4]float64{{p0.X, p1.X, p2.X, p3.X}, {p0.Y, p1.Y, p2.Y, p3.Y}} {
		// derivative: 3*(a*t^2 + b*t + c)
		a := -c[0] + 3*c[1] - 3*c[2] + c[3]
		b := 2 * (c[0] - 2*c[1] + c[2])
		cc := c[1] - c[0]
		for _, t := range solveQuadratic(a, b, cc) {
			if t > 0 && t < 1 {
				res = append(res, t)
			}
		}
	}
	return res
}

func solveQuadratic(a, b, c float64) []float64 {
	const eps = 1e-12
	if math.Abs(a) < eps {
		if math.Abs(b) < eps {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

func quadAt(p0, p1, p2 vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	return vec.Vec2{
		X: s*s*p0.X + 2*s*t*p1.X + t*t*p2.X,
		Y: s*s*p0.Y + 2*s*t*p1.Y + t*t*p2.Y,
	}
}

func cubeAt(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	a, b, c, d := s*s*s, 3*s*s*t, 3*s*t*t, t*t*t
	return vec.Vec2{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
