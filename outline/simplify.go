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

package outline

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Simplify returns a simplified copy of the path.
//
// Zero-length segments are removed, curves whose control points lie on
// the straight line between their end points are replaced by lines,
// consecutive collinear lines are merged, and contours which enclose no
// area are dropped.
func (p Path) Simplify() Path {
	var res Path
	for _, c := range p.Contours() {
		c = simplifyContour(c)
		if c != nil {
			res = append(res, c...)
		}
	}
	return res
}

func simplifyContour(c Path) Path {
	start := c[0].Pts[0]
	res := Path{c[0]}
	pen := start
	// prevPen is the start point of the last segment in res
	prevPen := start
	closed := false

	for _, seg := range c[1:] {
		switch seg.Cmd {
		case Close:
			closed = true
			continue
		case QuadTo:
			if onSegment(seg.Pts[0], pen, seg.Pts[1]) {
				seg = Segment{Cmd: LineTo, Pts: [3]vec.Vec2{seg.Pts[1]}}
			}
		case CubeTo:
			if onSegment(seg.Pts[0], pen, seg.Pts[2]) && onSegment(seg.Pts[1], pen, seg.Pts[2]) {
				seg = Segment{Cmd: LineTo, Pts: [3]vec.Vec2{seg.Pts[2]}}
			}
		}

		end := seg.End()
		if seg.Cmd == LineTo {
			if end == pen {
				continue
			}
			last := &res[len(res)-1]
			if last.Cmd == LineTo && onSegment(pen, prevPen, end) {
				last.Pts[0] = end
				pen = end
				continue
			}
		}
		res = append(res, seg)
		prevPen = pen
		pen = end
	}

	// The closing line is implied.
	if n := len(res); n > 1 && res[n-1].Cmd == LineTo && res[n-1].Pts[0] == start {
		res = res[:n-1]
	}
	if closed {
		res = append(res, Segment{Cmd: Close})
	}

	if !hasArea(res) {
		return nil
	}
	return res
}

// hasArea reports whether a contour can enclose a non-empty region.
func hasArea(c Path) bool {
	var pts []vec.Vec2
	for _, seg := range c {
		switch seg.Cmd {
		case QuadTo, CubeTo:
			return true
		case MoveTo, LineTo:
			pts = append(pts, seg.Pts[0])
		}
	}
	if len(pts) < 3 {
		return false
	}
	return math.Abs(polygonArea(pts)) > 0
}

// onSegment checks whether p lies on the line segment between a and b.
func onSegment(p, a, b vec.Vec2) bool {
	const eps = 1e-9
	cross := (p.Y-a.Y)*(b.X-a.X) - (p.X-a.X)*(b.Y-a.Y)
	scale := math.Max(1, math.Hypot(b.X-a.X, b.Y-a.Y))
	if math.Abs(cross) > eps*scale {
		return false
	}

	return p.X >= math.Min(a.X, b.X)-eps && p.X <= math.Max(a.X, b.X)+eps &&
		p.Y >= math.Min(a.Y, b.Y)-eps && p.Y <= math.Max(a.Y, b.Y)+eps
}

// polygonArea returns the signed area of a closed polygon.  The result is
// positive for counter-clockwise polygons.
func polygonArea(pts []vec.Vec2) float64 {
	var sum float64
	n := len(pts)
	for i := range n {
		a, b := pts[i], pts[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}
