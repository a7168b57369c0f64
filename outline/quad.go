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

// maxSplitDepth limits the recursion in ToQuadratic.
const maxSplitDepth = 8

// ToQuadratic returns a copy of the path where every cubic Bézier curve is
// replaced by one or more quadratic curves.  The approximation deviates from
// the original curve by at most tol.
func (p Path) ToQuadratic(tol float64) Path {
	res := make(Path, 0, len(p))
	var pen vec.Vec2
	for _, seg := range p {
		switch seg.Cmd {
		case CubeTo:
			res = appendQuads(res, pen, seg.Pts[0], seg.Pts[1], seg.Pts[2], tol, 0)
			pen = seg.Pts[2]
		case Close:
			res = append(res, seg)
		default:
			res = append(res, seg)
			pen = seg.End()
		}
	}
	return res
}

func appendQuads(res Path, p0, p1, p2, p3 vec.Vec2, tol float64, depth int) Path {
	// The distance between the cubic and its best single-quadratic
	// approximation is at most sqrt(3)/36 * |p3 - 3*p2 + 3*p1 - p0|.
	dx := p3.X - 3*p2.X + 3*p1.X - p0.X
	dy := p3.Y - 3*p2.Y + 3*p1.Y - p0.Y
	dist := math.Sqrt(3) / 36 * math.Hypot(dx, dy)

	if dist <= tol || depth >= maxSplitDepth {
		q := vec.Vec2{
			X: (3*(p1.X+p2.X) - p0.X - p3.X) / 4,
			Y: (3*(p1.Y+p2.Y) - p0.Y - p3.Y) / 4,
		}
		return append(res, Segment{Cmd: QuadTo, Pts: [3]vec.Vec2{q, p3}})
	}

	// de Casteljau split at t=1/2
	p01 := vec.Middle(p0, p1)
	p12 := vec.Middle(p1, p2)
	p23 := vec.Middle(p2, p3)
	p012 := vec.Middle(p01, p12)
	p123 := vec.Middle(p12, p23)
	m := vec.Middle(p012, p123)
	res = appendQuads(res, p0, p01, p012, m, tol, depth+1)
	return appendQuads(res, m, p123, p23, p3, tol, depth+1)
}
