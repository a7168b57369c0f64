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
	"fmt"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// RemoveOverlap prepares the contours of a path for non-zero filling.
//
// Exact duplicates of a contour are removed.  Each remaining contour is then
// oriented according to how many other contours enclose it: contours at
// even depth run clockwise and contours at odd depth counter-clockwise.
// Partially overlapping contours are kept as they are.
func (p Path) RemoveOverlap() Path {
	contours := p.Contours()

	seen := make(map[string]bool, len(contours))
	unique := contours[:0:0]
	for _, c := range contours {
		key := contourKey(c)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, c)
	}

	polys := make([][]vec.Vec2, len(unique))
	for i, c := range unique {
		polys[i] = flatten(c)
	}

	res := make([]Path, len(unique))
	for i, c := range unique {
		res[i] = c
		if len(polys[i]) < 3 {
			continue
		}
		depth := 0
		probe := polys[i][0]
		for j, other := range polys {
			if j != i && len(other) >= 3 && insidePolygon(probe, other) {
				depth++
			}
		}
		area := polygonArea(polys[i])
		wantClockwise := depth%2 == 0
		if (wantClockwise && area > 0) || (!wantClockwise && area < 0) {
			res[i] = Reverse(c)
		}
	}
	return Join(res)
}

func contourKey(c Path) string {
	b := &strings.Builder{}
	for _, seg := range c {
		if seg.Cmd == Close {
			continue
		}
		fmt.Fprintf(b, "%d", seg.Cmd)
		for j := 0; j < seg.Cmd.NumPoints(); j++ {
			fmt.Fprintf(b, " %g %g", seg.Pts[j].X, seg.Pts[j].Y)
		}
		b.WriteByte(';')
	}
	return b.String()
}

// Reverse reverses the direction of a single contour.  The result always
// ends with a Close segment.
func Reverse(c Path) Path {
	if len(c) == 0 || c[0].Cmd != MoveTo {
		return c
	}
	start := c[0].Pts[0]

	type piece struct {
		from vec.Vec2
		seg  Segment
	}
	var pieces []piece
	pen := start
	for _, seg := range c[1:] {
		if seg.Cmd == Close || seg.Cmd == MoveTo {
			continue
		}
		pieces = append(pieces, piece{from: pen, seg: seg})
		pen = seg.End()
	}
	if pen != start {
		pieces = append(pieces, piece{
			from: pen,
			seg:  Segment{Cmd: LineTo, Pts: [3]vec.Vec2{start}},
		})
	}

	res := Path{{Cmd: MoveTo, Pts: [3]vec.Vec2{start}}}
	for i := len(pieces) - 1; i >= 0; i-- {
		pc := pieces[i]
		var seg Segment
		switch pc.seg.Cmd {
		case LineTo:
			seg = Segment{Cmd: LineTo, Pts: [3]vec.Vec2{pc.from}}
		case QuadTo:
			seg = Segment{Cmd: QuadTo, Pts: [3]vec.Vec2{pc.seg.Pts[0], pc.from}}
		case CubeTo:
			seg = Segment{Cmd: CubeTo, Pts: [3]vec.Vec2{pc.seg.Pts[1], pc.seg.Pts[0], pc.from}}
		}
		res = append(res, seg)
	}
	// The final segment returns to the start, which Close implies.
	if n := len(res); n > 1 && res[n-1].Cmd == LineTo {
		res = res[:n-1]
	}
	res = append(res, Segment{Cmd: Close})
	return res
}

// flatten approximates a contour by a polygon.
func flatten(c Path) []vec.Vec2 {
	const steps = 8
	var pts []vec.Vec2
	var pen vec.Vec2
	for _, seg := range c {
		switch seg.Cmd {
		case MoveTo, LineTo:
			pen = seg.Pts[0]
			pts = append(pts, pen)
		case QuadTo:
			for k := 1; k <= steps; k++ {
				pts = append(pts, quadAt(pen, seg.Pts[0], seg.Pts[1], float64(k)/steps))
			}
			pen = seg.Pts[1]
		case CubeTo:
			for k := 1; k <= steps; k++ {
				pts = append(pts, cubeAt(pen, seg.Pts[0], seg.Pts[1], seg.Pts[2], float64(k)/steps))
			}
			pen = seg.Pts[2]
		}
	}
	if n := len(pts); n > 1 && pts[n-1] == pts[0] {
		pts = pts[:n-1]
	}
	return pts
}

// insidePolygon uses the even-odd rule to decide whether p lies inside
// the polygon.
func insidePolygon(p vec.Vec2, poly []vec.Vec2) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}
