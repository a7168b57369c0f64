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

package svg

import (
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/iconfont/outline"
)

// ParsePathData converts the "d" attribute of an SVG <path> element into an
// outline.  The result uses SVG coordinates.
func ParsePathData(d string) (outline.Path, error) {
	s := &scanner{buf: []byte(d)}

	var p outline.Path
	var pen, start, ctrl vec.Vec2
	var cmd, prev byte
	needMove := true

	for {
		s.skipSpace()
		if s.done() {
			break
		}
		if c := s.peek(); isCommand(c) {
			cmd = c
			s.pos++
		} else if cmd == 0 || cmd == 'z' || cmd == 'Z' {
			return nil, fmt.Errorf("path data %q: expected command at offset %d", d, s.pos)
		}

		rel := cmd >= 'a'
		var base vec.Vec2
		if rel {
			base = pen
		}

		var nums [7]float64
		arity := commandArity[cmd|0x20]
		for i := 0; i < arity; i++ {
			var ok bool
			if cmd|0x20 == 'a' && (i == 3 || i == 4) {
				nums[i], ok = s.flag()
			} else {
				nums[i], ok = s.number()
			}
			if !ok {
				return nil, fmt.Errorf("path data %q: missing argument for %q at offset %d", d, cmd, s.pos)
			}
		}
		pt := func(i int) vec.Vec2 {
			return vec.Vec2{X: base.X + nums[i], Y: base.Y + nums[i+1]}
		}

		lower := cmd | 0x20
		if lower != 'm' && lower != 'z' && needMove {
			p.MoveTo(start.X, start.Y)
			needMove = false
		}

		switch lower {
		case 'z':
			p.ClosePath()
			pen = start
			needMove = true
		case 'm':
			pen = pt(0)
			start = pen
			p.MoveTo(pen.X, pen.Y)
			needMove = false
			// further coordinate pairs are implicit lineto commands
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'l':
			pen = pt(0)
			p.LineTo(pen.X, pen.Y)
		case 'h':
			pen = vec.Vec2{X: base.X + nums[0], Y: pen.Y}
			p.LineTo(pen.X, pen.Y)
		case 'v':
			pen = vec.Vec2{X: pen.X, Y: base.Y + nums[0]}
			p.LineTo(pen.X, pen.Y)
		case 'c':
			c1, c2, end := pt(0), pt(2), pt(4)
			p.CubeTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			ctrl, pen = c2, end
		case 's':
			c1 := pen
			if prev == 'c' || prev == 's' {
				c1 = reflect(ctrl, pen)
			}
			c2, end := pt(0), pt(2)
			p.CubeTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			ctrl, pen = c2, end
		case 'q':
			c, end := pt(0), pt(2)
			p.QuadTo(c.X, c.Y, end.X, end.Y)
			ctrl, pen = c, end
		case 't':
			c := pen
			if prev == 'q' || prev == 't' {
				c = reflect(ctrl, pen)
			}
			end := pt(0)
			p.QuadTo(c.X, c.Y, end.X, end.Y)
			ctrl, pen = c, end
		case 'a':
			end := pt(5)
			arcTo(&p, pen, nums[0], nums[1], nums[2], nums[3] != 0, nums[4] != 0, end)
			pen = end
		}
		prev = lower
	}
	return p, nil
}

var commandArity = map[byte]int{
	'm': 2, 'l': 2, 'h': 1, 'v': 1, 'c': 6, 's': 4, 'q': 4, 't': 2, 'a': 7, 'z': 0,
}

func isCommand(c byte) bool {
	_, ok := commandArity[c|0x20]
	return ok && (c|0x20) >= 'a' && (c|0x20) <= 'z'
}

func reflect(ctrl, pen vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: 2*pen.X - ctrl.X, Y: 2*pen.Y - ctrl.Y}
}

// arcTo appends an elliptical arc, following the endpoint parametrization
// of SVG 1.1 (appendix F.6), as a sequence of cubic Bézier curves.
func arcTo(p *outline.Path, p0 vec.Vec2, rx, ry, phiDeg float64, large, sweep bool, p1 vec.Vec2) {
	if p0 == p1 {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		p.LineTo(p1.X, p1.Y)
		return
	}

	phi := phiDeg * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	dx2 := (p0.X - p1.X) / 2
	dy2 := (p0.Y - p1.Y) / 2
	x1 := cosPhi*dx2 + sinPhi*dy2
	y1 := -sinPhi*dx2 + cosPhi*dy2

	// enlarge the radii if the end point cannot be reached
	lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(math.Max(0, num/den))
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx
	cx := cosPhi*cx1 - sinPhi*cy1 + (p0.X+p1.X)/2
	cy := sinPhi*cx1 + cosPhi*cy1 + (p0.Y+p1.Y)/2

	theta1 := angle(1, 0, (x1-cx1)/rx, (y1-cy1)/ry)
	dTheta := angle((x1-cx1)/rx, (y1-cy1)/ry, (-x1-cx1)/rx, (-y1-cy1)/ry)
	if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	} else if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	}

	mapPoint := func(x, y float64) vec.Vec2 {
		return vec.Vec2{
			X: cx + rx*cosPhi*x - ry*sinPhi*y,
			Y: cy + rx*sinPhi*x + ry*cosPhi*y,
		}
	}

	n := int(math.Ceil(math.Abs(dTheta) / (math.Pi / 2)))
	delta := dTheta / float64(n)
	t := 4.0 / 3.0 * math.Tan(delta/4)
	for i := range n {
		a1 := theta1 + float64(i)*delta
		a2 := a1 + delta
		s1, c1 := math.Sincos(a1)
		s2, c2 := math.Sincos(a2)
		q1 := mapPoint(c1-t*s1, s1+t*c1)
		q2 := mapPoint(c2+t*s2, s2-t*c2)
		end := mapPoint(c2, s2)
		if i == n-1 {
			end = p1
		}
		p.CubeTo(q1.X, q1.Y, q2.X, q2.Y, end.X, end.Y)
	}
}

func angle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}

// scanner tokenizes SVG attribute values.
type scanner struct {
	buf []byte
	pos int
}

func (s *scanner) done() bool {
	s.skipSpace()
	return s.pos >= len(s.buf)
}

func (s *scanner) peek() byte {
	return s.buf[s.pos]
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.buf) && isSpace(s.buf[s.pos]) {
		s.pos++
	}
}

// skipSeparator skips white space and at most one comma.
func (s *scanner) skipSeparator() {
	s.skipSpace()
	if s.pos < len(s.buf) && s.buf[s.pos] == ',' {
		s.pos++
		s.skipSpace()
	}
}

func (s *scanner) number() (float64, bool) {
	s.skipSeparator()
	if s.pos >= len(s.buf) {
		return 0, false
	}
	x, n := strconv.ParseFloat(s.buf[s.pos:])
	if n == 0 {
		return 0, false
	}
	s.pos += n
	return x, true
}

// flag reads an arc flag.  Flags may be written without separators,
// as in "a1 1 0 00 1 1".
func (s *scanner) flag() (float64, bool) {
	s.skipSeparator()
	if s.pos >= len(s.buf) {
		return 0, false
	}
	switch s.buf[s.pos] {
	case '0':
		s.pos++
		return 0, true
	case '1':
		s.pos++
		return 1, true
	}
	return 0, false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
