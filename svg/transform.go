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

	"seehuhn.de/go/geom/matrix"
)

// ParseTransform parses the value of an SVG transform attribute.
//
// The returned matrix uses the row vector convention of the geom package:
// for transform="t1 t2", t2 is applied first and the result equals
// t2.Mul(t1).
func ParseTransform(s string) (matrix.Matrix, error) {
	sc := &scanner{buf: []byte(s)}
	m := matrix.Identity
	for {
		sc.skipSeparator()
		if sc.done() {
			return m, nil
		}

		start := sc.pos
		for sc.pos < len(sc.buf) && isLetter(sc.buf[sc.pos]) {
			sc.pos++
		}
		name := string(sc.buf[start:sc.pos])
		sc.skipSpace()
		if sc.done() || sc.peek() != '(' {
			return m, fmt.Errorf("transform %q: expected '(' after %q", s, name)
		}
		sc.pos++

		var args []float64
		for {
			x, ok := sc.number()
			if !ok {
				break
			}
			args = append(args, x)
		}
		sc.skipSpace()
		if sc.done() || sc.peek() != ')' {
			return m, fmt.Errorf("transform %q: malformed arguments for %q", s, name)
		}
		sc.pos++

		t, err := transformFunc(name, args)
		if err != nil {
			return m, fmt.Errorf("transform %q: %w", s, err)
		}
		m = t.Mul(m)
	}
}

func transformFunc(name string, args []float64) (matrix.Matrix, error) {
	n := len(args)
	switch {
	case name == "matrix" && n == 6:
		return matrix.Matrix{args[0], args[1], args[2], args[3], args[4], args[5]}, nil
	case name == "translate" && (n == 1 || n == 2):
		ty := 0.0
		if n == 2 {
			ty = args[1]
		}
		return matrix.Translate(args[0], ty), nil
	case name == "scale" && (n == 1 || n == 2):
		sy := args[0]
		if n == 2 {
			sy = args[1]
		}
		return matrix.Scale(args[0], sy), nil
	case name == "rotate" && (n == 1 || n == 3):
		r := matrix.RotateDeg(args[0])
		if n == 1 {
			return r, nil
		}
		cx, cy := args[1], args[2]
		return matrix.Translate(-cx, -cy).Mul(r).Mul(matrix.Translate(cx, cy)), nil
	case name == "skewX" && n == 1:
		return matrix.Matrix{1, 0, math.Tan(args[0] * math.Pi / 180), 1, 0, 0}, nil
	case name == "skewY" && n == 1:
		return matrix.Matrix{1, math.Tan(args[0] * math.Pi / 180), 0, 1, 0, 0}, nil
	}
	return matrix.Identity, fmt.Errorf("unsupported transform %s with %d arguments", name, n)
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
