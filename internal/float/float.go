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

// Package float formats coordinates for text based file formats.
package float

import (
	"math"
	"strconv"
)

// Format formats x with at most the given number of digits after the
// decimal point.  Trailing zeros, and a trailing decimal point, are
// removed.  Values which round to zero are formatted as "0".
func Format(x float64, precision int) string {
	return string(Append(nil, x, precision))
}

// Append appends the formatted value of x to buf.  See Format for details.
func Append(buf []byte, x float64, precision int) []byte {
	precision = max(precision, 0)
	x = Round(x, precision)
	if x == 0 {
		return append(buf, '0')
	}

	buf = strconv.AppendFloat(buf, x, 'f', precision, 64)
	if precision == 0 {
		return buf
	}
	n := len(buf)
	for buf[n-1] == '0' {
		n--
	}
	if buf[n-1] == '.' {
		n--
	}
	return buf[:n]
}

// Round rounds x to the given number of digits after the decimal point.
// The result is never negative zero.
func Round(x float64, digits int) float64 {
	scale := math.Pow10(digits)
	y := math.Round(x*scale) / scale
	if y == 0 {
		return 0
	}
	return y
}
