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
	"bufio"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/iconfont/internal/float"
	"seehuhn.de/go/iconfont/outline"
)

// WriteFile writes the outline p to the SVG file fname.
// See Encode for the meaning of the remaining arguments.
func WriteFile(fname string, p outline.Path, width, ascent, descent int) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = Encode(fd, p, width, ascent, descent)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

// Encode writes the outline p, given in font coordinates, as an SVG image.
// The image covers the advance width horizontally and the range from
// descent to ascent vertically.
func Encode(w io.Writer, p outline.Path, width, ascent, descent int) error {
	bw := bufio.NewWriter(w)

	height := ascent - descent
	fmt.Fprintln(bw, `<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 %d %d %d">`+"\n",
		width, height, -ascent, width, height)
	if len(p) > 0 {
		fmt.Fprintf(bw, "<path d=\"%s\"/>\n", PathData(p))
	}
	fmt.Fprintln(bw, "</svg>")

	return bw.Flush()
}

// PathData formats an outline in font coordinates as the value of an SVG
// "d" attribute.  Coordinates are rounded to three decimal places.
func PathData(p outline.Path) string {
	var buf []byte
	for _, seg := range p {
		if len(buf) > 0 {
			buf = append(buf, ' ')
		}
		switch seg.Cmd {
		case outline.MoveTo:
			buf = append(buf, 'M')
		case outline.LineTo:
			buf = append(buf, 'L')
		case outline.QuadTo:
			buf = append(buf, 'Q')
		case outline.CubeTo:
			buf = append(buf, 'C')
		case outline.Close:
			buf = append(buf, 'Z')
		}
		for i := range seg.Cmd.NumPoints() {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = appendNumber(buf, seg.Pts[i].X)
			buf = append(buf, ' ')
			buf = appendNumber(buf, -seg.Pts[i].Y)
		}
	}
	return string(buf)
}

// precision is the number of decimal digits used for coordinates.
const precision = 3

func appendNumber(buf []byte, x float64) []byte {
	return float.Append(buf, x, precision)
}
