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
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/geom/rect"
)

// ReadViewBox returns the viewBox of the root element of the SVG file
// fname.  See [ViewBox].
func ReadViewBox(fname string) (rect.Rect, bool, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return rect.Rect{}, false, err
	}
	box, ok, err := ViewBox(bytes.NewReader(data))
	if err != nil {
		return rect.Rect{}, false, fmt.Errorf("%s: %w", fname, err)
	}
	return box, ok, nil
}

// ViewBox returns the viewBox of the root <svg> element, in SVG user
// units.  The second return value is false if the root element has no
// viewBox attribute.
func ViewBox(r io.Reader) (rect.Rect, bool, error) {
	d := xml.NewDecoder(r)
	d.Strict = false

	for {
		tok, err := d.Token()
		if err == io.EOF {
			return rect.Rect{}, false, errNoSVG
		} else if err != nil {
			return rect.Rect{}, false, err
		}
		e, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if e.Name.Local != "svg" {
			return rect.Rect{}, false, errNoSVG
		}

		s := attr(e, "viewBox")
		if s == "" {
			return rect.Rect{}, false, nil
		}
		box, err := parseViewBox(s)
		if err != nil {
			return rect.Rect{}, false, err
		}
		return box, true, nil
	}
}

func parseViewBox(s string) (rect.Rect, error) {
	sc := &scanner{buf: []byte(s)}
	var v [4]float64
	for i := range v {
		x, ok := sc.number()
		if !ok {
			return rect.Rect{}, fmt.Errorf("malformed viewBox %q", s)
		}
		v[i] = x
	}
	if !sc.done() || v[2] <= 0 || v[3] <= 0 {
		return rect.Rect{}, fmt.Errorf("malformed viewBox %q", s)
	}
	return rect.Rect{LLx: v[0], LLy: v[1], URx: v[0] + v[2], URy: v[1] + v[3]}, nil
}
