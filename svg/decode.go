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

// Package svg converts between SVG files and glyph outlines.
//
// SVG user units are used as font design units, without scaling.  Since
// the y axis of SVG points downwards, all y coordinates change sign when
// converting in either direction.
package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/iconfont/outline"
)

// flipY maps SVG coordinates to font coordinates.
var flipY = matrix.Matrix{1, 0, 0, -1, 0, 0}

// ReadFile reads the outlines from the SVG file fname.
func ReadFile(fname string) (outline.Path, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	p, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return p, nil
}

// Decode reads an SVG image and returns the filled outlines it contains.
//
// The elements <path>, <rect>, <circle>, <ellipse>, <polygon> and
// <polyline> are converted, including the effect of transform attributes on
// them and on enclosing <g> and <svg> elements.  Elements with fill="none" and
// elements which cannot be filled (such as <line> or <text>) are ignored,
// as is everything inside <defs>, <clipPath>, <mask>, and similar
// containers.
func Decode(r io.Reader) (outline.Path, error) {
	d := xml.NewDecoder(r)
	d.Strict = false

	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil, errNoSVG
		} else if err != nil {
			return nil, err
		}
		e, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if e.Name.Local != "svg" {
			return nil, errNoSVG
		}

		dec := &decoder{d: d}
		err = dec.group(e, flipY, false)
		if err != nil {
			return nil, err
		}
		return dec.res, nil
	}
}

var errNoSVG = errors.New("missing <svg> root element")

type decoder struct {
	d   *xml.Decoder
	res outline.Path
}

// group converts the children of the container element e.  The matrix
// ctm maps the coordinate system of e's parent to font coordinates.
func (dec *decoder) group(e xml.StartElement, ctm matrix.Matrix, noFill bool) error {
	m, err := elementMatrix(e)
	if err != nil {
		return err
	}
	ctm = m.Mul(ctm)
	noFill = noFill || hasNoFill(e)

	for {
		tok, err := dec.d.Token()
		if err != nil {
			if err == io.EOF {
				return io.ErrUnexpectedEOF
			}
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			err = dec.element(t, ctm, noFill)
			if err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (dec *decoder) element(e xml.StartElement, ctm matrix.Matrix, noFill bool) error {
	switch e.Name.Local {
	case "g", "svg", "a", "switch":
		return dec.group(e, ctm, noFill)
	case "path", "rect", "circle", "ellipse", "polygon", "polyline":
		// handled below
	default:
		return dec.d.Skip()
	}

	if noFill || hasNoFill(e) {
		return dec.d.Skip()
	}

	m, err := elementMatrix(e)
	if err != nil {
		return err
	}
	ctm = m.Mul(ctm)

	var p outline.Path
	switch e.Name.Local {
	case "path":
		p, err = ParsePathData(attr(e, "d"))
	case "rect":
		p, err = rectPath(e)
	case "circle":
		p, err = ellipsePath(e, "r", "r")
	case "ellipse":
		p, err = ellipsePath(e, "rx", "ry")
	case "polygon", "polyline":
		// a filled polyline is implicitly closed
		p, err = polygonPath(attr(e, "points"))
	}
	if err != nil {
		return fmt.Errorf("<%s>: %w", e.Name.Local, err)
	}
	dec.res = append(dec.res, p.Transform(ctm)...)

	return dec.d.Skip()
}

func attr(e xml.StartElement, name string) string {
	for _, a := range e.Attr {
		if a.Name.Local == name && a.Name.Space == "" {
			return a.Value
		}
	}
	return ""
}

func hasNoFill(e xml.StartElement) bool {
	if strings.TrimSpace(attr(e, "fill")) == "none" {
		return true
	}
	for _, decl := range strings.Split(attr(e, "style"), ";") {
		key, val, ok := strings.Cut(decl, ":")
		if ok && strings.TrimSpace(key) == "fill" && strings.TrimSpace(val) == "none" {
			return true
		}
	}
	return false
}

func elementMatrix(e xml.StartElement) (matrix.Matrix, error) {
	m := matrix.Identity
	if e.Name.Local == "svg" {
		// nested <svg> elements are positioned by x and y
		x, err := length(attr(e, "x"))
		if err != nil {
			return m, err
		}
		y, err := length(attr(e, "y"))
		if err != nil {
			return m, err
		}
		m = matrix.Matrix{1, 0, 0, 1, x, y}
	}
	t := attr(e, "transform")
	if t == "" {
		return m, nil
	}
	tm, err := ParseTransform(t)
	if err != nil {
		return m, err
	}
	return tm.Mul(m), nil
}

// length parses a coordinate attribute.  Missing attributes are zero,
// and a trailing "px" unit is accepted.
func length(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func rectPath(e xml.StartElement) (outline.Path, error) {
	var v [6]float64
	for i, name := range []string{"x", "y", "width", "height", "rx", "ry"} {
		x, err := length(attr(e, name))
		if err != nil {
			return nil, err
		}
		v[i] = x
	}
	x, y, w, h, rx, ry := v[0], v[1], v[2], v[3], v[4], v[5]
	if w <= 0 || h <= 0 {
		return nil, nil
	}
	if attr(e, "rx") == "" {
		rx = ry
	}
	if attr(e, "ry") == "" {
		ry = rx
	}
	rx = min(rx, w/2)
	ry = min(ry, h/2)

	var p outline.Path
	if rx <= 0 || ry <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x+w, y)
		p.LineTo(x+w, y+h)
		p.LineTo(x, y+h)
		p.ClosePath()
		return p, nil
	}

	kx, ky := kappa*rx, kappa*ry
	p.MoveTo(x+rx, y)
	p.LineTo(x+w-rx, y)
	p.CubeTo(x+w-rx+kx, y, x+w, y+ry-ky, x+w, y+ry)
	p.LineTo(x+w, y+h-ry)
	p.CubeTo(x+w, y+h-ry+ky, x+w-rx+kx, y+h, x+w-rx, y+h)
	p.LineTo(x+rx, y+h)
	p.CubeTo(x+rx-kx, y+h, x, y+h-ry+ky, x, y+h-ry)
	p.LineTo(x, y+ry)
	p.CubeTo(x, y+ry-ky, x+rx-kx, y, x+rx, y)
	p.ClosePath()
	return p, nil
}

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936

func ellipsePath(e xml.StartElement, rxName, ryName string) (outline.Path, error) {
	var v [4]float64
	for i, name := range []string{"cx", "cy", rxName, ryName} {
		x, err := length(attr(e, name))
		if err != nil {
			return nil, err
		}
		v[i] = x
	}
	cx, cy, rx, ry := v[0], v[1], v[2], v[3]
	if rx <= 0 || ry <= 0 {
		return nil, nil
	}
	kx, ky := kappa*rx, kappa*ry

	var p outline.Path
	p.MoveTo(cx+rx, cy)
	p.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.ClosePath()
	return p, nil
}

func polygonPath(points string) (outline.Path, error) {
	s := &scanner{buf: []byte(points)}
	var coords []float64
	for {
		x, ok := s.number()
		if !ok {
			break
		}
		coords = append(coords, x)
	}
	if !s.done() {
		return nil, fmt.Errorf("invalid points %q", points)
	}
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("odd number of coordinates in %q", points)
	}

	var p outline.Path
	for i := 0; i < len(coords); i += 2 {
		if i == 0 {
			p.MoveTo(coords[0], coords[1])
		} else {
			p.LineTo(coords[i], coords[i+1])
		}
	}
	if len(p) > 0 {
		p.ClosePath()
	}
	return p, nil
}
