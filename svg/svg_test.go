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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/iconfont/outline"
)

func TestParsePathData(t *testing.T) {
	type testCase struct {
		in   string
		want func(p *outline.Path)
	}
	cases := []testCase{
		{"M10 20L30 40H50V60Z", func(p *outline.Path) {
			p.MoveTo(10, 20)
			p.LineTo(30, 40)
			p.LineTo(50, 40)
			p.LineTo(50, 60)
			p.ClosePath()
		}},
		{"m10 20l5 5h5v5z", func(p *outline.Path) {
			p.MoveTo(10, 20)
			p.LineTo(15, 25)
			p.LineTo(20, 25)
			p.LineTo(20, 30)
			p.ClosePath()
		}},
		{"M0,0 10,0 10,10z", func(p *outline.Path) {
			p.MoveTo(0, 0)
			p.LineTo(10, 0)
			p.LineTo(10, 10)
			p.ClosePath()
		}},
		{"M.5.5-1-1", func(p *outline.Path) {
			p.MoveTo(0.5, 0.5)
			p.LineTo(-1, -1)
		}},
		{"M0 0C0 10 10 10 10 0S20 -10 20 0", func(p *outline.Path) {
			p.MoveTo(0, 0)
			p.CubeTo(0, 10, 10, 10, 10, 0)
			p.CubeTo(10, -10, 20, -10, 20, 0)
		}},
		{"M0 0Q5 10 10 0T20 0", func(p *outline.Path) {
			p.MoveTo(0, 0)
			p.QuadTo(5, 10, 10, 0)
			p.QuadTo(15, -10, 20, 0)
		}},
		{"M0 0S10 10 20 0", func(p *outline.Path) {
			p.MoveTo(0, 0)
			p.CubeTo(0, 0, 10, 10, 20, 0)
		}},
		{"M10 10h10v10zl5 0", func(p *outline.Path) {
			p.MoveTo(10, 10)
			p.LineTo(20, 10)
			p.LineTo(20, 20)
			p.ClosePath()
			p.MoveTo(10, 10)
			p.LineTo(15, 10)
		}},
		{"", func(p *outline.Path) {}},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var want outline.Path
			c.want(&want)
			got, err := ParsePathData(c.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("wrong path (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParsePathDataErrors(t *testing.T) {
	for _, in := range []string{"M10", "10 10", "M0 0Z 5 5", "M0 0 L x", "M0 0A1 1 0 2 0 5 5"} {
		_, err := ParsePathData(in)
		if err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
}

func TestArc(t *testing.T) {
	p, err := ParsePathData("M0 0A10 10 0 0 1 20 0")
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 3 {
		t.Fatalf("expected two cubic pieces, got %d segments", len(p)-1)
	}
	if end := p[len(p)-1].End(); end != (vec.Vec2{X: 20, Y: 0}) {
		t.Errorf("arc ends at %v", end)
	}
	want := rect.Rect{LLx: 0, LLy: -10, URx: 20, URy: 0}
	if diff := cmp.Diff(want, p.BBox(), cmpopts.EquateApprox(0, 1e-3)); diff != "" {
		t.Errorf("wrong arc bbox (-want +got):\n%s", diff)
	}

	// the compact flag syntax gives the same result
	q, err := ParsePathData("M0 0a10 10 0 0120 0")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(p, q, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("compact arc differs (-want +got):\n%s", diff)
	}
}

func TestParseTransform(t *testing.T) {
	cases := []struct {
		in       string
		from, to vec.Vec2
	}{
		{"translate(10 20) scale(2)", vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 12, Y: 22}},
		{"scale(2) translate(10,20)", vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 22, Y: 42}},
		{"rotate(90)", vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 0, Y: 1}},
		{"rotate(90, 10, 0)", vec.Vec2{X: 20, Y: 0}, vec.Vec2{X: 10, Y: 10}},
		{"matrix(1,2,3,4,5,6)", vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 9, Y: 12}},
		{"skewX(45)", vec.Vec2{X: 0, Y: 1}, vec.Vec2{X: 1, Y: 1}},
		{"skewY(45)", vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 1, Y: 1}},
		{"translate(5)", vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 5, Y: 0}},
		{"", vec.Vec2{X: 3, Y: 4}, vec.Vec2{X: 3, Y: 4}},
	}
	for _, c := range cases {
		m, err := ParseTransform(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		got := m.Apply(c.from)
		if diff := cmp.Diff(c.to, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("%q: wrong result (-want +got):\n%s", c.in, diff)
		}
	}

	for _, in := range []string{"foo(1)", "translate(1", "scale()", "rotate(1 2)", "translate 1 2"} {
		if _, err := ParseTransform(in); err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
}

const testSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
  <title>test</title>
  <defs><path d="M0 0L1000 0L1000 1000Z"/></defs>
  <g transform="translate(0,100)">
    <rect x="0" y="0" width="10" height="20"/>
  </g>
  <path fill="none" stroke="black" d="M0 0L500 500"/>
  <g style="fill: none"><circle cx="0" cy="0" r="300"/></g>
  <line x1="0" y1="0" x2="400" y2="400"/>
  <circle cx="50" cy="50" r="5"/>
</svg>
`

func TestDecode(t *testing.T) {
	p, err := Decode(strings.NewReader(testSVG))
	if err != nil {
		t.Fatal(err)
	}
	cc := p.Contours()
	if len(cc) != 2 {
		t.Fatalf("expected 2 contours, got %d", len(cc))
	}

	// rectangle, moved down by 100 SVG units, in font coordinates
	want := rect.Rect{LLx: 0, LLy: -120, URx: 10, URy: -100}
	if diff := cmp.Diff(want, cc[0].BBox()); diff != "" {
		t.Errorf("wrong rectangle (-want +got):\n%s", diff)
	}
	want = rect.Rect{LLx: 45, LLy: -55, URx: 55, URy: -45}
	if diff := cmp.Diff(want, cc[1].BBox(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("wrong circle (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []string{
		"",
		`<html><body/></html>`,
		`<svg><path d="M0 0 L"/></svg>`,
		`<svg><g transform="spin(3)"><rect width="1" height="1"/></g></svg>`,
		`<svg><polygon points="0 0 1"/></svg>`,
		`<svg><g>`,
	}
	for _, in := range cases {
		if _, err := Decode(strings.NewReader(in)); err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	var p outline.Path
	p.MoveTo(0, 0)
	p.LineTo(100, 0)
	p.QuadTo(150, 50, 100, 100)
	p.CubeTo(80, 120, 20, 120, 0, 100)
	p.ClosePath()
	p.MoveTo(30, -150)
	p.LineTo(70, -150)
	p.LineTo(50, 650)
	p.ClosePath()

	buf := &bytes.Buffer{}
	err := Encode(buf, p, 200, 800, -200)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `viewBox="0 -800 200 1000"`) {
		t.Errorf("unexpected header:\n%s", buf.String())
	}

	q, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(p, q); diff != "" {
		t.Errorf("round trip failed (-want +got):\n%s", diff)
	}
}

func TestPathData(t *testing.T) {
	var p outline.Path
	p.MoveTo(0, 0)
	p.LineTo(0.5, 10)
	p.ClosePath()
	p = p.Transform(matrix.Matrix{1, 0, 0, -1, 0, 0}).Transform(matrix.Matrix{1, 0, 0, -1, 0, 0})
	got := PathData(p)
	want := "M0 0 L0.5 -10 Z"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestViewBox(t *testing.T) {
	cases := []struct {
		in   string
		ok   bool
		want rect.Rect
	}{
		{`<svg viewBox="0 0 24 24"><path d="M0 0h1v1z"/></svg>`, true, rect.Rect{URx: 24, URy: 24}},
		{`<?xml version="1.0"?><svg viewBox="-10,5 100,50"/>`, true, rect.Rect{LLx: -10, LLy: 5, URx: 90, URy: 55}},
		{`<svg width="10" height="10"/>`, false, rect.Rect{}},
	}
	for _, c := range cases {
		got, ok, err := ViewBox(strings.NewReader(c.in))
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if ok != c.ok {
			t.Errorf("%q: ok=%t, want %t", c.in, ok, c.ok)
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("%q: wrong viewBox (-want +got):\n%s", c.in, diff)
		}
	}

	for _, in := range []string{`<svg viewBox="0 0 24"/>`, `<svg viewBox="0 0 0 10"/>`, `<html/>`} {
		if _, _, err := ViewBox(strings.NewReader(in)); err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
}
