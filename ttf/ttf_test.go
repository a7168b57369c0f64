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

package ttf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	xsfnt "golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/sfnt/glyf"

	"seehuhn.de/go/iconfont/engine"
	"seehuhn.de/go/iconfont/metadata"
	"seehuhn.de/go/iconfont/outline"
	"seehuhn.de/go/iconfont/svg"
)

// rectSVG is a 400x600 rectangle, sitting on the baseline, with a left
// side bearing of 100.
const rectSVG = `<svg xmlns="http://www.w3.org/2000/svg">
<rect x="100" y="-600" width="400" height="600"/>
</svg>
`

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(fname, []byte(content), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestGenerate(t *testing.T) {
	svgFile := writeTestFile(t, "rect.svg", rectSVG)

	f, err := Engine{}.NewFont()
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	err = f.SetInfo(&metadata.Info{
		FontName:   "TestIcons",
		FullName:   "Test Icons",
		FamilyName: "Test Icons",
		Weight:     "Regular",
		Version:    "1.0",
	})
	if err != nil {
		t.Fatal(err)
	}

	g, err := f.CreateGlyph('A', "square")
	if err != nil {
		t.Fatal(err)
	}
	err = g.ImportOutlines(svgFile)
	if err != nil {
		t.Fatal(err)
	}
	g.SetLeftSideBearing(50)
	g.SetRightSideBearing(70)
	engine.Cleanup(f)

	out := filepath.Join(t.TempDir(), "test.ttf")
	err = f.Generate(out)
	if err != nil {
		t.Fatal(err)
	}

	// verify the result using an independent TrueType reader
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	xf, err := xsfnt.Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if n := xf.NumGlyphs(); n != 2 {
		t.Errorf("expected 2 glyphs, got %d", n)
	}

	buf := &xsfnt.Buffer{}
	gid, err := xf.GlyphIndex(buf, 'A')
	if err != nil {
		t.Fatal(err)
	}
	if gid != 1 {
		t.Fatalf("'A' is mapped to glyph %d", gid)
	}
	name, err := xf.GlyphName(buf, gid)
	if err != nil {
		t.Fatal(err)
	}
	if name != "square" {
		t.Errorf("wrong glyph name %q", name)
	}

	ppem := fixed.Int26_6(xf.UnitsPerEm()) << 6
	bounds, advance, err := xf.GlyphBounds(buf, gid, ppem, font.HintingNone)
	if err != nil {
		t.Fatal(err)
	}
	// x/image uses a downward pointing y axis
	wantBounds := fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: fixed.I(50), Y: fixed.I(-600)},
		Max: fixed.Point26_6{X: fixed.I(450), Y: fixed.I(0)},
	}
	if bounds != wantBounds {
		t.Errorf("wrong bounds: got %v, want %v", bounds, wantBounds)
	}
	if advance != fixed.I(520) {
		t.Errorf("wrong advance width %v", advance)
	}

	if !hasTable(data, "gasp") {
		t.Error("missing gasp table")
	}

	// the family name is stored, the weight name is normalized
	f2, err := Engine{}.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f2.Close()
	info := f2.Info()
	if info.FamilyName != "Test Icons" {
		t.Errorf("wrong family name %q", info.FamilyName)
	}
	if info.Weight != "Normal" {
		t.Errorf("wrong weight %q", info.Weight)
	}
}

func hasTable(data []byte, tag string) bool {
	if len(data) < 12 {
		return false
	}
	numTables := int(data[4])<<8 | int(data[5])
	for i := range numTables {
		pos := 12 + 16*i
		if pos+4 > len(data) {
			return false
		}
		if string(data[pos:pos+4]) == tag {
			return true
		}
	}
	return false
}

func TestSideBearings(t *testing.T) {
	svgFile := writeTestFile(t, "rect.svg", rectSVG)

	f, err := Engine{}.NewFont()
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	gi, err := f.CreateGlyph(0xE950, "rect")
	if err != nil {
		t.Fatal(err)
	}
	g := gi.(*Glyph)
	err = g.ImportOutlines(svgFile)
	if err != nil {
		t.Fatal(err)
	}

	if lsb := g.LeftSideBearing(); lsb != 100 {
		t.Errorf("initial lsb = %d", lsb)
	}

	// moving the outline keeps the right side bearing
	rsb := g.RightSideBearing()
	g.SetLeftSideBearing(30)
	if got := g.BoundingBox().LLx; got != 30 {
		t.Errorf("outline starts at %g", got)
	}
	if got := g.RightSideBearing(); got != rsb {
		t.Errorf("rsb changed from %d to %d", rsb, got)
	}

	g.SetRightSideBearing(20)
	if got := g.Width(); got != 450 {
		t.Errorf("advance width = %g, want 450", got)
	}
	if got := g.RightSideBearing(); got != 20 {
		t.Errorf("rsb = %d, want 20", got)
	}
}

func TestCreateGlyph(t *testing.T) {
	f, err := Engine{}.NewFont()
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	g1, err := f.CreateGlyph('x', "x")
	if err != nil {
		t.Fatal(err)
	}
	g2, err := f.CreateGlyph('y', "x")
	if err != nil {
		t.Fatal(err)
	}
	if g1 != g2 {
		t.Error("creating an existing glyph returned a new glyph")
	}
	if n := len(f.Glyphs()); n != 1 {
		t.Errorf("font has %d glyphs", n)
	}

	_, err = f.CreateGlyph(0x1F600, "smile")
	var cpErr *CodePointError
	if !errors.As(err, &cpErr) {
		t.Errorf("expected CodePointError, got %v", err)
	}

	_, err = f.CreateGlyph('z', ".notdef")
	if err == nil {
		t.Error("creating .notdef succeeded")
	}
}

func TestClosed(t *testing.T) {
	f, err := Engine{}.NewFont()
	if err != nil {
		t.Fatal(err)
	}
	err = f.Close()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.CreateGlyph('a', "a"); err == nil {
		t.Error("CreateGlyph succeeded on closed font")
	}
	if err := f.Generate(filepath.Join(t.TempDir(), "x.ttf")); err == nil {
		t.Error("Generate succeeded on closed font")
	}
	if err := f.Close(); err == nil {
		t.Error("second Close succeeded")
	}
}

func openGoRegular(t *testing.T) *Font {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "goregular.ttf")
	err := os.WriteFile(fname, goregular.TTF, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	f, err := Engine{}.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return f.(*Font)
}

func findGlyph(f engine.Font, r rune) *Glyph {
	for _, g := range f.Glyphs() {
		if g.Unicode() == r {
			return g.(*Glyph)
		}
	}
	return nil
}

func TestOpen(t *testing.T) {
	f := openGoRegular(t)

	info := f.Info()
	if info.FamilyName != "Go" {
		t.Errorf("wrong family name %q", info.FamilyName)
	}
	if info.Encoding != "UnicodeBmp" && info.Encoding != "UnicodeFull" {
		t.Errorf("wrong encoding %q", info.Encoding)
	}
	if info.FontName == "" || info.Version == "" || info.Weight == "" {
		t.Errorf("incomplete metadata %#v", info)
	}

	g := findGlyph(f, 'A')
	if g == nil {
		t.Fatal("no glyph for 'A'")
	}
	if g.Name() != "A" {
		t.Errorf("glyph for 'A' is called %q", g.Name())
	}
	bbox := g.BoundingBox()
	if bbox.URx <= bbox.LLx {
		t.Fatal("'A' has no outline")
	}
	if bbox.LLy != 0 {
		t.Errorf("'A' does not sit on the baseline: %v", bbox)
	}

	sum := float64(g.LeftSideBearing()) + (bbox.URx - bbox.LLx) + float64(g.RightSideBearing())
	if sum != g.Width() {
		t.Errorf("bearings and bbox add up to %g, advance width is %g", sum, g.Width())
	}

	for _, g := range f.Glyphs() {
		if g.Name() == ".notdef" {
			t.Error(".notdef listed in Glyphs()")
		}
	}
}

func TestExportGlyph(t *testing.T) {
	f := openGoRegular(t)
	g := findGlyph(f, 'g')
	if g == nil {
		t.Fatal("no glyph for 'g'")
	}

	fname := filepath.Join(t.TempDir(), "g.svg")
	err := g.Export(fname)
	if err != nil {
		t.Fatal(err)
	}
	p, err := svg.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(g.Outline(), p); diff != "" {
		t.Errorf("exported outline differs (-want +got):\n%s", diff)
	}
}

func TestRegenerate(t *testing.T) {
	f := openGoRegular(t)
	before := findGlyph(f, '&')
	if before == nil {
		t.Fatal("no glyph for '&'")
	}

	out := filepath.Join(t.TempDir(), "copy.ttf")
	err := f.Generate(out)
	if err != nil {
		t.Fatal(err)
	}

	f2, err := Engine{}.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f2.Close()

	if len(f2.Glyphs()) != len(f.Glyphs()) {
		t.Errorf("glyph count changed from %d to %d", len(f.Glyphs()), len(f2.Glyphs()))
	}
	after := findGlyph(f2, '&')
	if after == nil {
		t.Fatal("no glyph for '&' after regenerating")
	}
	if after.Name() != before.Name() || after.Width() != before.Width() {
		t.Errorf("glyph changed from %s/%g to %s/%g",
			before.Name(), before.Width(), after.Name(), after.Width())
	}
	if diff := cmp.Diff(before.Outline(), after.Outline()); diff != "" {
		t.Errorf("outline changed (-want +got):\n%s", diff)
	}
}

func TestContours(t *testing.T) {
	var p outline.Path
	p.MoveTo(0, 0)
	p.LineTo(500, 0)
	p.QuadTo(600, 300, 500, 600)
	p.QuadTo(250, 900, 0, 600)
	p.ClosePath()
	p.MoveTo(100, 100)
	p.QuadTo(250, -300, 400, 100)
	p.QuadTo(250, 500, 100, 100)
	p.ClosePath()

	cc, err := toContours(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(cc) != 2 {
		t.Fatalf("expected 2 contours, got %d", len(cc))
	}
	if n := len(cc[1]); n != 4 {
		t.Errorf("second contour has %d points, want 4", n)
	}

	gg, maxpInfo := makeGlyphs([][]glyf.Contour{nil, cc})
	if maxpInfo.MaxContours != 2 || maxpInfo.MaxPoints != 10 {
		t.Errorf("wrong maxp statistics %+v", maxpInfo)
	}
	if gg[0] != nil {
		t.Errorf("empty glyph was encoded as %v", gg[0])
	}
	simple, ok := gg[1].Data.(glyf.SimpleGlyph)
	if !ok {
		t.Fatalf("unexpected glyph data %T", gg[1].Data)
	}
	unpacked, err := simple.Unpack()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(cc, unpacked.Contours); diff != "" {
		t.Errorf("contours changed (-want +got):\n%s", diff)
	}

	outlines := &glyf.Outlines{Glyphs: gg}
	q := fromPath(outlines.Path(1))
	if diff := cmp.Diff(p.BBox(), q.BBox()); diff != "" {
		t.Errorf("bounding box changed (-want +got):\n%s", diff)
	}
	if got := countCmd(q, outline.QuadTo); got != 4 {
		t.Errorf("found %d quadratic curves, want 4", got)
	}
}

func countCmd(p outline.Path, cmd outline.Command) int {
	n := 0
	for _, seg := range p {
		if seg.Cmd == cmd {
			n++
		}
	}
	return n
}

func TestImpliedPoints(t *testing.T) {
	// all points off-curve: a TrueType "circle"
	cc := []glyf.Contour{{
		{X: 0, Y: 100},
		{X: 100, Y: 100},
		{X: 100, Y: 0},
		{X: 0, Y: 0},
	}}
	gg, _ := makeGlyphs([][]glyf.Contour{cc})
	outlines := &glyf.Outlines{Glyphs: gg}
	p := fromPath(outlines.Path(0))

	if got := countCmd(p, outline.QuadTo); got != 4 {
		t.Errorf("found %d quadratic curves, want 4", got)
	}
	for _, seg := range p {
		if seg.Cmd == outline.Close {
			continue
		}
		end := seg.End()
		if end.X != 50 && end.Y != 50 {
			t.Errorf("curve ends at %v, not at an implied mid point", end)
		}
	}
	want := rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 100}
	if diff := cmp.Diff(want, p.BBox()); diff != "" {
		t.Errorf("wrong bounding box (-want +got):\n%s", diff)
	}
}

// TestOutlinesLoaded checks that every glyph which has an outline in the
// font file, simple or composite, is loaded with a non-empty path.
func TestOutlinesLoaded(t *testing.T) {
	xf, err := xsfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	f := openGoRegular(t)

	all := append([]*Glyph{f.notdef}, f.glyphs...)
	if len(all) != xf.NumGlyphs() {
		t.Fatalf("%d glyphs loaded, font has %d", len(all), xf.NumGlyphs())
	}
	buf := &xsfnt.Buffer{}
	ppem := fixed.Int26_6(xf.UnitsPerEm()) << 6
	for i, g := range all {
		segs, err := xf.LoadGlyph(buf, xsfnt.GlyphIndex(i), ppem, nil)
		if err != nil {
			t.Fatal(err)
		}
		if (len(segs) == 0) != (len(g.Outline()) == 0) {
			t.Errorf("glyph %d (%s): %d segments in the font, %d loaded",
				i, g.Name(), len(segs), len(g.Outline()))
		}
	}
}

func TestCoordinateOverflow(t *testing.T) {
	var p outline.Path
	p.MoveTo(0, 0)
	p.LineTo(40000, 0)
	p.LineTo(0, 10)
	p.ClosePath()
	_, err := toContours(p)
	if err != errOverflow {
		t.Errorf("expected overflow error, got %v", err)
	}
}
