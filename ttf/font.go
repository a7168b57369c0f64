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

// Package ttf implements the font engine on top of seehuhn.de/go/sfnt.
//
// New fonts use 1000 units per em, an ascent of 800 and a descent of -200.
// Glyph outlines are kept as paths in font design units and are converted
// to quadratic TrueType contours when the font is generated.
package ttf

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/head"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/iconfont/engine"
	"seehuhn.de/go/iconfont/glyphname"
	"seehuhn.de/go/iconfont/metadata"
)

// Default metrics for new fonts.
const (
	UnitsPerEm = 1000
	Ascent     = 800
	Descent    = -200
)

// quadTolerance is the maximal deviation, in font units, allowed when
// cubic curves are converted to quadratic ones.
const quadTolerance = 0.5

// Engine creates and loads TrueType fonts.
type Engine struct{}

// NewFont implements engine.Engine.
func (Engine) NewFont() (engine.Font, error) {
	f := &Font{
		info:       &metadata.Info{},
		unitsPerEm: UnitsPerEm,
		ascent:     Ascent,
		descent:    Descent,
		weight:     os2.WeightNormal,
		version:    0x00010000,
		byName:     make(map[string]*Glyph),
	}
	f.notdef = &Glyph{font: f, name: ".notdef", code: engine.NoCode, width: UnitsPerEm / 2}
	return f, nil
}

// Font is a TrueType font which is being edited.
type Font struct {
	info *metadata.Info

	unitsPerEm uint16
	ascent     int
	descent    int
	weight     os2.Weight
	version    head.Version
	created    time.Time

	notdef *Glyph
	glyphs []*Glyph
	byName map[string]*Glyph

	gasp   []byte
	closed bool
}

// SetInfo implements engine.Font.
//
// Family name, weight, version and copyright are stored in the generated
// font file.  Weight and version strings which cannot be parsed leave the
// defaults in place.  All fields are returned unchanged by Info.
//
// The PostScript name and the full name in the file are derived from the
// family name and the weight, so FontName and FullName do not reach the
// generated font; FontName is only used as the family name when
// FamilyName is empty.  Weight names are normalized when the file is read
// back, for example "Regular" is returned as "Normal" by [Engine.Open].
func (f *Font) SetInfo(info *metadata.Info) error {
	if f.closed {
		return errClosed
	}
	if w := os2.WeightFromString(info.Weight); w != 0 {
		f.weight = w
	}
	if v, err := head.VersionFromString(info.Version); err == nil {
		f.version = v
	}
	info2 := *info
	f.info = &info2
	return nil
}

// Info implements engine.Font.
func (f *Font) Info() *metadata.Info {
	info := *f.info
	return &info
}

// CreateGlyph implements engine.Font.
//
// Only code points in the Basic Multilingual Plane are supported.  New
// glyphs are empty and have an advance width of one em.
func (f *Font) CreateGlyph(code rune, name string) (engine.Glyph, error) {
	if f.closed {
		return nil, errClosed
	}
	if g, ok := f.byName[name]; ok {
		return g, nil
	}
	if name == "" || name == ".notdef" {
		return nil, fmt.Errorf("invalid glyph name %q", name)
	}
	if code < 0 || code > 0xFFFF {
		return nil, &CodePointError{Code: code, Name: name}
	}
	if len(f.glyphs)+1 >= math.MaxUint16 {
		return nil, errTooManyGlyphs
	}

	g := &Glyph{font: f, name: name, code: code, width: float64(f.unitsPerEm)}
	f.glyphs = append(f.glyphs, g)
	f.byName[name] = g
	return g, nil
}

// Glyphs implements engine.Font.
func (f *Font) Glyphs() []engine.Glyph {
	res := make([]engine.Glyph, len(f.glyphs))
	for i, g := range f.glyphs {
		res[i] = g
	}
	return res
}

// Round implements engine.Font.
func (f *Font) Round() {
	for _, g := range f.glyphs {
		g.path = g.path.Round()
		g.width = math.Round(g.width)
	}
}

// Simplify implements engine.Font.
func (f *Font) Simplify() {
	for _, g := range f.glyphs {
		g.path = g.path.Simplify()
	}
}

// RemoveOverlap implements engine.Font.
func (f *Font) RemoveOverlap() {
	for _, g := range f.glyphs {
		g.path = g.path.RemoveOverlap()
	}
}

// AutoHint implements engine.Font.
//
// No hinting instructions are generated.  Instead, a "gasp" table is
// added which asks rasterizers to use grayscale smoothing at all sizes.
func (f *Font) AutoHint() {
	f.gasp = gaspTable
}

// Generate implements engine.Font.
func (f *Font) Generate(fname string) error {
	if f.closed {
		return errClosed
	}
	font, err := f.makeFont()
	if err != nil {
		return err
	}

	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	_, err = font.Write(fd)
	if err != nil {
		fd.Close()
		return fmt.Errorf("%s: %w", fname, err)
	}
	return fd.Close()
}

func (f *Font) makeFont() (*sfnt.Font, error) {
	all := append([]*Glyph{f.notdef}, f.glyphs...)

	contours := make([][]glyf.Contour, len(all))
	widths := make([]funit.Int16, len(all))
	names := make([]string, len(all))
	cmapData := cmap.Format4{}
	for i, g := range all {
		cc, err := toContours(g.path.ToQuadratic(quadTolerance))
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", g.name, err)
		}
		contours[i] = cc

		w := math.Round(g.width)
		if w < 0 || w > math.MaxInt16 {
			return nil, fmt.Errorf("glyph %q: invalid advance width %g", g.name, g.width)
		}
		widths[i] = funit.Int16(w)
		names[i] = g.name

		if g.code == engine.NoCode {
			continue
		}
		if g.code > 0xFFFF {
			return nil, &CodePointError{Code: g.code, Name: g.name}
		}
		if _, seen := cmapData[uint16(g.code)]; !seen {
			cmapData[uint16(g.code)] = glyph.ID(i)
		}
	}

	gg, maxpInfo := makeGlyphs(contours)
	outlines := &glyf.Outlines{
		Glyphs: gg,
		Widths: widths,
		Names:  names,
		Maxp:   maxpInfo,
	}
	if f.gasp != nil {
		outlines.Tables = map[string][]byte{"gasp": f.gasp}
	}

	family := f.info.FamilyName
	if family == "" {
		family = f.info.FontName
	}
	created := f.created
	if created.IsZero() {
		created = time.Now()
	}

	q := 1 / float64(f.unitsPerEm)
	subtable := cmapData.Encode(0)
	font := &sfnt.Font{
		FamilyName: family,
		Width:      os2.WidthNormal,
		Weight:     f.weight,
		IsRegular:  f.weight == os2.WeightNormal,
		IsBold:     f.weight >= os2.WeightBold,

		Version:          f.version,
		CreationTime:     created,
		ModificationTime: time.Now(),
		Copyright:        f.info.Copyright,
		PermUse:          os2.PermInstall,

		UnitsPerEm: f.unitsPerEm,
		FontMatrix: matrix.Matrix{q, 0, 0, q, 0, 0},
		Ascent:     funit.Int16(f.ascent),
		Descent:    funit.Int16(f.descent),

		CMapTable: cmap.Table{
			{PlatformID: 0, EncodingID: 3}: subtable,
			{PlatformID: 3, EncodingID: 1}: subtable,
		},
		Outlines: outlines,
	}
	return font, nil
}

// Close implements engine.Font.
func (f *Font) Close() error {
	if f.closed {
		return errClosed
	}
	f.closed = true
	f.glyphs = nil
	f.byName = nil
	return nil
}

// CodePointError is returned when a glyph uses a code point which cannot be
// represented in the font.
type CodePointError struct {
	Code rune
	Name string
}

func (err *CodePointError) Error() string {
	return fmt.Sprintf("glyph %q: code point U+%04X outside the Basic Multilingual Plane",
		err.Name, err.Code)
}

var (
	errClosed        = errors.New("font is closed")
	errTooManyGlyphs = errors.New("too many glyphs")
)

var _ engine.Engine = Engine{}

// fallbackName returns the glyph name used for glyphs without a name in
// the font file.
func fallbackName(gid glyph.ID, code rune) string {
	if code != engine.NoCode {
		return glyphname.UnicodeName(code)
	}
	return fmt.Sprintf("glyph%d", gid)
}
