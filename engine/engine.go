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

// Package engine defines the interface between the conversion pipelines
// and the font editing back end.
//
// The pipelines in the build and export packages only talk to fonts
// through the interfaces defined here.  The ttf package provides the
// implementation used by the command line tools.
package engine

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/iconfont/metadata"
)

// NoCode is returned by Glyph.Unicode for glyphs which are not mapped to a
// character.
const NoCode rune = -1

// Engine creates and loads fonts.
type Engine interface {
	// NewFont returns a new, empty font.
	NewFont() (Font, error)

	// Open loads an existing font file.
	Open(fname string) (Font, error)
}

// Font is an editable font.
//
// A font must be closed after use, also on error paths.
type Font interface {
	SetInfo(info *metadata.Info) error
	Info() *metadata.Info

	// CreateGlyph adds a glyph with the given code point and name.  If a
	// glyph of this name already exists, it is returned instead.
	CreateGlyph(code rune, name string) (Glyph, error)

	// Glyphs lists all glyphs of the font, in glyph ID order.  The
	// .notdef glyph is not included.
	Glyphs() []Glyph

	Round()
	Simplify()
	RemoveOverlap()
	AutoHint()

	// Generate writes the font to the file fname.
	Generate(fname string) error

	Close() error
}

// Glyph is a single glyph of a Font.
//
// Coordinates and bearings are given in font design units.
type Glyph interface {
	Name() string
	Unicode() rune

	// ImportOutlines reads the outlines from an SVG file and adds them to
	// the glyph.
	ImportOutlines(fname string) error

	BoundingBox() rect.Rect
	Transform(m matrix.Matrix)

	LeftSideBearing() int
	SetLeftSideBearing(lsb int)
	RightSideBearing() int
	SetRightSideBearing(rsb int)

	// Export writes the glyph outline as an SVG file.
	Export(fname string) error
}

// Cleanup applies the outline clean-up sequence used before a font is
// generated.
func Cleanup(f Font) {
	f.Round()
	f.Simplify()
	f.RemoveOverlap()
	f.Round()
	f.AutoHint()
}
