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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/iconfont/engine"
	"seehuhn.de/go/iconfont/outline"
	"seehuhn.de/go/iconfont/svg"
)

// Glyph is a single glyph of a Font.
type Glyph struct {
	font *Font

	name  string
	code  rune
	path  outline.Path
	width float64
}

// Name implements engine.Glyph.
func (g *Glyph) Name() string {
	return g.name
}

// Unicode implements engine.Glyph.
func (g *Glyph) Unicode() rune {
	return g.code
}

// Width returns the advance width of the glyph.
func (g *Glyph) Width() float64 {
	return g.width
}

// Outline returns the outline of the glyph, in font design units.
func (g *Glyph) Outline() outline.Path {
	return g.path
}

// ImportOutlines implements engine.Glyph.
// The outlines from the SVG file are added to the existing ones.
func (g *Glyph) ImportOutlines(fname string) error {
	p, err := svg.ReadFile(fname)
	if err != nil {
		return err
	}
	g.path = append(g.path, p...)
	return nil
}

// BoundingBox implements engine.Glyph.
func (g *Glyph) BoundingBox() rect.Rect {
	return g.path.BBox()
}

// Transform implements engine.Glyph.
// The advance width is not changed.
func (g *Glyph) Transform(m matrix.Matrix) {
	g.path = g.path.Transform(m)
}

// LeftSideBearing implements engine.Glyph.
func (g *Glyph) LeftSideBearing() int {
	return int(math.Round(g.BoundingBox().LLx))
}

// SetLeftSideBearing implements engine.Glyph.
// The outline is moved horizontally and the advance width changes by the
// same amount, so that the right side bearing is preserved.
func (g *Glyph) SetLeftSideBearing(lsb int) {
	delta := float64(lsb) - g.BoundingBox().LLx
	if delta == 0 {
		return
	}
	g.path = g.path.Translate(delta, 0)
	g.width += delta
}

// RightSideBearing implements engine.Glyph.
func (g *Glyph) RightSideBearing() int {
	return int(math.Round(g.width - g.BoundingBox().URx))
}

// SetRightSideBearing implements engine.Glyph.
// The advance width is set to the right edge of the bounding box plus rsb.
func (g *Glyph) SetRightSideBearing(rsb int) {
	g.width = g.BoundingBox().URx + float64(rsb)
}

// Export implements engine.Glyph.
// The SVG image covers the advance width and the font's ascent and
// descent.
func (g *Glyph) Export(fname string) error {
	return svg.WriteFile(fname, g.path, int(math.Round(g.width)), g.font.ascent, g.font.descent)
}

var _ engine.Glyph = (*Glyph)(nil)
