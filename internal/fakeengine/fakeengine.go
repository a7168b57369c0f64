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

// Package fakeengine implements an in-memory font engine for testing the
// conversion pipelines.
package fakeengine

import (
	"errors"
	"fmt"
	"math"
	"os"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/iconfont/engine"
	"seehuhn.de/go/iconfont/metadata"
	"seehuhn.de/go/iconfont/outline"
	"seehuhn.de/go/iconfont/svg"
)

// Engine is a fake font engine.  Fonts returned by Open are taken from the
// Fonts map.  All fonts handed out are recorded in Created.
type Engine struct {
	Fonts   map[string]*Font
	Created []*Font

	// NewFontErr, if set, is returned by NewFont.
	NewFontErr error
}

// NewFont implements engine.Engine.
func (e *Engine) NewFont() (engine.Font, error) {
	if e.NewFontErr != nil {
		return nil, e.NewFontErr
	}
	f := &Font{}
	e.Created = append(e.Created, f)
	return f, nil
}

// Open implements engine.Engine.
func (e *Engine) Open(fname string) (engine.Font, error) {
	f, ok := e.Fonts[fname]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: fname, Err: os.ErrNotExist}
	}
	e.Created = append(e.Created, f)
	return f, nil
}

// Font records the operations applied to it.
type Font struct {
	Meta      *metadata.Info
	GlyphList []*Glyph

	// Calls lists the font-level operations in the order they were
	// applied.
	Calls []string

	Closed bool

	// GenerateErr, if set, is returned by Generate.
	GenerateErr error
}

// SetInfo implements engine.Font.
func (f *Font) SetInfo(info *metadata.Info) error {
	f.Calls = append(f.Calls, "SetInfo")
	f.Meta = info
	return nil
}

// Info implements engine.Font.
func (f *Font) Info() *metadata.Info {
	if f.Meta == nil {
		return &metadata.Info{}
	}
	return f.Meta
}

// CreateGlyph implements engine.Font.
func (f *Font) CreateGlyph(code rune, name string) (engine.Glyph, error) {
	if f.Closed {
		return nil, errClosed
	}
	for _, g := range f.GlyphList {
		if g.GlyphName == name {
			return g, nil
		}
	}
	g := &Glyph{GlyphName: name, Code: code}
	f.GlyphList = append(f.GlyphList, g)
	return g, nil
}

// Glyphs implements engine.Font.
func (f *Font) Glyphs() []engine.Glyph {
	res := make([]engine.Glyph, len(f.GlyphList))
	for i, g := range f.GlyphList {
		res[i] = g
	}
	return res
}

// Round implements engine.Font.
func (f *Font) Round() { f.Calls = append(f.Calls, "Round") }

// Simplify implements engine.Font.
func (f *Font) Simplify() { f.Calls = append(f.Calls, "Simplify") }

// RemoveOverlap implements engine.Font.
func (f *Font) RemoveOverlap() { f.Calls = append(f.Calls, "RemoveOverlap") }

// AutoHint implements engine.Font.
func (f *Font) AutoHint() { f.Calls = append(f.Calls, "AutoHint") }

// Generate implements engine.Font.  It writes a short placeholder file.
func (f *Font) Generate(fname string) error {
	f.Calls = append(f.Calls, "Generate")
	if f.GenerateErr != nil {
		return f.GenerateErr
	}
	return os.WriteFile(fname, []byte("fake font\n"), 0o644)
}

// Close implements engine.Font.
func (f *Font) Close() error {
	if f.Closed {
		return errClosed
	}
	f.Closed = true
	return nil
}

var errClosed = errors.New("font already closed")

// Glyph is a glyph of a fake font.  Advance widths follow the same
// conventions as the ttf package.
type Glyph struct {
	GlyphName string
	Code      rune
	Outline   outline.Path
	Width     float64

	// Imported lists the files passed to ImportOutlines.
	Imported []string
	// Exported lists the files written by Export.
	Exported []string
}

// Name implements engine.Glyph.
func (g *Glyph) Name() string { return g.GlyphName }

// Unicode implements engine.Glyph.
func (g *Glyph) Unicode() rune { return g.Code }

// ImportOutlines implements engine.Glyph.
func (g *Glyph) ImportOutlines(fname string) error {
	p, err := svg.ReadFile(fname)
	if err != nil {
		return err
	}
	g.Imported = append(g.Imported, fname)
	g.Outline = append(g.Outline, p...)
	return nil
}

// BoundingBox implements engine.Glyph.
func (g *Glyph) BoundingBox() rect.Rect {
	return g.Outline.BBox()
}

// Transform implements engine.Glyph.
func (g *Glyph) Transform(m matrix.Matrix) {
	g.Outline = g.Outline.Transform(m)
}

// LeftSideBearing implements engine.Glyph.
func (g *Glyph) LeftSideBearing() int {
	return int(math.Round(g.BoundingBox().LLx))
}

// SetLeftSideBearing implements engine.Glyph.
func (g *Glyph) SetLeftSideBearing(lsb int) {
	delta := float64(lsb) - g.BoundingBox().LLx
	g.Outline = g.Outline.Translate(delta, 0)
	g.Width += delta
}

// RightSideBearing implements engine.Glyph.
func (g *Glyph) RightSideBearing() int {
	return int(math.Round(g.Width - g.BoundingBox().URx))
}

// SetRightSideBearing implements engine.Glyph.
func (g *Glyph) SetRightSideBearing(rsb int) {
	g.Width = g.BoundingBox().URx + float64(rsb)
}

// Export implements engine.Glyph.
func (g *Glyph) Export(fname string) error {
	err := svg.WriteFile(fname, g.Outline, int(math.Round(g.Width)), 800, -200)
	if err != nil {
		return err
	}
	g.Exported = append(g.Exported, fname)
	return nil
}

// String returns the glyph name and code point, for test failure messages.
func (g *Glyph) String() string {
	return fmt.Sprintf("%s U+%04X", g.GlyphName, g.Code)
}

var (
	_ engine.Engine = (*Engine)(nil)
	_ engine.Font   = (*Font)(nil)
	_ engine.Glyph  = (*Glyph)(nil)
)
