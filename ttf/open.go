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
	"fmt"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/iconfont/engine"
	"seehuhn.de/go/iconfont/metadata"
)

// Open implements engine.Engine.
//
// Only fonts with TrueType ("glyf") outlines are supported.  Glyph names
// are taken from the "post" table where present.  Each glyph is assigned
// the smallest code point which the font's best cmap subtable maps to it.
func (Engine) Open(fname string) (engine.Font, error) {
	info, err := sfnt.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	outlines, ok := info.Outlines.(*glyf.Outlines)
	if !ok {
		return nil, fmt.Errorf("%s: %w", fname, errNotGlyf)
	}

	rev := make(map[glyph.ID]rune)
	if info.CMapTable != nil {
		subtable, err := info.CMapTable.GetBest()
		if err == nil && subtable != nil {
			low, high := subtable.CodeRange()
			for r := low; r <= high; r++ {
				gid := subtable.Lookup(r)
				if gid == 0 {
					continue
				}
				if r2, seen := rev[gid]; !seen || r < r2 {
					rev[gid] = r
				}
			}
		}
	}

	f := &Font{
		unitsPerEm: info.UnitsPerEm,
		ascent:     int(info.Ascent),
		descent:    int(info.Descent),
		weight:     info.Weight,
		version:    info.Version,
		created:    info.CreationTime,
		byName:     make(map[string]*Glyph),
	}

	bmp := true
	numGlyphs := info.NumGlyphs()
	for i := range numGlyphs {
		gid := glyph.ID(i)
		g := &Glyph{
			font:  f,
			code:  engine.NoCode,
			width: float64(info.GlyphWidth(gid)),
		}
		if r, ok := rev[gid]; ok {
			g.code = r
			bmp = bmp && r <= 0xFFFF
		}

		g.name = info.GlyphName(gid)
		if g.name == "" || f.byName[g.name] != nil {
			g.name = fallbackName(gid, g.code)
		}

		if i < len(outlines.Glyphs) && outlines.Glyphs[i] != nil {
			g.path = fromPath(outlines.Path(gid))
		}

		if gid == 0 {
			g.name = ".notdef"
			g.code = engine.NoCode
			f.notdef = g
			continue
		}
		f.glyphs = append(f.glyphs, g)
		f.byName[g.name] = g
	}
	if f.notdef == nil {
		return nil, fmt.Errorf("%s: %w", fname, errNoGlyphs)
	}

	encoding := "UnicodeBmp"
	if !bmp {
		encoding = "UnicodeFull"
	}
	f.info = &metadata.Info{
		FontName:   info.PostScriptName(),
		FullName:   info.FullName(),
		FamilyName: info.FamilyName,
		Weight:     info.Weight.String(),
		Version:    info.Version.String(),
		Encoding:   encoding,
		Copyright:  info.Copyright,
	}

	return f, nil
}

var (
	errNotGlyf  = errors.New("font does not contain TrueType outlines")
	errNoGlyphs = errors.New("font contains no glyphs")
)
