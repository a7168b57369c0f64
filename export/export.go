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

// Package export writes the glyphs of a font as individual SVG files.
//
// The files are named following the convention of the glyphname package,
// so that the build package can reassemble the font from them.  The font
// settings are written to a JSON file.
package export

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/iconfont/engine"
	"seehuhn.de/go/iconfont/glyphname"
	"seehuhn.de/go/iconfont/metadata"
)

// Config describes one export run.
type Config struct {
	// FontFile is the font to read.
	FontFile string

	// GlyphDir is the directory where the glyph files are written.  It is
	// created if needed.
	GlyphDir string

	// MetadataFile is the JSON file the font settings are written to.
	MetadataFile string

	// Ext is the extension of the glyph files, including the leading dot.
	Ext string

	// Log receives progress messages.  If this is nil, the standard logger
	// is used.
	Log logrus.FieldLogger
}

// DefaultConfig returns the configuration which reads "font.ttf" and
// writes "svgs/*.svg" and "font.json" in the current directory.
func DefaultConfig() *Config {
	return &Config{
		FontFile:     "font.ttf",
		GlyphDir:     "svgs",
		MetadataFile: "font.json",
		Ext:          ".svg",
	}
}

// Result summarizes a successful export.
type Result struct {
	// Glyphs lists the exported glyphs, in glyph ID order.
	Glyphs []*glyphname.Descriptor

	// Files lists the glyph files written, in the same order as Glyphs.
	Files []string

	// Skipped lists the names of glyphs which were not exported.
	Skipped []string
}

// Run exports the glyphs of cfg.FontFile, using the font engine eng.
// Glyphs which are not mapped to a character are skipped.  Glyphs whose
// name cannot be used in a file name are exported under the name
// [glyphname.UnicodeName] assigns to their character.
func Run(eng engine.Engine, cfg *Config) (*Result, error) {
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	err := os.MkdirAll(cfg.GlyphDir, 0o755)
	if err != nil {
		return nil, err
	}

	font, err := eng.Open(cfg.FontFile)
	if err != nil {
		return nil, err
	}
	defer font.Close()

	res := &Result{}
	for _, g := range font.Glyphs() {
		code := g.Unicode()
		if code == engine.NoCode {
			log.Debugf("Skipping unmapped glyph %q", g.Name())
			res.Skipped = append(res.Skipped, g.Name())
			continue
		}
		name := g.Name()
		if !validName(name) {
			name = glyphname.UnicodeName(code)
			log.Warnf("Glyph %q cannot be used in a file name, exporting as %q", g.Name(), name)
		}

		d := &glyphname.Descriptor{
			Code:           code,
			Name:           name,
			LeftBearing:    g.LeftSideBearing(),
			RightBearing:   g.RightSideBearing(),
			BaselineOffset: int(math.Round(g.BoundingBox().LLy)),
		}
		d.File = d.FileName(cfg.Ext)
		fname := filepath.Join(cfg.GlyphDir, d.File)

		log.Infof("Exporting %q", fname)
		err := g.Export(fname)
		if err != nil {
			return nil, err
		}
		res.Glyphs = append(res.Glyphs, d)
		res.Files = append(res.Files, fname)
	}

	err = metadata.Write(cfg.MetadataFile, font.Info())
	if err != nil {
		return nil, err
	}
	log.Infof("Wrote %q", cfg.MetadataFile)

	return res, nil
}

// validName reports whether a glyph name can be used as a field of a
// glyph file name.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == '/' || r == os.PathSeparator
	})
}
