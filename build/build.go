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

// Package build assembles an icon font from a directory of SVG glyph files.
//
// Each glyph file is named following the convention of the glyphname
// package.  Together with the font, a style sheet and an HTML preview page
// are written.
package build

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/iconfont/engine"
	"seehuhn.de/go/iconfont/glyphname"
	"seehuhn.de/go/iconfont/metadata"
	"seehuhn.de/go/iconfont/preview"
	"seehuhn.de/go/iconfont/svg"
)

// MalformedPolicy selects how glyph files with malformed names are treated.
type MalformedPolicy int

// These are the supported values for MalformedPolicy.
const (
	SkipMalformed MalformedPolicy = iota
	FailMalformed
)

// DuplicatePolicy selects how glyph files with clashing names or code
// points are treated.
type DuplicatePolicy int

// These are the supported values for DuplicatePolicy.
const (
	RejectDuplicates DuplicatePolicy = iota
	AllowDuplicates
)

// Config describes one font build.
type Config struct {
	// Dir is the directory where the font, the style sheet and the HTML
	// page are written.
	Dir string

	// GlyphDir is the directory containing the glyph files.
	GlyphDir string

	// MetadataFile is the JSON file with the font settings.
	MetadataFile string

	// FontName is the base name of the output files.
	FontName string

	// Ext is the extension of the glyph files, including the leading dot.
	// Files with other extensions in GlyphDir are ignored.
	Ext string

	Malformed  MalformedPolicy
	Duplicates DuplicatePolicy

	// FitHeight, if positive, is the height in font design units which
	// the viewBox of each glyph file is scaled to.  Files without a
	// viewBox are not scaled.  If FitHeight is zero, SVG user units are
	// used as font design units.
	FitHeight int

	// Log receives progress messages.  If this is nil, the standard logger
	// is used.
	Log logrus.FieldLogger
}

// DefaultConfig returns the configuration which reads "svgs/*.svg" and
// "font.json" and writes "font.ttf", "font.css" and "font.html" in the
// current directory.
func DefaultConfig() *Config {
	return &Config{
		Dir:          ".",
		GlyphDir:     "svgs",
		MetadataFile: "font.json",
		FontName:     "font",
		Ext:          ".svg",
		Malformed:    SkipMalformed,
		Duplicates:   RejectDuplicates,
	}
}

// Result summarizes a successful build.
type Result struct {
	// Glyphs lists the glyphs in the font, sorted by name.
	Glyphs []*glyphname.Descriptor

	// Skipped lists the glyph files which were ignored because of
	// malformed names.
	Skipped []string

	FontFile string
	CSSFile  string
	HTMLFile string
}

// Run builds the font described by cfg, using the font engine eng.
func Run(eng engine.Engine, cfg *Config) (*Result, error) {
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	info, err := metadata.Read(cfg.MetadataFile)
	if err != nil {
		return nil, err
	}

	font, err := eng.NewFont()
	if err != nil {
		return nil, err
	}
	defer font.Close()

	err = font.SetInfo(info)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	glyphs, skipped, err := scanGlyphDir(cfg, log)
	if err != nil {
		return nil, err
	}
	res.Skipped = skipped

	glyphname.Sort(glyphs)
	if cfg.Duplicates == RejectDuplicates {
		err = glyphname.CheckUnique(glyphs)
		if err != nil {
			return nil, err
		}
	}

	for _, d := range glyphs {
		err := addGlyph(font, d, cfg, log)
		if err != nil {
			return nil, err
		}
	}
	res.Glyphs = glyphs

	engine.Cleanup(font)

	base := filepath.Join(cfg.Dir, cfg.FontName)
	res.FontFile = base + ".ttf"
	err = font.Generate(res.FontFile)
	if err != nil {
		return nil, err
	}
	log.Infof("Wrote %q", res.FontFile)

	family := info.FamilyName
	if family == "" {
		family = info.FontName
	}
	res.CSSFile = base + ".css"
	err = writeFile(res.CSSFile, func(fd *os.File) error {
		return preview.WriteCSS(fd, family, cfg.FontName, glyphs)
	})
	if err != nil {
		return nil, err
	}
	log.Infof("Wrote %q", res.CSSFile)

	res.HTMLFile = base + ".html"
	err = writeFile(res.HTMLFile, func(fd *os.File) error {
		return preview.WriteHTML(fd, cfg.FontName, font.Info(), glyphs)
	})
	if err != nil {
		return nil, err
	}
	log.Infof("Wrote %q", res.HTMLFile)

	return res, nil
}

// scanGlyphDir lists and parses the glyph file names in cfg.GlyphDir.
// The second return value lists the files skipped because of malformed
// names.
func scanGlyphDir(cfg *Config, log logrus.FieldLogger) ([]*glyphname.Descriptor, []string, error) {
	entries, err := os.ReadDir(cfg.GlyphDir)
	if err != nil {
		return nil, nil, err
	}

	var glyphs []*glyphname.Descriptor
	var skipped []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !hasExt(name, cfg.Ext) {
			continue
		}

		d, err := glyphname.Parse(name, cfg.Ext)
		if errors.Is(err, glyphname.ErrMalformed) && cfg.Malformed == SkipMalformed {
			log.Warnf("Skipping %q: %v", name, err)
			skipped = append(skipped, name)
			continue
		} else if err != nil {
			return nil, nil, err
		}
		glyphs = append(glyphs, d)
	}
	return glyphs, skipped, nil
}

// addGlyph creates the glyph described by d and imports its outline.  The
// outline is shifted vertically so that its lowest point lies at the
// baseline offset, and the side bearings are then applied.
func addGlyph(font engine.Font, d *glyphname.Descriptor, cfg *Config, log logrus.FieldLogger) error {
	g, err := font.CreateGlyph(d.Code, d.Name)
	if err != nil {
		return err
	}

	fname := filepath.Join(cfg.GlyphDir, d.File)
	log.Infof("Importing %q", fname)
	err = g.ImportOutlines(fname)
	if err != nil {
		return err
	}

	if cfg.FitHeight > 0 {
		box, ok, err := svg.ReadViewBox(fname)
		if err != nil {
			return err
		}
		if h := box.URy - box.LLy; ok && h != float64(cfg.FitHeight) {
			scale := float64(cfg.FitHeight) / h
			log.Debugf("Scaling %q by %g", fname, scale)
			g.Transform(matrix.Scale(scale, scale))
		}
	}

	bbox := g.BoundingBox()
	g.Transform(matrix.Translate(0, float64(d.BaselineOffset)-bbox.LLy))
	g.SetLeftSideBearing(d.LeftBearing)
	g.SetRightSideBearing(d.RightBearing)

	log.WithFields(logrus.Fields{
		"glyph": d.Name,
		"code":  fmt.Sprintf("U+%04X", d.Code),
	}).Debug("glyph added")
	return nil
}

func hasExt(name, ext string) bool {
	return len(name) > len(ext) && strings.EqualFold(name[len(name)-len(ext):], ext)
}

func writeFile(fname string, write func(*os.File) error) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = write(fd)
	if err != nil {
		fd.Close()
		return fmt.Errorf("%s: %w", fname, err)
	}
	return fd.Close()
}
