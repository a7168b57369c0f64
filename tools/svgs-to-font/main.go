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

// Svgs-to-font builds an icon font from a directory of SVG files.
//
// Each file in the glyph directory is named
// "<code point> <glyph name> <left bearing> <right bearing> <baseline offset>.svg".
// Together with the font, a style sheet and an HTML preview page are
// written.
package main

import (
	"flag"
	"fmt"
	"os"

	"seehuhn.de/go/iconfont/build"
	"seehuhn.de/go/iconfont/tools/internal/buildinfo"
	"seehuhn.de/go/iconfont/tools/internal/logging"
	"seehuhn.de/go/iconfont/tools/internal/profile"
	"seehuhn.de/go/iconfont/ttf"
)

var defaults = build.DefaultConfig()

var (
	outDir     = flag.String("dir", defaults.Dir, "write the output files to `directory`")
	glyphDir   = flag.String("svgs", defaults.GlyphDir, "read the glyph files from `directory`")
	metaFile   = flag.String("meta", defaults.MetadataFile, "read the font settings from `file`")
	fontName   = flag.String("name", defaults.FontName, "base `name` of the output files")
	strict     = flag.Bool("strict", false, "fail on glyph files with malformed names")
	allowDups  = flag.Bool("allow-duplicates", false, "allow glyphs with the same name or code point")
	fit        = flag.Bool("fit", false, "scale the viewBox of each glyph file to the font height")
	verbose    = flag.Bool("v", false, "show debug messages")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "svgs-to-font \u2014 build an icon font from SVG files\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("svgs-to-font"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  svgs-to-font [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  svgs-to-font\n")
		fmt.Fprintf(os.Stderr, "  svgs-to-font -svgs icons -meta icons.json -name icons -dir out\n")
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer stop()

	cfg := &build.Config{
		Dir:          *outDir,
		GlyphDir:     *glyphDir,
		MetadataFile: *metaFile,
		FontName:     *fontName,
		Ext:          defaults.Ext,
		Malformed:    build.SkipMalformed,
		Duplicates:   build.RejectDuplicates,
		Log:          logging.New(os.Stdout, *verbose),
	}
	if *strict {
		cfg.Malformed = build.FailMalformed
	}
	if *allowDups {
		cfg.Duplicates = build.AllowDuplicates
	}
	if *fit {
		cfg.FitHeight = ttf.Ascent - ttf.Descent
	}

	res, err := build.Run(ttf.Engine{}, cfg)
	if err != nil {
		return err
	}
	cfg.Log.Infof("%d glyphs, %d files skipped", len(res.Glyphs), len(res.Skipped))
	return nil
}
