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

// Font-to-svgs exports the glyphs of a TrueType font as SVG files.
//
// The files are named so that svgs-to-font can rebuild the font from
// them, and the font settings are written to a JSON file.
package main

import (
	"flag"
	"fmt"
	"os"

	"seehuhn.de/go/iconfont/export"
	"seehuhn.de/go/iconfont/tools/internal/buildinfo"
	"seehuhn.de/go/iconfont/tools/internal/logging"
	"seehuhn.de/go/iconfont/tools/internal/profile"
	"seehuhn.de/go/iconfont/ttf"
)

var defaults = export.DefaultConfig()

var (
	fontFile   = flag.String("font", defaults.FontFile, "read the font from `file`")
	glyphDir   = flag.String("svgs", defaults.GlyphDir, "write the glyph files to `directory`")
	metaFile   = flag.String("meta", defaults.MetadataFile, "write the font settings to `file`")
	verbose    = flag.Bool("v", false, "show debug messages")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "font-to-svgs \u2014 export the glyphs of a font as SVG files\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("font-to-svgs"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  font-to-svgs [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  font-to-svgs\n")
		fmt.Fprintf(os.Stderr, "  font-to-svgs -font icons.ttf -svgs icons -meta icons.json\n")
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

	cfg := &export.Config{
		FontFile:     *fontFile,
		GlyphDir:     *glyphDir,
		MetadataFile: *metaFile,
		Ext:          defaults.Ext,
		Log:          logging.New(os.Stdout, *verbose),
	}
	res, err := export.Run(ttf.Engine{}, cfg)
	if err != nil {
		return err
	}
	cfg.Log.Infof("%d glyphs exported, %d skipped", len(res.Glyphs), len(res.Skipped))
	return nil
}
