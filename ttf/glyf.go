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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/maxp"

	"seehuhn.de/go/iconfont/outline"
)

// toContours converts a path consisting of straight lines and quadratic
// Bézier curves into TrueType contours.  Coordinates are rounded to
// integers.
func toContours(p outline.Path) ([]glyf.Contour, error) {
	var res []glyf.Contour
	var cur glyf.Contour

	flush := func() {
		n := len(cur)
		if n > 1 && cur[0] == cur[n-1] {
			cur = cur[:n-1]
		}
		if len(cur) >= 3 {
			res = append(res, cur)
		}
		cur = nil
	}

	for _, seg := range p {
		var err error
		switch seg.Cmd {
		case outline.MoveTo:
			flush()
			cur, err = appendPoint(cur, seg.Pts[0], true)
		case outline.LineTo:
			cur, err = appendPoint(cur, seg.Pts[0], true)
		case outline.QuadTo:
			cur, err = appendPoint(cur, seg.Pts[0], false)
			if err == nil {
				cur, err = appendPoint(cur, seg.Pts[1], true)
			}
		case outline.CubeTo:
			err = errCubic
		case outline.Close:
			flush()
		}
		if err != nil {
			return nil, err
		}
	}
	flush()
	return res, nil
}

func appendPoint(c glyf.Contour, v vec.Vec2, onCurve bool) (glyf.Contour, error) {
	x, y := math.Round(v.X), math.Round(v.Y)
	if x < math.MinInt16 || x > math.MaxInt16 || y < math.MinInt16 || y > math.MaxInt16 {
		return nil, errOverflow
	}
	return append(c, glyf.Point{
		X:       funit.Int16(x),
		Y:       funit.Int16(y),
		OnCurve: onCurve,
	}), nil
}

// fromPath converts a glyph outline, as returned by the Path method of
// the glyf outlines, into a path.  Composite glyphs arrive with their
// components already resolved.
func fromPath(src path.Path) outline.Path {
	var p outline.Path
	for cmd, pts := range src {
		switch cmd {
		case path.CmdMoveTo:
			p.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			p.LineTo(pts[0].X, pts[0].Y)
		case path.CmdQuadTo:
			p.QuadTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case path.CmdCubeTo:
			p.CubeTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			p.ClosePath()
		}
	}
	return p
}

// makeGlyphs packs the contours of each glyph, indexed by glyph ID, and
// collects the "maxp" statistics.  Glyphs without contours are left nil.
func makeGlyphs(glyphs [][]glyf.Contour) (glyf.Glyphs, *maxp.TTFInfo) {
	maxpInfo := &maxp.TTFInfo{
		MaxZones: 2,
	}

	gg := make(glyf.Glyphs, len(glyphs))
	for i, cc := range glyphs {
		if len(cc) == 0 {
			continue
		}
		simple := &glyf.SimpleUnpacked{Contours: cc}
		g := simple.AsGlyph()
		gg[i] = &g

		numPoints := 0
		for _, c := range cc {
			numPoints += len(c)
		}
		maxpInfo.MaxPoints = max(maxpInfo.MaxPoints, uint16(numPoints))
		maxpInfo.MaxContours = max(maxpInfo.MaxContours, uint16(len(cc)))
	}
	return gg, maxpInfo
}

// gaspTable requests grayscale rendering with symmetric smoothing at all
// sizes.
var gaspTable = []byte{
	0x00, 0x01, // version
	0x00, 0x01, // numRanges
	0xFF, 0xFF, // rangeMaxPPEM
	0x00, 0x0A, // GASP_DOGRAY | GASP_SYMMETRIC_SMOOTHING
}

var (
	errCubic    = errors.New("cubic curve in TrueType outline")
	errOverflow = errors.New("glyph coordinate out of range")
)
