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

// Package glyphname implements the file name convention used for glyph
// files.
//
// A glyph file name consists of five space-separated fields, followed by
// the file extension:
//
//	<code point> <glyph name> <left bearing> <right bearing> <baseline offset>.svg
//
// The code point is given in hexadecimal, the remaining numbers are decimal
// integers in font design units.  For example, the file name
// "e950 MY_GLYPH 80 100 150.svg" describes the glyph MY_GLYPH at U+E950,
// with a left side bearing of 80, a right side bearing of 100, and with the
// lowest point of the outline 150 units above the baseline.
package glyphname

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Descriptor describes a glyph, as encoded in a glyph file name.
type Descriptor struct {
	Code           rune
	Name           string
	LeftBearing    int
	RightBearing   int
	BaselineOffset int

	// File is the base name of the file the descriptor was parsed from.
	// This is empty for descriptors which were not obtained by Parse.
	File string
}

// Parse decodes a glyph file name.  The directory part of fileName, if any,
// is ignored, and ext is the file extension (including the leading dot) to
// strip from the last field.
//
// If the name does not consist of exactly five fields, the returned error
// is a *MalformedError.  If the fields cannot be interpreted as numbers, a
// *SyntaxError is returned.
func Parse(fileName, ext string) (*Descriptor, error) {
	base := norm.NFC.String(filepath.Base(fileName))

	stem := base
	if ext != "" && len(stem) >= len(ext) && strings.EqualFold(stem[len(stem)-len(ext):], ext) {
		stem = stem[:len(stem)-len(ext)]
	}
	fields := strings.Fields(stem)
	if len(fields) != 5 {
		return nil, &MalformedError{File: base, NumFields: len(fields)}
	}

	code, err := parseCode(fields[0])
	if err != nil {
		return nil, &SyntaxError{File: base, Field: "code point", Value: fields[0], Err: err}
	}

	var nums [3]int
	for i, label := range []string{"left bearing", "right bearing", "baseline offset"} {
		x, err := strconv.Atoi(fields[2+i])
		if err != nil {
			return nil, &SyntaxError{File: base, Field: label, Value: fields[2+i], Err: err}
		}
		nums[i] = x
	}

	d := &Descriptor{
		Code:           code,
		Name:           fields[1],
		LeftBearing:    nums[0],
		RightBearing:   nums[1],
		BaselineOffset: nums[2],
		File:           base,
	}
	return d, nil
}

func parseCode(s string) (rune, error) {
	hex := s
	if len(hex) > 2 && hex[0] == '0' && (hex[1] == 'x' || hex[1] == 'X') {
		hex = hex[2:]
	}
	x, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, err
	}
	if x > 0x10FFFF {
		return 0, fmt.Errorf("code point %X out of range", x)
	}
	return rune(x), nil
}

// FileName returns the glyph file name for d, using the file extension ext.
// The code point is written in upper case hexadecimal, padded to at least
// four digits.
func (d *Descriptor) FileName(ext string) string {
	return fmt.Sprintf("%04X %s %d %d %d%s",
		d.Code, d.Name, d.LeftBearing, d.RightBearing, d.BaselineOffset, ext)
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("U+%04X %s", d.Code, d.Name)
}
