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

package glyphname

import (
	"fmt"
	"slices"
	"strings"
)

// Sort orders the descriptors by glyph name.  Descriptors with equal names
// keep their relative order.
func Sort(dd []*Descriptor) {
	slices.SortStableFunc(dd, func(a, b *Descriptor) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// CheckUnique verifies that no two descriptors share a glyph name or a code
// point.  The first conflict found is returned as a *DuplicateError.
func CheckUnique(dd []*Descriptor) error {
	byName := make(map[string]*Descriptor, len(dd))
	byCode := make(map[rune]*Descriptor, len(dd))
	for _, d := range dd {
		if prev, seen := byName[d.Name]; seen {
			return &DuplicateError{
				What:   "name",
				Value:  d.Name,
				First:  prev.File,
				Second: d.File,
			}
		}
		byName[d.Name] = d

		if prev, seen := byCode[d.Code]; seen {
			return &DuplicateError{
				What:   "code point",
				Value:  fmt.Sprintf("U+%04X", d.Code),
				First:  prev.File,
				Second: d.File,
			}
		}
		byCode[d.Code] = d
	}
	return nil
}

// UnicodeName returns the glyph name "uniXXXX" (or "uXXXXX" outside the
// Basic Multilingual Plane) for the code point r.
func UnicodeName(r rune) string {
	if r > 0xFFFF {
		return fmt.Sprintf("u%05X", r)
	}
	return fmt.Sprintf("uni%04X", r)
}
