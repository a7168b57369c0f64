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
	"errors"
	"fmt"
)

// ErrMalformed is returned (wrapped in a *MalformedError) for file names
// which do not follow the glyph file name convention.
var ErrMalformed = errors.New("malformed glyph file name")

// MalformedError indicates a file name with the wrong number of fields.
type MalformedError struct {
	File      string
	NumFields int
}

func (err *MalformedError) Error() string {
	return fmt.Sprintf("%q: expected 5 fields, found %d", err.File, err.NumFields)
}

func (err *MalformedError) Unwrap() error {
	return ErrMalformed
}

// SyntaxError indicates a numeric field which could not be parsed.
type SyntaxError struct {
	File  string
	Field string
	Value string
	Err   error
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("%q: invalid %s %q: %v", err.File, err.Field, err.Value, err.Err)
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

// DuplicateError indicates that two glyph files use the same glyph name or
// the same code point.
type DuplicateError struct {
	What   string // "name" or "code point"
	Value  string
	First  string
	Second string
}

func (err *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate glyph %s %s in %q and %q",
		err.What, err.Value, err.First, err.Second)
}
