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

// Package metadata reads and writes the font settings file.
//
// The settings file is a JSON object with the string-valued keys
// "fontname", "fullname", "familyname", "weight", "version", "encoding",
// and "copyright".
package metadata

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Info holds the font-wide settings.
//
// The fields are declared in the order of their JSON keys, so that
// encoding an Info writes the keys in sorted order.
type Info struct {
	Copyright  string `json:"copyright"`
	Encoding   string `json:"encoding"`
	FamilyName string `json:"familyname"`
	FontName   string `json:"fontname"`
	FullName   string `json:"fullname"`
	Version    string `json:"version"`
	Weight     string `json:"weight"`
}

// Decode reads a settings file from r.
func Decode(r io.Reader) (*Info, error) {
	info := &Info{}
	dec := json.NewDecoder(r)
	err := dec.Decode(info)
	if err != nil {
		return nil, fmt.Errorf("metadata: %w", err)
	}
	return info, nil
}

// Encode writes the settings to w, indented by four spaces.
func (info *Info) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(info)
}

// Read reads the settings file fname.
func Read(fname string) (*Info, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	info, err := Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return info, nil
}

// Write writes the settings to the file fname, replacing any existing file.
func Write(fname string, info *Info) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = info.Encode(fd)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
