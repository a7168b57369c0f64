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

package main

import (
	"bytes"
	"testing"
)

func TestAddHeader(t *testing.T) {
	body := []byte("// Package x does things.\npackage x\n")
	out, ok := addHeader(body)
	if !ok || !bytes.HasPrefix(out, []byte(header)) || !bytes.HasSuffix(out, body) {
		t.Fatalf("unexpected result %q, %t", out, ok)
	}

	out2, ok := addHeader(out)
	if !ok || out2 != nil {
		t.Error("header added twice")
	}

	_, ok = addHeader([]byte("/* odd */ package x\n"))
	if ok {
		t.Error("unusual file not reported")
	}
}
