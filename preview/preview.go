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

// Package preview writes the style sheet and the HTML page which accompany
// a generated icon font.
//
// The style sheet defines one CSS class per glyph, so that a glyph can be
// shown using <span class="glyph NAME"></span>.  The HTML page shows all
// glyphs of the font, together with the font settings.
package preview

import (
	"fmt"
	htmltemplate "html/template"
	"io"
	"strings"
	"text/template"

	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/iconfont/glyphname"
	"seehuhn.de/go/iconfont/metadata"
)

// GlyphsPerRow is the number of glyphs in each row of the glyph grid on
// the HTML page.
const GlyphsPerRow = 8

// WriteCSS writes the style sheet for the font.  The font file is
// referenced as fontFile+".ttf".
func WriteCSS(w io.Writer, family, fontFile string, glyphs []*glyphname.Descriptor) error {
	data := &cssData{
		Family:   family,
		FontFile: fontFile,
		Glyphs:   glyphs,
	}
	return cssTmpl.Execute(w, data)
}

type cssData struct {
	Family   string
	FontFile string
	Glyphs   []*glyphname.Descriptor
}

var cssTmpl = template.Must(template.New("css").Funcs(template.FuncMap{
	"hex": func(r rune) string {
		return fmt.Sprintf("%04x", r)
	},
}).Parse(`
@font-face {
    font-family: '{{.Family}}';
    /* src: url('{{.FontFile}}.eot'); */ /* IE9 Compat Modes */
    src: url('{{.FontFile}}.ttf') format('truetype'); /* Safari, Android, iOS */

         /* url('{{.FontFile}}.eot?#iefix') format('embedded-opentype'), */ /* IE6-IE8 */
         /* url('{{.FontFile}}.woff') format('woff'), */ /* Modern Browsers */
         /* url('{{.FontFile}}.svg') format('svg'); */ /* Legacy iOS */
}
.glyph {
    display: inline-block;
    height: 2.0em;
    width: 2.0em;
    text-align:center;
    font-family: '{{.Family}}';
    -webkit-font-smoothing: antialiased;
    font-size: inherit;
    font-style: normal;
    font-weight: normal;
    line-height: 2.0em;
    overflow: visible;
}
.glyph[dir='rtl'] {
  filter: progid:DXImageTransform.Microsoft.BasicImage(rotation=0, mirror=1);
  -webkit-transform: scale(-1, 1);
  -moz-transform: scale(-1, 1);
  -ms-transform: scale(-1, 1);
  -o-transform: scale(-1, 1);
  transform: scale(-1, 1);
}
{{range .Glyphs}}
.{{.Name}}:before {
    content:"\{{hex .Code}}";
}
{{end -}}
`))

// WriteHTML writes a web page which displays all glyphs of the font,
// using the style sheet fontFile+".css".
func WriteHTML(w io.Writer, fontFile string, info *metadata.Info, glyphs []*glyphname.Descriptor) error {
	data := &htmlData{
		FontFile: fontFile,
		Info:     info,
	}
	for i, d := range glyphs {
		data.Glyphs = append(data.Glyphs, htmlGlyph{
			Name:     d.Name,
			CharName: charName(d.Code),
			Break:    (i+1)%GlyphsPerRow == 0,
		})
	}
	return htmlTmpl.Execute(w, data)
}

type htmlData struct {
	FontFile string
	Info     *metadata.Info
	Glyphs   []htmlGlyph
}

type htmlGlyph struct {
	Name     string
	CharName string
	Break    bool
}

// charName returns the Unicode name of r, or the empty string for
// characters without an individual name, such as the ones in the private
// use area.
func charName(r rune) string {
	name := runenames.Name(r)
	if strings.HasPrefix(name, "<") {
		return ""
	}
	return name
}

var htmlTmpl = htmltemplate.Must(htmltemplate.New("html").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>{{.FontFile}} minimal code</title>
    <link rel="stylesheet" href="{{.FontFile}}.css">
    <meta http-equiv="Cache-Control" content="no-cache, no-store, must-revalidate" />
    <meta http-equiv="Pragma" content="no-cache" />
    <meta http-equiv="Expires" content="0" />
<style>
    body {
        margin: 2% 15% 2% 15%;
        color: #555;
        font-family: sans-serif;
        font-size: 2.0em;
    }

    hr { color: grey; }

    div {
        display: block;
        color: #777;
        border-bottom: 1px solid #eee;
        margin: 0.5em 0 0.5em 0;
    }
    div:hover {
        border-bottom-color: #cef;
    }
    span {
        color: #111;
    }
</style>
</head>
<body>
<h1>Glyphs</h1>
{{range .Glyphs -}}
<span class="glyph {{.Name}}"></span>
{{if .Break}}<br>
{{end -}}
{{end}}
<h6>
Reminder: when you've generated a new font, you may need to close your browser and re-open this file before you will see your changes!
</h6>

<h1>Settings</h1>
{{with .Info -}}
<div>Font name = {{.FontName}}</div>
<div>Full name = {{.FullName}}</div>
<div>Family name = {{.FamilyName}}</div>
<div>Weight = {{.Weight}}</div>
<div>Version = {{.Version}}</div>
<div>Encoding = {{.Encoding}}</div>
<div>Copyright = {{.Copyright}}</div>
{{end}}
<h1>Glyph Names</h1>
{{range .Glyphs -}}
<div><span class="glyph {{.Name}}"></span> {{.Name}}{{with .CharName}} <small>({{.}})</small>{{end}}</div>
{{end -}}
</body>
</html>
`))
