// Copyright 2025 go-transpose Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// PixelFormat is a channel layout.
type PixelFormat struct {
	Name     string // space separated words, e.g. "plane with alpha"
	Desc     string
	Channels int
}

// ElemType is a channel element type.
type ElemType struct {
	Suffix  string // appended to function names
	Go      string // Go type name
	Article string // "a" or "an" in front of Desc
	Desc    string
}

// Entry is one format × type combination as seen by the template.
type Entry struct {
	Func     string // exported name part, e.g. "PlaneWithAlpha16"
	Var      string // dispatcher variable
	Go       string
	Channels int
	Doc      string
}

// DefaultFormats are the layouts the transpose package exposes.
var DefaultFormats = []PixelFormat{
	{Name: "plane", Desc: "single-channel", Channels: 1},
	{Name: "plane with alpha", Desc: "two-channel", Channels: 2},
	{Name: "rgb", Desc: "RGB", Channels: 3},
	{Name: "rgba", Desc: "RGBA", Channels: 4},
}

// DefaultTypes are the element types the transpose package exposes.
var DefaultTypes = []ElemType{
	{Suffix: "8", Go: "uint8", Article: "an", Desc: "8-bit"},
	{Suffix: "16", Go: "uint16", Article: "a", Desc: "16-bit"},
	{Suffix: "F32", Go: "float32", Article: "a", Desc: "float32"},
}

// initialisms are words written in capitals in exported names.
var initialisms = []string{"rgb", "rgba"}

// Generator renders the per-format entry points.
type Generator struct {
	Package  string
	Filename string
	Formats  []PixelFormat
	Types    []ElemType
}

var title = cases.Title(language.English)

// exportedName turns "plane with alpha" into "PlaneWithAlpha" and "rgba"
// into "RGBA".
func exportedName(words string) string {
	return strings.Join(lo.Map(strings.Fields(words), func(w string, _ int) string {
		if lo.Contains(initialisms, w) {
			return strings.ToUpper(w)
		}
		return title.String(w)
	}), "")
}

// varName turns "plane with alpha" into "planeWithAlpha".
func varName(words string) string {
	fields := strings.Fields(words)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0]) + exportedName(strings.Join(fields[1:], " "))
}

// Entries lists every format × type combination, format major.
func (g *Generator) Entries() []Entry {
	return lo.FlatMap(g.Formats, func(f PixelFormat, _ int) []Entry {
		return lo.Map(g.Types, func(t ElemType, _ int) Entry {
			return Entry{
				Func:     exportedName(f.Name) + t.Suffix,
				Var:      varName(f.Name) + t.Suffix,
				Go:       t.Go,
				Channels: f.Channels,
				Doc:      fmt.Sprintf("%s %s %s image (%d × %s)", t.Article, t.Desc, f.Desc, f.Channels, t.Go),
			}
		})
	})
}

// validate rejects tables the transpose package cannot compile.
func (g *Generator) validate() error {
	if g.Package == "" {
		return fmt.Errorf("empty package name")
	}
	if len(g.Formats) == 0 || len(g.Types) == 0 {
		return fmt.Errorf("no formats or no types")
	}
	for _, f := range g.Formats {
		if f.Channels < 1 || f.Channels > 4 {
			return fmt.Errorf("format %q: %d channels", f.Name, f.Channels)
		}
	}
	dupes := lo.FindDuplicates(lo.Map(g.Entries(), func(e Entry, _ int) string { return e.Func }))
	if len(dupes) > 0 {
		return fmt.Errorf("duplicate entry points: %s", strings.Join(dupes, ", "))
	}
	for _, t := range g.Types {
		chans := lo.Map(lo.Filter(g.Entries(), func(e Entry, _ int) bool { return e.Go == t.Go }),
			func(e Entry, _ int) int { return e.Channels })
		if d := lo.FindDuplicates(chans); len(d) > 0 {
			return fmt.Errorf("type %s: channel count %d used twice", t.Go, d[0])
		}
	}
	return nil
}

// Render returns the formatted source of the generated file.
func (g *Generator) Render() ([]byte, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	entries := g.Entries()
	tmpl, err := template.New("formats").Funcs(template.FuncMap{
		"entriesFor": func(goType string) []Entry {
			return lo.Filter(entries, func(e Entry, _ int) bool { return e.Go == goType })
		},
	}).Parse(formatsTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	data := struct {
		Package string
		Entries []Entry
		Types   []ElemType
	}{g.Package, entries, g.Types}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	out, err := imports.Process(g.Filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", g.Filename, err)
	}
	return out, nil
}

const formatsTemplate = `// Code generated by transposegen. DO NOT EDIT.

package {{.Package}}

import (
	"fmt"

	"github.com/ajroetker/go-transpose/workerpool"
)
{{range .Entries}}
var {{.Var}} dispatcher[[{{.Channels}}]{{.Go}}]

// Transpose{{.Func}} transposes {{.Doc}}.
// See Transpose for the layout of in and out.
func Transpose{{.Func}}(in []{{.Go}}, inStride int, out []{{.Go}}, outStride, width, height int, flip FlipMode, flop FlopMode) error {
	return transposeGroups(&{{.Var}}, nil, in, inStride, out, outStride, width, height, flip, flop)
}

// Rotate180{{.Func}} rotates {{.Doc}} by half a turn.
func Rotate180{{.Func}}(in []{{.Go}}, inStride int, out []{{.Go}}, outStride, width, height int) error {
	return mirrorGroups[[{{.Channels}}]{{.Go}}](halfTurn, in, inStride, out, outStride, width, height)
}
{{end}}
// transposeByFormat routes a generic call to the dispatcher of its format.
func transposeByFormat[T Element](pool *workerpool.Pool, in []T, inStride int, out []T, outStride, width, height, channels int, flip FlipMode, flop FlopMode) error {
	switch in := any(in).(type) {
{{- range .Types}}
	case []{{.Go}}:
		out := any(out).([]{{.Go}})
		switch channels {
{{- range (entriesFor .Go)}}
		case {{.Channels}}:
			return transposeGroups(&{{.Var}}, pool, in, inStride, out, outStride, width, height, flip, flop)
{{- end}}
		}
{{- end}}
	}
	return fmt.Errorf("%w: %d channels", ErrDimensionMismatch, channels)
}

// SelectedKernels reports the tile kernel each pixel format uses on this
// machine.
func SelectedKernels() []FormatKernel {
	return []FormatKernel{
{{- range .Entries}}
		{{.Var}}.describe("{{.Func}}"),
{{- end}}
	}
}
`
