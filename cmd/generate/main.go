// Command generate writes pattern_generated.go: the TupleN pattern
// combinators and their RowN outputs for every supported arity.
//
// Run it from the module root with `go generate ./...`.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
)

const header = `// Code generated by cmd/generate; DO NOT EDIT.

package synco
`

const tupleTemplate = `
// Row{{.N}} holds the outputs of a Tuple{{.N}} pattern for one entity.
type Row{{.N}}[{{.Types}} any] struct {
{{- range .Idx}}
	V{{.}} T{{.}}
{{- end}}
}

// Unpack returns the row's values in term order.
func (r Row{{.N}}[{{.Types}}]) Unpack() ({{.Types}}) {
	return {{join .Idx "r.V%d"}}
}

// Tuple{{.N}} combines {{.N}} patterns into one that matches the entities satisfying
// all of them and yields their outputs together.
func Tuple{{.N}}[{{.Types}} any]({{join .Idx "p%[1]d Pattern[T%[1]d]"}}) Pattern[Row{{.N}}[{{.Types}}]] {
	return tuple{{.N}}[{{.Types}}]{ {{- join .Idx "p%[1]d: p%[1]d"}}}
}

type tuple{{.N}}[{{.Types}} any] struct {
{{- range .Idx}}
	p{{.}} Pattern[T{{.}}]
{{- end}}
}

func (t tuple{{.N}}[{{.Types}}]) String() string {
	return tupleString({{join .Idx "t.p%d"}})
}

func (t tuple{{.N}}[{{.Types}}]) filter(w *World) (Filter, error) {
	return combineTerms(w, {{join .Idx "t.p%d"}})
}

func (t tuple{{.N}}[{{.Types}}]) fetch(w *World) (fetcher[Row{{.N}}[{{.Types}}]], error) {
	var held []releaser
{{- range .Idx}}
	f{{.}}, err := fetchTerm(w, t.p{{.}}, {{.}}, &held)
	if err != nil {
		return nil, err
	}
{{- end}}
	return &tuple{{.N}}Fetch[{{.Types}}]{ {{- join .Idx "f%[1]d: f%[1]d"}}}, nil
}

type tuple{{.N}}Fetch[{{.Types}} any] struct {
{{- range .Idx}}
	f{{.}} fetcher[T{{.}}]
{{- end}}
}

func (f *tuple{{.N}}Fetch[{{.Types}}]) project(e Entity) Row{{.N}}[{{.Types}}] {
	return Row{{.N}}[{{.Types}}]{ {{- join .Idx "V%[1]d: f.f%[1]d.project(e)"}}}
}

func (f *tuple{{.N}}Fetch[{{.Types}}]) release() {
{{- range .Idx}}
	f.f{{.}}.release()
{{- end}}
}
`

type arity struct {
	N     int
	Idx   []int
	Types string
}

func main() {
	out := flag.String("out", "pattern_generated.go", "output file")
	maxArity := flag.Int("max", 8, "largest tuple arity to generate")
	flag.Parse()

	tmpl := template.Must(template.New("tuple").Funcs(template.FuncMap{
		"join": func(idx []int, format string) string {
			parts := make([]string, len(idx))
			for i, n := range idx {
				parts[i] = fmt.Sprintf(format, n)
			}
			return strings.Join(parts, ", ")
		},
	}).Parse(tupleTemplate))

	var buf bytes.Buffer
	buf.WriteString(header)
	for n := 2; n <= *maxArity; n++ {
		a := arity{N: n}
		types := make([]string, n)
		for i := 1; i <= n; i++ {
			a.Idx = append(a.Idx, i)
			types[i-1] = fmt.Sprintf("T%d", i)
		}
		a.Types = strings.Join(types, ", ")
		if err := tmpl.Execute(&buf, a); err != nil {
			fmt.Fprintf(os.Stderr, "generate: arity %d: %v\n", n, err)
			os.Exit(1)
		}
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate: format: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		os.Exit(1)
	}
}
