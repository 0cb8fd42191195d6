package main

import (
	stdhtml "html"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

func init() {
	logrus.SetOutput(io.Discard)
}

type testTable struct {
	header string
	cells  []string
}

type testGroup struct {
	anchor string
	tables []testTable
}

// testPage is a cut-down copy of the specification's layout: a content
// container holding top-level sections, one of them being the binary
// form section with its subsections.
type testPage struct {
	binaryFormAnchor   string // default "_binary_form"
	instructionsAnchor string // default "_instructions_3"
	binaryFormFirst    bool   // put the binary form section before the others
	groups             []testGroup
}

func (p testPage) String() string {
	bfAnchor := p.binaryFormAnchor
	if bfAnchor == "" {
		bfAnchor = "_binary_form"
	}
	instAnchor := p.instructionsAnchor
	if instAnchor == "" {
		instAnchor = "_instructions_3"
	}

	var bf strings.Builder
	bf.WriteString(`<div class="sect1"><h2 id="` + bfAnchor + `">Binary Form</h2><div class="sectionbody">`)
	bf.WriteString(`<div class="sect2"><h3 id="_magic_number">Magic Number</h3><p>0x07230203</p></div>`)
	bf.WriteString(`<div class="sect2"><h3 id="` + instAnchor + `">Instructions</h3>`)
	for _, g := range p.groups {
		bf.WriteString(`<div class="sect3"><h4 id="_h_` + g.anchor + `"><a id="` + g.anchor + `"></a>` + g.anchor + `</h4>`)
		for _, t := range g.tables {
			bf.WriteString(`<table class="tableblock"><tbody>`)
			bf.WriteString(`<tr><td class="tableblock" colspan="` + strconv.Itoa(len(t.cells)) + `">`)
			bf.WriteString(`<p class="tableblock"><strong>` + stdhtml.EscapeString(t.header) + `</strong></p>`)
			bf.WriteString(`<p class="tableblock">Description of the instruction.</p></td></tr><tr>`)
			for _, c := range t.cells {
				bf.WriteString(`<td class="tableblock"><p class="tableblock">` + stdhtml.EscapeString(c) + `</p></td>`)
			}
			bf.WriteString(`</tr></tbody></table>`)
		}
		bf.WriteString(`</div>`)
	}
	bf.WriteString(`</div></div></div>`)

	intro := `<div class="sect1"><h2 id="_introduction">Introduction</h2><div class="sectionbody"><p>Hello</p></div></div>` +
		`<div class="sect1"><h2 id="_specification">Specification</h2><div class="sectionbody"><p>Rules</p></div></div>`

	var doc strings.Builder
	doc.WriteString(`<!DOCTYPE html><html><head><title>SPIR-V</title></head><body>`)
	doc.WriteString(`<div id="header"><h1>SPIR-V Specification</h1></div><div id="content">`)
	if p.binaryFormFirst {
		doc.WriteString(bf.String() + intro)
	} else {
		doc.WriteString(intro + bf.String())
	}
	doc.WriteString(`</div></body></html>`)
	return doc.String()
}

func mustParse(t *testing.T, page string) *html.Node {
	t.Helper()
	doc, err := parseDocument([]byte(page))
	tcheck(t, err)
	return doc
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	tcheck(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func tcheck(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

var miscGroup = testGroup{
	anchor: "Group_Misc",
	tables: []testTable{
		{header: "OpFoo", cells: []string{"2", "5", "x"}},
	},
}
