package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

// variableMarker follows the word count of instructions that take a
// variable number of trailing operands, as in "3 + variable".
const variableMarker = "+ variable"

var errMissing = errors.New("missing from table")

func parseDocument(page []byte) (*html.Node, error) {
	doc, err := htmlquery.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return doc, nil
}

// loadISA runs each of the given categories over the binary form section
// of doc, in order, and returns everything they extracted.
func loadISA(doc *html.Node, layout Layout, cats []Category) (*ISA, error) {
	body, err := locateBinaryForm(doc, layout)
	if err != nil {
		return nil, err
	}

	isa := &ISA{}
	for _, cat := range cats {
		log := logrus.WithField("category", cat.Name)
		if cat.Parse == nil {
			log.Debug("unimplemented category, skipping")
			continue
		}

		section, err := locateSubsection(body, layout.anchorFor(cat))
		if err != nil {
			return nil, err
		}
		if err := cat.Parse(section, isa); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", cat.Name, err)
		}
	}
	return isa, nil
}

// locateBinaryForm finds the body of the top-level section whose heading
// carries the binary form anchor. The section is found by its anchor
// alone, so a reordering of the document's chapters doesn't matter.
func locateBinaryForm(doc *html.Node, layout Layout) (*html.Node, error) {
	var content *html.Node
	for _, n := range htmlquery.Find(doc, "//div[@id]") {
		if htmlquery.SelectAttr(n, "id") == layout.ContentID {
			content = n
			break
		}
	}
	if content == nil {
		return nil, &StructureError{What: "content container", Anchor: layout.ContentID}
	}

	section := findSection(htmlquery.Find(content, ".//div[@class='sect1']"), "./h2", layout.BinaryFormAnchor)
	if section == nil {
		return nil, &StructureError{What: "binary form section", Anchor: layout.BinaryFormAnchor}
	}
	body := htmlquery.FindOne(section, "./div[@class='sectionbody']")
	if body == nil {
		return nil, &StructureError{What: "binary form section body", Anchor: layout.BinaryFormAnchor}
	}
	return body, nil
}

// locateSubsection finds the second-level section inside the binary form
// body whose heading carries anchor.
func locateSubsection(body *html.Node, anchor string) (*html.Node, error) {
	section := findSection(htmlquery.Find(body, "./div[@class='sect2']"), "./h3", anchor)
	if section == nil {
		return nil, &StructureError{What: "subsection", Anchor: anchor}
	}
	return section, nil
}

func findSection(sections []*html.Node, heading string, anchor string) *html.Node {
	for _, sect := range sections {
		h := htmlquery.FindOne(sect, heading)
		if h != nil && htmlquery.SelectAttr(h, "id") == anchor {
			return sect
		}
	}
	return nil
}

// parseInstructions is the CategoryParser for the instruction listing.
// The listing is split into one third-level section per group, and each
// group holds one two-row table per instruction.
func parseInstructions(section *html.Node, isa *ISA) error {
	before := len(isa.Instructions)

	for _, group := range htmlquery.Find(section, "./div[@class='sect3']") {
		a := htmlquery.FindOne(group, "./h4/a")
		if a == nil {
			return &FieldError{Table: -1, Field: "group anchor", Err: errMissing}
		}
		groupName := htmlquery.SelectAttr(a, "id")
		if groupName == "" {
			return &FieldError{Table: -1, Field: "group anchor", Err: errors.New("empty id")}
		}

		tables := htmlquery.Find(group, "./table")
		for i, table := range tables {
			inst, err := parseInstructionTable(groupName, i, table)
			if err != nil {
				return err
			}
			logrus.WithField("group", groupName).Trace(inst.String())
			isa.Instructions = append(isa.Instructions, inst)
		}
		logrus.WithField("group", groupName).Debugf("%d instructions", len(tables))
	}

	logrus.Infof("Scraped %d instructions", len(isa.Instructions)-before)
	return nil
}

func parseInstructionTable(group string, idx int, table *html.Node) (Instruction, error) {
	fail := func(field string, err error) (Instruction, error) {
		return Instruction{}, &FieldError{Group: group, Table: idx, Field: field, Err: err}
	}

	rows := htmlquery.Find(table, "./tbody/tr")
	if len(rows) < 2 {
		return fail("rows", fmt.Errorf("want a header row and a data row, found %d rows", len(rows)))
	}

	// The header row names the instruction, in bold.
	td := htmlquery.FindOne(rows[0], "./td")
	if td == nil {
		return fail("name", errMissing)
	}
	strong := htmlquery.FindOne(td, "./p[@class='tableblock']/strong")
	if strong == nil {
		return fail("name", errMissing)
	}
	name, specialized, err := parseInstructionName(htmlquery.InnerText(strong))
	if err != nil {
		return fail("name", err)
	}

	// The data row starts with the word count and the opcode, and each
	// remaining cell describes one operand.
	cells := htmlquery.Find(rows[1], "./td")
	if len(cells) < 2 {
		return fail("data row", fmt.Errorf("want at least 2 cells, found %d", len(cells)))
	}
	format := make([]string, 0, len(cells))
	for i, cell := range cells {
		p := htmlquery.FindOne(cell, "./p")
		if p == nil {
			return fail(fmt.Sprintf("cell %d", i), errMissing)
		}
		format = append(format, htmlquery.InnerText(p))
	}

	wc, variable, err := parseWordCount(format[0])
	if err != nil {
		return fail("word count", err)
	}
	opcode, err := parseUint16(format[1])
	if err != nil {
		return fail("opcode", err)
	}

	return Instruction{
		Group:             group,
		Name:              name,
		SpecializedName:   specialized,
		WordCount:         wc,
		Opcode:            Opcode(opcode),
		VariableWordCount: variable,
		Format:            format,
	}, nil
}

// parseInstructionName splits header text of the form "Name" or
// "Name (Specialized)".
func parseInstructionName(text string) (name, specialized string, err error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", "", errors.New("empty instruction name")
	}
	name = fields[0]
	if len(fields) == 1 {
		return name, "", nil
	}

	rest := strings.Join(fields[1:], " ")
	if len(rest) < 3 || !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return "", "", fmt.Errorf("specialized name %q is not parenthesized", rest)
	}
	specialized = strings.TrimSpace(rest[1 : len(rest)-1])
	if specialized == "" {
		return "", "", fmt.Errorf("specialized name %q is empty", rest)
	}
	return name, specialized, nil
}

func parseWordCount(raw string) (WordCount, bool, error) {
	num, _, variable := strings.Cut(raw, variableMarker)
	v, err := parseUint16(num)
	if err != nil {
		return 0, false, err
	}
	if v == 0 {
		return 0, false, errors.New("word count must be at least 1")
	}
	return WordCount(v), variable, nil
}
