package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

func printInstructionTable(w io.Writer, isa *ISA) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("%d instructions", len(isa.Instructions)))
	t.AppendHeader(table.Row{"Group", "Name", "Specialized", "Opcode", "Words", "Operands"})

	for i := range isa.Instructions {
		inst := &isa.Instructions[i]

		words := fmt.Sprint(inst.WordCount)
		if inst.VariableWordCount {
			words += "+"
		}
		kinds := make([]string, 0, len(inst.Operands()))
		for _, op := range inst.Operands() {
			kinds = append(kinds, string(classifyOperand(op)))
		}

		t.AppendRow(table.Row{
			inst.Group,
			inst.Name,
			inst.SpecializedName,
			inst.Opcode.String(),
			words,
			strings.Join(kinds, " "),
		})
	}
	t.Render()
}
