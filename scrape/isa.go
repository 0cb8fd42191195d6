package main

import (
	"fmt"
	"strings"
)

// Instruction is a single row of the SPIR-V instruction listing, as
// recovered from one of the per-instruction tables in the specification.
type Instruction struct {
	Group             string
	Name              string
	SpecializedName   string // empty unless the header carried "(Name)"
	WordCount         WordCount
	Opcode            Opcode
	VariableWordCount bool

	// Format has one entry per table column, including the word count
	// and opcode columns, so that indices line up with the source table.
	Format []string
}

// DisplayName returns the specialized name if there is one, or the
// canonical name otherwise.
func (inst *Instruction) DisplayName() string {
	if inst.SpecializedName != "" {
		return inst.SpecializedName
	}
	return inst.Name
}

// EnumName returns the upper-case identifier for the instruction. When
// preferSpecialized is set and the instruction has a specialized name,
// the identifier is built from that instead of the canonical name.
func (inst *Instruction) EnumName(preferSpecialized bool) string {
	target := inst.Name
	if preferSpecialized && inst.SpecializedName != "" {
		target = inst.SpecializedName
	}
	return makeIdentScreaming(target)
}

// Operands returns the format entries that follow the word count and
// opcode columns.
func (inst *Instruction) Operands() []string {
	if len(inst.Format) <= 2 {
		return nil
	}
	return inst.Format[2:]
}

// String renders the instruction on one line for log output.
func (inst *Instruction) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "[%s] %s ", inst.Group, inst.Name)
	if inst.SpecializedName != "" {
		fmt.Fprintf(&buf, "(%s) ", inst.SpecializedName)
	}
	fmt.Fprintf(&buf, "#%d", inst.WordCount)
	if inst.VariableWordCount {
		buf.WriteString(" + variable")
	}
	return buf.String()
}

// ISA accumulates everything extracted during one run over the
// specification. Only the instruction listing is populated today.
type ISA struct {
	Instructions []Instruction
}
