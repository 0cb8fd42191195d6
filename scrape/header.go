package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// generateHeader renders the opcode enumeration macro for insts. Entries
// appear in the order given; every entry but the last ends with a line
// continuation.
func generateHeader(w io.Writer, insts []Instruction, out OutputConfig) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "#define %s(o) \\\n", out.Macro)
	for i := range insts {
		inst := &insts[i]

		footer := "\\\n"
		if i == len(insts)-1 {
			footer = "\n"
		}
		fmt.Fprintf(&buf, "    o(%s, \"%s\", %d, %d, %t ) %s",
			inst.EnumName(true),
			inst.DisplayName(),
			inst.WordCount,
			inst.Opcode,
			inst.VariableWordCount,
			footer,
		)
	}

	_, err := fmt.Fprintf(w, "%s\n\n%s\n", out.Guard, buf.Bytes())
	return err
}

// checkCollisions looks for instructions that would be emitted under the
// same enum name, or that share an opcode, and applies the configured
// policy to each.
func checkCollisions(insts []Instruction, checks CheckConfig) error {
	enums := make(map[string]*Instruction, len(insts))
	opcodes := make(map[Opcode]*Instruction, len(insts))

	for i := range insts {
		inst := &insts[i]

		name := inst.EnumName(true)
		if prev, ok := enums[name]; ok {
			err := &CollisionError{Kind: "enum name", Key: name, First: prev.DisplayName(), Second: inst.DisplayName()}
			if err := applyPolicy(checks.EnumCollisions, err); err != nil {
				return err
			}
		} else {
			enums[name] = inst
		}

		if prev, ok := opcodes[inst.Opcode]; ok {
			err := &CollisionError{Kind: "opcode", Key: inst.Opcode.String(), First: prev.DisplayName(), Second: inst.DisplayName()}
			if err := applyPolicy(checks.OpcodeCollisions, err); err != nil {
				return err
			}
		} else {
			opcodes[inst.Opcode] = inst
		}
	}
	return nil
}

func applyPolicy(p Policy, err *CollisionError) error {
	switch p {
	case PolicyError:
		return err
	case PolicyWarn:
		logrus.Warn(err.Error())
	}
	return nil
}
