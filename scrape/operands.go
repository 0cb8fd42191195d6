package main

import (
	"strings"
)

// OperandKind is a rough classification of an operand column, taken from
// the way the specification words its description.
type OperandKind string

const (
	OperandID       OperandKind = "id"
	OperandLiteral  OperandKind = "literal"
	OperandOptional OperandKind = "optional"
	OperandVariadic OperandKind = "variadic"
	OperandOther    OperandKind = "other"
)

func classifyOperand(text string) OperandKind {
	text = strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(text, "Optional"):
		return OperandOptional
	case strings.Contains(text, "…"), strings.Contains(text, "..."):
		// Lists such as "<id>, <id>, … Operand 1, Operand 2, …" stand for
		// any number of trailing operands.
		return OperandVariadic
	case strings.HasPrefix(text, "<id>"):
		return OperandID
	case strings.HasPrefix(text, "Literal"):
		return OperandLiteral
	default:
		return OperandOther
	}
}
