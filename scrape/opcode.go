package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Opcode and WordCount share a single 32-bit word in the SPIR-V encoding,
// so each is limited to 16 bits.
type Opcode uint16
type WordCount uint16

func (v Opcode) String() string {
	return fmt.Sprintf("0x%04x", uint16(v))
}

// parseUint16 parses a table cell as an integer literal. The base is
// taken from a 0x, 0o or 0b prefix and is decimal otherwise, so a bare
// leading zero such as "010" is rejected rather than read as octal.
func parseUint16(raw string) (uint16, error) {
	s := strings.TrimSpace(raw)
	if len(s) > 1 && s[0] == '0' && s[1] >= '0' && s[1] <= '9' && strings.Trim(s, "0") != "" {
		return 0, fmt.Errorf("invalid literal %q: leading zero in decimal number", s)
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}
