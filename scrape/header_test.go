package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateHeader(t *testing.T) {
	tests := []struct {
		name  string
		insts []Instruction
		out   OutputConfig
		want  string
	}{
		{
			name:  "single",
			insts: []Instruction{{Name: "A", WordCount: 2, Opcode: 1}},
			out:   DefaultConfig().Output,
			want:  "#pragma once\n\n#define ENUMERATE_SPIRV_OPCODES(o) \\\n    o(A, \"A\", 2, 1, false ) \n\n",
		},
		{
			name: "several",
			insts: []Instruction{
				{Name: "OpNop", WordCount: 1, Opcode: 0},
				{Name: "OpSDotKHR", SpecializedName: "OpSDot", WordCount: 5, Opcode: 4450, VariableWordCount: true},
				{Name: "OpTypeInt", WordCount: 4, Opcode: 21},
			},
			out: DefaultConfig().Output,
			want: "#pragma once\n\n" +
				"#define ENUMERATE_SPIRV_OPCODES(o) \\\n" +
				"    o(OP_NOP, \"OpNop\", 1, 0, false ) \\\n" +
				"    o(OP_S_DOT, \"OpSDot\", 5, 4450, true ) \\\n" +
				"    o(OP_TYPE_INT, \"OpTypeInt\", 4, 21, false ) \n" +
				"\n",
		},
		{
			name:  "empty",
			insts: nil,
			out:   DefaultConfig().Output,
			want:  "#pragma once\n\n#define ENUMERATE_SPIRV_OPCODES(o) \\\n\n",
		},
		{
			name:  "custom macro",
			insts: []Instruction{{Name: "OpNop", WordCount: 1, Opcode: 0}},
			out:   OutputConfig{Guard: "#ifndef X", Macro: "SPV_OPS"},
			want:  "#ifndef X\n\n#define SPV_OPS(o) \\\n    o(OP_NOP, \"OpNop\", 1, 0, false ) \n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tcheck(t, generateHeader(&buf, tt.insts, tt.out))
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("header mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckCollisions(t *testing.T) {
	sameEnum := []Instruction{
		{Name: "OpFooBar", WordCount: 1, Opcode: 1},
		{Name: "OpFoo-Bar", WordCount: 1, Opcode: 2},
	}
	sameOpcode := []Instruction{
		{Name: "OpFoo", WordCount: 1, Opcode: 7},
		{Name: "OpBar", WordCount: 1, Opcode: 7},
	}

	tests := []struct {
		name    string
		insts   []Instruction
		checks  CheckConfig
		wantErr string // CollisionError.Kind, or empty
	}{
		{"distinct", []Instruction{{Name: "OpA", Opcode: 1}, {Name: "OpB", Opcode: 2}}, DefaultConfig().Checks, ""},
		{"enum default", sameEnum, DefaultConfig().Checks, "enum name"},
		{"enum warn", sameEnum, CheckConfig{EnumCollisions: PolicyWarn, OpcodeCollisions: PolicyError}, ""},
		{"enum ignore", sameEnum, CheckConfig{EnumCollisions: PolicyIgnore, OpcodeCollisions: PolicyError}, ""},
		{"opcode default", sameOpcode, DefaultConfig().Checks, ""},
		{"opcode error", sameOpcode, CheckConfig{EnumCollisions: PolicyError, OpcodeCollisions: PolicyError}, "opcode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkCollisions(tt.insts, tt.checks)
			if tt.wantErr == "" {
				tcheck(t, err)
				return
			}
			var cerr *CollisionError
			if !errors.As(err, &cerr) {
				t.Fatalf("got error %v, want *CollisionError", err)
			}
			if cerr.Kind != tt.wantErr {
				t.Errorf("CollisionError.Kind = %q, want %q", cerr.Kind, tt.wantErr)
			}
		})
	}
}

func TestInstructionNames(t *testing.T) {
	plain := Instruction{Group: "Group_Misc", Name: "OpFoo", WordCount: 2}
	special := Instruction{Group: "Group_Misc", Name: "OpFooKHR", SpecializedName: "OpFooBar", WordCount: 3, VariableWordCount: true}

	if got := plain.DisplayName(); got != "OpFoo" {
		t.Errorf("DisplayName() = %q, want %q", got, "OpFoo")
	}
	if got := special.DisplayName(); got != "OpFooBar" {
		t.Errorf("DisplayName() = %q, want %q", got, "OpFooBar")
	}
	if got := special.EnumName(false); got != "OP_FOO_KHR" {
		t.Errorf("EnumName(false) = %q, want %q", got, "OP_FOO_KHR")
	}
	if got := plain.EnumName(true); got != "OP_FOO" {
		t.Errorf("EnumName(true) without a specialized name = %q, want %q", got, "OP_FOO")
	}
	if got := special.EnumName(true); got != "OP_FOO_BAR" {
		t.Errorf("EnumName(true) = %q, want %q", got, "OP_FOO_BAR")
	}
	if got, want := plain.String(), "[Group_Misc] OpFoo #2"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := special.String(), "[Group_Misc] OpFooKHR (OpFooBar) #3 + variable"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
