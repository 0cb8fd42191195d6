package main

import (
	"github.com/go-faster/jx"
)

// encodeJSON renders the instruction records as a JSON document, for
// consumers that would rather not parse the C header.
func encodeJSON(isa *ISA) []byte {
	var e jx.Encoder
	e.SetIdent(2)
	e.Obj(func(e *jx.Encoder) {
		e.Field("instructions", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for i := range isa.Instructions {
					encodeInstruction(e, &isa.Instructions[i])
				}
			})
		})
	})
	return append(e.Bytes(), '\n')
}

func encodeInstruction(e *jx.Encoder, inst *Instruction) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("group", func(e *jx.Encoder) { e.Str(inst.Group) })
		e.Field("name", func(e *jx.Encoder) { e.Str(inst.Name) })
		e.Field("specialized_name", func(e *jx.Encoder) {
			if inst.SpecializedName == "" {
				e.Null()
				return
			}
			e.Str(inst.SpecializedName)
		})
		e.Field("enum", func(e *jx.Encoder) { e.Str(inst.EnumName(true)) })
		e.Field("word_count", func(e *jx.Encoder) { e.Int(int(inst.WordCount)) })
		e.Field("variable_word_count", func(e *jx.Encoder) { e.Bool(inst.VariableWordCount) })
		e.Field("opcode", func(e *jx.Encoder) { e.Int(int(inst.Opcode)) })
		e.Field("format", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, f := range inst.Format {
					e.Str(f)
				}
			})
		})
		e.Field("operands", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, op := range inst.Operands() {
					e.Obj(func(e *jx.Encoder) {
						e.Field("kind", func(e *jx.Encoder) { e.Str(string(classifyOperand(op))) })
						e.Field("text", func(e *jx.Encoder) { e.Str(op) })
					})
				}
			})
		})
	})
}
