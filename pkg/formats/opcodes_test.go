package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpcodeSizes(t *testing.T) {
	tests := []struct {
		op   Opcode
		size int
	}{
		{OpNop, 1},
		{OpEvtEnd, 2},
		{OpIfElCk, 4},
		{OpFor, 6},
		{OpFor2, 7},
		{OpAotSet, 20},
		{OpObjModelSet, 38},
		{OpDoorAotSet, 32},
		{OpDoorAotSet4p, 40},
		{OpSceEmSet, 22},
		{OpItemAotSet2, 24},
		{OpSceEmSet2, 24},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.size, tc.op.Size(), "%s", tc.op)
	}

	assert.False(t, Opcode(0x8F).Valid())
	assert.Zero(t, Opcode(0x8F).Size())
	assert.Len(t, opcodes, 0x8F)
}

func TestOpcodeBlocks(t *testing.T) {
	openers := map[Opcode]bool{OpIfElCk: true, OpFor: true, OpWhile: true, OpDo: true, OpSwitch: true, OpFor2: true}
	closers := map[Opcode]bool{OpEndIf: true, OpNext: true, OpEWhile: true, OpEdWhile: true, OpESwitch: true}

	for op := Opcode(0); op.Valid(); op++ {
		assert.Equal(t, openers[op], op.OpensBlock(), "%s: OpensBlock", op)
		assert.Equal(t, closers[op], op.ClosesBlock(), "%s: ClosesBlock", op)
	}
}

func TestDecodeInstruction_AllOpcodes(t *testing.T) {
	for op := Opcode(0); op.Valid(); op++ {
		data := make([]byte, op.Size())
		data[0] = byte(op)
		for i := 1; i < len(data); i++ {
			data[i] = byte(0x80 + i)
		}

		in, n, err := DecodeInstruction(data)
		if !assert.NoError(t, err, "%s: decode", op) {
			continue
		}
		assert.Equal(t, len(data), n, "%s: length", op)

		out, err := in.MarshalBinary()
		if !assert.NoError(t, err, "%s: encode", op) {
			continue
		}
		assert.Equal(t, data, out, "%s: re-encoded", op)

		if len(data) > 1 {
			_, _, err := DecodeInstruction(data[:len(data)-1])
			assert.ErrorIs(t, err, ErrTruncatedInstruction, "%s: short data", op)
		}
	}
}

func TestDecodeInstruction_Operands(t *testing.T) {
	// AotSet: aot i8, sce, sat, nFloor, super u8, x z fixed16, w h ufixed16, data0..2 u16
	data := []byte{
		0x2C,
		0xFF, 0x01, 0x03, 0x00, 0x00,
		0x18, 0xFC, // x = -1000
		0xD0, 0x07, // z = 2000
		0x00, 0x90, // w = 0x9000
		0x20, 0x03, // h = 800
		0x01, 0x00, 0x02, 0x00, 0x03, 0x00,
	}

	in, n, err := DecodeInstruction(data)
	require.NoError(t, err)
	require.Equal(t, 20, n)
	require.Equal(t, OpAotSet, in.Op)

	want := map[string]int32{"aot": -1, "sce": 1, "sat": 3, "x": -1000, "z": 2000, "w": 0x9000, "h": 800, "data2": 3}
	for name, v := range want {
		got, ok := in.Arg(name)
		assert.True(t, ok, name)
		assert.Equal(t, v, got, name)
	}
	_, ok := in.Arg("missing")
	assert.False(t, ok)

	ops := in.Operands()
	require.Len(t, ops, 12)
	assert.Equal(t, OperandFixed16, ops[5].Kind)
	assert.Equal(t, OperandUFixed16, ops[7].Kind)
}

func TestDecodeInstruction_Errors(t *testing.T) {
	_, _, err := DecodeInstruction(nil)
	assert.ErrorIs(t, err, ErrTruncatedInstruction)

	_, _, err = DecodeInstruction([]byte{0xA0})
	assert.ErrorIs(t, err, ErrUnknownOpcode)
}

func TestInstructionMarshal_OperandCount(t *testing.T) {
	in := Instruction{Op: OpEvtExec, Args: []int32{1}}
	_, err := in.MarshalBinary()
	assert.ErrorIs(t, err, ErrOperandCount)
}

func TestInstructionString(t *testing.T) {
	tests := []struct {
		in   Instruction
		want string
	}{
		{Instruction{Op: OpNop}, "Nop"},
		{Instruction{Op: OpSleeping, Args: []int32{30}}, "Sleeping{value: 30}"},
		{Instruction{Op: OpCk, Args: []int32{1, 2, 0}}, "Ck{flag: 1, id: 2, onOff: 0}"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.in.String())
	}

	assert.Equal(t, "Unknown(0xF0)", Opcode(0xF0).String())
}
