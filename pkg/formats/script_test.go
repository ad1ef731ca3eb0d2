package formats

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTestScript assembles a script section from function bodies, prefixed by its offset table.
func buildTestScript(funcs ...[]byte) []byte {
	buf := new(bytes.Buffer)
	off := uint16(len(funcs) * 2)
	for _, f := range funcs {
		binary.Write(buf, binary.LittleEndian, off)
		off += uint16(len(f))
	}
	for _, f := range funcs {
		buf.Write(f)
	}
	return buf.Bytes()
}

func ops(in ...[]byte) []byte {
	return bytes.Join(in, nil)
}

var (
	opIfElCk  = []byte{0x06, 0x00, 0x08, 0x00}
	opEndIf   = []byte{0x08, 0x00}
	opEvtEnd  = []byte{0x01, 0x00}
	opSleep   = []byte{0x0A, 0x10, 0x00}
	opNop     = []byte{0x00}
	opBadByte = []byte{0xFF}
)

func opcodeList(fn Function) []Opcode {
	var list []Opcode
	for _, in := range fn.Instructions {
		list = append(list, in.Op)
	}
	return list
}

func TestSplitFunctions(t *testing.T) {
	data := buildTestScript(
		ops(opIfElCk, opEvtEnd, opEndIf, opEvtEnd),
		ops(opSleep, opEvtEnd),
	)

	funcs, err := SplitFunctions(data)
	require.NoError(t, err)
	require.Len(t, funcs, 2)

	assert.Equal(t, []Opcode{OpIfElCk, OpEvtEnd, OpEndIf, OpEvtEnd}, opcodeList(funcs[0]))
	assert.Equal(t, 4, funcs[0].Offset)
	assert.Equal(t, 14, funcs[0].End)

	assert.Equal(t, []Opcode{OpSleeping, OpEvtEnd}, opcodeList(funcs[1]))
	assert.Equal(t, len(data), funcs[1].End, "last function ends at the section end")

	for i, fn := range funcs {
		assert.Equal(t, FunctionComplete, fn.Status, "function %d", i)
		assert.NoError(t, fn.Err, "function %d", i)
	}

	v, ok := funcs[1].Instructions[0].Arg("value")
	assert.True(t, ok)
	assert.Equal(t, int32(0x10), v)
}

func TestSplitFunctions_StopsAtTopLevelEvtEnd(t *testing.T) {
	data := buildTestScript(ops(opNop, opEvtEnd, opBadByte, opBadByte))

	funcs, err := SplitFunctions(data)
	require.NoError(t, err)
	assert.Equal(t, FunctionComplete, funcs[0].Status)
	assert.Len(t, funcs[0].Instructions, 2)
}

func TestSplitFunctions_NestingSaturatesAtZero(t *testing.T) {
	data := buildTestScript(ops(opEndIf, opEndIf, opEvtEnd, opNop))

	funcs, err := SplitFunctions(data)
	require.NoError(t, err)
	assert.Equal(t, []Opcode{OpEndIf, OpEndIf, OpEvtEnd}, opcodeList(funcs[0]))
}

func TestSplitFunctions_Truncated(t *testing.T) {
	data := buildTestScript(
		ops(opNop, opBadByte, opNop),
		ops(opNop, opEvtEnd),
	)

	funcs, err := SplitFunctions(data)
	require.NoError(t, err)

	fn := funcs[0]
	require.True(t, fn.Truncated())
	assert.ErrorIs(t, fn.Err, ErrUnknownOpcode)
	assert.Len(t, fn.Instructions, 1, "instructions before the error")

	// The next function still decodes
	assert.Equal(t, FunctionComplete, funcs[1].Status)
	assert.Len(t, funcs[1].Instructions, 2)
}

func TestSplitFunctions_InstructionPastSectionEnd(t *testing.T) {
	data := buildTestScript(ops(opNop, []byte{0x0A, 0x10}))

	funcs, err := SplitFunctions(data)
	require.NoError(t, err)
	fn := funcs[0]
	assert.True(t, fn.Truncated())
	assert.ErrorIs(t, fn.Err, ErrTruncatedInstruction)
	assert.Len(t, fn.Instructions, 1)
}

func TestSplitFunctions_InstructionStraddlesBoundary(t *testing.T) {
	// Function 0 covers a single byte but its IfElCk reads 3 bytes of function 1.
	data := []byte{0x04, 0x00, 0x05, 0x00, 0x06, 0x00, 0x08, 0x00, 0x01, 0x00}

	funcs, err := SplitFunctions(data)
	require.NoError(t, err)
	require.Len(t, funcs, 2)
	assert.Equal(t, FunctionComplete, funcs[0].Status)
	assert.Equal(t, []Opcode{OpIfElCk}, opcodeList(funcs[0]))
}

func TestSplitFunctions_Table(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		count   int
		wantErr error
	}{
		{"empty section", nil, 0, nil},
		{"zero table", []byte{0x00, 0x00}, 0, nil},
		{"odd first offset", []byte{0x01, 0x00, 0x00}, 0, nil},
		{"single function", []byte{0x02, 0x00, 0x01, 0x00}, 1, nil},
		{"table past data", []byte{0x08, 0x00, 0x00, 0x00}, 0, ErrTruncatedFunctionTable},
		{"one byte", []byte{0x02}, 0, ErrTruncatedFunctionTable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			funcs, err := SplitFunctions(tc.data)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Len(t, funcs, tc.count)
		})
	}
}

func TestDecodeScript(t *testing.T) {
	fn := DecodeScript(ops(opSleep, opNop, opEvtEnd, opNop))
	require.Equal(t, FunctionComplete, fn.Status, "%v", fn.Err)
	assert.Equal(t, []Opcode{OpSleeping, OpNop, OpEvtEnd}, opcodeList(fn))
}

func TestDecodeFunction_StartOutOfRange(t *testing.T) {
	fn := DecodeFunction([]byte{0x00}, 5, 8)
	assert.True(t, fn.Truncated())
}
