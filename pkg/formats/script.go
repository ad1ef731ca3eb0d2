package formats

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrTruncatedFunctionTable is returned when a script's offset table runs past its data.
var ErrTruncatedFunctionTable = errors.New("truncated script function table")

// FunctionStatus tells how decoding of a function stopped.
type FunctionStatus int

// Function statuses.
const (
	// FunctionComplete: the end offset or a top-level EvtEnd was reached.
	FunctionComplete FunctionStatus = iota
	// FunctionTruncated: an instruction failed to decode before the end offset.
	FunctionTruncated
)

// String returns the status name.
func (s FunctionStatus) String() string {
	switch s {
	case FunctionComplete:
		return "Complete"
	case FunctionTruncated:
		return "Truncated"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Function is one decoded script function.
type Function struct {
	Offset       int // start offset within the section
	End          int // offset of the next function or the section length
	Status       FunctionStatus
	Instructions []Instruction
	Err          error // decode error when Status is FunctionTruncated
}

// Truncated reports whether decoding stopped on an error.
func (f *Function) Truncated() bool {
	return f.Status == FunctionTruncated
}

// DecodeFunction decodes instructions starting at start until end is reached,
// an instruction fails to decode, or EvtEnd appears outside any block.
// Instructions may read past end; the last one can straddle the boundary.
func DecodeFunction(data []byte, start, end int) Function {
	fn := Function{Offset: start, End: end}
	if start < 0 || start > len(data) {
		fn.Status = FunctionTruncated
		fn.Err = fmt.Errorf("%w: function starts at %d, section is %d bytes", ErrTruncatedInstruction, start, len(data))
		return fn
	}

	nesting := 0
	pos := start
	for pos < end {
		in, n, err := DecodeInstruction(data[pos:])
		if err != nil {
			fn.Status = FunctionTruncated
			fn.Err = fmt.Errorf("at offset %d: %w", pos, err)
			return fn
		}
		pos += n

		switch {
		case in.Op.OpensBlock():
			nesting++
		case in.Op.ClosesBlock() && nesting > 0:
			nesting--
		}

		fn.Instructions = append(fn.Instructions, in)
		if in.Op == OpEvtEnd && nesting == 0 {
			break
		}
	}

	return fn
}

// FunctionOffsets reads the offset table at the start of a script section.
// The returned slice ends with the section length.
func FunctionOffsets(data []byte) ([]int, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: missing first offset", ErrTruncatedFunctionTable)
	}

	first := binary.LittleEndian.Uint16(data)
	num := int(first / 2)
	if num == 0 {
		return nil, nil
	}
	if num*2 > len(data) {
		return nil, fmt.Errorf("%w: %d entries need %d bytes, have %d", ErrTruncatedFunctionTable, num, num*2, len(data))
	}

	offsets := make([]int, 0, num+1)
	for i := 0; i < num; i++ {
		offsets = append(offsets, int(binary.LittleEndian.Uint16(data[i*2:])))
	}
	return append(offsets, len(data)), nil
}

// SplitFunctions decodes every function of a script section.
// A two-byte zero table yields no functions.
func SplitFunctions(data []byte) ([]Function, error) {
	offsets, err := FunctionOffsets(data)
	if err != nil {
		return nil, err
	}
	if len(offsets) == 0 {
		return nil, nil
	}

	funcs := make([]Function, 0, len(offsets)-1)
	for i := 0; i+1 < len(offsets); i++ {
		funcs = append(funcs, DecodeFunction(data, offsets[i], offsets[i+1]))
	}
	return funcs, nil
}

// DecodeScript decodes a whole section as a single function.
func DecodeScript(data []byte) Function {
	return DecodeFunction(data, 0, len(data))
}
