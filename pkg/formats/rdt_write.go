package formats

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// countingWriter tracks the stream position so section offsets can be checked.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// WriteTo serializes the header, the preamble and every section in file order.
// Before each section the stream position must equal the header offset;
// a mismatch means the RDT state is inconsistent and returns ErrLayoutMismatch.
func (r *RDT) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}

	if len(r.order) > 0 && r.header.Offsets[r.order[0]] < RDTHeaderSize {
		return 0, fmt.Errorf("%w: first section %s at %d", ErrLayoutMismatch, r.order[0], r.header.Offsets[r.order[0]])
	}

	if err := binary.Write(cw, binary.LittleEndian, &r.header); err != nil {
		return cw.n, fmt.Errorf("writing RDT header: %w", err)
	}
	if _, err := cw.Write(r.preamble); err != nil {
		return cw.n, fmt.Errorf("writing RDT preamble: %w", err)
	}

	for _, s := range r.order {
		if cw.n != int64(r.header.Offsets[s]) {
			return cw.n, fmt.Errorf("%w: %s declared at %d, stream at %d",
				ErrLayoutMismatch, s, r.header.Offsets[s], cw.n)
		}
		if _, err := cw.Write(r.sections[s]); err != nil {
			return cw.n, fmt.Errorf("writing section %s: %w", s, err)
		}
	}

	return cw.n, nil
}

// Bytes serializes the room file into memory.
func (r *RDT) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(r.Size())
	if _, err := r.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile serializes the room file to disk.
func (r *RDT) WriteFile(path string) error {
	data, err := r.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing RDT file: %w", err)
	}
	return nil
}
