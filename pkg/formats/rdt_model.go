package formats

import (
	"encoding/binary"
	"fmt"
)

const modelEntrySize = 8

// ModelEntry is one record of the model sub-table at the start of the Model section.
// Both fields are absolute file offsets.
type ModelEntry struct {
	Texture uint32
	Mesh    uint32
}

// ModelTable decodes the model sub-table declared by the header.
func (r *RDT) ModelTable() ([]ModelEntry, error) {
	if !r.Has(RDTModel) {
		return nil, nil
	}
	return decodeModelTable(r.sections[RDTModel], int(r.header.ModelCount))
}

func decodeModelTable(data []byte, count int) ([]ModelEntry, error) {
	if len(data) < count*modelEntrySize {
		return nil, fmt.Errorf("%w: %d models need %d bytes, section has %d",
			ErrTruncatedModelTable, count, count*modelEntrySize, len(data))
	}

	entries := make([]ModelEntry, count)
	for i := range entries {
		rec := data[i*modelEntrySize:]
		entries[i] = ModelEntry{
			Texture: binary.LittleEndian.Uint32(rec[0:4]),
			Mesh:    binary.LittleEndian.Uint32(rec[4:8]),
		}
	}
	return entries, nil
}

func encodeModelTable(entries []ModelEntry, payload []byte) []byte {
	out := make([]byte, len(entries)*modelEntrySize, len(entries)*modelEntrySize+len(payload))
	for i, e := range entries {
		binary.LittleEndian.PutUint32(out[i*modelEntrySize:], e.Texture)
		binary.LittleEndian.PutUint32(out[i*modelEntrySize+4:], e.Mesh)
	}
	return append(out, payload...)
}

// shiftModelPointers returns a copy of the model section whose pointers addressing
// bytes at or after oldEnd are moved by delta. Pointers into the mutated range are kept.
func shiftModelPointers(model []byte, count int, start, oldEnd uint32, delta int64) []byte {
	out := append([]byte(nil), model...)
	for i := 0; i < count*2; i++ {
		p := binary.LittleEndian.Uint32(out[i*4:])
		if p > start && p >= oldEnd {
			binary.LittleEndian.PutUint32(out[i*4:], uint32(int64(p)+delta))
		}
	}
	return out
}
