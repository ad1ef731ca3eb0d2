package formats

import (
	"bytes"
	"fmt"
	"math"
	"slices"
)

// ReplaceSection replaces the contents of a section.
//
// Empty data removes the section. A section that is absent is appended at the
// current end of file. Otherwise every section located after it moves by the
// change in length, and model sub-table pointers that address bytes after the
// old section end move by the same amount. When s is the Model section, the
// pointers in data are read against the current layout and shifted the same way.
// On error the RDT is left unchanged.
func (r *RDT) ReplaceSection(s RDTSection, data []byte) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidRDTSection, int(s))
	}
	return r.replace(s, data, int(r.header.ModelCount), true)
}

// RemoveSection removes a section. Removing an absent section is a no-op.
func (r *RDT) RemoveSection(s RDTSection) error {
	return r.ReplaceSection(s, nil)
}

// ReplaceModelSection rewrites the Model section from a sub-table and the bytes that follow it.
// The header model count is set to len(entries). Entries are final offsets in the
// resulting layout and are stored as given.
func (r *RDT) ReplaceModelSection(entries []ModelEntry, payload []byte) error {
	if len(entries) > math.MaxUint8 {
		return fmt.Errorf("%w: %d", ErrTooManyModels, len(entries))
	}

	var data []byte
	if len(entries) > 0 || len(payload) > 0 {
		data = encodeModelTable(entries, payload)
	}
	return r.replace(RDTModel, data, len(entries), false)
}

func (r *RDT) replace(s RDTSection, data []byte, modelCount int, shiftIncoming bool) error {
	if !r.Has(s) {
		if len(data) == 0 {
			return nil
		}
		return r.insert(s, data, modelCount)
	}

	start := r.header.Offsets[s]
	oldLen := len(r.sections[s])
	delta := int64(len(data)) - int64(oldLen)

	if s == RDTModel {
		if len(data) == 0 {
			modelCount = 0
		}
		if len(data) < modelCount*modelEntrySize {
			return fmt.Errorf("%w: %d models need %d bytes, got %d",
				ErrTruncatedModelTable, modelCount, modelCount*modelEntrySize, len(data))
		}
	}
	if int64(r.Size())+delta > math.MaxUint32 {
		return fmt.Errorf("%w: %s grows to %d bytes", ErrSectionTooLarge, s, len(data))
	}

	// Pass 1: section directory
	offsets := r.header.Offsets
	for _, t := range r.order {
		if t != s && offsets[t] > start {
			offsets[t] = uint32(int64(offsets[t]) + delta)
		}
	}

	// Pass 2: model sub-table
	model := r.sections[RDTModel]
	if s != RDTModel && r.Has(RDTModel) && delta != 0 {
		model = shiftModelPointers(model, int(r.header.ModelCount), start, start+uint32(oldLen), delta)
	}
	if s == RDTModel && shiftIncoming && len(data) > 0 && delta != 0 {
		data = shiftModelPointers(data, modelCount, start, start+uint32(oldLen), delta)
	}

	order := r.order
	if len(data) == 0 {
		offsets[s] = 0
		order = slices.DeleteFunc(slices.Clone(order), func(t RDTSection) bool { return t == s })
	}

	r.header.Offsets = offsets
	r.order = order
	if s != RDTModel {
		r.sections[RDTModel] = model
	} else {
		r.header.ModelCount = uint8(modelCount)
	}
	r.sections[s] = bytes.Clone(data)
	return nil
}

// insert places an absent section at the end of file. Empty sections already
// sitting at the end of file move behind it.
func (r *RDT) insert(s RDTSection, data []byte, modelCount int) error {
	end := r.Size()
	if int64(end)+int64(len(data)) > math.MaxUint32 {
		return fmt.Errorf("%w: inserting %s at %d", ErrSectionTooLarge, s, end)
	}
	if s == RDTModel && len(data) < modelCount*modelEntrySize {
		return fmt.Errorf("%w: %d models need %d bytes, got %d",
			ErrTruncatedModelTable, modelCount, modelCount*modelEntrySize, len(data))
	}

	offsets := r.header.Offsets
	pos := len(r.order)
	for i, t := range r.order {
		if int(offsets[t]) == end {
			offsets[t] += uint32(len(data))
			if i < pos {
				pos = i
			}
		}
	}
	offsets[s] = uint32(end)

	r.header.Offsets = offsets
	r.order = slices.Insert(slices.Clone(r.order), pos, s)
	r.sections[s] = bytes.Clone(data)
	if s == RDTModel {
		r.header.ModelCount = uint8(modelCount)
	}
	return nil
}
