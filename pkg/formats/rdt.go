package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// RDT format errors.
var (
	ErrTruncatedRDTHeader     = errors.New("truncated RDT header")
	ErrInvalidSectionOffset   = errors.New("invalid RDT section offset")
	ErrDuplicateSectionOffset = errors.New("duplicate RDT section offset")
	ErrTruncatedModelTable    = errors.New("truncated RDT model table")
	ErrInvalidRDTSection      = errors.New("invalid RDT section")
	ErrTooManyModels          = errors.New("too many models for RDT header")
	ErrSectionTooLarge        = errors.New("RDT section exceeds 32-bit offsets")
	ErrLayoutMismatch         = errors.New("RDT layout mismatch")
)

// RDTHeaderSize is the size of the fixed header: 8 prologue bytes and 23 offsets.
const RDTHeaderSize = 100

// RDTSectionCount is the number of offset slots in the header.
const RDTSectionCount = 23

// RDTSection identifies one offset slot of the header.
type RDTSection int

// Section slots in header order.
const (
	RDTSoundAttributes RDTSection = iota
	RDTSoundHeader1
	RDTSoundBank1
	RDTSoundHeader2
	RDTSoundBank2
	RDTOta
	RDTCollision
	RDTCameraPos
	RDTCameraZone
	RDTLight
	RDTModel
	RDTFloor
	RDTBlock
	RDTJpMessage
	RDTOtherMessage
	RDTCameraScroll
	RDTInitScript
	RDTExecScript
	RDTSpriteID
	RDTSpriteData
	RDTSpriteTexture
	RDTModelTexture
	RDTAnimation
)

var rdtSectionNames = [RDTSectionCount]string{
	"SoundAttributes",
	"SoundHeader1",
	"SoundBank1",
	"SoundHeader2",
	"SoundBank2",
	"Ota",
	"Collision",
	"CameraPos",
	"CameraZone",
	"Light",
	"Model",
	"Floor",
	"Block",
	"JpMessage",
	"OtherMessage",
	"CameraScroll",
	"InitScript",
	"ExecScript",
	"SpriteId",
	"SpriteData",
	"SpriteTexture",
	"ModelTexture",
	"Animation",
}

// String returns the section name.
func (s RDTSection) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
	return rdtSectionNames[s]
}

// Valid reports whether s is one of the 23 header slots.
func (s RDTSection) Valid() bool {
	return s >= 0 && s < RDTSectionCount
}

// AllRDTSections returns every section slot in header order.
func AllRDTSections() []RDTSection {
	all := make([]RDTSection, RDTSectionCount)
	for i := range all {
		all[i] = RDTSection(i)
	}
	return all
}

// ParseRDTSection looks up a section by name (case-insensitive).
func ParseRDTSection(name string) (RDTSection, error) {
	for i, n := range rdtSectionNames {
		if strings.EqualFold(n, name) {
			return RDTSection(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRDTSection, name)
}

// RDTHeader is the fixed 100-byte header of a room file.
type RDTHeader struct {
	SpriteCount uint8
	CutCount    uint8
	ModelCount  uint8 // records in the model sub-table
	ItemCount   uint8
	DoorCount   uint8
	RoomAtCount uint8
	ReverbLevel uint8
	SpriteMax   uint8
	Offsets     [RDTSectionCount]uint32 // 0 = absent
}

// RDT is a parsed room file. Sections are stored as independent byte ranges
// so they can be replaced and the file re-serialized with every offset kept consistent.
type RDT struct {
	header   RDTHeader
	preamble []byte
	sections [RDTSectionCount][]byte
	order    []RDTSection
}

// ParseRDT parses a room file from raw bytes. The input is copied.
func ParseRDT(data []byte) (*RDT, error) {
	if len(data) < RDTHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedRDTHeader, len(data))
	}

	r := &RDT{}
	if err := binary.Read(bytes.NewReader(data[:RDTHeaderSize]), binary.LittleEndian, &r.header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedRDTHeader, err)
	}

	// Collect present sections and sort them by offset
	for _, s := range AllRDTSections() {
		off := r.header.Offsets[s]
		if off == 0 {
			continue
		}
		if off < RDTHeaderSize {
			return nil, fmt.Errorf("%w: %s at %d is inside the header", ErrInvalidSectionOffset, s, off)
		}
		if uint64(off) > uint64(len(data)) {
			return nil, fmt.Errorf("%w: %s at %d is past end of file (%d)", ErrInvalidSectionOffset, s, off, len(data))
		}
		r.order = append(r.order, s)
	}

	sort.SliceStable(r.order, func(i, j int) bool {
		return r.header.Offsets[r.order[i]] < r.header.Offsets[r.order[j]]
	})

	for i := 1; i < len(r.order); i++ {
		prev, cur := r.order[i-1], r.order[i]
		if r.header.Offsets[prev] == r.header.Offsets[cur] {
			return nil, fmt.Errorf("%w: %s and %s at %d", ErrDuplicateSectionOffset, prev, cur, r.header.Offsets[cur])
		}
	}

	// Slice sections: each runs to the next greater offset or end of file
	firstSection := len(data)
	if len(r.order) > 0 {
		firstSection = int(r.header.Offsets[r.order[0]])
	}
	r.preamble = bytes.Clone(data[RDTHeaderSize:firstSection])

	for i, s := range r.order {
		start := int(r.header.Offsets[s])
		end := len(data)
		if i+1 < len(r.order) {
			end = int(r.header.Offsets[r.order[i+1]])
		}
		r.sections[s] = bytes.Clone(data[start:end])
	}

	if r.Has(RDTModel) {
		need := int(r.header.ModelCount) * modelEntrySize
		if len(r.sections[RDTModel]) < need {
			return nil, fmt.Errorf("%w: %d models need %d bytes, section has %d",
				ErrTruncatedModelTable, r.header.ModelCount, need, len(r.sections[RDTModel]))
		}
	}

	return r, nil
}

// ParseRDTFile parses a room file from disk.
func ParseRDTFile(path string) (*RDT, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading RDT file: %w", err)
	}
	return ParseRDT(data)
}

// ReadRDT parses a room file from a reader.
func ReadRDT(rd io.Reader) (*RDT, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("reading RDT: %w", err)
	}
	return ParseRDT(data)
}

// Header returns a copy of the current header.
func (r *RDT) Header() RDTHeader {
	return r.header
}

// Has reports whether the section is present.
func (r *RDT) Has(s RDTSection) bool {
	return s.Valid() && r.header.Offsets[s] != 0
}

// Section returns a copy of the section bytes, or nil if absent.
func (r *RDT) Section(s RDTSection) []byte {
	if !r.Has(s) {
		return nil
	}
	return bytes.Clone(r.sections[s])
}

// Offset returns the header offset of the section (0 if absent).
func (r *RDT) Offset(s RDTSection) uint32 {
	if !s.Valid() {
		return 0
	}
	return r.header.Offsets[s]
}

// Order returns the present sections in file order.
func (r *RDT) Order() []RDTSection {
	return append([]RDTSection(nil), r.order...)
}

// Preamble returns the bytes between the header and the first section.
func (r *RDT) Preamble() []byte {
	return bytes.Clone(r.preamble)
}

// Size returns the serialized size in bytes.
func (r *RDT) Size() int {
	n := RDTHeaderSize + len(r.preamble)
	for _, s := range r.order {
		n += len(r.sections[s])
	}
	return n
}
