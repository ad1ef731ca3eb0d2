package formats

import (
	"bytes"
	"encoding/binary"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSection struct {
	section RDTSection
	data    []byte
}

// buildTestRDT lays out sections back to back, in the given order, after the header and preamble.
func buildTestRDT(preamble []byte, modelCount uint8, sections ...testSection) []byte {
	var h RDTHeader
	h.ModelCount = modelCount
	h.SpriteCount = 3
	h.ReverbLevel = 7

	pos := uint32(RDTHeaderSize + len(preamble))
	for _, s := range sections {
		h.Offsets[s.section] = pos
		pos += uint32(len(s.data))
	}

	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, &h)
	buf.Write(preamble)
	for _, s := range sections {
		buf.Write(s.data)
	}
	return buf.Bytes()
}

func fill(n int, b byte) []byte {
	return bytes.Repeat([]byte{b}, n)
}

func modelTableBytes(entries ...ModelEntry) []byte {
	return encodeModelTable(entries, nil)
}

// modelTestLayout: Collision@100 (16), Model@116 (16, 2 entries), ModelTexture@132 (8), Animation@140 (4).
func modelTestLayout() []byte {
	return buildTestRDT(nil, 2,
		testSection{RDTCollision, fill(16, 0xC1)},
		testSection{RDTModel, modelTableBytes(
			ModelEntry{Texture: 132, Mesh: 136},
			ModelEntry{Texture: 140, Mesh: 104},
		)},
		testSection{RDTModelTexture, fill(8, 0x7E)},
		testSection{RDTAnimation, fill(4, 0xA0)},
	)
}

func parseModelTestLayout(t *testing.T) *RDT {
	t.Helper()
	rdt, err := ParseRDT(modelTestLayout())
	require.NoError(t, err)
	return rdt
}

// reparse serializes rdt and parses the result.
func reparse(t *testing.T, rdt *RDT) *RDT {
	t.Helper()
	out, err := rdt.Bytes()
	require.NoError(t, err)
	again, err := ParseRDT(out)
	require.NoError(t, err)
	return again
}

func TestParseRDT_Sections(t *testing.T) {
	data := buildTestRDT(nil, 0,
		testSection{RDTFloor, fill(10, 0xF1)},
		testSection{RDTCollision, fill(20, 0xC1)},
		testSection{RDTExecScript, fill(6, 0xE5)},
	)

	rdt, err := ParseRDT(data)
	require.NoError(t, err)

	h := rdt.Header()
	assert.Equal(t, uint8(3), h.SpriteCount)
	assert.Equal(t, uint8(7), h.ReverbLevel)

	assert.Equal(t, []RDTSection{RDTFloor, RDTCollision, RDTExecScript}, rdt.Order())
	assert.Equal(t, fill(20, 0xC1), rdt.Section(RDTCollision))
	assert.Equal(t, uint32(110), rdt.Offset(RDTCollision))
	assert.False(t, rdt.Has(RDTModel))
	assert.Nil(t, rdt.Section(RDTModel))
	assert.Equal(t, len(data), rdt.Size())
}

func TestParseRDT_SingleSection(t *testing.T) {
	data := buildTestRDT(nil, 0, testSection{RDTFloor, fill(4, 0x11)})

	rdt, err := ParseRDT(data)
	require.NoError(t, err)

	require.Len(t, rdt.Order(), 1)
	assert.Equal(t, uint32(RDTHeaderSize), rdt.Offset(RDTFloor))
	for _, s := range AllRDTSections() {
		if s != RDTFloor {
			assert.False(t, rdt.Has(s), "%s", s)
		}
	}

	out, err := rdt.Bytes()
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestParseRDT_RoundTrip(t *testing.T) {
	data := buildTestRDT([]byte{1, 2, 3, 4}, 2,
		testSection{RDTCollision, fill(16, 0xC1)},
		testSection{RDTModel, modelTableBytes(ModelEntry{1, 2}, ModelEntry{3, 4})},
		testSection{RDTAnimation, fill(3, 0xA0)},
	)

	rdt, err := ParseRDT(data)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, rdt.Preamble())

	out, err := rdt.Bytes()
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestParseRDT_CopiesInput(t *testing.T) {
	data := buildTestRDT(nil, 0, testSection{RDTFloor, fill(4, 0x11)})
	rdt, err := ParseRDT(data)
	require.NoError(t, err)

	data[RDTHeaderSize] = 0xFF
	assert.Equal(t, byte(0x11), rdt.Section(RDTFloor)[0], "section aliases the input buffer")
}

func TestParseRDT_Errors(t *testing.T) {
	valid := buildTestRDT(nil, 0,
		testSection{RDTCollision, fill(16, 0)},
		testSection{RDTFloor, fill(8, 0)},
	)

	withOffset := func(s RDTSection, off uint32) []byte {
		d := bytes.Clone(valid)
		binary.LittleEndian.PutUint32(d[8+4*int(s):], off)
		return d
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"truncated header", valid[:99], ErrTruncatedRDTHeader},
		{"empty", nil, ErrTruncatedRDTHeader},
		{"offset inside header", withOffset(RDTLight, 50), ErrInvalidSectionOffset},
		{"offset past end", withOffset(RDTLight, uint32(len(valid)+1)), ErrInvalidSectionOffset},
		{"duplicate offset", withOffset(RDTLight, 100), ErrDuplicateSectionOffset},
		{"truncated model table", buildTestRDT(nil, 3, testSection{RDTModel, fill(16, 0)}), ErrTruncatedModelTable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRDT(tc.data)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseRDT_SectionAtEndOfFile(t *testing.T) {
	data := buildTestRDT(nil, 0, testSection{RDTCollision, fill(16, 0)})
	binary.LittleEndian.PutUint32(data[8+4*int(RDTLight):], uint32(len(data)))

	rdt, err := ParseRDT(data)
	require.NoError(t, err)
	assert.True(t, rdt.Has(RDTLight))
	assert.Empty(t, rdt.Section(RDTLight))
}

func TestReplaceSection_Grow(t *testing.T) {
	rdt := parseModelTestLayout(t)

	require.NoError(t, rdt.ReplaceSection(RDTCollision, fill(24, 0xC2)))

	want := map[RDTSection]uint32{
		RDTCollision:    100,
		RDTModel:        124,
		RDTModelTexture: 140,
		RDTAnimation:    148,
	}
	for s, off := range want {
		assert.Equal(t, off, rdt.Offset(s), "%s", s)
	}

	entries, err := rdt.ModelTable()
	require.NoError(t, err)
	assert.Equal(t, []ModelEntry{{Texture: 140, Mesh: 144}, {Texture: 148, Mesh: 104}}, entries)

	assert.Equal(t, 152, rdt.Size())
	assert.Equal(t, fill(8, 0x7E), reparse(t, rdt).Section(RDTModelTexture))
}

func TestReplaceSection_PointersIntoMutatedSectionUnchanged(t *testing.T) {
	rdt := parseModelTestLayout(t)

	require.NoError(t, rdt.ReplaceSection(RDTModelTexture, fill(12, 0x7F)))

	entries, err := rdt.ModelTable()
	require.NoError(t, err)
	assert.Equal(t, []ModelEntry{{Texture: 132, Mesh: 136}, {Texture: 144, Mesh: 104}}, entries)
	assert.Equal(t, uint32(144), rdt.Offset(RDTAnimation))
	assert.Equal(t, uint32(100), rdt.Offset(RDTCollision))
}

func TestReplaceSection_Shrink(t *testing.T) {
	rdt := parseModelTestLayout(t)

	require.NoError(t, rdt.ReplaceSection(RDTCollision, fill(4, 0xC3)))
	assert.Equal(t, uint32(104), rdt.Offset(RDTModel))
	assert.Equal(t, uint32(128), rdt.Offset(RDTAnimation))

	entries, err := rdt.ModelTable()
	require.NoError(t, err)
	assert.Equal(t, []ModelEntry{{Texture: 120, Mesh: 124}, {Texture: 128, Mesh: 104}}, entries)

	_, err = rdt.Bytes()
	assert.NoError(t, err)
}

func TestReplaceSection_ModelGrow(t *testing.T) {
	rdt := parseModelTestLayout(t)

	grown := append(rdt.Section(RDTModel), fill(8, 0x3D)...)
	require.NoError(t, rdt.ReplaceSection(RDTModel, grown))

	assert.Equal(t, uint32(140), rdt.Offset(RDTModelTexture))
	assert.Equal(t, uint32(148), rdt.Offset(RDTAnimation))

	entries, err := rdt.ModelTable()
	require.NoError(t, err)
	assert.Equal(t, []ModelEntry{{Texture: 140, Mesh: 144}, {Texture: 148, Mesh: 104}}, entries)
	assert.Equal(t, fill(8, 0x3D), rdt.Section(RDTModel)[16:])

	again := reparse(t, rdt)
	againEntries, err := again.ModelTable()
	require.NoError(t, err)
	assert.Equal(t, entries, againEntries)
	assert.Equal(t, fill(8, 0x7E), again.Section(RDTModelTexture))
}

func TestReplaceModelSection_Empty(t *testing.T) {
	rdt := parseModelTestLayout(t)

	require.NoError(t, rdt.ReplaceModelSection(nil, nil))
	assert.False(t, rdt.Has(RDTModel))
	assert.Zero(t, rdt.Header().ModelCount)
	assert.Equal(t, uint32(116), rdt.Offset(RDTModelTexture))
}

func TestRemoveSection(t *testing.T) {
	rdt := parseModelTestLayout(t)
	size := rdt.Size()

	require.NoError(t, rdt.RemoveSection(RDTModelTexture))
	assert.False(t, rdt.Has(RDTModelTexture))
	assert.Zero(t, rdt.Offset(RDTModelTexture))
	assert.Equal(t, uint32(132), rdt.Offset(RDTAnimation))
	assert.Equal(t, size-8, rdt.Size())
	assert.NotContains(t, rdt.Order(), RDTModelTexture)

	// Removing again is a no-op
	assert.NoError(t, rdt.RemoveSection(RDTModelTexture))

	reparse(t, rdt)
}

func TestRemoveSection_Model(t *testing.T) {
	rdt := parseModelTestLayout(t)

	require.NoError(t, rdt.RemoveSection(RDTModel))
	assert.Zero(t, rdt.Header().ModelCount)
}

func TestReplaceSection_InsertAbsent(t *testing.T) {
	rdt := parseModelTestLayout(t)
	end := rdt.Size()

	require.NoError(t, rdt.ReplaceSection(RDTLight, fill(12, 0x11)))
	assert.Equal(t, uint32(end), rdt.Offset(RDTLight))

	order := rdt.Order()
	assert.Equal(t, RDTLight, order[len(order)-1])
	assert.Equal(t, uint32(140), rdt.Offset(RDTAnimation), "existing section moved")

	assert.Equal(t, fill(12, 0x11), reparse(t, rdt).Section(RDTLight))
}

func TestReplaceSection_InsertWithPreamble(t *testing.T) {
	rdt, err := ParseRDT(buildTestRDT(fill(6, 0xEE), 0))
	require.NoError(t, err)

	require.NoError(t, rdt.ReplaceSection(RDTFloor, fill(4, 0xF0)))
	assert.Equal(t, uint32(106), rdt.Offset(RDTFloor))

	_, err = rdt.Bytes()
	assert.NoError(t, err)
}

func TestReplaceSection_InsertBeforeEmptyTrailingSection(t *testing.T) {
	data := buildTestRDT(nil, 0, testSection{RDTCollision, fill(16, 0)})
	binary.LittleEndian.PutUint32(data[8+4*int(RDTLight):], uint32(len(data)))
	rdt, err := ParseRDT(data)
	require.NoError(t, err)

	require.NoError(t, rdt.ReplaceSection(RDTFloor, fill(4, 0xF0)))
	assert.Equal(t, uint32(116), rdt.Offset(RDTFloor))
	assert.Equal(t, uint32(120), rdt.Offset(RDTLight))

	reparse(t, rdt)
}

// Every model pointer addresses the start of one section; replacing any
// section in any order must keep each pointer on its section.
func TestReplaceSection_Sequence(t *testing.T) {
	targets := []RDTSection{RDTModelTexture, RDTAnimation, RDTCollision, RDTFloor}
	data := buildTestRDT(nil, 2,
		testSection{RDTCollision, fill(16, 0xC1)},
		testSection{RDTModel, modelTableBytes(
			ModelEntry{Texture: 132, Mesh: 140},
			ModelEntry{Texture: 100, Mesh: 148},
		)},
		testSection{RDTModelTexture, fill(8, 0x7E)},
		testSection{RDTAnimation, fill(8, 0xA0)},
		testSection{RDTFloor, fill(8, 0xF1)},
	)
	rdt, err := ParseRDT(data)
	require.NoError(t, err)

	mutable := []RDTSection{RDTCollision, RDTModel, RDTModelTexture, RDTAnimation, RDTFloor}
	rng := rand.New(rand.NewPCG(1, 2))

	for step := 0; step < 200; step++ {
		s := mutable[rng.IntN(len(mutable))]
		n := 1 + rng.IntN(40)

		var next []byte
		if s == RDTModel {
			next = append(rdt.Section(RDTModel)[:2*modelEntrySize], fill(n-1, byte(step))...)
		} else {
			next = fill(n, byte(step))
		}
		require.NoError(t, rdt.ReplaceSection(s, next), "step %d: %s", step, s)

		again := reparse(t, rdt)
		require.Equal(t, rdt.Order(), again.Order(), "step %d", step)
		for _, sec := range AllRDTSections() {
			require.Equal(t, rdt.Section(sec), again.Section(sec), "step %d: %s", step, sec)
			require.Equal(t, rdt.Offset(sec), again.Offset(sec), "step %d: %s", step, sec)
		}
		if s != RDTModel {
			require.Equal(t, next, again.Section(s), "step %d: %s", step, s)
		}

		entries, err := again.ModelTable()
		require.NoError(t, err)
		pointers := []uint32{entries[0].Texture, entries[0].Mesh, entries[1].Texture, entries[1].Mesh}
		for i, target := range targets {
			require.Equal(t, again.Offset(target), pointers[i], "step %d: pointer to %s", step, target)
		}
	}
}

func TestReplaceModelSection(t *testing.T) {
	rdt := parseModelTestLayout(t)

	entries := []ModelEntry{{Texture: 1, Mesh: 2}, {Texture: 3, Mesh: 4}, {Texture: 5, Mesh: 6}}
	require.NoError(t, rdt.ReplaceModelSection(entries, []byte{0xAB, 0xCD}))
	assert.Equal(t, uint8(3), rdt.Header().ModelCount)
	assert.Len(t, rdt.Section(RDTModel), 26)
	assert.Equal(t, uint32(142), rdt.Offset(RDTModelTexture))

	got, err := rdt.ModelTable()
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestReplaceModelSection_EntriesStoredAsGiven(t *testing.T) {
	rdt := parseModelTestLayout(t)

	// Final offsets of ModelTexture and Animation after the section grows by 8.
	entries := []ModelEntry{{Texture: 140, Mesh: 144}, {Texture: 148, Mesh: 104}}
	require.NoError(t, rdt.ReplaceModelSection(entries, fill(8, 0)))

	got, err := rdt.ModelTable()
	require.NoError(t, err)
	assert.Equal(t, entries, got)
	assert.Equal(t, uint32(140), rdt.Offset(RDTModelTexture))
}

func TestReplaceModelSection_TooMany(t *testing.T) {
	rdt := parseModelTestLayout(t)
	before, _ := rdt.Bytes()

	err := rdt.ReplaceModelSection(make([]ModelEntry, 256), nil)
	assert.ErrorIs(t, err, ErrTooManyModels)

	after, _ := rdt.Bytes()
	assert.Equal(t, before, after, "failed mutation changed the file")
}

func TestReplaceSection_ModelTooShort(t *testing.T) {
	rdt := parseModelTestLayout(t)
	before, _ := rdt.Bytes()

	err := rdt.ReplaceSection(RDTModel, fill(8, 0))
	assert.ErrorIs(t, err, ErrTruncatedModelTable)

	after, _ := rdt.Bytes()
	assert.Equal(t, before, after, "failed mutation changed the file")
}

func TestReplaceSection_InvalidSection(t *testing.T) {
	rdt := parseModelTestLayout(t)
	assert.ErrorIs(t, rdt.ReplaceSection(RDTSection(23), []byte{1}), ErrInvalidRDTSection)
}

func TestWriteTo_LayoutMismatch(t *testing.T) {
	rdt := parseModelTestLayout(t)
	rdt.header.Offsets[RDTAnimation]++

	_, err := rdt.WriteTo(new(bytes.Buffer))
	assert.ErrorIs(t, err, ErrLayoutMismatch)
}

func TestRDTFileRoundTrip(t *testing.T) {
	data := modelTestLayout()
	path := filepath.Join(t.TempDir(), "ROOM1000.RDT")
	require.NoError(t, os.WriteFile(path, data, 0644))

	rdt, err := ParseRDTFile(path)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.RDT")
	require.NoError(t, rdt.WriteFile(out))
	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, data, written)

	fromReader, err := ReadRDT(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, len(data), fromReader.Size())
}

func TestRDTSectionNames(t *testing.T) {
	assert.Equal(t, "ExecScript", RDTExecScript.String())
	assert.Equal(t, "Unknown(40)", RDTSection(40).String())

	s, err := ParseRDTSection("modeltexture")
	require.NoError(t, err)
	assert.Equal(t, RDTModelTexture, s)

	_, err = ParseRDTSection("bogus")
	assert.ErrorIs(t, err, ErrInvalidRDTSection)
	assert.Len(t, AllRDTSections(), RDTSectionCount)
}
