package formats

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/rdtkit/pkg/fixed"
)

func createTestFloors(floors []Floor, trailer uint16) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, uint16(len(floors)))
	binary.Write(buf, binary.LittleEndian, floors)
	binary.Write(buf, binary.LittleEndian, trailer)
	return buf.Bytes()
}

func TestParseFloors(t *testing.T) {
	floors := []Floor{
		{X: -1000, Z: -1000, Width: 2000, Height: 2000, Unknown: 9, Level: 0},
		{X: 1000, Z: 0, Width: 500, Height: 800, Unknown: 0, Level: 2},
	}
	data := createTestFloors(floors, 0x1234)

	fd, err := ParseFloors(data)
	require.NoError(t, err)
	assert.Equal(t, floors, fd.Floors)
	assert.Equal(t, uint16(0x1234), fd.Trailer)

	out, err := fd.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestFloorContains(t *testing.T) {
	f := Floor{X: -1000, Z: 0, Width: 2000, Height: 500}

	tests := []struct {
		p    fixed.Vec2
		want bool
	}{
		{fixed.Vec2{X: 0, Z: 100}, true},
		{fixed.Vec2{X: -1000, Z: 0}, true},
		{fixed.Vec2{X: 1000, Z: 100}, false},
		{fixed.Vec2{X: 0, Z: -1}, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, f.Contains(tc.p), "Contains(%+v)", tc.p)
	}
}

func TestParseFloors_Truncated(t *testing.T) {
	data := createTestFloors([]Floor{{}, {}}, 0)

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"missing records", data[:10]},
		{"missing trailer", data[:len(data)-1]},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseFloors(tc.data)
			assert.ErrorIs(t, err, ErrTruncatedFloorData)
		})
	}
}
