package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/Faultbox/rdtkit/pkg/fixed"
)

// ErrTruncatedFloorData is returned when the floor section is shorter than its count.
var ErrTruncatedFloorData = errors.New("truncated floor data")

const floorSize = 12

// Floor is a rectangular floor-height region.
type Floor struct {
	X       fixed.Fixed16
	Z       fixed.Fixed16
	Width   fixed.UFixed16
	Height  fixed.UFixed16
	Unknown uint16
	Level   uint16
}

// Contains reports whether p lies inside the floor rectangle.
func (f *Floor) Contains(p fixed.Vec2) bool {
	minX, minZ := f.X.To32(), f.Z.To32()
	return p.X >= minX && p.X < minX+f.Width.To32() &&
		p.Z >= minZ && p.Z < minZ+f.Height.To32()
}

// FloorData is the floor section of a room.
type FloorData struct {
	Floors  []Floor
	Trailer uint16
}

// ParseFloors parses a floor section.
func ParseFloors(data []byte) (*FloorData, error) {
	r := bytes.NewReader(data)

	var count uint16
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: reading count", ErrTruncatedFloorData)
	}
	if int(count)*floorSize > r.Len() {
		return nil, fmt.Errorf("%w: %d floors need %d bytes, have %d",
			ErrTruncatedFloorData, count, int(count)*floorSize, r.Len())
	}

	fd := &FloorData{Floors: make([]Floor, count)}
	if err := binary.Read(r, binary.LittleEndian, fd.Floors); err != nil {
		return nil, fmt.Errorf("%w: reading floors", ErrTruncatedFloorData)
	}
	if err := binary.Read(r, binary.LittleEndian, &fd.Trailer); err != nil {
		return nil, fmt.Errorf("%w: reading trailer", ErrTruncatedFloorData)
	}

	return fd, nil
}

// MarshalBinary encodes the floor section.
func (fd *FloorData) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Grow(4 + len(fd.Floors)*floorSize)

	if len(fd.Floors) > 0xffff {
		return nil, fmt.Errorf("too many floors: %d", len(fd.Floors))
	}
	if err := binary.Write(buf, binary.LittleEndian, uint16(len(fd.Floors))); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, fd.Floors); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, fd.Trailer); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
