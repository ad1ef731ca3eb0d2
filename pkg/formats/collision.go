package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/Faultbox/rdtkit/pkg/fixed"
)

// Collision format errors.
var (
	ErrInvalidColliderCount   = errors.New("invalid collider count")
	ErrTruncatedCollisionData = errors.New("truncated collision data")
)

const (
	collisionHeaderSize = 16
	colliderSize        = 16
)

// Collider is one collision primitive of the room.
type Collider struct {
	X      fixed.Fixed16
	Z      fixed.Fixed16
	W      fixed.UFixed16
	H      fixed.UFixed16
	Packed uint32 // shape and mask bits
	Floor  uint32
}

// CollisionMask returns the collision mask bits of the packed field.
func (c *Collider) CollisionMask() uint16 {
	return uint16(c.Packed & 0xfff0)
}

// Bounds returns the minimum and maximum corner of the collider's rectangle.
func (c *Collider) Bounds() (min, max fixed.Vec2) {
	min = fixed.NewVec2(c.X, c.Z)
	max = min.AddPair(c.W.To32(), c.H.To32())
	return min, max
}

// Collision is the collision section of a room.
type Collision struct {
	CellX     fixed.Fixed16
	CellZ     fixed.Fixed16
	Ceiling   int32
	Dummy     uint32
	Colliders []Collider
}

// Center returns the room's cell origin.
func (c *Collision) Center() fixed.Vec2 {
	return fixed.NewVec2(c.CellX, c.CellZ)
}

type collisionHeader struct {
	CellX   fixed.Fixed16
	CellZ   fixed.Fixed16
	Count   uint32 // colliders + 1
	Ceiling int32
	Dummy   uint32
}

// ParseCollision parses a collision section.
func ParseCollision(data []byte) (*Collision, error) {
	if len(data) < collisionHeaderSize {
		return nil, fmt.Errorf("%w: header needs %d bytes, got %d", ErrTruncatedCollisionData, collisionHeaderSize, len(data))
	}

	r := bytes.NewReader(data)
	var h collisionHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: reading header", ErrTruncatedCollisionData)
	}

	// The stored count includes the header record
	if h.Count == 0 {
		return nil, ErrInvalidColliderCount
	}
	n := uint64(h.Count - 1)
	if n*colliderSize > uint64(r.Len()) {
		return nil, fmt.Errorf("%w: %d colliders need %d bytes, have %d",
			ErrTruncatedCollisionData, n, n*colliderSize, r.Len())
	}

	c := &Collision{
		CellX:     h.CellX,
		CellZ:     h.CellZ,
		Ceiling:   h.Ceiling,
		Dummy:     h.Dummy,
		Colliders: make([]Collider, n),
	}
	if err := binary.Read(r, binary.LittleEndian, c.Colliders); err != nil {
		return nil, fmt.Errorf("%w: reading colliders", ErrTruncatedCollisionData)
	}

	return c, nil
}

// MarshalBinary encodes the collision section.
func (c *Collision) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Grow(collisionHeaderSize + len(c.Colliders)*colliderSize)

	h := collisionHeader{
		CellX:   c.CellX,
		CellZ:   c.CellZ,
		Count:   uint32(len(c.Colliders) + 1),
		Ceiling: c.Ceiling,
		Dummy:   c.Dummy,
	}
	if err := binary.Write(buf, binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, c.Colliders); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
