package formats

import (
	"fmt"
	"os"

	"github.com/Faultbox/rdtkit/pkg/fixed"
)

// Room is the decoded gameplay view of a room file: collision, floors, scripts and animations.
// Other sections are left to the RDT container.
type Room struct {
	Header     RDTHeader
	Collision  Collision // zero value when the section is absent
	Floors     []Floor
	InitScript Function
	ExecScript []Function
	Animations []AnimationSet
}

// DecodeRoom decodes the gameplay sections of a parsed room file.
func DecodeRoom(rdt *RDT) (*Room, error) {
	room := &Room{Header: rdt.Header()}

	if rdt.Has(RDTCollision) {
		c, err := ParseCollision(rdt.Section(RDTCollision))
		if err != nil {
			return nil, fmt.Errorf("decoding collision: %w", err)
		}
		room.Collision = *c
	}

	if rdt.Has(RDTFloor) {
		fd, err := ParseFloors(rdt.Section(RDTFloor))
		if err != nil {
			return nil, fmt.Errorf("decoding floors: %w", err)
		}
		room.Floors = fd.Floors
	}

	if rdt.Has(RDTInitScript) {
		room.InitScript = DecodeScript(rdt.Section(RDTInitScript))
	}

	if rdt.Has(RDTExecScript) {
		funcs, err := SplitFunctions(rdt.Section(RDTExecScript))
		if err != nil {
			return nil, fmt.Errorf("decoding exec script: %w", err)
		}
		room.ExecScript = funcs
	}

	if rdt.Has(RDTAnimation) {
		sets, err := ParseRoomAnimations(rdt.Section(RDTAnimation))
		if err != nil {
			return nil, fmt.Errorf("decoding animations: %w", err)
		}
		room.Animations = sets
	}

	return room, nil
}

// ParseRoom parses and decodes a room file from raw bytes.
func ParseRoom(data []byte) (*Room, error) {
	rdt, err := ParseRDT(data)
	if err != nil {
		return nil, err
	}
	return DecodeRoom(rdt)
}

// ParseRoomFile parses and decodes a room file from disk.
func ParseRoomFile(path string) (*Room, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading RDT file: %w", err)
	}
	return ParseRoom(data)
}

// Center returns the room's collision cell origin.
func (r *Room) Center() fixed.Vec2 {
	return r.Collision.Center()
}

// TruncatedFunctions returns the indices of exec-script functions that stopped on a decode error.
func (r *Room) TruncatedFunctions() []int {
	var idx []int
	for i := range r.ExecScript {
		if r.ExecScript[i].Truncated() {
			idx = append(idx, i)
		}
	}
	return idx
}

// FloorAt returns the first floor region containing p, or nil.
func (r *Room) FloorAt(p fixed.Vec2) *Floor {
	for i := range r.Floors {
		if r.Floors[i].Contains(p) {
			return &r.Floors[i]
		}
	}
	return nil
}
