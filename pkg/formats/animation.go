package formats

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/Faultbox/rdtkit/pkg/fixed"
)

// Animation format errors.
var (
	ErrTruncatedAnimationData = errors.New("truncated animation data")
	ErrNotEnoughSections      = errors.New("not enough sections to read animation data")
)

// minMotionSize is two SSVECTORs: an unknown vector and the speed.
const minMotionSize = 12

// AllCharacters is the character mask of weapon-model animation sets.
const AllCharacters = 0xffffffff

// FrameFlags packs a motion-record index (low 12 bits) with per-frame flags.
type FrameFlags uint32

// Index returns the motion-record index.
func (f FrameFlags) Index() int { return int(f & 0xfff) }

// Flags returns the flag bits.
func (f FrameFlags) Flags() uint32 { return uint32(f) & 0xfffff000 }

// AnimationFrame is one step of an animation.
type AnimationFrame struct {
	FrameFlags FrameFlags
	Speed      fixed.Vec3
}

// Index returns the motion-record index of the frame.
func (f AnimationFrame) Index() int { return f.FrameFlags.Index() }

// Flags returns the flag bits of the frame.
func (f AnimationFrame) Flags() uint32 { return f.FrameFlags.Flags() }

// AnimationSet is a group of animations that share motion data.
type AnimationSet struct {
	Animations    [][]AnimationFrame
	CharacterMask uint32 // bit per character that may use the set
}

// UsableBy reports whether the character with the given index may use the set.
func (s *AnimationSet) UsableBy(character uint) bool {
	return character < 32 && s.CharacterMask&(1<<character) != 0
}

// animReader reads little-endian values at absolute positions with bounds checks.
type animReader []byte

func (r animReader) u16(pos int) (uint16, error) {
	if pos < 0 || pos+2 > len(r) {
		return 0, fmt.Errorf("%w: u16 at %d", ErrTruncatedAnimationData, pos)
	}
	return binary.LittleEndian.Uint16(r[pos:]), nil
}

func (r animReader) u32(pos int) (uint32, error) {
	if pos < 0 || pos+4 > len(r) {
		return 0, fmt.Errorf("%w: u32 at %d", ErrTruncatedAnimationData, pos)
	}
	return binary.LittleEndian.Uint32(r[pos:]), nil
}

func (r animReader) ssvector(pos int) (fixed.SSVector, error) {
	if pos < 0 || pos+6 > len(r) {
		return fixed.SSVector{}, fmt.Errorf("%w: vector at %d", ErrTruncatedAnimationData, pos)
	}
	return fixed.SSVector{
		X: fixed.Fixed16(binary.LittleEndian.Uint16(r[pos:])),
		Y: fixed.Fixed16(binary.LittleEndian.Uint16(r[pos+2:])),
		Z: fixed.Fixed16(binary.LittleEndian.Uint16(r[pos+4:])),
	}, nil
}

// readSteps reads the per-animation frame flag lists and the number of motion records they reference.
func (r animReader) readSteps(start int) ([][]FrameFlags, int, error) {
	dataOffset, err := r.u16(start + 2)
	if err != nil {
		return nil, 0, fmt.Errorf("reading step directory: %w", err)
	}
	num := max(int(dataOffset)/4, 1)

	steps := make([][]FrameFlags, 0, num)
	total := 0
	for i := 0; i < num; i++ {
		entry := start + i*4
		count, err := r.u16(entry)
		if err != nil {
			return nil, 0, fmt.Errorf("reading step entry %d: %w", i, err)
		}
		off, err := r.u16(entry + 2)
		if err != nil {
			return nil, 0, fmt.Errorf("reading step entry %d: %w", i, err)
		}

		flags := make([]FrameFlags, count)
		highest := 0
		for j := range flags {
			v, err := r.u32(start + int(off) + j*4)
			if err != nil {
				return nil, 0, fmt.Errorf("reading animation %d frame %d: %w", i, j, err)
			}
			flags[j] = FrameFlags(v)
			highest = max(highest, flags[j].Index())
		}
		total = max(total, highest+1)
		steps = append(steps, flags)
	}

	return steps, total, nil
}

// readFrames reads the speed of each motion record. An absent or undersized
// motion block yields no records.
func (r animReader) readFrames(start, total int) ([]fixed.Vec3, error) {
	motionOffset, err := r.u16(start + 2)
	if err != nil {
		return nil, fmt.Errorf("reading frames header: %w", err)
	}
	elementSize, err := r.u16(start + 6)
	if err != nil {
		return nil, fmt.Errorf("reading frames header: %w", err)
	}
	if motionOffset == 0 || int(elementSize) < minMotionSize {
		return nil, nil
	}

	speeds := make([]fixed.Vec3, total)
	base := start + int(motionOffset)
	for i := range speeds {
		rec := base + i*int(elementSize)
		if rec+int(elementSize) > len(r) {
			return nil, fmt.Errorf("%w: motion record %d", ErrTruncatedAnimationData, i)
		}
		speed, err := r.ssvector(rec + 6)
		if err != nil {
			return nil, err
		}
		speeds[i] = speed.Vec3()
	}
	return speeds, nil
}

func combineAnimations(steps [][]FrameFlags, speeds []fixed.Vec3) [][]AnimationFrame {
	if len(speeds) == 0 {
		return nil
	}

	anims := make([][]AnimationFrame, 0, len(steps))
	for _, flags := range steps {
		frames := make([]AnimationFrame, 0, len(flags))
		for _, f := range flags {
			frames = append(frames, AnimationFrame{FrameFlags: f, Speed: speeds[f.Index()]})
		}
		anims = append(anims, frames)
	}
	return anims
}

// ParsePLWAnimations parses the animation set of a weapon-model container.
// The container directory must list the step section first and the frame section second.
func ParsePLWAnimations(data []byte) (*AnimationSet, error) {
	r := animReader(data)
	dirOffset, err := r.u32(0)
	if err != nil {
		return nil, err
	}
	n, err := r.u32(4)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: directory has %d entries", ErrNotEnoughSections, n)
	}

	stepsOffset, err := r.u32(int(dirOffset))
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}
	framesOffset, err := r.u32(int(dirOffset) + 4)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	steps, total, err := r.readSteps(int(stepsOffset))
	if err != nil {
		return nil, err
	}
	speeds, err := r.readFrames(int(framesOffset), total)
	if err != nil {
		return nil, err
	}

	return &AnimationSet{
		Animations:    combineAnimations(steps, speeds),
		CharacterMask: AllCharacters,
	}, nil
}

// ParseRoomAnimations parses the animation section of a room file.
// Offsets inside the section are relative to its start.
func ParseRoomAnimations(data []byte) ([]AnimationSet, error) {
	r := animReader(data)
	dirOffset, err := r.u32(0)
	if err != nil {
		return nil, err
	}
	n, err := r.u32(4)
	if err != nil {
		return nil, err
	}
	if uint64(n)*8 > uint64(len(data)) {
		return nil, fmt.Errorf("%w: %d directory entries", ErrTruncatedAnimationData, n)
	}

	sets := make([]AnimationSet, 0, n)
	for i := 0; i < int(n); i++ {
		entry := int(dirOffset) + i*8
		framesOffset, err := r.u32(entry)
		if err != nil {
			return nil, fmt.Errorf("reading set %d: %w", i, err)
		}
		stepsOffset, err := r.u32(entry + 4)
		if err != nil {
			return nil, fmt.Errorf("reading set %d: %w", i, err)
		}

		steps, total, err := r.readSteps(int(stepsOffset))
		if err != nil {
			return nil, fmt.Errorf("set %d: %w", i, err)
		}
		mask, err := r.u32(int(framesOffset))
		if err != nil {
			return nil, fmt.Errorf("set %d character mask: %w", i, err)
		}
		speeds, err := r.readFrames(int(framesOffset)+4, total)
		if err != nil {
			return nil, fmt.Errorf("set %d: %w", i, err)
		}

		sets = append(sets, AnimationSet{
			Animations:    combineAnimations(steps, speeds),
			CharacterMask: mask,
		})
	}

	return sets, nil
}
