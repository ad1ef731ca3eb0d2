package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/rdtkit/internal/logger"
	"github.com/Faultbox/rdtkit/pkg/formats"
)

type functionView struct {
	Index        int      `yaml:"index"`
	Offset       int      `yaml:"offset"`
	End          int      `yaml:"end"`
	Status       string   `yaml:"status"`
	Error        string   `yaml:"error,omitempty"`
	Instructions []string `yaml:"instructions"`
}

func newFunctionView(i int, fn formats.Function) functionView {
	v := functionView{
		Index:  i,
		Offset: fn.Offset,
		End:    fn.End,
		Status: fn.Status.String(),
	}
	if fn.Err != nil {
		v.Error = fn.Err.Error()
	}
	for _, in := range fn.Instructions {
		v.Instructions = append(v.Instructions, in.String())
	}
	return v
}

// warnTruncated logs every function that stopped on a decode error.
func warnTruncated(room string, funcs []formats.Function) {
	log := logger.Room(room)
	for i, fn := range funcs {
		if fn.Truncated() {
			log.Warn("truncated script function",
				zap.Int("function", i),
				zap.Int("offset", fn.Offset),
				zap.Int("decoded", len(fn.Instructions)),
				zap.Error(fn.Err))
		}
	}
}

func cmdScripts(a *app, args []string) error {
	fs := flag.NewFlagSet("scripts", flag.ContinueOnError)
	initScript := fs.Bool("init", false, "Disassemble the init script instead of the exec script")
	only := fs.Int("f", -1, "Only show this function index")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("%w: scripts needs a room", errUsage)
	}

	path, rdt, err := a.loadRoom(fs.Arg(0))
	if err != nil {
		return err
	}

	var funcs []formats.Function
	if *initScript {
		if rdt.Has(formats.RDTInitScript) {
			funcs = []formats.Function{formats.DecodeScript(rdt.Section(formats.RDTInitScript))}
		}
	} else {
		funcs, err = formats.SplitFunctions(rdt.Section(formats.RDTExecScript))
		if err != nil {
			return err
		}
	}
	warnTruncated(filepath.Base(path), funcs)

	var views []functionView
	for i, fn := range funcs {
		if *only >= 0 && i != *only {
			continue
		}
		views = append(views, newFunctionView(i, fn))
	}
	if *only >= 0 && len(views) == 0 {
		return fmt.Errorf("function %d not found (%d functions)", *only, len(funcs))
	}

	return a.emit(views, func() {
		for _, v := range views {
			a.printf("Function %d [%#x..%#x] %s\n", v.Index, v.Offset, v.End, v.Status)
			for _, in := range v.Instructions {
				a.printf("  %s\n", in)
			}
			if v.Error != "" {
				a.printf("  ! %s\n", v.Error)
			}
			a.println()
		}
	})
}

type colliderView struct {
	X      int16  `yaml:"x"`
	Z      int16  `yaml:"z"`
	W      uint16 `yaml:"w"`
	H      uint16 `yaml:"h"`
	Mask   uint16 `yaml:"mask"`
	Packed uint32 `yaml:"packed"`
	Floor  uint32 `yaml:"floor"`
}

type collisionView struct {
	CellX     int16          `yaml:"cell_x"`
	CellZ     int16          `yaml:"cell_z"`
	Ceiling   int32          `yaml:"ceiling"`
	Colliders []colliderView `yaml:"colliders"`
}

func cmdCollision(a *app, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: collision needs a room", errUsage)
	}

	path, rdt, err := a.loadRoom(args[0])
	if err != nil {
		return err
	}
	if !rdt.Has(formats.RDTCollision) {
		return fmt.Errorf("%s has no collision section", filepath.Base(path))
	}
	c, err := formats.ParseCollision(rdt.Section(formats.RDTCollision))
	if err != nil {
		return err
	}

	view := collisionView{CellX: int16(c.CellX), CellZ: int16(c.CellZ), Ceiling: c.Ceiling}
	for i := range c.Colliders {
		col := &c.Colliders[i]
		view.Colliders = append(view.Colliders, colliderView{
			X: int16(col.X), Z: int16(col.Z),
			W: uint16(col.W), H: uint16(col.H),
			Mask:   col.CollisionMask(),
			Packed: col.Packed,
			Floor:  col.Floor,
		})
	}

	return a.emit(view, func() {
		a.printf("Cell:    (%d, %d)\n", view.CellX, view.CellZ)
		a.printf("Ceiling: %d\n", view.Ceiling)
		a.printf("Colliders: %d\n", len(view.Colliders))
		for i, col := range view.Colliders {
			a.printf("  %3d: x=%6d z=%6d w=%5d h=%5d mask=%#06x packed=%#010x floor=%#x\n",
				i, col.X, col.Z, col.W, col.H, col.Mask, col.Packed, col.Floor)
		}
	})
}

type floorView struct {
	X      int16  `yaml:"x"`
	Z      int16  `yaml:"z"`
	Width  uint16 `yaml:"width"`
	Height uint16 `yaml:"height"`
	Level  uint16 `yaml:"level"`
}

func cmdFloors(a *app, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: floors needs a room", errUsage)
	}

	path, rdt, err := a.loadRoom(args[0])
	if err != nil {
		return err
	}
	if !rdt.Has(formats.RDTFloor) {
		return fmt.Errorf("%s has no floor section", filepath.Base(path))
	}
	fd, err := formats.ParseFloors(rdt.Section(formats.RDTFloor))
	if err != nil {
		return err
	}

	var views []floorView
	for _, f := range fd.Floors {
		views = append(views, floorView{
			X: int16(f.X), Z: int16(f.Z),
			Width: uint16(f.Width), Height: uint16(f.Height),
			Level: f.Level,
		})
	}

	return a.emit(views, func() {
		a.printf("Floors: %d\n", len(views))
		for i, f := range views {
			a.printf("  %3d: x=%6d z=%6d w=%5d h=%5d level=%d\n", i, f.X, f.Z, f.Width, f.Height, f.Level)
		}
	})
}

type frameView struct {
	Index int      `yaml:"index"`
	Flags string   `yaml:"flags"`
	Speed [3]int32 `yaml:"speed,flow"`
}

type animationSetView struct {
	CharacterMask string        `yaml:"character_mask"`
	Animations    [][]frameView `yaml:"animations"`
}

func newAnimationSetView(set formats.AnimationSet) animationSetView {
	v := animationSetView{CharacterMask: fmt.Sprintf("%#x", set.CharacterMask)}
	for _, anim := range set.Animations {
		frames := make([]frameView, 0, len(anim))
		for _, f := range anim {
			frames = append(frames, frameView{
				Index: f.Index(),
				Flags: fmt.Sprintf("%#x", f.Flags()),
				Speed: [3]int32{int32(f.Speed.X), int32(f.Speed.Y), int32(f.Speed.Z)},
			})
		}
		v.Animations = append(v.Animations, frames)
	}
	return v
}

func cmdAnimations(a *app, args []string) error {
	fs := flag.NewFlagSet("animations", flag.ContinueOnError)
	plw := fs.Bool("plw", false, "Read a weapon-model (PLW) animation file instead of a room")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("%w: animations needs a room or file", errUsage)
	}

	var sets []formats.AnimationSet
	if *plw {
		data, err := os.ReadFile(fs.Arg(0))
		if err != nil {
			return fmt.Errorf("reading PLW file: %w", err)
		}
		set, err := formats.ParsePLWAnimations(data)
		if err != nil {
			return err
		}
		sets = append(sets, *set)
	} else {
		path, rdt, err := a.loadRoom(fs.Arg(0))
		if err != nil {
			return err
		}
		if !rdt.Has(formats.RDTAnimation) {
			return fmt.Errorf("%s has no animation section", filepath.Base(path))
		}
		sets, err = formats.ParseRoomAnimations(rdt.Section(formats.RDTAnimation))
		if err != nil {
			return err
		}
	}

	views := make([]animationSetView, 0, len(sets))
	for _, s := range sets {
		views = append(views, newAnimationSetView(s))
	}

	return a.emit(views, func() {
		for i, s := range views {
			a.printf("Set %d (characters %s): %d animations\n", i, s.CharacterMask, len(s.Animations))
			for j, anim := range s.Animations {
				a.printf("  Animation %d: %d frames\n", j, len(anim))
				for k, f := range anim {
					a.printf("    %3d: motion=%-4d flags=%-10s speed=(%d, %d, %d)\n",
						k, f.Index, f.Flags, f.Speed[0], f.Speed[1], f.Speed[2])
				}
			}
		}
	})
}

type roomView struct {
	Path          string             `yaml:"path"`
	Header        headerView         `yaml:"header"`
	Sections      []sectionView      `yaml:"sections"`
	Center        [2]int32           `yaml:"center,flow"`
	Colliders     int                `yaml:"colliders"`
	Floors        []floorView        `yaml:"floors"`
	InitScript    functionView       `yaml:"init_script"`
	ExecScript    []functionView     `yaml:"exec_script"`
	Truncated     []int              `yaml:"truncated_functions,flow,omitempty"`
	AnimationSets []animationSetView `yaml:"animation_sets"`
}

func cmdDump(a *app, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: dump needs a room", errUsage)
	}

	path, rdt, err := a.loadRoom(args[0])
	if err != nil {
		return err
	}
	room, err := formats.DecodeRoom(rdt)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	warnTruncated(filepath.Base(path), room.ExecScript)

	center := room.Center()
	view := roomView{
		Path:       path,
		Header:     newHeaderView(room.Header),
		Sections:   sectionViews(rdt),
		Center:     [2]int32{int32(center.X), int32(center.Z)},
		Colliders:  len(room.Collision.Colliders),
		InitScript: newFunctionView(0, room.InitScript),
		Truncated:  room.TruncatedFunctions(),
	}
	for _, f := range room.Floors {
		view.Floors = append(view.Floors, floorView{
			X: int16(f.X), Z: int16(f.Z),
			Width: uint16(f.Width), Height: uint16(f.Height),
			Level: f.Level,
		})
	}
	for i, fn := range room.ExecScript {
		view.ExecScript = append(view.ExecScript, newFunctionView(i, fn))
	}
	for _, s := range room.Animations {
		view.AnimationSets = append(view.AnimationSets, newAnimationSetView(s))
	}

	return a.emit(view, func() {
		a.printf("Room:       %s\n", view.Path)
		a.printf("Sections:   %d\n", len(view.Sections))
		a.printf("Center:     (%d, %d)\n", view.Center[0], view.Center[1])
		a.printf("Colliders:  %d\n", view.Colliders)
		a.printf("Floors:     %d\n", len(view.Floors))
		a.printf("Init:       %d instructions (%s)\n", len(view.InitScript.Instructions), view.InitScript.Status)
		a.printf("Functions:  %d\n", len(view.ExecScript))
		if len(view.Truncated) > 0 {
			a.printf("Truncated:  %v\n", view.Truncated)
		}
		frames := 0
		for _, s := range view.AnimationSets {
			for _, anim := range s.Animations {
				frames += len(anim)
			}
		}
		a.printf("Animations: %d sets, %d frames\n", len(view.AnimationSets), frames)
	})
}
