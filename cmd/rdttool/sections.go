package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/rdtkit/internal/logger"
	"github.com/Faultbox/rdtkit/pkg/formats"
)

type sectionView struct {
	Name   string `yaml:"name"`
	Offset uint32 `yaml:"offset"`
	Size   int    `yaml:"size"`
}

type headerView struct {
	Sprites     uint8 `yaml:"sprites"`
	Cuts        uint8 `yaml:"cuts"`
	Models      uint8 `yaml:"models"`
	Items       uint8 `yaml:"items"`
	Doors       uint8 `yaml:"doors"`
	RoomAt      uint8 `yaml:"room_at"`
	ReverbLevel uint8 `yaml:"reverb_level"`
	SpriteMax   uint8 `yaml:"sprite_max"`
}

type infoView struct {
	Path     string        `yaml:"path"`
	Size     int           `yaml:"size"`
	Preamble int           `yaml:"preamble,omitempty"`
	Header   headerView    `yaml:"header"`
	Sections []sectionView `yaml:"sections"`
}

func newHeaderView(h formats.RDTHeader) headerView {
	return headerView{
		Sprites:     h.SpriteCount,
		Cuts:        h.CutCount,
		Models:      h.ModelCount,
		Items:       h.ItemCount,
		Doors:       h.DoorCount,
		RoomAt:      h.RoomAtCount,
		ReverbLevel: h.ReverbLevel,
		SpriteMax:   h.SpriteMax,
	}
}

func sectionViews(rdt *formats.RDT) []sectionView {
	var views []sectionView
	for _, s := range rdt.Order() {
		views = append(views, sectionView{
			Name:   s.String(),
			Offset: rdt.Offset(s),
			Size:   len(rdt.Section(s)),
		})
	}
	return views
}

func cmdInfo(a *app, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: info needs a room", errUsage)
	}

	path, rdt, err := a.loadRoom(args[0])
	if err != nil {
		return err
	}

	view := infoView{
		Path:     path,
		Size:     rdt.Size(),
		Preamble: len(rdt.Preamble()),
		Header:   newHeaderView(rdt.Header()),
		Sections: sectionViews(rdt),
	}

	return a.emit(view, func() {
		h := view.Header
		a.printf("Room:     %s\n", view.Path)
		a.printf("Size:     %d bytes\n", view.Size)
		a.printf("Counts:   %d sprites, %d cuts, %d models, %d items, %d doors, %d room ATs\n",
			h.Sprites, h.Cuts, h.Models, h.Items, h.Doors, h.RoomAt)
		a.printf("Reverb:   %d\n", h.ReverbLevel)
		if view.Preamble > 0 {
			a.printf("Preamble: %d bytes\n", view.Preamble)
		}
		a.println()
		a.printf("  %-18s %10s %10s\n", "Section", "Offset", "Size")
		for _, s := range view.Sections {
			a.printf("  %-18s %#10x %10d\n", s.Name, s.Offset, s.Size)
		}
	})
}

func cmdExtract(a *app, args []string) error {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	all := fs.Bool("all", false, "Extract every present section into the output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *all {
		if fs.NArg() < 1 {
			return fmt.Errorf("%w: extract -all needs a room", errUsage)
		}
		outputDir := "."
		if fs.NArg() > 1 {
			outputDir = fs.Arg(1)
		}
		return a.extractAll(fs.Arg(0), outputDir)
	}

	if fs.NArg() < 2 {
		return fmt.Errorf("%w: extract needs a room and a section", errUsage)
	}

	path, rdt, err := a.loadRoom(fs.Arg(0))
	if err != nil {
		return err
	}
	s, err := formats.ParseRDTSection(fs.Arg(1))
	if err != nil {
		return err
	}
	if !rdt.Has(s) {
		return fmt.Errorf("%s has no %s section", filepath.Base(path), s)
	}

	outputPath := sectionFileName(path, s)
	if fs.NArg() > 2 {
		outputPath = fs.Arg(2)
	}

	data := rdt.Section(s)
	if err := writeFile(outputPath, data); err != nil {
		return err
	}
	a.printf("Extracted: %s (%d bytes)\n", outputPath, len(data))
	return nil
}

func (a *app) extractAll(room, outputDir string) error {
	path, rdt, err := a.loadRoom(room)
	if err != nil {
		return err
	}

	for _, s := range rdt.Order() {
		outputPath := filepath.Join(outputDir, sectionFileName(path, s))
		data := rdt.Section(s)
		if err := writeFile(outputPath, data); err != nil {
			return err
		}
		a.printf("Extracted: %s (%d bytes)\n", outputPath, len(data))
	}
	return nil
}

// sectionFileName returns e.g. ROOM10C0_Collision.bin.
func sectionFileName(roomPath string, s formats.RDTSection) string {
	base := strings.TrimSuffix(filepath.Base(roomPath), filepath.Ext(roomPath))
	return fmt.Sprintf("%s_%s.bin", base, s)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func cmdReplace(a *app, args []string) error {
	fs := flag.NewFlagSet("replace", flag.ContinueOnError)
	output := fs.String("o", "", "Write the result here instead of overwriting the room")
	remove := fs.Bool("remove", false, "Remove the section instead of replacing it")
	if err := fs.Parse(args); err != nil {
		return err
	}

	need := 3
	if *remove {
		need = 2
	}
	if fs.NArg() < need {
		return fmt.Errorf("%w: replace needs a room, a section and a file", errUsage)
	}

	path, rdt, err := a.loadRoom(fs.Arg(0))
	if err != nil {
		return err
	}
	s, err := formats.ParseRDTSection(fs.Arg(1))
	if err != nil {
		return err
	}

	log := logger.Room(filepath.Base(path))
	oldSize, oldOffset := len(rdt.Section(s)), rdt.Offset(s)

	if *remove {
		if err := rdt.RemoveSection(s); err != nil {
			return err
		}
		log.Debug("removed section", zap.Stringer("section", s), zap.Uint32("offset", oldOffset), zap.Int("size", oldSize))
	} else {
		data, err := os.ReadFile(fs.Arg(2))
		if err != nil {
			return fmt.Errorf("reading section data: %w", err)
		}
		if err := rdt.ReplaceSection(s, data); err != nil {
			return err
		}
		log.Debug("replaced section",
			zap.Stringer("section", s),
			zap.Uint32("offset", rdt.Offset(s)),
			zap.Int("old_size", oldSize),
			zap.Int("new_size", len(data)))
	}

	target := path
	if *output != "" {
		if err := rdt.WriteFile(*output); err != nil {
			return err
		}
		target = *output
	} else if err := a.saveRoom(rdt, path); err != nil {
		return err
	}

	a.printf("Wrote: %s (%d bytes)\n", target, rdt.Size())
	return nil
}
