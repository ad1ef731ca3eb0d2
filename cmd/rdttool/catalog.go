package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/rdtkit/internal/logger"
	"github.com/Faultbox/rdtkit/pkg/formats"
	"github.com/Faultbox/rdtkit/pkg/rooms"
)

type roomEntryView struct {
	Name   string `yaml:"name"`
	Path   string `yaml:"path"`
	Stage  uint8  `yaml:"stage"`
	Room   uint8  `yaml:"room"`
	Player uint8  `yaml:"player"`
	Size   int64  `yaml:"size"`
}

func cmdList(a *app, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	stage := fs.Int("stage", 0, "Only list rooms of this stage (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pattern := ""
	if fs.NArg() > 0 {
		pattern = strings.ToUpper(fs.Arg(0))
	}

	catalogs := a.catalogs()
	if len(catalogs) == 0 {
		return fmt.Errorf("no room directories found in %v", a.cfg.Data.RoomDirs)
	}

	var views []roomEntryView
	for _, c := range catalogs {
		for _, name := range c.List() {
			e, _ := c.Entry(name)
			if *stage > 0 && int(e.ID.Stage) != *stage {
				continue
			}
			if pattern != "" {
				matched, _ := filepath.Match(pattern, name)
				if !matched && !strings.Contains(name, pattern) {
					continue
				}
			}
			views = append(views, roomEntryView{
				Name:   e.Name,
				Path:   e.Path,
				Stage:  e.ID.Stage,
				Room:   e.ID.Room,
				Player: e.ID.Player,
				Size:   e.Size,
			})
		}
	}

	return a.emit(views, func() {
		for _, v := range views {
			a.printf("%-14s %8d  %s\n", v.Name, v.Size, v.Path)
		}
		a.printf("\n(%d rooms)\n", len(views))
	})
}

type verifyResult struct {
	Room      string `yaml:"room"`
	Status    string `yaml:"status"`
	Truncated []int  `yaml:"truncated_functions,flow,omitempty"`
	Error     string `yaml:"error,omitempty"`
}

// Verify statuses.
const (
	verifyOK       = "ok"
	verifyMismatch = "mismatch"
	verifyError    = "error"
)

var errVerifyFailed = errors.New("verification failed")

// verifyRoom checks that a room parses, re-serializes byte for byte and decodes.
func verifyRoom(name string, data []byte) verifyResult {
	res := verifyResult{Room: name, Status: verifyOK}

	rdt, err := formats.ParseRDT(data)
	if err != nil {
		res.Status, res.Error = verifyError, err.Error()
		return res
	}

	out, err := rdt.Bytes()
	if err != nil {
		res.Status, res.Error = verifyError, err.Error()
		return res
	}
	if !bytes.Equal(out, data) {
		res.Status = verifyMismatch
		res.Error = fmt.Sprintf("re-serialized %d bytes, original %d", len(out), len(data))
		return res
	}

	room, err := formats.DecodeRoom(rdt)
	if err != nil {
		res.Status, res.Error = verifyError, err.Error()
		return res
	}
	res.Truncated = room.TruncatedFunctions()
	if len(res.Truncated) > 0 {
		warnTruncated(name, room.ExecScript)
	}
	return res
}

func cmdVerify(a *app, args []string) error {
	var results []verifyResult

	if len(args) > 0 {
		for _, arg := range args {
			path, err := a.findRoom(arg)
			if err != nil {
				results = append(results, verifyResult{Room: arg, Status: verifyError, Error: err.Error()})
				continue
			}
			data, err := readRoomFile(path)
			if err != nil {
				results = append(results, verifyResult{Room: arg, Status: verifyError, Error: err.Error()})
				continue
			}
			results = append(results, verifyRoom(filepath.Base(path), data))
		}
	} else {
		catalogs := a.catalogs()
		if len(catalogs) == 0 {
			return fmt.Errorf("no room directories found in %v", a.cfg.Data.RoomDirs)
		}
		for _, c := range catalogs {
			results = append(results, verifyCatalog(c)...)
		}
	}

	failed := 0
	for _, r := range results {
		if r.Status != verifyOK {
			failed++
			logger.Room(r.Room).Error("room failed verification", zap.String("status", r.Status), zap.String("error", r.Error))
		}
	}

	err := a.emit(results, func() {
		for _, r := range results {
			line := fmt.Sprintf("%-14s %s", r.Room, strings.ToUpper(r.Status))
			if r.Error != "" {
				line += ": " + r.Error
			}
			if len(r.Truncated) > 0 {
				line += fmt.Sprintf(" (truncated functions %v)", r.Truncated)
			}
			a.println(line)
		}
		a.printf("\n%d rooms, %d failed\n", len(results), failed)
	})
	if err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d rooms", errVerifyFailed, failed, len(results))
	}
	return nil
}

func verifyCatalog(c *rooms.Catalog) []verifyResult {
	var results []verifyResult
	for _, name := range c.List() {
		data, err := c.Read(name)
		if err != nil {
			results = append(results, verifyResult{Room: name, Status: verifyError, Error: err.Error()})
			continue
		}
		results = append(results, verifyRoom(name, data))
	}
	return results
}
