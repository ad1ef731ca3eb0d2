package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/rdtkit/internal/logger"
	"github.com/Faultbox/rdtkit/pkg/formats"
	"github.com/Faultbox/rdtkit/pkg/rooms"
)

// catalogs opens every configured room directory that exists.
func (a *app) catalogs() []*rooms.Catalog {
	var result []*rooms.Catalog
	for _, dir := range a.cfg.Data.RoomDirs {
		c, err := rooms.Open(dir)
		if err != nil {
			logger.Debug("skipping room directory", zap.String("dir", dir), zap.Error(err))
			continue
		}
		logger.Debug("opened room directory", zap.String("dir", dir), zap.Int("rooms", c.Len()))
		result = append(result, c)
	}
	return result
}

// roomID turns "ROOM10C0.RDT", "10C0" or "10C" into a room ID.
// Three-character IDs use the configured player.
func (a *app) roomID(arg string) (rooms.ID, error) {
	s := strings.ToUpper(filepath.Base(arg))
	s = strings.TrimSuffix(strings.TrimPrefix(s, "ROOM"), ".RDT")
	if len(s) == 3 {
		s += fmt.Sprint(a.cfg.Data.Player)
	}
	return rooms.ParseRoomID(s)
}

// findRoom resolves a room argument to a file path. Existing paths win over catalog lookups.
func (a *app) findRoom(arg string) (string, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return arg, nil
	}

	id, err := a.roomID(arg)
	if err != nil {
		return "", fmt.Errorf("%s is neither a file nor a room: %w", arg, err)
	}

	for _, c := range a.catalogs() {
		if e, err := c.Lookup(id.Stage, id.Room, id.Player); err == nil {
			return e.Path, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %v", rooms.ErrRoomNotFound, id.FileName(), a.cfg.Data.RoomDirs)
}

// loadRoom resolves and parses a room file.
func (a *app) loadRoom(arg string) (string, *formats.RDT, error) {
	path, err := a.findRoom(arg)
	if err != nil {
		return "", nil, err
	}
	rdt, err := formats.ParseRDTFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("loaded room", zap.String("path", path), zap.Int("size", rdt.Size()), zap.Int("sections", len(rdt.Order())))
	return path, rdt, nil
}

// saveRoom writes a room back, keeping a .bak copy of the previous file when configured.
func (a *app) saveRoom(rdt *formats.RDT, path string) error {
	if a.cfg.Output.Backup {
		if old, err := os.ReadFile(path); err == nil {
			if err := os.WriteFile(path+".bak", old, 0644); err != nil {
				return fmt.Errorf("writing backup: %w", err)
			}
			logger.Debug("wrote backup", zap.String("path", path+".bak"))
		}
	}
	return rdt.WriteFile(path)
}

func readRoomFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading room: %w", err)
	}
	return data, nil
}
