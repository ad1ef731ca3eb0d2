// Package rooms provides a catalog over a directory of room files.
package rooms

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/Faultbox/rdtkit/pkg/formats"
)

// ErrInvalidRoomID is returned for room identifiers that don't follow the srrp pattern.
var ErrInvalidRoomID = errors.New("invalid room id")

// ErrRoomNotFound is returned when a room is not present in the catalog.
var ErrRoomNotFound = errors.New("room not found")

const (
	roomPrefix = "ROOM"
	roomExt    = ".RDT"
)

// ID identifies a room by stage, room number and player.
type ID struct {
	Stage  uint8 // 1-based stage, one hex digit
	Room   uint8
	Player uint8 // 0 Leon, 1 Claire
}

// ParseRoomID parses the four-character srrp part of a room file name, e.g. "10C0".
func ParseRoomID(s string) (ID, error) {
	if len(s) != 4 {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidRoomID, s)
	}
	stage, err := strconv.ParseUint(s[:1], 16, 8)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidRoomID, s)
	}
	room, err := strconv.ParseUint(s[1:3], 16, 8)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidRoomID, s)
	}
	player, err := strconv.ParseUint(s[3:], 10, 8)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidRoomID, s)
	}
	return ID{Stage: uint8(stage), Room: uint8(room), Player: uint8(player)}, nil
}

// String returns the srrp form of the ID.
func (id ID) String() string {
	return fmt.Sprintf("%X%02X%d", id.Stage, id.Room, id.Player)
}

// FileName returns the canonical file name for the ID.
func (id ID) FileName() string {
	return roomPrefix + id.String() + roomExt
}

// Entry is a room file in the catalog.
type Entry struct {
	Name string // normalized file name
	Path string
	ID   ID
	Size int64
}

// Catalog indexes the room files of a directory.
type Catalog struct {
	dir   string
	files map[string]*Entry
}

// Open scans dir for room files.
// Files that aren't named ROOMsrrp.RDT are ignored.
func Open(dir string) (*Catalog, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	c := &Catalog{
		dir:   dir,
		files: make(map[string]*Entry),
	}

	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := normalizeName(de.Name())
		id, ok := idFromName(name)
		if !ok {
			continue
		}
		info, err := de.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", de.Name(), err)
		}
		c.files[name] = &Entry{
			Name: name,
			Path: filepath.Join(dir, de.Name()),
			ID:   id,
			Size: info.Size(),
		}
	}

	return c, nil
}

// Dir returns the scanned directory.
func (c *Catalog) Dir() string {
	return c.dir
}

// Len returns the number of rooms in the catalog.
func (c *Catalog) Len() int {
	return len(c.files)
}

// List returns all room file names, sorted.
func (c *Catalog) List() []string {
	result := make([]string, 0, len(c.files))
	for name := range c.files {
		result = append(result, name)
	}
	slices.Sort(result)
	return result
}

// Contains checks if a room file exists.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.files[normalizeName(name)]
	return ok
}

// Entry returns the catalog entry for a file name.
func (c *Catalog) Entry(name string) (*Entry, bool) {
	e, ok := c.files[normalizeName(name)]
	return e, ok
}

// Read reads a room file's raw bytes.
func (c *Catalog) Read(name string) ([]byte, error) {
	entry, ok := c.files[normalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, name)
	}
	data, err := os.ReadFile(entry.Path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", entry.Name, err)
	}
	return data, nil
}

// Lookup returns the entry for a stage, room and player.
func (c *Catalog) Lookup(stage, room, player uint8) (*Entry, error) {
	id := ID{Stage: stage, Room: room, Player: player}
	entry, ok := c.files[id.FileName()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, id)
	}
	return entry, nil
}

// Load reads and parses a room file into its section container.
func (c *Catalog) Load(name string) (*formats.RDT, error) {
	data, err := c.Read(name)
	if err != nil {
		return nil, err
	}
	rdt, err := formats.ParseRDT(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return rdt, nil
}

// Stage returns the entries of one stage for a player, ordered by room number.
func (c *Catalog) Stage(stage, player uint8) []*Entry {
	var result []*Entry
	for _, e := range c.files {
		if e.ID.Stage == stage && e.ID.Player == player {
			result = append(result, e)
		}
	}
	slices.SortFunc(result, func(a, b *Entry) int {
		return int(a.ID.Room) - int(b.ID.Room)
	})
	return result
}

func idFromName(name string) (ID, bool) {
	if !strings.HasPrefix(name, roomPrefix) || !strings.HasSuffix(name, roomExt) {
		return ID{}, false
	}
	id, err := ParseRoomID(strings.TrimSuffix(strings.TrimPrefix(name, roomPrefix), roomExt))
	if err != nil {
		return ID{}, false
	}
	return id, true
}

func normalizeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	return strings.ToUpper(filepath.Base(name))
}
