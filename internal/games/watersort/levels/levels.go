// Package levels provides level loading for Water Sort.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-watersort/internal/games/watersort/core"
	"github.com/vovakirdan/tui-watersort/internal/games/watersort/levels/formats"
)

//go:embed data/*.yaml
var builtin embed.FS

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Vials    []string
	Metadata map[string]string
	FilePath string
}

// NewState creates the starting configuration of the level.
func (l *Level) NewState() (*core.State, error) {
	return core.ParseVials(l.Vials)
}

// Difficulty returns the metadata difficulty label, if any.
func (l *Level) Difficulty() string {
	return l.Metadata["difficulty"]
}

// Loader handles loading levels from a file system.
type Loader struct {
	FS   fs.FS
	Root string
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(dir string) *Loader {
	return &Loader{FS: os.DirFS(dir), Root: "."}
}

// Builtin returns a loader over the levels compiled into the binary.
func Builtin() *Loader {
	return &Loader{FS: builtin, Root: "data"}
}

// Open returns a loader for dir, or the built-in levels when dir is empty.
func Open(dir string) *Loader {
	if dir == "" {
		return Builtin()
	}
	return NewLoader(dir)
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	seen := make(map[string]bool)

	err := fs.WalkDir(l.FS, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !slices.Contains(formats.FormatExtensions(), ext) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			return nil
		}
		if seen[level.ID] {
			return nil
		}
		seen[level.ID] = true

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	if err := core.ValidateVials(parsed.Vials); err != nil {
		return Level{}, fmt.Errorf("level %s: %w", parsed.ID, err)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Vials:    parsed.Vials,
		Metadata: parsed.Metadata,
		FilePath: p,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
