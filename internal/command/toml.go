package command

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileSystem abstracts file access so tests can load overlays from
// in-memory files.
type FileSystem interface {
	fs.FS
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem over the real file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) { return os.Open(name) }

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// Patch is one overlay entry: optional overrides for an existing
// descriptor's flags. Defining brand-new commands is intentionally not
// supported; the identifier vocabulary is fixed.
type Patch struct {
	SkipInput            *bool    `toml:"skip_input"`
	AllowEvents          *bool    `toml:"allow_events"`
	DisallowContinuation *bool    `toml:"disallow_continuation"`
	Announce             *bool    `toml:"announce"`
	DoDefault            *bool    `toml:"do_default"`
	Platform             []string `toml:"platform"`
	Doc                  *string  `toml:"doc"`
}

// overlayFile is the on-disk shape of a command overlay.
type overlayFile struct {
	Commands map[string]Patch `toml:"commands"`
}

// OverlayLoader loads command overlays from TOML files.
type OverlayLoader struct {
	fs   FileSystem
	path string
}

// NewOverlayLoader creates a loader for the given path.
func NewOverlayLoader(path string) *OverlayLoader {
	return &OverlayLoader{fs: OSFS{}, path: path}
}

// NewOverlayLoaderWithFS creates a loader with a custom file system.
func NewOverlayLoaderWithFS(fsys FileSystem, path string) *OverlayLoader {
	return &OverlayLoader{fs: fsys, path: path}
}

// Load reads the overlay from the configured path. A missing file is not
// an error; it yields a nil overlay.
func (l *OverlayLoader) Load() (map[string]Patch, error) {
	data, err := l.fs.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading command overlay %s: %w", l.path, err)
	}
	return parseOverlay(l.path, data)
}

// LoadFromReader reads an overlay from an io.Reader.
func (l *OverlayLoader) LoadFromReader(r io.Reader) (map[string]Patch, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading command overlay: %w", err)
	}
	return parseOverlay("<reader>", data)
}

func parseOverlay(source string, data []byte) (map[string]Patch, error) {
	var file overlayFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing command overlay %s: %w", source, err)
	}
	return file.Commands, nil
}

// Apply patches a descriptor table with an overlay. Every overlay key
// must name an existing command; unknown identifiers are rejected so a
// typo in the overlay surfaces at load time rather than silently
// creating an unbound entry.
func Apply(table []Descriptor, overlay map[string]Patch) ([]Descriptor, error) {
	if len(overlay) == 0 {
		return table, nil
	}

	index := make(map[string]int, len(table))
	for i, d := range table {
		index[d.ID] = i
	}

	out := make([]Descriptor, len(table))
	copy(out, table)

	for id, patch := range overlay {
		i, ok := index[id]
		if !ok {
			return nil, fmt.Errorf("%w: overlay entry %q", ErrUnknownCommand, id)
		}

		d := out[i]
		if patch.SkipInput != nil {
			d.SkipInput = *patch.SkipInput
		}
		if patch.AllowEvents != nil {
			d.AllowEvents = *patch.AllowEvents
		}
		if patch.DisallowContinuation != nil {
			d.DisallowContinuation = *patch.DisallowContinuation
		}
		if patch.Announce != nil {
			d.Announce = *patch.Announce
		}
		if patch.DoDefault != nil {
			d.DoDefault = *patch.DoDefault
		}
		if len(patch.Platform) > 0 {
			p, err := parsePlatforms(patch.Platform)
			if err != nil {
				return nil, fmt.Errorf("overlay entry %q: %w", id, err)
			}
			d.Platform = p
		}
		if patch.Doc != nil {
			d.Doc = *patch.Doc
		}
		out[i] = d
	}

	return out, nil
}

func parsePlatforms(names []string) (Platform, error) {
	var p Platform
	for _, name := range names {
		switch strings.ToLower(name) {
		case "wml":
			p |= PlatformWML
		case "chromeos":
			p |= PlatformChromeOS
		case "android":
			p |= PlatformAndroid
		case "all":
			p |= PlatformAll
		default:
			return 0, fmt.Errorf("unknown platform %q", name)
		}
	}
	return p, nil
}
