package translations

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// SeekMode is the base ordering in which source files are considered before
// the overlap policy is applied. Sorting compares identifiers
// case-insensitively.
type SeekMode string

const (
	SeekAlphabetical   SeekMode = "alphabetical"
	SeekUnalphabetical SeekMode = "unalphabetical"
)

// Overlap decides which file wins when several define the same path and
// language.
type Overlap string

const (
	// OverlapOverwrite lets the file latest in seek order win.
	OverlapOverwrite Overlap = "overwrite"
	// OverlapIgnore lets the file earliest in seek order win.
	OverlapIgnore Overlap = "ignore"
)

// File is one raw translation source: an identifier (usually the file path,
// its extension selects the codec) and the undecoded content.
type File struct {
	ID   string
	Data []byte
}

// Source is one pre-decoded translation source, for callers that parse
// content themselves.
type Source struct {
	ID    string
	Table map[string]any
}

// Load decodes, validates, and orders the given files into a Collection.
//
// Files are sorted by identifier case-insensitively ascending
// (SeekUnalphabetical reverses that), then reversed once more under
// OverlapOverwrite so that the collection's first-match-wins lookup realizes
// the policy. Decoding and validation run per file; any failure aborts the
// whole load with the originating identifier attached.
func Load(files []File, mode SeekMode, overlap Overlap) (*Collection, error) {
	ordered := make([]File, len(files))
	copy(ordered, files)
	sortByID(ordered, func(f File) string { return f.ID }, mode)

	sources := make([]Source, len(ordered))

	var g errgroup.Group
	for i, file := range ordered {
		i, file := i, file
		g.Go(func() error {
			table, err := decode(file)
			if err != nil {
				return err
			}
			sources[i] = Source{ID: file.ID, Table: table}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return load(sources, overlap)
}

// LoadParsed builds a Collection from already-decoded tables, applying the
// same ordering and validation rules as Load.
func LoadParsed(sources []Source, mode SeekMode, overlap Overlap) (*Collection, error) {
	ordered := make([]Source, len(sources))
	copy(ordered, sources)
	sortByID(ordered, func(s Source) string { return s.ID }, mode)
	return load(ordered, overlap)
}

// LoadFS walks fsys collecting every .toml, .yaml, and .yml file (directories
// are descended into, other files ignored) and loads them. Read failures are
// fatal to the load.
func LoadFS(fsys fs.FS, mode SeekMode, overlap Overlap) (*Collection, error) {
	files, err := ReadDir(fsys)
	if err != nil {
		return nil, err
	}
	return Load(files, mode, overlap)
}

// ReadDir walks fsys and returns the raw content of every translation file
// in it, identified by path within fsys.
func ReadDir(fsys fs.FS) ([]File, error) {
	var files []File
	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		switch strings.ToLower(path.Ext(filePath)) {
		case ".toml", ".yaml", ".yml":
		default:
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}
		files = append(files, File{ID: filePath, Data: data})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func load(ordered []Source, overlap Overlap) (*Collection, error) {
	entries := make([]Entry, len(ordered))

	var g errgroup.Group
	for i, source := range ordered {
		i, source := i, source
		g.Go(func() error {
			node, err := NewNode(source.Table)
			if err != nil {
				var serr *StructuralError
				if errors.As(err, &serr) {
					serr.File = source.ID
				}
				return err
			}
			entries[i] = Entry{ID: source.ID, Node: node}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Pre-bake the overlap policy into iteration order: under overwrite the
	// last file in seek order must be visited first.
	if overlap == OverlapOverwrite {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}

	return NewCollection(entries), nil
}

func decode(file File) (map[string]any, error) {
	var table map[string]any
	switch strings.ToLower(path.Ext(file.ID)) {
	case ".toml":
		if err := toml.Unmarshal(file.Data, &table); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", file.ID, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(file.Data, &table); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", file.ID, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, file.ID)
	}
	if table == nil {
		table = map[string]any{}
	}
	return table, nil
}

func sortByID[T any](items []T, id func(T) string, mode SeekMode) {
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(id(items[i])) < strings.ToLower(id(items[j]))
	})
	if mode == SeekUnalphabetical {
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
	}
}
