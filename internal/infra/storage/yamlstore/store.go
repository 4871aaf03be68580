// Package yamlstore reads person records from YAML documents, one record
// per file, on any afero filesystem.
package yamlstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gabapcia/ospeople/internal/pkg/types"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyDocument is returned for a file holding no YAML document.
	ErrEmptyDocument = errors.New("empty document")

	// ErrNotMapping is returned when the top-level YAML node is not a mapping.
	ErrNotMapping = errors.New("document is not a mapping")
)

var extensions = types.NewSet(".yml", ".yaml")

type store struct {
	fs afero.Fs
}

// New creates a store reading from fsys.
func New(fsys afero.Fs) *store {
	return &store{fs: fsys}
}

// NewOS creates a store reading from the host filesystem.
func NewOS() *store {
	return New(afero.NewOsFs())
}

// IsYAML reports whether path has a YAML file extension.
func IsYAML(path string) bool {
	return extensions.Has(strings.ToLower(filepath.Ext(path)))
}

// Discover expands roots into the sorted, de-duplicated list of YAML files
// they denote. Directories are walked recursively; files named explicitly
// are kept whatever their extension.
func (s *store) Discover(ctx context.Context, roots ...string) ([]string, error) {
	found := types.NewSet[string]()

	for _, root := range roots {
		info, err := s.fs.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("discover %s: %w", root, err)
		}

		if !info.IsDir() {
			found.Add(filepath.Clean(root))
			continue
		}

		err = afero.Walk(s.fs, root, func(path string, info fs.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if !info.IsDir() && IsYAML(path) {
				found.Add(filepath.Clean(path))
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("discover %s: %w", root, err)
		}
	}

	paths := slices.Collect(found.ToIter())
	slices.Sort(paths)
	return paths, nil
}

// Load decodes the YAML document at path into an untyped mapping.
func (s *store) Load(ctx context.Context, path string) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	switch v := doc.(type) {
	case nil:
		return nil, fmt.Errorf("load %s: %w", path, ErrEmptyDocument)
	case map[string]any:
		return v, nil
	}
	return nil, fmt.Errorf("load %s: %w", path, ErrNotMapping)
}

// Encode writes v to w as a YAML document indented by two spaces.
func Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
