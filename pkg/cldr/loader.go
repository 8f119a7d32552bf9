package cldr

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// LoadEntries reads locale data files from fsys. Every .yaml or .yml file is
// one locale entry; a file that omits the name field is named after its base
// filename ("en-US.yaml" becomes "en-US"). Files are parsed concurrently and
// the result is sorted by name, so the same file set always yields the same
// entry sequence.
//
// Loading happens at generation or initialization time only; the returned
// entries feed NewStaticTable or the code generator.
func LoadEntries(fsys fs.FS) ([]Entry, error) {
	var paths []string
	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(filePath)
		if ext == ".yaml" || ext == ".yml" {
			paths = append(paths, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cldr: walk locale data: %w", err)
	}
	if len(paths) == 0 {
		return nil, ErrNoLocaleData
	}

	entries := make([]Entry, len(paths))
	var g errgroup.Group

	for i, filePath := range paths {
		g.Go(func() error {
			data, err := fs.ReadFile(fsys, filePath)
			if err != nil {
				return fmt.Errorf("cldr: read %s: %w", filePath, err)
			}

			var entry Entry
			if err := yaml.Unmarshal(data, &entry); err != nil {
				return fmt.Errorf("cldr: parse %s: %w", filePath, err)
			}
			if entry.Name == "" {
				base := path.Base(filePath)
				entry.Name = strings.TrimSuffix(base, path.Ext(base))
			}

			entries[i] = entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}
