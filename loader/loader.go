// Package loader supplies schema text and record files to the
// validation engine: file loading, glob expansion for record sets, and
// a change watcher that reparses schemas on edit.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/david4096/sparql-agent-sub003/shex"
)

// FromFile reads and parses a schema file. The file must be UTF-8
// schema text; lex and parse errors are returned as-is so callers can
// surface line and offset information.
func FromFile(path string) (*shex.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	return shex.Parse(string(data))
}

// ExpandGlobs resolves record-file arguments. Each argument may be a
// literal path or a doublestar glob (including **). Results are
// deduplicated and sorted; an argument matching nothing is an error so
// typos fail loudly.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		base, pat := doublestar.SplitPattern(filepath.ToSlash(pattern))
		matches, err := doublestar.Glob(os.DirFS(base), pat)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		for _, m := range matches {
			full := filepath.Join(base, filepath.FromSlash(m))
			if !seen[full] {
				seen[full] = true
				files = append(files, full)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}
