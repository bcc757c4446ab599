package record

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a record set from a YAML (.yaml/.yml) or JSON (.json)
// file. The document may be a single mapping or a list of mappings; each
// mapping becomes one Record.
func LoadFile(path string) ([]*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read record file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return decodeRecords(data, yaml.Unmarshal)
	case ".json":
		return decodeRecords(data, gojson.Unmarshal)
	default:
		return nil, fmt.Errorf("unsupported record file extension %q (want .yaml, .yml or .json)", ext)
	}
}

func decodeRecords(data []byte, unmarshal func([]byte, any) error) ([]*Record, error) {
	// Try a list of mappings first, then a single mapping.
	var list []map[string]any
	if err := unmarshal(data, &list); err == nil {
		return fromMaps(list)
	}

	var single map[string]any
	if err := unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return fromMaps([]map[string]any{single})
}

func fromMaps(maps []map[string]any) ([]*Record, error) {
	records := make([]*Record, 0, len(maps))
	for i, m := range maps {
		rec, err := FromMap(m)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
