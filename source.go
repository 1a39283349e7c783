// File: propread/source.go
package propread

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/magiconair/properties"
	"gopkg.in/yaml.v3"
)

// Source is an immutable, ordered key-value view of one loaded
// configuration resource. Properties resources keep declaration order;
// structured formats (TOML, JSON, YAML) are flattened to dotted keys and
// sorted.
type Source struct {
	keys   []string
	values map[string]string
}

// newSource parses resource data according to format, one of
// "properties", "toml", "json" or "yaml".
func newSource(data []byte, format string) (*Source, error) {
	switch format {
	case formatProperties:
		return parsePropertiesSource(data)
	case formatTOML:
		nested := make(map[string]any)
		if err := toml.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("failed to parse TOML resource: %w", err)
		}
		return sourceFromNested(nested), nil
	case formatJSON:
		nested := make(map[string]any)
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&nested); err != nil {
			return nil, fmt.Errorf("failed to parse JSON resource: %w", err)
		}
		return sourceFromNested(nested), nil
	case formatYAML:
		nested := make(map[string]any)
		if err := yaml.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("failed to parse YAML resource: %w", err)
		}
		return sourceFromNested(nested), nil
	default:
		return nil, fmt.Errorf("unsupported resource format %q", format)
	}
}

// parsePropertiesSource parses the properties grammar: key=value or
// key:value pairs, # and ! comments. Reference expansion inside values is
// disabled; property values are never rescanned.
func parsePropertiesSource(data []byte) (*Source, error) {
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse properties resource: %w", err)
	}

	s := &Source{
		keys:   make([]string, 0, p.Len()),
		values: make(map[string]string, p.Len()),
	}
	for _, key := range p.Keys() {
		value, _ := p.Get(key)
		s.keys = append(s.keys, key)
		s.values[key] = value
	}
	return s, nil
}

// sourceFromNested flattens a parsed structured document to dotted keys
// with stringified scalar values.
func sourceFromNested(nested map[string]any) *Source {
	flat := flattenMap(nested, "")

	s := &Source{
		keys:   make([]string, 0, len(flat)),
		values: make(map[string]string, len(flat)),
	}
	for key, value := range flat {
		s.keys = append(s.keys, key)
		s.values[key] = stringifyValue(value)
	}
	sort.Strings(s.keys)
	return s
}

// Get returns the value for key and whether the key is present.
func (s *Source) Get(key string) (string, bool) {
	value, ok := s.values[key]
	return value, ok
}

// GetDefault returns the value for key, or def when the key is absent.
// A present-but-empty value is returned as-is, not replaced by def.
func (s *Source) GetDefault(key, def string) string {
	if value, ok := s.values[key]; ok {
		return value
	}
	return def
}

// Keys returns the source's keys in order.
func (s *Source) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Len returns the number of keys in the source.
func (s *Source) Len() int { return len(s.keys) }

const (
	formatProperties = "properties"
	formatTOML       = "toml"
	formatJSON       = "json"
	formatYAML       = "yaml"
)

// detectFormat determines the resource format from the file extension.
// Anything unrecognized is treated as properties, the native format.
func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return formatTOML
	case ".json":
		return formatJSON
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatProperties
	}
}
