// Package lookup provides the entity-name to tags table used when
// normalizing HTML named character references.
package lookup

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/louisbranch/charmap/internal/charset"
	"gopkg.in/yaml.v3"
)

//go:embed entity_tags.yaml
var embeddedTagsYAML []byte

var (
	loadEmbeddedOnce sync.Once
	embeddedTable    charset.TagTable
	embeddedErr      error
)

// Embedded returns the bundled tag table. The table is decoded once and
// callers receive a copy.
func Embedded() (charset.TagTable, error) {
	loadEmbeddedOnce.Do(func() {
		embeddedTable, embeddedErr = Decode(embeddedTagsYAML)
	})
	if embeddedErr != nil {
		return nil, fmt.Errorf("decode embedded entity tags: %w", embeddedErr)
	}
	return copyTable(embeddedTable), nil
}

// Load reads a tag table from path, or returns the embedded table when path
// is blank.
func Load(path string) (charset.TagTable, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Embedded()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read entity tags %s: %w", path, err)
	}
	table, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode entity tags %s: %w", path, err)
	}
	return table, nil
}

// Decode parses a YAML list of {name, tags} entries.
func Decode(data []byte) (charset.TagTable, error) {
	var entries []charset.TagEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	table := make(charset.TagTable, 0, len(entries))
	for i, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, fmt.Errorf("entry %d: name is required", i)
		}
		tags := make([]string, 0, len(entry.Tags))
		for _, tag := range entry.Tags {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
		table = append(table, charset.TagEntry{Name: name, Tags: tags})
	}
	return table, nil
}

func copyTable(source charset.TagTable) charset.TagTable {
	out := make(charset.TagTable, len(source))
	for i, entry := range source {
		out[i] = charset.TagEntry{
			Name: entry.Name,
			Tags: append([]string(nil), entry.Tags...),
		}
	}
	return out
}
