package sources

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/louisbranch/charmap/internal/charset"
)

// Catalog is a codepoint catalog as read. Raw holds each row exactly as it
// appeared in the source so the catalog can be written back with every
// field intact; Entries holds the typed view of the same rows.
type Catalog struct {
	Entries []*charset.CodepointEntry
	Raw     []json.RawMessage
}

// LoadCodepoints reads a JSON array of codepoint rows. Fields beyond code,
// name and block survive in Raw. Null rows stay nil in Entries.
func LoadCodepoints(path string) (Catalog, error) {
	var raw []json.RawMessage
	if err := readJSON(path, &raw); err != nil {
		return Catalog{}, err
	}
	entries := make([]*charset.CodepointEntry, len(raw))
	for i, row := range raw {
		if err := json.Unmarshal(row, &entries[i]); err != nil {
			return Catalog{}, fmt.Errorf("decode %s row %d: %w", path, i, err)
		}
	}
	return Catalog{Entries: entries, Raw: raw}, nil
}

// CatalogOf builds a Catalog for entries that have no source JSON, such as
// a catalog parsed from the UCD text files.
func CatalogOf(entries []*charset.CodepointEntry) (Catalog, error) {
	raw := make([]json.RawMessage, len(entries))
	for i, entry := range entries {
		row, err := json.Marshal(entry)
		if err != nil {
			return Catalog{}, fmt.Errorf("encode catalog row %d: %w", i, err)
		}
		raw[i] = row
	}
	return Catalog{Entries: entries, Raw: raw}, nil
}

// LoadEmojis reads an emoji dataset in the emojibase data.json shape.
func LoadEmojis(path string) ([]charset.EmojiEntry, error) {
	var entries []charset.EmojiEntry
	if err := readJSON(path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

type groupsJSON struct {
	Groups    map[string]string `json:"groups"`
	Subgroups map[string]string `json:"subgroups"`
}

// LoadGroups reads an emojibase meta/groups.json file.
func LoadGroups(path string) (charset.GroupNames, error) {
	var payload groupsJSON
	if err := readJSON(path, &payload); err != nil {
		return charset.GroupNames{}, err
	}
	groups, err := indexNames(payload.Groups)
	if err != nil {
		return charset.GroupNames{}, fmt.Errorf("decode %s groups: %w", path, err)
	}
	subgroups, err := indexNames(payload.Subgroups)
	if err != nil {
		return charset.GroupNames{}, fmt.Errorf("decode %s subgroups: %w", path, err)
	}
	return charset.GroupNames{Groups: groups, Subgroups: subgroups}, nil
}

func indexNames(raw map[string]string) (map[int]string, error) {
	out := make(map[int]string, len(raw))
	for key, name := range raw {
		index, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("index %q is not a number", key)
		}
		out[index] = name
	}
	return out, nil
}

func readJSON(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
