package charset

import (
	"strings"
)

// TagLookup resolves descriptive tags for a group of entity names.
type TagLookup interface {
	TagsFor(names []string) []string
}

// TagEntry associates one entity name with its tags.
type TagEntry struct {
	Name string   `yaml:"name"`
	Tags []string `yaml:"tags"`
}

// TagTable is an ordered entity tag table. The first entry whose name is in
// the requested group wins.
type TagTable []TagEntry

// TagsFor implements TagLookup.
func (t TagTable) TagsFor(names []string) []string {
	for _, entry := range t {
		for _, name := range names {
			if entry.Name == name {
				return append([]string(nil), entry.Tags...)
			}
		}
	}
	return []string{}
}

// NormalizeEntities keeps the canonical `&name;` keys, strips the delimiters
// and groups the names by the symbol they produce. Groups are emitted in the
// order their symbol is first seen.
func NormalizeEntities(raw []RawEntity, lookup TagLookup) []NormalizedEntity {
	index := make(map[string]int, len(raw))
	out := make([]NormalizedEntity, 0, len(raw))
	for _, item := range raw {
		name, ok := entityName(item.Key)
		if !ok {
			continue
		}
		pos, seen := index[item.Characters]
		if !seen {
			pos = len(out)
			index[item.Characters] = pos
			out = append(out, NormalizedEntity{Symbol: item.Characters})
		}
		out[pos].Entities = append(out[pos].Entities, name)
	}

	for i := range out {
		if lookup == nil {
			out[i].Tags = []string{}
			continue
		}
		out[i].Tags = lookup.TagsFor(out[i].Entities)
	}
	return out
}

// entityName turns `&amp;` into `amp`. Keys without the trailing `;` are
// legacy short forms and are rejected.
func entityName(key string) (string, bool) {
	if !strings.HasSuffix(key, ";") || len(key) < 2 {
		return "", false
	}
	return key[1 : len(key)-1], true
}
