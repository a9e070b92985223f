package charset

import (
	"strconv"
)

// CodepointEntry is one row of the Unicode codepoint catalog.
type CodepointEntry struct {
	Code  int    `json:"code"`
	Name  string `json:"name"`
	Block string `json:"block"`
}

// EmojiEntry is one emoji from the emoji dataset. Skin variants share the
// same shape; their own Skins are never expanded.
type EmojiEntry struct {
	Emoji      string       `json:"emoji"`
	Hexcode    string       `json:"hexcode"`
	Annotation string       `json:"annotation"`
	Group      *int         `json:"group,omitempty"`
	Subgroup   *int         `json:"subgroup,omitempty"`
	Tags       []string     `json:"tags,omitempty"`
	Skins      []EmojiEntry `json:"skins,omitempty"`
}

// GroupNames maps emoji group and subgroup indexes to display names.
type GroupNames struct {
	Groups    map[int]string
	Subgroups map[int]string
}

// Group returns the display name for a group index, or "" when unknown.
func (g GroupNames) Group(index *int) string {
	if index == nil {
		return ""
	}
	return g.Groups[*index]
}

// Subgroup returns the display name for a subgroup index, or "" when unknown.
func (g GroupNames) Subgroup(index *int) string {
	if index == nil {
		return ""
	}
	return g.Subgroups[*index]
}

// RawEntity is one key of the named character reference map, in document order.
type RawEntity struct {
	Key        string
	Characters string
}

// NormalizedEntity lists every entity name aliasing one symbol.
type NormalizedEntity struct {
	Symbol   string
	Entities []string
	Tags     []string
}

// Code is a codepoint value that is absent for emoji records. It encodes as
// a JSON number when set and as an empty string otherwise.
type Code struct {
	Value int
	Valid bool
}

// CodeOf returns a set Code.
func CodeOf(value int) Code {
	return Code{Value: value, Valid: true}
}

// String renders the decimal value, or "" when absent.
func (c Code) String() string {
	if !c.Valid {
		return ""
	}
	return strconv.Itoa(c.Value)
}

// MarshalJSON implements json.Marshaler.
func (c Code) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte(`""`), nil
	}
	return []byte(strconv.Itoa(c.Value)), nil
}

// Record is one generated entry: a plain codepoint or an emoji.
type Record struct {
	Symbol   string `json:"symbol"`
	Hex      string `json:"hex"`
	Code     Code   `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Entities string `json:"entities"`
	Tags     string `json:"tags"`
}

// RecordFields is the column order used by tabular output.
var RecordFields = []string{"symbol", "hex", "code", "name", "category", "entities", "tags"}

// Row returns the record values in RecordFields order.
func (r Record) Row() []string {
	return []string{r.Symbol, r.Hex, r.Code.String(), r.Name, r.Category, r.Entities, r.Tags}
}
