package sources

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/charmap/internal/charset"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadCodepointsKeepsNullEntries(t *testing.T) {
	path := writeFile(t, t.TempDir(), "codepoints.json",
		`[{"code": 65, "name": "LATIN CAPITAL LETTER A", "block": "Basic Latin"}, null]`)

	catalog, err := LoadCodepoints(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	entries := catalog.Entries
	if len(entries) != 2 || len(catalog.Raw) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Code != 65 || entries[0].Block != "Basic Latin" {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
	if entries[1] != nil {
		t.Fatalf("expected null entry, got %+v", entries[1])
	}
	if string(catalog.Raw[1]) != "null" {
		t.Fatalf("expected raw null row, got %s", catalog.Raw[1])
	}
}

func TestLoadCodepointsKeepsUnknownFields(t *testing.T) {
	row := `{"code": 169, "name": "COPYRIGHT SIGN", "block": "Latin-1 Supplement", "gc": "So", "decomp": ""}`
	path := writeFile(t, t.TempDir(), "codepoints.json", "["+row+"]")

	catalog, err := LoadCodepoints(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(catalog.Raw[0]) != row {
		t.Fatalf("raw row = %s, want %s", catalog.Raw[0], row)
	}
	if catalog.Entries[0].Code != 169 {
		t.Fatalf("unexpected entry %+v", catalog.Entries[0])
	}
}

func TestCatalogOfEncodesEntries(t *testing.T) {
	catalog, err := CatalogOf([]*charset.CodepointEntry{{Code: 65, Name: "LATIN CAPITAL LETTER A", Block: "Basic Latin"}, nil})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	want := `{"code":65,"name":"LATIN CAPITAL LETTER A","block":"Basic Latin"}`
	if string(catalog.Raw[0]) != want || string(catalog.Raw[1]) != "null" {
		t.Fatalf("unexpected raw rows %s %s", catalog.Raw[0], catalog.Raw[1])
	}
}

func TestLoadEmojisDecodesSkins(t *testing.T) {
	path := writeFile(t, t.TempDir(), "data.json", `[{
  "annotation": "waving hand",
  "emoji": "👋",
  "hexcode": "1F44B",
  "group": 1,
  "subgroup": 14,
  "tags": ["hand", "wave"],
  "skins": [{"annotation": "waving hand: light skin tone", "emoji": "👋🏻", "hexcode": "1F44B-1F3FB", "group": 1, "subgroup": 14, "tone": 1}]
}, {"annotation": "regional indicator A", "emoji": "🇦", "hexcode": "1F1E6"}]`)

	emojis, err := LoadEmojis(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(emojis) != 2 || len(emojis[0].Skins) != 1 {
		t.Fatalf("unexpected emojis %+v", emojis)
	}
	if emojis[0].Group == nil || *emojis[0].Group != 1 {
		t.Fatalf("group = %v", emojis[0].Group)
	}
	if emojis[1].Group != nil || emojis[1].Subgroup != nil {
		t.Fatal("expected missing group indexes to stay nil")
	}
}

func TestLoadGroups(t *testing.T) {
	path := writeFile(t, t.TempDir(), "groups.json",
		`{"groups": {"0": "smileys-emotion", "1": "people-body"}, "subgroups": {"14": "hand-fingers-open"}}`)

	groups, err := LoadGroups(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	one := 1
	fourteen := 14
	if groups.Group(&one) != "people-body" || groups.Subgroup(&fourteen) != "hand-fingers-open" {
		t.Fatalf("unexpected groups %+v", groups)
	}
}

func TestLoadGroupsRejectsNonNumericIndex(t *testing.T) {
	path := writeFile(t, t.TempDir(), "groups.json", `{"groups": {"zero": "x"}}`)
	_, err := LoadGroups(path)
	if err == nil || !strings.Contains(err.Error(), "not a number") {
		t.Fatalf("expected index error, got %v", err)
	}
}

func TestLoadCodepointsMalformed(t *testing.T) {
	path := writeFile(t, t.TempDir(), "codepoints.json", `[{"code": "x"}]`)
	_, err := LoadCodepoints(path)
	if err == nil || !strings.Contains(err.Error(), "decode ") {
		t.Fatalf("expected decode error, got %v", err)
	}
}
