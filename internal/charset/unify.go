package charset

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ScalarValue reports whether code is a Unicode scalar value.
func ScalarValue(code int) bool {
	return code >= 0 && code <= utf8.MaxRune && utf8.ValidRune(rune(code))
}

// excludedBlocks hold modifier codepoints with no standalone glyph.
var excludedBlocks = map[string]struct{}{
	"Variation Selectors":            {},
	"Variation Selectors Supplement": {},
	"Tags":                           {},
}

// Sources bundles the inputs of Unify.
type Sources struct {
	Codepoints []*CodepointEntry
	Emojis     []EmojiEntry
	Entities   []NormalizedEntity
	Groups     GroupNames
}

// Unify merges plain codepoints and emoji into one record list. Codepoints
// whose hex is also produced by an emoji are dropped; the surviving
// codepoints come first, followed by every emoji and its skin variants.
func Unify(src Sources) []Record {
	chars := CodepointRecords(src.Codepoints, src.Entities)
	emojis := EmojiRecords(src.Emojis, src.Groups)

	emojiHex := make(map[string]struct{}, len(emojis))
	for _, emoji := range emojis {
		emojiHex[emoji.Hex] = struct{}{}
	}

	out := make([]Record, 0, len(chars)+len(emojis))
	for _, char := range chars {
		if _, taken := emojiHex[char.Hex]; taken {
			continue
		}
		out = append(out, char)
	}
	return append(out, emojis...)
}

// CodepointRecords builds records for every printable catalog entry and
// attaches entity names and tags by symbol.
func CodepointRecords(entries []*CodepointEntry, entities []NormalizedEntity) []Record {
	bySymbol := make(map[string]NormalizedEntity, len(entities))
	for _, entity := range entities {
		if _, exists := bySymbol[entity.Symbol]; !exists {
			bySymbol[entity.Symbol] = entity
		}
	}

	lower := cases.Lower(language.Und)
	out := make([]Record, 0, len(entries))
	for _, entry := range entries {
		if Excluded(entry) {
			continue
		}
		symbol := string(rune(entry.Code))
		record := Record{
			Symbol:   symbol,
			Hex:      CodeHex(entry.Code),
			Code:     CodeOf(entry.Code),
			Name:     lower.String(entry.Name),
			Category: entry.Block,
		}
		if entity, ok := bySymbol[symbol]; ok {
			record.Entities = strings.Join(uniqueStrings(entity.Entities), " ")
			record.Tags = strings.Join(entity.Tags, " ")
		}
		out = append(out, record)
	}
	return out
}

// Excluded reports whether a catalog entry is missing, a placeholder such as
// `<control>`, or part of a modifier block. Codes that are not Unicode
// scalar values (surrogates, negatives, anything past U+10FFFF) are excluded
// too: they have no UTF-8 encoding.
func Excluded(entry *CodepointEntry) bool {
	if entry == nil || !ScalarValue(entry.Code) {
		return true
	}
	if strings.HasPrefix(entry.Name, "<") && strings.HasSuffix(entry.Name, ">") {
		return true
	}
	_, excluded := excludedBlocks[entry.Block]
	return excluded
}

// EmojiRecords flattens emoji and their skin variants into records. Skin
// variants reuse the tags of their parent.
func EmojiRecords(emojis []EmojiEntry, groups GroupNames) []Record {
	out := make([]Record, 0, len(emojis))
	for _, item := range emojis {
		tokens := make([]string, 0, len(item.Tags)+2)
		tokens = append(tokens, "emoji", groups.Subgroup(item.Subgroup))
		tokens = append(tokens, item.Tags...)
		tags := strings.Join(tokens, " ")

		out = append(out, emojiRecord(item, groups, tags))
		for _, skin := range item.Skins {
			out = append(out, emojiRecord(skin, groups, tags))
		}
	}
	return out
}

func emojiRecord(item EmojiEntry, groups GroupNames, tags string) Record {
	return Record{
		Symbol:   item.Emoji,
		Hex:      HexFromHexcode(item.Hexcode),
		Name:     item.Annotation,
		Category: groups.Group(item.Group),
		Tags:     tags,
	}
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
