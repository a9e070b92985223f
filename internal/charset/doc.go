// Package charset merges HTML named character references, the Unicode
// codepoint catalog and the emoji dataset into one flat list of records.
//
// The stages are pure functions over explicit inputs: NormalizeEntities
// groups entity aliases by symbol, Unify merges codepoints and emoji, and
// Duplicates reports symbols that still resolve to more than one record.
package charset
