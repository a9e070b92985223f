// Package sources fetches and decodes the datasets the generator merges:
// the WHATWG named character reference map, the Unicode codepoint catalog,
// the emoji dataset and its group name table.
package sources
