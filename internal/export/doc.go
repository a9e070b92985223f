// Package export persists generated records: pretty-printed JSON, RFC 4180
// CSV and an optional SQLite database.
package export
