package charset

import (
	"github.com/rs/zerolog"
)

// Duplicates returns every symbol shared by more than one record, in order
// of first appearance.
func Duplicates(records []Record) []string {
	counts := make(map[string]int, len(records))
	order := make([]string, 0)
	for _, record := range records {
		if counts[record.Symbol] == 0 {
			order = append(order, record.Symbol)
		}
		counts[record.Symbol]++
	}

	duplicates := []string{}
	for _, symbol := range order {
		if counts[symbol] > 1 {
			duplicates = append(duplicates, symbol)
		}
	}
	return duplicates
}

// Healthcheck logs the duplicate symbols found in records and returns them.
// Duplicates are reported only; the list is left untouched.
func Healthcheck(logger zerolog.Logger, records []Record) []string {
	duplicates := Duplicates(records)
	event := logger.Info()
	if len(duplicates) > 0 {
		event = logger.Warn()
	}
	event.
		Int("records", len(records)).
		Int("count", len(duplicates)).
		Strs("duplicates", duplicates).
		Msg("healthcheck")
	return duplicates
}
