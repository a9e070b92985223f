package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/louisbranch/charmap/internal/charset"
)

// EncodeCSV renders records with a header row of charset.RecordFields.
func EncodeCSV(records []charset.Record) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(charset.RecordFields); err != nil {
		return nil, err
	}
	for _, record := range records {
		if err := writer.Write(record.Row()); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCSV writes records to path as CSV.
func WriteCSV(path string, records []charset.Record) error {
	data, err := EncodeCSV(records)
	if err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	return writeFile(path, data)
}
