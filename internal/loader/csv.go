// internal/loader/csv.go
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ReadCSV reads a CSV export into raw rows. The first record is the header.
func ReadCSV(path string) ([]RawRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	return ReadCSVReader(file)
}

// ReadCSVReader is ReadCSV for an in-memory upload.
func ReadCSVReader(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	var rows []RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record: %w", err)
		}

		raw := make(RawRow, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(record) {
				raw[name] = record[i]
			}
		}
		rows = append(rows, raw)
	}

	return rows, nil
}
