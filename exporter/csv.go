package exporter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/orayew2002/dummy-employees/domain"
)

// MarshalCSV serializes employees to comma-separated text with a header row.
func MarshalCSV(employees []domain.Employee) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Headers()); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for _, emp := range employees {
		if err := w.Write(Row(emp)); err != nil {
			return nil, fmt.Errorf("employee %d: %w", emp.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// UnmarshalCSV parses data produced by MarshalCSV into its header and rows.
func UnmarshalCSV(data []byte) ([]string, [][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = len(columns)

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("missing header")
	}

	return records[0], records[1:], nil
}
