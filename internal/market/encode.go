package market

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// isoTimestamp matches the millisecond ISO-8601 layout the legacy encoder used
// for temporal columns.
const isoTimestamp = "2006-01-02T15:04:05.000"

// EncodeRecords renders the table as a row-oriented JSON array with 2-space
// indentation. Keys appear in column order on every row; the stdlib map
// encoder would randomize them, so rows are assembled by hand before a final
// json.Indent pass.
func (t Table) EncodeRecords() (string, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, row := range t.Rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for j, col := range t.Columns {
			if j > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(col.Name)
			if err != nil {
				return "", fmt.Errorf("encode column %q: %w", col.Name, err)
			}
			buf.Write(key)
			buf.WriteByte(':')
			cell, err := encodeCell(row[j])
			if err != nil {
				return "", fmt.Errorf("encode column %q: %w", col.Name, err)
			}
			buf.Write(cell)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')

	var indented bytes.Buffer
	if err := json.Indent(&indented, buf.Bytes(), "", "  "); err != nil {
		return "", fmt.Errorf("indent records: %w", err)
	}
	return indented.String(), nil
}

func encodeCell(v any) ([]byte, error) {
	switch cell := v.(type) {
	case nil:
		return []byte("null"), nil
	case time.Time:
		return json.Marshal(cell.Format(isoTimestamp))
	case float64:
		// Providers occasionally hand back NaN for unreported metrics;
		// JSON has no spelling for it.
		if math.IsNaN(cell) || math.IsInf(cell, 0) {
			return []byte("null"), nil
		}
		return json.Marshal(cell)
	default:
		return json.Marshal(cell)
	}
}
