// internal/loader/payload.go
package loader

// FromPayload adapts deserialized API rows (one JSON object per order) into
// raw rows. JSON numbers arrive as float64, which the date and amount
// coercers already understand.
func FromPayload(rows []map[string]any) []RawRow {
	out := make([]RawRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, RawRow(row))
	}
	return out
}
