package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSVReader(t *testing.T) {
	input := strings.Join([]string{
		"Order ID,Order Date,Amount,Status",
		"ORD-1,2025-01-10,450,Delivered",
		"ORD-2,02/01/2025,1200.50,RTO",
	}, "\n")

	rows, err := ReadCSVReader(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "ORD-1", rows[0]["Order ID"])
	assert.Equal(t, "450", rows[0]["Amount"])
	assert.Equal(t, "RTO", rows[1]["Status"])
}

func TestReadCSVReaderRaggedRows(t *testing.T) {
	input := strings.Join([]string{
		"Order ID,Amount,Status",
		"ORD-1,100",
		"ORD-2,200,Delivered,extra-cell",
	}, "\n")

	rows, err := ReadCSVReader(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Short rows simply omit the missing columns; overlong rows drop the
	// surplus cells.
	_, hasStatus := rows[0]["Status"]
	assert.False(t, hasStatus)
	assert.Equal(t, "Delivered", rows[1]["Status"])
	assert.Len(t, rows[1], 3)
}

func TestReadCSVReaderEmptyInput(t *testing.T) {
	rows, err := ReadCSVReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)

	// Header only, no data rows.
	rows, err = ReadCSVReader(strings.NewReader("Order ID,Amount\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadCSVReaderSkipsBlankHeaderColumns(t *testing.T) {
	input := "Order ID,,Amount\nORD-1,junk,100\n"

	rows, err := ReadCSVReader(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], 2)
	assert.Equal(t, "100", rows[0]["Amount"])
}

func TestFromPayload(t *testing.T) {
	payload := []map[string]any{
		{"order_id": "ORD-1", "amount": 100.0},
		{"order_id": "ORD-2", "amount": 200.0},
	}

	rows := FromPayload(payload)
	require.Len(t, rows, 2)
	assert.Equal(t, "ORD-1", rows[0]["order_id"])
	assert.Equal(t, 200.0, rows[1]["amount"])
}
