package cli

import (
	"testing"
	"time"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItem(t *testing.T) {
	item, err := parseItem("electricity:3500:120")
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceItem{Type: "electricity", UnitPrice: 3500, Quantity: 120}, item)

	item, err = parseItem("service:50000:1:dọn vệ sinh")
	require.NoError(t, err)
	assert.Equal(t, "dọn vệ sinh", item.Note)

	_, err = parseItem("room:abc:1")
	assert.Error(t, err)

	_, err = parseItem("room:1000")
	assert.Error(t, err)
}

func TestParseRange(t *testing.T) {
	from, to, err := parseRange("2024-01-01", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), to)

	_, _, err = parseRange("2024-03-01", "2024-01-01")
	assert.Error(t, err)

	_, _, err = parseRange("01.01.2024", "")
	assert.Error(t, err)

	// Defaults cover the last 30 days.
	from, to, err = parseRange("", "")
	require.NoError(t, err)
	assert.True(t, to.After(from))
}
