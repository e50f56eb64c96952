package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	parsed, ok := ParseDate("2024-03-01")
	assert.True(t, ok)
	assert.Equal(t, "2024-03-01", FormatDate(parsed))

	_, ok = ParseDate("01/03/2024")
	assert.False(t, ok)
	_, ok = ParseDate("")
	assert.False(t, ok)
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, 3, 8, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 7, DaysBetween(start, end))
	assert.Equal(t, -7, DaysBetween(end, start))
}
