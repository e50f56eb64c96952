package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSeriesDatesWeekly(t *testing.T) {
	dates := BuildSeriesDates("2024-03-01", FrequencyWeekly, 4)
	assert.Equal(t, []string{"2024-03-01", "2024-03-08", "2024-03-15", "2024-03-22"}, dates)
}

func TestBuildSeriesDatesBiWeekly(t *testing.T) {
	dates := BuildSeriesDates("2024-03-01", FrequencyBiWeekly, 3)
	assert.Equal(t, []string{"2024-03-01", "2024-03-15", "2024-03-29"}, dates)
}

func TestBuildSeriesDatesMonthlyClampsMonthEnd(t *testing.T) {
	// 2024 is a leap year; the anchor day is restored in longer months
	dates := BuildSeriesDates("2024-01-31", FrequencyMonthly, 4)
	assert.Equal(t, []string{"2024-01-31", "2024-02-29", "2024-03-31", "2024-04-30"}, dates)
}

func TestBuildSeriesDatesMonthlyYearRollover(t *testing.T) {
	dates := BuildSeriesDates("2024-11-15", FrequencyMonthly, 3)
	assert.Equal(t, []string{"2024-11-15", "2024-12-15", "2025-01-15"}, dates)
}

func TestBuildSeriesDatesEmptyCases(t *testing.T) {
	assert.Empty(t, BuildSeriesDates("2024-03-01", FrequencyOneTime, 5))
	assert.Empty(t, BuildSeriesDates("2024-03-01", FrequencyWeekly, 0))
	assert.Empty(t, BuildSeriesDates("2024-03-01", FrequencyWeekly, -2))
	assert.Empty(t, BuildSeriesDates("not a date", FrequencyWeekly, 4))
	assert.Empty(t, BuildSeriesDates("", FrequencyMonthly, 4))
}

func TestBuildSeriesDatesFirstElementUnchanged(t *testing.T) {
	for _, freq := range []Frequency{FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly} {
		dates := BuildSeriesDates("2024-06-10", freq, 6)
		assert.Equal(t, "2024-06-10", dates[0])
		assert.Len(t, dates, 6)
	}
}

func TestBuildNextSeriesDatesExcludesStart(t *testing.T) {
	dates := BuildNextSeriesDates("2024-03-01", FrequencyWeekly, 2)
	assert.Equal(t, []string{"2024-03-08", "2024-03-15"}, dates)

	for _, d := range BuildNextSeriesDates("2024-01-31", FrequencyMonthly, 5) {
		assert.Greater(t, d, "2024-01-31")
	}
}

func TestBuildNextSeriesDatesMonthlyAnchor(t *testing.T) {
	dates := BuildNextSeriesDates("2024-01-31", FrequencyMonthly, 3)
	assert.Equal(t, []string{"2024-02-29", "2024-03-31", "2024-04-30"}, dates)
}

func TestBuildNextSeriesDatesOneTime(t *testing.T) {
	assert.Empty(t, BuildNextSeriesDates("2024-03-01", FrequencyOneTime, 4))
}

func TestBuildSeriesReferences(t *testing.T) {
	assert.Equal(t, []string{"SM-1"}, BuildSeriesReferences("SM-1", 1))
	assert.Equal(t, []string{"SM-1"}, BuildSeriesReferences("SM-1", 0))
	assert.Equal(t,
		[]string{"SM-1", "SM-1-R02", "SM-1-R03"},
		BuildSeriesReferences("SM-1", 3))
}

func TestSeriesMemberReference(t *testing.T) {
	assert.Equal(t, "SM-1", SeriesMemberReference("SM-1", 0))
	assert.Equal(t, "SM-1-R02", SeriesMemberReference("SM-1", 1))
	assert.Equal(t, "SM-1-R10", SeriesMemberReference("SM-1", 9))
	assert.Equal(t, "SM-1-R13", SeriesMemberReference("SM-1", 12))
}

func TestNextDateOnOrAfter(t *testing.T) {
	date, ok := NextDateOnOrAfter("2024-03-01", FrequencyWeekly, "2024-03-20")
	assert.True(t, ok)
	assert.Equal(t, "2024-03-22", date)

	// Even when the anchor already satisfies the bound, the result must be a
	// later occurrence
	date, ok = NextDateOnOrAfter("2024-03-01", FrequencyWeekly, "2024-03-01")
	assert.True(t, ok)
	assert.Equal(t, "2024-03-08", date)

	_, ok = NextDateOnOrAfter("garbage", FrequencyWeekly, "2024-03-01")
	assert.False(t, ok)

	_, ok = NextDateOnOrAfter("2024-03-01", FrequencyOneTime, "2024-03-20")
	assert.False(t, ok)
}
