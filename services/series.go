package services

import (
	"fmt"
	"time"

	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/utils"
)

// stepDate advances one occurrence. Monthly stepping keeps the series'
// anchor day-of-month, clamped to the last valid day of shorter months
// (Jan 31 -> Feb 28/29 -> Mar 31).
func stepDate(t time.Time, freq Frequency, anchorDay int) time.Time {
	switch freq {
	case FrequencyWeekly:
		return t.AddDate(0, 0, 7)
	case FrequencyBiWeekly:
		return t.AddDate(0, 0, 14)
	case FrequencyMonthly:
		year, month, _ := t.Date()
		month++
		if month > time.December {
			month = time.January
			year++
		}
		day := anchorDay
		if last := daysInMonth(year, month); day > last {
			day = last
		}
		return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	default:
		return t
	}
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildSeriesDates expands a start date into an ordered list of occurrence
// dates. The first element is the start date unchanged. One-time frequencies,
// non-positive counts and unparseable dates all yield an empty list.
func BuildSeriesDates(startDate string, freq Frequency, count int) []string {
	if freq == FrequencyOneTime || count <= 0 {
		return []string{}
	}
	start, ok := utils.ParseDate(startDate)
	if !ok {
		return []string{}
	}

	dates := make([]string, 0, count)
	dates = append(dates, startDate)
	current := start
	for i := 1; i < count; i++ {
		current = stepDate(current, freq, start.Day())
		dates = append(dates, utils.FormatDate(current))
	}
	return dates
}

// BuildNextSeriesDates continues a series past its latest known occurrence:
// every returned date is strictly after lastDate.
func BuildNextSeriesDates(lastDate string, freq Frequency, count int) []string {
	if freq == FrequencyOneTime || count <= 0 {
		return []string{}
	}
	last, ok := utils.ParseDate(lastDate)
	if !ok {
		return []string{}
	}

	dates := make([]string, 0, count)
	current := last
	for i := 0; i < count; i++ {
		current = stepDate(current, freq, last.Day())
		dates = append(dates, utils.FormatDate(current))
	}
	return dates
}

// resumeStepLimit bounds forward stepping when resuming a stalled series, so
// a corrupt anchor date cannot loop forever.
const resumeStepLimit = 500

// NextDateOnOrAfter steps forward from lastDate until reaching the first
// occurrence on or after the given day. The boolean is false when lastDate
// does not parse or the limit is hit.
func NextDateOnOrAfter(lastDate string, freq Frequency, onOrAfter string) (string, bool) {
	if freq == FrequencyOneTime {
		return "", false
	}
	last, ok := utils.ParseDate(lastDate)
	if !ok {
		return "", false
	}

	current := last
	date := lastDate
	for i := 0; i < resumeStepLimit; i++ {
		if date >= onOrAfter && date > lastDate {
			return date, true
		}
		current = stepDate(current, freq, last.Day())
		date = utils.FormatDate(current)
	}
	return "", false
}

// SeriesMemberReference derives the reference for the occurrence at the
// given 0-based index: the anchor keeps the bare base reference, later
// members take a -R suffix numbered from the 1-based position.
func SeriesMemberReference(baseReference string, index int) string {
	if index <= 0 {
		return baseReference
	}
	return fmt.Sprintf("%s-R%02d", baseReference, index+1)
}

// BuildSeriesReferences derives one reference per occurrence.
func BuildSeriesReferences(baseReference string, count int) []string {
	if count <= 1 {
		return []string{baseReference}
	}
	refs := make([]string, 0, count)
	for i := 0; i < count; i++ {
		refs = append(refs, SeriesMemberReference(baseReference, i))
	}
	return refs
}
