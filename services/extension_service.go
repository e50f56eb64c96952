package services

import (
	"fmt"
	"log"

	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/models"
	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/utils"
	"github.com/google/uuid"
)

const (
	// A series with at least this many upcoming active occurrences needs no
	// topping up.
	minUpcomingOccurrences = 3

	// A fully stalled series is only resumed if its latest occurrence is at
	// most this many days in the past.
	resumeWindowDays = 90
)

// SeriesStore is the minimal persistence port the extension scheduler needs.
// Keeping it this small lets the branching logic run against an in-memory
// fake in tests.
type SeriesStore interface {
	ListSeriesBookings() ([]models.Booking, error)
	InsertBookings(rows []models.Booking) error
}

// ExtensionService tops up recurring series so customers never run out of
// scheduled visits. Safe to invoke repeatedly: it only inserts rows for
// genuine gaps and never duplicates an existing date.
type ExtensionService struct {
	store SeriesStore
}

func NewExtensionService(store SeriesStore) *ExtensionService {
	return &ExtensionService{store: store}
}

// ExtensionResult summarises one scheduler run.
type ExtensionResult struct {
	SeriesChecked int `json:"seriesChecked"`
	SeriesUpdated int `json:"seriesUpdated"`
	RowsInserted  int `json:"rowsInserted"`
}

// Run inspects every recurring series and appends future occurrences where
// needed. A failed insert aborts the whole run: a silently skipped series
// would desynchronise the upcoming counts the next run depends on.
func (s *ExtensionService) Run() (ExtensionResult, error) {
	var result ExtensionResult

	rows, err := s.store.ListSeriesBookings()
	if err != nil {
		return result, fmt.Errorf("list series bookings: %w", err)
	}

	today := utils.Today()
	for _, series := range groupBySeries(rows) {
		result.SeriesChecked++

		newRows := planSeriesExtension(series, today)
		if len(newRows) == 0 {
			continue
		}

		if err := s.store.InsertBookings(newRows); err != nil {
			return result, fmt.Errorf("insert %d rows for series %s: %w",
				len(newRows), newRows[0].SeriesReference, err)
		}
		result.SeriesUpdated++
		result.RowsInserted += len(newRows)
		log.Printf("Extended series %s with %d occurrences", newRows[0].SeriesReference, len(newRows))
	}

	return result, nil
}

// groupBySeries splits occurrences by series id, preserving the order in
// which series first appear.
func groupBySeries(rows []models.Booking) [][]models.Booking {
	index := make(map[uuid.UUID]int)
	var groups [][]models.Booking
	for _, row := range rows {
		if row.SeriesID == nil {
			continue
		}
		i, ok := index[*row.SeriesID]
		if !ok {
			i = len(groups)
			index[*row.SeriesID] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], row)
	}
	return groups
}

// planSeriesExtension decides which new occurrences (if any) one series
// needs, and builds the rows to insert.
func planSeriesExtension(series []models.Booking, today string) []models.Booking {
	if len(series) == 0 {
		return nil
	}

	freq := ParseFrequency(series[0].FrequencyKey)
	if freq == FrequencyOneTime {
		return nil
	}

	upcoming := 0
	hasActive := false
	for _, occ := range series {
		if occ.Status == models.BookingStatusCancelled {
			continue
		}
		hasActive = true
		if occ.PreferredDate >= today {
			upcoming++
		}
	}
	if !hasActive || upcoming >= minUpcomingOccurrences {
		return nil
	}

	// Continuation anchor: the chronologically latest occurrence regardless
	// of status.
	latest := series[0]
	for _, occ := range series[1:] {
		if occ.PreferredDate > latest.PreferredDate {
			latest = occ
		}
	}
	if latest.PreferredDate == "" {
		return nil
	}

	count := freq.ExtendCount()
	var dates []string
	if upcoming > 0 {
		dates = BuildNextSeriesDates(latest.PreferredDate, freq, count)
	} else {
		// Fully stalled: resume only inside the staleness window, anchored
		// at the first occurrence on or after today.
		latestDay, ok := utils.ParseDate(latest.PreferredDate)
		todayDay, ok2 := utils.ParseDate(today)
		if !ok || !ok2 || utils.DaysBetween(latestDay, todayDay) > resumeWindowDays {
			return nil
		}
		resumed, ok := NextDateOnOrAfter(latest.PreferredDate, freq, today)
		if !ok {
			return nil
		}
		dates = append([]string{resumed}, BuildNextSeriesDates(resumed, freq, count-1)...)
	}

	// Never duplicate a date already present in the series.
	existing := make(map[string]bool, len(series))
	maxIndex := 0
	for _, occ := range series {
		existing[occ.PreferredDate] = true
		if occ.SeriesIndex > maxIndex {
			maxIndex = occ.SeriesIndex
		}
	}
	fresh := dates[:0]
	for _, d := range dates {
		if !existing[d] {
			fresh = append(fresh, d)
		}
	}
	if len(fresh) == 0 {
		return nil
	}

	rows := make([]models.Booking, 0, len(fresh))
	for i, d := range fresh {
		idx := maxIndex + 1 + i
		row := models.Booking{
			Reference:       SeriesMemberReference(latest.SeriesReference, idx),
			SeriesID:        latest.SeriesID,
			SeriesReference: latest.SeriesReference,
			SeriesIndex:     idx,
			ServiceKey:      latest.ServiceKey,
			FrequencyKey:    latest.FrequencyKey,
			PropertyType:    latest.PropertyType,
			Bedrooms:        latest.Bedrooms,
			Bathrooms:       latest.Bathrooms,
			Rooms:           latest.Rooms,
			Oven:            latest.Oven,
			Extras:          latest.Extras,
			Name:            latest.Name,
			Email:           latest.Email,
			Phone:           latest.Phone,
			Address:         latest.Address,
			City:            latest.City,
			Postcode:        latest.Postcode,
			Notes:           latest.Notes,
			PreferredDate:   d,
			PreferredTime:   latest.PreferredTime,
			PropertySummary: latest.PropertySummary,
			PerVisitPrice:   latest.PerVisitPrice,
			MonthlyEstimate: latest.MonthlyEstimate,
			PaymentSummary:  latest.PaymentSummary,
			// New occurrences never inherit payment or one-time promo state.
			Status: models.BookingStatusPending,
		}
		rows = append(rows, row)
	}
	return rows
}
