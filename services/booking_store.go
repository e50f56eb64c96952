package services

import (
	"errors"
	"time"

	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/models"
	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/utils"
	"gorm.io/gorm"
)

// BookingStore is the gorm-backed implementation of the lookups and writes
// the pricing and series code needs.
type BookingStore struct {
	db *gorm.DB
}

func NewBookingStore(db *gorm.DB) *BookingStore {
	return &BookingStore{db: db}
}

// ListSeriesBookings returns every occurrence belonging to a recurring
// series, ordered so occurrences of one series stay together.
func (s *BookingStore) ListSeriesBookings() ([]models.Booking, error) {
	var rows []models.Booking
	err := s.db.Where("series_id IS NOT NULL").
		Order("series_id, series_index").
		Find(&rows).Error
	return rows, err
}

// InsertBookings writes a batch of occurrences atomically.
func (s *BookingStore) InsertBookings(rows []models.Booking) error {
	if len(rows) == 0 {
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
}

// ActiveOffer picks the single offer treated as live right now: the most
// recently created enabled offer whose window contains now. Returns nil when
// there is none.
func (s *BookingStore) ActiveOffer(now time.Time) (*models.Offer, error) {
	var offer models.Offer
	err := s.db.Where("enabled = ?", true).
		Where("starts_at IS NULL OR starts_at <= ?", now).
		Where("ends_at IS NULL OR ends_at >= ?", now).
		Order("created_at DESC").
		First(&offer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

// IsFirstTimeCustomer reports whether no pending or paid booking exists for
// the normalized email and exact address pair.
func (s *BookingStore) IsFirstTimeCustomer(email, address string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Booking{}).
		Where("LOWER(email) = ? AND address = ?", utils.NormalizeEmail(email), address).
		Where("status IN ?", []string{models.BookingStatusPending, models.BookingStatusPaid}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
