package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OfferTypePercent = "percent"
	OfferTypeAmount  = "amount"
)

// Offer is a site-wide promotional discount. At most one offer is treated as
// active at a time: the most recently created enabled offer whose window
// contains now.
type Offer struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name          string     `gorm:"not null" json:"name"`
	DiscountType  string     `gorm:"type:varchar(10);not null" json:"discountType"`
	DiscountValue float64    `gorm:"type:decimal(10,2);not null" json:"discountValue"`
	Enabled       bool       `gorm:"default:true" json:"enabled"`
	StartsAt      *time.Time `json:"startsAt"`
	EndsAt        *time.Time `json:"endsAt"`

	gorm.Model
}

func (o *Offer) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return
}

// ActiveAt reports whether the offer is enabled and inside its window.
func (o *Offer) ActiveAt(now time.Time) bool {
	if !o.Enabled {
		return false
	}
	if o.StartsAt != nil && now.Before(*o.StartsAt) {
		return false
	}
	if o.EndsAt != nil && now.After(*o.EndsAt) {
		return false
	}
	return true
}
