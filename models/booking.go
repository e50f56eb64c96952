package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusPaid      = "paid"
	BookingStatusCancelled = "cancelled"
)

// Booking is a single visit occurrence. Recurring requests produce several
// bookings sharing a SeriesID; one-time requests produce exactly one with a
// nil SeriesID.
type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	Reference       string     `gorm:"uniqueIndex;not null" json:"reference"`
	SeriesID        *uuid.UUID `gorm:"type:uuid;index" json:"seriesId"`
	SeriesReference string     `gorm:"index" json:"seriesReference"`
	SeriesIndex     int        `gorm:"default:0" json:"seriesIndex"`

	ServiceKey   string `gorm:"type:varchar(20);not null" json:"serviceKey"`
	FrequencyKey string `gorm:"type:varchar(20);not null" json:"frequencyKey"`
	PropertyType string `gorm:"type:varchar(20)" json:"propertyType"`
	Bedrooms     int    `gorm:"default:1" json:"bedrooms"`
	Bathrooms    int    `gorm:"default:1" json:"bathrooms"`
	Rooms        int    `gorm:"default:1" json:"rooms"`
	Oven         string `gorm:"type:varchar(10);default:'none'" json:"oven"`

	Extras StringList `gorm:"type:jsonb;default:'[]'" json:"extras"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"index;not null" json:"email"`
	Phone    string `json:"phone"`
	Address  string `gorm:"not null" json:"address"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Notes    string `gorm:"type:text" json:"notes"`

	// Date-only, YYYY-MM-DD. Stored as text so series date arithmetic and
	// lookups stay timezone-free.
	PreferredDate string `gorm:"type:varchar(10);index" json:"preferredDate"`
	PreferredTime string `gorm:"type:varchar(10)" json:"preferredTime"`

	PropertySummary string   `json:"propertySummary"`
	PerVisitPrice   float64  `gorm:"type:decimal(10,2);not null" json:"perVisitPrice"`
	MonthlyEstimate *float64 `gorm:"type:decimal(10,2)" json:"monthlyEstimate"`
	PaymentSummary  string   `json:"paymentSummary"`

	// Promo fields are only ever set on the series anchor (index 0).
	PromoType     string  `gorm:"type:varchar(30)" json:"promoType"`
	PromoLabel    string  `json:"promoLabel"`
	PromoDiscount float64 `gorm:"type:decimal(10,2);default:0.0" json:"promoDiscount"`

	StripeSessionID string `json:"stripeSessionId"`
	Status          string `gorm:"type:varchar(20);default:'pending';index" json:"status"`

	gorm.Model
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// StringList is a jsonb-backed string slice column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, l)
}
