// controllers/booking.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/config"
	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/models"
	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/services"
	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateBookingInput defines the expected JSON structure for creating a
// booking or recurring series
type CreateBookingInput struct {
	QuoteFields
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	City          string `json:"city"`
	Postcode      string `json:"postcode"`
	Notes         string `json:"notes"`
	PreferredDate string `json:"preferredDate" binding:"required"`
	PreferredTime string `json:"preferredTime"`
}

// CheckoutInput records the Stripe checkout session opened for a booking
type CheckoutInput struct {
	SessionID string `json:"sessionId" binding:"required"`
}

// CreateBooking creates a booking, expanding recurring requests into a full
// dated series inserted atomically. The price is always recomputed server
// side; promo fields only ever land on the series anchor.
func CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	if _, ok := utils.ParseDate(input.PreferredDate); !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid preferred date, expected YYYY-MM-DD")
		return
	}

	quoteInput := input.toQuoteInput()
	quote := services.CalculateQuote(quoteInput)

	store := services.NewBookingStore(config.DB)

	offer, err := store.ActiveOffer(time.Now())
	if err != nil {
		log.Printf("Active offer lookup failed: %v", err)
		offer = nil
	}
	perVisitPrice, _, _ := services.ApplyOfferToPrice(quote.PerVisitPrice, offer)

	isFirstTime, err := store.IsFirstTimeCustomer(input.Email, input.Address)
	if err != nil {
		log.Printf("First-time customer lookup failed: %v", err)
		isFirstTime = false
	}
	_, promo := services.ApplyFreeBathroomPromo(perVisitPrice, quoteInput, isFirstTime)

	// Series expansion. Advanced cleans are forced to one-time inside the
	// quote, so take the effective frequency from the result.
	frequency := quote.FrequencyKey
	dates := services.BuildSeriesDates(input.PreferredDate, frequency, frequency.SeriesCount())
	if len(dates) == 0 {
		dates = []string{input.PreferredDate}
	}

	baseReference := "SM-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6)
	references := services.BuildSeriesReferences(baseReference, len(dates))

	var seriesID *uuid.UUID
	if len(dates) > 1 {
		id := uuid.New()
		seriesID = &id
	}

	bookings := make([]models.Booking, 0, len(dates))
	for i, date := range dates {
		booking := models.Booking{
			Reference:       references[i],
			SeriesID:        seriesID,
			SeriesReference: baseReference,
			SeriesIndex:     i,
			ServiceKey:      string(quote.ServiceKey),
			FrequencyKey:    string(frequency),
			PropertyType:    input.PropertyType,
			Bedrooms:        input.Bedrooms,
			Bathrooms:       input.Bathrooms,
			Rooms:           input.Rooms,
			Oven:            input.Oven,
			Extras:          models.StringList(input.Extras),
			Name:            input.Name,
			Email:           input.Email,
			Phone:           input.Phone,
			Address:         input.Address,
			City:            input.City,
			Postcode:        input.Postcode,
			Notes:           input.Notes,
			PreferredDate:   date,
			PreferredTime:   input.PreferredTime,
			PropertySummary: quote.PropertySummary,
			PerVisitPrice:   perVisitPrice,
			MonthlyEstimate: quote.MonthlyEstimate,
			PaymentSummary:  quote.PaymentSummary,
			Status:          models.BookingStatusPending,
		}

		// One-time promotions belong to the anchor occurrence only
		if i == 0 && promo != nil {
			booking.PromoType = promo.Type
			booking.PromoLabel = promo.Label
			booking.PromoDiscount = promo.Discount
		}

		bookings = append(bookings, booking)
	}

	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&bookings).Error
	}); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reference":     baseReference,
		"seriesId":      seriesID,
		"occurrences":   len(bookings),
		"perVisitPrice": perVisitPrice,
		"promo":         promo,
		"bookings":      bookings,
	})
}

// GetBookingByReference retrieves a booking for the confirmation page
func GetBookingByReference(c *gin.Context) {
	reference := c.Param("reference")

	var booking models.Booking
	if err := config.DB.Where("reference = ?", reference).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// StartCheckout records the Stripe checkout session id against a pending
// booking
func StartCheckout(c *gin.Context) {
	reference := c.Param("reference")

	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Where("reference = ?", reference).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if booking.Status != models.BookingStatusPending {
		utils.RespondWithError(c, http.StatusConflict, "Booking is not awaiting payment")
		return
	}

	booking.StripeSessionID = input.SessionID
	if err := config.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ConfirmPayment flips a pending booking to paid once the gateway reports
// the checkout session complete
func ConfirmPayment(c *gin.Context) {
	reference := c.Param("reference")

	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Where("reference = ?", reference).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if booking.StripeSessionID == "" || booking.StripeSessionID != input.SessionID {
		utils.RespondWithError(c, http.StatusConflict, "Unknown checkout session for this booking")
		return
	}
	if booking.Status == models.BookingStatusCancelled {
		utils.RespondWithError(c, http.StatusConflict, "Booking has been cancelled")
		return
	}

	booking.Status = models.BookingStatusPaid
	if err := config.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}
