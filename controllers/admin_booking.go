// controllers/admin_booking.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/config"
	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/models"
	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateBookingInput defines the expected JSON structure for updating a
// booking from the admin dashboard
type UpdateBookingInput struct {
	Status        *string  `json:"status" binding:"omitempty,oneof=pending paid cancelled"`
	PreferredDate *string  `json:"preferredDate"`
	PreferredTime *string  `json:"preferredTime"`
	Notes         *string  `json:"notes"`
	PerVisitPrice *float64 `json:"perVisitPrice" binding:"omitempty,min=0"`
}

// GetBookings retrieves bookings, optionally filtered by status or series
func GetBookings(c *gin.Context) {
	query := config.DB.Order("preferred_date")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if seriesID := c.Query("seriesId"); seriesID != "" {
		seriesUUID, err := uuid.Parse(seriesID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid series ID format")
			return
		}
		query = query.Where("series_id = ?", seriesUUID)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetSeries retrieves all occurrences of one recurring series in order
func GetSeries(c *gin.Context) {
	seriesID := c.Param("seriesId")
	seriesUUID, err := uuid.Parse(seriesID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid series ID format")
		return
	}

	var bookings []models.Booking
	if err := config.DB.Where("series_id = ?", seriesUUID).
		Order("series_index").
		Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve series")
		return
	}

	if len(bookings) == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Series not found")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// UpdateBooking updates a single occurrence (status transitions, date moves,
// notes, price corrections)
func UpdateBooking(c *gin.Context) {
	bookingID := c.Param("id")
	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Where("id = ?", bookingUUID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Status != nil {
		booking.Status = *input.Status
	}
	if input.PreferredDate != nil {
		if _, ok := utils.ParseDate(*input.PreferredDate); !ok {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid preferred date, expected YYYY-MM-DD")
			return
		}
		booking.PreferredDate = *input.PreferredDate
	}
	if input.PreferredTime != nil {
		booking.PreferredTime = *input.PreferredTime
	}
	if input.Notes != nil {
		booking.Notes = *input.Notes
	}
	if input.PerVisitPrice != nil {
		booking.PerVisitPrice = *input.PerVisitPrice
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}
