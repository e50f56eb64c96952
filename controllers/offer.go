// controllers/offer.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/config"
	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/models"
	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateOfferInput defines the expected JSON structure for creating an offer
type CreateOfferInput struct {
	Name          string     `json:"name" binding:"required"`
	DiscountType  string     `json:"discountType" binding:"required,oneof=percent amount"`
	DiscountValue float64    `json:"discountValue" binding:"required,min=0"`
	Enabled       *bool      `json:"enabled"`
	StartsAt      *time.Time `json:"startsAt"`
	EndsAt        *time.Time `json:"endsAt"`
}

// UpdateOfferInput defines the expected JSON structure for updating an offer
type UpdateOfferInput struct {
	Name          *string    `json:"name"`
	DiscountType  *string    `json:"discountType" binding:"omitempty,oneof=percent amount"`
	DiscountValue *float64   `json:"discountValue" binding:"omitempty,min=0"`
	Enabled       *bool      `json:"enabled"`
	StartsAt      *time.Time `json:"startsAt"`
	EndsAt        *time.Time `json:"endsAt"`
}

// CreateOffer creates a new site-wide offer
func CreateOffer(c *gin.Context) {
	var input CreateOfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	offer := models.Offer{
		ID:            uuid.New(),
		Name:          input.Name,
		DiscountType:  input.DiscountType,
		DiscountValue: input.DiscountValue,
		Enabled:       true,
		StartsAt:      input.StartsAt,
		EndsAt:        input.EndsAt,
	}
	if input.Enabled != nil {
		offer.Enabled = *input.Enabled
	}

	if err := config.DB.Create(&offer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create offer")
		return
	}

	c.JSON(http.StatusCreated, offer)
}

// GetOffers retrieves all offers, most recent first
func GetOffers(c *gin.Context) {
	var offers []models.Offer
	if err := config.DB.Order("created_at DESC").Find(&offers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve offers")
		return
	}

	c.JSON(http.StatusOK, offers)
}

// UpdateOffer updates an existing offer
func UpdateOffer(c *gin.Context) {
	offerID := c.Param("id")
	offerUUID, err := uuid.Parse(offerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid offer ID format")
		return
	}

	var input UpdateOfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var offer models.Offer
	if err := config.DB.Where("id = ?", offerUUID).First(&offer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Offer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		offer.Name = *input.Name
	}
	if input.DiscountType != nil {
		offer.DiscountType = *input.DiscountType
	}
	if input.DiscountValue != nil {
		offer.DiscountValue = *input.DiscountValue
	}
	if input.Enabled != nil {
		offer.Enabled = *input.Enabled
	}
	if input.StartsAt != nil {
		offer.StartsAt = input.StartsAt
	}
	if input.EndsAt != nil {
		offer.EndsAt = input.EndsAt
	}

	if err := config.DB.Save(&offer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update offer")
		return
	}

	c.JSON(http.StatusOK, offer)
}

// DeleteOffer soft deletes an offer
func DeleteOffer(c *gin.Context) {
	offerID := c.Param("id")
	offerUUID, err := uuid.Parse(offerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid offer ID format")
		return
	}

	result := config.DB.Where("id = ?", offerUUID).Delete(&models.Offer{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete offer")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Offer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Offer deleted successfully"})
}
