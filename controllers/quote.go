// controllers/quote.go
package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/config"
	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/services"
	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/utils"

	"github.com/gin-gonic/gin"
)

// QuoteFields defines the property/service attributes shared by the quote
// and booking endpoints
type QuoteFields struct {
	Service      string   `json:"service" binding:"required,oneof=basic intermediate advanced commercial"`
	PropertyType string   `json:"propertyType" binding:"omitempty,oneof=house flat office restaurant kitchen retail clinic other"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	Rooms        int      `json:"rooms"`
	Frequency    string   `json:"frequency" binding:"omitempty,oneof=one-time weekly bi-weekly monthly"`
	Oven         string   `json:"oven" binding:"omitempty,oneof=none single double"`
	Extras       []string `json:"extras"`
}

// QuoteRequest optionally carries contact details so first-visit
// eligibility can be checked
type QuoteRequest struct {
	QuoteFields
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
}

func (f QuoteFields) toQuoteInput() services.QuoteInput {
	return services.QuoteInput{
		Service:      services.Service(f.Service),
		PropertyType: f.PropertyType,
		Bedrooms:     f.Bedrooms,
		Bathrooms:    f.Bathrooms,
		Rooms:        f.Rooms,
		Frequency:    services.Frequency(f.Frequency),
		Oven:         f.Oven,
		Extras:       f.Extras,
	}
}

// GetQuote computes a price for the given property and service attributes,
// with any live site-wide offer and first-visit promotion applied on top
func GetQuote(c *gin.Context) {
	var input QuoteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	quoteInput := input.toQuoteInput()
	quote := services.CalculateQuote(quoteInput)

	store := services.NewBookingStore(config.DB)

	// Promotional lookups degrade to "no discount" rather than failing the
	// quote
	offer, err := store.ActiveOffer(time.Now())
	if err != nil {
		log.Printf("Active offer lookup failed: %v", err)
		offer = nil
	}
	perVisitPrice, _, offerSummary := services.ApplyOfferToPrice(quote.PerVisitPrice, offer)

	isFirstTime := false
	if input.Email != "" && input.Address != "" {
		isFirstTime, err = store.IsFirstTimeCustomer(input.Email, input.Address)
		if err != nil {
			log.Printf("First-time customer lookup failed: %v", err)
			isFirstTime = false
		}
	}
	firstVisitPrice, promo := services.ApplyFreeBathroomPromo(perVisitPrice, quoteInput, isFirstTime)

	c.JSON(http.StatusOK, gin.H{
		"quote":           quote,
		"offer":           offerSummary,
		"perVisitPrice":   perVisitPrice,
		"promo":           promo,
		"firstVisitPrice": firstVisitPrice,
	})
}
