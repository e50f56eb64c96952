package services

import (
	"testing"

	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOfferToPriceNoOffer(t *testing.T) {
	price, discount, summary := ApplyOfferToPrice(100, nil)
	assert.Equal(t, 100.0, price)
	assert.Zero(t, discount)
	assert.Nil(t, summary)
}

func TestApplyOfferToPricePercent(t *testing.T) {
	offer := &models.Offer{Name: "Spring sale", DiscountType: models.OfferTypePercent, DiscountValue: 10}

	price, discount, summary := ApplyOfferToPrice(100, offer)
	assert.Equal(t, 90.0, price)
	assert.Equal(t, 10.0, discount)
	require.NotNil(t, summary)
	assert.Equal(t, "Spring sale", summary.Name)
	assert.Equal(t, 10.0, summary.Discount)
}

func TestApplyOfferToPriceAmountRecomputesAfterRounding(t *testing.T) {
	offer := &models.Offer{DiscountType: models.OfferTypeAmount, DiscountValue: 3}

	// raw discount 3, 97 rounds to 95, reported discount is 5 not 3
	price, discount, summary := ApplyOfferToPrice(100, offer)
	assert.Equal(t, 95.0, price)
	assert.Equal(t, 5.0, discount)
	require.NotNil(t, summary)
	assert.Equal(t, 5.0, summary.Discount)
}

func TestApplyOfferToPriceDiscountRoundsAway(t *testing.T) {
	offer := &models.Offer{DiscountType: models.OfferTypeAmount, DiscountValue: 1}

	// 99 rounds back up to 100: no discount should be reported as applied
	price, discount, summary := ApplyOfferToPrice(100, offer)
	assert.Equal(t, 100.0, price)
	assert.Zero(t, discount)
	assert.Nil(t, summary)
}

func TestApplyOfferToPricePercentClamped(t *testing.T) {
	over := &models.Offer{DiscountType: models.OfferTypePercent, DiscountValue: 150}
	price, discount, _ := ApplyOfferToPrice(100, over)
	assert.Equal(t, 0.0, price)
	assert.Equal(t, 100.0, discount)

	negative := &models.Offer{DiscountType: models.OfferTypePercent, DiscountValue: -20}
	price, _, summary := ApplyOfferToPrice(100, negative)
	assert.Equal(t, 100.0, price)
	assert.Nil(t, summary)
}

func TestApplyOfferToPriceNeverNegative(t *testing.T) {
	offer := &models.Offer{DiscountType: models.OfferTypeAmount, DiscountValue: 500}
	price, discount, _ := ApplyOfferToPrice(60, offer)
	assert.Equal(t, 0.0, price)
	assert.Equal(t, 60.0, discount)
}

func TestApplyOfferToPriceUnknownType(t *testing.T) {
	offer := &models.Offer{DiscountType: "bogo", DiscountValue: 10}
	price, _, summary := ApplyOfferToPrice(100, offer)
	assert.Equal(t, 100.0, price)
	assert.Nil(t, summary)
}

func TestApplyFreeBathroomPromoNotFirstTime(t *testing.T) {
	input := QuoteInput{Service: ServiceBasic, Bathrooms: 2}
	price, promo := ApplyFreeBathroomPromo(60, input, false)
	assert.Equal(t, 60.0, price)
	assert.Nil(t, promo)
}

func TestApplyFreeBathroomPromoCommercialNotEligible(t *testing.T) {
	input := QuoteInput{Service: ServiceCommercial, Rooms: 6, Bathrooms: 2}
	price, promo := ApplyFreeBathroomPromo(75, input, true)
	assert.Equal(t, 75.0, price)
	assert.Nil(t, promo)
}

func TestApplyFreeBathroomPromoApplied(t *testing.T) {
	input := QuoteInput{Service: ServiceBasic, Bedrooms: 2, Bathrooms: 1}
	price, promo := ApplyFreeBathroomPromo(30, input, true)
	assert.Equal(t, 30.0-FreeBathroomDiscount, price)
	require.NotNil(t, promo)
	assert.Equal(t, PromoTypeFreeBathroom, promo.Type)
	assert.Equal(t, FreeBathroomDiscount, promo.Discount)
}

func TestApplyFreeBathroomPromoCappedAtPrice(t *testing.T) {
	input := QuoteInput{Service: ServiceBasic, Bedrooms: 1, Bathrooms: 1}
	price, promo := ApplyFreeBathroomPromo(10, input, true)
	assert.Equal(t, 0.0, price)
	require.NotNil(t, promo)
	assert.Equal(t, 10.0, promo.Discount)
}

func TestOfferThenPromoSequence(t *testing.T) {
	// Callers apply the site-wide offer first, then the first-visit promo on
	// the offer-adjusted price
	offer := &models.Offer{DiscountType: models.OfferTypePercent, DiscountValue: 10}
	input := QuoteInput{Service: ServiceBasic, Bedrooms: 2, Bathrooms: 1}

	adjusted, _, _ := ApplyOfferToPrice(100, offer)
	final, promo := ApplyFreeBathroomPromo(adjusted, input, true)

	assert.Equal(t, 90.0, adjusted)
	assert.Equal(t, 75.0, final)
	require.NotNil(t, promo)
}
