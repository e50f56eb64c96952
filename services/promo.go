package services

import (
	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/models"
)

// Fixed value of the first-visit bathroom promotion, capped at the per-visit
// price when applied.
const FreeBathroomDiscount = 15.0

const (
	PromoTypeFreeBathroom = "free_bathroom"
	freeBathroomLabel     = "First visit: one bathroom cleaned free"
)

// OfferSummary describes a site-wide offer that actually changed the price.
type OfferSummary struct {
	Name          string  `json:"name"`
	DiscountType  string  `json:"discountType"`
	DiscountValue float64 `json:"discountValue"`
	Discount      float64 `json:"discount"`
}

// PromoSummary describes an applied one-time customer promotion.
type PromoSummary struct {
	Type     string  `json:"type"`
	Label    string  `json:"label"`
	Discount float64 `json:"discount"`
}

// ApplyOfferToPrice discounts a price by the active site-wide offer. The
// final price is rounded to the nearest 5 and the reported discount is
// recomputed from the rounded result, so it can differ from the raw
// discount. A nil offer, or a discount that rounds away to nothing, leaves
// the price unchanged with a nil summary.
func ApplyOfferToPrice(basePrice float64, offer *models.Offer) (float64, float64, *OfferSummary) {
	if offer == nil {
		return basePrice, 0, nil
	}

	var raw float64
	switch offer.DiscountType {
	case models.OfferTypePercent:
		pct := offer.DiscountValue
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		raw = basePrice * pct / 100
	case models.OfferTypeAmount:
		if offer.DiscountValue > 0 {
			raw = offer.DiscountValue
		}
	default:
		return basePrice, 0, nil
	}

	finalPrice := Round5(basePrice - raw)
	if finalPrice < 0 {
		finalPrice = 0
	}
	discount := basePrice - finalPrice
	if discount <= 0 {
		return basePrice, 0, nil
	}

	return finalPrice, discount, &OfferSummary{
		Name:          offer.Name,
		DiscountType:  offer.DiscountType,
		DiscountValue: offer.DiscountValue,
		Discount:      discount,
	}
}

// ApplyFreeBathroomPromo applies the first-time-customer bathroom discount
// to a per-visit price. Commercial services and returning customers are not
// eligible. Callers apply this after the site-wide offer, to the
// offer-adjusted price.
func ApplyFreeBathroomPromo(perVisitPrice float64, input QuoteInput, isFirstTime bool) (float64, *PromoSummary) {
	in := NormalizeQuoteInput(input)
	if !isFirstTime || in.Service == ServiceCommercial || in.Bathrooms < 1 {
		return perVisitPrice, nil
	}

	discount := FreeBathroomDiscount
	if discount > perVisitPrice {
		discount = perVisitPrice
	}
	firstVisitPrice := perVisitPrice - discount
	if firstVisitPrice < 0 {
		firstVisitPrice = 0
	}

	return firstVisitPrice, &PromoSummary{
		Type:     PromoTypeFreeBathroom,
		Label:    freeBathroomLabel,
		Discount: discount,
	}
}
