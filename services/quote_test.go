package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateQuoteBasicWeekly(t *testing.T) {
	quote := CalculateQuote(QuoteInput{
		Service:      ServiceBasic,
		PropertyType: "house",
		Bedrooms:     2,
		Bathrooms:    1,
		Frequency:    FrequencyWeekly,
	})

	assert.Equal(t, ServiceBasic, quote.ServiceKey)
	assert.Equal(t, "Weekly", quote.FrequencyLabel)
	assert.Equal(t, 30.0, quote.PerVisitPrice)
	require.NotNil(t, quote.MonthlyEstimate)
	assert.Equal(t, 120.0, *quote.MonthlyEstimate)
	assert.Equal(t, "2 bedrooms, 1 bathroom", quote.PropertySummary)
	assert.Equal(t, "£30 per visit, billed weekly", quote.PaymentSummary)
	assert.Empty(t, quote.Addons)
}

func TestCalculateQuoteAdvancedForcesOneTime(t *testing.T) {
	for _, freq := range []Frequency{FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly, FrequencyOneTime} {
		quote := CalculateQuote(QuoteInput{
			Service:   ServiceAdvanced,
			Bedrooms:  4,
			Bathrooms: 2,
			Frequency: freq,
		})

		assert.Equal(t, FrequencyOneTime, quote.FrequencyKey, "requested %s", freq)
		assert.Equal(t, "One-time", quote.FrequencyLabel)
		// (240 + 15) * 1.3 * 0.5 = 165.75 -> 165
		assert.Equal(t, 165.0, quote.PerVisitPrice)
		assert.Nil(t, quote.MonthlyEstimate)
		assert.Equal(t, "One-time total of £165", quote.PaymentSummary)
	}
}

func TestCalculateQuoteCommercialBiWeekly(t *testing.T) {
	quote := CalculateQuote(QuoteInput{
		Service:      ServiceCommercial,
		PropertyType: "office",
		Rooms:        6,
		Bathrooms:    3, // no bathroom charge on commercial
		Frequency:    FrequencyBiWeekly,
	})

	// 140 * 1.1 * 0.5 = 77 -> 75
	assert.Equal(t, 75.0, quote.PerVisitPrice)
	require.NotNil(t, quote.MonthlyEstimate)
	assert.Equal(t, 150.0, *quote.MonthlyEstimate)
	assert.Equal(t, "6 rooms", quote.PropertySummary)
}

func TestCalculateQuoteDeterministic(t *testing.T) {
	input := QuoteInput{
		Service:   ServiceIntermediate,
		Bedrooms:  3,
		Bathrooms: 2,
		Frequency: FrequencyMonthly,
		Oven:      OvenSingle,
		Extras:    []string{"fridge", "windows"},
	}

	first := CalculateQuote(input)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, CalculateQuote(input))
	}
}

func TestCalculateQuoteClampsCounts(t *testing.T) {
	clamped := CalculateQuote(QuoteInput{Service: ServiceBasic, Bedrooms: 0, Bathrooms: -3, Frequency: FrequencyWeekly})
	minimum := CalculateQuote(QuoteInput{Service: ServiceBasic, Bedrooms: 1, Bathrooms: 1, Frequency: FrequencyWeekly})

	assert.Equal(t, minimum.PerVisitPrice, clamped.PerVisitPrice)
	assert.Equal(t, "1 bedroom, 1 bathroom", clamped.PropertySummary)
}

func TestCalculateQuoteExtras(t *testing.T) {
	quote := CalculateQuote(QuoteInput{
		Service:   ServiceBasic,
		Bedrooms:  2,
		Bathrooms: 1,
		Frequency: FrequencyWeekly,
		Oven:      OvenDouble,
		Extras:    []string{"fridge", "fridge", "not-a-real-extra"},
	})

	// 30 base + 25 double oven + 20 fridge, duplicate and unknown dropped
	assert.Equal(t, 75.0, quote.PerVisitPrice)
	assert.Len(t, quote.Addons, 2)
}

func TestCalculateQuoteBaseAlwaysMultipleOfFive(t *testing.T) {
	for _, service := range []Service{ServiceBasic, ServiceIntermediate, ServiceAdvanced, ServiceCommercial} {
		for _, freq := range []Frequency{FrequencyOneTime, FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly} {
			for beds := 1; beds <= 8; beds++ {
				for baths := 1; baths <= 4; baths++ {
					quote := CalculateQuote(QuoteInput{
						Service:   service,
						Bedrooms:  beds,
						Bathrooms: baths,
						Rooms:     beds * 3,
						Frequency: freq,
					})
					assert.GreaterOrEqual(t, quote.PerVisitPrice, 0.0)
					assert.Zero(t, math.Mod(quote.PerVisitPrice, 5),
						"%s/%s %d bed %d bath: %v", service, freq, beds, baths, quote.PerVisitPrice)
				}
			}
		}
	}
}

func TestCommercialTiers(t *testing.T) {
	assert.Equal(t, 90.0, getCommercialBase(3))
	assert.Equal(t, 140.0, getCommercialBase(7))
	assert.Equal(t, 200.0, getCommercialBase(12))
	assert.Equal(t, 260.0, getCommercialBase(20))
	assert.Equal(t, 320.0+12*5, getCommercialBase(25))
}

func TestIntermediatePiggybacksOnBasic(t *testing.T) {
	for beds := 1; beds <= 6; beds++ {
		assert.Equal(t, Round5(getBasicBase(beds)*1.25), getIntermediateBase(beds))
	}
}
