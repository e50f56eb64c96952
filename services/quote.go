package services

import (
	"fmt"
	"math"
)

// Service is the closed set of cleaning packages.
type Service string

const (
	ServiceBasic        Service = "basic"
	ServiceIntermediate Service = "intermediate"
	ServiceAdvanced     Service = "advanced"
	ServiceCommercial   Service = "commercial"
)

// ParseService maps a raw key to a Service, defaulting to basic.
func ParseService(s string) Service {
	switch Service(s) {
	case ServiceIntermediate, ServiceAdvanced, ServiceCommercial:
		return Service(s)
	default:
		return ServiceBasic
	}
}

func (s Service) Label() string {
	switch s {
	case ServiceIntermediate:
		return "Deep Clean"
	case ServiceAdvanced:
		return "End of Tenancy"
	case ServiceCommercial:
		return "Commercial Clean"
	default:
		return "Standard Clean"
	}
}

// Oven add-on tiers.
const (
	OvenNone   = "none"
	OvenSingle = "single"
	OvenDouble = "double"
)

const (
	ovenSinglePrice = 15.0
	ovenDoublePrice = 25.0
)

// Recurring prices are quoted at half the headline rate.
const globalScale = 0.5

// extraOption is a bookable add-on with a fixed price.
type extraOption struct {
	Label string
	Price float64
}

var extraOptions = map[string]extraOption{
	"fridge":    {Label: "Inside fridge", Price: 20},
	"windows":   {Label: "Interior windows", Price: 15},
	"cupboards": {Label: "Inside cupboards", Price: 20},
	"ironing":   {Label: "Ironing", Price: 15},
	"laundry":   {Label: "Laundry", Price: 10},
	"balcony":   {Label: "Balcony or patio", Price: 10},
	"carpet":    {Label: "Carpet shampoo", Price: 25},
}

// QuoteInput is a price request. Numeric fields are clamped to a minimum of
// one at calculation time, unknown extras are dropped silently.
type QuoteInput struct {
	Service      Service
	PropertyType string
	Bedrooms     int
	Bathrooms    int
	Rooms        int
	Frequency    Frequency
	Oven         string
	Extras       []string
}

// QuoteResult is the computed price breakdown. It is built fresh per
// calculation and never mutated afterwards; discounting helpers return new
// values instead of modifying it.
type QuoteResult struct {
	ServiceKey      Service   `json:"serviceKey"`
	ServiceLabel    string    `json:"serviceLabel"`
	FrequencyKey    Frequency `json:"frequencyKey"`
	FrequencyLabel  string    `json:"frequencyLabel"`
	PropertySummary string    `json:"propertySummary"`
	PerVisitPrice   float64   `json:"perVisitPrice"`
	MonthlyEstimate *float64  `json:"monthlyEstimate,omitempty"`
	PackageItems    []string  `json:"packageItems"`
	Addons          []string  `json:"addons"`
	PaymentSummary  string    `json:"paymentSummary"`
}

// Round5 rounds to the nearest 5 currency units. Pricing applies it at each
// designated step, not once at the end; the order changes results at tier
// boundaries.
func Round5(v float64) float64 {
	return math.Round(v/5) * 5
}

// NormalizeQuoteInput applies the documented input-clamping contract: counts
// floor at 1, extras are deduplicated and unknown ids dropped, advanced
// always books as one-time.
func NormalizeQuoteInput(in QuoteInput) QuoteInput {
	out := in
	out.Service = ParseService(string(in.Service))
	out.Frequency = ParseFrequency(string(in.Frequency))
	if out.Service == ServiceAdvanced {
		out.Frequency = FrequencyOneTime
	}
	if out.Bedrooms < 1 {
		out.Bedrooms = 1
	}
	if out.Bathrooms < 1 {
		out.Bathrooms = 1
	}
	if out.Rooms < 1 {
		out.Rooms = 1
	}
	switch out.Oven {
	case OvenSingle, OvenDouble:
	default:
		out.Oven = OvenNone
	}

	seen := make(map[string]bool, len(in.Extras))
	extras := make([]string, 0, len(in.Extras))
	for _, id := range in.Extras {
		if seen[id] {
			continue
		}
		if _, known := extraOptions[id]; !known {
			continue
		}
		seen[id] = true
		extras = append(extras, id)
	}
	out.Extras = extras
	return out
}

func getBasicBase(bedrooms int) float64 {
	switch {
	case bedrooms <= 1:
		return 50
	case bedrooms == 2:
		return 60
	case bedrooms == 3:
		return 75
	case bedrooms == 4:
		return 90
	case bedrooms == 5:
		return 105
	default:
		return 105 + 15*float64(bedrooms-5)
	}
}

// Intermediate piggybacks on the basic tier table at a 1.25 premium.
func getIntermediateBase(bedrooms int) float64 {
	return Round5(getBasicBase(bedrooms) * 1.25)
}

func getAdvancedBase(bedrooms int) float64 {
	switch {
	case bedrooms <= 1:
		return 180
	case bedrooms == 2:
		return 200
	case bedrooms == 3:
		return 220
	case bedrooms == 4:
		return 240
	case bedrooms == 5:
		return 260
	default:
		return 260 + 20*float64(bedrooms-5)
	}
}

func getCommercialBase(rooms int) float64 {
	switch {
	case rooms <= 3:
		return 90
	case rooms <= 7:
		return 140
	case rooms <= 12:
		return 200
	case rooms <= 20:
		return 260
	default:
		return 320 + 12*float64(rooms-20)
	}
}

// Per extra bathroom beyond the first.
func bathroomRate(service Service) float64 {
	switch service {
	case ServiceBasic:
		return 5
	case ServiceIntermediate:
		return 10
	case ServiceAdvanced:
		return 15
	default:
		return 0
	}
}

var packageItems = map[Service][]string{
	ServiceBasic: {
		"All rooms dusted and vacuumed",
		"Kitchen surfaces and sink cleaned",
		"Bathrooms scrubbed and sanitised",
		"Floors mopped throughout",
	},
	ServiceIntermediate: {
		"Everything in the standard clean",
		"Skirting boards and door frames wiped",
		"Under-furniture vacuuming",
		"Limescale removal in bathrooms",
	},
	ServiceAdvanced: {
		"Full top-to-bottom deep clean",
		"Inside all cupboards and wardrobes",
		"Oven, hob and extractor degreased",
		"Landlord checklist standard finish",
	},
	ServiceCommercial: {
		"Workspaces dusted and sanitised",
		"Communal kitchen and washrooms cleaned",
		"Hard floors mopped, carpets vacuumed",
		"Bins emptied and liners replaced",
	},
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// FormatPrice renders a price with the pound sign, dropping trailing zeros
// for whole amounts.
func FormatPrice(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("£%.0f", v)
	}
	return fmt.Sprintf("£%.2f", v)
}

// CalculateQuote derives a price breakdown from property and service
// attributes. Pure and deterministic: no I/O, no clock, never errors.
func CalculateQuote(input QuoteInput) QuoteResult {
	in := NormalizeQuoteInput(input)

	var base float64
	switch in.Service {
	case ServiceIntermediate:
		base = getIntermediateBase(in.Bedrooms)
	case ServiceAdvanced:
		base = getAdvancedBase(in.Bedrooms)
	case ServiceCommercial:
		base = getCommercialBase(in.Rooms)
	default:
		base = getBasicBase(in.Bedrooms)
	}

	bathroomAdd := bathroomRate(in.Service) * float64(in.Bathrooms-1)

	perVisit := Round5((base + bathroomAdd) * in.Frequency.Multiplier() * globalScale)

	addons := make([]string, 0, len(in.Extras)+1)
	addonTotal := 0.0
	switch in.Oven {
	case OvenSingle:
		addonTotal += ovenSinglePrice
		addons = append(addons, fmt.Sprintf("Single oven clean (%s)", FormatPrice(ovenSinglePrice)))
	case OvenDouble:
		addonTotal += ovenDoublePrice
		addons = append(addons, fmt.Sprintf("Double oven clean (%s)", FormatPrice(ovenDoublePrice)))
	}
	for _, id := range in.Extras {
		opt := extraOptions[id]
		addonTotal += opt.Price
		addons = append(addons, fmt.Sprintf("%s (%s)", opt.Label, FormatPrice(opt.Price)))
	}

	totalPerVisit := perVisit + addonTotal

	var monthly *float64
	if visits, ok := in.Frequency.VisitsPerMonth(); ok {
		m := totalPerVisit * float64(visits)
		monthly = &m
	}

	var summary string
	if in.Service == ServiceCommercial {
		summary = plural(in.Rooms, "room")
	} else {
		summary = fmt.Sprintf("%s, %s", plural(in.Bedrooms, "bedroom"), plural(in.Bathrooms, "bathroom"))
	}

	var payment string
	if in.Frequency == FrequencyOneTime {
		payment = fmt.Sprintf("One-time total of %s", FormatPrice(totalPerVisit))
	} else {
		payment = fmt.Sprintf("%s per visit, billed %s", FormatPrice(totalPerVisit), string(in.Frequency))
	}

	items := make([]string, len(packageItems[in.Service]))
	copy(items, packageItems[in.Service])

	return QuoteResult{
		ServiceKey:      in.Service,
		ServiceLabel:    in.Service.Label(),
		FrequencyKey:    in.Frequency,
		FrequencyLabel:  in.Frequency.Label(),
		PropertySummary: summary,
		PerVisitPrice:   totalPerVisit,
		MonthlyEstimate: monthly,
		PackageItems:    items,
		Addons:          addons,
		PaymentSummary:  payment,
	}
}
