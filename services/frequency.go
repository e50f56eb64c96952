package services

// Frequency is the closed set of visit cadences. Business logic only ever
// compares against these keys; the human label is a boundary concern.
type Frequency string

const (
	FrequencyOneTime  Frequency = "one-time"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiWeekly Frequency = "bi-weekly"
	FrequencyMonthly  Frequency = "monthly"
)

// ParseFrequency maps a raw key to a Frequency, defaulting to one-time.
func ParseFrequency(s string) Frequency {
	switch Frequency(s) {
	case FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly:
		return Frequency(s)
	default:
		return FrequencyOneTime
	}
}

func (f Frequency) Label() string {
	switch f {
	case FrequencyWeekly:
		return "Weekly"
	case FrequencyBiWeekly:
		return "Bi-weekly"
	case FrequencyMonthly:
		return "Monthly"
	default:
		return "One-time"
	}
}

// Multiplier is applied to the base price before the global scale factor.
func (f Frequency) Multiplier() float64 {
	switch f {
	case FrequencyWeekly:
		return 1.0
	case FrequencyBiWeekly:
		return 1.1
	case FrequencyMonthly:
		return 1.2
	default:
		return 1.3
	}
}

// VisitsPerMonth reports how many visits a month of this cadence includes.
// The boolean is false for one-time bookings, which have no monthly estimate.
func (f Frequency) VisitsPerMonth() (int, bool) {
	switch f {
	case FrequencyWeekly:
		return 4, true
	case FrequencyBiWeekly:
		return 2, true
	case FrequencyMonthly:
		return 1, true
	default:
		return 0, false
	}
}

// SeriesCount is how many occurrences a new series is created with.
func (f Frequency) SeriesCount() int {
	switch f {
	case FrequencyWeekly:
		return 12
	case FrequencyBiWeekly:
		return 8
	case FrequencyMonthly:
		return 6
	default:
		return 1
	}
}

// ExtendCount is the batch size used when topping up an existing series.
func (f Frequency) ExtendCount() int {
	switch f {
	case FrequencyWeekly:
		return 12
	case FrequencyBiWeekly:
		return 8
	case FrequencyMonthly:
		return 6
	default:
		return 0
	}
}
