package models

// Fallback rates applied when the price list has no matching row.
const (
	FallbackKmRate     = 6.6 // Kč per km, vehicle modes
	FallbackHourlyRate = 120 // Kč per hour of work
)

// PriceItem is one date-scoped rate row.
type PriceItem struct {
	Type        string  `json:"type"` // transport mode or "hourly_rate"
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	ValidFrom   string  `json:"validFrom"`
	ValidTo     string  `json:"validTo,omitempty"`
}

// PriceList is an immutable rate snapshot for one execution date.
type PriceList struct {
	Transport []PriceItem `json:"transport"`
	Work      []PriceItem `json:"work"`
	Other     []PriceItem `json:"other,omitempty"`
}

// TransportRate resolves the per-km rate for a vehicle mode, falling back to
// the constant when the list has no entry.
func (p PriceList) TransportRate(mode string) float64 {
	for _, item := range p.Transport {
		if item.Type == mode {
			return item.Price
		}
	}
	return FallbackKmRate
}

// HourlyRate resolves the work rate, falling back to the constant.
func (p PriceList) HourlyRate() float64 {
	for _, item := range p.Work {
		if item.Type == "hourly_rate" {
			return item.Price
		}
	}
	return FallbackHourlyRate
}
