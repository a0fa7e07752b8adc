package models

// MemberCompensation is one member's share of the computed compensation.
type MemberCompensation struct {
	Member             int     `json:"member"` // slot 1-3
	Name               string  `json:"name"`
	TransportCosts     float64 `json:"transportCosts"`
	WorkCompensation   float64 `json:"workCompensation"`
	AccommodationCosts float64 `json:"accommodationCosts"`
	AdditionalExpenses float64 `json:"additionalExpenses"`
	Total              float64 `json:"total"`
	RedirectedTo       int     `json:"redirectedTo,omitempty"` // 0 = pays self
}

// FinalPayment is an aggregated payout to one resolved payee after redirects.
type FinalPayment struct {
	Member int     `json:"member"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// CompensationCalculation is the derived financial breakdown for a report.
// It is recomputed on every save and never hand-edited.
type CompensationCalculation struct {
	WorkHours          float64              `json:"workHours"`
	TransportCosts     float64              `json:"transportCosts"`
	WorkCompensation   float64              `json:"workCompensation"`
	AccommodationCosts float64              `json:"accommodationCosts"`
	AdditionalExpenses float64              `json:"additionalExpenses"`
	Total              float64              `json:"total"`
	Breakdown          []MemberCompensation `json:"breakdown"`
	FinalPayments      []FinalPayment       `json:"finalPayments"`
}
