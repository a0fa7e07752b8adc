package compensation

import "backend/internal/domain/models"

// AncillarySums aggregates lodging and additional-expense amounts, with a
// per-member-slot attribution of who paid what.
type AncillarySums struct {
	AccommodationTotal float64
	ExpenseTotal       float64
	AccommodationBy    map[int]float64
	ExpensesBy         map[int]float64
}

// AncillaryTotals sums accommodations and additional expenses. Amounts are
// attributed entirely to the recorded paying member, never split.
func AncillaryTotals(accommodations []models.Accommodation, expenses []models.AdditionalExpense) AncillarySums {
	sums := AncillarySums{
		AccommodationBy: map[int]float64{},
		ExpensesBy:      map[int]float64{},
	}
	for _, acc := range accommodations {
		sums.AccommodationTotal += acc.Amount
		sums.AccommodationBy[acc.PaidByMember] += acc.Amount
	}
	for _, exp := range expenses {
		sums.ExpenseTotal += exp.Amount
		sums.ExpensesBy[exp.PaidByMember] += exp.Amount
	}
	return sums
}
