package compensation

import (
	"fmt"
	"sort"

	"backend/internal/domain"
	"backend/internal/domain/models"
)

// ComputeBreakdown produces the full per-member compensation breakdown for a
// report. Pooled costs (transport, work) are split evenly across the active
// team members; lodging and additional expenses stay with whoever paid them.
// Payment redirects are then applied so the final-payments list groups member
// totals under the resolved payee. Redirection rearranges payouts; the summed
// amount never changes.
//
// A redirect map naming a nonexistent slot, or a member redirecting to
// themselves, rejects the whole computation with a validation error.
func ComputeBreakdown(report models.Report, assignment models.Assignment, prices models.PriceList) (models.CompensationCalculation, error) {
	if err := validateRedirects(report.DataA.PaymentRedirects, assignment); err != nil {
		return models.CompensationCalculation{}, err
	}

	hours := WorkHours(report.DataA.TravelSegments)
	transport := TransportCosts(report.DataA.TravelSegments, prices)
	work := hours * prices.HourlyRate()
	ancillary := AncillaryTotals(report.DataA.Accommodations, report.DataA.AdditionalExpenses)

	calc := models.CompensationCalculation{
		WorkHours:          hours,
		TransportCosts:     transport,
		WorkCompensation:   work,
		AccommodationCosts: ancillary.AccommodationTotal,
		AdditionalExpenses: ancillary.ExpenseTotal,
	}
	calc.Total = transport + work + ancillary.AccommodationTotal + ancillary.ExpenseTotal

	members := assignment.ActiveMembers()
	if len(members) == 0 {
		return calc, nil
	}

	share := float64(len(members))
	payouts := map[int]float64{}
	for _, m := range members {
		entry := models.MemberCompensation{
			Member:             m.Index,
			Name:               m.Name,
			TransportCosts:     transport / share,
			WorkCompensation:   work / share,
			AccommodationCosts: ancillary.AccommodationBy[m.Index],
			AdditionalExpenses: ancillary.ExpensesBy[m.Index],
		}
		entry.Total = entry.TransportCosts + entry.WorkCompensation +
			entry.AccommodationCosts + entry.AdditionalExpenses

		if target, ok := report.DataA.PaymentRedirects[m.Index]; ok {
			entry.RedirectedTo = target
			payouts[target] += entry.Total
		} else {
			payouts[m.Index] += entry.Total
		}
		calc.Breakdown = append(calc.Breakdown, entry)
	}

	payees := make([]int, 0, len(payouts))
	for idx := range payouts {
		payees = append(payees, idx)
	}
	sort.Ints(payees)
	for _, idx := range payees {
		m, _ := assignment.MemberByIndex(idx)
		calc.FinalPayments = append(calc.FinalPayments, models.FinalPayment{
			Member: idx,
			Name:   m.Name,
			Amount: payouts[idx],
		})
	}
	return calc, nil
}

func validateRedirects(redirects map[int]int, assignment models.Assignment) error {
	for payer, payee := range redirects {
		if _, ok := assignment.MemberByIndex(payer); !ok {
			return domain.ValidationError{
				Field: "paymentRedirects",
				Msg:   fmt.Sprintf("member %d does not exist", payer),
			}
		}
		if _, ok := assignment.MemberByIndex(payee); !ok {
			return domain.ValidationError{
				Field: "paymentRedirects",
				Msg:   fmt.Sprintf("redirect target %d does not exist", payee),
			}
		}
		if payer == payee {
			return domain.ValidationError{
				Field: "paymentRedirects",
				Msg:   fmt.Sprintf("member %d cannot redirect to themselves", payer),
			}
		}
	}
	return nil
}
