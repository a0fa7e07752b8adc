package compensation

import (
	"math"
	"testing"

	"backend/internal/domain"
	"backend/internal/domain/models"
)

func twoMemberAssignment() models.Assignment {
	return models.Assignment{
		ID:   7,
		Kind: models.KindNew,
		Members: []models.TeamMember{
			{Index: 1, UserID: 100, Name: "Alice", Leader: true},
			{Index: 2, UserID: 200, Name: "Bob"},
		},
	}
}

func drivingReport() models.Report {
	return models.Report{
		DataA: models.PartAData{
			ExecutionDate: "2025-06-14",
			TravelSegments: []models.TravelSegment{
				{
					ID:            "seg-1",
					Date:          "2025-06-14",
					StartTime:     "08:00",
					EndTime:       "12:00",
					TransportType: models.TransportOwnVehicle,
					Kilometers:    20,
				},
			},
			PrimaryDriver:       "Alice",
			VehicleRegistration: "1AB 2345",
		},
	}
}

func TestComputeBreakdownEvenSplit(t *testing.T) {
	calc, err := ComputeBreakdown(drivingReport(), twoMemberAssignment(), testPrices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(calc.TransportCosts-132) > 1e-9 {
		t.Fatalf("transport costs: want 132, got %v", calc.TransportCosts)
	}
	if calc.WorkHours != 4 {
		t.Fatalf("work hours: want 4, got %v", calc.WorkHours)
	}
	if math.Abs(calc.WorkCompensation-480) > 1e-9 {
		t.Fatalf("work compensation: want 480, got %v", calc.WorkCompensation)
	}
	if len(calc.Breakdown) != 2 {
		t.Fatalf("expected 2 breakdown entries, got %d", len(calc.Breakdown))
	}
	for _, entry := range calc.Breakdown {
		if math.Abs(entry.Total-306) > 1e-9 {
			t.Fatalf("member %d: want 306, got %v", entry.Member, entry.Total)
		}
	}
	if len(calc.FinalPayments) != 2 {
		t.Fatalf("expected 2 final payments, got %d", len(calc.FinalPayments))
	}
	for _, p := range calc.FinalPayments {
		if math.Abs(p.Amount-306) > 1e-9 {
			t.Fatalf("payee %d: want 306, got %v", p.Member, p.Amount)
		}
	}
}

func TestComputeBreakdownRedirect(t *testing.T) {
	report := drivingReport()
	report.DataA.PaymentRedirects = map[int]int{2: 1} // Bob pays out to Alice

	calc, err := ComputeBreakdown(report, twoMemberAssignment(), testPrices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(calc.FinalPayments) != 1 {
		t.Fatalf("expected a single payee after redirect, got %d", len(calc.FinalPayments))
	}
	p := calc.FinalPayments[0]
	if p.Member != 1 || p.Name != "Alice" {
		t.Fatalf("payee should be Alice (slot 1), got %+v", p)
	}
	if math.Abs(p.Amount-612) > 1e-9 {
		t.Fatalf("redirected payout: want 612, got %v", p.Amount)
	}

	var bob models.MemberCompensation
	for _, entry := range calc.Breakdown {
		if entry.Member == 2 {
			bob = entry
		}
	}
	if bob.RedirectedTo != 1 {
		t.Fatalf("Bob's entry must carry redirectedTo=1, got %d", bob.RedirectedTo)
	}
}

func TestComputeBreakdownConservation(t *testing.T) {
	report := drivingReport()
	report.DataA.Accommodations = []models.Accommodation{
		{Amount: 450, PaidByMember: 1, Attachments: []models.FileAttachment{attachment()}},
	}
	report.DataA.AdditionalExpenses = []models.AdditionalExpense{
		{Amount: 99.90, PaidByMember: 2, Attachments: []models.FileAttachment{attachment()}},
	}

	redirectVariants := []map[int]int{
		nil,
		{2: 1},
		{1: 2},
		{1: 2, 2: 1}, // swap, still conserves money
	}

	for _, redirects := range redirectVariants {
		report.DataA.PaymentRedirects = redirects
		calc, err := ComputeBreakdown(report, twoMemberAssignment(), testPrices)
		if err != nil {
			t.Fatalf("redirects %v: unexpected error: %v", redirects, err)
		}

		var paid float64
		for _, p := range calc.FinalPayments {
			paid += p.Amount
		}
		want := calc.TransportCosts + calc.WorkCompensation +
			calc.AccommodationCosts + calc.AdditionalExpenses
		if math.Abs(paid-want) > 1e-6 {
			t.Fatalf("redirects %v: money not conserved, paid %v want %v", redirects, paid, want)
		}
	}
}

func TestComputeBreakdownEmptyReport(t *testing.T) {
	calc, err := ComputeBreakdown(models.Report{}, twoMemberAssignment(), testPrices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calc.WorkHours != 0 || calc.TransportCosts != 0 || calc.Total != 0 {
		t.Fatalf("empty report must compute zero totals, got %+v", calc)
	}
}

func TestComputeBreakdownIdempotent(t *testing.T) {
	report := drivingReport()
	report.DataA.PaymentRedirects = map[int]int{2: 1}
	asg := twoMemberAssignment()

	first, err := ComputeBreakdown(report, asg, testPrices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ComputeBreakdown(report, asg, testPrices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.Breakdown) != len(second.Breakdown) || first.Total != second.Total {
		t.Fatalf("repeated computation differs: %+v vs %+v", first, second)
	}
	for i := range first.FinalPayments {
		if first.FinalPayments[i] != second.FinalPayments[i] {
			t.Fatalf("final payments differ at %d", i)
		}
	}
}

func TestComputeBreakdownRejectsInvalidRedirects(t *testing.T) {
	cases := []struct {
		name      string
		redirects map[int]int
	}{
		{"unknown payer", map[int]int{3: 1}},
		{"unknown payee", map[int]int{1: 3}},
		{"self redirect", map[int]int{1: 1}},
	}

	for _, tc := range cases {
		report := drivingReport()
		report.DataA.PaymentRedirects = tc.redirects
		_, err := ComputeBreakdown(report, twoMemberAssignment(), testPrices)
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if !domain.IsValidation(err) {
			t.Fatalf("%s: expected ValidationError, got %T", tc.name, err)
		}
	}
}

func TestComputeBreakdownNoMembers(t *testing.T) {
	asg := models.Assignment{ID: 9, Kind: models.KindNew}
	calc, err := ComputeBreakdown(drivingReport(), asg, testPrices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calc.Breakdown) != 0 || len(calc.FinalPayments) != 0 {
		t.Fatalf("no members should yield empty breakdown, got %+v", calc)
	}
	if math.Abs(calc.Total-612) > 1e-9 {
		t.Fatalf("totals still computed without members, got %v", calc.Total)
	}
}
