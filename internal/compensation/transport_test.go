package compensation

import (
	"math"
	"testing"

	"backend/internal/domain/models"
)

var testPrices = models.PriceList{
	Transport: []models.PriceItem{
		{Type: models.TransportOwnVehicle, Price: 6.6, Unit: "km"},
		{Type: models.TransportEmployerVehicle, Price: 5.2, Unit: "km"},
	},
	Work: []models.PriceItem{
		{Type: "hourly_rate", Price: 120, Unit: "h"},
	},
}

func TestTransportCostsVehicleModes(t *testing.T) {
	segs := []models.TravelSegment{
		{TransportType: models.TransportOwnVehicle, Kilometers: 20},
		{TransportType: models.TransportEmployerVehicle, Kilometers: 10},
	}
	got := TransportCosts(segs, testPrices)
	want := 20*6.6 + 10*5.2
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTransportCostsFallbackRate(t *testing.T) {
	segs := []models.TravelSegment{
		{TransportType: models.TransportEmployerHigher, Kilometers: 10},
	}
	// no price row for the higher rate mode -> constant fallback
	got := TransportCosts(segs, testPrices)
	if math.Abs(got-66) > 1e-9 {
		t.Fatalf("expected fallback 6.6/km = 66, got %v", got)
	}
}

func TestTransportCostsPublicTransitUsesTickets(t *testing.T) {
	segs := []models.TravelSegment{
		{TransportType: models.TransportPublicTransit, TicketCosts: 150, Kilometers: 999},
	}
	if got := TransportCosts(segs, testPrices); got != 150 {
		t.Fatalf("public transit must pass ticket costs through, got %v", got)
	}
}

func TestTransportCostsFreeModes(t *testing.T) {
	segs := []models.TravelSegment{
		{TransportType: models.TransportOnFoot, Kilometers: 12},
		{TransportType: models.TransportBicycle, Kilometers: 30},
	}
	if got := TransportCosts(segs, testPrices); got != 0 {
		t.Fatalf("on-foot and bicycle must be free, got %v", got)
	}
}

func TestTransportCostsSkipsSegmentsWithoutMode(t *testing.T) {
	segs := []models.TravelSegment{
		{TransportType: "", Kilometers: 50, TicketCosts: 100},
		{TransportType: models.TransportOwnVehicle, Kilometers: 5},
	}
	got := TransportCosts(segs, testPrices)
	if math.Abs(got-33) > 1e-9 {
		t.Fatalf("segment without mode must cost 0, got total %v", got)
	}
}

func TestAncillaryTotalsAttribution(t *testing.T) {
	accs := []models.Accommodation{
		{Amount: 500, PaidByMember: 1},
		{Amount: 300, PaidByMember: 2},
	}
	exps := []models.AdditionalExpense{
		{Amount: 80, PaidByMember: 1},
		{Amount: 40, PaidByMember: 1},
	}

	sums := AncillaryTotals(accs, exps)
	if sums.AccommodationTotal != 800 {
		t.Fatalf("accommodation total wrong: %v", sums.AccommodationTotal)
	}
	if sums.ExpenseTotal != 120 {
		t.Fatalf("expense total wrong: %v", sums.ExpenseTotal)
	}
	if sums.AccommodationBy[1] != 500 || sums.AccommodationBy[2] != 300 {
		t.Fatalf("accommodation attribution wrong: %v", sums.AccommodationBy)
	}
	if sums.ExpensesBy[1] != 120 || sums.ExpensesBy[2] != 0 {
		t.Fatalf("expense attribution wrong: %v", sums.ExpensesBy)
	}
}
