package services

import (
	"testing"

	"backend/internal/domain/models"
	"backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var priceCols = []string{"category", "item_type", "description", "price", "unit", "valid_from", "valid_to"}

func TestGetForDateNewestRowWins(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// rows arrive newest valid_from first; the older own-vehicle rate must lose
	mock.ExpectQuery("FROM price_list_items").
		WithArgs("2025-06-14", "2025-06-14").
		WillReturnRows(sqlmock.NewRows(priceCols).
			AddRow("transport", models.TransportOwnVehicle, "per km", 7.0, "km", "2025-01-01", "").
			AddRow("transport", models.TransportOwnVehicle, "per km", 6.6, "km", "2024-01-01", "").
			AddRow("work", "hourly_rate", "marking work", 150.0, "h", "2025-01-01", "").
			AddRow("other", "lodging_cap", "per night cap", 800.0, "night", "2025-01-01", ""))

	svc := PriceListService{Repo: repositories.PriceListRepository{DB: db}}
	list, err := svc.GetForDate("2025-06-14")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}

	if len(list.Transport) != 1 || list.Transport[0].Price != 7.0 {
		t.Fatalf("newest transport rate must win, got %+v", list.Transport)
	}
	if list.HourlyRate() != 150 {
		t.Fatalf("hourly rate: want 150, got %v", list.HourlyRate())
	}
	if len(list.Other) != 1 || list.Other[0].Type != "lodging_cap" {
		t.Fatalf("unknown categories land in Other, got %+v", list.Other)
	}
}

func TestGetForDateEmptyTableFallsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM price_list_items").
		WithArgs("2025-06-14", "2025-06-14").
		WillReturnRows(sqlmock.NewRows(priceCols))

	svc := PriceListService{Repo: repositories.PriceListRepository{DB: db}}
	list, err := svc.GetForDate("2025-06-14")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}

	if list.TransportRate(models.TransportOwnVehicle) != models.FallbackKmRate {
		t.Fatalf("empty list must fall back to %v", models.FallbackKmRate)
	}
	if list.HourlyRate() != models.FallbackHourlyRate {
		t.Fatalf("empty list must fall back to %v", models.FallbackHourlyRate)
	}
}
