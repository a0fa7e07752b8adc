package repositories

import (
	"database/sql"
	"testing"

	"backend/internal/domain"
	"backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var reportCols = []string{
	"id", "id_zp", "cislo_zp", "int_adr", "je_vedouci",
	"data_a", "data_b", "calculation", "state",
	"date_send", "date_created", "date_updated",
}

func TestReportUpsertInsertsWhenMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id FROM zp_reports").
		WithArgs(int64(7), int64(100)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO zp_reports").
		WillReturnResult(sqlmock.NewResult(5, 1))

	repo := ReportRepository{DB: db}
	saved, err := repo.Upsert(models.Report{
		AssignmentID: 7,
		AssignmentNo: "ZP-2025-007",
		UserID:       100,
		Status:       models.StatusDraft,
	})
	if err != nil {
		t.Fatalf("upsert error: %v", err)
	}
	if saved.ID != 5 {
		t.Fatalf("expected inserted id 5, got %d", saved.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReportUpsertUpdatesExistingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id FROM zp_reports").
		WithArgs(int64(7), int64(100)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectExec("UPDATE zp_reports").
		WillReturnResult(sqlmock.NewResult(3, 1))

	repo := ReportRepository{DB: db}
	saved, err := repo.Upsert(models.Report{AssignmentID: 7, UserID: 100, Status: models.StatusDraft})
	if err != nil {
		t.Fatalf("upsert error: %v", err)
	}
	if saved.ID != 3 {
		t.Fatalf("expected existing id 3, got %d", saved.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReportUpsertRejectsMissingKeys(t *testing.T) {
	repo := ReportRepository{DB: nil}
	if _, err := repo.Upsert(models.Report{}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFindByAssignmentAndUserDecodesJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	dataA := `{"executionDate":"2025-06-14","travelSegments":[{"id":"s1","transportType":"own-vehicle","kilometers":20}],"primaryDriver":"Alice"}`
	dataB := `{"routeComment":"repainted"}`
	calc := `{"total":612}`

	mock.ExpectQuery("FROM zp_reports WHERE id_zp").
		WithArgs(int64(7), int64(100)).
		WillReturnRows(sqlmock.NewRows(reportCols).
			AddRow(3, 7, "ZP-2025-007", 100, 1, dataA, dataB, calc, "draft", "", "2025-06-01 10:00:00", "2025-06-02 11:00:00"))

	repo := ReportRepository{DB: db}
	rep, err := repo.FindByAssignmentAndUser(7, 100)
	if err != nil {
		t.Fatalf("find error: %v", err)
	}
	if rep.DataA.PrimaryDriver != "Alice" || len(rep.DataA.TravelSegments) != 1 {
		t.Fatalf("part A not decoded: %+v", rep.DataA)
	}
	if rep.DataB.RouteComment != "repainted" {
		t.Fatalf("part B not decoded: %+v", rep.DataB)
	}
	if rep.Calculation == nil || rep.Calculation.Total != 612 {
		t.Fatalf("calculation not decoded: %+v", rep.Calculation)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindByAssignmentAndUserNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM zp_reports WHERE id_zp").
		WithArgs(int64(7), int64(100)).
		WillReturnError(sql.ErrNoRows)

	repo := ReportRepository{DB: db}
	if _, err := repo.FindByAssignmentAndUser(7, 100); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestFindToleratesMalformedStoredJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM zp_reports WHERE id_zp").
		WithArgs(int64(7), int64(100)).
		WillReturnRows(sqlmock.NewRows(reportCols).
			AddRow(3, 7, "", 100, 0, "{broken", "also broken", "nope", "", "", "", ""))

	repo := ReportRepository{DB: db}
	rep, err := repo.FindByAssignmentAndUser(7, 100)
	if err != nil {
		t.Fatalf("malformed stored JSON must not fail the load: %v", err)
	}
	if rep.Status != models.StatusDraft {
		t.Fatalf("empty state should read as draft, got %q", rep.Status)
	}
	if rep.Calculation != nil {
		t.Fatalf("unreadable calculation should load as nil")
	}
}

func TestUpdateStateStampsSendDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE zp_reports SET state=.+, date_send=NOW").
		WithArgs(models.StatusSubmitted, int64(3)).
		WillReturnResult(sqlmock.NewResult(3, 1))

	repo := ReportRepository{DB: db}
	if err := repo.UpdateState(3, models.StatusSubmitted, true); err != nil {
		t.Fatalf("update state error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
