package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"

	intconfig "backend/internal/config"
	intdb "backend/internal/db"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

// ReportRepository persists reports in the zp_reports table. Part A, part B
// and the derived calculation are stored as JSON text columns; the column
// names follow the original reporting table.
type ReportRepository struct {
	DB *sql.DB
}

func (r ReportRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const reportColumns = `
		id,
		COALESCE(id_zp,0),
		COALESCE(cislo_zp,''),
		COALESCE(int_adr,0),
		COALESCE(je_vedouci,0),
		COALESCE(data_a,''),
		COALESCE(data_b,''),
		COALESCE(calculation,''),
		COALESCE(state,''),
		COALESCE(date_send,''),
		COALESCE(date_created,''),
		COALESCE(date_updated,'')`

func scanReport(row interface{ Scan(dest ...any) error }) (models.Report, error) {
	var rep models.Report
	var dataA, dataB, calc string

	err := row.Scan(
		&rep.ID,
		&rep.AssignmentID,
		&rep.AssignmentNo,
		&rep.UserID,
		&rep.Leader,
		&dataA,
		&dataB,
		&calc,
		&rep.Status,
		&rep.SubmittedAt,
		&rep.CreatedAt,
		&rep.UpdatedAt,
	)
	if err != nil {
		return models.Report{}, err
	}

	// tolerate malformed stored JSON: an unreadable section loads as empty
	if dataA != "" {
		_ = json.Unmarshal([]byte(dataA), &rep.DataA)
	}
	if dataB != "" {
		_ = json.Unmarshal([]byte(dataB), &rep.DataB)
	}
	if calc != "" {
		var c models.CompensationCalculation
		if json.Unmarshal([]byte(calc), &c) == nil {
			rep.Calculation = &c
		}
	}
	if rep.Status == "" {
		rep.Status = models.StatusDraft
	}
	return rep, nil
}

// FindByAssignmentAndUser loads the one report a user keeps per assignment.
func (r ReportRepository) FindByAssignmentAndUser(assignmentID, userID int64) (models.Report, error) {
	if assignmentID <= 0 || userID <= 0 {
		return models.Report{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}

	query := `SELECT ` + reportColumns + ` FROM zp_reports WHERE id_zp=? AND int_adr=? LIMIT 1`
	rep, err := scanReport(r.db().QueryRow(query, assignmentID, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Report{}, domain.NotFoundError{Resource: "report", Err: err}
		}
		return models.Report{}, fmt.Errorf("find report: %w", err)
	}
	return rep, nil
}

// GetByID loads a report by primary key (review side).
func (r ReportRepository) GetByID(id int64) (models.Report, error) {
	if id <= 0 {
		return models.Report{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}

	query := `SELECT ` + reportColumns + ` FROM zp_reports WHERE id=? LIMIT 1`
	rep, err := scanReport(r.db().QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Report{}, domain.NotFoundError{Resource: "report", Err: err}
		}
		return models.Report{}, fmt.Errorf("get report: %w", err)
	}
	return rep, nil
}

// ListByState returns reports in a given state, newest first (review side).
func (r ReportRepository) ListByState(state string) ([]models.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM zp_reports WHERE state=? ORDER BY id DESC`
	rows, err := r.db().Query(query, state)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	out := []models.Report{}
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

// Upsert inserts or updates the (assignment, user) report row and returns the
// stored record. The upsert is idempotent: repeated saves with the same
// payload leave one row.
func (r ReportRepository) Upsert(rep models.Report) (models.Report, error) {
	if rep.AssignmentID <= 0 || rep.UserID <= 0 {
		return models.Report{}, domain.ValidationError{Field: "report", Msg: "missing assignment or user"}
	}

	dataA, err := json.Marshal(rep.DataA)
	if err != nil {
		return models.Report{}, domain.InternalError{Msg: "encode part A", Err: err}
	}
	dataB, err := json.Marshal(rep.DataB)
	if err != nil {
		return models.Report{}, domain.InternalError{Msg: "encode part B", Err: err}
	}
	calc := ""
	if rep.Calculation != nil {
		raw, err := json.Marshal(rep.Calculation)
		if err != nil {
			return models.Report{}, domain.InternalError{Msg: "encode calculation", Err: err}
		}
		calc = string(raw)
	}

	db := r.db()
	var existingID int64
	err = db.QueryRow(`SELECT id FROM zp_reports WHERE id_zp=? AND int_adr=? LIMIT 1`,
		rep.AssignmentID, rep.UserID).Scan(&existingID)
	switch {
	case err == sql.ErrNoRows:
		res, err := db.Exec(`
			INSERT INTO zp_reports (id_zp, cislo_zp, int_adr, je_vedouci, data_a, data_b, calculation, state)
			VALUES (?,?,?,?,?,?,?,?)`,
			rep.AssignmentID, rep.AssignmentNo, rep.UserID, rep.Leader,
			string(dataA), string(dataB), intdb.NullIfEmpty(calc), rep.Status,
		)
		if err != nil {
			return models.Report{}, fmt.Errorf("insert report: %w", err)
		}
		rep.ID, _ = res.LastInsertId()
	case err != nil:
		return models.Report{}, fmt.Errorf("lookup report: %w", err)
	default:
		_, err := db.Exec(`
			UPDATE zp_reports
			SET cislo_zp=?, je_vedouci=?, data_a=?, data_b=?, calculation=?, state=?
			WHERE id=?`,
			rep.AssignmentNo, rep.Leader, string(dataA), string(dataB), intdb.NullIfEmpty(calc), rep.Status,
			existingID,
		)
		if err != nil {
			return models.Report{}, fmt.Errorf("update report: %w", err)
		}
		rep.ID = existingID
	}
	return rep, nil
}

// UpdateState moves a report to a new submission state. When stampSend is set
// the date_send column records the transition time.
func (r ReportRepository) UpdateState(id int64, state string, stampSend bool) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid id"}
	}

	var err error
	if stampSend {
		_, err = r.db().Exec(`UPDATE zp_reports SET state=?, date_send=NOW() WHERE id=?`, state, id)
	} else {
		_, err = r.db().Exec(`UPDATE zp_reports SET state=? WHERE id=?`, state, id)
	}
	if err != nil {
		return fmt.Errorf("update report state: %w", err)
	}
	return nil
}
