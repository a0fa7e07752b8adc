package repositories

import (
	"database/sql"
	"fmt"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

// AssignmentRepository reads the assignments mirror of the order system.
// The table is read-only from this backend's point of view.
type AssignmentRepository struct {
	DB *sql.DB
}

func (r AssignmentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const assignmentColumns = `
		id,
		COALESCE(number,''),
		COALESCE(kind,''),
		COALESCE(higher_km_rate,0),
		COALESCE(expected_hours,0),
		COALESCE(member1_name,''), COALESCE(member1_user_id,0), COALESCE(member1_leader,0),
		COALESCE(member2_name,''), COALESCE(member2_user_id,0), COALESCE(member2_leader,0),
		COALESCE(member3_name,''), COALESCE(member3_user_id,0), COALESCE(member3_leader,0)`

func scanAssignment(row interface{ Scan(dest ...any) error }) (models.Assignment, error) {
	var a models.Assignment
	var names [3]string
	var userIDs [3]int64
	var leaders [3]bool

	err := row.Scan(
		&a.ID,
		&a.Number,
		&a.Kind,
		&a.HigherKmRate,
		&a.ExpectedHours,
		&names[0], &userIDs[0], &leaders[0],
		&names[1], &userIDs[1], &leaders[1],
		&names[2], &userIDs[2], &leaders[2],
	)
	if err != nil {
		return models.Assignment{}, err
	}

	for i := 0; i < 3; i++ {
		a.Members = append(a.Members, models.TeamMember{
			Index:  i + 1,
			Name:   names[i],
			UserID: userIDs[i],
			Leader: leaders[i],
		})
	}
	return a, nil
}

// GetByID fetches one assignment by primary key.
func (r AssignmentRepository) GetByID(id int64) (models.Assignment, error) {
	if id <= 0 {
		return models.Assignment{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}

	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id=? LIMIT 1`
	a, err := scanAssignment(r.db().QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Assignment{}, domain.NotFoundError{Resource: "assignment", Err: err}
		}
		return models.Assignment{}, fmt.Errorf("get assignment: %w", err)
	}
	return a, nil
}

// ListForUser returns assignments where the user occupies any member slot,
// newest first.
func (r AssignmentRepository) ListForUser(userID int64) ([]models.Assignment, error) {
	query := `SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE member1_user_id=? OR member2_user_id=? OR member3_user_id=?
		ORDER BY id DESC`

	rows, err := r.db().Query(query, userID, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	out := []models.Assignment{}
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
