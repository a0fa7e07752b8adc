package services

import (
	"strconv"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"
)

// AssignmentService exposes the order-system mirror with the slot-based
// permission check applied.
type AssignmentService struct {
	Repo      repositories.AssignmentRepository
	RequestID string
}

// GetForUser loads one assignment; a user outside the member slots gets a
// permission error even when the assignment exists.
func (s AssignmentService) GetForUser(id, userID int64) (models.Assignment, error) {
	asg, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Assignment{}, err
	}
	if !asg.HasUser(userID) {
		utils.LogEvent(s.RequestID, "assignment", "get",
			"user "+strconv.FormatInt(userID, 10)+" not on assignment "+strconv.FormatInt(id, 10))
		return models.Assignment{}, domain.PermissionError{Resource: "assignment"}
	}
	return asg, nil
}

// ListForUser returns the caller's assignments.
func (s AssignmentService) ListForUser(userID int64) ([]models.Assignment, error) {
	return s.Repo.ListForUser(userID)
}
