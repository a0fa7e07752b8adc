package services

import (
	"fmt"
	"strconv"
	"strings"

	"backend/internal/compensation"
	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"

	"github.com/google/uuid"
)

// ReportInput is the client payload for a draft save. Completion flags and
// the calculation are never accepted from the client; they are derived here.
type ReportInput struct {
	DataA models.PartAData `json:"dataA"`
	DataB models.PartBData `json:"dataB"`
}

// ReportService drives the report lifecycle: draft upsert with derived
// completion flags and stored calculation, the submission gate, and the
// review-side approve/reject transitions.
type ReportService struct {
	Reports     repositories.ReportRepository
	Assignments repositories.AssignmentRepository
	PriceSvc    PriceListService
	RequestID   string

	// Loader overrides for tests; nil means use the repositories.
	FetchAssignment func(id int64) (models.Assignment, error)
	FetchPriceList  func(date string) (models.PriceList, error)
}

func (s ReportService) assignment(id int64) (models.Assignment, error) {
	if s.FetchAssignment != nil {
		return s.FetchAssignment(id)
	}
	return s.Assignments.GetByID(id)
}

func (s ReportService) priceList(date string) (models.PriceList, error) {
	if s.FetchPriceList != nil {
		return s.FetchPriceList(date)
	}
	return s.PriceSvc.GetForDate(date)
}

// Get loads the caller's report for an assignment. Completion flags are not
// stored; they are derived on every read.
func (s ReportService) Get(assignmentID, userID int64) (models.Report, error) {
	asg, err := s.userAssignment(assignmentID, userID)
	if err != nil {
		return models.Report{}, err
	}
	rep, err := s.Reports.FindByAssignmentAndUser(assignmentID, userID)
	if err != nil {
		return models.Report{}, err
	}
	c := compensation.EvaluateCompletion(rep, asg)
	rep.PartACompleted = c.PartA
	rep.PartBCompleted = c.PartB
	return rep, nil
}

// SaveDraft upserts the caller's report. Each save revalidates the payload,
// rederives both completion flags and recomputes the stored calculation, so
// persisted state can never disagree with the data it was derived from.
func (s ReportService) SaveDraft(assignmentID, userID int64, input ReportInput) (models.Report, error) {
	asg, err := s.userAssignment(assignmentID, userID)
	if err != nil {
		return models.Report{}, err
	}

	existing, err := s.Reports.FindByAssignmentAndUser(assignmentID, userID)
	switch {
	case err == nil:
		if !existing.Editable() {
			return models.Report{}, domain.ConflictError{Resource: "report", Msg: "already submitted"}
		}
	case domain.IsNotFound(err):
		// first save creates the row
	default:
		return models.Report{}, err
	}

	if err := normalizeInput(&input); err != nil {
		return models.Report{}, err
	}
	if err := validateInput(&input, asg); err != nil {
		return models.Report{}, err
	}
	assignLineItemIDs(&input.DataA)

	rep := models.Report{
		ID:           existing.ID,
		AssignmentID: assignmentID,
		AssignmentNo: asg.Number,
		UserID:       userID,
		Leader:       asg.IsLeader(userID),
		DataA:        input.DataA,
		DataB:        input.DataB,
		Status:       models.StatusDraft,
	}

	c := compensation.EvaluateCompletion(rep, asg)
	rep.PartACompleted = c.PartA
	rep.PartBCompleted = c.PartB

	prices, err := s.priceList(rep.DataA.ExecutionDate)
	if err != nil {
		return models.Report{}, fmt.Errorf("load price list: %w", err)
	}
	calc, err := compensation.ComputeBreakdown(rep, asg, prices)
	if err != nil {
		return models.Report{}, err
	}
	rep.Calculation = &calc

	saved, err := s.Reports.Upsert(rep)
	if err != nil {
		return models.Report{}, err
	}
	saved.PartACompleted = rep.PartACompleted
	saved.PartBCompleted = rep.PartBCompleted
	saved.Calculation = rep.Calculation

	utils.LogEvent(s.RequestID, "report", "save",
		"assignment="+strconv.FormatInt(assignmentID, 10)+
			" user="+strconv.FormatInt(userID, 10)+
			" total="+utils.FormatCzk(calc.Total))
	return saved, nil
}

// Submit runs the gate and, when both parts are complete, moves the report
// out of draft for good. An incomplete report is a typed rejection, not an
// error.
func (s ReportService) Submit(assignmentID, userID int64) (compensation.SubmitResult, models.Report, error) {
	asg, err := s.userAssignment(assignmentID, userID)
	if err != nil {
		return compensation.SubmitResult{}, models.Report{}, err
	}

	rep, err := s.Reports.FindByAssignmentAndUser(assignmentID, userID)
	if err != nil {
		return compensation.SubmitResult{}, models.Report{}, err
	}
	if !rep.Editable() {
		return compensation.SubmitResult{}, models.Report{},
			domain.ConflictError{Resource: "report", Msg: "already submitted"}
	}

	res := compensation.TrySubmit(rep, asg)
	if !res.OK {
		utils.LogEvent(s.RequestID, "report", "submit", "rejected: "+res.Reason)
		return res, rep, nil
	}

	if err := s.Reports.UpdateState(rep.ID, models.StatusSubmitted, true); err != nil {
		return compensation.SubmitResult{}, models.Report{}, err
	}
	rep.Status = models.StatusSubmitted

	utils.LogEvent(s.RequestID, "report", "submit",
		"assignment="+strconv.FormatInt(assignmentID, 10)+" user="+strconv.FormatInt(userID, 10))
	return res, rep, nil
}

// Review applies the reviewer decision to a submitted report.
func (s ReportService) Review(reportID int64, approve bool) (models.Report, error) {
	rep, err := s.Reports.GetByID(reportID)
	if err != nil {
		return models.Report{}, err
	}
	if rep.Status != models.StatusSubmitted {
		return models.Report{}, domain.ConflictError{Resource: "report", Msg: "not awaiting review"}
	}

	state := models.StatusRejected
	if approve {
		state = models.StatusApproved
	}
	if err := s.Reports.UpdateState(rep.ID, state, false); err != nil {
		return models.Report{}, err
	}
	rep.Status = state

	utils.LogEvent(s.RequestID, "report", "review",
		"report="+strconv.FormatInt(reportID, 10)+" state="+state)
	return rep, nil
}

func (s ReportService) userAssignment(assignmentID, userID int64) (models.Assignment, error) {
	asg, err := s.assignment(assignmentID)
	if err != nil {
		return models.Assignment{}, err
	}
	if !asg.HasUser(userID) {
		return models.Assignment{}, domain.PermissionError{Resource: "assignment"}
	}
	return asg, nil
}

// normalizeInput cleans up free-text fields and canonicalizes the execution
// date before anything is derived from it.
func normalizeInput(input *ReportInput) error {
	input.DataA.PrimaryDriver = utils.NormalizeSpace(input.DataA.PrimaryDriver)
	input.DataA.VehicleRegistration = utils.TrimOrEmpty(input.DataA.VehicleRegistration)

	if d := utils.TrimOrEmpty(input.DataA.ExecutionDate); d != "" {
		t, err := utils.ParseDate(d)
		if err != nil {
			return domain.ValidationError{Field: "executionDate", Msg: "expected YYYY-MM-DD"}
		}
		input.DataA.ExecutionDate = utils.FormatDate(t)
	} else {
		input.DataA.ExecutionDate = ""
	}
	return nil
}

func validateInput(input *ReportInput, asg models.Assignment) error {
	for i, acc := range input.DataA.Accommodations {
		if acc.Amount < 0 {
			return domain.ValidationError{Field: "accommodations", Msg: "amount must not be negative"}
		}
		if _, ok := asg.MemberByIndex(acc.PaidByMember); !ok {
			return domain.ValidationError{
				Field: "accommodations",
				Msg:   fmt.Sprintf("item %d paid by unknown member %d", i+1, acc.PaidByMember),
			}
		}
	}
	for i, exp := range input.DataA.AdditionalExpenses {
		if exp.Amount < 0 {
			return domain.ValidationError{Field: "additionalExpenses", Msg: "amount must not be negative"}
		}
		if _, ok := asg.MemberByIndex(exp.PaidByMember); !ok {
			return domain.ValidationError{
				Field: "additionalExpenses",
				Msg:   fmt.Sprintf("item %d paid by unknown member %d", i+1, exp.PaidByMember),
			}
		}
	}
	return nil
}

// assignLineItemIDs gives ids to line items the client created without one.
// Ids only need to be unique within a single report.
func assignLineItemIDs(a *models.PartAData) {
	for i := range a.TravelSegments {
		if strings.TrimSpace(a.TravelSegments[i].ID) == "" {
			a.TravelSegments[i].ID = uuid.New().String()
		}
	}
	for i := range a.Accommodations {
		if strings.TrimSpace(a.Accommodations[i].ID) == "" {
			a.Accommodations[i].ID = uuid.New().String()
		}
	}
	for i := range a.AdditionalExpenses {
		if strings.TrimSpace(a.AdditionalExpenses[i].ID) == "" {
			a.AdditionalExpenses[i].ID = uuid.New().String()
		}
	}
}
