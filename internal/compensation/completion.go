package compensation

import (
	"strings"

	"backend/internal/domain/models"
)

// Completion holds the derived readiness flags for both report parts.
// The flags are never user-settable; they are recomputed from the data.
type Completion struct {
	PartA bool `json:"partA"`
	PartB bool `json:"partB"`
}

// EvaluateCompletion derives both completion flags from the report contents.
//
// Part A is complete when vehicle segments have a named driver and a vehicle
// registration, every public-transit segment carries at least one ticket
// attachment, and every lodging/expense item carries at least one receipt.
//
// Part B depends on the assignment kind: renewal orders need at least one TIM
// condition entry, every other kind needs a non-blank route comment.
func EvaluateCompletion(report models.Report, assignment models.Assignment) Completion {
	return Completion{
		PartA: partAComplete(report.DataA),
		PartB: partBComplete(report.DataB, assignment.Kind),
	}
}

func partAComplete(a models.PartAData) bool {
	needsDriver := false
	for _, seg := range a.TravelSegments {
		if models.IsVehicleMode(seg.TransportType) {
			needsDriver = true
		}
		if seg.TransportType == models.TransportPublicTransit && len(seg.Attachments) == 0 {
			return false
		}
	}
	if needsDriver {
		if strings.TrimSpace(a.PrimaryDriver) == "" || strings.TrimSpace(a.VehicleRegistration) == "" {
			return false
		}
	}
	for _, acc := range a.Accommodations {
		if len(acc.Attachments) == 0 {
			return false
		}
	}
	for _, exp := range a.AdditionalExpenses {
		if len(exp.Attachments) == 0 {
			return false
		}
	}
	return true
}

func partBComplete(b models.PartBData, kind string) bool {
	if kind == models.KindRenewal {
		return len(b.TimReports) > 0
	}
	return strings.TrimSpace(b.RouteComment) != ""
}

// Submission gate reasons.
const (
	ReasonPartAIncomplete = "partA incomplete"
	ReasonPartBIncomplete = "partB incomplete"
)

// SubmitResult is the typed outcome of the submission gate. An incomplete
// report is a rejected transition, not an error.
type SubmitResult struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// TrySubmit checks whether the report may leave draft. Flags are derived
// fresh here; stored flags are ignored so stale data cannot open the gate.
func TrySubmit(report models.Report, assignment models.Assignment) SubmitResult {
	c := EvaluateCompletion(report, assignment)
	if !c.PartA {
		return SubmitResult{OK: false, Reason: ReasonPartAIncomplete}
	}
	if !c.PartB {
		return SubmitResult{OK: false, Reason: ReasonPartBIncomplete}
	}
	return SubmitResult{OK: true}
}
