package models

import "strings"

// Assignment kinds as issued by the order system.
const (
	KindRenewal            = "renewal"
	KindNew                = "new"
	KindDirectionalSignage = "directional-signage"
)

// TeamMember occupies one of up to three slots on an assignment.
type TeamMember struct {
	Index  int    `json:"index"` // slot 1-3
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Leader bool   `json:"leader"`
}

// Assignment is a read-only work order mirrored from the order system.
type Assignment struct {
	ID            int64        `json:"id"`
	Number        string       `json:"number"`
	Kind          string       `json:"kind"`
	HigherKmRate  bool         `json:"higherKmRate"`
	ExpectedHours float64      `json:"expectedHours"`
	Members       []TeamMember `json:"members"`
}

// ActiveMembers filters out empty slots.
func (a Assignment) ActiveMembers() []TeamMember {
	out := make([]TeamMember, 0, len(a.Members))
	for _, m := range a.Members {
		if strings.TrimSpace(m.Name) != "" {
			out = append(out, m)
		}
	}
	return out
}

// MemberByIndex finds an occupied slot; ok is false for empty or unknown slots.
func (a Assignment) MemberByIndex(idx int) (TeamMember, bool) {
	for _, m := range a.ActiveMembers() {
		if m.Index == idx {
			return m, true
		}
	}
	return TeamMember{}, false
}

// HasUser reports whether the given user occupies any slot.
func (a Assignment) HasUser(userID int64) bool {
	for _, m := range a.ActiveMembers() {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// IsLeader reports whether the given user occupies a leader slot.
func (a Assignment) IsLeader(userID int64) bool {
	for _, m := range a.ActiveMembers() {
		if m.UserID == userID && m.Leader {
			return true
		}
	}
	return false
}
