package domain

// ID is used across domain entities.
type ID int64

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID ID     `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}
