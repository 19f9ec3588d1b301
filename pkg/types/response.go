package types

import "github.com/google/uuid"

type SuccessEnvelope struct {
	Data any `json:"data"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// InsertResult reports the identifier assigned to a newly stored record.
type InsertResult struct {
	Acknowledged bool      `json:"acknowledged"`
	InsertedID   uuid.UUID `json:"insertedId"`
}

// UpdateResult reports how many records matched the update filter. Rows whose values
// did not change are still counted.
type UpdateResult struct {
	Acknowledged bool  `json:"acknowledged"`
	MatchedCount int64 `json:"matchedCount"`
}

// DeleteResult reports how many records a delete removed.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// CountResult wraps a collection count.
type CountResult struct {
	Count int64 `json:"count"`
}
