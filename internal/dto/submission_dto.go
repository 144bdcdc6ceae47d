package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitTaskRequest struct {
	Task string `json:"task"`
}

// ReviewSubmissionRequest is a partial update; nil fields are untouched.
type ReviewSubmissionRequest struct {
	IsApproved *bool   `json:"is_approved"`
	Remarks    *string `json:"remarks"`
	Score      *int    `json:"score"`
}

type SubmissionResponse struct {
	ID             uuid.UUID  `json:"id"`
	Task           uuid.UUID  `json:"task"`
	Creator        uuid.UUID  `json:"creator"`
	SubmissionDate time.Time  `json:"submission_date"`
	IsApproved     bool       `json:"is_approved"`
	Remarks        *string    `json:"remarks"`
	Score          int        `json:"score"`
	Modifier       *uuid.UUID `json:"modifier,omitempty"`
}
