package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusDraft  TaskStatus = "D"
	TaskStatusOpen   TaskStatus = "O"
	TaskStatusClosed TaskStatus = "C"
)

// ValidTaskStatus reports whether code is one of the three status codes.
func ValidTaskStatus(code string) bool {
	switch TaskStatus(code) {
	case TaskStatusDraft, TaskStatusOpen, TaskStatusClosed:
		return true
	}
	return false
}

type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"size:100;uniqueIndex;not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Deadline    time.Time  `gorm:"not null" json:"deadline"`
	Status      TaskStatus `gorm:"size:1;default:D" json:"status"`
	CreatorID   uuid.UUID  `gorm:"type:uuid;not null" json:"creator"`
	Creator     User       `gorm:"foreignKey:CreatorID" json:"-"`
	// Contributors may only ever grow, and only with intern users.
	Contributors []User     `gorm:"many2many:task_contributors" json:"-"`
	ModifierID   *uuid.UUID `gorm:"type:uuid" json:"modifier,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// HasContributor reports whether userID is in the loaded contributor set.
func (t *Task) HasContributor(userID uuid.UUID) bool {
	for _, c := range t.Contributors {
		if c.ID == userID {
			return true
		}
	}
	return false
}

type SubmittedTask struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TaskID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_submission_task_creator" json:"task"`
	Task           Task       `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
	CreatorID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_submission_task_creator" json:"creator"`
	Creator        User       `gorm:"foreignKey:CreatorID" json:"-"`
	SubmissionDate time.Time  `gorm:"autoCreateTime" json:"submission_date"`
	IsApproved     bool       `gorm:"default:false" json:"is_approved"`
	Remarks        *string    `gorm:"type:text" json:"remarks"`
	Score          int        `gorm:"default:0;check:score >= 0 AND score <= 10" json:"score"`
	ModifierID     *uuid.UUID `gorm:"type:uuid" json:"modifier,omitempty"`
}

func (s *SubmittedTask) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
