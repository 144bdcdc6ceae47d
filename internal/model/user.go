package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleUnassigned Role = "U"
	RoleIntern     Role = "I"
	RoleSupervisor Role = "S"
	RoleSuperAdmin Role = "SU"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Slug         string     `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	FullName     string     `gorm:"size:255;not null" json:"full_name"`
	Phone        *string    `gorm:"size:20;uniqueIndex" json:"phone"`
	Email        *string    `gorm:"size:100;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Gender       string     `gorm:"size:1;default:M" json:"gender"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	ProfilePic   *string    `gorm:"size:500" json:"profile_pic,omitempty"`
	Role         Role       `gorm:"size:2;default:U" json:"role"`
	JoinedDate   time.Time  `gorm:"autoCreateTime" json:"joined_date"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	IsBlocked    bool       `gorm:"default:false" json:"is_blocked"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// InternProfile holds the role-specific fields of an intern, exactly one
// per user.
type InternProfile struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	UserID                uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User                  User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ContactDetails        string    `gorm:"size:100" json:"contact_details"`
	EducationalBackground string    `gorm:"type:text" json:"educational_background"`
	WorkExperience        string    `gorm:"type:text" json:"work_experience"`
}

// SupervisorProfile mirrors InternProfile for the supervisor role.
type SupervisorProfile struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	UserID                uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User                  User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ContactDetails        string    `gorm:"size:100" json:"contact_details"`
	EducationalBackground string    `gorm:"type:text" json:"educational_background"`
	WorkExperience        string    `gorm:"type:text" json:"work_experience"`
}
