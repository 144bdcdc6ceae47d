package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Role                  string `json:"role"`
	FullName              string `json:"full_name"`
	Phone                 string `json:"phone"`
	Email                 string `json:"email"`
	Password              string `json:"password"`
	Gender                string `json:"gender"`
	ProfilePic            string `json:"profile_pic"`
	DateOfBirth           string `json:"date_of_birth"`
	ContactDetails        string `json:"contact_details"`
	EducationalBackground string `json:"educational_background"`
	WorkExperience        string `json:"work_experience"`
}

// LoginRequest carries email-or-phone credentials. Pointers distinguish an
// absent field from an empty one.
type LoginRequest struct {
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password string  `json:"password"`
}

// ProfileDetails are the role-specific fields attached to a user
// representation, selected explicitly by the role code.
type ProfileDetails struct {
	ContactDetails        string `json:"contact_details"`
	EducationalBackground string `json:"educational_background"`
	WorkExperience        string `json:"work_experience"`
}

type UserResponse struct {
	ID          uuid.UUID       `json:"id"`
	Slug        string          `json:"slug"`
	Role        string          `json:"role"`
	FullName    string          `json:"full_name"`
	Phone       *string         `json:"phone"`
	Email       *string         `json:"email"`
	Gender      string          `json:"gender"`
	ProfilePic  *string         `json:"profile_pic"`
	DateOfBirth *string         `json:"date_of_birth"`
	JoinedDate  time.Time       `json:"joined_date"`
	Profile     *ProfileDetails `json:"profile,omitempty"`
}

type LoginResponse struct {
	UserResponse
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
