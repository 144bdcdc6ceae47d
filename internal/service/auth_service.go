package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"anoa.com/internhub/internal/dto"
	"anoa.com/internhub/internal/model"
	"anoa.com/internhub/internal/repository"
	"anoa.com/internhub/pkg/apperror"
	"anoa.com/internhub/pkg/token"
	"anoa.com/internhub/pkg/validation"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	titleAccounts = "Accounts"
	titleLogin    = "Login"
)

type AuthService interface {
	Register(ctx context.Context, input dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, input dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	repo        repository.UserRepository
	tokens      *token.Provider
	rdb         *redis.Client
	phoneRegion string
	loginLimit  time.Duration
}

func NewAuthService(repo repository.UserRepository, tokens *token.Provider, rdb *redis.Client, phoneRegion string, loginLimit time.Duration) AuthService {
	return &authService{
		repo:        repo,
		tokens:      tokens,
		rdb:         rdb,
		phoneRegion: phoneRegion,
		loginLimit:  loginLimit,
	}
}

func (s *authService) Register(ctx context.Context, input dto.RegisterRequest) (*dto.UserResponse, error) {
	if input.FullName == "" {
		return nil, apperror.Unprocessable(titleAccounts, "FullName is a required field!")
	}

	if input.Password == "" {
		return nil, apperror.Unprocessable(titleAccounts, "Password is a required field!")
	}

	if !validation.IsStrongPassword(input.Password) {
		return nil, apperror.Unprocessable(titleAccounts, "Password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, one digit, and one special character!")
	}

	if input.ProfilePic != "" && !validation.IsURL(input.ProfilePic) {
		return nil, apperror.Unprocessable(titleAccounts, "Valid profile picture is required!")
	}

	if input.Phone == "" {
		return nil, apperror.Unprocessable(titleAccounts, "Phone is a required field!")
	}

	if input.Email == "" {
		return nil, apperror.Unprocessable(titleAccounts, "Email is a required field!")
	}

	if !validation.IsPhone(input.Phone, s.phoneRegion) {
		return nil, apperror.Unprocessable(titleAccounts, "Invalid phone number!")
	}

	if !validation.IsEmail(input.Email) {
		return nil, apperror.Unprocessable(titleAccounts, "Invalid email!")
	}

	if input.WorkExperience == "" {
		return nil, apperror.Unprocessable(titleAccounts, "Work experience is a required field!")
	}

	var dateOfBirth *time.Time
	if input.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", input.DateOfBirth)
		if err != nil {
			return nil, apperror.Unprocessable(titleAccounts, "Invalid date of birth!")
		}
		dateOfBirth = &parsed
	}

	role := model.Role(input.Role)
	switch role {
	case model.RoleUnassigned, model.RoleIntern, model.RoleSupervisor, model.RoleSuperAdmin:
	case "":
		role = model.RoleUnassigned
	default:
		return nil, apperror.Unprocessable(titleAccounts, "Invalid role. Only U, I, S and SU are acceptable.")
	}

	if taken, err := s.repo.ExistsByPhone(ctx, input.Phone); err != nil {
		return nil, err
	} else if taken {
		return nil, apperror.Unprocessable(titleAccounts, "Phone number already linked with another user!")
	}

	if taken, err := s.repo.ExistsByEmail(ctx, input.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, apperror.Unprocessable(titleAccounts, "Email already linked with another user!")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	gender := input.Gender
	if gender == "" {
		gender = "M"
	}

	phone := input.Phone
	email := input.Email
	user := &model.User{
		Slug:         s.generateUniqueSlug(ctx, input.FullName),
		FullName:     input.FullName,
		Phone:        &phone,
		Email:        &email,
		PasswordHash: string(hashed),
		Gender:       gender,
		DateOfBirth:  dateOfBirth,
		ProfilePic:   optional(input.ProfilePic),
		Role:         role,
		IsActive:     true,
	}

	// The intern profile is the historical default for non-intern roles
	// other than supervisor.
	var intern *model.InternProfile
	var supervisor *model.SupervisorProfile
	if role == model.RoleSupervisor {
		supervisor = &model.SupervisorProfile{
			ContactDetails:        input.ContactDetails,
			EducationalBackground: input.EducationalBackground,
			WorkExperience:        input.WorkExperience,
		}
	} else {
		intern = &model.InternProfile{
			ContactDetails:        input.ContactDetails,
			EducationalBackground: input.EducationalBackground,
			WorkExperience:        input.WorkExperience,
		}
	}

	if err := s.repo.Create(ctx, user, intern, supervisor); err != nil {
		return nil, err
	}

	res := s.buildUserResponse(ctx, user)
	return &res, nil
}

func (s *authService) Login(ctx context.Context, input dto.LoginRequest) (*dto.LoginResponse, error) {
	if input.Phone != nil && *input.Phone != "" && !validation.IsPhone(*input.Phone, s.phoneRegion) {
		return nil, apperror.Unprocessable(titleLogin, "Valid Phone is required!")
	}

	if input.Email != nil && *input.Email != "" && !validation.IsEmail(*input.Email) {
		return nil, apperror.Unprocessable(titleLogin, "Valid Email is required!")
	}

	if input.Password == "" {
		return nil, apperror.Unprocessable(titleLogin, "Password is a required field!")
	}

	identifier := ""
	var user *model.User
	var err error
	switch {
	case input.Email != nil && *input.Email != "":
		identifier = *input.Email
		user, err = s.repo.FindByEmail(ctx, identifier)
	case input.Phone != nil && *input.Phone != "":
		identifier = *input.Phone
		user, err = s.repo.FindByPhone(ctx, identifier)
	default:
		return nil, apperror.Unprocessable(titleLogin, "Email or Phone does not exist!")
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unprocessable(titleLogin, "Email or Phone does not exist!")
		}
		return nil, err
	}

	if s.loginLimit > 0 {
		allowed, err := CheckAndSetRateLimit(ctx, s.rdb, "login:"+identifier, s.loginLimit)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, apperror.Unprocessable(titleLogin, "Too many login attempts. Please try again later!")
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperror.Unprocessable(titleLogin, "Incorrect Password!")
	}

	// Blocked and inactive accounts reveal their state only after the
	// password has been verified.
	if user.IsBlocked {
		return nil, apperror.Unprocessable(titleLogin, "Account has been blocked!")
	}

	if !user.IsActive {
		return nil, apperror.Unprocessable(titleLogin, "Account is not activated yet!")
	}

	if s.loginLimit > 0 {
		_ = ClearRateLimit(ctx, s.rdb, "login:"+identifier)
	}

	pair, err := s.tokens.GeneratePair(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		UserResponse: s.buildUserResponse(ctx, user),
		Access:       pair.Access,
		Refresh:      pair.Refresh,
	}, nil
}

// buildUserResponse shapes the public representation; the role code alone
// decides which profile variant is attached.
func (s *authService) buildUserResponse(ctx context.Context, user *model.User) dto.UserResponse {
	res := dto.UserResponse{
		ID:         user.ID,
		Slug:       user.Slug,
		Role:       string(user.Role),
		FullName:   user.FullName,
		Phone:      user.Phone,
		Email:      user.Email,
		Gender:     user.Gender,
		ProfilePic: user.ProfilePic,
		JoinedDate: user.JoinedDate,
	}

	if user.DateOfBirth != nil {
		formatted := user.DateOfBirth.Format("2006-01-02")
		res.DateOfBirth = &formatted
	}

	switch user.Role {
	case model.RoleIntern:
		if profile, err := s.repo.InternProfile(ctx, user.ID); err == nil {
			res.Profile = &dto.ProfileDetails{
				ContactDetails:        profile.ContactDetails,
				EducationalBackground: profile.EducationalBackground,
				WorkExperience:        profile.WorkExperience,
			}
		}
	case model.RoleSupervisor:
		if profile, err := s.repo.SupervisorProfile(ctx, user.ID); err == nil {
			res.Profile = &dto.ProfileDetails{
				ContactDetails:        profile.ContactDetails,
				EducationalBackground: profile.EducationalBackground,
				WorkExperience:        profile.WorkExperience,
			}
		}
	}

	return res
}

var slugStripper = regexp.MustCompile(`[^a-z0-9 -]`)

// generateUniqueSlug derives the immutable URL label from the full name,
// falling back to a uuid fragment suffix on collision.
func (s *authService) generateUniqueSlug(ctx context.Context, fullName string) string {
	slug := strings.ToLower(fullName)
	slug = slugStripper.ReplaceAllString(slug, "")
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = uuid.New().String()[:8]
	}

	exists, err := s.repo.ExistsBySlug(ctx, slug)
	if err == nil && exists {
		slug = fmt.Sprintf("%s-%s", slug, uuid.New().String()[:8])
	}

	return slug
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
