package validation

import (
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
)

var validate = validator.New()

// IsEmail reports whether value is a syntactically valid email address.
func IsEmail(value string) bool {
	return validate.Var(value, "required,email") == nil
}

// IsURL reports whether value is a syntactically valid absolute URL.
func IsURL(value string) bool {
	return validate.Var(value, "required,url") == nil
}

// IsUUID reports whether value is a valid UUID string.
func IsUUID(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}

// IsPhone reports whether value is a valid phone number. Numbers without a
// country prefix are interpreted against the given default region.
func IsPhone(value, defaultRegion string) bool {
	num, err := phonenumbers.Parse(value, defaultRegion)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}

// IsStrongPassword enforces the account password policy: at least 8
// characters with one uppercase letter, one lowercase letter, one digit,
// and one special character.
func IsStrongPassword(value string) bool {
	if utf8.RuneCountInString(value) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSpecial
}
