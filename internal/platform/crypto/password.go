package crypto

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

var (
	ErrPasswordTooShort      = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong       = errors.New("password must be at most 72 bytes")
	ErrPasswordNoUpper       = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoLower       = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoNumber      = errors.New("password must contain at least one number")
	ErrPasswordNoSpecialChar = errors.New("password must contain at least one special character")
)

var (
	upperRE   = regexp.MustCompile(`[A-Z]`)
	lowerRE   = regexp.MustCompile(`[a-z]`)
	numberRE  = regexp.MustCompile(`[0-9]`)
	specialRE = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`)
)

// ValidatePasswordStrength returns the first rule password breaks. The 72 byte cap
// is bcrypt's input limit.
func ValidatePasswordStrength(password string) error {
	switch {
	case len(password) < 8:
		return ErrPasswordTooShort
	case len(password) > 72:
		return ErrPasswordTooLong
	case !upperRE.MatchString(password):
		return ErrPasswordNoUpper
	case !lowerRE.MatchString(password):
		return ErrPasswordNoLower
	case !numberRE.MatchString(password):
		return ErrPasswordNoNumber
	case !specialRE.MatchString(password):
		return ErrPasswordNoSpecialChar
	}
	return nil
}
