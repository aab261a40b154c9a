// Package validation centralizes input validation for the API surface.
// Struct-level rules run through go-playground/validator; a few formats the
// tag language cannot express cleanly (approval tokens, passwords) are
// checked directly.
package validation

import (
	"fmt"
	"regexp"
	"unicode"

	"campusconnect/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var (
	tokenRegex    = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,50}$`)
)

// Struct validates any tagged struct. The caller decides how much of the
// failure detail, if any, reaches the client.
func Struct(s any) error {
	return validate.Struct(s)
}

// ValidateToken checks that a string matches the canonical lowercase UUID
// shape used for approval tokens.
func ValidateToken(token string) error {
	if !tokenRegex.MatchString(token) {
		return fmt.Errorf("token does not match expected format")
	}
	return nil
}

// ValidateAction checks the approval decision action enum.
func ValidateAction(action string) error {
	if action != "approve" && action != "reject" {
		return fmt.Errorf("action must be approve or reject")
	}
	return nil
}

// ValidateItemType checks the approval item type enum.
func ValidateItemType(itemType string) error {
	if itemType != string(models.ItemTypeClub) && itemType != string(models.ItemTypeShop) {
		return fmt.Errorf("item type must be club or shop")
	}
	return nil
}

// ValidateUsername validates account username format.
func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username must be 3-50 characters and contain only letters, numbers, hyphens, and underscores")
	}
	return nil
}

// ValidateEmail validates an email address using the validator's RFC rules.
func ValidateEmail(email string) error {
	if len(email) > 255 {
		return fmt.Errorf("email must be at most 255 characters")
	}
	if err := validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidatePassword enforces minimum password strength: 12-128 characters with
// upper, lower, digit and special classes all present.
func ValidatePassword(password string) error {
	if len(password) < 12 || len(password) > 128 {
		return fmt.Errorf("password must be between 12 and 128 characters")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
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
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return fmt.Errorf("password must contain upper and lower case letters, a digit, and a special character")
	}
	return nil
}

// ValidateCoordinates checks geographic ranges for campus locations.
func ValidateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}
