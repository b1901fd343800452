package user

import (
	"regexp"
	"strings"
	"time"
)

// minimumAge is the youngest age allowed to register.
const minimumAge = 13

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateRegistration checks signup payload fields.
func validateRegistration(fullName, email, password, birthDate string, now time.Time) error {
	if strings.TrimSpace(fullName) == "" {
		return ValidationError{Field: "fullName", Reason: "must not be blank"}
	}
	if !emailPattern.MatchString(email) {
		return ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if len(password) < 8 {
		return ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}

	born, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return ValidationError{Field: "birthDate", Reason: "must be YYYY-MM-DD"}
	}
	if ageAt(born, now) < minimumAge {
		return ValidationError{Field: "birthDate", Reason: "you must be at least 13 years old"}
	}
	return nil
}

// ageAt returns full years elapsed between born and now.
func ageAt(born, now time.Time) int {
	years := now.Year() - born.Year()
	anniversary := born.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}
