package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	domainErrors "github.com/polkiloo/toymix/internal/domain/errors"
)

var validate = validator.New()

// parseDate accepts YYYY-MM-DD and full RFC 3339 timestamps, keeping only the calendar day.
func parseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", domainErrors.ErrInvalidInput, field)
	}
	if d, err := time.Parse(time.DateOnly, value); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a date (YYYY-MM-DD)", domainErrors.ErrInvalidInput, field)
	}
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

func requireText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", domainErrors.ErrInvalidInput, field)
	}
	return value, nil
}

func validateEmail(value string) (string, error) {
	value, err := requireText("email", value)
	if err != nil {
		return "", err
	}
	if err := validate.Var(value, "email"); err != nil {
		return "", fmt.Errorf("%w: email is malformed", domainErrors.ErrInvalidInput)
	}
	return value, nil
}
