package service

import (
	"errors"
	"strings"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrOwnerAlreadyExists = errors.New("owner already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden: you do not have permission for this action")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrOrderNotFound      = errors.New("order not found")
)

// ValidationError reports input the caller must fix before retrying.
// Fields lists missing required fields; Message overrides the default text.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "required fields missing: " + strings.Join(e.Fields, ", ")
}

func missingFields(fields map[string]string, order ...string) []string {
	var missing []string
	for _, name := range order {
		if strings.TrimSpace(fields[name]) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
