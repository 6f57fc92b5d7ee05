package validation

import (
	"fmt"
	"regexp"
	"time"
)

// emailPattern допускает обычные адреса вида name@host.tld
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	// MinNameLen минимальная длина имени
	MinNameLen = 2
	// MaxNameLen максимальная длина имени
	MaxNameLen = 100
)

// ValidateName проверяет имя волонтера или название события
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if len(name) < MinNameLen {
		return fmt.Errorf("name must be at least %d characters long", MinNameLen)
	}

	if len(name) > MaxNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxNameLen)
	}

	return nil
}

// ValidateEmail проверяет формат email (пустой email допустим)
func ValidateEmail(email string) error {
	if email == "" {
		return nil
	}

	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address: %s", email)
	}

	return nil
}

// ValidateDate проверяет дату события в формате YYYY-MM-DD
func ValidateDate(date string) error {
	if date == "" {
		return fmt.Errorf("date cannot be empty")
	}

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	return nil
}
