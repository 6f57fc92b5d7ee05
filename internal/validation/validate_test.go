package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "Alex Kim", false},
		{"minimum length", "Al", false},
		{"empty", "", true},
		{"too short", "A", true},
		{"max length", strings.Repeat("a", MaxNameLen), false},
		{"too long", strings.Repeat("a", MaxNameLen+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "alex@example.com", false},
		{"subdomain", "alex@mail.example.org", false},
		{"empty is allowed", "", false},
		{"missing at", "alex.example.com", true},
		{"missing domain", "alex@", true},
		{"missing tld", "alex@example", true},
		{"spaces", "alex @example.com", true},
		{"double at", "alex@@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "2026-03-07", false},
		{"leap day", "2028-02-29", false},
		{"empty", "", true},
		{"wrong order", "07-03-2026", true},
		{"not a date", "next saturday", true},
		{"invalid day", "2026-02-30", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
