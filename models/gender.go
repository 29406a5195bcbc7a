package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Gender is the closed set of gender values a person may carry
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Genders lists every valid Gender in display order
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// ParseGender maps a string to a Gender, ignoring case
func ParseGender(s string) (Gender, error) {
	s = strings.TrimSpace(s)
	for _, g := range Genders {
		if strings.EqualFold(string(g), s) {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidGender, s)
}

func (g Gender) String() string {
	return string(g)
}

// Valid reports whether g is one of the known members
func (g Gender) Valid() bool {
	_, err := ParseGender(string(g))
	return err == nil
}

// Value implements driver.Valuer interface for database storage
func (g Gender) Value() (driver.Value, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGender, string(g))
	}
	return string(g), nil
}

// Scan implements sql.Scanner interface for database retrieval
func (g *Gender) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidGender, value)
	}

	parsed, err := ParseGender(raw)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// UnmarshalText accepts any casing of a known gender
func (g *Gender) UnmarshalText(text []byte) error {
	parsed, err := ParseGender(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
