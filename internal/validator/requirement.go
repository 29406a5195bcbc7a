package validator

import (
	"reflect"
	"strings"
)

// Rule reports whether a value satisfies a constraint
type Rule func(value any) bool

// Requirement binds a rule to a named field and the message reported when it fails
type Requirement struct {
	Field   string
	Rule    Rule
	Message string
}

// FieldError is the first violated requirement of a value bag
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Message
}

// FirstFailure evaluates reqs in order against values and returns the first violation.
// A field missing from values is checked as nil.
func FirstFailure(reqs []Requirement, values map[string]any) *FieldError {
	for _, req := range reqs {
		if !req.Rule(values[req.Field]) {
			return &FieldError{Field: req.Field, Message: req.Message}
		}
	}
	return nil
}

// Required fails for nil, nil pointers, empty collections and blank strings
func Required(value any) bool {
	if value == nil {
		return false
	}

	switch v := value.(type) {
	case string:
		return NotBlank(v)
	case *string:
		return v != nil && NotBlank(*v)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		return !rv.IsNil()
	case reflect.Slice, reflect.Map:
		return rv.Len() > 0
	}
	return true
}

// Email passes blank values so it can be combined with Required
func Email(value any) bool {
	s, ok := stringValue(value)
	if !ok || strings.TrimSpace(s) == "" {
		return true
	}
	return IsEmail(s)
}

// MaxLength passes values that are not strings
func MaxLength(n int) Rule {
	return func(value any) bool {
		s, ok := stringValue(value)
		if !ok {
			return true
		}
		return MaxRunes(s, n)
	}
}

// OneOf passes empty values and strings found in list, compared without case
func OneOf(list ...string) Rule {
	return func(value any) bool {
		s, ok := stringValue(value)
		if !ok || s == "" {
			return true
		}
		for _, item := range list {
			if strings.EqualFold(item, s) {
				return true
			}
		}
		return false
	}
}

func stringValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	case interface{ String() string }:
		if rv := reflect.ValueOf(value); rv.Kind() == reflect.Ptr && rv.IsNil() {
			return "", false
		}
		return v.String(), true
	}
	return "", false
}
