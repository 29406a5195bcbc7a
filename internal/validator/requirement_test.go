package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func personRequirements() []Requirement {
	return []Requirement{
		{Field: "name", Rule: Required, Message: "Person name cannot be blank"},
		{Field: "email", Rule: Required, Message: "Email cannot be blank"},
		{Field: "email", Rule: Email, Message: "Please enter a valid email address"},
	}
}

func TestFirstFailure(t *testing.T) {
	tests := []struct {
		name     string
		values   map[string]any
		expected *FieldError
	}{
		{
			name:   "All valid",
			values: map[string]any{"name": "Mary", "email": "mary@example.com"},
		},
		{
			name:     "Missing name reported before bad email",
			values:   map[string]any{"email": "bad"},
			expected: &FieldError{Field: "name", Message: "Person name cannot be blank"},
		},
		{
			name:     "Blank email",
			values:   map[string]any{"name": "Mary", "email": "  "},
			expected: &FieldError{Field: "email", Message: "Email cannot be blank"},
		},
		{
			name:     "Invalid email",
			values:   map[string]any{"name": "Mary", "email": "mary.example.com"},
			expected: &FieldError{Field: "email", Message: "Please enter a valid email address"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FirstFailure(personRequirements(), tt.values))
		})
	}
}

func TestFirstFailure_FollowsRequirementOrder(t *testing.T) {
	values := map[string]any{}
	reqs := []Requirement{
		{Field: "email", Rule: Required, Message: "email first"},
		{Field: "name", Rule: Required, Message: "name second"},
	}

	for i := 0; i < 20; i++ {
		err := FirstFailure(reqs, values)
		require.NotNil(t, err)
		assert.Equal(t, "email first", err.Error())
	}
}

func TestRequired(t *testing.T) {
	var nilString *string
	var nilID *uuid.UUID
	blank := " "
	id := uuid.New()

	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{"nil", nil, false},
		{"empty string", "", false},
		{"blank string", "   ", false},
		{"string", "x", true},
		{"nil string pointer", nilString, false},
		{"blank string pointer", &blank, false},
		{"nil uuid pointer", nilID, false},
		{"uuid pointer", &id, true},
		{"empty slice", []string{}, false},
		{"bool false", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Required(tt.value))
		})
	}
}

func TestOneOf(t *testing.T) {
	rule := OneOf("Male", "Female", "Other")
	assert.True(t, rule("female"))
	assert.True(t, rule(""))
	assert.True(t, rule(nil))
	assert.False(t, rule("robot"))
}

func TestMaxLength(t *testing.T) {
	rule := MaxLength(3)
	assert.True(t, rule("abc"))
	assert.False(t, rule("abcd"))
	assert.True(t, rule(42))
}
