package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGender(t *testing.T) {
	tests := []struct {
		input    string
		expected Gender
		wantErr  bool
	}{
		{"Male", GenderMale, false},
		{"female", GenderFemale, false},
		{" OTHER ", GenderOther, false},
		{"", "", true},
		{"unknown", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			g, err := ParseGender(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidGender)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, g)
		})
	}
}

func TestGender_RoundTrip(t *testing.T) {
	for _, g := range Genders {
		parsed, err := ParseGender(g.String())
		assert.NoError(t, err)
		assert.Equal(t, g, parsed)

		v, err := g.Value()
		assert.NoError(t, err)

		var scanned Gender
		assert.NoError(t, scanned.Scan(v))
		assert.Equal(t, g, scanned)
	}
}

func TestGender_Scan(t *testing.T) {
	var g Gender
	assert.NoError(t, g.Scan(nil))
	assert.Equal(t, Gender(""), g)

	assert.NoError(t, g.Scan([]byte("male")))
	assert.Equal(t, GenderMale, g)

	assert.Error(t, g.Scan(42))
	assert.Error(t, g.Scan("robot"))
}

func TestGender_Value_Invalid(t *testing.T) {
	_, err := Gender("robot").Value()
	assert.ErrorIs(t, err, ErrInvalidGender)
}

func TestGender_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Gender *Gender `json:"gender"`
	}

	assert.NoError(t, json.Unmarshal([]byte(`{"gender":"FEMALE"}`), &payload))
	if assert.NotNil(t, payload.Gender) {
		assert.Equal(t, GenderFemale, *payload.Gender)
	}

	assert.Error(t, json.Unmarshal([]byte(`{"gender":"robot"}`), &payload))
}
