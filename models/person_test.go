package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPerson(t *testing.T) {
	t.Run("TableName", func(t *testing.T) {
		p := Person{}
		assert.Equal(t, "persons", p.TableName())
	})

	t.Run("BeforeCreate", func(t *testing.T) {
		p := Person{}
		err := p.BeforeCreate(nil)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, p.ID)

		existingID := uuid.New()
		p2 := Person{ID: existingID}
		assert.NoError(t, p2.BeforeCreate(nil))
		assert.Equal(t, existingID, p2.ID)
	})

	t.Run("CountryName", func(t *testing.T) {
		p := Person{}
		assert.Nil(t, p.CountryName())

		p.Country = &Country{Name: "Canada"}
		name := p.CountryName()
		if assert.NotNil(t, name) {
			assert.Equal(t, "Canada", *name)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		bad := Gender("Robot")
		tests := []struct {
			name        string
			person      Person
			expectedErr error
		}{
			{"Valid person", Person{Name: "Mary", Email: "mary@example.com"}, nil},
			{"Empty name", Person{Email: "mary@example.com"}, ErrInvalidPersonName},
			{"Empty email", Person{Name: "Mary"}, ErrInvalidEmail},
			{"Unknown gender", Person{Name: "Mary", Email: "mary@example.com", Gender: &bad}, ErrInvalidGender},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.person.Validate()
				if tt.expectedErr != nil {
					assert.Equal(t, tt.expectedErr, err)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}
