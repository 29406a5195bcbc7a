package persons

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/crud/internal/validator"
	"github.com/joefazee/crud/models"
)

var personRequirements = []validator.Requirement{
	{Field: "person_name", Rule: validator.Required, Message: "Person name cannot be blank"},
	{Field: "person_name", Rule: validator.MaxLength(40), Message: "Person name can't be longer than 40 characters"},
	{Field: "email", Rule: validator.Required, Message: "Email cannot be blank"},
	{Field: "email", Rule: validator.Email, Message: "Please enter a valid email address"},
	{Field: "email", Rule: validator.MaxLength(40), Message: "Email can't be longer than 40 characters"},
	{Field: "address", Rule: validator.MaxLength(200), Message: "Address can't be longer than 200 characters"},
}

var updateRequirements = append([]validator.Requirement{
	{Field: "person_id", Rule: validator.Required, Message: "Person id must be provided"},
}, personRequirements...)

// PersonAddRequest represents the request to add a person
type PersonAddRequest struct {
	PersonName         string         `json:"person_name"`
	Email              string         `json:"email"`
	DateOfBirth        *models.Date   `json:"date_of_birth" swaggertype:"string" example:"1990-05-17"`
	Gender             *models.Gender `json:"gender" swaggertype:"string" enums:"Male,Female,Other"`
	CountryID          *uuid.UUID     `json:"country_id" swaggertype:"string"`
	Address            *string        `json:"address"`
	ReceiveNewsLetters bool           `json:"receive_news_letters"`
}

func (r *PersonAddRequest) values() map[string]any {
	return map[string]any{
		"person_name": r.PersonName,
		"email":       r.Email,
		"address":     r.Address,
	}
}

// Validate reports the first violated requirement, wrapped in models.ErrValidationFailed
func (r *PersonAddRequest) Validate() error {
	return firstFailure(personRequirements, r.values())
}

// ToPerson converts the request to a new models.Person
func (r *PersonAddRequest) ToPerson() *models.Person {
	return &models.Person{
		Name:               r.PersonName,
		Email:              r.Email,
		DateOfBirth:        r.DateOfBirth,
		Gender:             r.Gender,
		CountryID:          r.CountryID,
		Address:            r.Address,
		ReceiveNewsLetters: r.ReceiveNewsLetters,
	}
}

// PersonUpdateRequest carries every mutable field of an existing person
type PersonUpdateRequest struct {
	PersonID *uuid.UUID `json:"person_id" swaggertype:"string"`
	PersonAddRequest
}

func (r *PersonUpdateRequest) values() map[string]any {
	v := r.PersonAddRequest.values()
	v["person_id"] = r.PersonID
	return v
}

// Validate reports the first violated requirement, wrapped in models.ErrValidationFailed
func (r *PersonUpdateRequest) Validate() error {
	return firstFailure(updateRequirements, r.values())
}

// ToPerson converts the request to the models.Person it replaces
func (r *PersonUpdateRequest) ToPerson() *models.Person {
	p := r.PersonAddRequest.ToPerson()
	if r.PersonID != nil {
		p.ID = *r.PersonID
	}
	return p
}

func firstFailure(reqs []validator.Requirement, values map[string]any) error {
	if fe := validator.FirstFailure(reqs, values); fe != nil {
		return fmt.Errorf("%w: %w", models.ErrValidationFailed, fe)
	}
	return nil
}

// ValidationMessage extracts the failed rule from an error returned by Validate
func ValidationMessage(err error) (*validator.FieldError, bool) {
	var fe *validator.FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// PersonResponse is the projection of a person returned to callers
type PersonResponse struct {
	PersonID           uuid.UUID      `json:"person_id"`
	PersonName         string         `json:"person_name"`
	Email              string         `json:"email"`
	DateOfBirth        *models.Date   `json:"date_of_birth" swaggertype:"string"`
	Gender             *models.Gender `json:"gender" swaggertype:"string"`
	CountryID          *uuid.UUID     `json:"country_id" swaggertype:"string"`
	CountryName        *string        `json:"country_name"`
	Address            *string        `json:"address"`
	ReceiveNewsLetters bool           `json:"receive_news_letters"`
	Age                *int           `json:"age"`
}

// ToPersonResponse projects p as of now. Age is counted in whole years.
func ToPersonResponse(p *models.Person, now time.Time) *PersonResponse {
	res := &PersonResponse{
		PersonID:           p.ID,
		PersonName:         p.Name,
		Email:              p.Email,
		DateOfBirth:        p.DateOfBirth,
		Gender:             p.Gender,
		CountryID:          p.CountryID,
		CountryName:        p.CountryName(),
		Address:            p.Address,
		ReceiveNewsLetters: p.ReceiveNewsLetters,
	}
	if p.DateOfBirth != nil {
		age := p.DateOfBirth.YearsUntil(now)
		res.Age = &age
	}
	return res
}

// ToPersonResponseList projects every person as of now
func ToPersonResponseList(persons []models.Person, now time.Time) []PersonResponse {
	responses := make([]PersonResponse, len(persons))
	for i := range persons {
		responses[i] = *ToPersonResponse(&persons[i], now)
	}
	return responses
}

// ToUpdateRequest builds the update request that would reproduce r
func (r *PersonResponse) ToUpdateRequest() *PersonUpdateRequest {
	id := r.PersonID
	return &PersonUpdateRequest{
		PersonID: &id,
		PersonAddRequest: PersonAddRequest{
			PersonName:         r.PersonName,
			Email:              r.Email,
			DateOfBirth:        r.DateOfBirth,
			Gender:             r.Gender,
			CountryID:          r.CountryID,
			Address:            r.Address,
			ReceiveNewsLetters: r.ReceiveNewsLetters,
		},
	}
}
