package persons

import (
	"strings"

	"golang.org/x/text/cases"
	"gorm.io/gorm"

	"github.com/joefazee/crud/internal/formatter"
	"github.com/joefazee/crud/models"
)

// SearchField names a person attribute that can be searched
type SearchField string

const (
	SearchByPersonName  SearchField = "person_name"
	SearchByEmail       SearchField = "email"
	SearchByDateOfBirth SearchField = "date_of_birth"
	SearchByGender      SearchField = "gender"
	SearchByCountryName SearchField = "country_name"
	SearchByAddress     SearchField = "address"
)

// SearchFields lists the searchable fields in display order
var SearchFields = []SearchField{
	SearchByPersonName,
	SearchByEmail,
	SearchByDateOfBirth,
	SearchByGender,
	SearchByCountryName,
	SearchByAddress,
}

// searchAccessors return the searchable text of a person, nil when the field is unset
var searchAccessors = map[SearchField]func(p *models.Person) *string{
	SearchByPersonName: func(p *models.Person) *string { return &p.Name },
	SearchByEmail:      func(p *models.Person) *string { return &p.Email },
	SearchByDateOfBirth: func(p *models.Person) *string {
		if p.DateOfBirth == nil {
			return nil
		}
		s := formatter.FormatDate(p.DateOfBirth, formatter.DisplayDateLayout)
		return &s
	},
	SearchByGender: func(p *models.Person) *string {
		if p.Gender == nil {
			return nil
		}
		s := p.Gender.String()
		return &s
	},
	SearchByCountryName: func(p *models.Person) *string { return p.CountryName() },
	SearchByAddress:     func(p *models.Person) *string { return p.Address },
}

// ParseSearchField accepts snake_case or PascalCase field names, ignoring case
func ParseSearchField(s string) (SearchField, bool) {
	key := normalizeFieldName(s)
	for _, f := range SearchFields {
		if normalizeFieldName(string(f)) == key {
			return f, true
		}
	}
	return "", false
}

// Valid reports whether f is one of SearchFields
func (f SearchField) Valid() bool {
	_, ok := searchAccessors[f]
	return ok
}

// Criteria selects persons whose Field contains Text, ignoring case.
// Gender is matched exactly rather than by substring.
type Criteria struct {
	Field SearchField
	Text  string
}

// IsEmpty reports whether c selects every person
func (c Criteria) IsEmpty() bool {
	return c.Text == "" || !c.Field.Valid()
}

// Matches evaluates c against a person held in memory
func (c Criteria) Matches(p *models.Person) bool {
	if c.IsEmpty() {
		return true
	}

	value := searchAccessors[c.Field](p)
	if value == nil {
		return false
	}

	fold := cases.Fold()
	got, want := fold.String(*value), fold.String(c.Text)
	if c.Field == SearchByGender {
		return got == want
	}
	return strings.Contains(got, want)
}

// Scope applies c to a gorm query over the persons table
func (c Criteria) Scope(db *gorm.DB) *gorm.DB {
	if c.IsEmpty() {
		return db
	}

	pattern := "%" + escapeLike(c.Text) + "%"
	switch c.Field {
	case SearchByPersonName:
		return db.Where("persons.name ILIKE ?", pattern)
	case SearchByEmail:
		return db.Where("persons.email ILIKE ?", pattern)
	case SearchByDateOfBirth:
		return db.Where("to_char(persons.date_of_birth, 'DD Mon YYYY') ILIKE ?", pattern)
	case SearchByGender:
		return db.Where("LOWER(persons.gender) = LOWER(?)", c.Text)
	case SearchByCountryName:
		countries := db.Session(&gorm.Session{NewDB: true}).
			Model(&models.Country{}).
			Select("id").
			Where("name ILIKE ?", pattern)
		return db.Where("persons.country_id IN (?)", countries)
	case SearchByAddress:
		return db.Where("persons.address ILIKE ?", pattern)
	}
	return db
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func normalizeFieldName(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
}
