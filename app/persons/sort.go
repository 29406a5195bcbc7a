package persons

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/joefazee/crud/models"
)

// SortField names a person attribute the list can be ordered by
type SortField string

const (
	SortByPersonName         SortField = "person_name"
	SortByEmail              SortField = "email"
	SortByDateOfBirth        SortField = "date_of_birth"
	SortByAge                SortField = "age"
	SortByGender             SortField = "gender"
	SortByCountryName        SortField = "country_name"
	SortByAddress            SortField = "address"
	SortByReceiveNewsLetters SortField = "receive_news_letters"
)

// SortFields lists the sortable fields in display order
var SortFields = []SortField{
	SortByPersonName,
	SortByEmail,
	SortByDateOfBirth,
	SortByAge,
	SortByGender,
	SortByCountryName,
	SortByAddress,
	SortByReceiveNewsLetters,
}

// SortOrder is the direction of a sort
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// sortKey yields the value a person is ordered by, or nil when the field is unset.
// Keys are string, models.Date, int or bool.
type sortKey func(p *PersonResponse) any

var sortKeys = map[SortField]sortKey{
	SortByPersonName: func(p *PersonResponse) any { return p.PersonName },
	SortByEmail:      func(p *PersonResponse) any { return p.Email },
	SortByDateOfBirth: func(p *PersonResponse) any {
		if p.DateOfBirth == nil {
			return nil
		}
		return *p.DateOfBirth
	},
	SortByAge: func(p *PersonResponse) any {
		if p.Age == nil {
			return nil
		}
		return *p.Age
	},
	SortByGender: func(p *PersonResponse) any {
		if p.Gender == nil {
			return nil
		}
		return p.Gender.String()
	},
	SortByCountryName: func(p *PersonResponse) any {
		if p.CountryName == nil {
			return nil
		}
		return *p.CountryName
	},
	SortByAddress: func(p *PersonResponse) any {
		if p.Address == nil {
			return nil
		}
		return *p.Address
	},
	SortByReceiveNewsLetters: func(p *PersonResponse) any { return p.ReceiveNewsLetters },
}

// ParseSortField accepts snake_case or PascalCase field names, ignoring case
func ParseSortField(s string) (SortField, bool) {
	key := normalizeFieldName(s)
	for _, f := range SortFields {
		if normalizeFieldName(string(f)) == key {
			return f, true
		}
	}
	return "", false
}

// ParseSortOrder returns SortDesc for "desc" in any case and SortAsc otherwise
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

// SortPersons returns a stably sorted copy of persons. Unset values come last in
// either direction. An unknown field returns persons as given.
func SortPersons(persons []PersonResponse, field SortField, order SortOrder) []PersonResponse {
	key, ok := sortKeys[field]
	if !ok {
		return persons
	}

	coll := collate.New(language.English, collate.IgnoreCase)
	sorted := slices.Clone(persons)
	slices.SortStableFunc(sorted, func(a, b PersonResponse) int {
		ka, kb := key(&a), key(&b)
		switch {
		case ka == nil && kb == nil:
			return 0
		case ka == nil:
			return 1
		case kb == nil:
			return -1
		}

		c := compareKeys(coll, ka, kb)
		if order == SortDesc {
			return -c
		}
		return c
	})
	return sorted
}

func compareKeys(coll *collate.Collator, a, b any) int {
	switch av := a.(type) {
	case string:
		return coll.CompareString(av, b.(string))
	case models.Date:
		bv := b.(models.Date)
		switch {
		case av.Before(bv):
			return -1
		case bv.Before(av):
			return 1
		}
		return 0
	case int:
		return av - b.(int)
	case bool:
		bv := b.(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		}
		return 1
	}
	return 0
}
