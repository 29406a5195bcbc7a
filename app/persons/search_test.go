package persons

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gLogger "gorm.io/gorm/logger"

	"github.com/joefazee/crud/models"
)

func TestParseSearchField(t *testing.T) {
	tests := map[string]SearchField{
		"person_name": SearchByPersonName,
		"PersonName":  SearchByPersonName,
		"EMAIL":       SearchByEmail,
		"DateOfBirth": SearchByDateOfBirth,
		"gender":      SearchByGender,
		"CountryName": SearchByCountryName,
		" address ":   SearchByAddress,
	}
	for in, want := range tests {
		got, ok := ParseSearchField(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseSearchField("age")
	assert.False(t, ok)
	_, ok = ParseSearchField("")
	assert.False(t, ok)
}

func TestCriteria_Matches(t *testing.T) {
	mary := &models.Person{Name: "Mary", Email: "mary@example.com", Gender: ptr(models.GenderFemale),
		DateOfBirth: ptr(models.NewDate(1990, time.May, 17)), Country: &models.Country{Name: "India"}}
	maria := &models.Person{Name: "Maria", Email: "maria@example.com"}
	john := &models.Person{Name: "John", Email: "john@example.com", Gender: ptr(models.GenderMale),
		Address: ptr("4 Main St")}

	match := func(c Criteria, ps ...*models.Person) []string {
		var names []string
		for _, p := range ps {
			if c.Matches(p) {
				names = append(names, p.Name)
			}
		}
		return names
	}

	t.Run("Name Substring Ignores Case", func(t *testing.T) {
		assert.Equal(t, []string{"Mary", "Maria"}, match(Criteria{SearchByPersonName, "ma"}, mary, maria, john))
	})

	t.Run("Empty Text Matches All", func(t *testing.T) {
		assert.Len(t, match(Criteria{SearchByPersonName, ""}, mary, maria, john), 3)
	})

	t.Run("Unknown Field Matches All", func(t *testing.T) {
		assert.Len(t, match(Criteria{SearchField("shoe_size"), "42"}, mary, maria, john), 3)
	})

	t.Run("Gender Is Exact", func(t *testing.T) {
		assert.Equal(t, []string{"John"}, match(Criteria{SearchByGender, "male"}, mary, maria, john))
		assert.Empty(t, match(Criteria{SearchByGender, "mal"}, mary, maria, john))
	})

	t.Run("Null Fields Never Match", func(t *testing.T) {
		assert.Equal(t, []string{"John"}, match(Criteria{SearchByAddress, "main"}, mary, maria, john))
		assert.Equal(t, []string{"Mary"}, match(Criteria{SearchByCountryName, "ind"}, mary, maria, john))
	})

	t.Run("Date Of Birth In Display Form", func(t *testing.T) {
		assert.Equal(t, []string{"Mary"}, match(Criteria{SearchByDateOfBirth, "17 May"}, mary, maria, john))
		assert.Empty(t, match(Criteria{SearchByDateOfBirth, "1990-05"}, mary, maria, john))
	})
}

func dryRunSQL(t *testing.T, c Criteria) string {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{Logger: gLogger.Discard})
	require.NoError(t, err)

	var persons []models.Person
	stmt := db.Session(&gorm.Session{DryRun: true}).Scopes(c.Scope).Find(&persons).Statement
	return stmt.SQL.String()
}

func TestCriteria_Scope(t *testing.T) {
	assert.Contains(t, dryRunSQL(t, Criteria{SearchByPersonName, "ma"}), "persons.name ILIKE $1")
	assert.Contains(t, dryRunSQL(t, Criteria{SearchByGender, "male"}), "LOWER(persons.gender) = LOWER($1)")
	assert.Contains(t, dryRunSQL(t, Criteria{SearchByDateOfBirth, "May"}), "to_char(persons.date_of_birth, 'DD Mon YYYY') ILIKE $1")
	countrySQL := dryRunSQL(t, Criteria{SearchByCountryName, "ind"})
	assert.Contains(t, countrySQL, `persons.country_id IN (SELECT id FROM "countries"`)
	assert.Contains(t, countrySQL, "name ILIKE $1")
	assert.NotContains(t, dryRunSQL(t, Criteria{SearchByAddress, ""}), "WHERE")
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\`, escapeLike(`c:\`))
}
