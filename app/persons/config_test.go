package persons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	cfg := GetDefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.ExcelColumns = "contact"
	assert.NoError(t, cfg.Validate())

	cfg.ExcelColumns = "all of them"
	assert.Error(t, cfg.Validate())

	cfg = GetDefaultConfig()
	cfg.TokenTTL = 0
	assert.Error(t, cfg.Validate())
}

func TestParseColumnSet(t *testing.T) {
	for in, want := range map[string]ColumnSet{"": ColumnsFull, "FULL": ColumnsFull, "contact": ColumnsContact} {
		got, ok := ParseColumnSet(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseColumnSet("wide")
	assert.False(t, ok)
}

func TestPersonsTable(t *testing.T) {
	persons := []PersonResponse{{PersonName: "Mary", Email: "mary@example.com"}}

	full := PersonsTable(persons, ColumnsFull)
	assert.Equal(t, ExportTitle, full.Title)
	assert.Len(t, full.Headers, 8)
	assert.Equal(t, []string{"Mary", "mary@example.com", "", "", "", "", "", "No"}, full.Rows[0])

	contact := PersonsTable(persons, ColumnsContact)
	assert.Equal(t, []string{"Person Name", "Email"}, contact.Headers)
}
