package persons

import (
	"strings"

	"github.com/joefazee/crud/internal/export"
	"github.com/joefazee/crud/internal/formatter"
	"github.com/joefazee/crud/models"
)

// ExportTitle names the exported document and its worksheet
const ExportTitle = "Persons"

// ColumnSet selects which columns a person export carries
type ColumnSet string

const (
	ColumnsFull    ColumnSet = "full"
	ColumnsContact ColumnSet = "contact"
)

var (
	nameColumn  = export.Column[PersonResponse]{Header: "Person Name", Value: func(p PersonResponse) string { return p.PersonName }}
	emailColumn = export.Column[PersonResponse]{Header: "Email", Value: func(p PersonResponse) string { return p.Email }}

	fullColumns = []export.Column[PersonResponse]{
		nameColumn,
		emailColumn,
		{Header: "Date of Birth", Value: func(p PersonResponse) string {
			return formatter.FormatDate(p.DateOfBirth, models.DateLayout)
		}},
		{Header: "Age", Value: func(p PersonResponse) string { return formatter.FormatInt(p.Age) }},
		{Header: "Gender", Value: func(p PersonResponse) string { return formatter.FormatGender(p.Gender) }},
		{Header: "Country", Value: func(p PersonResponse) string { return formatter.FormatOptional(p.CountryName) }},
		{Header: "Address", Value: func(p PersonResponse) string { return formatter.FormatOptional(p.Address) }},
		{Header: "Receive News Letters", Value: func(p PersonResponse) string {
			return formatter.FormatYesNo(p.ReceiveNewsLetters)
		}},
	}

	contactColumns = []export.Column[PersonResponse]{nameColumn, emailColumn}
)

// ParseColumnSet resolves a column set name. An empty name means ColumnsFull.
func ParseColumnSet(s string) (ColumnSet, bool) {
	switch ColumnSet(strings.ToLower(strings.TrimSpace(s))) {
	case "", ColumnsFull:
		return ColumnsFull, true
	case ColumnsContact:
		return ColumnsContact, true
	}
	return "", false
}

// Columns returns the export columns of c, falling back to the full set
func (c ColumnSet) Columns() []export.Column[PersonResponse] {
	if c == ColumnsContact {
		return contactColumns
	}
	return fullColumns
}

// PersonsTable lays persons out in the columns of c
func PersonsTable(persons []PersonResponse, c ColumnSet) export.Table {
	return export.NewTable(ExportTitle, c.Columns(), persons)
}
