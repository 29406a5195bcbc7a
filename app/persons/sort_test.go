package persons

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/joefazee/crud/models"
)

func names(persons []PersonResponse) []string {
	out := make([]string, len(persons))
	for i := range persons {
		out[i] = persons[i].PersonName
	}
	return out
}

func TestParseSortField(t *testing.T) {
	f, ok := ParseSortField("ReceiveNewsLetters")
	assert.True(t, ok)
	assert.Equal(t, SortByReceiveNewsLetters, f)

	f, ok = ParseSortField("age")
	assert.True(t, ok)
	assert.Equal(t, SortByAge, f)

	_, ok = ParseSortField("height")
	assert.False(t, ok)
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, SortDesc, ParseSortOrder("DESC"))
	assert.Equal(t, SortAsc, ParseSortOrder("asc"))
	assert.Equal(t, SortAsc, ParseSortOrder(""))
	assert.Equal(t, SortAsc, ParseSortOrder("sideways"))
}

func TestSortPersons_ByName(t *testing.T) {
	list := []PersonResponse{{PersonName: "Smith"}, {PersonName: "Mary"}, {PersonName: "Rahman"}}

	assert.Equal(t, []string{"Smith", "Rahman", "Mary"}, names(SortPersons(list, SortByPersonName, SortDesc)))
	assert.Equal(t, []string{"Mary", "Rahman", "Smith"}, names(SortPersons(list, SortByPersonName, SortAsc)))
	assert.Equal(t, []string{"Smith", "Mary", "Rahman"}, names(list), "input is not modified")
}

func TestSortPersons_IgnoresCase(t *testing.T) {
	list := []PersonResponse{{PersonName: "bob"}, {PersonName: "Alice"}, {PersonName: "carol"}}
	assert.Equal(t, []string{"Alice", "bob", "carol"}, names(SortPersons(list, SortByPersonName, SortAsc)))
}

func TestSortPersons_UnknownFieldUnchanged(t *testing.T) {
	list := []PersonResponse{{PersonName: "Smith"}, {PersonName: "Mary"}}
	assert.Equal(t, list, SortPersons(list, SortField(""), SortAsc))
	assert.Equal(t, list, SortPersons(list, SortField("height"), SortDesc))
}

func TestSortPersons_NullsLast(t *testing.T) {
	list := []PersonResponse{
		{PersonName: "NoAddress1"},
		{PersonName: "Zed", Address: ptr("Zebra Road")},
		{PersonName: "NoAddress2"},
		{PersonName: "Abe", Address: ptr("Apple Street")},
	}

	assert.Equal(t, []string{"Abe", "Zed", "NoAddress1", "NoAddress2"},
		names(SortPersons(list, SortByAddress, SortAsc)))
	assert.Equal(t, []string{"Zed", "Abe", "NoAddress1", "NoAddress2"},
		names(SortPersons(list, SortByAddress, SortDesc)))
}

func TestSortPersons_Stable(t *testing.T) {
	list := []PersonResponse{
		{PersonName: "First", Gender: ptr(models.GenderMale)},
		{PersonName: "Second", Gender: ptr(models.GenderFemale)},
		{PersonName: "Third", Gender: ptr(models.GenderMale)},
	}

	assert.Equal(t, []string{"Second", "First", "Third"}, names(SortPersons(list, SortByGender, SortAsc)))
	assert.Equal(t, []string{"First", "Third", "Second"}, names(SortPersons(list, SortByGender, SortDesc)))
}

func TestSortPersons_TypedFields(t *testing.T) {
	list := []PersonResponse{
		{PersonName: "Young", Age: ptr(20), DateOfBirth: ptr(models.NewDate(2005, time.March, 1)), ReceiveNewsLetters: true},
		{PersonName: "Old", Age: ptr(70), DateOfBirth: ptr(models.NewDate(1955, time.June, 9))},
		{PersonName: "Mid", Age: ptr(40), DateOfBirth: ptr(models.NewDate(1985, time.January, 2)), ReceiveNewsLetters: true},
	}

	assert.Equal(t, []string{"Young", "Mid", "Old"}, names(SortPersons(list, SortByAge, SortAsc)))
	assert.Equal(t, []string{"Old", "Mid", "Young"}, names(SortPersons(list, SortByDateOfBirth, SortAsc)))
	assert.Equal(t, []string{"Old", "Young", "Mid"}, names(SortPersons(list, SortByReceiveNewsLetters, SortAsc)))
	assert.Equal(t, []string{"Young", "Mid", "Old"}, names(SortPersons(list, SortByReceiveNewsLetters, SortDesc)))
}
