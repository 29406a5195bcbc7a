package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/joefazee/crud/models"
)

func TestFormatters(t *testing.T) {
	d := models.NewDate(1999, time.February, 3)
	g := models.GenderOther
	s := "Main St"
	n := 42

	assert.Equal(t, "03 Feb 1999", FormatDate(&d, DisplayDateLayout))
	assert.Equal(t, "1999-02-03", FormatDate(&d, models.DateLayout))
	assert.Equal(t, "", FormatDate(nil, DisplayDateLayout))

	assert.Equal(t, "Main St", FormatOptional(&s))
	assert.Equal(t, "", FormatOptional(nil))

	assert.Equal(t, "42", FormatInt(&n))
	assert.Equal(t, "", FormatInt(nil))

	assert.Equal(t, "Other", FormatGender(&g))
	assert.Equal(t, "", FormatGender(nil))

	assert.Equal(t, "Yes", FormatYesNo(true))
	assert.Equal(t, "No", FormatYesNo(false))
}
