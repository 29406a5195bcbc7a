package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate_YearsUntil(t *testing.T) {
	dob := NewDate(2000, time.March, 15)

	tests := []struct {
		name     string
		now      time.Time
		expected int
	}{
		{"Day before birthday", time.Date(2024, time.March, 14, 23, 0, 0, 0, time.UTC), 23},
		{"On birthday", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), 24},
		{"Later in year", time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), 24},
		{"Before birth", time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dob.YearsUntil(tt.now))
		})
	}
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(1993, time.July, 4)

	data, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"1993-07-04"`, string(data))

	var parsed Date
	assert.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, d.Equal(parsed.Time))

	assert.Error(t, json.Unmarshal([]byte(`"04/07/1993"`), &parsed))
}

func TestDate_Scan(t *testing.T) {
	var d Date

	assert.NoError(t, d.Scan(time.Date(1985, time.January, 2, 13, 4, 5, 0, time.Local)))
	assert.Equal(t, "1985-01-02", d.String())

	assert.NoError(t, d.Scan("2001-09-30T00:00:00Z"))
	assert.Equal(t, "2001-09-30", d.String())

	assert.NoError(t, d.Scan([]byte("2010-10-10")))
	assert.Equal(t, "2010-10-10", d.String())

	assert.Error(t, d.Scan(12))
}

func TestDate_FormatForDisplay(t *testing.T) {
	d := NewDate(2000, time.January, 1)
	assert.Equal(t, "01 Jan 2000", d.Format("02 Jan 2006"))
}
