package formatter

import (
	"strconv"

	"github.com/joefazee/crud/models"
)

// DisplayDateLayout is how dates are shown to people and matched by search
const DisplayDateLayout = "02 Jan 2006"

// FormatDate renders d in layout, or an empty string when d is nil
func FormatDate(d *models.Date, layout string) string {
	if d == nil {
		return ""
	}
	return d.Format(layout)
}

// FormatOptional dereferences s, or returns an empty string
func FormatOptional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// FormatInt renders n, or an empty string when n is nil
func FormatInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

// FormatGender renders g, or an empty string when g is nil
func FormatGender(g *models.Gender) string {
	if g == nil {
		return ""
	}
	return g.String()
}

// FormatYesNo renders a flag as Yes or No
func FormatYesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
