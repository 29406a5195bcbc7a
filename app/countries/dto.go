package countries

import (
	"github.com/google/uuid"

	"github.com/joefazee/crud/models"
)

// CountryAddRequest represents the request to add a country
type CountryAddRequest struct {
	CountryName string `json:"country_name"`
}

// ToCountry converts the request to a new models.Country
func (r *CountryAddRequest) ToCountry() *models.Country {
	return &models.Country{Name: r.CountryName}
}

// CountryResponse represents the response for country data
type CountryResponse struct {
	CountryID   uuid.UUID `json:"country_id"`
	CountryName string    `json:"country_name"`
}

// ToCountryResponse converts a models.Country to CountryResponse
func ToCountryResponse(country *models.Country) *CountryResponse {
	return &CountryResponse{
		CountryID:   country.ID,
		CountryName: country.Name,
	}
}

// ToCountryResponseList converts a slice of models.Country to CountryResponse
func ToCountryResponseList(countries []models.Country) []CountryResponse {
	responses := make([]CountryResponse, len(countries))
	for i := range countries {
		responses[i] = *ToCountryResponse(&countries[i])
	}
	return responses
}

// UploadResponse reports the outcome of a workbook import
type UploadResponse struct {
	CountriesInserted int `json:"countries_inserted"`
}
