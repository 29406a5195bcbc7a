package countries

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/crud/app/api"
	"github.com/joefazee/crud/internal/sanitizer"
	"github.com/joefazee/crud/internal/validator"
	"github.com/joefazee/crud/models"
)

const uploadFormField = "excel_file"

// Handler handles HTTP requests for countries
type Handler struct {
	service   Service
	sanitizer sanitizer.HTMLStripperer
}

// NewHandler creates a new country handler
func NewHandler(service Service, s sanitizer.HTMLStripperer) *Handler {
	return &Handler{
		service:   service,
		sanitizer: s,
	}
}

// GetAllCountries godoc
// @Summary List all countries
// @Description Get a list of all countries
// @Tags countries
// @Produce json
// @Success 200 {object} api.Response{data=[]CountryResponse}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries [get]
func (h *Handler) GetAllCountries(c *gin.Context) {
	countries, err := h.service.GetAllCountries(c.Request.Context())
	if err != nil {
		api.InternalErrorResponse(c, "Failed to fetch countries")
		return
	}

	api.ListResponse(c, "Countries retrieved successfully", countries, len(countries))
}

// GetCountryByID godoc
// @Summary Get country by ID
// @Tags countries
// @Produce json
// @Param id path string true "Country ID"
// @Success 200 {object} api.Response{data=CountryResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries/{id} [get]
func (h *Handler) GetCountryByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid country ID format")
		return
	}

	country, err := h.service.GetCountryByID(c.Request.Context(), &id)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to fetch country")
		return
	}
	if country == nil {
		api.NotFoundResponse(c, "Country")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Country retrieved successfully", country)
}

// AddCountry godoc
// @Summary Add a country
// @Tags countries
// @Accept json
// @Produce json
// @Param request body CountryAddRequest true "Country add request"
// @Success 201 {object} api.Response{data=CountryResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries [post]
func (h *Handler) AddCountry(c *gin.Context) {
	var req CountryAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}
	req.CountryName = h.sanitizer.StripHTML(req.CountryName)

	country, err := h.service.AddCountry(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidCountryName):
			api.ValidationErrorResponse(c, map[string]string{"country_name": "Country name cannot be blank"})
		case errors.Is(err, models.ErrDuplicateCountryName):
			api.ConflictResponse(c, "Given country name already exists")
		default:
			api.InternalErrorResponse(c, "Failed to add country")
		}
		return
	}

	api.CreatedResponse(c, "Country added successfully", country)
}

// UploadFromExcel godoc
// @Summary Import countries from a workbook
// @Description Reads the "Countries" worksheet, column A from row 2, and inserts names not yet known
// @Tags countries
// @Accept multipart/form-data
// @Produce json
// @Param excel_file formData file true "xlsx workbook"
// @Success 200 {object} api.Response{data=UploadResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries/upload [post]
func (h *Handler) UploadFromExcel(c *gin.Context) {
	v := validator.New()
	header, err := c.FormFile(uploadFormField)
	v.Check(err == nil && header != nil && header.Size > 0, uploadFormField, "Please select an xlsx file")
	if v.Valid() {
		v.Check(strings.EqualFold(filepath.Ext(header.Filename), ".xlsx"), uploadFormField, "Unsupported file. 'xlsx' file is expected")
	}
	if !v.Valid() {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	file, err := header.Open()
	if err != nil {
		api.InternalErrorResponse(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	inserted, err := h.service.UploadCountriesFromExcel(c.Request.Context(), file)
	if err != nil {
		if errors.Is(err, models.ErrWorksheetNotFound) {
			api.ValidationErrorResponse(c, map[string]string{uploadFormField: err.Error()})
			return
		}
		api.InternalErrorResponse(c, "Failed to import countries")
		return
	}

	api.SuccessResponse(c, http.StatusOK, fmt.Sprintf("%d countries inserted successfully", inserted),
		UploadResponse{CountriesInserted: inserted})
}
