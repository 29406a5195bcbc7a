package persons

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/crud/app/api"
	"github.com/joefazee/crud/internal/sanitizer"
	"github.com/joefazee/crud/models"
)

const (
	csvContentType   = "text/csv"
	excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType   = "application/pdf"
)

// Handler handles HTTP requests for persons
type Handler struct {
	service      Service
	sanitizer    sanitizer.HTMLStripperer
	excelColumns ColumnSet
}

// NewHandler creates a person handler. excelColumns is used when a request names no column set.
func NewHandler(service Service, s sanitizer.HTMLStripperer, excelColumns ColumnSet) *Handler {
	return &Handler{
		service:      service,
		sanitizer:    s,
		excelColumns: excelColumns,
	}
}

func (h *Handler) clean(req *PersonAddRequest) {
	req.PersonName = h.sanitizer.StripHTML(req.PersonName)
	req.Email = h.sanitizer.StripHTML(req.Email)
	req.Address = sanitizer.StripPtr(h.sanitizer, req.Address)
}

func personID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid person ID format")
		return uuid.Nil, false
	}
	return id, true
}

func writeServiceError(c *gin.Context, err error, action string) {
	if fe, ok := ValidationMessage(err); ok {
		api.ValidationErrorResponse(c, map[string]string{fe.Field: fe.Message})
		return
	}
	if errors.Is(err, models.ErrPersonNotFound) {
		api.NotFoundResponse(c, "Person")
		return
	}
	api.InternalErrorResponse(c, "Failed to "+action)
}

// GetPersons godoc
// @Summary List persons
// @Description Filters by one field and sorts the result. Unknown search fields search by name.
// @Tags persons
// @Produce json
// @Param search_by query string false "Search field" Enums(person_name, email, date_of_birth, gender, country_name, address)
// @Param search_string query string false "Text to search for"
// @Param sort_by query string false "Sort field" Enums(person_name, email, date_of_birth, age, gender, country_name, address, receive_news_letters)
// @Param sort_order query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} api.Response{data=[]PersonResponse,meta=ListMeta}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/persons [get]
func (h *Handler) GetPersons(c *gin.Context) {
	q := ListQueryFrom(c)

	persons, err := h.service.GetFilteredPersons(c.Request.Context(), q.SearchBy, q.SearchString)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to fetch persons")
		return
	}
	persons = h.service.GetSortedPersons(persons, q.SortBy, q.SortOrder)

	api.SuccessResponseWithMeta(c, http.StatusOK, "Persons retrieved successfully", persons,
		ListMeta{Count: len(persons), ListQuery: q})
}

// GetPersonByID godoc
// @Summary Get person by ID
// @Tags persons
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} api.Response{data=PersonResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/persons/{id} [get]
func (h *Handler) GetPersonByID(c *gin.Context) {
	id, ok := personID(c)
	if !ok {
		return
	}

	person, err := h.service.GetPersonByID(c.Request.Context(), &id)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to fetch person")
		return
	}
	if person == nil {
		api.NotFoundResponse(c, "Person")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Person retrieved successfully", person)
}

// AddPerson godoc
// @Summary Add a person
// @Tags persons
// @Accept json
// @Produce json
// @Param request body PersonAddRequest true "Person add request"
// @Success 201 {object} api.Response{data=PersonResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/persons [post]
func (h *Handler) AddPerson(c *gin.Context) {
	var req PersonAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}
	h.clean(&req)

	person, err := h.service.AddPerson(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err, "add person")
		return
	}

	api.CreatedResponse(c, "Person added successfully", person)
}

// UpdatePerson godoc
// @Summary Update a person
// @Description Replaces every mutable field. Requires the Auth-Key cookie.
// @Tags persons
// @Accept json
// @Produce json
// @Param id path string true "Person ID"
// @Param request body PersonAddRequest true "Person fields"
// @Success 200 {object} api.Response{data=PersonResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 501 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/persons/{id} [put]
func (h *Handler) UpdatePerson(c *gin.Context) {
	id, ok := personID(c)
	if !ok {
		return
	}

	var req PersonUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}
	req.PersonID = &id
	h.clean(&req.PersonAddRequest)

	person, err := h.service.UpdatePerson(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err, "update person")
		return
	}

	api.UpdatedResponse(c, "Person updated successfully", person)
}

// DeletePerson godoc
// @Summary Delete a person
// @Description Requires the Auth-Key cookie.
// @Tags persons
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} api.Response
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 501 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/persons/{id} [delete]
func (h *Handler) DeletePerson(c *gin.Context) {
	id, ok := personID(c)
	if !ok {
		return
	}

	deleted, err := h.service.DeletePerson(c.Request.Context(), &id)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to delete person")
		return
	}
	if !deleted {
		api.NotFoundResponse(c, "Person")
		return
	}

	api.DeletedResponse(c, "Person deleted successfully")
}

// ExportCSV godoc
// @Summary Download persons as CSV
// @Tags persons
// @Produce text/csv
// @Success 200 {file} file
// @Router /api/v1/persons/export/csv [get]
func (h *Handler) ExportCSV(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.service.WritePersonsCSV(c.Request.Context(), &buf); err != nil {
		api.InternalErrorResponse(c, "Failed to export persons")
		return
	}
	api.FileResponse(c, "persons.csv", csvContentType, buf.Bytes())
}

// ExportExcel godoc
// @Summary Download persons as an xlsx workbook
// @Tags persons
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param columns query string false "Column set" Enums(full, contact)
// @Success 200 {file} file
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/persons/export/excel [get]
func (h *Handler) ExportExcel(c *gin.Context) {
	columns := h.excelColumns
	if raw := c.Query("columns"); raw != "" {
		parsed, ok := ParseColumnSet(raw)
		if !ok {
			api.ValidationErrorResponse(c, map[string]string{"columns": "Unknown column set"})
			return
		}
		columns = parsed
	}

	var buf bytes.Buffer
	if err := h.service.WritePersonsExcel(c.Request.Context(), &buf, columns); err != nil {
		api.InternalErrorResponse(c, "Failed to export persons")
		return
	}
	api.FileResponse(c, "persons.xlsx", excelContentType, buf.Bytes())
}

// ExportPDF godoc
// @Summary Download persons as PDF
// @Tags persons
// @Produce application/pdf
// @Success 200 {file} file
// @Router /api/v1/persons/export/pdf [get]
func (h *Handler) ExportPDF(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.service.WritePersonsPDF(c.Request.Context(), &buf); err != nil {
		api.InternalErrorResponse(c, "Failed to export persons")
		return
	}
	api.FileResponse(c, "persons.pdf", pdfContentType, buf.Bytes())
}
