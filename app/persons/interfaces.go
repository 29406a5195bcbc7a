package persons

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/joefazee/crud/models"
)

// Repository defines the interface for person data access.
// Persons are returned with their Country resolved when it exists.
type Repository interface {
	Create(ctx context.Context, person *models.Person) error
	GetAll(ctx context.Context) ([]models.Person, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Person, error)
	GetFiltered(ctx context.Context, criteria Criteria) ([]models.Person, error)
	Update(ctx context.Context, person *models.Person) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service defines the interface for person business logic
type Service interface {
	AddPerson(ctx context.Context, req *PersonAddRequest) (*PersonResponse, error)
	GetAllPersons(ctx context.Context) ([]PersonResponse, error)
	GetPersonByID(ctx context.Context, id *uuid.UUID) (*PersonResponse, error)
	GetFilteredPersons(ctx context.Context, field SearchField, text string) ([]PersonResponse, error)
	GetSortedPersons(persons []PersonResponse, field SortField, order SortOrder) []PersonResponse
	UpdatePerson(ctx context.Context, req *PersonUpdateRequest) (*PersonResponse, error)
	DeletePerson(ctx context.Context, id *uuid.UUID) (bool, error)

	WritePersonsCSV(ctx context.Context, w io.Writer) error
	WritePersonsExcel(ctx context.Context, w io.Writer, columns ColumnSet) error
	WritePersonsPDF(ctx context.Context, w io.Writer) error
}
