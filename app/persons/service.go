package persons

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/crud/app/countries"
	"github.com/joefazee/crud/internal/export"
	"github.com/joefazee/crud/internal/logger"
	"github.com/joefazee/crud/models"
)

type service struct {
	repo      Repository
	countries countries.Service
	logger    logger.Logger
	now       func() time.Time
}

// Option customises a person service
type Option func(*service)

// WithClock replaces time.Now when computing ages
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// NewService creates a person service. countrySvc resolves country names on
// freshly written persons and may be nil.
func NewService(repo Repository, countrySvc countries.Service, log logger.Logger, opts ...Option) Service {
	if log == nil {
		log = logger.NewNullLogger()
	}
	s := &service{
		repo:      repo,
		countries: countrySvc,
		logger:    log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) respond(ctx context.Context, p *models.Person) *PersonResponse {
	if p.Country == nil && p.CountryID != nil && s.countries != nil {
		country, err := s.countries.GetCountryByID(ctx, p.CountryID)
		if err != nil {
			s.logger.Error(err, logger.Fields{"country_id": p.CountryID.String()})
		}
		if country != nil {
			p.Country = &models.Country{ID: country.CountryID, Name: country.CountryName}
		}
	}
	return ToPersonResponse(p, s.now())
}

func (s *service) AddPerson(ctx context.Context, req *PersonAddRequest) (*PersonResponse, error) {
	if req == nil {
		return nil, models.ErrNullArgument
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	person := req.ToPerson()
	if err := s.repo.Create(ctx, person); err != nil {
		return nil, err
	}

	s.logger.Info("person added", logger.Fields{"person_id": person.ID.String()})
	return s.respond(ctx, person), nil
}

func (s *service) GetAllPersons(ctx context.Context) ([]PersonResponse, error) {
	persons, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToPersonResponseList(persons, s.now()), nil
}

// GetPersonByID returns nil without error when id is nil or unknown
func (s *service) GetPersonByID(ctx context.Context, id *uuid.UUID) (*PersonResponse, error) {
	if id == nil {
		return nil, nil
	}
	person, err := s.repo.GetByID(ctx, *id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.respond(ctx, person), nil
}

// GetFilteredPersons returns every person when text is empty or field is unknown
func (s *service) GetFilteredPersons(ctx context.Context, field SearchField, text string) ([]PersonResponse, error) {
	criteria := Criteria{Field: field, Text: text}
	if criteria.IsEmpty() {
		return s.GetAllPersons(ctx)
	}

	persons, err := s.repo.GetFiltered(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return ToPersonResponseList(persons, s.now()), nil
}

func (s *service) GetSortedPersons(persons []PersonResponse, field SortField, order SortOrder) []PersonResponse {
	return SortPersons(persons, field, order)
}

func (s *service) UpdatePerson(ctx context.Context, req *PersonUpdateRequest) (*PersonResponse, error) {
	if req == nil {
		return nil, models.ErrNullArgument
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	person := req.ToPerson()
	if err := s.repo.Update(ctx, person); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPersonNotFound
		}
		return nil, err
	}

	s.logger.Info("person updated", logger.Fields{"person_id": person.ID.String()})
	return s.respond(ctx, person), nil
}

// DeletePerson reports false when id is nil or unknown
func (s *service) DeletePerson(ctx context.Context, id *uuid.UUID) (bool, error) {
	if id == nil {
		return false, nil
	}
	deleted, err := s.repo.Delete(ctx, *id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.Info("person deleted", logger.Fields{"person_id": id.String()})
	}
	return deleted, nil
}

func (s *service) table(ctx context.Context, columns ColumnSet) (export.Table, error) {
	persons, err := s.GetAllPersons(ctx)
	if err != nil {
		return export.Table{}, err
	}
	return PersonsTable(persons, columns), nil
}

func (s *service) WritePersonsCSV(ctx context.Context, w io.Writer) error {
	t, err := s.table(ctx, ColumnsFull)
	if err != nil {
		return err
	}
	return export.WriteCSV(w, t)
}

func (s *service) WritePersonsExcel(ctx context.Context, w io.Writer, columns ColumnSet) error {
	t, err := s.table(ctx, columns)
	if err != nil {
		return err
	}
	return export.WriteExcel(w, t)
}

func (s *service) WritePersonsPDF(ctx context.Context, w io.Writer) error {
	t, err := s.table(ctx, ColumnsFull)
	if err != nil {
		return err
	}
	return export.WritePDF(w, t)
}
