package persons

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/crud/app/countries"
	"github.com/joefazee/crud/models"
)

// memoryRepository keeps persons in insertion order and resolves countries
// through a country repository on every read.
type memoryRepository struct {
	mu        sync.RWMutex
	persons   []models.Person
	countries countries.Repository
}

// NewMemoryRepository creates a person repository backed by a slice.
// countryRepo may be nil, in which case no country is ever resolved.
func NewMemoryRepository(countryRepo countries.Repository, seed ...models.Person) Repository {
	return &memoryRepository{
		persons:   append([]models.Person(nil), seed...),
		countries: countryRepo,
	}
}

func (r *memoryRepository) resolve(ctx context.Context, p models.Person) models.Person {
	p.Country = nil
	if r.countries == nil || p.CountryID == nil {
		return p
	}
	if country, err := r.countries.GetByID(ctx, *p.CountryID); err == nil {
		p.Country = country
	}
	return p
}

func (r *memoryRepository) Create(ctx context.Context, person *models.Person) error {
	if err := person.BeforeCreate(nil); err != nil {
		return err
	}
	now := time.Now()
	person.CreatedAt, person.UpdatedAt = now, now

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.persons {
		if r.persons[i].ID == person.ID {
			return gorm.ErrDuplicatedKey
		}
	}
	stored := *person
	stored.Country = nil
	r.persons = append(r.persons, stored)
	return nil
}

func (r *memoryRepository) GetAll(ctx context.Context) ([]models.Person, error) {
	return r.GetFiltered(ctx, Criteria{})
}

func (r *memoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.persons {
		if r.persons[i].ID == id {
			person := r.resolve(ctx, r.persons[i])
			return &person, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryRepository) GetFiltered(ctx context.Context, criteria Criteria) ([]models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	persons := make([]models.Person, 0, len(r.persons))
	for i := range r.persons {
		person := r.resolve(ctx, r.persons[i])
		if criteria.Matches(&person) {
			persons = append(persons, person)
		}
	}
	return persons, nil
}

func (r *memoryRepository) Update(ctx context.Context, person *models.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.persons {
		if r.persons[i].ID != person.ID {
			continue
		}
		stored := *person
		stored.CreatedAt = r.persons[i].CreatedAt
		stored.UpdatedAt = time.Now()
		stored.Country = nil
		r.persons[i] = stored
		*person = r.resolve(ctx, stored)
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (r *memoryRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.persons {
		if r.persons[i].ID == id {
			r.persons = append(r.persons[:i], r.persons[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
