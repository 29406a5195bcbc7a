package countries

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/crud/models"
)

// memoryRepository keeps countries in insertion order.
// Misses are reported as gorm.ErrRecordNotFound so services treat both stores alike.
type memoryRepository struct {
	mu        sync.RWMutex
	countries []models.Country
}

// NewMemoryRepository creates a country repository backed by a slice
func NewMemoryRepository(seed ...models.Country) Repository {
	return &memoryRepository{countries: append([]models.Country(nil), seed...)}
}

func (r *memoryRepository) GetAll(_ context.Context) ([]models.Country, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Country(nil), r.countries...), nil
}

func (r *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Country, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.countries {
		if r.countries[i].ID == id {
			country := r.countries[i]
			return &country, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryRepository) GetByName(_ context.Context, name string) (*models.Country, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.countries {
		if r.countries[i].Name == name {
			country := r.countries[i]
			return &country, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryRepository) Create(_ context.Context, country *models.Country) error {
	if err := country.BeforeCreate(nil); err != nil {
		return err
	}
	now := time.Now()
	country.CreatedAt, country.UpdatedAt = now, now

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.countries {
		if r.countries[i].Name == country.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	r.countries = append(r.countries, *country)
	return nil
}
