package countries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/crud/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new country repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// GetAll returns all countries ordered by name
func (r *repository) GetAll(ctx context.Context) ([]models.Country, error) {
	var countries []models.Country
	err := r.db.WithContext(ctx).Order("name").Find(&countries).Error
	return countries, err
}

// GetByID returns a country by ID
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Country, error) {
	var country models.Country
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&country).Error
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// GetByName returns the country with exactly this name
func (r *repository) GetByName(ctx context.Context, name string) (*models.Country, error) {
	var country models.Country
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&country).Error
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// Create creates a new country
func (r *repository) Create(ctx context.Context, country *models.Country) error {
	return r.db.WithContext(ctx).Create(country).Error
}
