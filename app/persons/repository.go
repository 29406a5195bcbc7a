package persons

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/crud/models"
)

// updatableColumns are written by Update, zero values included
var updatableColumns = []string{
	"name", "email", "date_of_birth", "gender", "country_id", "address", "receive_news_letters", "updated_at",
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a person repository over the persons table
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Country").Order("persons.created_at, persons.id")
}

func (r *repository) Create(ctx context.Context, person *models.Person) error {
	return r.db.WithContext(ctx).Omit("Country").Create(person).Error
}

func (r *repository) GetAll(ctx context.Context) ([]models.Person, error) {
	var persons []models.Person
	err := r.query(ctx).Find(&persons).Error
	return persons, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Person, error) {
	var person models.Person
	if err := r.db.WithContext(ctx).Preload("Country").Where("persons.id = ?", id).First(&person).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *repository) GetFiltered(ctx context.Context, criteria Criteria) ([]models.Person, error) {
	var persons []models.Person
	err := r.query(ctx).Scopes(criteria.Scope).Find(&persons).Error
	return persons, err
}

// Update overwrites every mutable column and reloads the row.
// A missing row is reported as gorm.ErrRecordNotFound.
func (r *repository) Update(ctx context.Context, person *models.Person) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Person{}).
			Where("id = ?", person.ID).
			Select(updatableColumns).
			Updates(person)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var reloaded models.Person
		if err := tx.Preload("Country").Where("persons.id = ?", person.ID).First(&reloaded).Error; err != nil {
			return err
		}
		*person = reloaded
		return nil
	})
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&models.Person{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}
