package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Person represents a person tracked by the directory
type Person struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name               string     `gorm:"type:varchar(40);not null" json:"name"`
	Email              string     `gorm:"type:varchar(40);not null" json:"email"`
	DateOfBirth        *Date      `gorm:"type:date" json:"date_of_birth"`
	Gender             *Gender    `gorm:"type:varchar(10)" json:"gender"`
	CountryID          *uuid.UUID `gorm:"type:uuid;index" json:"country_id"`
	Address            *string    `gorm:"type:varchar(200)" json:"address"`
	ReceiveNewsLetters bool       `gorm:"not null;default:false" json:"receive_news_letters"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Country *Country `gorm:"foreignKey:CountryID;references:ID;constraint:-" json:"country,omitempty"`
}

// TableName specifies the table name for Person model
func (*Person) TableName() string {
	return "persons"
}

// BeforeCreate sets up the model before creation
func (p *Person) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// CountryName returns the name of the associated country, if it was resolved
func (p *Person) CountryName() *string {
	if p.Country == nil {
		return nil
	}
	name := p.Country.Name
	return &name
}

// Validate performs validation on the person model
func (p *Person) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidPersonName
	}
	if strings.TrimSpace(p.Email) == "" {
		return ErrInvalidEmail
	}
	if p.Gender != nil && !p.Gender.Valid() {
		return ErrInvalidGender
	}
	return nil
}
