package countries

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/crud/internal/cache"
	"github.com/joefazee/crud/internal/export"
	"github.com/joefazee/crud/internal/logger"
	"github.com/joefazee/crud/models"
)

const (
	// UploadSheetName is the worksheet read by UploadCountriesFromExcel
	UploadSheetName = "Countries"

	cacheKeyPrefix = "country:"
)

// service implements the Service interface
type service struct {
	repo     Repository
	cache    cache.Cache[CountryResponse]
	cacheTTL time.Duration
	logger   logger.Logger
}

// NewService creates a new country service. A nil cache disables caching.
func NewService(repo Repository, countryCache cache.Cache[CountryResponse], cacheTTL time.Duration, log logger.Logger) Service {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &service{
		repo:     repo,
		cache:    countryCache,
		cacheTTL: cacheTTL,
		logger:   log,
	}
}

// AddCountry validates and stores a new country with a unique name
func (s *service) AddCountry(ctx context.Context, req *CountryAddRequest) (*CountryResponse, error) {
	if req == nil {
		return nil, models.ErrNullArgument
	}

	country := req.ToCountry()
	if err := country.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(ctx, country.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrDuplicateCountryName
	}

	if err := s.repo.Create(ctx, country); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrDuplicateCountryName
		}
		return nil, err
	}

	s.logger.Info("country added", logger.Fields{"country_id": country.ID.String(), "name": country.Name})
	return ToCountryResponse(country), nil
}

// GetAllCountries returns all countries
func (s *service) GetAllCountries(ctx context.Context) ([]CountryResponse, error) {
	countries, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToCountryResponseList(countries), nil
}

// GetCountryByID returns a country by ID, or nil when id is nil or unknown
func (s *service) GetCountryByID(ctx context.Context, id *uuid.UUID) (*CountryResponse, error) {
	if id == nil {
		return nil, nil
	}

	key := cacheKeyPrefix + id.String()
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Error(err, logger.Fields{"cache_key": key})
		}
	}

	country, err := s.repo.GetByID(ctx, *id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	res := ToCountryResponse(country)
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, *res, s.cacheTTL); err != nil {
			s.logger.Error(err, logger.Fields{"cache_key": key})
		}
	}
	return res, nil
}

// UploadCountriesFromExcel inserts every new name listed in column A of the
// Countries sheet, below the header row, and returns how many were inserted
func (s *service) UploadCountriesFromExcel(ctx context.Context, r io.Reader) (int, error) {
	names, err := export.ReadColumn(r, UploadSheetName, 1)
	if err != nil {
		if errors.Is(err, export.ErrSheetNotFound) {
			return 0, fmt.Errorf("%w: %s", models.ErrWorksheetNotFound, UploadSheetName)
		}
		return 0, err
	}

	inserted := 0
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		_, err := s.AddCountry(ctx, &CountryAddRequest{CountryName: name})
		if errors.Is(err, models.ErrDuplicateCountryName) {
			continue
		}
		if err != nil {
			return inserted, err
		}
		inserted++
	}

	s.logger.Info("countries uploaded", logger.Fields{"rows": len(names), "inserted": inserted})
	return inserted, nil
}
