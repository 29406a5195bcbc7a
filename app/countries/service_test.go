package countries

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/joefazee/crud/internal/cache"
	"github.com/joefazee/crud/models"
	"github.com/joefazee/crud/tests/mocks"
)

// workbook builds an xlsx with a header row followed by names in column A
func workbook(t *testing.T, sheet string, names ...string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	require.NoError(t, f.SetCellValue(sheet, "A1", "Country Name"))
	for i, name := range names {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, name))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestService_AddCountry(t *testing.T) {
	ctx := context.Background()

	t.Run("Nil Request", func(t *testing.T) {
		mockRepo := new(mocks.MockCountryRepository)
		srvc := NewService(mockRepo, nil, 0, nil)

		result, err := srvc.AddCountry(ctx, nil)

		assert.ErrorIs(t, err, models.ErrNullArgument)
		assert.Nil(t, result)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Blank Name", func(t *testing.T) {
		mockRepo := new(mocks.MockCountryRepository)
		srvc := NewService(mockRepo, nil, 0, nil)

		result, err := srvc.AddCountry(ctx, &CountryAddRequest{CountryName: "  "})

		assert.ErrorIs(t, err, models.ErrInvalidCountryName)
		assert.Nil(t, result)
		mockRepo.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate Name", func(t *testing.T) {
		mockRepo := new(mocks.MockCountryRepository)
		srvc := NewService(mockRepo, nil, 0, nil)
		mockRepo.On("GetByName", ctx, "India").Return(&models.Country{ID: uuid.New(), Name: "India"}, nil)

		result, err := srvc.AddCountry(ctx, &CountryAddRequest{CountryName: "India"})

		assert.ErrorIs(t, err, models.ErrDuplicateCountryName)
		assert.Nil(t, result)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate Detected By Store", func(t *testing.T) {
		mockRepo := new(mocks.MockCountryRepository)
		srvc := NewService(mockRepo, nil, 0, nil)
		mockRepo.On("GetByName", ctx, "India").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Country")).Return(gorm.ErrDuplicatedKey)

		_, err := srvc.AddCountry(ctx, &CountryAddRequest{CountryName: "India"})

		assert.ErrorIs(t, err, models.ErrDuplicateCountryName)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockCountryRepository)
		srvc := NewService(mockRepo, nil, 0, nil)
		id := uuid.New()
		mockRepo.On("GetByName", ctx, "India").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Country")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.Country).ID = id
			}).
			Return(nil)

		result, err := srvc.AddCountry(ctx, &CountryAddRequest{CountryName: "India"})

		require.NoError(t, err)
		assert.Equal(t, id, result.CountryID)
		assert.Equal(t, "India", result.CountryName)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Lookup Error", func(t *testing.T) {
		mockRepo := new(mocks.MockCountryRepository)
		srvc := NewService(mockRepo, nil, 0, nil)
		mockRepo.On("GetByName", ctx, "India").Return(nil, assert.AnError)

		_, err := srvc.AddCountry(ctx, &CountryAddRequest{CountryName: "India"})

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestService_GetAllCountries(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockCountryRepository)
		srvc := NewService(mockRepo, nil, 0, nil)
		mockRepo.On("GetAll", ctx).Return([]models.Country{
			{ID: uuid.New(), Name: "India"},
			{ID: uuid.New(), Name: "Japan"},
		}, nil)

		result, err := srvc.GetAllCountries(ctx)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "Japan", result[1].CountryName)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repository Error", func(t *testing.T) {
		mockRepo := new(mocks.MockCountryRepository)
		srvc := NewService(mockRepo, nil, 0, nil)
		mockRepo.On("GetAll", ctx).Return(nil, assert.AnError)

		result, err := srvc.GetAllCountries(ctx)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestService_GetCountryByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Nil ID", func(t *testing.T) {
		mockRepo := new(mocks.MockCountryRepository)
		srvc := NewService(mockRepo, nil, 0, nil)

		result, err := srvc.GetCountryByID(ctx, nil)

		assert.NoError(t, err)
		assert.Nil(t, result)
		mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(mocks.MockCountryRepository)
		srvc := NewService(mockRepo, nil, 0, nil)
		id := uuid.New()
		mockRepo.On("GetByID", ctx, id).Return(nil, gorm.ErrRecordNotFound)

		result, err := srvc.GetCountryByID(ctx, &id)

		assert.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("Repository Error", func(t *testing.T) {
		mockRepo := new(mocks.MockCountryRepository)
		srvc := NewService(mockRepo, nil, 0, nil)
		id := uuid.New()
		mockRepo.On("GetByID", ctx, id).Return(nil, assert.AnError)

		result, err := srvc.GetCountryByID(ctx, &id)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, result)
	})

	t.Run("Cached After First Lookup", func(t *testing.T) {
		mockRepo := new(mocks.MockCountryRepository)
		countryCache := cache.NewMemoryCache[CountryResponse]()
		defer countryCache.Stop()
		srvc := NewService(mockRepo, countryCache, 0, nil)
		id := uuid.New()
		mockRepo.On("GetByID", ctx, id).Return(&models.Country{ID: id, Name: "India"}, nil).Once()

		first, err := srvc.GetCountryByID(ctx, &id)
		require.NoError(t, err)
		second, err := srvc.GetCountryByID(ctx, &id)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, "India", second.CountryName)
		mockRepo.AssertNumberOfCalls(t, "GetByID", 1)
	})
}

func TestService_UploadCountriesFromExcel(t *testing.T) {
	ctx := context.Background()

	t.Run("Inserts New Names Only", func(t *testing.T) {
		repo := NewMemoryRepository(models.Country{ID: uuid.New(), Name: "USA"})
		srvc := NewService(repo, nil, 0, nil)

		inserted, err := srvc.UploadCountriesFromExcel(ctx,
			workbook(t, UploadSheetName, "India", "", "USA", "India", " Japan "))

		require.NoError(t, err)
		assert.Equal(t, 2, inserted)

		all, err := srvc.GetAllCountries(ctx)
		require.NoError(t, err)
		names := make([]string, len(all))
		for i := range all {
			names[i] = all[i].CountryName
		}
		assert.ElementsMatch(t, []string{"USA", "India", "Japan"}, names)
	})

	t.Run("Missing Worksheet", func(t *testing.T) {
		srvc := NewService(NewMemoryRepository(), nil, 0, nil)

		inserted, err := srvc.UploadCountriesFromExcel(ctx, workbook(t, "Sheet9", "India"))

		assert.ErrorIs(t, err, models.ErrWorksheetNotFound)
		assert.Zero(t, inserted)
	})

	t.Run("Not A Workbook", func(t *testing.T) {
		srvc := NewService(NewMemoryRepository(), nil, 0, nil)

		_, err := srvc.UploadCountriesFromExcel(ctx, bytes.NewBufferString("plain text"))

		assert.Error(t, err)
	})
}
