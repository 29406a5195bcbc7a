package countries

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/crud/internal/cache"
	"github.com/joefazee/crud/internal/deps"
)

const (
	CountryRepoKey    = "country_repository"
	CountryServiceKey = "country_service"
)

// MountPublic mounts country routes
func MountPublic(r *gin.RouterGroup, container *deps.Container) {
	handler := NewHandler(container.GetService(CountryServiceKey).(Service), container.Sanitizer)

	countriesGroup := r.Group("/countries")
	countriesGroup.GET("", handler.GetAllCountries)
	countriesGroup.GET("/:id", handler.GetCountryByID)
	countriesGroup.POST("", handler.AddCountry)
	countriesGroup.POST("/upload", handler.UploadFromExcel)
}

// InitRepositories registers the repository matching the configured store
func InitRepositories(container *deps.Container) {
	var repo Repository
	if container.UsesMemoryStore() {
		repo = NewMemoryRepository()
	} else {
		repo = NewRepository(container.DB)
	}
	container.RegisterRepository(CountryRepoKey, repo)
}

// InitServices registers the country service, caching lookups when a cache is configured
func InitServices(container *deps.Container) {
	repo := container.GetRepository(CountryRepoKey).(Repository)
	countryCache, _ := container.GetCache(CountryServiceKey).(cache.Cache[CountryResponse])

	container.RegisterService(CountryServiceKey, NewService(repo, countryCache, container.CacheTTL, container.Logger))
}
