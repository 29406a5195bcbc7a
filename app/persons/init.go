package persons

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/crud/app/api"
	"github.com/joefazee/crud/app/countries"
	"github.com/joefazee/crud/internal/deps"
	"github.com/joefazee/crud/internal/router"
)

const (
	PersonRepoKey    = "person_repository"
	PersonServiceKey = "person_service"

	tokenSubject = "persons"
)

// Mount returns the route mounter for persons configured by cfg
func Mount(cfg *Config) router.MountFunc {
	return func(r *gin.RouterGroup, container *deps.Container) {
		columns, _ := ParseColumnSet(cfg.ExcelColumns)
		handler := NewHandler(container.GetService(PersonServiceKey).(Service), container.Sanitizer, columns)

		personsGroup := r.Group("/persons", api.ResponseHeader(cfg.ResponseHeaderKey, cfg.ResponseHeaderValue))
		personsGroup.GET("",
			PersonsListFilter(),
			api.TokenResult(container.TokenMaker, tokenSubject, cfg.TokenTTL, container.Logger),
			handler.GetPersons)
		personsGroup.GET("/export/csv", handler.ExportCSV)
		personsGroup.GET("/export/excel", handler.ExportExcel)
		personsGroup.GET("/export/pdf", handler.ExportPDF)
		personsGroup.GET("/:id", handler.GetPersonByID)
		personsGroup.POST("", handler.AddPerson)

		guarded := personsGroup.Group("", api.TokenAuthorization(container.TokenMaker))
		guarded.PUT("/:id", api.FeatureDisabled(cfg.DisableEdit), handler.UpdatePerson)
		guarded.DELETE("/:id", api.FeatureDisabled(cfg.DisableDelete), handler.DeletePerson)
	}
}

// InitRepositories registers the repository matching the configured store
func InitRepositories(container *deps.Container) {
	var repo Repository
	if container.UsesMemoryStore() {
		countryRepo, _ := container.GetRepository(countries.CountryRepoKey).(countries.Repository)
		repo = NewMemoryRepository(countryRepo)
	} else {
		repo = NewRepository(container.DB)
	}
	container.RegisterRepository(PersonRepoKey, repo)
}

// InitServices registers the person service
func InitServices(container *deps.Container) {
	repo := container.GetRepository(PersonRepoKey).(Repository)
	countrySvc, _ := container.GetService(countries.CountryServiceKey).(countries.Service)
	container.RegisterService(PersonServiceKey, NewService(repo, countrySvc, container.Logger))
}
