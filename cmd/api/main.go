package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joefazee/crud/app"
	"github.com/joefazee/crud/app/api"
	"github.com/joefazee/crud/app/countries"
	"github.com/joefazee/crud/app/database"
	apiDoc "github.com/joefazee/crud/app/doc"
	"github.com/joefazee/crud/app/persons"
	_ "github.com/joefazee/crud/docs"
	"github.com/joefazee/crud/internal/cache"
	"github.com/joefazee/crud/internal/deps"
	"github.com/joefazee/crud/internal/logger"
	"github.com/joefazee/crud/internal/router"
	"github.com/joefazee/crud/internal/sanitizer"
	"github.com/joefazee/crud/internal/security"
)

// @title CRUD API
// @version 1.0
// @description Persons and countries directory with search, sort and export.

// @contact.name API Support Team

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name Auth-Key
func main() {
	bootLog := logger.NewZeroLogger(os.Stderr, logger.LevelInfo, logger.Fields{"app": "crud"})

	cfg, err := app.LoadConfig()
	if err != nil {
		bootLog.Fatal(err, logger.Fields{"stage": "config"})
	}

	log := logger.NewZeroLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel), logger.Fields{
		"app": "crud",
		"env": cfg.Env,
	})

	var db *gorm.DB
	if cfg.Store == deps.PostgresStore {
		db, err = database.New(&cfg.DB)
		if err != nil {
			log.Fatal(err, logger.Fields{"stage": "database"})
		}
	}

	tokenMaker, err := security.NewPasetoMaker(cfg.Security.SymmetricKey)
	if err != nil {
		log.Fatal(err, logger.Fields{"stage": "token maker"})
	}

	countryCache, err := cache.New[countries.CountryResponse](cfg.Cache)
	if err != nil {
		log.Fatal(err, logger.Fields{"stage": "cache"})
	}

	container := deps.NewContainer(db, cfg.Store, tokenMaker, sanitizer.NewHTMLStripper(), log)
	container.CacheTTL = cfg.Cache.TTL
	container.RegisterCache(countries.CountryServiceKey, countryCache)

	countries.InitRepositories(container)
	persons.InitRepositories(container)
	countries.InitServices(container)
	persons.InitServices(container)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(api.ErrorHandling(log), api.RequestLogger(log), api.CorsMiddleware())
	r.GET("/healthz", api.HealthCheck(cfg.Env, cfg.Store))

	router.NewMounter(container, "/api/v1").
		Public(r).
		Mount(countries.MountPublic).
		Mount(persons.Mount(&cfg.Persons))
	apiDoc.Init(r, cfg.Env)

	log.Info("starting CRUD API server", logger.Fields{"addr": cfg.Addr(), "store": cfg.Store})
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal(err, logger.Fields{"stage": "serve"})
	}
}
