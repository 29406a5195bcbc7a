package deps

import (
	"time"

	"gorm.io/gorm"

	"github.com/joefazee/crud/internal/logger"
	"github.com/joefazee/crud/internal/sanitizer"
	"github.com/joefazee/crud/internal/security"
)

const (
	MemoryStore   = "memory"
	PostgresStore = "postgres"
)

// Container holds all shared dependencies
type Container struct {
	DB         *gorm.DB
	Store      string
	TokenMaker security.Maker
	Sanitizer  sanitizer.HTMLStripperer
	Logger     logger.Logger
	CacheTTL   time.Duration

	// Store repositories, services and typed caches as interfaces to avoid imports
	repositories map[string]interface{}
	services     map[string]interface{}
	caches       map[string]interface{}
}

func NewContainer(db *gorm.DB, store string, tokenMaker security.Maker, sanitizer sanitizer.HTMLStripperer, logger logger.Logger) *Container {
	return &Container{
		DB:           db,
		Store:        store,
		TokenMaker:   tokenMaker,
		Sanitizer:    sanitizer,
		Logger:       logger,
		repositories: make(map[string]interface{}),
		services:     make(map[string]interface{}),
		caches:       make(map[string]interface{}),
	}
}

// UsesMemoryStore reports whether repositories should live in process memory
func (c *Container) UsesMemoryStore() bool {
	return c.Store == MemoryStore || c.DB == nil
}

// RegisterRepository stores a repository with a key
func (c *Container) RegisterRepository(key string, repo interface{}) {
	c.repositories[key] = repo
}

// GetRepository retrieves a repository by key
func (c *Container) GetRepository(key string) interface{} {
	return c.repositories[key]
}

// RegisterService stores a service with a key
func (c *Container) RegisterService(key string, service interface{}) {
	c.services[key] = service
}

// GetService retrieves a service by key
func (c *Container) GetService(key string) interface{} {
	return c.services[key]
}

// RegisterCache stores a typed cache with a key
func (c *Container) RegisterCache(key string, cache interface{}) {
	c.caches[key] = cache
}

// GetCache retrieves a cache by key, nil when none was registered
func (c *Container) GetCache(key string) interface{} {
	return c.caches[key]
}
