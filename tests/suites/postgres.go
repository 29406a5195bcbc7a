package suites

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/joefazee/crud/app/database"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	testDatabase = "crud_test"
	testUser     = "crud"
	testPassword = "crud"
)

// PostgresContainer is a throwaway postgres instance for repository suites
type PostgresContainer struct {
	testcontainers.Container
	Config           database.Config
	ConnectionString string
}

func NewPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	const port = "5432/tcp"

	dbURL := func(host string, port nat.Port) string {
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			testUser, testPassword, host, port.Port(), testDatabase)
	}

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17.5-alpine3.21",
		ExposedPorts: []string{port},
		Cmd:          []string{"postgres", "-c", "fsync=off"},
		Env: map[string]string{
			"POSTGRES_DB":       testDatabase,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_USER":     testUser,
		},
		WaitingFor: wait.ForSQL(port, "postgres", dbURL).
			WithStartupTimeout(30 * time.Second).
			WithQuery("SELECT 1"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	mappedPort, err := container.MappedPort(ctx, port)
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	cfg := database.GetDefaultConfig()
	cfg.Host = host
	cfg.Port = mappedPort.Port()
	cfg.User = testUser
	cfg.Password = testPassword
	cfg.Database = testDatabase

	return &PostgresContainer{
		Container:        container,
		Config:           cfg,
		ConnectionString: dbURL(host, mappedPort),
	}, nil
}

// RepositoryTestSuite starts postgres once per suite, applies migrations
// and empties every table before each test.
type RepositoryTestSuite struct {
	suite.Suite
	Container      *PostgresContainer
	DB             *gorm.DB
	MigrationsPath string
}

func (s *RepositoryTestSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("Skipping database integration tests in short mode")
	}

	if s.MigrationsPath == "" {
		s.MigrationsPath = findMigrationsPath()
	}

	container, err := NewPostgresContainer(context.Background())
	if err != nil {
		s.T().Fatalf("Failed to create postgres container: %v", err)
	}
	s.Container = container

	db, err := database.New(&container.Config)
	if err != nil {
		s.T().Fatalf("Failed to open gorm connection: %v", err)
	}
	s.DB = db

	if err := s.RunMigrations(); err != nil {
		s.T().Fatalf("Failed to run migrations: %v", err)
	}
}

func (s *RepositoryTestSuite) TearDownSuite() {
	if s.DB != nil {
		if sqlDB, err := s.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if s.Container != nil {
		_ = s.Container.Terminate(context.Background())
	}
}

func (s *RepositoryTestSuite) SetupTest() {
	s.Require().NoError(s.DB.Exec(`TRUNCATE TABLE persons, countries`).Error)
}

func (s *RepositoryTestSuite) RunMigrations() error {
	if s.MigrationsPath == "" {
		return errors.New("migrations path not set")
	}

	m, err := migrate.New("file://"+s.MigrationsPath, s.Container.ConnectionString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func (s *RepositoryTestSuite) CountRecords(table string) int64 {
	var c int64
	s.DB.Table(table).Count(&c)
	return c
}

func findMigrationsPath() string {
	wd, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return filepath.Join(wd, "migrations")
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			return ""
		}
		wd = parent
	}
}
