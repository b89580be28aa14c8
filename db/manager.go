package db

import (
	"context"
	"fmt"

	"nexus/config"
	"nexus/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// Store owns the ORM handle. It is constructed once at startup and passed
// to the handlers; there is no package-level instance.
type Store struct {
	orm *gorm.DB
}

func dsnFromConfig(dbConf config.DBConfig) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		dbConf.Host, dbConf.Port, dbConf.User, dbConf.Password, dbConf.Name,
	)
}

func dialectorFromConfig(dbConf config.DBConfig) gorm.Dialector {
	if dbConf.Driver == "postgres" {
		return postgres.Open(dsnFromConfig(dbConf))
	}
	return sqlite.Open(dbConf.Path)
}

// Open connects to the configured database and creates the schema if it
// is absent. An inaccessible storage medium is unrecoverable at process
// start, so the error goes straight back to main.
func Open(dbConf config.DBConfig) (*Store, error) {
	orm, err := gorm.Open(dialectorFromConfig(dbConf), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if len(dbConf.Replicas) > 0 {
		replicas := make([]gorm.Dialector, 0, len(dbConf.Replicas))
		for _, r := range dbConf.Replicas {
			replicas = append(replicas, postgres.Open(dsnFromConfig(r)))
		}
		err = orm.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, fmt.Errorf("failed to register replicas: %w", err)
		}
	}

	store := &Store{orm: orm}
	if err := store.migrate(); err != nil {
		return nil, err
	}
	return store, nil
}

// NewStore wraps an already-open ORM handle and migrates the schema.
// Used by tests running against an in-memory database.
func NewStore(orm *gorm.DB) (*Store, error) {
	store := &Store{orm: orm}
	if err := store.migrate(); err != nil {
		return nil, err
	}
	return store, nil
}

// migrate creates the four tables if absent. Non-destructive, safe to run
// on every start.
func (s *Store) migrate() error {
	err := s.orm.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Product{},
		&models.Message{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// read returns a session routed to a replica when replicas are configured.
func (s *Store) read(ctx context.Context) *gorm.DB {
	return s.orm.WithContext(ctx).Clauses(dbresolver.Read)
}

// write returns a session routed to the master.
func (s *Store) write(ctx context.Context) *gorm.DB {
	return s.orm.WithContext(ctx).Clauses(dbresolver.Write)
}
