package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/yatube/internal/config"
	"github.com/d60-Lab/yatube/internal/model"
)

// Open connects using the configured driver and applies migrations.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite", "":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	gdb, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

// Migrate creates or updates the schema for all entities.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Post{},
		&model.Comment{},
		&model.Follow{},
	)
}
