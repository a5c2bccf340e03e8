package database

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewGormDB creates a new GORM database connection using the provided DSN.
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey; the collection store relies on that as the backstop
// for concurrent duplicate inserts.
func NewGormDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("database DSN is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	return db, nil
}

// NewCatalogDB opens the catalog store (cards, sets and lookup tables)
func NewCatalogDB(dsn string) (*gorm.DB, error) {
	return NewGormDB(dsn)
}

// NewUsersDB opens the user store (users and collection memberships). This is
// a physically separate database from the catalog; see pkg/collection for the
// cross-store consistency rules.
func NewUsersDB(dsn string) (*gorm.DB, error) {
	return NewGormDB(dsn)
}
