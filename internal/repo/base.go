package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base is embedded by the domain repositories.
type Base struct {
	db *gorm.DB
}

func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB returns the connection bound to ctx; a nil ctx yields the raw connection.
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}

// Insert stores record after assigning *id a fresh v4 uuid when it is unset.
// Ids are generated here so sqlite and Postgres behave the same.
func Insert[T any](ctx context.Context, b Base, id *uuid.UUID, record *T) error {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	return b.DB(ctx).Create(record).Error
}
