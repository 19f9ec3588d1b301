package users

import (
	"context"

	"gorm.io/gorm"

	"github.com/ruposhibhojon/ruposhi-backend/internal/repo"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/db/models"
)

// Repository exposes user persistence. Users are append-only.
type Repository struct {
	repo.Base
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create inserts a new user and returns the persisted model.
func (r *Repository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := repo.Insert(ctx, r.Base, &user.ID, user); err != nil {
		return nil, err
	}
	return user, nil
}
