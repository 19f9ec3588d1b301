package requests

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ruposhibhojon/ruposhi-backend/internal/repo"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/db/models"
)

// Repository encapsulates food request persistence.
type Repository struct {
	repo.Base
}

// NewRepository constructs a request repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create inserts the request and assigns its id when unset.
func (r *Repository) Create(ctx context.Context, req *models.FoodRequest) (*models.FoodRequest, error) {
	if err := repo.Insert(ctx, r.Base, &req.ID, req); err != nil {
		return nil, err
	}
	return req, nil
}

// ListByRequester returns the recipient's requests, newest first.
func (r *Repository) ListByRequester(ctx context.Context, email string) ([]models.FoodRequest, error) {
	out := []models.FoodRequest{}
	err := r.DB(ctx).
		Where("LOWER(requester_email) = ?", normalizeEmail(email)).
		Order("request_date DESC, id DESC").
		Find(&out).Error
	return out, err
}

// DeleteOwned removes the request only when it belongs to email.
func (r *Repository) DeleteOwned(ctx context.Context, id uuid.UUID, email string) (int64, error) {
	res := r.DB(ctx).
		Where("id = ? AND LOWER(requester_email) = ?", id, normalizeEmail(email)).
		Delete(&models.FoodRequest{})
	return res.RowsAffected, res.Error
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
