package users

import (
	"context"

	"github.com/ruposhibhojon/ruposhi-backend/pkg/db/models"
	pkgerrors "github.com/ruposhibhojon/ruposhi-backend/pkg/errors"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/types"
)

// Store is the persistence surface the service needs; *Repository satisfies it.
type Store interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
}

// Service records signups.
type Service interface {
	Create(ctx context.Context, payload SignupPayload) (types.InsertResult, error)
}

type service struct {
	store Store
}

// NewService builds the user service.
func NewService(store Store) (Service, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user store is required")
	}
	return &service{store: store}, nil
}

// Create stores the payload as-is. Repeated signups with the same email create new rows.
func (s *service) Create(ctx context.Context, payload SignupPayload) (types.InsertResult, error) {
	user, err := payload.toModel()
	if err != nil {
		return types.InsertResult{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "user payload must be a JSON object")
	}
	created, err := s.store.Create(ctx, user)
	if err != nil {
		return types.InsertResult{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user")
	}
	return types.InsertResult{Acknowledged: true, InsertedID: created.ID}, nil
}
