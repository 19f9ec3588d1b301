package requests

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ruposhibhojon/ruposhi-backend/pkg/db"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/db/models"
	pkgerrors "github.com/ruposhibhojon/ruposhi-backend/pkg/errors"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/types"
)

// Store is the persistence surface the service needs; *Repository satisfies it.
type Store interface {
	Create(ctx context.Context, req *models.FoodRequest) (*models.FoodRequest, error)
	ListByRequester(ctx context.Context, email string) ([]models.FoodRequest, error)
	DeleteOwned(ctx context.Context, id uuid.UUID, email string) (int64, error)
}

// Service exposes recipient request operations.
type Service interface {
	Create(ctx context.Context, input CreateRequestInput) (types.InsertResult, error)
	ListByRequester(ctx context.Context, email string) ([]FoodRequestDTO, error)
	DeleteOwned(ctx context.Context, id uuid.UUID, email string) (types.DeleteResult, error)
}

type service struct {
	store Store
	now   func() time.Time
}

// NewService builds the request service.
func NewService(store Store) (Service, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "request store is required")
	}
	return &service{store: store, now: time.Now}, nil
}

func (s *service) Create(ctx context.Context, input CreateRequestInput) (types.InsertResult, error) {
	foodID, err := uuid.Parse(strings.TrimSpace(input.FoodID))
	if err != nil {
		return types.InsertResult{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid food id").
			WithDetails(map[string]any{"field": "foodId"})
	}
	req := input.toModel(foodID, s.now())
	created, err := s.store.Create(ctx, &req)
	if err != nil {
		return types.InsertResult{}, storeError(err, "create request")
	}
	return types.InsertResult{Acknowledged: true, InsertedID: created.ID}, nil
}

func (s *service) ListByRequester(ctx context.Context, email string) ([]FoodRequestDTO, error) {
	list, err := s.store.ListByRequester(ctx, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list requests")
	}
	out := make([]FoodRequestDTO, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out, nil
}

// DeleteOwned removes a request belonging to email. A request owned by someone else
// is left alone and reported as zero deletions.
func (s *service) DeleteOwned(ctx context.Context, id uuid.UUID, email string) (types.DeleteResult, error) {
	deleted, err := s.store.DeleteOwned(ctx, id, email)
	if err != nil {
		return types.DeleteResult{}, storeError(err, "delete request")
	}
	return types.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}

func storeError(err error, message string) error {
	if db.IsInvalidInput(err) {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, message)
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, message)
}
