package foods

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ruposhibhojon/ruposhi-backend/pkg/db"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/db/models"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/enums"
	pkgerrors "github.com/ruposhibhojon/ruposhi-backend/pkg/errors"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/pagination"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/types"
)

// Store is the persistence surface the service needs; *Repository satisfies it.
type Store interface {
	Featured(ctx context.Context, limit int) ([]models.FoodListing, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, page pagination.Page) ([]models.FoodListing, error)
	Search(ctx context.Context, term string) ([]models.FoodListing, error)
	Sorted(ctx context.Context, filter enums.SortFilter, page pagination.Page) ([]models.FoodListing, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.FoodListing, error)
	ListByDonator(ctx context.Context, email string) ([]models.FoodListing, error)
	Create(ctx context.Context, listing *models.FoodListing) (*models.FoodListing, error)
	UpdateAvailability(ctx context.Context, id uuid.UUID, availability enums.Availability) (int64, error)
	Replace(ctx context.Context, id uuid.UUID, listing models.FoodListing) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// Service exposes the food catalog operations. Every method issues at most one store call.
type Service interface {
	Featured(ctx context.Context) ([]FoodDTO, error)
	Count(ctx context.Context) (types.CountResult, error)
	List(ctx context.Context, page pagination.Page) ([]FoodDTO, error)
	Search(ctx context.Context, term string) ([]FoodDTO, error)
	Sorted(ctx context.Context, filter string, page pagination.Page) ([]FoodDTO, error)
	Get(ctx context.Context, id uuid.UUID) (FoodDTO, error)
	ListByDonator(ctx context.Context, email string) ([]FoodDTO, error)
	Create(ctx context.Context, input FoodInput) (types.InsertResult, error)
	Update(ctx context.Context, id uuid.UUID, statusOnly bool, input FoodInput) (types.UpdateResult, error)
	Delete(ctx context.Context, id uuid.UUID) (types.DeleteResult, error)
}

type service struct {
	store Store
}

// NewService builds the catalog service.
func NewService(store Store) (Service, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "food store is required")
	}
	return &service{store: store}, nil
}

func (s *service) Featured(ctx context.Context) ([]FoodDTO, error) {
	list, err := s.store.Featured(ctx, pagination.FeaturedLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load featured listings")
	}
	return fromModels(list), nil
}

func (s *service) Count(ctx context.Context) (types.CountResult, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return types.CountResult{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count listings")
	}
	return types.CountResult{Count: count}, nil
}

func (s *service) List(ctx context.Context, page pagination.Page) ([]FoodDTO, error) {
	list, err := s.store.List(ctx, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list listings")
	}
	return fromModels(list), nil
}

// Search matches term as a literal, case-insensitive substring of the listing name.
func (s *service) Search(ctx context.Context, term string) ([]FoodDTO, error) {
	list, err := s.store.Search(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "search listings")
	}
	return fromModels(list), nil
}

// Sorted rejects anything other than "time" or "quantity" before touching the store.
func (s *service) Sorted(ctx context.Context, filter string, page pagination.Page) ([]FoodDTO, error) {
	parsed, err := enums.ParseSortFilter(filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort filter").
			WithDetails(map[string]any{"field": "filter", "allowed": []string{string(enums.SortFilterExpiry), string(enums.SortFilterQuantity)}})
	}
	list, err := s.store.Sorted(ctx, parsed, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sort listings")
	}
	return fromModels(list), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (FoodDTO, error) {
	listing, err := s.store.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return FoodDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "listing not found")
		}
		return FoodDTO{}, storeError(err, "load listing")
	}
	return FromModel(*listing), nil
}

func (s *service) ListByDonator(ctx context.Context, email string) ([]FoodDTO, error) {
	list, err := s.store.ListByDonator(ctx, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list donor listings")
	}
	return fromModels(list), nil
}

// Create stores a new listing. Availability defaults to Available.
func (s *service) Create(ctx context.Context, input FoodInput) (types.InsertResult, error) {
	availability, err := resolveAvailability(input.Availability)
	if err != nil {
		return types.InsertResult{}, err
	}
	listing := input.toModel(availability)
	created, err := s.store.Create(ctx, &listing)
	if err != nil {
		return types.InsertResult{}, storeError(err, "create listing")
	}
	return types.InsertResult{Acknowledged: true, InsertedID: created.ID}, nil
}

// Update applies either the status-only shape (availability alone) or the full
// replacement, in which omitted fields are stored as zero values. Availability is
// the exception: the column is NOT NULL and enum-checked, so a full replacement
// without it stores Available, as Create does.
func (s *service) Update(ctx context.Context, id uuid.UUID, statusOnly bool, input FoodInput) (types.UpdateResult, error) {
	var (
		matched int64
		err     error
	)
	if statusOnly {
		availability, parseErr := enums.ParseAvailability(input.Availability)
		if parseErr != nil {
			return types.UpdateResult{}, availabilityError(parseErr)
		}
		matched, err = s.store.UpdateAvailability(ctx, id, availability)
	} else {
		availability, resolveErr := resolveAvailability(input.Availability)
		if resolveErr != nil {
			return types.UpdateResult{}, resolveErr
		}
		matched, err = s.store.Replace(ctx, id, input.toModel(availability))
	}
	if err != nil {
		return types.UpdateResult{}, storeError(err, "update listing")
	}
	if matched == 0 {
		return types.UpdateResult{}, pkgerrors.New(pkgerrors.CodeNotFound, "listing not found")
	}
	return types.UpdateResult{Acknowledged: true, MatchedCount: matched}, nil
}

// Delete is idempotent: a missing id reports zero deletions.
func (s *service) Delete(ctx context.Context, id uuid.UUID) (types.DeleteResult, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return types.DeleteResult{}, storeError(err, "delete listing")
	}
	return types.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}

func resolveAvailability(raw string) (enums.Availability, error) {
	if strings.TrimSpace(raw) == "" {
		return enums.AvailabilityAvailable, nil
	}
	availability, err := enums.ParseAvailability(raw)
	if err != nil {
		return "", availabilityError(err)
	}
	return availability, nil
}

func availabilityError(err error) error {
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid availability").
		WithDetails(map[string]any{"field": "availability"})
}

func storeError(err error, message string) error {
	if db.IsInvalidInput(err) {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, message)
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, message)
}
