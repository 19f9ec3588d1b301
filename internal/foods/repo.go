package foods

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ruposhibhojon/ruposhi-backend/internal/repo"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/db/models"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/enums"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/pagination"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/visibility"
)

const (
	nameContainsClause = `LOWER(food_name) LIKE ? ESCAPE '\'`

	insertionOrder = "created_at ASC, id ASC"
	quantityOrder  = "food_quantity DESC, created_at ASC, id ASC"
	expiryOrder    = "expired_at IS NULL, expired_at DESC, created_at ASC, id ASC"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repository encapsulates food listing persistence.
type Repository struct {
	repo.Base
}

// NewRepository constructs a listing repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

func (r *Repository) discoverable(ctx context.Context) *gorm.DB {
	return r.DB(ctx).Model(&models.FoodListing{}).Scopes(visibility.Discoverable)
}

// Featured returns the largest discoverable listings by quantity.
func (r *Repository) Featured(ctx context.Context, limit int) ([]models.FoodListing, error) {
	listings := []models.FoodListing{}
	err := r.discoverable(ctx).
		Order(quantityOrder).
		Limit(limit).
		Find(&listings).Error
	return listings, err
}

// Count returns the number of discoverable listings.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.discoverable(ctx).Count(&count).Error
	return count, err
}

// List returns one page of discoverable listings in insertion order.
func (r *Repository) List(ctx context.Context, page pagination.Page) ([]models.FoodListing, error) {
	listings := []models.FoodListing{}
	err := r.discoverable(ctx).
		Order(insertionOrder).
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&listings).Error
	return listings, err
}

// Search returns discoverable listings whose name contains term, ignoring case.
// The term is matched literally; LIKE wildcards in it are escaped.
func (r *Repository) Search(ctx context.Context, term string) ([]models.FoodListing, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	listings := []models.FoodListing{}
	err := r.discoverable(ctx).
		Where(nameContainsClause, pattern).
		Order(insertionOrder).
		Find(&listings).Error
	return listings, err
}

// Sorted returns one page of discoverable listings ordered by the requested key.
func (r *Repository) Sorted(ctx context.Context, filter enums.SortFilter, page pagination.Page) ([]models.FoodListing, error) {
	order := quantityOrder
	if filter == enums.SortFilterExpiry {
		order = expiryOrder
	}
	listings := []models.FoodListing{}
	err := r.discoverable(ctx).
		Order(order).
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&listings).Error
	return listings, err
}

// FindByID returns the listing regardless of availability.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.FoodListing, error) {
	var listing models.FoodListing
	if err := r.DB(ctx).First(&listing, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

// ListByDonator returns every listing posted by the donor, newest first.
func (r *Repository) ListByDonator(ctx context.Context, email string) ([]models.FoodListing, error) {
	listings := []models.FoodListing{}
	err := r.DB(ctx).
		Where("LOWER(donator_email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Order("created_at DESC, id DESC").
		Find(&listings).Error
	return listings, err
}

// Create inserts the listing and assigns its id when unset.
func (r *Repository) Create(ctx context.Context, listing *models.FoodListing) (*models.FoodListing, error) {
	if err := repo.Insert(ctx, r.Base, &listing.ID, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// UpdateAvailability sets only the availability column; no other column, including
// updated_at, is touched. It returns the number of matched rows.
func (r *Repository) UpdateAvailability(ctx context.Context, id uuid.UUID, availability enums.Availability) (int64, error) {
	res := r.DB(ctx).
		Model(&models.FoodListing{}).
		Where("id = ?", id).
		UpdateColumn("availability", availability)
	return res.RowsAffected, res.Error
}

// Replace overwrites every editable column of the listing with the supplied values,
// zero values included. The donator snapshot is not editable.
func (r *Repository) Replace(ctx context.Context, id uuid.UUID, listing models.FoodListing) (int64, error) {
	res := r.DB(ctx).
		Model(&models.FoodListing{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"food_name":        listing.Name,
			"food_image":       listing.ImageURL,
			"food_quantity":    listing.Quantity,
			"expired_at":       listing.ExpiresAt,
			"pickup_location":  listing.PickupLocation,
			"additional_notes": listing.Notes,
			"availability":     listing.Availability,
		})
	return res.RowsAffected, res.Error
}

// Delete removes the listing by id and reports how many rows were removed.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.DB(ctx).Where("id = ?", id).Delete(&models.FoodListing{})
	return res.RowsAffected, res.Error
}
