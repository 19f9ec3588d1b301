package foods

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ruposhibhojon/ruposhi-backend/pkg/db/models"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/enums"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/types"
)

// DonatorDTO is the donor snapshot embedded in a listing.
type DonatorDTO struct {
	UserEmail string `json:"userEmail"`
	UserName  string `json:"userName"`
	UserImage string `json:"userImage"`
}

// FoodDTO is the wire shape of a listing.
type FoodDTO struct {
	ID             uuid.UUID          `json:"_id"`
	Name           string             `json:"food_name"`
	ImageURL       string             `json:"food_image"`
	Quantity       int                `json:"food_quantity"`
	ExpiresAt      types.FlexTime     `json:"expired_datetime"`
	PickupLocation string             `json:"pickup_location"`
	Notes          string             `json:"additional_notes"`
	Availability   enums.Availability `json:"availability"`
	Donator        DonatorDTO         `json:"donator"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// FoodInput carries the fields accepted by add-food and full updates.
type FoodInput struct {
	Name           string         `json:"food_name"`
	ImageURL       string         `json:"food_image"`
	Quantity       types.FlexInt  `json:"food_quantity"`
	ExpiresAt      types.FlexTime `json:"expired_datetime"`
	PickupLocation string         `json:"pickup_location"`
	Notes          string         `json:"additional_notes"`
	Availability   string         `json:"availability"`
	Donator        DonatorDTO     `json:"donator"`
}

// UpdateFoodRequest is the PATCH /update-food body; _id is read when the query omits id.
type UpdateFoodRequest struct {
	ID string `json:"_id"`
	FoodInput
}

// FromModel maps a persisted listing to its wire shape.
func FromModel(m models.FoodListing) FoodDTO {
	return FoodDTO{
		ID:             m.ID,
		Name:           m.Name,
		ImageURL:       m.ImageURL,
		Quantity:       m.Quantity,
		ExpiresAt:      types.FlexTimeFrom(m.ExpiresAt),
		PickupLocation: m.PickupLocation,
		Notes:          m.Notes,
		Availability:   m.Availability,
		Donator: DonatorDTO{
			UserEmail: m.Donator.Email,
			UserName:  m.Donator.Name,
			UserImage: m.Donator.Image,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromModels(list []models.FoodListing) []FoodDTO {
	out := make([]FoodDTO, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}

func (in FoodInput) toModel(availability enums.Availability) models.FoodListing {
	return models.FoodListing{
		Name:           strings.TrimSpace(in.Name),
		ImageURL:       strings.TrimSpace(in.ImageURL),
		Quantity:       int(in.Quantity),
		ExpiresAt:      in.ExpiresAt.Ptr(),
		PickupLocation: strings.TrimSpace(in.PickupLocation),
		Notes:          in.Notes,
		Availability:   availability,
		Donator: models.Donator{
			Email: strings.TrimSpace(in.Donator.UserEmail),
			Name:  strings.TrimSpace(in.Donator.UserName),
			Image: strings.TrimSpace(in.Donator.UserImage),
		},
	}
}
