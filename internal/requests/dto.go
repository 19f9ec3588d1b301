package requests

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ruposhibhojon/ruposhi-backend/pkg/db/models"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/types"
)

// RequesterDTO is the recipient snapshot embedded in a request.
type RequesterDTO struct {
	UserEmail string `json:"userEmail"`
	UserName  string `json:"userName"`
}

// FoodRequestDTO is the wire shape of a request.
type FoodRequestDTO struct {
	ID             uuid.UUID      `json:"_id"`
	FoodID         uuid.UUID      `json:"foodId"`
	FoodName       string         `json:"food_name"`
	FoodImage      string         `json:"food_image"`
	PickupLocation string         `json:"pickup_location"`
	ExpiresAt      types.FlexTime `json:"expired_datetime"`
	DonatorEmail   string         `json:"donatorEmail"`
	Requester      RequesterDTO   `json:"requester"`
	RequestDate    time.Time      `json:"request_date"`
	Notes          string         `json:"additional_notes"`
}

// CreateRequestInput is the POST /food-request body. The listing fields are a snapshot
// taken by the client and are stored without checking the current listing.
type CreateRequestInput struct {
	FoodID         string         `json:"foodId"`
	FoodName       string         `json:"food_name"`
	FoodImage      string         `json:"food_image"`
	PickupLocation string         `json:"pickup_location"`
	ExpiresAt      types.FlexTime `json:"expired_datetime"`
	DonatorEmail   string         `json:"donatorEmail"`
	Requester      RequesterDTO   `json:"requester"`
	RequestDate    types.FlexTime `json:"request_date"`
	Notes          string         `json:"additional_notes"`
}

// FromModel maps a persisted request to its wire shape.
func FromModel(m models.FoodRequest) FoodRequestDTO {
	return FoodRequestDTO{
		ID:             m.ID,
		FoodID:         m.FoodID,
		FoodName:       m.FoodName,
		FoodImage:      m.FoodImage,
		PickupLocation: m.PickupLocation,
		ExpiresAt:      types.FlexTimeFrom(m.ExpiresAt),
		DonatorEmail:   m.DonatorEmail,
		Requester: RequesterDTO{
			UserEmail: m.Requester.Email,
			UserName:  m.Requester.Name,
		},
		RequestDate: m.RequestedAt,
		Notes:       m.Notes,
	}
}

func (in CreateRequestInput) toModel(foodID uuid.UUID, now time.Time) models.FoodRequest {
	requestedAt := now.UTC()
	if !in.RequestDate.IsZero() {
		requestedAt = in.RequestDate.UTC()
	}
	return models.FoodRequest{
		FoodID:         foodID,
		FoodName:       strings.TrimSpace(in.FoodName),
		FoodImage:      strings.TrimSpace(in.FoodImage),
		PickupLocation: strings.TrimSpace(in.PickupLocation),
		ExpiresAt:      in.ExpiresAt.Ptr(),
		DonatorEmail:   strings.TrimSpace(in.DonatorEmail),
		Requester: models.Requester{
			Email: strings.TrimSpace(in.Requester.UserEmail),
			Name:  strings.TrimSpace(in.Requester.UserName),
		},
		RequestedAt: requestedAt,
		Notes:       in.Notes,
	}
}
