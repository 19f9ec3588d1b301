package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ruposhibhojon/ruposhi-backend/pkg/enums"
)

// Donator is the denormalized donor snapshot stored on each listing.
type Donator struct {
	Email string `gorm:"column:email;not null;index:food_listings_donator_email_idx"`
	Name  string `gorm:"column:name"`
	Image string `gorm:"column:image"`
}

// FoodListing is a donor-submitted food item available for pickup.
type FoodListing struct {
	ID             uuid.UUID          `gorm:"column:id;type:uuid;primaryKey"`
	Name           string             `gorm:"column:food_name;not null"`
	ImageURL       string             `gorm:"column:food_image"`
	Quantity       int                `gorm:"column:food_quantity;not null;default:0"`
	ExpiresAt      *time.Time         `gorm:"column:expired_at"`
	PickupLocation string             `gorm:"column:pickup_location"`
	Notes          string             `gorm:"column:additional_notes"`
	Availability   enums.Availability `gorm:"column:availability;type:text;not null;index:food_listings_availability_idx"`
	Donator        Donator            `gorm:"embedded;embeddedPrefix:donator_"`
	CreatedAt      time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table used by migrations.
func (FoodListing) TableName() string {
	return "food_listings"
}
