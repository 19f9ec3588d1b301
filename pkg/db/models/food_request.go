package models

import (
	"time"

	"github.com/google/uuid"
)

// Requester is the recipient snapshot stored on each request.
type Requester struct {
	Email string `gorm:"column:email;not null;index:food_requests_requester_email_idx"`
	Name  string `gorm:"column:name"`
}

// FoodRequest is a recipient's claim against a listing. The listing fields are copied at
// creation time and never re-validated.
type FoodRequest struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	FoodID         uuid.UUID  `gorm:"column:food_id;type:uuid;not null;index:food_requests_food_id_idx"`
	FoodName       string     `gorm:"column:food_name"`
	FoodImage      string     `gorm:"column:food_image"`
	PickupLocation string     `gorm:"column:pickup_location"`
	ExpiresAt      *time.Time `gorm:"column:expired_at"`
	DonatorEmail   string     `gorm:"column:donator_email"`
	Requester      Requester  `gorm:"embedded;embeddedPrefix:requester_"`
	RequestedAt    time.Time  `gorm:"column:request_date;not null"`
	Notes          string     `gorm:"column:additional_notes"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
}

// TableName pins the table used by migrations.
func (FoodRequest) TableName() string {
	return "food_requests"
}
