package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User is the signup record. The raw signup payload is kept verbatim in Profile.
type User struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	Email     string         `gorm:"column:email;index:users_email_idx"`
	Name      string         `gorm:"column:name"`
	PhotoURL  string         `gorm:"column:photo_url"`
	Profile   datatypes.JSON `gorm:"column:profile"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
}

// TableName pins the table used by migrations.
func (User) TableName() string {
	return "users"
}
