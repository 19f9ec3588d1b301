package foods

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ruposhibhojon/ruposhi-backend/pkg/db"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/db/models"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/enums"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open test db")

	client := db.NewFromConn(conn)
	require.NoError(t, client.AutoMigrate(context.Background()))
	t.Cleanup(func() { _ = client.Close() })
	return conn
}

var testClock = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

// mustCreateListing inserts a listing with a deterministic created_at so insertion order
// follows call order.
func mustCreateListing(t *testing.T, conn *gorm.DB, name string, quantity int, availability enums.Availability, donor string) models.FoodListing {
	t.Helper()
	testClock = testClock.Add(time.Minute)
	listing := models.FoodListing{
		ID:             uuid.New(),
		Name:           name,
		ImageURL:       "https://img.example/" + name + ".png",
		Quantity:       quantity,
		PickupLocation: "Dhanmondi",
		Availability:   availability,
		Donator:        models.Donator{Email: donor, Name: "Donor"},
		CreatedAt:      testClock,
		UpdatedAt:      testClock,
	}
	require.NoError(t, conn.Create(&listing).Error, "create listing %s", name)
	return listing
}
