package users

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ruposhibhojon/ruposhi-backend/pkg/db"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/db/models"
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

func TestRepositoryCreateKeepsPayloadVerbatim(t *testing.T) {
	conn := openTestDB(t)
	svc, err := NewService(NewRepository(conn))
	require.NoError(t, err)

	payload := `{"email":"c@x.com","displayName":"Chaya","photoURL":"https://img/c.png","lastLogin":"2025-01-01"}`
	res, err := svc.Create(context.Background(), SignupPayload(payload))
	require.NoError(t, err)
	require.True(t, res.Acknowledged)

	var stored models.User
	require.NoError(t, conn.First(&stored, "id = ?", res.InsertedID).Error)
	assert.Equal(t, "c@x.com", stored.Email)
	assert.Equal(t, "Chaya", stored.Name)
	assert.Equal(t, "https://img/c.png", stored.PhotoURL)
	assert.JSONEq(t, payload, string(stored.Profile))
}

func TestRepositoryCreateDoesNotDedupe(t *testing.T) {
	conn := openTestDB(t)
	repo := NewRepository(conn)

	for i := 0; i < 2; i++ {
		_, err := repo.Create(context.Background(), &models.User{Email: "c@x.com", Profile: []byte(`{"email":"c@x.com"}`)})
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, conn.Model(&models.User{}).Where("email = ?", "c@x.com").Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
