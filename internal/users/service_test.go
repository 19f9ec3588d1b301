package users

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruposhibhojon/ruposhi-backend/pkg/db/models"
	pkgerrors "github.com/ruposhibhojon/ruposhi-backend/pkg/errors"
)

func TestServiceCreateStoresPayloadVerbatim(t *testing.T) {
	conn := openTestDB(t)
	svc, err := NewService(NewRepository(conn))
	require.NoError(t, err)

	payload := `{"email":"new@x.com","name":"New User","photo":"https://img/p.png","extra":{"nested":[1,2]}}`
	res, err := svc.Create(context.Background(), SignupPayload(payload))
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	require.NotEqual(t, uuid.Nil, res.InsertedID)

	var stored models.User
	require.NoError(t, conn.First(&stored, "id = ?", res.InsertedID).Error)
	assert.Equal(t, "new@x.com", stored.Email)
	assert.Equal(t, "New User", stored.Name)
	assert.Equal(t, "https://img/p.png", stored.PhotoURL)
	assert.JSONEq(t, payload, string(stored.Profile))
}

func TestServiceCreateDoesNotDeduplicate(t *testing.T) {
	conn := openTestDB(t)
	svc, err := NewService(NewRepository(conn))
	require.NoError(t, err)

	payload := SignupPayload(`{"email":"same@x.com"}`)
	first, err := svc.Create(context.Background(), payload)
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), payload)
	require.NoError(t, err)
	assert.NotEqual(t, first.InsertedID, second.InsertedID)

	var count int64
	require.NoError(t, conn.Model(&models.User{}).Where("email = ?", "same@x.com").Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestServiceCreateRejectsNonObjects(t *testing.T) {
	svc, err := NewService(&failingStore{})
	require.NoError(t, err)

	for _, raw := range []string{`[1,2]`, `"text"`, `nope`} {
		_, err := svc.Create(context.Background(), SignupPayload(raw))
		require.Error(t, err, raw)
		assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
	}
}

func TestServiceCreateWrapsStoreFailures(t *testing.T) {
	svc, err := NewService(&failingStore{err: fmt.Errorf("disk full")})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), SignupPayload(`{}`))
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeDependency))
}

func TestSignupPayloadPromotesAlternateKeys(t *testing.T) {
	user, err := SignupPayload(`{"email":" a@x.com ","displayName":"A","photoURL":"u"}`).toModel()
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "A", user.Name)
	assert.Equal(t, "u", user.PhotoURL)
	assert.True(t, json.Valid(user.Profile))
}

type failingStore struct {
	err error
}

func (f *failingStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	return nil, f.err
}
