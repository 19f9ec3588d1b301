package users

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"

	"github.com/ruposhibhojon/ruposhi-backend/pkg/db/models"
)

var (
	nameKeys  = []string{"name", "displayName", "userName"}
	photoKeys = []string{"photo", "photoURL", "photoUrl", "image", "userImage"}
)

// SignupPayload is the raw POST /user body. It must be a JSON object; the whole
// object is kept verbatim and a few well-known keys are promoted to columns.
type SignupPayload json.RawMessage

func (p SignupPayload) toModel() (*models.User, error) {
	fields := map[string]any{}
	if err := json.Unmarshal(p, &fields); err != nil {
		return nil, err
	}
	return &models.User{
		Email:    firstString(fields, "email"),
		Name:     firstString(fields, nameKeys...),
		PhotoURL: firstString(fields, photoKeys...),
		Profile:  datatypes.JSON(p),
	}, nil
}

func firstString(fields map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := fields[key].(string); ok {
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}
