package validators

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	pkgerrors "github.com/ruposhibhojon/ruposhi-backend/pkg/errors"
)

// NoMax disables the upper bound check in ParseQueryInt.
const NoMax = math.MaxInt

func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value < min || value > max {
		details := map[string]any{"field": key, "min": min}
		if max != NoMax {
			details["max"] = max
		}
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(details)
	}
	return value, nil
}

// ParseQueryFlag reports whether key is present with any value other than "false" or "0".
func ParseQueryFlag(r *http.Request, key string) bool {
	values, ok := r.URL.Query()[key]
	if !ok {
		return false
	}
	if len(values) == 0 {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(values[0])) {
	case "false", "0":
		return false
	}
	return true
}

// FirstQuery returns the first non-blank value among keys.
func FirstQuery(r *http.Request, keys ...string) string {
	q := r.URL.Query()
	for _, key := range keys {
		if v := strings.TrimSpace(q.Get(key)); v != "" {
			return v
		}
	}
	return ""
}

// ParseID parses an opaque listing or request identifier.
func ParseID(raw, field string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "id is required").WithDetails(map[string]any{"field": field})
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "malformed id").WithDetails(map[string]any{"field": field})
	}
	return id, nil
}
