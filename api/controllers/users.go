package controllers

import (
	"net/http"

	"github.com/ruposhibhojon/ruposhi-backend/api/responses"
	"github.com/ruposhibhojon/ruposhi-backend/api/validators"
	"github.com/ruposhibhojon/ruposhi-backend/internal/users"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/logger"
)

const maxSignupBytes = 64 << 10

func UserCreate(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := validators.ReadRawObject(r, maxSignupBytes)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		res, err := svc.Create(r.Context(), users.SignupPayload(raw))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, res)
	}
}
