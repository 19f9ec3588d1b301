package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/ruposhibhojon/ruposhi-backend/api/responses"
	"github.com/ruposhibhojon/ruposhi-backend/api/validators"
	pkgAuth "github.com/ruposhibhojon/ruposhi-backend/pkg/auth"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/config"
	pkgerrors "github.com/ruposhibhojon/ruposhi-backend/pkg/errors"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/logger"
)

type sessionRegistry interface {
	Register(ctx context.Context, tokenID, email string) error
	Revoke(ctx context.Context, tokenID string) error
}

type sessionRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// SessionIssue serves POST /jwt: it signs the identity and sets it as the session cookie.
func SessionIssue(registry sessionRegistry, cfg config.SessionConfig, app config.AppConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session registry unavailable"))
			return
		}

		var body sessionRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token, claims, err := pkgAuth.MintSessionToken(cfg, time.Now(), pkgAuth.Identity{Email: body.Email, Name: body.Name})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint session token"))
			return
		}

		if err := registry.Register(r.Context(), claims.ID, claims.Email); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "register session"))
			return
		}

		http.SetCookie(w, sessionCookie(cfg, app, token, int(cfg.TTL().Seconds())))
		responses.WriteSuccess(w, successResponse{Success: true})
	}
}

// SessionLogout serves POST /logout. It always clears the cookie; a parsable token,
// even an expired one, also has its session revoked.
func SessionLogout(registry sessionRegistry, cfg config.SessionConfig, app config.AppConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(cfg.Cookie()); err == nil && registry != nil {
			if claims, err := pkgAuth.ParseSessionTokenAllowExpired(cfg, strings.TrimSpace(cookie.Value)); err == nil && claims.ID != "" {
				if err := registry.Revoke(r.Context(), claims.ID); err != nil && logg != nil {
					logg.Error(r.Context(), "session.revoke_failed", err)
				}
			}
		}

		http.SetCookie(w, sessionCookie(cfg, app, "", -1))
		responses.WriteSuccess(w, successResponse{Success: true})
	}
}

func sessionCookie(cfg config.SessionConfig, app config.AppConfig, value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteStrictMode
	if app.IsProd() {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     cfg.Cookie(),
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: sameSite,
	}
}
