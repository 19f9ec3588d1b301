package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ruposhibhojon/ruposhi-backend/api/responses"
	pkgAuth "github.com/ruposhibhojon/ruposhi-backend/pkg/auth"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/auth/session"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/config"
	pkgerrors "github.com/ruposhibhojon/ruposhi-backend/pkg/errors"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/logger"
)

// SessionAuth validates the session cookie and seeds the request context with the
// caller's identity. Missing, invalid, expired or revoked tokens get 401.
func SessionAuth(cfg config.SessionConfig, checker session.Checker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cfg.Cookie())
			if err != nil || strings.TrimSpace(cookie.Value) == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session token"))
				return
			}

			claims, err := pkgAuth.ParseSessionToken(cfg, strings.TrimSpace(cookie.Value))
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid session token"))
				return
			}

			if claims.ID == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id"))
				return
			}

			if checker != nil {
				ok, err := checker.HasSession(r.Context(), claims.ID)
				if err != nil {
					responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "validate session"))
					return
				}
				if !ok {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session revoked"))
					return
				}
			}

			ctx := context.WithValue(r.Context(), ctxUserEmail, claims.Email)
			if logg != nil {
				ctx = logg.WithUserEmail(ctx, claims.Email)
				ctx = logg.WithField(ctx, "session_id", claims.ID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireOwner rejects the request with 403 unless the query parameter param names the
// verified caller. It must run after SessionAuth.
func RequireOwner(param string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			verified := UserEmailFromContext(r.Context())
			if verified == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
				return
			}
			claimed := strings.TrimSpace(r.URL.Query().Get(param))
			if claimed == "" || !strings.EqualFold(claimed, strings.TrimSpace(verified)) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "forbidden access"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
