package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ruposhibhojon/ruposhi-backend/api/controllers"
	"github.com/ruposhibhojon/ruposhi-backend/api/middleware"
	"github.com/ruposhibhojon/ruposhi-backend/internal/foods"
	"github.com/ruposhibhojon/ruposhi-backend/internal/requests"
	"github.com/ruposhibhojon/ruposhi-backend/internal/users"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/config"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/logger"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/metrics"
)

// SessionManager issues, checks and revokes session token ids.
type SessionManager interface {
	Register(ctx context.Context, tokenID, email string) error
	Revoke(ctx context.Context, tokenID string) error
	HasSession(ctx context.Context, tokenID string) (bool, error)
}

// RateStore backs the auth rate limit counters.
type RateStore interface {
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	Foods    foods.Service
	Requests requests.Service
	Users    users.Service
	Sessions SessionManager
	Rate     RateStore
	DB       controllers.Pinger
	Cache    controllers.Pinger
	// Registry receives the HTTP collectors and is served on /metrics; nil disables both.
	Registry *prometheus.Registry
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	var observer *metrics.HTTPMetrics
	if deps.Registry != nil {
		observer = metrics.NewHTTPMetrics(deps.Registry)
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(observer),
		middleware.CORS(cfg.CORS.Origin),
	)

	sessionPolicy := middleware.NewAuthRateLimitPolicy(
		"session",
		cfg.AuthRateLimit.SessionWindow,
		cfg.AuthRateLimit.SessionIPLimit,
		cfg.AuthRateLimit.SessionEmailLimit,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.AuthRateLimit.SignupWindow,
		cfg.AuthRateLimit.SignupIPLimit,
		cfg.AuthRateLimit.SignupEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, deps.Cache, logg))
	})
	if deps.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.With(middleware.AuthRateLimit(sessionPolicy, deps.Rate, logg)).
		Post("/jwt", controllers.SessionIssue(deps.Sessions, cfg.Session, cfg.App, logg))
	r.Post("/logout", controllers.SessionLogout(deps.Sessions, cfg.Session, cfg.App, logg))
	r.With(middleware.AuthRateLimit(signupPolicy, deps.Rate, logg)).
		Post("/user", controllers.UserCreate(deps.Users, logg))

	r.Get("/featured", controllers.FoodsFeatured(deps.Foods, logg))
	r.Get("/foodCount", controllers.FoodsCount(deps.Foods, logg))
	r.Get("/foods", controllers.FoodsList(deps.Foods, logg))
	r.Get("/search", controllers.FoodsSearch(deps.Foods, logg))
	r.Get("/food/{id}", controllers.FoodGet(deps.Foods, logg))
	r.Get("/time-sort", controllers.FoodsSorted(deps.Foods, logg))
	r.Post("/add-food", controllers.FoodCreate(deps.Foods, logg))
	r.Patch("/update-food", controllers.FoodUpdate(deps.Foods, logg))
	r.Delete("/delete-food/{id}", controllers.FoodDelete(deps.Foods, logg))
	r.Post("/food-request", controllers.FoodRequestCreate(deps.Requests, logg))

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(cfg.Session, deps.Sessions, logg))
		r.Use(middleware.RequireOwner("user", logg))
		r.Get("/my-food", controllers.FoodsMine(deps.Foods, logg))
		r.Get("/my-requests", controllers.RequestsMine(deps.Requests, logg))
		r.Delete("/delete-request", controllers.RequestDelete(deps.Requests, logg))
	})

	return r
}
