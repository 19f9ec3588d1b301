package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ruposhibhojon/ruposhi-backend/api/middleware"
	"github.com/ruposhibhojon/ruposhi-backend/api/responses"
	"github.com/ruposhibhojon/ruposhi-backend/api/validators"
	"github.com/ruposhibhojon/ruposhi-backend/internal/foods"
	pkgerrors "github.com/ruposhibhojon/ruposhi-backend/pkg/errors"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/logger"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/pagination"
)

const maxSearchLength = 100

func FoodsFeatured(svc foods.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.Featured(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func FoodsCount(svc foods.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := svc.Count(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, count)
	}
}

// FoodsList serves GET /foods?page&size with zero-based pages.
func FoodsList(svc foods.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := parsePage(r, "page", "size")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		list, err := svc.List(r.Context(), page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// FoodsSearch serves GET /search?search=; searchText is accepted for older clients.
func FoodsSearch(svc foods.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := validators.SanitizeString(validators.FirstQuery(r, "search", "searchText"), maxSearchLength)
		list, err := svc.Search(r.Context(), term)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func FoodGet(svc foods.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		listing, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, listing)
	}
}

// FoodsMine lists the verified caller's listings regardless of availability.
func FoodsMine(svc foods.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := middleware.UserEmailFromContext(r.Context())
		if email == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
			return
		}
		list, err := svc.ListByDonator(r.Context(), email)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// FoodsSorted serves GET /time-sort?itemsPerPage&currentPage&filter.
func FoodsSorted(svc foods.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := parsePage(r, "currentPage", "itemsPerPage")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		list, err := svc.Sorted(r.Context(), r.URL.Query().Get("filter"), page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func FoodCreate(svc foods.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input foods.FoodInput
		if err := validators.DecodeJSON(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		res, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, res)
	}
}

// FoodUpdate serves PATCH /update-food. statusUpdate selects the availability-only shape;
// otherwise every editable field is replaced.
func FoodUpdate(svc foods.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body foods.UpdateFoodRequest
		if err := validators.DecodeJSON(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		rawID := validators.FirstQuery(r, "id")
		if rawID == "" {
			rawID = body.ID
		}
		id, err := validators.ParseID(rawID, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		res, err := svc.Update(r.Context(), id, validators.ParseQueryFlag(r, "statusUpdate"), body.FoodInput)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, res)
	}
}

func FoodDelete(svc foods.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		res, err := svc.Delete(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, res)
	}
}

func parsePage(r *http.Request, numberKey, sizeKey string) (pagination.Page, error) {
	number, err := validators.ParseQueryInt(r, numberKey, 0, 0, validators.NoMax)
	if err != nil {
		return pagination.Page{}, err
	}
	size, err := validators.ParseQueryInt(r, sizeKey, pagination.DefaultSize, 1, validators.NoMax)
	if err != nil {
		return pagination.Page{}, err
	}
	return pagination.Page{Number: number, Size: size}, nil
}
