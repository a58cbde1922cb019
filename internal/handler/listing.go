package handler

import (
	"net/http"

	"github.com/deppfellow/tradehands/internal/model"
	"github.com/deppfellow/tradehands/internal/repository"
	"github.com/deppfellow/tradehands/internal/server"
	"github.com/deppfellow/tradehands/internal/service"
	"github.com/labstack/echo/v4"
)

// ListingHandler serves /listings.
type ListingHandler struct {
	Handler
	service *service.ListingService
}

func NewListingHandler(s *server.Server, svc *service.ListingService) *ListingHandler {
	return &ListingHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

func (h *ListingHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *EmptyRequest) ([]model.BusinessListing, error) {
		return h.service.List(c.Request().Context())
	}, http.StatusOK, newRequest[EmptyRequest])
}

func (h *ListingHandler) Get() echo.HandlerFunc {
	return HandleLookup(h.Handler, func(c echo.Context, req *IDRequest) (repository.Result[model.BusinessListing], error) {
		return h.service.Get(c.Request().Context(), req.ID)
	}, http.StatusOK, newRequest[IDRequest])
}

func (h *ListingHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *model.ListingInput) (map[string]int64, error) {
		id, err := h.service.Create(c.Request().Context(), *req)
		if err != nil {
			return nil, err
		}
		return idBody("listing_id", id), nil
	}, http.StatusCreated, newRequest[model.ListingInput])
}

func (h *ListingHandler) Delete() echo.HandlerFunc {
	return HandleLookup(h.Handler, func(c echo.Context, req *IDRequest) (repository.Result[map[string]int64], error) {
		result, err := h.service.Delete(c.Request().Context(), req.ID)
		return deletedBody("listing_id", result, err)
	}, http.StatusOK, newRequest[IDRequest])
}
