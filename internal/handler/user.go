package handler

import (
	"net/http"

	"github.com/deppfellow/tradehands/internal/model"
	"github.com/deppfellow/tradehands/internal/repository"
	"github.com/deppfellow/tradehands/internal/server"
	"github.com/deppfellow/tradehands/internal/service"
	"github.com/labstack/echo/v4"
)

// UserHandler serves /users.
type UserHandler struct {
	Handler
	service *service.UserService
}

func NewUserHandler(s *server.Server, svc *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

func (h *UserHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *EmptyRequest) ([]model.User, error) {
		return h.service.List(c.Request().Context())
	}, http.StatusOK, newRequest[EmptyRequest])
}

func (h *UserHandler) Get() echo.HandlerFunc {
	return HandleLookup(h.Handler, func(c echo.Context, req *IDRequest) (repository.Result[model.User], error) {
		return h.service.Get(c.Request().Context(), req.ID)
	}, http.StatusOK, newRequest[IDRequest])
}

func (h *UserHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *model.UserInput) (map[string]int64, error) {
		id, err := h.service.Create(c.Request().Context(), *req)
		if err != nil {
			return nil, err
		}
		return idBody("user_id", id), nil
	}, http.StatusCreated, newRequest[model.UserInput])
}

func (h *UserHandler) Delete() echo.HandlerFunc {
	return HandleLookup(h.Handler, func(c echo.Context, req *IDRequest) (repository.Result[map[string]int64], error) {
		result, err := h.service.Delete(c.Request().Context(), req.ID)
		return deletedBody("user_id", result, err)
	}, http.StatusOK, newRequest[IDRequest])
}
