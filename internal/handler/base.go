package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/tradehands/internal/errs"
	"github.com/deppfellow/tradehands/internal/middleware"
	"github.com/deppfellow/tradehands/internal/repository"
	"github.com/deppfellow/tradehands/internal/server"
	"github.com/deppfellow/tradehands/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler holds the shared application dependencies. Concrete handlers
// embed it.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint that receives a bound and validated
// payload. Req is a pointer type so it can be bound into.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// LookupFunc is a typed endpoint whose outcome may be absent.
type LookupFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (repository.Result[Res], error)

// ResponseHandler writes a successful result.
type ResponseHandler interface {
	Handle(c echo.Context, result any) error

	// GetOperation names the handler type in logs.
	GetOperation() string
}

type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// TextResponseHandler writes a plain text result; the handler must return
// a string.
type TextResponseHandler struct {
	status int
}

func (h TextResponseHandler) Handle(c echo.Context, result any) error {
	return c.String(h.status, result.(string))
}

func (h TextResponseHandler) GetOperation() string {
	return "handler_text"
}

// handleRequest is the pipeline every typed handler runs through: bind and
// validate, call the handler once, write the result. Errors are returned
// untouched; the global error handler maps them to a response.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (any, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", c.Path())
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", c.Path()).
		Logger()

	logger.Debug().Msg("handling request")

	validationStart := time.Now()
	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Debug().
			Err(err).
			Dur("validation_duration", time.Since(validationStart)).
			Msg("request validation failed")

		if txn != nil {
			txn.AddAttribute("validation.status", "failed")
		}
		return err
	}
	validationDuration := time.Since(validationStart)

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if txn != nil {
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
	}

	if err != nil {
		logger.Debug().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.AddAttribute("handler.status", "error")
		}
		return err
	}

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
	}

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Dur("handler_duration", handlerDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler whose result is written as JSON with status.
// newReq allocates a fresh payload for every request.
func Handle[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	newReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newReq(), func(c echo.Context, req Req) (any, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}

// HandleLookup wraps a typed handler whose result may be absent. An absent
// result becomes a not-found error; a found value is written as JSON.
func HandleLookup[Req validation.Validatable, Res any](
	h Handler,
	handler LookupFunc[Req, Res],
	status int,
	newReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newReq(), func(c echo.Context, req Req) (any, error) {
			result, err := handler(c, req)
			if err != nil {
				return nil, err
			}
			if !result.Found {
				return nil, errs.NewNotFoundError()
			}
			return result.Value, nil
		}, JSONResponseHandler{status: status})
	}
}

// HandleText wraps a typed handler whose result is plain text.
func HandleText[Req validation.Validatable](
	h Handler,
	handler HandlerFunc[Req, string],
	newReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newReq(), func(c echo.Context, req Req) (any, error) {
			return handler(c, req)
		}, TextResponseHandler{status: http.StatusOK})
	}
}
