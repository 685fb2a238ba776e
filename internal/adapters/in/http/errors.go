package http

import (
	"errors"
	"net/http"

	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps the application error taxonomy onto HTTP statuses with
// a uniform body. Conflict reasons and allowed-next sets are surfaced so
// clients can act on a rejection instead of retrying blindly.
func respondError(ctx echo.Context, err error) error {
	var conflictErr *errs.ConflictError
	if errors.As(err, &conflictErr) {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Error:   conflictErr.Message,
			Reasons: conflictErr.Reasons,
		})
	}

	var transitionErr *errs.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Error:   "invalid transition from " + transitionErr.From + " to " + transitionErr.To,
			Reasons: transitionErr.AllowedNext,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrForbidden):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrUpstreamUnavailable):
		return ctx.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// respondBadRequest reports a malformed or invalid request body.
func respondBadRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}
