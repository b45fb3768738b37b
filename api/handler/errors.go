package handler

import (
	"errors"
	"net/http"

	"github.com/fekalegi/property-management-system/api/dto"
	"github.com/fekalegi/property-management-system/internal/domain"
	"github.com/labstack/echo/v4"
)

const errInvalidBody = "invalid request body"

// respondError is respondInternal for routes addressing one record, where
// ErrNotFound becomes a 404 message.
func respondError(c echo.Context, err error, notFound, internal string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, dto.MessageResponse{Message: notFound})
	}
	return respondInternal(c, err, internal)
}

// respondInternal answers invalid input with a 400 carrying its detail and
// anything else with a generic 500.
func respondInternal(c echo.Context, err error, internal string) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: domain.Detail(err)})
	}
	return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: internal})
}
