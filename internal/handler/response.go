package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "eksiblog/internal/errors"
)

// respondError writes the uniform error envelope for a domain error.
func respondError(c echo.Context, err error) error {
	code, comment := apperrors.MapError(err)
	return c.JSON(code, apperrors.Error(comment))
}
