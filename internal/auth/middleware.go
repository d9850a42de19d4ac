package auth

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	apperrors "eksiblog/internal/errors"
)

// Guard returns the bearer-token middleware protecting authenticated routes.
// The token is taken from the Authorization header, with or without a
// "Bearer " prefix and with surrounding whitespace trimmed. A missing token
// yields 400, a malformed, tampered, or expired one yields 401. The resolved
// identity is attached to the request context; no database lookup happens
// here, downstream operations re-validate the referenced rows as needed.
func Guard(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		TokenLookupFuncs: []middleware.ValuesExtractor{extractBearer},
		ErrorHandler: func(c echo.Context, err error) error {
			if strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization)) == "" {
				code, comment := apperrors.MapError(apperrors.ErrNoToken)
				return c.JSON(code, apperrors.Error(comment))
			}
			code, comment := apperrors.MapError(apperrors.ErrInvalidToken)
			return c.JSON(code, apperrors.Error(comment))
		},
	})
}

// extractBearer pulls the raw token out of the Authorization header.
func extractBearer(c echo.Context) ([]string, error) {
	raw := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	if raw == "" {
		return nil, apperrors.ErrNoToken
	}
	token := strings.TrimSpace(strings.TrimPrefix(raw, "Bearer"))
	if token == "" {
		return nil, apperrors.ErrNoToken
	}
	return []string{token}, nil
}

// CallerID returns the authenticated user's id attached by Guard.
func CallerID(c echo.Context) (uuid.UUID, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, apperrors.ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == "" {
		return uuid.Nil, apperrors.ErrInvalidToken
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidToken
	}
	return id, nil
}
