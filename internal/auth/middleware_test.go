package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const guardTestSecret = "test-secret"

func newGuardedEcho(secret string) *echo.Echo {
	e := echo.New()
	secured := e.Group("", Guard(secret))
	secured.GET("/protected", func(c echo.Context) error {
		id, err := CallerID(c)
		if err != nil {
			return c.NoContent(http.StatusUnauthorized)
		}
		return c.String(http.StatusOK, id.String())
	})
	return e
}

func TestGuard(t *testing.T) {
	userID := uuid.New()
	svc := NewJWTService(guardTestSecret)
	validToken, err := svc.GenerateToken(userID)
	assert.NoError(t, err)

	expiredSvc := &JWTService{secret: []byte(guardTestSecret), expiry: -time.Minute}
	expiredToken, err := expiredSvc.GenerateToken(userID)
	assert.NoError(t, err)

	foreignToken, err := NewJWTService("other-secret").GenerateToken(userID)
	assert.NoError(t, err)

	tests := []struct {
		name         string
		authHeader   string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "missing token",
			authHeader:   "",
			expectedCode: http.StatusBadRequest,
			expectedBody: "no token provided",
		},
		{
			name:         "malformed token",
			authHeader:   "Bearer not-a-token",
			expectedCode: http.StatusUnauthorized,
			expectedBody: "invalid token",
		},
		{
			name:         "expired token with valid signature",
			authHeader:   "Bearer " + expiredToken,
			expectedCode: http.StatusUnauthorized,
			expectedBody: "invalid token",
		},
		{
			name:         "token signed with another secret",
			authHeader:   "Bearer " + foreignToken,
			expectedCode: http.StatusUnauthorized,
			expectedBody: "invalid token",
		},
		{
			name:         "valid token",
			authHeader:   "Bearer " + validToken,
			expectedCode: http.StatusOK,
			expectedBody: userID.String(),
		},
		{
			name:         "valid token without bearer prefix",
			authHeader:   validToken,
			expectedCode: http.StatusOK,
			expectedBody: userID.String(),
		},
		{
			name:         "valid token with extra whitespace",
			authHeader:   "  Bearer  " + validToken + "  ",
			expectedCode: http.StatusOK,
			expectedBody: userID.String(),
		},
	}

	e := newGuardedEcho(guardTestSecret)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}
