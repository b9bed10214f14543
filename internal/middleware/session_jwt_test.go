package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tinytreasures/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type parserStub struct{}

func (parserStub) Parse(raw string) (string, error) {
	if raw == "good" {
		return "sid-1", nil
	}
	return "", errors.New("bad token")
}

func runSessionJWT(authz string) (*httptest.ResponseRecorder, string) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got string
	h := middleware.SessionJWT(parserStub{})(func(c echo.Context) error {
		got, _ = c.Get(middleware.CtxSessionIDKey).(string)
		return c.NoContent(http.StatusOK)
	})
	_ = h(c)
	return rec, got
}

func TestSessionJWT(t *testing.T) {
	tests := []struct {
		name   string
		authz  string
		status int
		sid    string
	}{
		{"missing header", "", http.StatusUnauthorized, ""},
		{"not bearer", "Basic abc", http.StatusUnauthorized, ""},
		{"empty token", "Bearer  ", http.StatusUnauthorized, ""},
		{"bad token", "Bearer nope", http.StatusUnauthorized, ""},
		{"ok", "Bearer good", http.StatusOK, "sid-1"},
		{"lowercase scheme", "bearer good", http.StatusOK, "sid-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, sid := runSessionJWT(tt.authz)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.sid, sid)
		})
	}
}
