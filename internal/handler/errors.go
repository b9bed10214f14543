package handler

import (
	"net/http"

	"tinytreasures/internal/middleware"
	"tinytreasures/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error       string            `json:"error"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message, FieldErrors: he.Fields})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// SessionJWTが入れたsession_idを取る
func getSessionIDFromContext(c echo.Context) (string, bool) {
	id, ok := c.Get(middleware.CtxSessionIDKey).(string)
	return id, ok && id != ""
}
