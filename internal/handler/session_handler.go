package handler

import (
	"net/http"

	"tinytreasures/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /session（買い物客セッションの発行）
type SessionHandler struct {
	uc *usecase.SessionUsecase
}

func NewSessionHandler(uc *usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

func (h *SessionHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/session", h.start)
}

func (h *SessionHandler) start(c echo.Context) error {
	out, err := h.uc.Start(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
