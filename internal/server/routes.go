package server

import (
	"net/http"

	"tinytreasures/internal/handler"
	"tinytreasures/internal/middleware"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Session  *handler.SessionHandler
	Product  *handler.ProductHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
}

func RegisterRoutes(e *echo.Echo, parser middleware.SessionTokenParser, h Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	h.Session.RegisterRoutes(e)
	h.Product.RegisterRoutes(e)

	auth := middleware.SessionJWT(parser)
	h.Cart.RegisterRoutes(e.Group("/cart", auth))
	h.Checkout.RegisterRoutes(e.Group("/checkout", auth))
}
