package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// Register mounts the API twice: at the root for local use and under the
// prefix for the hosted deployment target.
func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int, apiPrefix string) {
	e.Use(middleware.CORS())
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(float64(rateLimitPerMinute) / 60),
			Burst: rateLimitPerMinute,
		},
	)))

	e.GET("/", h.Health)

	mount(e.Group(""), h)
	if apiPrefix != "" {
		mount(e.Group(apiPrefix), h)
	}
}

func mount(g *echo.Group, h *Handler) {
	g.GET("/tickets", h.ListTickets)
	g.GET("/tickets/:id", h.GetTicket)
	g.POST("/tickets", h.CreateTicket)
	g.PUT("/tickets/:id", h.UpdateTicket)
	g.DELETE("/tickets/:id", h.DeleteTicket)

	g.POST("/auth/register", h.Register)
	g.POST("/auth/login", h.Login)
}
