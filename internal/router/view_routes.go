package router

import (
	"github.com/labstack/echo/v4"

	"github.com/harshbadhann2/society-home-connect/internal/handler"
)

// collection is the route surface of one view.
type collection interface {
	List(echo.Context) error
	Get(echo.Context) error
	Create(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

// RegisterViews registers the dashboard views behind authentication and the
// route guard. List responses go through the cache; mutations purge it.
func RegisterViews(e *echo.Echo, v *handler.Views, d *handler.DashboardHandler, authn, guard, cache echo.MiddlewareFunc) {
	e.GET("/login", handler.LoginView, authn)

	g := e.Group("", authn, guard)
	g.GET("/", d.Home)
	g.GET("/profile", d.Profile)

	mount(g, "/residents", v.Residents, cache)
	mount(g, "/staff", v.Staff, cache)
	mount(g, "/amenities", v.Amenities, cache)
	mount(g, "/parking", v.Parking, cache)
	mount(g, "/complaints", v.Complaints, cache)
	mount(g, "/notices", v.Notices, cache)
	mount(g, "/payments", v.Payments, cache)
	mount(g, "/deliveries", v.Deliveries, cache)
	mount(g, "/housekeeping", v.Housekeeping, cache)
	mount(g, "/wings", v.Wings, cache)
	mount(g, "/properties", v.Properties, cache)
}

func mount(g *echo.Group, path string, h collection, cache echo.MiddlewareFunc) {
	g.GET(path, h.List, cache)
	g.POST(path, h.Create)
	g.GET(path+"/:id", h.Get)
	g.PUT(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}
