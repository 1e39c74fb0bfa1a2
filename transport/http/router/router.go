package router

import (
	"lendhub/internal/handlers/booking"
	"lendhub/internal/handlers/item"
	"lendhub/internal/handlers/request"
	"lendhub/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	User    user.Handler
	Item    item.Handler
	Booking booking.Handler
	Request request.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Item.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Request.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
