package router

import (
	"cruisedesk/internal/handlers/auth"
	"cruisedesk/internal/handlers/cabin"
	"cruisedesk/internal/handlers/cancelpolicy"
	"cruisedesk/internal/handlers/charter"
	"cruisedesk/internal/handlers/cruise"
	"cruisedesk/internal/handlers/dashboard"
	"cruisedesk/internal/handlers/departure"
	"cruisedesk/internal/handlers/hotel"
	"cruisedesk/internal/handlers/itinerary"
	"cruisedesk/internal/handlers/media"
	"cruisedesk/internal/handlers/price"
	"cruisedesk/internal/handlers/room"
	"cruisedesk/internal/handlers/season"
	"cruisedesk/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Cruise       cruise.Handler
	Hotel        hotel.Handler
	HotelRoom    room.Handler
	Cabin        cabin.Handler
	Itinerary    itinerary.Handler
	Departure    departure.Handler
	Price        price.Handler
	Season       season.Handler
	CancelPolicy cancelpolicy.Handler
	Charter      charter.Handler
	User         user.Handler
	Media        media.Handler
	Dashboard    dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Cruise.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.HotelRoom.Router(routerGroup)
		r.DomainHandlers.Cabin.Router(routerGroup)
		r.DomainHandlers.Itinerary.Router(routerGroup)
		r.DomainHandlers.Departure.Router(routerGroup)
		r.DomainHandlers.Price.Router(routerGroup)
		r.DomainHandlers.Season.Router(routerGroup)
		r.DomainHandlers.CancelPolicy.Router(routerGroup)
		r.DomainHandlers.Charter.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Media.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
