//go:build wireinject
// +build wireinject

package di

import (
	"cruisedesk/config"
	"cruisedesk/infras/jwt"
	"cruisedesk/infras/otel"
	"cruisedesk/infras/redis"
	"cruisedesk/infras/s3"
	"cruisedesk/infras/upstream"
	"cruisedesk/permissions"
	"cruisedesk/shared/cache"
	"cruisedesk/transport/http"
	"cruisedesk/transport/http/middleware"
	"cruisedesk/transport/http/router"

	authService "cruisedesk/internal/domains/auth/service"
	cabinRepository "cruisedesk/internal/domains/cabin/repository"
	cabinService "cruisedesk/internal/domains/cabin/service"
	cancelPolicyRepository "cruisedesk/internal/domains/cancelpolicy/repository"
	charterRepository "cruisedesk/internal/domains/charter/repository"
	cruiseRepository "cruisedesk/internal/domains/cruise/repository"
	dashboardService "cruisedesk/internal/domains/dashboard/service"
	departureRepository "cruisedesk/internal/domains/departure/repository"
	hotelRepository "cruisedesk/internal/domains/hotel/repository"
	itineraryRepository "cruisedesk/internal/domains/itinerary/repository"
	mediaService "cruisedesk/internal/domains/media/service"
	priceRepository "cruisedesk/internal/domains/price/repository"
	roomRepository "cruisedesk/internal/domains/room/repository"
	seasonRepository "cruisedesk/internal/domains/season/repository"
	userRepository "cruisedesk/internal/domains/user/repository"

	authHandler "cruisedesk/internal/handlers/auth"
	cabinHandler "cruisedesk/internal/handlers/cabin"
	cancelPolicyHandler "cruisedesk/internal/handlers/cancelpolicy"
	charterHandler "cruisedesk/internal/handlers/charter"
	cruiseHandler "cruisedesk/internal/handlers/cruise"
	dashboardHandler "cruisedesk/internal/handlers/dashboard"
	departureHandler "cruisedesk/internal/handlers/departure"
	hotelHandler "cruisedesk/internal/handlers/hotel"
	itineraryHandler "cruisedesk/internal/handlers/itinerary"
	mediaHandler "cruisedesk/internal/handlers/media"
	priceHandler "cruisedesk/internal/handlers/price"
	roomHandler "cruisedesk/internal/handlers/room"
	seasonHandler "cruisedesk/internal/handlers/season"
	userHandler "cruisedesk/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	upstream.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var repositories = wire.NewSet(
	cruiseRepository.New,
	hotelRepository.New,
	roomRepository.New,
	cabinRepository.New,
	itineraryRepository.New,
	departureRepository.New,
	priceRepository.New,
	seasonRepository.New,
	cancelPolicyRepository.New,
	charterRepository.New,
	userRepository.New,
)

var domains = wire.NewSet(
	repositories,
	authService.New,
	cabinService.New,
	mediaService.New,
	dashboardService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	cruiseHandler.New,
	hotelHandler.New,
	roomHandler.New,
	cabinHandler.New,
	itineraryHandler.New,
	departureHandler.New,
	priceHandler.New,
	seasonHandler.New,
	cancelPolicyHandler.New,
	charterHandler.New,
	userHandler.New,
	mediaHandler.New,
	dashboardHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
