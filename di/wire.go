//go:build wireinject
// +build wireinject

package di

import (
	"lendhub/config"
	"lendhub/infras/kafka"
	"lendhub/infras/otel"
	"lendhub/infras/postgres"
	"lendhub/infras/redis"
	"lendhub/shared/cache"
	"lendhub/transport/http"
	"lendhub/transport/http/middleware"
	"lendhub/transport/http/router"

	bookingRepository "lendhub/internal/domains/booking/repository"
	bookingService "lendhub/internal/domains/booking/service"
	commentRepository "lendhub/internal/domains/comment/repository"
	commentService "lendhub/internal/domains/comment/service"
	itemRepository "lendhub/internal/domains/item/repository"
	itemService "lendhub/internal/domains/item/service"
	requestRepository "lendhub/internal/domains/request/repository"
	requestService "lendhub/internal/domains/request/service"
	userRepository "lendhub/internal/domains/user/repository"
	userService "lendhub/internal/domains/user/service"

	bookingHandler "lendhub/internal/handlers/booking"
	itemHandler "lendhub/internal/handlers/item"
	requestHandler "lendhub/internal/handlers/request"
	userHandler "lendhub/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var itemDomain = wire.NewSet(
	itemRepository.New,
	itemService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var requestDomain = wire.NewSet(
	requestRepository.New,
	requestService.New,
)

var commentDomain = wire.NewSet(
	commentRepository.New,
	commentService.New,
)

var domains = wire.NewSet(
	userDomain,
	itemDomain,
	bookingDomain,
	requestDomain,
	commentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	userHandler.New,
	itemHandler.New,
	bookingHandler.New,
	requestHandler.New,
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
