package repository

import (
	"cruisedesk/config"
	"cruisedesk/infras/otel"
	"cruisedesk/infras/upstream"
	"cruisedesk/internal/domains/hotel/model"
	"cruisedesk/shared/cache"
	gRepo "cruisedesk/shared/repository"
)

type Hotel interface {
	gRepo.Repository[model.Hotel]
}

func New(client upstream.Client, redisCache cache.RedisCache, otel otel.Otel, cfg *config.Config) Hotel {
	return gRepo.New[model.Hotel](model.Definition, client, redisCache, otel, cfg)
}
