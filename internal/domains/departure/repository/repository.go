package repository

import (
	"cruisedesk/config"
	"cruisedesk/infras/otel"
	"cruisedesk/infras/upstream"
	"cruisedesk/internal/domains/departure/model"
	"cruisedesk/shared/cache"
	gRepo "cruisedesk/shared/repository"
)

type Departure interface {
	gRepo.Repository[model.Departure]
}

func New(client upstream.Client, redisCache cache.RedisCache, otel otel.Otel, cfg *config.Config) Departure {
	return gRepo.New[model.Departure](model.Definition, client, redisCache, otel, cfg)
}
