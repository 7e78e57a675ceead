package repository

import (
	"cruisedesk/config"
	"cruisedesk/infras/otel"
	"cruisedesk/infras/upstream"
	"cruisedesk/internal/domains/cabin/model"
	"cruisedesk/shared/cache"
	gRepo "cruisedesk/shared/repository"
)

type Cabin interface {
	gRepo.Repository[model.Cabin]
}

func New(client upstream.Client, redisCache cache.RedisCache, otel otel.Otel, cfg *config.Config) Cabin {
	return gRepo.New[model.Cabin](model.Definition, client, redisCache, otel, cfg)
}
