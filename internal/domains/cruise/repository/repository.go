package repository

import (
	"cruisedesk/config"
	"cruisedesk/infras/otel"
	"cruisedesk/infras/upstream"
	"cruisedesk/internal/domains/cruise/model"
	"cruisedesk/shared/cache"
	gRepo "cruisedesk/shared/repository"
)

type Cruise interface {
	gRepo.Repository[model.Cruise]
}

func New(client upstream.Client, redisCache cache.RedisCache, otel otel.Otel, cfg *config.Config) Cruise {
	return gRepo.New[model.Cruise](model.Definition, client, redisCache, otel, cfg)
}
