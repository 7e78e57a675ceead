package repository

import (
	"cruisedesk/config"
	"cruisedesk/infras/otel"
	"cruisedesk/infras/upstream"
	"cruisedesk/internal/domains/charter/model"
	"cruisedesk/shared/cache"
	gRepo "cruisedesk/shared/repository"
)

type Charter interface {
	gRepo.Repository[model.Charter]
}

func New(client upstream.Client, redisCache cache.RedisCache, otel otel.Otel, cfg *config.Config) Charter {
	return gRepo.New[model.Charter](model.Definition, client, redisCache, otel, cfg)
}
