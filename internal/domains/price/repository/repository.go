package repository

import (
	"cruisedesk/config"
	"cruisedesk/infras/otel"
	"cruisedesk/infras/upstream"
	"cruisedesk/internal/domains/price/model"
	"cruisedesk/shared/cache"
	gRepo "cruisedesk/shared/repository"
)

type Price interface {
	gRepo.Repository[model.Price]
}

func New(client upstream.Client, redisCache cache.RedisCache, otel otel.Otel, cfg *config.Config) Price {
	return gRepo.New[model.Price](model.Definition, client, redisCache, otel, cfg)
}
