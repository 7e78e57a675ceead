package repository

import (
	"cruisedesk/config"
	"cruisedesk/infras/otel"
	"cruisedesk/infras/upstream"
	"cruisedesk/internal/domains/cancelpolicy/model"
	"cruisedesk/shared/cache"
	gRepo "cruisedesk/shared/repository"
)

type CancelPolicy interface {
	gRepo.Repository[model.CancelPolicy]
}

func New(client upstream.Client, redisCache cache.RedisCache, otel otel.Otel, cfg *config.Config) CancelPolicy {
	return gRepo.New[model.CancelPolicy](model.Definition, client, redisCache, otel, cfg)
}
