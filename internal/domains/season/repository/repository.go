package repository

import (
	"cruisedesk/config"
	"cruisedesk/infras/otel"
	"cruisedesk/infras/upstream"
	"cruisedesk/internal/domains/season/model"
	"cruisedesk/shared/cache"
	gRepo "cruisedesk/shared/repository"
)

type Season interface {
	gRepo.Repository[model.Season]
}

func New(client upstream.Client, redisCache cache.RedisCache, otel otel.Otel, cfg *config.Config) Season {
	return gRepo.New[model.Season](model.Definition, client, redisCache, otel, cfg)
}
