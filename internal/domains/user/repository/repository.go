package repository

import (
	"cruisedesk/config"
	"cruisedesk/infras/otel"
	"cruisedesk/infras/upstream"
	"cruisedesk/internal/domains/user/model"
	"cruisedesk/shared/cache"
	gRepo "cruisedesk/shared/repository"
)

type User interface {
	gRepo.Repository[model.User]
}

func New(client upstream.Client, redisCache cache.RedisCache, otel otel.Otel, cfg *config.Config) User {
	return gRepo.New[model.User](model.Definition, client, redisCache, otel, cfg)
}
