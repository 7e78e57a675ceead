package repository

import (
	"cruisedesk/config"
	"cruisedesk/infras/otel"
	"cruisedesk/infras/upstream"
	"cruisedesk/internal/domains/itinerary/model"
	"cruisedesk/shared/cache"
	gRepo "cruisedesk/shared/repository"
)

type Itinerary interface {
	gRepo.Repository[model.Itinerary]
}

func New(client upstream.Client, redisCache cache.RedisCache, otel otel.Otel, cfg *config.Config) Itinerary {
	return gRepo.New[model.Itinerary](model.Definition, client, redisCache, otel, cfg)
}
