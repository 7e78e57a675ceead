package repository

import (
	"cruisedesk/config"
	"cruisedesk/infras/otel"
	"cruisedesk/infras/upstream"
	"cruisedesk/internal/domains/room/model"
	"cruisedesk/shared/cache"
	gRepo "cruisedesk/shared/repository"
)

type HotelRoom interface {
	gRepo.Repository[model.HotelRoom]
}

func New(client upstream.Client, redisCache cache.RedisCache, otel otel.Otel, cfg *config.Config) HotelRoom {
	return gRepo.New[model.HotelRoom](model.Definition, client, redisCache, otel, cfg)
}
