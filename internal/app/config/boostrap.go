package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if err := b.Logger.Sync(); err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
