package config

import (
	"booking-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Address:                  utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", ""),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		CMS: CMS{
			BaseUrl:           utils.GetEnvString("CMS_BASE_URL", "http://localhost:5555"),
			RequestsPerSecond: utils.GetEnvInt("CMS_REQUESTS_PER_SECOND", 10),
		},
		Reservation: Reservation{
			LockBackend:     utils.GetEnvString("RESERVATION_LOCK_BACKEND", "memory"),
			LockTTLInMinute: utils.GetEnvInt("RESERVATION_LOCK_TTL_IN_MINUTE", 0),
		},
	}
}
