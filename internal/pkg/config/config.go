package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads the env file for local runs and builds the configuration
// from the environment.
func InitConfig(configPath string) *models.Config {
	v := newViper()
	if v.GetString("APP_ENV") == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_NAME", "rides-service")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "0.1.0")

	v.SetDefault("SERVER_PORT", 9992)
	v.SetDefault("SERVER_READ_TIMEOUT", 10)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 10)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NATS_URL", "nats://localhost:4222")

	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("JWT_ISSUER", "tumpangan")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_TYPE", "stdout")

	v.SetDefault("RIDES_SEARCH_CACHE_TTL_SECONDS", 300)
	v.SetDefault("RIDES_OTP_TTL_SECONDS", 300)
	v.SetDefault("RIDES_MAX_SEATS", 8)
	v.SetDefault("RIDES_NOTIFY_MAX_RETRIES", 3)
	v.SetDefault("RIDES_NOTIFY_BASE_DELAY_MS", 100)
	v.SetDefault("RIDES_RATE_LIMIT_REQUESTS", 30)
	v.SetDefault("RIDES_RATE_LIMIT_PERIOD_SECONDS", 60)
	v.SetDefault("RIDES_CACHE_FAIL_THRESHOLD", 5)
	v.SetDefault("RIDES_CACHE_OPEN_TIMEOUT_SECONDS", 30)
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NATS config
	configs.NATS.URL = v.GetString("NATS_URL")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")

	// NewRelic config
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.LogsEnabled = v.GetBool("NEW_RELIC_LOGS_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")
	configs.Logger.Type = v.GetString("LOG_TYPE")

	// Rides config
	configs.Rides.SearchCacheTTL = seconds(v, "RIDES_SEARCH_CACHE_TTL_SECONDS")
	configs.Rides.OTPTTL = seconds(v, "RIDES_OTP_TTL_SECONDS")
	configs.Rides.MaxSeats = v.GetInt("RIDES_MAX_SEATS")
	configs.Rides.NotifyMaxRetries = v.GetInt("RIDES_NOTIFY_MAX_RETRIES")
	configs.Rides.NotifyBaseDelay = time.Duration(v.GetInt("RIDES_NOTIFY_BASE_DELAY_MS")) * time.Millisecond
	configs.Rides.RateLimitRequests = v.GetInt("RIDES_RATE_LIMIT_REQUESTS")
	configs.Rides.RateLimitPeriod = seconds(v, "RIDES_RATE_LIMIT_PERIOD_SECONDS")
	configs.Rides.CacheFailThreshold = v.GetUint32("RIDES_CACHE_FAIL_THRESHOLD")
	configs.Rides.CacheOpenTimeout = seconds(v, "RIDES_CACHE_OPEN_TIMEOUT_SECONDS")

	return configs
}

func seconds(v *viper.Viper, key string) time.Duration {
	return time.Duration(v.GetInt(key)) * time.Second
}
