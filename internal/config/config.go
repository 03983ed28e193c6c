package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Storage Storage `validate:"required"`

	Postgres Postgres `validate:"required"`

	Kafka Kafka `validate:"required"`

	Cache Cache `validate:"required"`

	Auth Auth `validate:"required"`

	Orders Orders `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Storage struct {
	Driver string `validate:"required,oneof=postgres memory"`
	// SeedFile is a JSON catalog loaded into the memory driver on start.
	SeedFile string `validate:"omitempty,filepath"`
}

type Kafka struct {
	Enabled bool

	GroupID     string   `validate:"required"`
	Brokers     []string `validate:"required,min=1,dive,hostname_port"`
	Topic       string   `validate:"required"`
	EventsTopic string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	AutoMigrate bool
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Auth struct {
	Secret     string        `validate:"required,min=16"`
	Issuer     string        `validate:"required"`
	TTL        time.Duration `validate:"gt=0"`
	CookieName string        `validate:"required"`

	// RequireVerifiedEmail gates customer flows on the identity's verified flag.
	RequireVerifiedEmail bool
}

type Orders struct {
	NumberAttempts   int `validate:"gte=1,lte=100"`
	SingleUseCoupons bool
	StrictStock      bool
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Storage: Storage{
			Driver:   env("STORAGE_DRIVER", StorageDriverPostgres),
			SeedFile: env("STORAGE_SEED_FILE", ""),
		},

		Kafka: Kafka{
			Enabled:     envBool("KAFKA_ENABLED", true),
			GroupID:     env("KAFKA_GROUP_ID", "marketplace-orders"),
			Topic:       env("KAFKA_TOPIC", "orders"),
			EventsTopic: env("KAFKA_EVENTS_TOPIC", "order-events"),
			Brokers:     strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "marketplace"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),

			AutoMigrate: envBool("POSTGRES_AUTO_MIGRATE", false),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		Auth: Auth{
			Secret:               env("JWT_SECRET", ""),
			Issuer:               env("JWT_ISSUER", "marketplace"),
			TTL:                  envDuration("JWT_TTL", 7*24*time.Hour),
			CookieName:           env("AUTH_COOKIE_NAME", "token"),
			RequireVerifiedEmail: envBool("AUTH_REQUIRE_VERIFIED_EMAIL", true),
		},

		Orders: Orders{
			NumberAttempts:   envInt("ORDERS_NUMBER_ATTEMPTS", 10),
			SingleUseCoupons: envBool("ORDERS_SINGLE_USE_COUPONS", false),
			StrictStock:      envBool("ORDERS_STRICT_STOCK", false),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()

	var skip []string
	if c.Storage.Driver == StorageDriverMemory {
		skip = append(skip, "Postgres")
	}
	if !c.Kafka.Enabled {
		skip = append(skip, "Kafka")
	}
	if len(skip) > 0 {
		return validate.StructExcept(c, skip...)
	}
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
