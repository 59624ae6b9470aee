package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Store backends for the catalog snapshot.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
)

// Transport variants for outbound order messages.
const (
	TransportBridge = "bridge"
	TransportLocal  = "local"
)

type StoreConfig struct {
	Backend string
	// Key under which the catalog snapshot is persisted.
	CatalogKey string
}

type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

type MongoConfig struct {
	URI                    string
	Database               string
	Collection             string
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
}

type BridgeConfig struct {
	// Transport selects the outbound variant once at startup; the
	// local fallback is the normal development mode.
	Transport  string
	URL        string
	Exchange   string
	RoutingKey string
	MaxRetries int
	RetryDelay time.Duration
}

type HTTPConfig struct {
	Port          string
	BindInterface string
}

type LoggerConfig struct {
	Endpoint     string
	ServiceName  string
	IsProduction bool
}

type Config struct {
	Store  StoreConfig
	Redis  RedisConfig
	Mongo  MongoConfig
	Bridge BridgeConfig
	HTTP   HTTPConfig
	Logger LoggerConfig
}

func NewConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		Store: StoreConfig{
			Backend:    getStringEnv("STORE_BACKEND", StoreMemory),
			CatalogKey: getStringEnv("CATALOG_STORAGE_KEY", "productsData"),
		},
		Redis: RedisConfig{
			URL:      getStringEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getStringEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		Mongo: MongoConfig{
			URI:                    getStringEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:               getStringEnv("MONGO_DATABASE", "telepos"),
			Collection:             getStringEnv("MONGO_COLLECTION", "snapshots"),
			ConnectTimeout:         time.Duration(getIntEnv("MONGO_CONNECT_TIMEOUT", 10)) * time.Second,
			ServerSelectionTimeout: time.Duration(getIntEnv("MONGO_SERVER_SELECTION_TIMEOUT", 5)) * time.Second,
		},
		Bridge: BridgeConfig{
			Transport:  getStringEnv("ORDER_TRANSPORT", TransportLocal),
			URL:        getStringEnv("BRIDGE_AMQP_URL", "amqp://localhost:5672"),
			Exchange:   getStringEnv("BRIDGE_EXCHANGE", "exchange.orders"),
			RoutingKey: getStringEnv("BRIDGE_ROUTING_KEY", "order.submitted"),
			MaxRetries: getIntEnv("BRIDGE_MAX_RETRIES", 3),
			RetryDelay: time.Duration(getIntEnv("BRIDGE_RETRY_DELAY", 1)) * time.Second,
		},
		HTTP: HTTPConfig{
			Port:          getStringEnv("HTTP_PORT", "8080"),
			BindInterface: getStringEnv("HTTP_BIND_INTERFACE", "0.0.0.0"),
		},
		Logger: LoggerConfig{
			Endpoint:     getStringEnv("OTEL_ENDPOINT", "localhost:4317"),
			ServiceName:  getStringEnv("OTEL_SERVICE_NAME", "telepos"),
			IsProduction: getBoolEnv("IS_PRODUCTION", false),
		},
	}
}
