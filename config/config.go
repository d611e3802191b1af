package config

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	ListenAddr     string
	BackendURL     string
	BackendTimeout time.Duration

	RedisHost string
	RedisPort string

	KafkaBroker  string
	KafkaUITopic string

	CSRFKey       []byte
	SecureCookies bool
	CORSOrigins   []string

	AnalyticsRefresh  time.Duration
	CheckRefreshDelay time.Duration

	LogLevel  string
	LogFormat string
}

// Load reads .env when present, then the environment. Unset or malformed
// values fall back to the defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("failed to read .env")
	}

	return Config{
		ListenAddr:        getEnv("LISTEN_ADDR", ":8090"),
		BackendURL:        strings.TrimRight(getEnv("BACKEND_URL", "http://localhost:8080"), "/"),
		BackendTimeout:    getDuration("BACKEND_TIMEOUT", 15*time.Second),
		RedisHost:         os.Getenv("REDIS_HOST"),
		RedisPort:         getEnv("REDIS_PORT", "6379"),
		KafkaBroker:       os.Getenv("KAFKA_BROKER"),
		KafkaUITopic:      getEnv("KAFKA_UI_TOPIC", "ui-events"),
		CSRFKey:           []byte(os.Getenv("CSRF_KEY")),
		SecureCookies:     getEnv("SECURE_COOKIES", "false") == "true",
		CORSOrigins:       splitList(os.Getenv("CORS_ORIGINS")),
		AnalyticsRefresh:  getDuration("ANALYTICS_REFRESH", 5*time.Minute),
		CheckRefreshDelay: getDuration("CHECK_REFRESH_DELAY", 500*time.Millisecond),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
	}
}

func (c Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

func (c Config) KafkaEnabled() bool {
	return c.KafkaBroker != ""
}

func (c Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// SetupLogger applies LOG_LEVEL and LOG_FORMAT to the standard logrus logger.
func SetupLogger(c Config) {
	if strings.EqualFold(c.LogFormat, "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.WithField("level", c.LogLevel).Warn("unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func MustInitRedis(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.WithError(err).WithField("addr", addr).Fatal("Failed to connect to Redis")
	}

	return client
}

func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("invalid duration, using default")
		return defaultValue
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
