package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"phonebookd/internal/phonebook/models"
	pbstrings "phonebookd/pkg/platform/strings"
)

// Server captures process level configuration.
type Server struct {
	Addr      string
	LogLevel  string
	LogFormat string

	// WriteTimeout bounds a whole response, including an uncached export
	// that walks every storage.
	WriteTimeout time.Duration

	Phonebook PhonebookConfig
	Redis     RedisConfig
	Audit     AuditConfig
	Auth      AuthConfig
}

// PhonebookConfig controls the phonebook instances created at startup.
type PhonebookConfig struct {
	Storages []string
	// Modems maps modem ID to driver name.
	Modems   map[string]string
	SeedFile string
	// DriverLatency delays every simulated SIM access.
	DriverLatency time.Duration
}

// RedisConfig configures the client used by the redis SIM driver.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// AuditConfig selects where audit events go. Without a database URL events
// stay in memory; with one they go to the outbox and, when brokers are set,
// are relayed to Kafka.
type AuditConfig struct {
	DatabaseURL  string
	KafkaBrokers []string
	Topic        string
	PollInterval time.Duration
	BatchSize    int
	AsyncBuffer  int

	// OpsSampleRate is the share of operations events (exports, FDN reads)
	// that is persisted. Compliance and security events are always kept.
	OpsSampleRate   float64
	// MemoryRetention caps events kept per modem when no database is set.
	MemoryRetention int
}

type AuthConfig struct {
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	storages := models.ParseStorages(os.Getenv("PHONEBOOK_STORAGES"))
	if len(storages) == 0 {
		storages = append([]string(nil), models.DefaultStorages...)
	}

	return Server{
		Addr:      envOr("PHONEBOOKD_ADDR", ":8080"),
		LogLevel:  envOr("LOG_LEVEL", "info"),
		LogFormat: envOr("LOG_FORMAT", "json"),

		WriteTimeout: envDuration("HTTP_WRITE_TIMEOUT", 2*time.Minute),

		Phonebook: PhonebookConfig{
			Storages:      storages,
			Modems:        ParseModems(os.Getenv("PHONEBOOK_MODEMS")),
			SeedFile:      os.Getenv("PHONEBOOK_SEED_FILE"),
			DriverLatency: envDuration("PHONEBOOK_DRIVER_LATENCY", 0),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Audit: AuditConfig{
			DatabaseURL:     os.Getenv("DATABASE_URL"),
			KafkaBrokers:    splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:           envOr("AUDIT_TOPIC", "phonebookd.audit"),
			PollInterval:    envDuration("OUTBOX_POLL_INTERVAL", time.Second),
			BatchSize:       envInt("OUTBOX_BATCH_SIZE", 100),
			AsyncBuffer:     envInt("AUDIT_ASYNC_BUFFER", 0),
			OpsSampleRate:   envFloat("AUDIT_OPS_SAMPLE_RATE", 1),
			MemoryRetention: envInt("AUDIT_MEMORY_RETENTION", 1000),
		},
		Auth: AuthConfig{
			JWTSigningKey: jwtSigningKey,
			JWTIssuer:     envOr("JWT_ISSUER", "phonebookd"),
			JWTAudience:   envOr("JWT_AUDIENCE", "phonebookd"),
		},
	}
}

// ParseModems parses "id=driver" pairs separated by commas. Pairs without a
// driver default to the memory driver.
func ParseModems(raw string) map[string]string {
	out := map[string]string{}
	for _, pair := range splitList(raw) {
		id, driver, ok := strings.Cut(pair, "=")
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		driver = strings.TrimSpace(driver)
		if !ok || driver == "" {
			driver = "memory"
		}
		out[id] = driver
	}
	return out
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	return pbstrings.SplitList(raw)
}
