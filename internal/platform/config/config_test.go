package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PHONEBOOKD_ADDR", "PHONEBOOK_STORAGES", "PHONEBOOK_MODEMS", "JWT_SIGNING_KEY", "OUTBOX_POLL_INTERVAL", "KAFKA_BROKERS", "HTTP_WRITE_TIMEOUT", "AUDIT_MEMORY_RETENTION"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, []string{"SM", "ME"}, cfg.Phonebook.Storages)
	assert.Empty(t, cfg.Phonebook.Modems)
	assert.NotEmpty(t, cfg.Auth.JWTSigningKey)
	assert.Equal(t, time.Second, cfg.Audit.PollInterval)
	assert.Empty(t, cfg.Audit.KafkaBrokers)
	assert.Equal(t, 1.0, cfg.Audit.OpsSampleRate)
	assert.Equal(t, 2*time.Minute, cfg.WriteTimeout)
	assert.Equal(t, 1000, cfg.Audit.MemoryRetention)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PHONEBOOKD_ADDR", ":9000")
	t.Setenv("PHONEBOOK_STORAGES", "me, sm ,")
	t.Setenv("PHONEBOOK_MODEMS", "/modem0=redis,/modem1")
	t.Setenv("KAFKA_BROKERS", "a:9092, b:9092")
	t.Setenv("OUTBOX_POLL_INTERVAL", "250ms")
	t.Setenv("REDIS_POOL_SIZE", "not-a-number")
	t.Setenv("HTTP_WRITE_TIMEOUT", "30s")

	cfg := FromEnv()
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, []string{"ME", "SM"}, cfg.Phonebook.Storages)
	assert.Equal(t, map[string]string{"/modem0": "redis", "/modem1": "memory"}, cfg.Phonebook.Modems)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Audit.KafkaBrokers)
	assert.Equal(t, 250*time.Millisecond, cfg.Audit.PollInterval)
	assert.Equal(t, 10, cfg.Redis.PoolSize)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
}
