package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures everything main needs to wire the service, read once from
// the environment.
type Config struct {
	Addr string

	// PostgresURL enables the durable stores; empty falls back to memory.
	PostgresURL string

	// RedisURL enables the shared session store; empty falls back to memory.
	RedisURL   string
	SessionTTL time.Duration

	// KafkaBrokers enables case-created event publishing; empty disables it.
	KafkaBrokers []string
	KafkaTopic   string

	JWTSigningKey string

	// Officer login for the audit review endpoints. The hash is a bcrypt
	// hash of the officer password.
	OfficerUsername     string
	OfficerPasswordHash string

	AuditQueueSize int
	AuditWorkers   int
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	addr := os.Getenv("HESABU_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		for _, broker := range strings.Split(raw, ",") {
			if broker = strings.TrimSpace(broker); broker != "" {
				brokers = append(brokers, broker)
			}
		}
	}
	topic := os.Getenv("KAFKA_AUDIT_TOPIC")
	if topic == "" {
		topic = "audit.case-created"
	}

	return Config{
		Addr:                addr,
		PostgresURL:         os.Getenv("POSTGRES_URL"),
		RedisURL:            os.Getenv("REDIS_URL"),
		SessionTTL:          envDuration("SESSION_TTL", 24*time.Hour),
		KafkaBrokers:        brokers,
		KafkaTopic:          topic,
		JWTSigningKey:       jwtSigningKey,
		OfficerUsername:     os.Getenv("OFFICER_USERNAME"),
		OfficerPasswordHash: os.Getenv("OFFICER_PASSWORD_HASH"),
		AuditQueueSize:      envInt("AUDIT_QUEUE_SIZE", 256),
		AuditWorkers:        envInt("AUDIT_WORKERS", 2),
	}
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
