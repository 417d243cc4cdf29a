package cmd

import (
	"fmt"
	"time"
)

// Order number allocators selectable with ORDER_SEQUENCE_BACKEND.
const (
	SequenceBackendPostgres = "postgres"
	SequenceBackendRedis    = "redis"
)

const DefaultSequenceRetentionDays = 7

type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	SequenceBackend         string
	RedisAddr               string
	RedisPassword           string
	RedisDB                 int
	SequenceRetentionDays   int
	SequenceCleanupSchedule string
}

// DSN returns a keyword/value connection string understood by both pgx and lib/pq.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) SequenceRetention() time.Duration {
	days := c.SequenceRetentionDays
	if days <= 0 {
		days = DefaultSequenceRetentionDays
	}
	return time.Duration(days) * 24 * time.Hour
}

func (c Config) Validate() error {
	switch c.SequenceBackend {
	case SequenceBackendPostgres:
	case SequenceBackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when ORDER_SEQUENCE_BACKEND is %q", SequenceBackendRedis)
		}
	default:
		return fmt.Errorf("unknown ORDER_SEQUENCE_BACKEND %q", c.SequenceBackend)
	}
	if c.HTTPPort == "" {
		return fmt.Errorf("HTTP_PORT is required")
	}
	return nil
}
