package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything the engine reads from the environment.
type Config struct {
	QueueSize int
	LogLevel  string
	Ledger    LedgerConfig
	Kafka     KafkaConfig
}

// LedgerConfig selects the transaction store backing every account.
type LedgerConfig struct {
	Backend     string // "memory" or "postgres"
	PostgresDSN string
}

// KafkaConfig enables event publishing when brokers are set.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Load reads the configuration from the environment, after loading an
// optional .env file. Real environment variables win over .env entries.
func Load() *Config {
	_ = godotenv.Load()

	queueSize, err := strconv.Atoi(getEnv("ENGINE_QUEUE_SIZE", "16"))
	if err != nil || queueSize <= 0 {
		queueSize = 16
	}

	var brokers []string
	if raw := getEnv("KAFKA_BROKERS", ""); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	return &Config{
		QueueSize: queueSize,
		LogLevel:  getEnv("LOG_LEVEL", "warning"),
		Ledger: LedgerConfig{
			Backend:     getEnv("LEDGER_BACKEND", "memory"),
			PostgresDSN: getEnv("POSTGRES_DSN", ""),
		},
		Kafka: KafkaConfig{
			Brokers: brokers,
			Topic:   getEnv("KAFKA_TOPIC", "action_settled"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
