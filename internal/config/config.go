package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultHTTPAddr                 = "0.0.0.0:8080"
	defaultPostgresHost             = "localhost"
	defaultPostgresPort             = "5432"
	defaultDocumentValidatorURL     = "https://user-info.herokuapp.com"
	defaultDocumentValidatorRetries = 3
	defaultDocumentValidatorTimeout = 5 * time.Second
	defaultKafkaBrokers             = "localhost:9092"
	defaultKafkaResultTopic         = "vote-results"
)

type Config struct {
	HTTPAddr       string
	AllowedOrigins []string
	LogFormat      string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	DocumentValidatorURL     string
	DocumentValidatorRetries int
	DocumentValidatorTimeout time.Duration

	KafkaBrokers     []string
	KafkaResultTopic string
}

// Load reads the configuration from the environment. Variables from a .env
// file must already be loaded by the caller.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", defaultHTTPAddr)
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("POSTGRES_HOST", defaultPostgresHost)
	v.SetDefault("POSTGRES_PORT", defaultPostgresPort)
	v.SetDefault("DOCUMENT_VALIDATOR_URL", defaultDocumentValidatorURL)
	v.SetDefault("DOCUMENT_VALIDATOR_RETRIES", defaultDocumentValidatorRetries)
	v.SetDefault("DOCUMENT_VALIDATOR_TIMEOUT", defaultDocumentValidatorTimeout)
	v.SetDefault("KAFKA_BROKERS", defaultKafkaBrokers)
	v.SetDefault("KAFKA_RESULT_TOPIC", defaultKafkaResultTopic)

	cfg := &Config{
		HTTPAddr:                 v.GetString("HTTP_ADDR"),
		AllowedOrigins:           splitList(v.GetString("ALLOWED_ORIGINS")),
		LogFormat:                v.GetString("LOG_FORMAT"),
		PostgresHost:             v.GetString("POSTGRES_HOST"),
		PostgresPort:             v.GetString("POSTGRES_PORT"),
		PostgresUser:             v.GetString("POSTGRES_USER"),
		PostgresPassword:         v.GetString("POSTGRES_PASSWORD"),
		PostgresDB:               v.GetString("POSTGRES_DB"),
		DocumentValidatorURL:     strings.TrimRight(v.GetString("DOCUMENT_VALIDATOR_URL"), "/"),
		DocumentValidatorRetries: v.GetInt("DOCUMENT_VALIDATOR_RETRIES"),
		DocumentValidatorTimeout: v.GetDuration("DOCUMENT_VALIDATOR_TIMEOUT"),
		KafkaBrokers:             splitList(v.GetString("KAFKA_BROKERS")),
		KafkaResultTopic:         v.GetString("KAFKA_RESULT_TOPIC"),
	}

	if cfg.DocumentValidatorRetries < 0 {
		return nil, fmt.Errorf("DOCUMENT_VALIDATOR_RETRIES must not be negative, got %d", cfg.DocumentValidatorRetries)
	}
	if cfg.DocumentValidatorTimeout <= 0 {
		return nil, fmt.Errorf("DOCUMENT_VALIDATOR_TIMEOUT must be positive, got %s", cfg.DocumentValidatorTimeout)
	}

	return cfg, nil
}

func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
