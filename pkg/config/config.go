package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP   HTTP
	Logger Logger
	Kafka  Kafka
	Dimpl  Dimpl
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey        string `env:"HTTP_API_KEY" envDefault:"dev"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Kafka struct {
	Enabled            bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers            []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	InvoiceStatusTopic string   `env:"KAFKA_INVOICE_STATUS_TOPIC" envDefault:"invoice-status"`
}

// Dimpl configures the factoring API client. BaseURL and APIKey have no
// default and must be supplied.
type Dimpl struct {
	BaseURL       string        `env:"DIMPL_BASE_URL"`
	APIKey        string        `env:"DIMPL_API_KEY"`
	Timeout       time.Duration `env:"DIMPL_TIMEOUT" envDefault:"10s"`
	RetryAttempts int           `env:"DIMPL_RETRY_ATTEMPTS" envDefault:"3"`
	RetryWaitMin  time.Duration `env:"DIMPL_RETRY_WAIT_MIN" envDefault:"1s"`
	RetryWaitMax  time.Duration `env:"DIMPL_RETRY_WAIT_MAX" envDefault:"5s"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
