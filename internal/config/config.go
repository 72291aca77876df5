package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE" envDefault:"false"`
	Port       int  `env:"PORT" envDefault:"8080"`

	// CronSecret authorizes external sweep triggers (POST /sweep).
	CronSecret string `env:"CRON_SECRET,notEmpty"`

	PostgresqlURL string `env:"POSTGRESQL_URL,notEmpty"`
	RedisURL      string `env:"REDIS_URL,notEmpty"`

	RabbitmqURL               string `env:"RABBITMQ_URL,notEmpty"`
	RabbitmqConfirmationQueue string `env:"RABBITMQ_CONFIRMATION_QUEUE" envDefault:"reminder-confirmation"`

	AwsAccessKey string `env:"AWS_ACCESS_KEY,notEmpty"`
	AwsSecretKey string `env:"AWS_SECRET_KEY,notEmpty"`
	AwsRegion    string `env:"AWS_REGION" envDefault:"eu-west-1"`
	// EmailSender must be verified with Amazon SES.
	EmailSender string `env:"EMAIL_SENDER,notEmpty"`

	LoginCodeValidFor   time.Duration `env:"LOGIN_CODE_VALID_FOR" envDefault:"10m"`
	SessionValidFor     time.Duration `env:"SESSION_VALID_FOR" envDefault:"168h"`
	NotificationTimeout time.Duration `env:"NOTIFICATION_TIMEOUT" envDefault:"30s"`

	SweepCronSpec string `env:"SWEEP_CRON_SPEC" envDefault:"0 7 * * *"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}
	return cfg, nil
}
