package config

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Jumga Ledger"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"jumga"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Settlement struct {
		// The platform's own principal, credited with every platform share.
		PlatformAccountID uuid.UUID `envconfig:"PLATFORM_ACCOUNT_ID" required:"true"`

		PlatformSaleShare     decimal.Decimal `envconfig:"PLATFORM_SALE_SHARE" default:"0.026"`
		MerchantSaleShare     decimal.Decimal `envconfig:"MERCHANT_SALE_SHARE" default:"0.974"`
		PlatformDeliveryShare decimal.Decimal `envconfig:"PLATFORM_DELIVERY_SHARE" default:"0.20"`
		RiderDeliveryShare    decimal.Decimal `envconfig:"RIDER_DELIVERY_SHARE" default:"0.80"`

		Timeout time.Duration `envconfig:"SETTLEMENT_TIMEOUT" default:"10s"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
