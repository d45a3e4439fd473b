package config

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"accounter-ledger"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"accounter"`
	}

	// Ledger pins the bookkeeping conventions: the local currency and the
	// fixed VAT / exchange-difference accounts records are posted to.
	Ledger struct {
		LocalCurrency       string    `envconfig:"LEDGER_LOCAL_CURRENCY" default:"ILS"`
		VATAccountID        uuid.UUID `envconfig:"LEDGER_VAT_ACCOUNT_ID"`
		VATAccountName      string    `envconfig:"LEDGER_VAT_ACCOUNT_NAME" default:"VAT"`
		ExchangeAccountID   uuid.UUID `envconfig:"LEDGER_EXCHANGE_ACCOUNT_ID"`
		ExchangeAccountName string    `envconfig:"LEDGER_EXCHANGE_ACCOUNT_NAME" default:"Exchange Rates"`
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
