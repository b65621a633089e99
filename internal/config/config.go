package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DatabaseDSN   string  `env:"DATABASE_URI"`
	MigrationsDir string  `env:"MIGRATIONS_DIR"`
	OpsAddress    string  `env:"OPS_ADDRESS"`
	Interval      float64 `env:"GENERATOR_INTERVAL" envDefault:"1.0"`
	MaxUsers      int     `env:"GENERATOR_MAX_USERS" envDefault:"500"`
	MaxAccounts   int     `env:"GENERATOR_MAX_ACCOUNTS" envDefault:"5000"`
}

// TickInterval интервал основного цикла. GENERATOR_INTERVAL задается в секундах
// дробным числом, как у остальных генераторов платформы.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Interval * float64(time.Second))
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.Interval <= 0 {
		return nil, errors.New("generator interval must be positive")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.OpsAddress, "a", "localhost:9090", "Ops address (metrics, health) in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")

	flag.Parse()
}

// mergeConfig объединяет значения: env имеет приоритет над флагами.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		OpsAddress:    defaultIfBlank(envConfig.OpsAddress, flagsConfig.OpsAddress),
		DatabaseDSN:   defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir: defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		Interval:      envConfig.Interval,
		MaxUsers:      envConfig.MaxUsers,
		MaxAccounts:   envConfig.MaxAccounts,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
