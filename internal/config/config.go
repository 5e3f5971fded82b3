package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type ProjectionConfig struct {
	MaxMonths            int
	ConstructionFraction float64
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Projection  ProjectionConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Projection: ProjectionConfig{
			MaxMonths:            v.GetInt("PROFORMA_MAX_MONTHS"),
			ConstructionFraction: v.GetFloat64("PROFORMA_CONSTRUCTION_FRACTION"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if cfg.Projection.MaxMonths == 0 {
		cfg.Projection.MaxMonths = 3600
	}
	if cfg.Projection.ConstructionFraction == 0 {
		cfg.Projection.ConstructionFraction = 0.8
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Projection.MaxMonths < 1 {
		return fmt.Errorf("PROFORMA_MAX_MONTHS must be positive")
	}
	if cfg.Projection.ConstructionFraction <= 0 || cfg.Projection.ConstructionFraction > 1 {
		return fmt.Errorf("PROFORMA_CONSTRUCTION_FRACTION must be in (0, 1]")
	}
	return nil
}
