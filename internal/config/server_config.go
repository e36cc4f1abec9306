package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port          int    `mapstructure:"port"`
	MetricsPort   int    `mapstructure:"metrics_port"`
	AllowedOrigin string `mapstructure:"allowed_origin"`
}

func (config ServerConfig) validate() error {
	var errs []error

	if config.Port <= 0 {
		errs = append(errs, fmt.Errorf("missing variable: port"))
	}
	if config.MetricsPort <= 0 {
		errs = append(errs, fmt.Errorf("missing variable: metrics_port"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config ServerConfig) bindEnvironmentVariables() error {

	err := viper.BindEnv("server.port", "PORT")
	if err != nil {
		return err
	}

	err = viper.BindEnv("server.metrics_port", "METRICS_PORT")
	if err != nil {
		return err
	}

	return viper.BindEnv("server.allowed_origin", "ALLOWED_ORIGIN")
}
