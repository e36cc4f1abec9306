package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type AuthConfig struct {
	JwtSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

func (config AuthConfig) validate() error {
	if config.JwtSecret == "" {
		return fmt.Errorf("missing variable: jwt_secret")
	}
	if config.TokenTTL <= 0 {
		return fmt.Errorf("missing variable: token_ttl")
	}
	return nil
}

func (config AuthConfig) bindEnvironmentVariables() error {

	err := viper.BindEnv("auth.jwt_secret", "JWT_SECRET")
	if err != nil {
		return err
	}

	return viper.BindEnv("auth.token_ttl", "TOKEN_TTL")
}
