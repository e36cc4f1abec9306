package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type UploadsConfig struct {
	Dir          string `mapstructure:"dir"`
	MaxSizeBytes int64  `mapstructure:"max_size_bytes"`
}

func (config UploadsConfig) validate() error {
	if config.Dir == "" {
		return fmt.Errorf("missing variable: uploads dir")
	}
	return nil
}

func (config UploadsConfig) bindEnvironmentVariables() error {

	err := viper.BindEnv("uploads.dir", "UPLOADS_DIR")
	if err != nil {
		return err
	}

	return viper.BindEnv("uploads.max_size_bytes", "UPLOADS_MAX_SIZE_BYTES")
}
