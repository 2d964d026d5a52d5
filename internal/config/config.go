package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

var singleConfig *Config = nil

type Config struct {
	Service *svcConfig
}

type svcConfig struct {
	Address        string `envconfig:"RACKPREP_ADDRESS" default:":3443" validate:"required"`
	MetricsAddress string `envconfig:"RACKPREP_METRICS_ADDRESS" default:":8080" validate:"required"`
	LogLevel       string `envconfig:"RACKPREP_LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	MaxRequestSize int64  `envconfig:"RACKPREP_MAX_REQUEST_SIZE" default:"1048576" validate:"gt=0"`
}

// New processes the environment into the process-wide configuration
// singleton and validates it.
func New() (*Config, error) {
	if singleConfig == nil {
		cfg := new(Config)
		if err := envconfig.Process("", cfg); err != nil {
			return nil, errors.Wrap(err, "processing environment configuration")
		}
		if err := validator.New().Struct(cfg.Service); err != nil {
			return nil, errors.Wrap(err, "invalid configuration")
		}
		singleConfig = cfg
	}
	return singleConfig, nil
}
