// config.go
package config

import (
	"os"

	"github.com/lontso23/FitnessCoachApp/entity"
	"github.com/lontso23/FitnessCoachApp/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// ReadConfig reads the configuration from the YAML file
func ReadConfig(filePath string) (*entity.Config, error) {
	var config entity.Config

	// Read the YAML file content
	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Error("unable to read file", zap.Error(err))
		return nil, err
	}

	// Unmarshal the YAML data into the Config struct
	if err := yaml.Unmarshal(data, &config); err != nil {
		logger.Error("unable to unmarshal YAML", zap.Error(err))
		return nil, err
	}

	return &config, nil
}

// Path returns the config file location, honoring the CONFIG_PATH
// environment variable.
func Path() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config/development.yaml"
}
