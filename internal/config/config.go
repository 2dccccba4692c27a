package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Payroll PayrollConfig `mapstructure:"payroll"`
	Logger  LoggerConfig  `mapstructure:"logger"`
}

// CatalogConfig locates the workflow-catalog file
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// PayrollConfig holds payroll calculation defaults
type PayrollConfig struct {
	StandardWorkDays int `mapstructure:"standard_work_days"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Override with environment variables
	bindEnvVars()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Catalog defaults
	viper.SetDefault("catalog.path", "configs/catalog.yaml")

	// Payroll defaults
	viper.SetDefault("payroll.standard_work_days", 26)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.output_path", "stdout")
	viper.SetDefault("logger.format", "json")
}

// bindEnvVars binds environment variables to configuration
func bindEnvVars() {
	viper.BindEnv("catalog.path", "WORKFLOW_CATALOG_PATH")
	viper.BindEnv("logger.level", "LOG_LEVEL")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog.path is required")
	}
	if c.Payroll.StandardWorkDays < 1 || c.Payroll.StandardWorkDays > 31 {
		return fmt.Errorf("payroll.standard_work_days must be between 1 and 31")
	}
	return nil
}
