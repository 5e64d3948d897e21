package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DateLayout is the layout of dates in the configuration file
const DateLayout = "2006-01-02"

// EnvPrefix prefixes every environment variable read by the configuration
const EnvPrefix = "ROSTER_"

// Store backends
const (
	BackendNone     = "none"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// StoreConfig selects where history records are persisted
type StoreConfig struct {
	Backend       string `yaml:"backend" validate:"omitempty,oneof=none postgres redis"`
	PostgresDSN   string `yaml:"postgresDSN" env:"POSTGRES_DSN" validate:"required_if=Backend postgres"`
	RedisAddr     string `yaml:"redisAddr" env:"REDIS_ADDR" validate:"required_if=Backend redis"`
	RedisPassword string `yaml:"redisPassword,omitempty" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redisDB,omitempty" env:"REDIS_DB" validate:"min=0"`
}

// EventsConfig configures the broker that receives week-ready events.
// Events are disabled when AMQPURL is empty.
type EventsConfig struct {
	AMQPURL string `yaml:"amqpURL,omitempty" env:"AMQP_URL" validate:"omitempty,url"`
	Queue   string `yaml:"queue,omitempty"`
}

// PublishConfig configures where solved weeks are published
type PublishConfig struct {
	RosterSheetID string `yaml:"rosterSheetID,omitempty" env:"SHEET_ID"`
}

// Config represents the application configuration
type Config struct {
	// DataDir is the directory instance file names are resolved against
	DataDir string `yaml:"dataDir"`

	// OutputDir receives written history and solution files; defaults to DataDir
	OutputDir string `yaml:"outputDir,omitempty"`

	ScenarioFile       string   `yaml:"scenarioFile" validate:"required"`
	InitialHistoryFile string   `yaml:"initialHistoryFile" validate:"required"`
	WeekFiles          []string `yaml:"weekFiles" validate:"required,min=1,dive,required"`
	StrictParsing      bool     `yaml:"strictParsing"`

	// HorizonStart dates the first Monday of the horizon, optional
	HorizonStart string `yaml:"horizonStart,omitempty" validate:"omitempty,datetime=2006-01-02"`

	Store   StoreConfig   `yaml:"store"`
	Events  EventsConfig  `yaml:"events"`
	Publish PublishConfig `yaml:"publish"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads the configuration from roster_config.yaml
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration for an environment. env="test" looks for
// roster_config.test.yaml. A .env file in the working directory is loaded first
// so that ROSTER_* variables can override connection settings.
func LoadWithEnv(env string) (*Config, error) {
	if err := loadDotEnv(env); err != nil {
		return nil, err
	}

	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// loadDotEnv loads .env.<env> and .env when present. Variables already set in
// the process environment win.
func loadDotEnv(env string) error {
	var files []string
	if env != "" {
		files = append(files, ".env."+env)
	}
	files = append(files, ".env")

	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

// LoadFromPath loads, overrides from the environment and validates the
// configuration at path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		var aggErr env.AggregateError
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			return nil, fmt.Errorf("failed to read environment: %w", aggErr.Errors[0])
		}
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Dir(path)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = cfg.DataDir
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = BackendNone
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks that the horizon starts on a Monday
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.HorizonStart != "" {
		start, err := time.Parse(DateLayout, cfg.HorizonStart)
		if err != nil {
			return fmt.Errorf("invalid horizonStart: %w", err)
		}
		if start.Weekday() != time.Monday {
			return fmt.Errorf("horizonStart %s is a %s, not a Monday", cfg.HorizonStart, start.Weekday())
		}
	}

	return nil
}

// Start returns the parsed horizon start and whether one is configured
func (c *Config) Start() (time.Time, bool) {
	if c.HorizonStart == "" {
		return time.Time{}, false
	}
	start, err := time.Parse(DateLayout, c.HorizonStart)
	if err != nil {
		return time.Time{}, false
	}
	return start, true
}

// resolve joins relative paths onto the data directory
func (c *Config) resolve(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.DataDir, file)
}

// ScenarioPath is the path of the scenario file
func (c *Config) ScenarioPath() string {
	return c.resolve(c.ScenarioFile)
}

// InitialHistoryPath is the path of the history file entering the first configured week
func (c *Config) InitialHistoryPath() string {
	return c.resolve(c.InitialHistoryFile)
}

// WeekPath is the path of the week file used for week index week
func (c *Config) WeekPath(week int) (string, error) {
	if week < 0 || week >= len(c.WeekFiles) {
		return "", fmt.Errorf("no week file configured for week %d (have %d)", week, len(c.WeekFiles))
	}
	return c.resolve(c.WeekFiles[week]), nil
}

// OutputPath joins name onto the output directory
func (c *Config) OutputPath(name string) string {
	return filepath.Join(c.OutputDir, name)
}

// findConfigFile searches for the config file of env
func findConfigFile(env string) (string, error) {
	name := "roster_config.yaml"
	if env != "" {
		name = "roster_config." + env + ".yaml"
	}
	return findFile(name)
}

// findFile looks for name in the current directory, then in the home directory
func findFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, name)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", name)
}
