package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported database dialects.
const (
	DialectPostgres = "postgres"
	DialectMySQL    = "mysql"
	DialectSQLite   = "sqlite"
)

// Config is the process-wide service configuration.
type Config struct {
	Server   Server   `yaml:"server"`
	Database Database `yaml:"database"`
	Log      Log      `yaml:"log"`
	Scaffold Scaffold `yaml:"scaffold"`
}

// Server holds HTTP listener settings.
type Server struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

// Database holds the live store connection parameters. It is passed by value so
// every consumer works on its own snapshot.
type Database struct {
	Dialect  string `yaml:"dialect"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
	TimeZone string `yaml:"time_zone"`
	// RawDSN overrides the DSN assembled from the fields above.
	RawDSN string `yaml:"dsn"`
}

// Log holds logrus and rotation settings.
type Log struct {
	Level      string `yaml:"level"`
	Dir        string `yaml:"dir"`
	MaxSize    int    `yaml:"max_size"`    // megabytes
	MaxBackups int    `yaml:"max_backups"` // number of files
	MaxAge     int    `yaml:"max_age"`     // days
	Compress   bool   `yaml:"compress"`
}

// Scaffold holds settings for generated modules.
type Scaffold struct {
	// BaseDir is the application base directory; modules are written below <BaseDir>/modules.
	BaseDir string `yaml:"base_dir"`
	// Format runs gofmt over the submitted sources before they are written.
	// Off by default so files hold exactly what was submitted.
	Format bool `yaml:"format"`
}

// Default returns the configuration used when nothing else is provided.
func Default() *Config {
	return &Config{
		Server: Server{Port: 8080, GinMode: "release"},
		Database: Database{
			Dialect:  DialectPostgres,
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Name:     "admin",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: Log{
			Level:      "info",
			Dir:        "logs",
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     28,
		},
		Scaffold: Scaffold{BaseDir: "."},
	}
}

// Load builds the configuration from defaults, an optional .env file, an optional
// YAML file at path and finally the environment. An empty path skips the YAML step.
func Load(path string) (*Config, error) {
	// .env is optional; a missing file is not an error.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Database.Dialect, "DB_DIALECT")
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.Port, "DB_PORT")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.Name, "DB_NAME")
	setString(&c.Database.SSLMode, "DB_SSLMODE")
	setString(&c.Database.TimeZone, "DB_TIMEZONE")
	setString(&c.Database.RawDSN, "DB_DSN")
	setString(&c.Server.GinMode, "GIN_MODE")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.Dir, "LOG_DIR")
	setString(&c.Scaffold.BaseDir, "APP_BASE_DIR")

	if v := os.Getenv("SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SERVER_PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("SCAFFOLD_FORMAT"); v != "" {
		format, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SCAFFOLD_FORMAT %q: %w", v, err)
		}
		c.Scaffold.Format = format
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

// Validate reports configuration values the service cannot run with.
func (c *Config) Validate() error {
	switch c.Database.Dialect {
	case DialectPostgres, DialectMySQL, DialectSQLite:
	default:
		return fmt.Errorf("unsupported database dialect %q", c.Database.Dialect)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if strings.TrimSpace(c.Scaffold.BaseDir) == "" {
		return errors.New("scaffold base dir cannot be empty")
	}
	return nil
}

// DSN returns the driver-specific data source name.
func (d Database) DSN() string {
	if d.RawDSN != "" {
		return d.RawDSN
	}
	switch d.Dialect {
	case DialectMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			d.User, d.Password, d.Host, d.Port, d.Name)
	case DialectSQLite:
		return d.Name
	default:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode, d.TimeZone)
	}
}
