package config

import (
	"reflect"
	"strings"

	"gravehold/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server ServerConfig `mapstructure:"server"`
	// Database holds configuration for the Postgres connection.
	Database DatabaseConfig `mapstructure:"database"`
	// Catalog holds configuration for the static item catalog.
	Catalog CatalogConfig `mapstructure:"catalog"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

type ServerConfig struct {
	// Addr is the listen address of the HTTP server.
	Addr string `mapstructure:"addr" default:":8080"`
}

type DatabaseConfig struct {
	// DSN is the Postgres connection string. When empty the server falls
	// back to in-memory repositories.
	DSN string `mapstructure:"dsn" default:""`
	// MigrationsDir is the directory holding ordered SQL migrations.
	MigrationsDir string `mapstructure:"migrations_dir" default:"migrations"`
}

type CatalogConfig struct {
	// Path points at the item definitions JSON file.
	Path string `mapstructure:"path" default:"catalog/items.json"`
}

// LoadConfig loads configuration from environment variables and a .env file.
// Environment keys map to nested keys: SERVER_ADDR -> server.addr.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}
	// Missing .env is fine in production.
	_ = godotenv.Overload(envPath)

	v := viper.New()
	bindValues(v, Config{}, "")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// bindValues walks the struct tags to register defaults in Viper, so
// AutomaticEnv can pick every key up.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
