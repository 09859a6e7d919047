// Package config carga la configuración desde el entorno (y .env si existe).
//
// Variables con prefijo VETCLINIC_; "__" separa niveles:
//
//	VETCLINIC_SERVER__PORT=8080          -> server.port
//	VETCLINIC_DATABASE__DSN=postgres://  -> database.dsn
//	VETCLINIC_LOG__FORMAT=json           -> log.format
//
// PORT y DB_DSN (nombres viejos) se respetan si las prefijadas no están.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const envPrefix = "VETCLINIC_"

type Config struct {
	Env      string         `koanf:"env" validate:"required"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Log      LogConfig      `koanf:"log"`
	SPA      SPAConfig      `koanf:"spa"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

type DatabaseConfig struct {
	// Vacío => store in-memory (modo dev).
	DSN          string `koanf:"dsn"`
	MaxOpenConns int    `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns int    `koanf:"max_idle_conns" validate:"gte=0"`
	AutoMigrate  bool   `koanf:"auto_migrate"`
	TraceSQL     bool   `koanf:"trace_sql"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

type SPAConfig struct {
	// Directorio con el build del front. Vacío => shell embebido.
	Dir string `koanf:"dir"`
}

func Default() Config {
	return Config{
		Env: "local",
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Database: DatabaseConfig{
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load lee el entorno del proceso.
func Load() (Config, error) {
	return load(env.Provider(envPrefix, ".", envKey), os.Getenv)
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
}

func load(provider koanf.Provider, getenv func(string) string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(provider, nil); err != nil {
		return Config{}, errors.Wrap(err, "load env")
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}

	// Compatibilidad con las variables sin prefijo.
	if !k.Exists("server.port") {
		if v := strings.TrimSpace(getenv("PORT")); v != "" {
			cfg.Server.Port = v
		}
	}
	if !k.Exists("database.dsn") {
		if v := strings.TrimSpace(getenv("DB_DSN")); v != "" {
			cfg.Database.DSN = v
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// Addr devuelve ":<port>" para http.Server.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Server.Port, ":")
}

func (c Config) UsesPostgres() bool {
	return strings.TrimSpace(c.Database.DSN) != ""
}
