package internal

import (
	"fmt"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

const (
	StoreBadger = "badger"
	StoreSQLite = "sqlite"
)

type Config struct {
	Host        string `env:"HOST,default=0.0.0.0" validate:"required"`
	Port        int    `env:"PORT,default=5001" validate:"min=1,max=65535"`
	JWTSecret   string `env:"JWT_SECRET,required=true" validate:"required"`
	LogLevel    string `env:"LOG_LEVEL,default=INFO"`
	StoreDriver string `env:"STORE_DRIVER,default=badger" validate:"oneof=badger sqlite"`

	BadgerFilepath string `env:"BADGER_FILEPATH,default=./data/badger"`
	SQLiteFilepath string `env:"SQLITE_FILEPATH,default=./data/notes.db"`

	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=64" validate:"min=1"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,default=2s" validate:"gt=0"`
	WSReadLimit          int64         `env:"WS_READ_LIMIT,default=4096" validate:"min=128"`
	AllowedOrigins       string        `env:"ALLOWED_ORIGINS,default=http://localhost:3000"`

	SweepInterval          time.Duration `env:"SWEEP_INTERVAL,default=5m" validate:"gt=0"`
	PresenceReportInterval time.Duration `env:"PRESENCE_REPORT_INTERVAL,default=1m" validate:"gt=0"`
	RestartInterval        time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	ShutdownTimeout        time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s" validate:"gt=0"`

	// Badger inspector, only started at debug log level
	DebugPort int `env:"DEBUG_PORT,default=8081"`
}

// LoadConfig reads the process environment then validates the result.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, err
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Origins splits ALLOWED_ORIGINS on commas.
func (c Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
