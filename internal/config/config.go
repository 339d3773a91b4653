package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// minGridSize is the length of a winning row; smaller boards can never be won.
const minGridSize = 4

var (
	ErrInvalidGridSize         = errors.New("grid size must be at least 4")
	ErrInvalidRotationInterval = errors.New("rotation interval must be a positive integer")
	ErrInvalidSessionTTL       = errors.New("session ttl must be positive")
	ErrInvalidLogLevel         = errors.New("unknown log level")
)

type Config struct {
	LogLevel   string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string        `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"SESSION_TTL" env-default:"24h"`
	Redis      Redis         `yaml:"redis"`
	Game       Game          `yaml:"game"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Game holds the settings every new game starts with.
type Game struct {
	GridSize         int `yaml:"grid-size" env:"GAME_GRID_SIZE" env-default:"6"`
	RotationInterval int `yaml:"rotation-interval" env:"GAME_ROTATION_INTERVAL" env-default:"2"`
}

// Load reads config.yml at path, with environment variables taking precedence.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}

	if that.SessionTTL <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSessionTTL, that.SessionTTL)
	}

	if that.Game.GridSize < minGridSize {
		return fmt.Errorf("%w: %d", ErrInvalidGridSize, that.Game.GridSize)
	}

	if that.Game.RotationInterval < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidRotationInterval, that.Game.RotationInterval)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
