package config

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	SkipSeed   bool   `yaml:"skip_seed" env:"SKIP_SEED"`
	HTTPServer `yaml:"http_server"`
	CORS       CORS `yaml:"cors"`
}

type HTTPServer struct {
	Host            string        `yaml:"host" env:"HTTP_HOST" env-default:""`
	Port            string        `yaml:"port" env:"PORT" env-default:"3000"`
	Timeout         time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" env:"HTTP_MAX_BODY_BYTES" env-default:"102400"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

// Address is the listen address built from host and port.
func (s HTTPServer) Address() string {
	return net.JoinHostPort(s.Host, s.Port)
}

func MustLoad() *Config {
	cfg, err := Load(fetchConfigPath())
	if err != nil {
		log.Fatal(err)
	}

	return cfg
}

// Load reads the YAML file at path, if any, and applies environment overrides.
// With an empty path only the environment and defaults are used.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read config from env: %w", err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	return &cfg, nil
}

// fetchConfigPath takes the path from the --config flag, falling back to
// the CONFIG_PATH env variable.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
