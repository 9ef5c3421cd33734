package config

import "github.com/caarlos0/env/v11"

// Config holds all process-scoped settings. It is loaded once in main and
// injected into the services that need it; nothing reads the environment
// after startup.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	JWTSecret   string `env:"JWT_SECRET,required,notEmpty"`
	Port        string `env:"PORT" envDefault:"5001"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
