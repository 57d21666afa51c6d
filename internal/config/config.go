// README: Config loader; env vars with defaults via cleanenv.
package config

import (
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	HTTP struct {
		Addr string `env:"LIMOQUOTE_HTTP_ADDR" env-default:":8080"`
	}
	DB struct {
		// Empty DSN runs the service on the built-in rate catalog.
		DSN string `env:"LIMOQUOTE_DB_DSN" env-default:""`
	}
	Redis struct {
		// Empty address disables the zone resolution cache.
		Addr string `env:"LIMOQUOTE_REDIS_ADDR" env-default:""`
	}
	Maps struct {
		// Empty key disables geocoding; zone resolution then relies on
		// city-name matching only.
		APIKey string `env:"LIMOQUOTE_MAPS_API_KEY" env-default:""`
	}
	Pricing struct {
		Currency string `env:"LIMOQUOTE_CURRENCY" env-default:"USD"`
	}
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
