package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"log"
)

type Config struct {
	Env      string `env:"ENV"`
	LogLevel string `env:"LOG_LEVEL"`
	Mongo    Mongo
	Api      Api
}

type Mongo struct {
	URI    string `env:"MONGO_URI"`
	DbName string `env:"MONGO_DB_NAME"`
}

type Api struct {
	BaseUrl       string `env:"API_BASE_URL"`
	AdminUsername string `env:"API_ADMIN_USERNAME"`
	TimeoutSec    int    `env:"API_TIMEOUT_SEC"`
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}

	opts := env.Options{RequiredIfNoDef: true}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}
