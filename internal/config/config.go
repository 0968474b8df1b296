package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Database   Database   `yaml:"database"`
	Redis      Redis      `yaml:"redis"`
	HotelAPI   HotelAPI   `yaml:"hotel_api"`
	Stripe     Stripe     `yaml:"stripe"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:3000"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Database struct {
	Host     string `yaml:"host" env-default:"localhost"`
	Port     int    `yaml:"port" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env-default:"taratrip"`
	SSLMode  string `yaml:"sslmode" env-default:"disable"`
}

// Redis is optional; an empty address disables the search cache.
type Redis struct {
	Address  string        `yaml:"address" env:"REDIS_ADDR"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db"`
	CacheTTL time.Duration `yaml:"cache_ttl" env-default:"5m"`
}

type HotelAPI struct {
	BaseURL         string        `yaml:"base_url" env-default:"https://data.xotelo.com/api"`
	Proxies         []string      `yaml:"proxies"`
	ResultLimit     int           `yaml:"result_limit" env-default:"6"`
	ExchangeRate    float64       `yaml:"exchange_rate" env-default:"56"`
	DefaultLocation string        `yaml:"default_location" env-default:"boracay"`
	Timeout         time.Duration `yaml:"timeout" env-default:"10s"`
}

type Stripe struct {
	SecretKey  string `yaml:"-" env:"STRIPE_SECRET_KEY"`
	SuccessURL string `yaml:"success_url" env-default:"http://localhost:3000/thank-you"`
	CancelURL  string `yaml:"cancel_url" env-default:"http://localhost:3000/static/index.html?payment=cancelled"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
