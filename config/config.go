package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string   `env:"APP_ENV" envDefault:"development"`
	Port        string   `env:"PORT" envDefault:"8080"`
	JWTSecret   string   `env:"JWT_SECRET,notEmpty"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	Log        Log        `envPrefix:"LOG_"`
	Database   Database   `envPrefix:"DB_"`
	Stripe     Stripe     `envPrefix:"STRIPE_"`
	Mail       Mail       `envPrefix:"SMTP_"`
	Cloudinary Cloudinary `envPrefix:"CLOUDINARY_"`
}

type Log struct {
	Level string `env:"LEVEL" envDefault:"info"`
	Dir   string `env:"DIR" envDefault:"logs"`
}

type Database struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
	URL    string `env:"URL"`
}

// Stripe holds the payment provider settings. An empty WebhookSecret makes
// the webhook endpoint refuse every event.
type Stripe struct {
	SecretKey     string `env:"SECRET_KEY"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
	Currency      string `env:"CURRENCY" envDefault:"inr"`
	SuccessURL    string `env:"SUCCESS_URL" envDefault:"http://localhost:5173/success"`
	CancelURL     string `env:"CANCEL_URL" envDefault:"http://localhost:5173/cancel"`
}

type Mail struct {
	Host     string `env:"HOST" envDefault:"smtp.gmail.com"`
	Port     string `env:"PORT" envDefault:"587"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM"`
}

type Cloudinary struct {
	CloudName string `env:"CLOUD_NAME"`
	APIKey    string `env:"API_KEY"`
	APISecret string `env:"API_SECRET"`
}

// Load reads an optional .env file then parses the process environment.
func Load() (Config, error) {
	// .env is optional, real deployments set the variables directly
	_ = godotenv.Load()
	return parse(env.Options{})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.Mail.From == "" {
		cfg.Mail.From = cfg.Mail.Username
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
