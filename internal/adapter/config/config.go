package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"golang.org/x/text/currency"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Auth     *Auth
	Pricing  *Pricing
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Auth struct {
	TokenTTL time.Duration `env:"TOKEN_TTL"`
}

type Pricing struct {
	CurrencyCode string `env:"CURRENCY"`
	Currency     currency.Unit
}

func NewConfig() (*Config, error) {
	return parse(flag.CommandLine, os.Args[1:])
}

func parse(fs *flag.FlagSet, args []string) (*Config, error) {
	var db Database
	var http HTTP
	var auth Auth
	var pricing Pricing
	var app App

	fs.StringVar(&db.DSN, "d", "", "Database string")
	fs.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	fs.DurationVar(&auth.TokenTTL, "t", 24*time.Hour, "Customer token lifetime")
	fs.StringVar(&pricing.CurrencyCode, "c", `USD`, "ISO 4217 currency of quoted amounts")
	fs.StringVar(&app.LogLevel, "l", `error`, "Log level")
	fs.StringVar(&app.Mode, "m", AppModeDevelop, "PROD / DEV")

	err := fs.Parse(args)
	if err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	err = env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&auth)
	if err != nil {
		return nil, fmt.Errorf("error parsing auth config: %w", err)
	}
	err = env.Parse(&pricing)
	if err != nil {
		return nil, fmt.Errorf("error parsing pricing config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	pricing.Currency, err = currency.ParseISO(pricing.CurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("error parsing currency %q: %w", pricing.CurrencyCode, err)
	}
	if auth.TokenTTL <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", auth.TokenTTL)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Auth:     &auth,
		Pricing:  &pricing,
		App:      &app,
	}

	return &config, nil
}
