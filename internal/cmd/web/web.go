// Package web wires configuration and storage for the web command.
package web

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	platformcmd "github.com/louisbranch/communal.kitchen/internal/platform/cmd"
	"github.com/louisbranch/communal.kitchen/internal/services/web"
	"github.com/louisbranch/communal.kitchen/internal/services/web/storage/sqlite"
)

const (
	defaultHTTPAddr     = "localhost:8080"
	defaultDatabasePath = "communal-kitchen.db"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string `env:"COMMUNAL_KITCHEN_WEB_HTTP_ADDR"`
	DatabasePath        string `env:"COMMUNAL_KITCHEN_WEB_DB_PATH"`
	AppName             string `env:"COMMUNAL_KITCHEN_WEB_APP_NAME"`
	SessionSecret       string `env:"COMMUNAL_KITCHEN_WEB_SESSION_SECRET"`
	TrustForwardedProto bool   `env:"COMMUNAL_KITCHEN_WEB_TRUST_FORWARDED_PROTO"`
}

// ParseConfig resolves configuration from env defaults and flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		HTTPAddr:     defaultHTTPAddr,
		DatabasePath: defaultDatabasePath,
	}
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DatabasePath, "db-path", cfg.DatabasePath, "SQLite database path")
	fs.StringVar(&cfg.AppName, "app-name", cfg.AppName, "Application display name")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto from upstream proxies")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	if strings.TrimSpace(cfg.SessionSecret) == "" {
		return errors.New("COMMUNAL_KITCHEN_WEB_SESSION_SECRET is required")
	}

	store, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close storage: %v", err)
		}
	}()

	server, err := web.NewServer(web.Config{
		HTTPAddr:            cfg.HTTPAddr,
		AppName:             cfg.AppName,
		SessionSecret:       cfg.SessionSecret,
		TrustForwardedProto: cfg.TrustForwardedProto,
	}, store)
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceWeb, func(ctx context.Context) error {
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
