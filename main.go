//go:generate go get -u github.com/valyala/quicktemplate/qtc
//go:generate qtc -dir=views

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Bios-Marcel/authbuttons/config"
	"github.com/Bios-Marcel/authbuttons/logger"
	"github.com/Bios-Marcel/authbuttons/store"
	"github.com/Bios-Marcel/authbuttons/userapi"
	"github.com/rs/zerolog/log"
)

func main() {
	// log.Logger writes to stderr until logger.Init replaces it, so config
	// errors are reported too.
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// run returns instead of exiting so the database is always closed.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	// The database file is created if it doesn't exist.
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	var api *userapi.Client
	if cfg.UserAPIURL != "" {
		api = userapi.NewClient(cfg.UserAPIURL, &http.Client{Timeout: cfg.Fetch.Timeout})
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newServer(db, api, cfg.Fetch, logger.Logger).routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Logger.Info().Str("addr", cfg.Addr).Msg("listening")
	return server.ListenAndServe()
}
