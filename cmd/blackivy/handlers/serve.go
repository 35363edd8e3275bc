package handlers

import (
	"context"

	"github.com/blackivy/onboarding/internal/metrics"
	"github.com/blackivy/onboarding/internal/server"
)

// ServeOptions are the flags of the serve command.
type ServeOptions struct {
	ConfigPath string
	Addr       string
	Verbose    bool
}

// runServer serves until ctx is done. Replaced in tests.
var runServer = func(ctx context.Context, srv *server.Server, addr string) error {
	return srv.Run(ctx, addr)
}

// Serve runs the HTTP API.
func Serve(ctx context.Context, opts ServeOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	log := newLogger(cfg.Log, opts.Verbose)

	addr := cfg.Server.Addr
	if opts.Addr != "" {
		addr = opts.Addr
	}

	sub, err := newSubmitter(ctx, cfg.Storage, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := sub.Close(context.Background()); err != nil {
			log.Error(err, "failed to close storage backend")
		}
	}()

	srv := server.New(sub, metrics.New(true), log.WithName("server"))
	return runServer(ctx, srv, addr)
}
