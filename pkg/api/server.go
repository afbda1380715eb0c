package api

import (
	"context"
	"log/slog"

	"github.com/zillyinc/tellus-client-version/pkg/errors"
	"github.com/zillyinc/tellus-client-version/pkg/gate"
	"github.com/zillyinc/tellus-client-version/pkg/logging"
	"github.com/zillyinc/tellus-client-version/pkg/server"
)

const (
	name           = "tellusd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/zillyinc/tellus-client-version/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the client version API and blocks until it shuts down.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s, err := newServer(server.NewConfig())
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		return err
	}

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// newServer builds the server for cfg, loading the feature gates up front so
// a bad gates file fails before the listener opens.
func newServer(cfg *server.Config) (*server.Server, error) {
	opts := []server.Option{
		server.WithConfig(cfg),
		server.WithName(name),
		server.WithVersion(version),
	}

	if cfg.GatesFile != "" {
		set, err := gate.Load(cfg.GatesFile)
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidConfig, "failed to load feature gates", err,
				map[string]any{"file": cfg.GatesFile})
		}
		slog.Info("feature gates loaded", "file", cfg.GatesFile, "features", set.Len())
		opts = append(opts, server.WithGates(set))
	}

	return server.New(opts...), nil
}
