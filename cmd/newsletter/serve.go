package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/newsletter/internal/editor"
	"github.com/dmitrymomot/newsletter/internal/server"
	"github.com/dmitrymomot/newsletter/middlewares"
	"github.com/dmitrymomot/newsletter/pkg/config"
	"github.com/dmitrymomot/newsletter/pkg/db"
	"github.com/dmitrymomot/newsletter/pkg/export"
	"github.com/dmitrymomot/newsletter/pkg/health"
	"github.com/dmitrymomot/newsletter/pkg/helpdoc"
	"github.com/dmitrymomot/newsletter/pkg/logger"
	"github.com/dmitrymomot/newsletter/pkg/project"
	redisx "github.com/dmitrymomot/newsletter/pkg/redis"
	"github.com/dmitrymomot/newsletter/pkg/storage"
)

// ErrUnknownStore is returned for an unsupported PROJECT_STORE value.
var ErrUnknownStore = errors.New("newsletter: unknown project store")

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the editor API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load[Config](config.WithEnvFiles(root.envFiles...))
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	return cmd
}

func serve(ctx context.Context, cfg Config) error {
	log, flush := logger.New(cfg.Log, os.Stderr, middlewares.RequestIDExtractor())
	defer flush()

	b, err := openBackend(ctx, cfg, log)
	if err != nil {
		return err
	}

	saver := project.NewAutosaver(b.store,
		project.WithDelay(cfg.AutosaveDelay),
		project.WithLogger(log),
	)
	session, err := editor.RestoreSession(ctx, b.store, editor.WithAutosaver(saver))
	if err != nil {
		b.shutdown(ctx, log)
		return fmt.Errorf("restore session: %w", err)
	}

	opts := []editor.HandlerOption{
		editor.WithStore(b.store),
		editor.WithHelp(helpdoc.New(helpdoc.Docs(), helpdoc.WithData(helpdoc.Data{
			AppName:      "Newsletter",
			SupportEmail: cfg.SupportEmail,
		}))),
		editor.WithExportOptions(export.WithFrom(cfg.MailFrom), export.WithTo(cfg.MailTo)),
	}
	if cfg.Storage.Enabled() {
		st, err := storage.New(cfg.Storage)
		if err != nil {
			b.shutdown(ctx, log)
			return err
		}
		opts = append(opts, editor.WithStorage(st))
	} else {
		log.Info("object storage disabled, image upload and publishing are unavailable")
	}

	app := server.New(
		server.WithLogger(log),
		server.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Logging(),
			middlewares.Recover(),
			middlewares.CORS(middlewares.WithAllowOrigins(cfg.CORSOrigins...)),
		),
		server.WithErrorHandler(middlewares.ErrorHandler),
		server.WithHandlers(editor.NewHandler(session, opts...)),
		server.WithHealthChecks(b.checks),
	)

	runOpts := []server.RunOption{
		server.Address(cfg.Addr),
		server.ShutdownTimeout(cfg.ShutdownTimeout),
		// the last edit must reach the store before it is closed
		server.ShutdownHook(saver.Close),
	}
	for _, fn := range b.closers {
		runOpts = append(runOpts, server.ShutdownHook(fn))
	}

	log.Info("editor ready", slog.String("store", cfg.ProjectStore))
	return app.Run(ctx, runOpts...)
}

// backend is the project store with its health checks and shutdown hooks.
type backend struct {
	store   project.Store
	checks  health.Checks
	closers []func(context.Context) error
}

func (b backend) shutdown(ctx context.Context, log *slog.Logger) {
	for _, fn := range b.closers {
		if err := fn(ctx); err != nil {
			log.Error("close backend", slog.String("error", err.Error()))
		}
	}
}

func openBackend(ctx context.Context, cfg Config, log *slog.Logger) (backend, error) {
	switch cfg.ProjectStore {
	case storeMemory, "":
		return backend{store: project.NewMemoryStore(), checks: health.Checks{}}, nil

	case storeRedis:
		client, err := redisx.Open(ctx, cfg.Redis)
		if err != nil {
			return backend{}, err
		}
		return backend{
			store:   project.NewRedisStore(client, cfg.StorePrefix),
			checks:  health.Checks{"redis": redisx.Healthcheck(client)},
			closers: []func(context.Context) error{redisx.Shutdown(client)},
		}, nil

	case storePostgres:
		dbCfg := cfg.DB
		dbCfg.Logger = log
		pool, err := db.Connect(ctx, dbCfg)
		if err != nil {
			return backend{}, err
		}
		store := project.NewPostgresStore(pool)
		if err := store.Migrate(ctx, log); err != nil {
			pool.Close()
			return backend{}, err
		}
		return backend{
			store:   store,
			checks:  health.Checks{"postgres": db.Healthcheck(pool)},
			closers: []func(context.Context) error{db.Shutdown(pool)},
		}, nil
	}
	return backend{}, fmt.Errorf("%w: %q", ErrUnknownStore, cfg.ProjectStore)
}
