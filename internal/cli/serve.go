package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ComputerConnection/flowgrid/internal/server"
	"github.com/ComputerConnection/flowgrid/pkg/cache"
	"github.com/ComputerConnection/flowgrid/pkg/config"
	"github.com/ComputerConnection/flowgrid/pkg/pipeline"
	"github.com/ComputerConnection/flowgrid/pkg/store"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the flowgrid HTTP API server",
		Long: `Run the flowgrid HTTP API server.

The server exposes the layout pipeline and graph storage over JSON.
Backends for caching (file, redis, none) and storage (memory, mongo)
are selected in the config file; without one, the server runs with a
file cache and in-memory storage.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), configPath, addr)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to flowgrid.toml")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, configPath, addr string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	ch, err := c.newServerCache(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	st, err := c.newServerStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer func() { _ = st.Close(context.Background()) }()

	runner := pipeline.NewRunner(ch, nil, c.Logger)
	defer runner.Close()

	srv := server.New(runner, st, c.Logger)
	return srv.ListenAndServe(ctx, cfg.Server.Addr)
}

func (c *CLI) newServerCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch strings.ToLower(cfg.Backend) {
	case config.CacheBackendNone:
		return cache.NewNullCache(), nil
	case config.CacheBackendRedis:
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: cfg.Addr})
	default:
		return cache.NewFileCache(cfg.Dir)
	}
}

func (c *CLI) newServerStore(ctx context.Context, cfg config.StoreConfig) (store.GraphStore, error) {
	if strings.ToLower(cfg.Backend) == config.StoreBackendMongo {
		return store.NewMongoStore(ctx, cfg.URI, cfg.Database)
	}
	return store.NewMemoryStore(), nil
}
