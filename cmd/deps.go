package cmd

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/abhisek/bigfive/internal/config"
	"github.com/abhisek/bigfive/internal/endpoint"
	"github.com/abhisek/bigfive/internal/progress"
	"github.com/abhisek/bigfive/internal/questions"
	"github.com/abhisek/bigfive/internal/store"
	"github.com/abhisek/bigfive/internal/store/redisstore"
)

// resolveDBPath returns the configured database path, then BIGFIVE_DB,
// then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if p := cfg.Store.DBPath; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openProgress opens the configured progress backend. The returned func
// releases it.
func openProgress(ctx context.Context, cfg config.Config, log *zap.Logger) (*progress.Repository, func() error, error) {
	var (
		kv      progress.KV
		closeFn = func() error { return nil }
	)

	switch cfg.Store.Backend {
	case config.StoreMemory:
		kv = progress.NewMemoryKV()

	case config.StoreRedis:
		client, err := redisstore.Dial(ctx, cfg.Store.Redis.Addr, cfg.Store.Redis.Password, cfg.Store.Redis.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("open redis store: %w", err)
		}
		kv = redisstore.New(client, cfg.Store.Redis.Prefix, config.Duration(cfg.Store.Redis.TTL, 0))
		closeFn = client.Close

	default:
		path, err := resolveDBPath(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(path, store.WithLogger(log))
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		kv = st.KV()
		closeFn = st.Close
	}

	log.Debug("progress store opened", zap.String("backend", cfg.Store.Backend))
	return progress.NewRepository(kv, log), closeFn, nil
}

// loadBank loads the configured question bank, or the embedded one.
func loadBank(ctx context.Context, cfg config.Config) (*questions.Bank, error) {
	var src questions.Source = questions.EmbeddedSource
	if cfg.Survey.BankFile != "" {
		src = questions.FileSource{Path: cfg.Survey.BankFile}
	}
	bank, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return bank, nil
}

// newEndpointClient builds the results service client.
func newEndpointClient(cfg config.Config, log *zap.Logger) (*endpoint.Client, error) {
	hc := &http.Client{Timeout: config.Duration(cfg.Endpoint.Timeout, endpoint.DefaultTimeout)}
	client, err := endpoint.New(cfg.Endpoint.URL, endpoint.WithHTTPClient(hc), endpoint.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("results endpoint: %w", err)
	}
	return client, nil
}
