package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/bnema/cognisupport/internal/adapters/analysis/cache"
	"github.com/bnema/cognisupport/internal/adapters/analysis/httpclient"
	ticketsadapter "github.com/bnema/cognisupport/internal/adapters/render/tickets"
	tomlrepo "github.com/bnema/cognisupport/internal/adapters/repo/toml"
	"github.com/bnema/cognisupport/internal/config"
	"github.com/bnema/cognisupport/internal/domain"
	"github.com/bnema/cognisupport/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	config        config.Config
	analyzer      ports.Analyzer
	seedSource    ports.TicketSeedSource
	tableRenderer func([]domain.Ticket, ticketsadapter.RenderOptions) string
	clock         ports.Clock
}

func wireApp() (*app, error) {
	store := viper.New()
	cfg, err := config.Load(store)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	seedSource, err := tomlrepo.NewSeedSource(store)
	if err != nil {
		return nil, fmt.Errorf("wire ticket seed source: %w", err)
	}

	var analyzer ports.Analyzer = httpclient.Client{
		BaseURL:        cfg.Analysis.BaseURL,
		Path:           cfg.Analysis.Path,
		HTTPClient:     http.DefaultClient,
		RequestTimeout: cfg.Analysis.Timeout,
	}
	if cfg.Analysis.CacheSize > 0 {
		cached, err := cache.New(analyzer, cfg.Analysis.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("wire analysis cache: %w", err)
		}
		analyzer = cached
	}

	return &app{
		config:        cfg,
		analyzer:      analyzer,
		seedSource:    seedSource,
		tableRenderer: ticketsadapter.RenderTable,
		clock:         ports.SystemClock{},
	}, nil
}

// newLogger builds the command logger. fallback receives records when no
// log file is configured.
func (a *app) newLogger(fallback io.Writer) (*slog.Logger, func() error, error) {
	logger, closeFn, err := config.NewLogger(a.config.Log, fallback)
	if err != nil {
		return nil, nil, fmt.Errorf("configure logging: %w", err)
	}
	return logger, closeFn, nil
}
