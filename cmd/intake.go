package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/bnema/cognisupport/internal/adapters/tui/intake"
	"github.com/bnema/cognisupport/internal/application"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newIntakeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "intake",
		Short: "Open the interactive ticket intake form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runIntake(cmd, app)
		},
	}
}

func runIntake(cmd *cobra.Command, app *app) error {
	// The form owns the terminal, so logs only go to a configured file.
	logger, closeLog, err := app.newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	seed, err := app.seedSource.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("load seed tickets: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	session := application.NewSession(app.analyzer, seed, logger)
	model := intake.New(intake.Config{
		Session: session,
		Clock:   app.clock,
		Delay:   app.config.Debounce.Delay,
		Context: ctx,
		Logger:  logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.Bind(p.Send)
	defer model.Close()

	logger.Info("intake started",
		slog.Int("tickets", len(seed)),
		slog.String("analysis_url", app.config.Analysis.BaseURL),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run intake form: %w", err)
	}

	logger.Info("intake closed", slog.Int("tickets", len(session.Tickets())))
	return nil
}
