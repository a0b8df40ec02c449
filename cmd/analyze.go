package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	ticketsadapter "github.com/bnema/cognisupport/internal/adapters/render/tickets"
	"github.com/bnema/cognisupport/internal/application"
	"github.com/bnema/cognisupport/internal/domain"
	"github.com/spf13/cobra"
)

var errInputTooShort = errors.New("title must be longer than 3 characters or description longer than 5")

type insightJSON struct {
	Category   string          `json:"category"`
	Priority   domain.Priority `json:"priority"`
	Confidence string          `json:"confidence"`
	Team       string          `json:"team"`
}

func newAnalyzeCmd(app *app) *cobra.Command {
	var title string
	var description string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Classify a single ticket without opening the form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, app, title, description, asJSON)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Ticket title")
	cmd.Flags().StringVar(&description, "description", "", "Ticket description")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runAnalyze(cmd *cobra.Command, app *app, title, description string, asJSON bool) error {
	if !domain.Eligible(title, description) {
		return errInputTooShort
	}

	logger, closeLog, err := app.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	session := application.NewSession(app.analyzer, nil, logger)
	call := session.Call(session.SubmitAnalysis(title, description))

	var result application.AnalysisResult
	if asJSON {
		result = call(cmd.Context())
	} else {
		result, err = runAnalyzeSpinner(cmd.Context(), cmd.ErrOrStderr(), call)
		if err != nil {
			return err
		}
	}

	session.Resolve(result)
	if result.Err != nil {
		return result.Err
	}

	insight, _ := session.Insight()
	return writeInsightOutput(cmd, insight, asJSON)
}

func writeInsightOutput(cmd *cobra.Command, insight domain.Insight, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(insightJSON{
			Category:   insight.Category,
			Priority:   insight.Priority,
			Confidence: insight.Confidence,
			Team:       insight.RoutingTeam(),
		})
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), ticketsadapter.RenderInsight(insight))
	return err
}
