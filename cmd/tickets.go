package cmd

import (
	"encoding/json"
	"fmt"

	ticketsadapter "github.com/bnema/cognisupport/internal/adapters/render/tickets"
	"github.com/bnema/cognisupport/internal/domain"
	"github.com/spf13/cobra"
)

type ticketJSON struct {
	ID       domain.TicketID `json:"id"`
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Priority domain.Priority `json:"priority"`
	Status   domain.Status   `json:"status"`
}

func newTicketsCmd(app *app) *cobra.Command {
	var asJSON bool
	var width int

	cmd := &cobra.Command{
		Use:   "tickets",
		Short: "List the tickets an intake session starts with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tickets, err := app.seedSource.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("load tickets: %w", err)
			}
			return writeTicketsOutput(cmd, app, tickets, ticketsadapter.RenderOptions{Width: width}, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().IntVar(&width, "width", 0, "Fit the table to this many columns (default layout when 0)")

	return cmd
}

func writeTicketsOutput(cmd *cobra.Command, app *app, tickets []domain.Ticket, opts ticketsadapter.RenderOptions, asJSON bool) error {
	if asJSON {
		payload := make([]ticketJSON, 0, len(tickets))
		for _, ticket := range tickets {
			payload = append(payload, ticketJSON(ticket))
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), app.tableRenderer(tickets, opts))
	return err
}
