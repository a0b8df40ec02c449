package ports

import (
	"context"

	"github.com/bnema/cognisupport/internal/domain"
)

type TicketSeedSource interface {
	List(ctx context.Context) ([]domain.Ticket, error)
}
