package toml

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/cognisupport/internal/domain"
	"github.com/bnema/cognisupport/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const seedPathKey = "tickets.seed_path"

// SeedSource reads the tickets an intake session starts with. Without a
// configured seed file it serves DefaultSeed.
type SeedSource struct {
	seedPath string
}

var _ ports.TicketSeedSource = (*SeedSource)(nil)

func NewSeedSource(cfg *viper.Viper) (*SeedSource, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	seedPath := cfg.GetString(seedPathKey)
	if seedPath == "" {
		return &SeedSource{}, nil
	}

	absPath, err := filepath.Abs(seedPath)
	if err != nil {
		return nil, fmt.Errorf("resolve seed path: %w", err)
	}

	return &SeedSource{seedPath: filepath.Clean(absPath)}, nil
}

func (s *SeedSource) Path() string {
	return s.seedPath
}

func (s *SeedSource) List(ctx context.Context) ([]domain.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.seedPath == "" {
		return DefaultSeed(), nil
	}

	file, err := s.readSchema()
	if err != nil {
		return nil, err
	}

	tickets := make([]domain.Ticket, 0, len(file.Tickets))
	seen := make(map[domain.TicketID]struct{}, len(file.Tickets))
	for i, entry := range file.Tickets {
		ticket, err := fromSchema(entry)
		if err != nil {
			return nil, fmt.Errorf("seed ticket %d: %w", i, err)
		}
		if _, ok := seen[ticket.ID]; ok {
			return nil, fmt.Errorf("seed ticket %d: duplicate id %d", i, ticket.ID)
		}
		seen[ticket.ID] = struct{}{}
		tickets = append(tickets, ticket)
	}

	return tickets, nil
}

func (s *SeedSource) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(s.seedPath)
	if err != nil {
		return fileSchema{}, fmt.Errorf("read seed file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode seed file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

// DefaultSeed is the built-in ticket collection, newest first.
func DefaultSeed() []domain.Ticket {
	return []domain.Ticket{
		{ID: 103, Title: "Printer jamming on 3rd floor", Category: "Hardware", Priority: domain.PriorityLow, Status: domain.StatusNew},
		{ID: 102, Title: "Need access to Jira", Category: "Account Access", Priority: domain.PriorityMedium, Status: domain.StatusResolved},
		{ID: 101, Title: "Laptop won't turn on", Category: "Hardware", Priority: domain.PriorityHigh, Status: domain.StatusOpen},
	}
}

func fromSchema(entry ticketSchema) (domain.Ticket, error) {
	priority, err := domain.ParsePriority(entry.Priority)
	if err != nil {
		return domain.Ticket{}, err
	}

	status, err := domain.ParseStatus(entry.Status)
	if err != nil {
		return domain.Ticket{}, err
	}

	category := entry.Category
	if category == "" {
		category = domain.UnassignedCategory
	}

	ticket := domain.Ticket{
		ID:       domain.TicketID(entry.ID),
		Title:    entry.Title,
		Category: category,
		Priority: priority,
		Status:   status,
	}
	if err := ticket.Validate(); err != nil {
		return domain.Ticket{}, err
	}

	return ticket, nil
}
