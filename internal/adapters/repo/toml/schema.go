package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Tickets []ticketSchema `toml:"tickets"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported seed schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type ticketSchema struct {
	ID       int64  `toml:"id"`
	Title    string `toml:"title"`
	Category string `toml:"category"`
	Priority string `toml:"priority"`
	Status   string `toml:"status"`
}
