package intake

import (
	"sync"

	"github.com/bnema/cognisupport/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

type titleSettledMsg struct {
	value string
}

type descriptionSettledMsg struct {
	value string
}

type analysisResultMsg struct {
	result application.AnalysisResult
}

// sender forwards messages from timer goroutines into the running program.
// Messages posted before Bind are dropped.
type sender struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (s *sender) bind(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send = send
}

func (s *sender) post(msg tea.Msg) {
	s.mu.Lock()
	send := s.send
	s.mu.Unlock()

	if send != nil {
		send(msg)
	}
}
