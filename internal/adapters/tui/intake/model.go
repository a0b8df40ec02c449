// Package intake is the interactive ticket intake form. Keystrokes feed two
// debouncers; settled values run through the session's trigger gate and
// the resulting analysis calls run as commands off the update loop.
package intake

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/bnema/cognisupport/internal/application"
	"github.com/bnema/cognisupport/internal/debounce"
	"github.com/bnema/cognisupport/internal/domain"
	"github.com/bnema/cognisupport/internal/ports"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultDelay = 500 * time.Millisecond

	titleCharLimit = 120
	minFieldWidth  = 20
)

type field int

const (
	fieldTitle field = iota
	fieldDescription
)

type Config struct {
	Session *application.Session
	Clock   ports.Clock
	Delay   time.Duration
	// Context bounds every analysis call started by the form.
	Context context.Context
	Logger  *slog.Logger
}

type Model struct {
	session *application.Session
	ctx     context.Context
	logger  *slog.Logger

	title       textinput.Model
	description textarea.Model
	spinner     spinner.Model
	help        help.Model
	keys        keyMap
	focus       field

	titleDebounce       *debounce.Value[string]
	descriptionDebounce *debounce.Value[string]
	sender              *sender

	width  int
	notice string
	styles styles
}

func New(cfg Config) Model {
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	delay := cfg.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}

	out := &sender{}

	title := textinput.New()
	title.Placeholder = "Brief summary of the issue"
	title.CharLimit = titleCharLimit
	title.Prompt = ""
	title.Focus()

	description := textarea.New()
	description.Placeholder = "Describe the problem in detail..."
	description.ShowLineNumbers = false
	description.SetHeight(4)
	description.Blur()

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return Model{
		session:     cfg.Session,
		ctx:         ctx,
		logger:      logger,
		title:       title,
		description: description,
		spinner:     s,
		help:        help.New(),
		keys:        defaultKeyMap,
		focus:       fieldTitle,
		titleDebounce: debounce.New(cfg.Clock, delay, "", func(value string) {
			out.post(titleSettledMsg{value: value})
		}),
		descriptionDebounce: debounce.New(cfg.Clock, delay, "", func(value string) {
			out.post(descriptionSettledMsg{value: value})
		}),
		sender: out,
		styles: newStyles(),
	}
}

// Bind connects the debouncers to a running program, usually tea.Program.Send.
func (m Model) Bind(send func(tea.Msg)) {
	m.sender.bind(send)
}

// Close stops both debouncers. Call it once the program has exited; no
// settle message is posted after it returns.
func (m Model) Close() {
	m.titleDebounce.Stop()
	m.descriptionDebounce.Stop()
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		width := max(msg.Width-4, minFieldWidth)
		m.title.Width = width
		m.description.SetWidth(width)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	// A settle queued before a submit carries the old draft; once the
	// debouncer has been reset its output no longer matches.
	case titleSettledMsg:
		if msg.value != m.titleDebounce.Output() {
			return m, nil
		}
		request, ok := m.session.SettleTitle(msg.value)
		return m, m.analyze(request, ok)

	case descriptionSettledMsg:
		if msg.value != m.descriptionDebounce.Output() {
			return m, nil
		}
		request, ok := m.session.SettleDescription(msg.value)
		return m, m.analyze(request, ok)

	case analysisResultMsg:
		m.session.Resolve(msg.result)
		return m, nil

	case spinner.TickMsg:
		if m.session.State() != domain.LifecycleAnalyzing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField):
		return m.toggleFocus()
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused input and pushes any edit into
// the session and the matching debouncer.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case fieldTitle:
		before := m.title.Value()
		m.title, cmd = m.title.Update(msg)
		if value := m.title.Value(); value != before {
			m.session.EditTitle(value)
			m.titleDebounce.Set(value)
			m.notice = ""
		}
	case fieldDescription:
		before := m.description.Value()
		m.description, cmd = m.description.Update(msg)
		if value := m.description.Value(); value != before {
			m.session.EditDescription(value)
			m.descriptionDebounce.Set(value)
			m.notice = ""
		}
	}

	return m, cmd
}

func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == fieldTitle {
		m.focus = fieldDescription
		m.title.Blur()
		return m, m.description.Focus()
	}

	m.focus = fieldTitle
	m.description.Blur()
	return m, m.title.Focus()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	ticket, ok := m.session.SubmitTicket()
	if !ok {
		return m, nil
	}

	m.title.Reset()
	m.description.Reset()
	m.titleDebounce.Reset("")
	m.descriptionDebounce.Reset("")
	m.notice = fmt.Sprintf("Ticket #%d created.", ticket.ID)
	m.logger.Info("ticket submitted",
		slog.Int64("id", int64(ticket.ID)),
		slog.String("category", ticket.Category),
		slog.String("priority", string(ticket.Priority)),
	)

	if m.focus == fieldTitle {
		return m, nil
	}
	return m.toggleFocus()
}

func (m Model) analyze(request domain.InsightRequest, ok bool) tea.Cmd {
	if !ok {
		return nil
	}

	call := m.session.Call(request)
	ctx := m.ctx

	return tea.Batch(
		func() tea.Msg {
			return analysisResultMsg{result: call(ctx)}
		},
		m.spinner.Tick,
	)
}
