package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/cognisupport/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type analyzeDoneMsg struct {
	result application.AnalysisResult
}

// analyzeSpinnerModel keeps a spinner on screen until the single analysis
// call it was given comes back.
type analyzeSpinnerModel struct {
	spinner spinner.Model
	label   string
	call    tea.Cmd
	result  application.AnalysisResult
	done    bool
}

func newAnalyzeSpinnerModel(label string, call tea.Cmd) analyzeSpinnerModel {
	return analyzeSpinnerModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		label: label,
		call:  call,
	}
}

func (m analyzeSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.call)
}

func (m analyzeSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case analyzeDoneMsg:
		m.result = msg.result
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m analyzeSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return m.spinner.View() + " " + m.label
}

func runAnalyzeSpinner(
	ctx context.Context,
	output io.Writer,
	call func(context.Context) application.AnalysisResult,
) (application.AnalysisResult, error) {
	p := tea.NewProgram(
		newAnalyzeSpinnerModel("Analyzing ticket...", func() tea.Msg {
			return analyzeDoneMsg{result: call(ctx)}
		}),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return application.AnalysisResult{}, fmt.Errorf("run analysis spinner: %w", err)
	}

	final, ok := finalModel.(analyzeSpinnerModel)
	if !ok {
		return application.AnalysisResult{}, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return final.result, nil
}
