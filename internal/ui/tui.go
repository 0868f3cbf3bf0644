package ui

import (
	"context"
	"fmt"
	"strings"

	"fakenews-detector/internal/models"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth = 80
	maxWidth     = 100
)

// Analyzer performs one analysis round trip
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*models.AnalysisResult, error)
}

// analysisDoneMsg carries the outcome of an analysis back into Update
type analysisDoneMsg struct {
	result *models.AnalysisResult
	err    error
}

type keyMap struct {
	Analyze key.Binding
	Clear   key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Analyze: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "analyze")),
		Clear:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Analyze, k.Clear, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Model is the single-screen detector form
type Model struct {
	ctx      context.Context
	analyzer Analyzer
	backend  string

	state State

	textarea   textarea.Model
	spinner    spinner.Model
	confidence progress.Model
	score      progress.Model
	help       help.Model
	keys       keyMap
	styles     Styles
	markdown   *glamour.TermRenderer

	width int
}

// NewModel creates the form. backend is shown in the header so users know where requests go.
func NewModel(ctx context.Context, analyzer Analyzer, backend string) Model {
	ta := textarea.New()
	ta.Placeholder = "Paste your news article, headline, or social media post here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(defaultWidth - 4)
	ta.SetHeight(8)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	styles := DefaultStyles()
	sp.Style = styles.Busy

	m := Model{
		ctx:        ctx,
		analyzer:   analyzer,
		backend:    backend,
		textarea:   ta,
		spinner:    sp,
		confidence: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(defaultWidth-24)),
		score:      progress.New(progress.WithGradient("#4ADE80", "#F87171"), progress.WithoutPercentage(), progress.WithWidth(defaultWidth-24)),
		help:       help.New(),
		keys:       defaultKeyMap(),
		styles:     styles,
		markdown:   newMarkdownRenderer(defaultWidth - 8),
		width:      defaultWidth,
	}
	m.syncKeys()
	return m
}

// State returns a copy of the form state
func (m Model) State() State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Analyze):
			return m.startAnalysis()
		case key.Matches(msg, m.keys.Clear):
			m.state.Clear()
			m.textarea.Reset()
			m.syncKeys()
			return m, nil
		}

		// The input is read-only while a request is running
		if m.state.InFlight() {
			return m, nil
		}
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		m.state.SetText(m.textarea.Value())
		m.syncKeys()
		return m, cmd

	case analysisDoneMsg:
		m.state.Complete(msg.result, msg.err)
		m.syncKeys()
		return m, nil

	case spinner.TickMsg:
		if !m.state.InFlight() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// startAnalysis is a no-op when the state machine refuses to begin
func (m Model) startAnalysis() (tea.Model, tea.Cmd) {
	if !m.state.BeginAnalysis() {
		return m, nil
	}
	m.syncKeys()

	return m, tea.Batch(m.spinner.Tick, analyzeCmd(m.ctx, m.analyzer, m.state.Text))
}

func analyzeCmd(ctx context.Context, analyzer Analyzer, text string) tea.Cmd {
	return func() tea.Msg {
		result, err := analyzer.Analyze(ctx, text)
		return analysisDoneMsg{result: result, err: err}
	}
}

func (m *Model) syncKeys() {
	m.keys.Analyze.SetEnabled(m.state.CanAnalyze())
}

func (m *Model) resize(width int) {
	if width > maxWidth {
		width = maxWidth
	}
	if width < 40 {
		width = 40
	}
	m.width = width
	m.textarea.SetWidth(width - 4)
	m.confidence.Width = width - 24
	m.score.Width = width - 24
	m.help.Width = width
	m.markdown = newMarkdownRenderer(width - 8)
}

func (m Model) View() string {
	var sections []string

	sections = append(sections,
		m.styles.Title.Render("Fake News Detector"),
		m.styles.Subtitle.Render("AI-Powered Truth Verification System"),
		m.styles.Muted.Render("Backend: "+m.backend),
		"",
		m.styles.Label.Render("Enter News Article or Headline"),
		m.textarea.View(),
		m.styles.Muted.Render(fmt.Sprintf("%d characters", len([]rune(m.state.Text)))),
		"",
	)

	switch m.state.Phase {
	case PhaseAnalyzing:
		sections = append(sections, m.styles.Busy.Render(m.spinner.View()+" Analyzing with AI..."))
	case PhaseFailed:
		sections = append(sections, m.styles.ErrorBox.Render(m.state.Err))
	case PhaseSucceeded:
		if m.state.Result != nil {
			sections = append(sections, m.resultView(m.state.Result))
		}
	}

	sections = append(sections, "", m.help.View(m.keys))

	return Frame.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) resultView(result *models.AnalysisResult) string {
	var sb strings.Builder

	heading := m.styles.Credible.Render(VerdictHeading(false))
	if result.IsFake {
		heading = m.styles.Fake.Render(VerdictHeading(true))
	}
	sb.WriteString(heading + "\n")
	sb.WriteString(m.styles.Muted.Render("AI Analysis Complete") + "\n\n")

	sb.WriteString(fmt.Sprintf("%-18s %s %s\n",
		m.styles.MeterLabel.Render("Confidence Level"),
		m.confidence.ViewAs(result.Confidence.Fraction()),
		FormatConfidence(result.Confidence)))
	sb.WriteString(fmt.Sprintf("%-18s %s %s\n",
		m.styles.MeterLabel.Render("Fake News Score"),
		m.score.ViewAs(result.Score.Fraction()),
		FormatScore(result.Score)))

	if len(result.Reasons) > 0 {
		sb.WriteString("\n" + m.styles.Section.Render("Analysis Details") + "\n")
		for i, reason := range result.Reasons {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, reason))
		}
	}

	if result.Summary != "" {
		summary := m.styles.Label.Render("AI Summary") + "\n" + renderMarkdown(m.markdown, result.Summary)
		sb.WriteString("\n" + m.styles.Panel.Render(summary) + "\n")
	}

	sb.WriteString("\n" + m.styles.Note.Render(Disclaimer))

	return sb.String()
}
