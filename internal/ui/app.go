// Package ui implements the interactive terminal interface: a state machine
// that discovers files, streams per-file validation progress, and presents
// the outcome in a filterable list.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pmoretti/linksift/internal/config"
	"github.com/pmoretti/linksift/internal/helpers"
)

type appState int

const (
	stateScanning   appState = iota // Finding candidate files
	stateProcessing                 // Running files through their drivers
	stateResults                    // Showing results (list view)
)

// filterType selects which result set the list shows.
type filterType int

const (
	filterInvalid filterType = iota
	filterValid
)

func (f filterType) String() string {
	if f == filterValid {
		return "Valid URLs"
	}
	return "Invalid URLs"
}

func (f filterType) Toggle() filterType {
	if f == filterValid {
		return filterInvalid
	}
	return filterValid
}

// Model is the main application model.
type Model struct {
	// State
	state    appState
	quitting bool
	err      error

	// Data
	files    []string
	outcomes []FileOutcome

	// Progress tracking
	processed    int
	currentFile  string
	fileFraction float64
	validCount   int
	invalidCount int
	skipped      int

	// Filter
	filter filterType

	// Components
	spinner  spinner.Model
	progress progress.Model
	list     list.Model
	help     help.Model
	keys     KeyMap

	// Pipeline state (for async processing). Held behind a pointer so the
	// command goroutines and every copy of the value-receiver model share
	// the same channel and cancel handle.
	pipeline *PipelineState

	// UI state
	width    int
	height   int
	showHelp bool

	// Config
	path string
	cfg  *config.Config
}

// New creates and returns a new Model for the given path.
func New(path string, cfg *config.Config) Model {
	if path == "" {
		path = "."
	}
	if cfg == nil {
		cfg = config.Default()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle()

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	delegate.Styles.SelectedTitle = SelectedStyle
	delegate.Styles.SelectedDesc = StatusStyle

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "URL Validation Results"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false) // We use our own help
	l.Styles.Title = TitleStyle

	return Model{
		state:    stateScanning,
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient()),
		list:     l,
		help:     help.New(),
		keys:     DefaultKeyMap(),
		filter:   filterInvalid,
		path:     path,
		cfg:      cfg,
		pipeline: &PipelineState{},
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, ScanFilesCmd(m.path, m.cfg))
}

// Update handles messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(msg.Width-10, 60)
		// Reserve space for header, summary, and detail panel
		listHeight := max(msg.Height-14, 5)
		m.list.SetSize(msg.Width, listHeight)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case FilesFoundMsg:
		return m.handleFilesFound(msg)

	case ProgressMsg:
		m.currentFile = msg.Path
		m.fileFraction = msg.Fraction
		return m, WaitForEventCmd(m.pipeline)

	case FileProcessedMsg:
		return m.handleFileProcessed(msg)

	case AllDoneMsg:
		return m.handleAllDone()
	}

	// Pass other messages to list if in results state
	if m.state == stateResults {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys that work in any state
	if key.Matches(msg, m.keys.Quit) {
		if m.pipeline.CancelFunc != nil {
			m.pipeline.CancelFunc()
		}
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return m, nil
	}

	// State-specific keys
	if m.state == stateResults {
		if key.Matches(msg, m.keys.Filter) {
			m.filter = m.filter.Toggle()
			m.updateListItems()
			return m, nil
		}

		// Pass navigation keys to list
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleFilesFound(msg FilesFoundMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.err = msg.Err
		m.state = stateResults
		return m, nil
	}
	m.files = msg.Files
	if len(m.files) == 0 {
		m.state = stateResults
		return m, nil
	}
	m.state = stateProcessing
	return m, StartProcessingCmd(m.files, m.cfg, m.pipeline)
}

func (m Model) handleFileProcessed(msg FileProcessedMsg) (tea.Model, tea.Cmd) {
	m.outcomes = append(m.outcomes, msg.Outcome)
	m.processed++
	m.fileFraction = 0

	switch {
	case msg.Outcome.Err != nil:
		m.skipped++
	default:
		m.validCount += msg.Outcome.Results.ValidCount()
		m.invalidCount += msg.Outcome.Results.InvalidCount()
	}

	return m, WaitForEventCmd(m.pipeline)
}

func (m Model) handleAllDone() (tea.Model, tea.Cmd) {
	m.state = stateResults
	m.pipeline.Events = nil
	m.updateListItems()
	return m, nil
}

// updateListItems fills the list for the active filter.
func (m *Model) updateListItems() {
	filtered := OutcomesToItems(m.outcomes, m.filter == filterValid)
	items := make([]list.Item, len(filtered))
	for i, it := range filtered {
		items[i] = it
	}
	m.list.SetItems(items)
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var s string

	s += TitleStyle.Render("Linksift - URL Validator")
	s += "\n\n"

	if m.err != nil {
		s += ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err))
		s += "\n"
		s += HelpStyle.Render("Press q to quit")
		return s
	}

	switch m.state {
	case stateScanning:
		s += m.spinner.View() + " Scanning for files..."

	case stateProcessing:
		s += m.renderProcessing()

	case stateResults:
		s += m.renderResults()
	}

	if m.showHelp {
		s += "\n\n" + m.help.View(m.keys)
	} else {
		s += "\n\n" + m.renderShortHelp()
	}

	return s
}

func (m Model) renderProcessing() string {
	var s string

	s += m.spinner.View() + fmt.Sprintf(" Processing files... %d/%d", m.processed, len(m.files))
	if m.currentFile != "" {
		s += "\n\n  " + MutedStyle.Render(helpers.TruncateText(m.currentFile, 60))
		s += "\n  " + m.progress.ViewAs(m.fileFraction)
	}
	s += "\n\n"

	// Live counts
	s += fmt.Sprintf("  %s  %s",
		SuccessStyle.Render(fmt.Sprintf("✓ %d valid", m.validCount)),
		ErrorStyle.Render(fmt.Sprintf("✗ %d invalid", m.invalidCount)))
	if m.skipped > 0 {
		s += "  " + MutedStyle.Render(fmt.Sprintf("- %d skipped", m.skipped))
	}

	return s
}

func (m Model) renderResults() string {
	var s string

	s += fmt.Sprintf("Processed %d of %d %s", m.processed, len(m.files),
		helpers.Pluralize(len(m.files), "file", "files"))
	s += "\n\n"

	s += fmt.Sprintf("%s | %s",
		SuccessStyle.Render(fmt.Sprintf("✓ %d valid", m.validCount)),
		ErrorStyle.Render(fmt.Sprintf("✗ %d invalid", m.invalidCount)))
	if m.skipped > 0 {
		s += " | " + MutedStyle.Render(fmt.Sprintf("- %d skipped", m.skipped))
	}
	s += "\n\n"

	if len(m.files) == 0 {
		s += MutedStyle.Render("No supported files found.")
		return s
	}
	if m.validCount == 0 && m.invalidCount == 0 {
		s += MutedStyle.Render("No URLs found.")
		return s
	}

	s += fmt.Sprintf("Showing: %s\n\n", SelectedStyle.Render(m.filter.String()))
	s += m.list.View()

	// Detail panel for selected item
	if selected := m.list.SelectedItem(); selected != nil {
		if item, ok := selected.(URLItem); ok {
			s += "\n" + item.DetailView()
		}
	}

	return s
}

func (Model) renderShortHelp() string {
	return HelpStyle.Render("↑/↓ navigate • f valid/invalid • ? help • q quit")
}
