// Package tui provides a Bubble Tea terminal user interface for the
// 3GPP spec downloader.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/3gpp-downloader/internal/config"
	"github.com/handiism/3gpp-downloader/internal/download"
	"github.com/handiism/3gpp-downloader/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateLoading
	StateSelect
	StateDownloading
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   download.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	err       error

	// Listing state
	items  []model.SpecItem
	cursor int

	// Download context
	ctx    context.Context
	cancel context.CancelFunc

	// Download manager reference
	manager *download.Manager

	// progressCh carries manager events into the Bubble Tea loop.
	progressCh chan download.ProgressEvent

	// Download progress
	totalFiles      int32
	downloadedFiles int32
	totalBytes      int64
	receivedBytes   int64
	destPath        string

	// Options
	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "23.501"
	ti.Focus()
	ti.CharLimit = 16
	ti.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:      StateInput,
		textInput:  ti,
		spinner:    sp,
		progress:   prog,
		settings:   settings,
		logs:       make([]LogEntry, 0),
		ctx:        ctx,
		cancel:     cancel,
		progressCh: make(chan download.ProgressEvent, 64),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg wraps a manager progress event.
	ProgressMsg struct {
		Event download.ProgressEvent
	}

	// ListDoneMsg is sent when the listing fetch completes.
	ListDoneMsg struct {
		Items   []model.SpecItem
		Manager *download.Manager
		Err     error
	}

	// DownloadDoneMsg is sent when the selected download(s) complete.
	DownloadDoneMsg struct {
		Dest     string
		Received int64
		Files    int32
		Err      error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateSelect {
				m.reset()
				return m, nil
			}
			if m.state == StateLoading || m.state == StateDownloading {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				m.state = StateLoading
				return m, tea.Batch(m.fetchListing(), m.spinner.Tick)
			}
			if m.state == StateSelect && len(m.items) > 0 {
				item := m.items[m.cursor]
				m.state = StateDownloading
				return m, tea.Batch(m.downloadItem(item), m.tickProgress())
			}

		case "up", "k":
			if m.state == StateSelect && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.state == StateSelect && m.cursor < len(m.items)-1 {
				m.cursor++
			}

		case "a":
			if m.state == StateSelect && len(m.items) > 0 {
				m.state = StateDownloading
				return m, tea.Batch(m.downloadAll(), m.tickProgress())
			}

		case "v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.reset()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		if msg.Event.Level != download.LevelVerbose || m.verbose {
			m.logs = append(m.logs, LogEntry{
				Message: msg.Event.Message,
				Level:   msg.Event.Level,
			})
			// Keep only the last 10 logs
			if len(m.logs) > 10 {
				m.logs = m.logs[len(m.logs)-10:]
			}
		}
		cmds = append(cmds, m.waitForProgress())

	case ListDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else if len(msg.Items) == 0 {
			m.state = StateError
			m.err = fmt.Errorf("no matching spec archives")
		} else {
			m.items = msg.Items
			m.manager = msg.Manager
			m.cursor = 0
			m.state = StateSelect
		}

	case DownloadDoneMsg:
		m.receivedBytes = msg.Received
		m.downloadedFiles = msg.Files
		m.destPath = msg.Dest
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		// Update progress from manager
		if m.manager != nil && m.state == StateDownloading {
			received, total, files, totalFiles := m.manager.GetProgress()
			m.receivedBytes = received
			m.totalBytes = total
			m.downloadedFiles = files
			m.totalFiles = totalFiles

			var percent float64
			if total > 0 {
				percent = float64(received) / float64(total)
			} else if totalFiles > 0 {
				percent = float64(files) / float64(totalFiles)
			}
			progressCmd := m.progress.SetPercent(percent)
			cmds = append(cmds, progressCmd, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) reset() {
	m.state = StateInput
	m.logs = nil
	m.items = nil
	m.cursor = 0
	m.err = nil
	m.downloadedFiles = 0
	m.totalFiles = 0
	m.receivedBytes = 0
	m.totalBytes = 0
	m.destPath = ""
	m.manager = nil
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.textInput.SetValue("")
	m.textInput.Focus()
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// waitForProgress blocks on the next manager event and feeds it back
// into the update loop.
func (m Model) waitForProgress() tea.Cmd {
	ch := m.progressCh
	return func() tea.Msg {
		return ProgressMsg{Event: <-ch}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("3GPP Spec Downloader"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Fetch technical specification archives from the 3GPP FTP site"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateSelect:
		b.WriteString(m.viewSelect())
	case StateDownloading:
		b.WriteString(m.viewDownloading())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter spec number (e.g. 23.501):"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[x]"
	}
	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Download path: %s", m.settings.DownloadsPath)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewLoading() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Fetching archive listing..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewSelect() string {
	var b strings.Builder

	b.WriteString(successStyle.Render(fmt.Sprintf("Found %d version(s):", len(m.items))))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("%-10s %s", item.Version, item.Date.Format("2006-01-02 15:04"))
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewDownloading() string {
	var b strings.Builder

	var percent float64
	if m.totalBytes > 0 {
		percent = float64(m.receivedBytes) / float64(m.totalBytes)
	} else if m.totalFiles > 0 {
		percent = float64(m.downloadedFiles) / float64(m.totalFiles)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Files: %d/%d | Downloaded: %.2f MB",
		m.downloadedFiles,
		m.totalFiles,
		float64(m.receivedBytes)/1024/1024,
	)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	dest := m.destPath
	if dest == "" {
		dest = m.settings.DownloadsPath
	}

	return boxStyle.Render(fmt.Sprintf(
		"Download complete\n\n"+
			"Files: %d\n"+
			"Size: %.2f MB\n"+
			"Saved to: %s",
		m.downloadedFiles,
		float64(m.receivedBytes)/1024/1024,
		dest,
	))
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "-"
		switch log.Level {
		case download.LevelError:
			style = errorStyle
			prefix = "x"
		case download.LevelWarning:
			style = warningStyle
			prefix = "!"
		case download.LevelSuccess:
			style = successStyle
			prefix = "+"
		case download.LevelInfo:
			style = infoStyle
			prefix = ">"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: fetch listing * v: verbose * esc: quit"
	case StateLoading, StateDownloading:
		return "esc: cancel"
	case StateSelect:
		return "up/down: select * enter: download * a: download all * esc: back"
	case StateComplete, StateError:
		return "r: new download * q: quit"
	}
	return ""
}

// fetchListing parses the spec number and fetches the listing.
func (m *Model) fetchListing() tea.Cmd {
	ch := m.progressCh
	fetch := func() tea.Msg {
		// Byte counters are polled via TickMsg; the callback only
		// forwards log-worthy events, dropping them when the UI is
		// behind rather than blocking a download.
		manager := download.NewManager(m.settings, func(event download.ProgressEvent) {
			select {
			case ch <- event:
			default:
			}
		})

		if err := manager.Initialize(m.ctx, m.textInput.Value(), nil, nil); err != nil {
			return ListDoneMsg{Err: err}
		}

		return ListDoneMsg{
			Items:   manager.Items(),
			Manager: manager,
		}
	}
	return tea.Batch(fetch, m.waitForProgress())
}

// downloadItem downloads one selected archive in the background.
func (m *Model) downloadItem(item model.SpecItem) tea.Cmd {
	return func() tea.Msg {
		dest, err := m.manager.DownloadItem(m.ctx, item)
		received, _, files, _ := m.manager.GetProgress()

		return DownloadDoneMsg{
			Dest:     dest,
			Received: received,
			Files:    files,
			Err:      err,
		}
	}
}

// downloadAll downloads every listed archive in the background.
func (m *Model) downloadAll() tea.Cmd {
	return func() tea.Msg {
		err := m.manager.DownloadAll(m.ctx)
		received, _, files, _ := m.manager.GetProgress()

		return DownloadDoneMsg{
			Dest:     m.settings.DownloadsPath,
			Received: received,
			Files:    files,
			Err:      err,
		}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
