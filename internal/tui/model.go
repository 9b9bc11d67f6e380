package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jackbridge/internal/app"
)

const rpcTimeout = 4 * time.Second

// Controller defines the subset of app.App behaviour the TUI needs.
type Controller interface {
	Status(context.Context, time.Duration) (app.DaemonStatus, error)
	ListBridges(context.Context, time.Duration) ([]app.Bridge, error)
	Reload() error
}

// Model represents the Bubble Tea state.
type Model struct {
	controller Controller

	list    list.Model
	bridges []app.Bridge

	daemonStatus app.DaemonStatus
	statusMsg    string

	err     error
	loading bool

	width  int
	height int

	lastUpdated time.Time
}

// New constructs a TUI model with default styles.
func New(ctrl Controller) *Model {
	delegate := list.NewDefaultDelegate()
	lst := list.New([]list.Item{}, delegate, 0, 0)
	lst.Title = "Bridges"
	lst.SetShowHelp(false)
	lst.SetFilteringEnabled(false)
	lst.DisableQuitKeybindings()

	return &Model{
		controller: ctrl,
		list:       lst,
		statusMsg:  "Checking daemon status…",
		loading:    true,
	}
}

// Run spins up the Bubble Tea program with sensible defaults.
func Run(ctrl Controller) error {
	m := New(ctrl)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(checkDaemonStatusCmd(m.controller), loadBridgesCmd(m.controller))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.height > 4 {
			m.list.SetSize(msg.Width, msg.Height-4)
		}

	case daemonStatusMsg:
		m.daemonStatus = msg.status
		if msg.status.Running {
			m.statusMsg = fmt.Sprintf("Daemon running (pid %d, %d/%d bridges). Press r to refresh, q to quit.",
				msg.status.PID, msg.status.Bridges, msg.status.MaxBridges)
		} else {
			m.statusMsg = "Daemon is not running."
			m.bridges = nil
			m.list.SetItems(nil)
		}

	case bridgesLoadedMsg:
		m.loading = false
		m.err = nil
		m.bridges = msg.bridges
		items := make([]list.Item, 0, len(msg.bridges))
		for _, b := range msg.bridges {
			items = append(items, bridgeItem{Bridge: b})
		}
		m.list.SetItems(items)
		m.lastUpdated = time.Now()

	case reloadedMsg:
		m.statusMsg = "Configuration reload requested."
		return m, tea.Batch(checkDaemonStatusCmd(m.controller), loadBridgesCmd(m.controller))

	case errMsg:
		m.loading = false
		m.err = msg.err

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, tea.Batch(checkDaemonStatusCmd(m.controller), loadBridgesCmd(m.controller))
		case "g":
			if m.daemonStatus.Running {
				m.statusMsg = "Reloading configuration…"
				return m, reloadCmd(m.controller)
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	statusStyle := lipgloss.NewStyle().Bold(true)
	if !m.daemonStatus.Running {
		statusStyle = statusStyle.Foreground(lipgloss.Color("203"))
	} else {
		statusStyle = statusStyle.Foreground(lipgloss.Color("42"))
	}
	b.WriteString(statusStyle.Render(m.statusMsg))
	b.WriteByte('\n')

	if m.loading {
		b.WriteString("Loading bridges…\n")
	} else if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteByte('\n')
	}

	if len(m.list.Items()) == 0 && !m.loading && m.err == nil && m.daemonStatus.Running {
		b.WriteString("No bridges running.\n")
	} else {
		b.WriteString(m.list.View())
		b.WriteByte('\n')
	}

	if current := m.currentBridge(); current != nil {
		detail := fmt.Sprintf(
			"pid=%d restarts=%d stopping=%t\nname=%s\ncmd=%s\nstarted=%s",
			current.PID,
			current.Restarts,
			current.Stopping,
			current.Name,
			strings.Join(current.Cmdline, " "),
			current.StartedAt.Format(time.RFC3339),
		)
		detailStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginBottom(1)
		b.WriteString(detailStyle.Render(detail))
		b.WriteByte('\n')
	}

	help := "Commands: q quit • r refresh • g reload config"
	if !m.lastUpdated.IsZero() {
		help += fmt.Sprintf(" • last update %s", m.lastUpdated.Format(time.Kitchen))
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

// bridgeItem adapts app.Bridge to the bubbles list item interface.
type bridgeItem struct {
	Bridge app.Bridge
}

func (b bridgeItem) Title() string {
	state := "running"
	if b.Bridge.Stopping {
		state = "stopping"
	}
	return fmt.Sprintf("[pid=%d] %s (%s)", b.Bridge.PID, b.Bridge.Name, state)
}

func (b bridgeItem) Description() string {
	return fmt.Sprintf("cmd=%s | restarts=%d", strings.Join(b.Bridge.Cmdline, " "), b.Bridge.Restarts)
}

func (b bridgeItem) FilterValue() string {
	return fmt.Sprintf("%d %s", b.Bridge.PID, b.Bridge.Name)
}

func (m *Model) currentBridge() *app.Bridge {
	if len(m.bridges) == 0 {
		return nil
	}
	idx := m.list.Index()
	if idx < 0 || idx >= len(m.bridges) {
		return nil
	}
	return &m.bridges[idx]
}

type daemonStatusMsg struct {
	status app.DaemonStatus
}

type bridgesLoadedMsg struct {
	bridges []app.Bridge
}

type reloadedMsg struct{}

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func checkDaemonStatusCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
		defer cancel()
		status, err := ctrl.Status(ctx, rpcTimeout)
		if err != nil {
			return errMsg{err}
		}
		return daemonStatusMsg{status: status}
	}
}

func loadBridgesCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
		defer cancel()
		bridges, err := ctrl.ListBridges(ctx, rpcTimeout)
		if err != nil {
			return errMsg{err}
		}
		return bridgesLoadedMsg{bridges: bridges}
	}
}

func reloadCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		if err := ctrl.Reload(); err != nil {
			return errMsg{err}
		}
		return reloadedMsg{}
	}
}
