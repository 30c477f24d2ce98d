package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/gogadget/internal/gadget"
)

//nolint:gochecknoglobals
var (
	// titleStyle defines the style for a panel's title.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	// borderStyle defines the style for a panel's borders.
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	// errorStyle defines the style for a failed tree load.
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87"))

	// helpStyle defines the style for the help panel's text.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// TreeLoader discovers the gadget tree from disk. The returned [gadget.State]
// is released by the caller.
type TreeLoader func() (*gadget.State, error)

// LogMsg is a regular string containing a log message. It is typed for
// identification as [tea.Msg] within a [tea.Program].
type LogMsg string

// TreeMsg is a [tea.Msg] containing a freshly rendered gadget tree.
type TreeMsg struct {
	t       time.Time
	content string
	digest  string
	err     error
}

// TeaModel is the principal [tea.Model] for the command-line user interface.
type TeaModel struct {
	width  int
	height int

	cancel context.CancelFunc
	loader TreeLoader

	uiHandler *Handler

	fullWidthWithBorders int

	tree         TreeMsg
	treeViewport viewport.Model
	logsViewport viewport.Model
	logs         []string

	ready bool
}

// NewTeaModel returns an initial new [TeaModel].
//
//nolint:mnd
func NewTeaModel(uiHandler *Handler, loader TreeLoader, cancel context.CancelFunc) TeaModel {
	return TeaModel{
		uiHandler:    uiHandler,
		loader:       loader,
		treeViewport: viewport.New(80, 20),
		logsViewport: viewport.New(80, 5),
		logs:         make([]string, 0, 100),
		cancel:       cancel,
		ready:        false,
	}
}

// Init initializes the model within a [tea.Program].
func (m TeaModel) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		loadTree(m.loader),
	)
}

// loadTree produces a [tea.Cmd] for later scheduling in a [tea.Program]. When
// executed, the tree is discovered from disk and a [TreeMsg] is returned.
func loadTree(loader TreeLoader) tea.Cmd {
	return func() tea.Msg {
		msg := TreeMsg{t: time.Now()}

		s, err := loader()
		if err != nil {
			msg.err = err

			return msg
		}
		defer s.Cleanup()

		msg.content = RenderTree(s)
		msg.digest = s.Digest()

		return msg
	}
}

// Update is the principal message handling method of the model.
// It sets the internal state of the model, for later rendering.
//
//nolint:mnd,ireturn
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()

			return m, tea.Quit
		case "q":
			return m, tea.Quit
		case "r":
			cmds = append(cmds, loadTree(m.loader))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.fullWidthWithBorders = m.width - 2

		// The logs take about a fifth of the height, the tree the rest.
		logsHeight := max(m.height/5, 3)
		treeHeight := max(m.height-logsHeight-8, 1)

		m.treeViewport.Width = m.fullWidthWithBorders
		m.treeViewport.Height = treeHeight
		m.logsViewport.Width = m.fullWidthWithBorders
		m.logsViewport.Height = logsHeight

		m.setTreeContent()
		m.setLogsContent()

		if !m.ready {
			m.ready = true
			m.uiHandler.Ready.Store(true)
		}

	case TreeMsg:
		m.tree = msg
		m.setTreeContent()

	case LogMsg:
		if len(m.logs) >= 100 {
			m.logs = m.logs[1:]
		}
		m.logs = append(m.logs, string(msg))
		m.setLogsContent()
	}

	m.treeViewport, cmd = m.treeViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *TeaModel) setTreeContent() {
	var content string

	switch {
	case m.tree.err != nil:
		content = errorStyle.Render(fmt.Sprintf("Failed to load the gadget tree: %v", m.tree.err))
	case m.tree.t.IsZero():
		content = "Loading the gadget tree..."
	default:
		content = strings.TrimSuffix(m.tree.content, "\n")
	}

	m.treeViewport.SetContent(lipgloss.NewStyle().Width(m.treeViewport.Width).Render(content))
}

func (m *TeaModel) setLogsContent() {
	if len(m.logs) == 0 {
		return
	}

	logs := lipgloss.NewStyle().
		Width(m.logsViewport.Width).
		Render(strings.TrimSuffix(strings.Join(m.logs, ""), "\n"))

	m.logsViewport.SetContent(logs)
	m.logsViewport.GotoBottom()
}

// View is the principal rendering function of the model.
func (m TeaModel) View() string {
	if !m.ready {
		return "Loading the GUI..."
	}

	title := "Gadgets"
	if !m.tree.t.IsZero() && m.tree.err == nil {
		title = fmt.Sprintf("Gadgets (loaded %s, digest %.12s)", m.tree.t.Format("15:04:05"), m.tree.digest)
	}

	treeSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(m.fullWidthWithBorders).Render(title),
				m.treeViewport.View(),
			),
		)

	logsSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(m.fullWidthWithBorders).Render("Process Information"),
				m.logsViewport.View(),
			),
		)

	helpSection := helpStyle.
		Width(m.fullWidthWithBorders).
		Render("↑/↓: scroll • r: reload • q: quit gui • ctrl+c: quit program")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		treeSection,
		logsSection,
		helpSection,
	)
}
