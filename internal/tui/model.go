package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"agentdiag/pkg/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")). // White
			Background(lipgloss.Color("#7D56F4")). // Purple
			Padding(0, 1)

	openStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")). // White
			Background(lipgloss.Color("#22aa22")). // Green
			Padding(0, 1).
			Bold(true)

	closedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")). // White
			Background(lipgloss.Color("#aa2222")). // Red
			Padding(0, 1).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#767676")). // Dimmed Gray
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("#585858")) // Dark Gray

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f5f")). // Soft red
			Bold(true)
)

// Options configures the watch screen.
type Options struct {
	Port     int
	File     string
	Lines    int
	Interval time.Duration
	Version  string
}

type MainModel struct {
	opts     Options
	viewport viewport.Model

	status    model.PortStatus
	tail      model.LogTail
	tailErr   string
	refreshed time.Time

	width    int
	height   int
	ready    bool
	quitting bool
}

func InitialModel(opts Options) MainModel {
	vp := viewport.New(0, 0)
	vp.YPosition = 0

	return MainModel{
		opts:     opts,
		viewport: vp,
	}
}

// Start runs the watch screen until the user quits.
func Start(opts Options) error {
	if os.Getenv("COLORTERM") == "" {
		os.Setenv("COLORTERM", "truecolor") //nolint:errcheck
	}

	p := tea.NewProgram(InitialModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running tui: %w", err)
	}
	return nil
}
