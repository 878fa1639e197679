package tui

import (
	"errors"
	"io/fs"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"agentdiag/internal/logtail"
	"agentdiag/internal/portcheck"
	"agentdiag/pkg/model"
)

type refreshMsg struct {
	status  model.PortStatus
	tail    model.LogTail
	tailErr string
	at      time.Time
}

type tickMsg time.Time

func refreshCmd(opts Options) tea.Cmd {
	return func() tea.Msg {
		msg := refreshMsg{
			status: portcheck.Check(portcheck.DefaultHost, opts.Port, portcheck.DefaultTimeout),
			at:     time.Now(),
		}
		tail, err := logtail.Read(opts.File, opts.Lines)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			msg.tailErr = opts.File + " not found."
		case err != nil:
			msg.tailErr = err.Error()
		default:
			msg.tail = tail
		}
		return msg
	}
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m MainModel) Init() tea.Cmd {
	return tea.Batch(refreshCmd(m.opts), tickCmd(m.opts.Interval))
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "r":
			return m, refreshCmd(m.opts)
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Title bar plus footer take three rows.
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 3
		if m.viewport.Height < 1 {
			m.viewport.Height = 1
		}
		m.ready = true
		m.setContent()
		return m, nil

	case refreshMsg:
		wasAtBottom := m.viewport.AtBottom()
		m.status = msg.status
		m.tail = msg.tail
		m.tailErr = msg.tailErr
		m.refreshed = msg.at
		m.setContent()
		if wasAtBottom {
			m.viewport.GotoBottom()
		}
		return m, nil

	case tickMsg:
		return m, tea.Batch(refreshCmd(m.opts), tickCmd(m.opts.Interval))
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}
