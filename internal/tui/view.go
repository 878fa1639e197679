package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
)

func (m *MainModel) setContent() {
	if !m.ready {
		return
	}
	if m.tailErr != "" {
		m.viewport.SetContent(errorStyle.Render(m.tailErr))
		return
	}
	content := strings.Join(m.tail.Lines, "\n")
	if m.viewport.Width > 0 {
		content = wrap.String(content, m.viewport.Width)
	}
	m.viewport.SetContent(content)
}

func (m MainModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}

	badge := closedStyle.Render(fmt.Sprintf("port %d CLOSED", m.status.Port))
	if m.status.Open {
		badge = openStyle.Render(fmt.Sprintf("port %d OPEN", m.status.Port))
	}
	title := titleStyle.Render("agentdiag " + m.opts.Version)
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, " ", badge)

	footer := fmt.Sprintf("%s · %d lines · refreshed %s · q quit · r refresh · g/G top/bottom",
		m.tail.Path, m.tail.TotalLines, m.refreshed.Format("15:04:05"))
	if m.tailErr != "" {
		footer = fmt.Sprintf("refreshed %s · q quit · r refresh", m.refreshed.Format("15:04:05"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		footerStyle.Width(m.width).Render(footer),
	)
}
