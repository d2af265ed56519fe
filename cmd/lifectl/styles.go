package main

import (
	"fmt"
	"time"

	"github.com/2beens/lifedash/internal/session"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle = lipgloss.NewStyle().Bold(true).Width(7)
)

func formatElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%02dm", h, m)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func renderStatus(m *session.Manager) string {
	label := labelStyle.Render(m.Domain())
	s := m.Session()
	if s == nil {
		return label + faintStyle.Render(string(m.Status()))
	}

	what := fmt.Sprintf("#%d", s.ID)
	if s.Name != "" {
		what += " " + s.Name
	}
	if s.BucketID != nil {
		what += fmt.Sprintf(" bucket %d", *s.BucketID)
	}
	return fmt.Sprintf(
		"%s%s %s %s",
		label,
		okStyle.Render(string(m.Status())),
		what,
		faintStyle.Render(fmt.Sprintf(
			"since %s (%s)",
			s.StartedAt.Local().Format("15:04"),
			formatElapsed(s.Elapsed(time.Now())),
		)),
	)
}

func renderEnd(domain string, res session.EndResult) string {
	if res.Saved {
		return okStyle.Render(fmt.Sprintf("%s session #%d saved", domain, res.ID))
	}
	if res.ID == 0 {
		return faintStyle.Render("no active " + domain + " session")
	}
	return faintStyle.Render(fmt.Sprintf("%s session #%d ended, not saved", domain, res.ID))
}
