package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/calyptra/verdant/internal/catalog"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	var parts []string

	parts = append(parts, bg.Render("verdant", styles.Logo))

	status := m.snapshot.Status.String()
	parts = append(parts, styles.StatusStyle(status).Render(status))

	parts = append(parts,
		bg.Render("Plants:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(m.snapshot.Plants)), styles.Text))

	parts = append(parts,
		bg.Render("Qty:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", m.purchaseQty), styles.Text))

	if timeStr := m.formatTimestamp(); timeStr != "" {
		parts = append(parts, bg.Render(timeStr, styles.MutedText))
	}

	// A failed load keeps the previous plants on screen; the error rides
	// alongside them until the next successful revalidation.
	if m.snapshot.LastError != nil {
		maxErr := 60
		if m.width < 100 {
			maxErr = 30
		}
		errText := truncate(catalog.Reason(m.snapshot.LastError), maxErr)
		parts = append(parts,
			bg.Render("ERROR", styles.DangerText)+bg.Space()+
				bg.Render(errText, styles.DangerText.Bold(false)))
	}

	if m.notice != "" {
		style := styles.SuccessText
		if m.noticeErr {
			style = styles.WarningText
		}
		parts = append(parts, bg.Render(truncate(m.notice, 60), style))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// formatTimestamp formats the last update time with relative indicator.
func (m Model) formatTimestamp() string {
	if m.snapshot.LastUpdated.IsZero() {
		return ""
	}

	since := time.Since(m.snapshot.LastUpdated)
	timeStr := m.snapshot.LastUpdated.Format("15:04:05")

	if since < time.Minute {
		timeStr += " (now)"
	} else if since < time.Hour {
		timeStr += fmt.Sprintf(" (%dm ago)", int(since.Minutes()))
	}

	return timeStr
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewAdd:
		commands = []cmd{
			{"tab", "Next field"},
			{"enter", "Submit"},
			{"esc", "Cancel"},
			{"?", "More"},
		}
	default: // ViewBrowse
		commands = []cmd{
			{"/", "Search"},
			{"s", m.stockLabel()}, // shows current stock filter
			{"1-9", "Category"},
			{"x", "Clear"},
			{"enter", "Buy"},
			{"+/-", "Qty"},
			{"a", "Add"},
			{"r", "Refresh"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
