package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mewbox/clowder/internal/catbase"
)

// portraitArt is the terminal stand-in for the cat picture. The actual
// image URL is shown under the frame so nobody loses it.
const portraitArt = ` /\_/\
( o.o )
 > ^ <`

// renderLoading shows the spinner while the first fetch is in flight.
func (m Model) renderLoading() string {
	msg := fmt.Sprintf("%s Fetching cats…", m.spin.View())
	return m.center(m.styles.Text.Render(msg))
}

// renderError shows the full-screen error panel. Any load or persist
// failure lands here; the panel is the whole UI until a reload succeeds.
func (m Model) renderError() string {
	var b strings.Builder
	b.WriteString(m.styles.DangerText.Render("Something went wrong"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Text.Render(errorMessage(m.state.Err)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.MutedText.Render("Press R to reload, q to quit."))
	return m.center(m.styles.ErrorPanel.Render(b.String()))
}

// renderReady shows the selector, the portrait, and the click count.
func (m Model) renderReady() string {
	roster := m.state.Roster

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("clowder"))
	b.WriteString(m.styles.FaintText.Render(fmt.Sprintf("  %d cats", roster.Len())))
	b.WriteString("\n\n")

	if roster.Len() == 0 {
		b.WriteString(m.styles.MutedText.Render("The collection is empty. Press R to reload."))
		b.WriteString("\n")
		return m.frame(b.String())
	}

	b.WriteString(m.renderSelector())
	b.WriteString("\n\n")

	if cat, ok := roster.Selected(); ok {
		portrait := portraitArt + "\n\n" + m.styles.FaintText.Render(cat.ImageSource)
		b.WriteString(m.styles.Portrait.Render(portrait))
		b.WriteString("\n\n")
		b.WriteString(m.styles.AccentText.Render(cat.Name))
		b.WriteString(m.styles.Text.Render(" has been petted "))
		b.WriteString(m.styles.SuccessText.Render(fmt.Sprintf("%d", cat.ClickCount)))
		b.WriteString(m.styles.Text.Render(pluralTimes(cat.ClickCount)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.FaintText.Render("space pet · 0 reset · ←/→ choose · R reload · ? help"))
	return m.frame(b.String())
}

// renderSelector draws the horizontal single-select control of cat names.
func (m Model) renderSelector() string {
	roster := m.state.Roster
	tabs := make([]string, 0, roster.Len())
	for i, cat := range roster.Cats() {
		if i == roster.SelectedIndex() {
			tabs = append(tabs, m.styles.TabSelected.Render(cat.Name))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(cat.Name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderHelp draws the key binding overlay. Any key dismisses it.
func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Keys"))
	b.WriteString("\n\n")
	for _, binding := range m.keys.helpBindings() {
		help := binding.Help()
		b.WriteString(m.styles.HelpKey.Render(fmt.Sprintf("%-12s", help.Key)))
		b.WriteString(m.styles.HelpDesc.Render(help.Desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render("Press any key to close."))
	return m.center(m.styles.HelpPanel.Render(b.String()))
}

// frame left-aligns content with a margin inside the full window.
func (m Model) frame(content string) string {
	return lipgloss.NewStyle().Margin(1, 2).Render(content)
}

// center places content in the middle of the window.
func (m Model) center(content string) string {
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// errorMessage derives the human-readable error-panel text.
func errorMessage(err error) string {
	if err == nil {
		return "Unknown error."
	}
	var cerr *catbase.Error
	if errors.As(err, &cerr) {
		return cerr.Message()
	}
	return err.Error()
}

func pluralTimes(n int) string {
	if n == 1 {
		return " time"
	}
	return " times"
}
