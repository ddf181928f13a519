package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/djenkins1/quickview/internal/grid"
	"github.com/djenkins1/quickview/internal/leaderboard"
)

// renderInputFrame draws a rounded bordered container around a rendered
// input view. Pass the already-rendered input view string.
func renderInputFrame(inputView string, focused bool, contentWidth int) string {
	borderColor := MutedColor
	if focused {
		borderColor = AccentColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(contentWidth + 4).
		Render(inputView)
}

// renderCentered centers the provided content within the given box.
func renderCentered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// renderMuted renders text in muted color (utility wrapper).
func renderMuted(text string) string {
	return lipgloss.NewStyle().Foreground(MutedColor).Render(text)
}

// renderHelp renders help/instructional text consistently.
func renderHelp(text string) string {
	return HelpStyle.Render(text)
}

// renderCard draws one grid cell. Placeholder cards show no data, only a
// muted frame keeping the row visually complete.
func renderCard(c grid.Card, width int, selected, visited bool) string {
	innerWidth := width - 4 // border and padding
	if innerWidth < 6 {
		innerWidth = 6
	}

	style := CardStyle
	if c.Placeholder {
		style = PlaceholderCardStyle
	} else if selected {
		style = SelectedCardStyle
	}

	if c.Placeholder {
		body := lipgloss.JoinVertical(
			lipgloss.Left,
			renderMuted(strings.Repeat("·", innerWidth)),
			"",
			renderMuted(strings.Repeat("·", innerWidth)),
		)
		return style.Width(width - 2).Render(body)
	}

	title := truncateEnd(c.Title, innerWidth)
	if visited {
		title = VisitedTitleStyle.Render(title)
	} else {
		title = lipgloss.NewStyle().Foreground(TextColor).Bold(true).Render(title)
	}

	author := renderMuted(truncateEnd("u/"+c.Author, innerWidth))
	thumb := renderMuted(truncateMiddle(c.Thumbnail, innerWidth))

	body := lipgloss.JoinVertical(lipgloss.Left, title, author, thumb)
	return style.Width(width - 2).Render(body)
}

// renderGrid packs the grid's rows of cards into a single block. The
// selected index counts real cards only, in packed order.
func renderGrid(g *grid.Grid, cardWidth, selected int, visited map[string]bool) string {
	rows := g.Rows()
	if len(rows) == 0 {
		return renderMuted(MsgNoResults)
	}

	rendered := make([]string, 0, len(rows))
	index := 0
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			isSelected := false
			isVisited := false
			if !c.Placeholder {
				isSelected = index == selected
				isVisited = visited[c.Post.ID]
				index++
			}
			cells = append(cells, renderCard(c, cardWidth, isSelected, isVisited))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

// renderLeaderboard draws the finished top-poster list.
func renderLeaderboard(entries []leaderboard.Entry, selected int) string {
	if len(entries) == 0 {
		return renderMuted(MsgNoResults)
	}

	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		line := fmt.Sprintf("%2d. %s", i+1, e.Label())
		if i == selected {
			line = lipgloss.NewStyle().Foreground(AccentColor).Bold(true).Render("› " + line)
		} else {
			line = lipgloss.NewStyle().Foreground(TextColor).Render("  " + line)
		}
		lines = append(lines, line, renderMuted("      "+e.ProfileURL()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
