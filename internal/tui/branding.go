package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const AppName = "quickview"

// ASCII art logo lines for quickview - canonical definition
var LogoLines = []string{
	" ▄████▄ ██  ██ ██ ▄████▄ ██  ▄▄",
	"██    ██ ██  ██ ██ ██     ██▄█▀",
	"██    ██ ██  ██ ██ ██     ██▀█▄",
	" ▀████▀█ ▀████▀ ██ ▀████▀ ██  ▀▀",
}

const CompactLogo = "quickview ›"

// Banner gradient colors
var BannerColors = []lipgloss.Color{
	lipgloss.Color("#FF5700"),
	lipgloss.Color("#FFB000"),
	lipgloss.Color("#0DD3BB"),
	lipgloss.Color("#FF5700"),
}

var (
	PrimaryColor   = lipgloss.Color("#FF5700") // Reddit orange
	SecondaryColor = lipgloss.Color("#0DD3BB")
	AccentColor    = lipgloss.Color("#FFB000")

	TextColor  = lipgloss.Color("#EAEAEA")
	MutedColor = lipgloss.Color("#94A3B8")

	ErrorColor   = lipgloss.Color("#EF4444")
	SuccessColor = lipgloss.Color("#10B981")
	VisitedColor = lipgloss.Color("#64748B")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	AlertStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SecondaryColor).
			Padding(0, 1)

	SelectedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(AccentColor).
				Padding(0, 1)

	PlaceholderCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(MutedColor).
				Padding(0, 1)

	VisitedTitleStyle = lipgloss.NewStyle().
				Foreground(VisitedColor)
)

// GetWelcomeMessage returns the browse-view greeting for a mode.
func GetWelcomeMessage(mode Mode) string {
	if mode == ModeTop {
		return "Welcome to Postview.\nHere you can see the top 10 users who have posted to a particular subreddit.\nSelect or search for a subreddit to begin."
	}
	return "Welcome to Quickview.\nHere you can see posts for a particular subreddit that were posted after a certain date.\nSelect or search for a subreddit to begin."
}
