package tui

import "fmt"

// Canonical short status messages used across the app.
const (
	MsgSearchFailed = "The search was not successful, please try again."
	MsgSearching    = "Searching…"
	MsgNoResults    = "No results"
)

func MsgResultsCount(n int) string {
	if n == 1 {
		return "1 post"
	}
	return fmt.Sprintf("%d posts", n)
}

func MsgTallyProgress(authors int) string {
	if authors == 1 {
		return "tallying… 1 author so far"
	}
	return fmt.Sprintf("tallying… %d authors so far", authors)
}
