package tui

// Mode selects which page variant the app runs as.
type Mode int

const (
	// ModeGrid shows posts as a card grid (Quickview).
	ModeGrid Mode = iota
	// ModeTop shows the per-author post-count leaderboard (Postview).
	ModeTop
)

type View int

const (
	ViewBrowse View = iota
	ViewResults
	ViewAddFavorite
	ViewPost
)

// browseFocus identifies which control in the browse view has focus.
type browseFocus int

const (
	focusSearch browseFocus = iota
	focusDate
	focusFavorites
)
