package grid

import (
	"github.com/djenkins1/quickview/internal/reddit"
	"github.com/djenkins1/quickview/internal/session"
)

// Card is one cell of the results grid. Placeholder cards carry no post data
// and exist only to keep the last row visually complete.
type Card struct {
	Title       string
	Link        string
	Thumbnail   string
	Author      string
	Placeholder bool
	Post        reddit.Post
}

// Grid accumulates result cards across the pages of one search session and
// packs them into fixed-width rows.
//
// Pages are stacked most-recent-first: each Consume puts the new page's
// cards ahead of everything accumulated so far, while preserving order
// within the page. Placeholder cards always pack after every real card.
type Grid struct {
	columns int
	cards   []Card
	done    bool
}

func New(columns int) *Grid {
	if columns < 1 {
		columns = 1
	}
	return &Grid{columns: columns}
}

// Consume prepends one page of posts to the grid.
func (g *Grid) Consume(posts []reddit.Post) {
	cards := make([]Card, 0, len(posts)+len(g.cards))
	for _, p := range posts {
		cards = append(cards, Card{
			Title:     p.Title,
			Link:      p.DetailURL(),
			Thumbnail: reddit.ResolveThumbnail(p.Thumbnail),
			Author:    p.Author,
			Post:      p,
		})
	}
	g.cards = append(cards, g.cards...)
}

// Flush marks the session complete.
func (g *Grid) Flush(_ session.StopReason) {
	g.done = true
}

// Reset clears the grid for a new session.
func (g *Grid) Reset() {
	g.cards = nil
	g.done = false
}

// Done reports whether the session feeding this grid has stopped.
func (g *Grid) Done() bool {
	return g.done
}

// RealCount returns the number of non-placeholder cards.
func (g *Grid) RealCount() int {
	return len(g.cards)
}

// PlaceholderCount returns how many placeholder cards pad the last row.
func (g *Grid) PlaceholderCount() int {
	if len(g.cards) == 0 {
		return 0
	}
	return (g.columns - len(g.cards)%g.columns) % g.columns
}

// Columns returns the fixed row width.
func (g *Grid) Columns() int {
	return g.columns
}

// Cards returns every card in packed order: all real cards first, in arrival
// order, then the trailing placeholders.
func (g *Grid) Cards() []Card {
	packed := make([]Card, 0, g.RealCount()+g.PlaceholderCount())
	packed = append(packed, g.cards...)
	for i := 0; i < g.PlaceholderCount(); i++ {
		packed = append(packed, Card{Placeholder: true})
	}
	return packed
}

// Rows packs the cards into rows of exactly Columns cards each. Every real
// card occupies the earliest possible slot; placeholders occupy only the
// trailing slots of the final row.
func (g *Grid) Rows() [][]Card {
	cards := g.Cards()
	rows := make([][]Card, 0, (len(cards)+g.columns-1)/g.columns)
	for start := 0; start < len(cards); start += g.columns {
		end := start + g.columns
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, cards[start:end])
	}
	return rows
}
