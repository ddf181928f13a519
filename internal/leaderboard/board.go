package leaderboard

import (
	"fmt"
	"sort"

	"github.com/djenkins1/quickview/internal/reddit"
	"github.com/djenkins1/quickview/internal/session"
)

// TopSize is how many authors the finished leaderboard shows.
const TopSize = 10

// Entry is one leaderboard row.
type Entry struct {
	Author string
	Count  int
}

// ProfileURL returns the link to the entry's author profile.
func (e Entry) ProfileURL() string {
	return reddit.ProfileURL(e.Author)
}

// Board tallies posts per author across the pages of one search session.
// The tally counts every fetched post; the date floor does not apply here.
type Board struct {
	tally     map[string]int
	entries   []Entry
	finalized bool
}

func NewBoard() *Board {
	return &Board{tally: make(map[string]int)}
}

// Consume increments the tally for each post's author.
func (b *Board) Consume(posts []reddit.Post) {
	for _, p := range posts {
		b.tally[p.Author]++
	}
}

// Flush finalizes the board on session stop.
func (b *Board) Flush(_ session.StopReason) {
	entries, err := b.Finalize()
	if err != nil {
		return
	}
	b.entries = entries
}

// Reset clears the tally for a new session.
func (b *Board) Reset() {
	b.tally = make(map[string]int)
	b.entries = nil
	b.finalized = false
}

// Count returns the tallied post count for one author.
func (b *Board) Count(author string) int {
	return b.tally[author]
}

// AuthorCount returns how many distinct authors have been tallied.
func (b *Board) AuthorCount() int {
	return len(b.tally)
}

// Finalize converts the tally into the top authors by post count,
// descending. It may be called once per session; calling it again without
// an intervening Reset is an error.
func (b *Board) Finalize() ([]Entry, error) {
	if b.finalized {
		return nil, fmt.Errorf("leaderboard already finalized")
	}
	b.finalized = true
	return b.top(TopSize), nil
}

// Entries returns the finalized leaderboard rows.
func (b *Board) Entries() []Entry {
	return b.entries
}

// top sorts all entries by count descending and keeps the first n. The sort
// is stable with count as the only key, so ties keep their relative order.
func (b *Board) top(n int) []Entry {
	entries := make([]Entry, 0, len(b.tally))
	for author, count := range b.tally {
		entries = append(entries, Entry{Author: author, Count: count})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Label formats an entry the way the leaderboard displays it.
func (e Entry) Label() string {
	return fmt.Sprintf("%s : %d", e.Author, e.Count)
}
