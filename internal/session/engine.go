package session

import (
	"time"

	"github.com/djenkins1/quickview/internal/debuglog"
	"github.com/djenkins1/quickview/internal/reddit"
)

// PageSink consumes the pages of one search session. The grid and the
// leaderboard both implement it.
type PageSink interface {
	// Consume folds one page of posts into the sink's accumulated state.
	Consume(posts []reddit.Post)
	// Flush is called exactly once per session, on any stop condition.
	Flush(reason StopReason)
	// Reset clears accumulated state at the start of a new session.
	Reset()
}

// StopReason describes why a session stopped paginating.
type StopReason int

const (
	// StopEmptyPage: the page contained no posts.
	StopEmptyPage StopReason = iota
	// StopNoCursor: the API returned no continuation cursor.
	StopNoCursor
	// StopAllFiltered: every post on the page fell below the date floor.
	StopAllFiltered
)

func (r StopReason) String() string {
	switch r {
	case StopEmptyPage:
		return "empty page"
	case StopNoCursor:
		return "no cursor"
	case StopAllFiltered:
		return "all filtered"
	default:
		return "unknown"
	}
}

// StepKind is the engine's verdict on a delivered page.
type StepKind int

const (
	// StepContinue: schedule the next fetch with Step.After.
	StepContinue StepKind = iota
	// StepStop: the session is over and the sink has been flushed.
	StepStop
	// StepIgnore: the page belongs to a superseded session.
	StepIgnore
)

// Step tells the caller what to do after a page was processed.
type Step struct {
	Kind   StepKind
	Reason StopReason
	After  string
	Delay  time.Duration
}

// Engine drives the fetch loop of a search session: it applies the date
// floor, decides when to stop, and hands posts to its sink.
//
// Each Start bumps a generation counter. Delayed callbacks from an older
// session carry a stale generation and are ignored, so results from an
// abandoned search never leak into the current one.
type Engine struct {
	sink        PageSink
	applyFloor  bool
	delay       time.Duration
	gen         int
	subreddit   string
	floor       int64
	active      bool
}

// NewEngine creates an engine feeding the given sink. applyFloor selects
// whether posts below the date floor are dropped before delivery; the grid
// filters, the leaderboard counts everything.
func NewEngine(sink PageSink, applyFloor bool, delay time.Duration) *Engine {
	return &Engine{
		sink:       sink,
		applyFloor: applyFloor,
		delay:      delay,
	}
}

// Start begins a new session and returns its generation token. The first
// fetch uses no cursor.
func (e *Engine) Start(subreddit string, floor time.Time) int {
	e.gen++
	e.subreddit = subreddit
	e.floor = floor.Unix()
	e.active = true
	e.sink.Reset()
	debuglog.Infof("session %d: searching r/%s (floor %d)", e.gen, subreddit, e.floor)
	return e.gen
}

// Generation returns the current session token.
func (e *Engine) Generation() int {
	return e.gen
}

// Subreddit returns the subreddit of the current session.
func (e *Engine) Subreddit() string {
	return e.subreddit
}

// Active reports whether a session is still paginating.
func (e *Engine) Active() bool {
	return e.active
}

// Abort terminates the session identified by gen, e.g. after a transport
// failure. The sink is not flushed; the session simply ends.
func (e *Engine) Abort(gen int) {
	if gen != e.gen {
		return
	}
	e.active = false
}

// Advance processes one fetched page. Stop conditions are checked in order:
// empty page, missing cursor, then (grid only) zero posts past the date
// floor. A page that stops the session by a missing cursor is not folded in,
// matching the behavior this viewer has always had.
func (e *Engine) Advance(gen int, page *reddit.Page) Step {
	if gen != e.gen || !e.active {
		return Step{Kind: StepIgnore}
	}

	if len(page.Posts) == 0 {
		return e.stop(StopEmptyPage)
	}
	if page.After == "" {
		return e.stop(StopNoCursor)
	}

	posts := page.Posts
	if e.applyFloor {
		posts = filterByFloor(posts, e.floor)
		if len(posts) == 0 {
			return e.stop(StopAllFiltered)
		}
	}

	e.sink.Consume(posts)

	return Step{
		Kind:  StepContinue,
		After: page.After,
		Delay: e.delay,
	}
}

func (e *Engine) stop(reason StopReason) Step {
	debuglog.Infof("session %d: stopped (%s)", e.gen, reason)
	e.active = false
	e.sink.Flush(reason)
	return Step{Kind: StepStop, Reason: reason}
}

func filterByFloor(posts []reddit.Post, floor int64) []reddit.Post {
	kept := make([]reddit.Post, 0, len(posts))
	for _, p := range posts {
		if int64(p.CreatedUTC) >= floor {
			kept = append(kept, p)
		}
	}
	return kept
}
