package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/djenkins1/quickview/internal/config"
	"github.com/djenkins1/quickview/internal/grid"
	"github.com/djenkins1/quickview/internal/leaderboard"
	"github.com/djenkins1/quickview/internal/reddit"
	"github.com/djenkins1/quickview/internal/session"
	"github.com/djenkins1/quickview/internal/storage"
)

type fakePost struct {
	id      string
	author  string
	created int64
}

// newListingServer serves canned listing pages keyed by the after cursor.
func newListingServer(pages map[string]struct {
	posts []fakePost
	after string
}) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Query().Get("after")
		page, ok := pages[key]
		if !ok {
			http.NotFound(w, r)
			return
		}

		children := make([]map[string]any, 0, len(page.posts))
		for _, p := range page.posts {
			children = append(children, map[string]any{
				"data": map[string]any{
					"id":          p.id,
					"title":       "title " + p.id,
					"author":      p.author,
					"permalink":   "/r/testing/comments/" + p.id + "/",
					"thumbnail":   "self",
					"created_utc": float64(p.created),
				},
			})
		}

		body := map[string]any{
			"data": map[string]any{
				"children": children,
				"after":    page.after,
			},
		}
		if page.after == "" {
			body["data"].(map[string]any)["after"] = nil
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
}

func testClient(serverURL string) *reddit.Client {
	cfg := config.TestConfig()
	cfg.Reddit.BaseURL = serverURL
	return reddit.NewClient(cfg)
}

// drive runs the fetch loop to completion the way the UI does, minus the
// timers.
func drive(t *testing.T, client *reddit.Client, engine *session.Engine, subreddit string, floor time.Time) {
	t.Helper()

	gen := engine.Start(subreddit, floor)
	after := ""
	for i := 0; i < 20; i++ {
		page, err := client.FetchPage(context.Background(), subreddit, after)
		if err != nil {
			t.Fatalf("FetchPage failed: %v", err)
		}

		step := engine.Advance(gen, page)
		switch step.Kind {
		case session.StepContinue:
			after = step.After
		case session.StepStop:
			return
		default:
			t.Fatalf("unexpected step kind %v", step.Kind)
		}
	}
	t.Fatal("session did not stop within 20 pages")
}

func TestIntegration_GridSessionAcrossPages(t *testing.T) {
	now := time.Now().Unix()
	server := newListingServer(map[string]struct {
		posts []fakePost
		after string
	}{
		"": {
			posts: []fakePost{
				{"p1", "alice", now},
				{"p2", "bob", now},
				{"p3", "carol", now - 100000},
			},
			after: "t3_p3",
		},
		"t3_p3": {
			posts: []fakePost{
				{"p4", "alice", now},
				{"p5", "dave", now},
			},
			after: "t3_p5",
		},
		"t3_p5": {},
	})
	defer server.Close()

	client := testClient(server.URL)
	g := grid.New(4)
	engine := session.NewEngine(g, true, time.Millisecond)

	// Floor one day back: p3 falls below it and is dropped
	drive(t, client, engine, "testing", time.Now().Add(-24*time.Hour))

	if !g.Done() {
		t.Error("Expected grid to be flushed after the session stopped")
	}
	if got := g.RealCount(); got != 4 {
		t.Errorf("Expected 4 posts past the date floor, got %d", got)
	}

	// Later pages are shown first
	cards := g.Cards()
	if cards[0].Post.ID != "p4" {
		t.Errorf("Expected most recent page first, got %s", cards[0].Post.ID)
	}

	// Rows stay complete via trailing placeholders
	if total := len(cards); total%4 != 0 {
		t.Errorf("Expected full rows of 4, got %d cards", total)
	}
}

func TestIntegration_LeaderboardSession(t *testing.T) {
	now := time.Now().Unix()
	server := newListingServer(map[string]struct {
		posts []fakePost
		after string
	}{
		"": {
			posts: []fakePost{
				{"p1", "alice", now},
				{"p2", "alice", now},
				{"p3", "bob", now},
			},
			after: "t3_p3",
		},
		"t3_p3": {
			posts: []fakePost{
				{"p4", "alice", now - 1000000},
				{"p5", "bob", now},
			},
			after: "t3_p5",
		},
		"t3_p5": {},
	})
	defer server.Close()

	client := testClient(server.URL)
	board := leaderboard.NewBoard()
	engine := session.NewEngine(board, false, time.Millisecond)

	// No date floor applies: old posts still count toward the tally
	drive(t, client, engine, "testing", time.Unix(0, 0))

	entries := board.Entries()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 authors on the board, got %d", len(entries))
	}
	if entries[0].Author != "alice" || entries[0].Count != 3 {
		t.Errorf("Expected alice with 3 posts first, got %s with %d", entries[0].Author, entries[0].Count)
	}
	if entries[1].Author != "bob" || entries[1].Count != 2 {
		t.Errorf("Expected bob with 2 posts second, got %s with %d", entries[1].Author, entries[1].Count)
	}
}

func TestIntegration_CursorlessFinalPageIsDiscarded(t *testing.T) {
	now := time.Now().Unix()
	server := newListingServer(map[string]struct {
		posts []fakePost
		after string
	}{
		"": {
			posts: []fakePost{{"p1", "alice", now}},
			after: "t3_p1",
		},
		"t3_p1": {
			posts: []fakePost{{"p2", "bob", now}},
			after: "",
		},
	})
	defer server.Close()

	client := testClient(server.URL)
	g := grid.New(4)
	engine := session.NewEngine(g, true, time.Millisecond)

	drive(t, client, engine, "testing", time.Unix(0, 0))

	// The page without a continuation cursor stops the session before its
	// posts are folded in
	if got := g.RealCount(); got != 1 {
		t.Errorf("Expected only the first page's post, got %d", got)
	}
}

func TestIntegration_FavoritesSurviveRestart(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "integration-test-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := storage.NewStore(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.AddFavorite("Golang"); err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}
	if _, err := store.AddFavorite("askreddit"); err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}
	store.Close()

	store, err = storage.NewStore(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	favorites, err := store.Favorites()
	if err != nil {
		t.Fatalf("Favorites failed: %v", err)
	}
	if len(favorites) != 2 || favorites[0] != "askreddit" || favorites[1] != "golang" {
		t.Errorf("Expected sorted lowercase favorites, got %v", favorites)
	}
}
