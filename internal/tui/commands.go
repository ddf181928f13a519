package tui

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/djenkins1/quickview/internal/reddit"
)

type favoritesLoadedMsg struct {
	favorites []string
	err       error
}

type favoriteAddedMsg struct {
	favorites []string
	err       error
}

type suggestionsMsg struct {
	query string
	names []string
}

type pageFetchedMsg struct {
	gen  int
	page *reddit.Page
	err  error
}

type fetchDelayMsg struct {
	gen   int
	after string
}

type progressTickMsg struct{}

type postRenderedMsg struct {
	content string
}

type linkOpenedMsg struct {
	err error
}

type errorMsg struct {
	err error
}

func (a *App) loadFavorites() tea.Cmd {
	return func() tea.Msg {
		favorites, err := a.store.Favorites()
		return favoritesLoadedMsg{favorites: favorites, err: wrapErr("loading favorites", err)}
	}
}

func (a *App) addFavorite(name string) tea.Cmd {
	return func() tea.Msg {
		normalized, err := a.validator.ValidateAndNormalize(name)
		if err != nil {
			return favoriteAddedMsg{err: err}
		}
		favorites, err := a.store.AddFavorite(normalized)
		return favoriteAddedMsg{favorites: favorites, err: wrapErr("saving favorite", err)}
	}
}

// fetchPage issues one listing request for the session identified by gen.
// The generation travels with the response so stale pages can be dropped.
func (a *App) fetchPage(gen int, after string) tea.Cmd {
	subreddit := a.engine.Subreddit()
	return func() tea.Msg {
		page, err := a.client.FetchPage(context.Background(), subreddit, after)
		return pageFetchedMsg{gen: gen, page: page, err: err}
	}
}

// scheduleFetch arranges the next page fetch after the configured delay,
// so the listing API is not hammered.
func (a *App) scheduleFetch(gen int, after string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return fetchDelayMsg{gen: gen, after: after}
	})
}

func (a *App) progressTick() tea.Cmd {
	return tea.Tick(a.indicator.Interval(), func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}

func (a *App) fetchSuggestions(query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		names, err := a.client.SearchSubreddits(ctx, query)
		if err != nil {
			// Suggestions are best-effort; a failed lookup is not an alert
			return suggestionsMsg{query: query}
		}
		return suggestionsMsg{query: query, names: names}
	}
}

// renderPost produces the detail view for one post.
func (a *App) renderPost(post reddit.Post) tea.Cmd {
	return func() tea.Msg {
		var content strings.Builder
		content.WriteString(fmt.Sprintf("# %s\n\n", post.Title))
		content.WriteString(fmt.Sprintf("*u/%s in r/%s*\n\n", post.Author, post.Subreddit))
		content.WriteString(fmt.Sprintf("*Posted: %s • %d points • %d comments*\n\n",
			post.Created().Format(time.RFC1123), post.Score, post.NumComments))

		if post.Permalink != "" {
			content.WriteString(fmt.Sprintf("[View on Reddit](%s)\n\n", post.DetailURL()))
		}
		if post.URL != "" && post.URL != post.DetailURL() {
			content.WriteString(fmt.Sprintf("[Link](%s)\n\n", post.URL))
		}

		content.WriteString("---\n\n")

		if post.Selftext != "" {
			content.WriteString(post.Selftext)
		} else {
			content.WriteString("*This post has no text body.*")
		}

		r, err := a.getRenderer()
		if err != nil {
			return postRenderedMsg{content: "Error initializing renderer: " + err.Error()}
		}

		rendered, err := r.Render(content.String())
		if err != nil {
			return postRenderedMsg{content: fmt.Sprintf("# Error\n\nFailed to render post: %s\n\nPress Escape to go back.", err.Error())}
		}

		return postRenderedMsg{content: rendered}
	}
}

// openLink hands a URL to the platform opener.
func openLink(url string) tea.Cmd {
	return func() tea.Msg {
		if url == "" || url == "#" {
			return linkOpenedMsg{}
		}
		cmd := exec.Command(defaultOpener(), url)
		return linkOpenedMsg{err: wrapErr("opening link", cmd.Start())}
	}
}

func defaultOpener() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "linux":
		return "xdg-open"
	case "windows":
		return "start"
	default:
		return "open"
	}
}
