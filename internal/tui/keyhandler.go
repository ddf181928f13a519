package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/djenkins1/quickview/internal/config"
)

// KeyHandler routes key presses based on the current view. Text entry keys
// fall through to the focused component; navigation keys are handled here.
type KeyHandler struct {
	app  *App
	keys config.KeyBindings
}

func NewKeyHandler(app *App, cfg *config.Config) *KeyHandler {
	return &KeyHandler{app: app, keys: cfg.Keys.Bindings}
}

func (h *KeyHandler) HandleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := h.app
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.view {
	case ViewBrowse:
		return h.handleBrowseKey(msg, key)
	case ViewResults:
		return h.handleResultsKey(msg, key)
	case ViewAddFavorite:
		return h.handleAddFavoriteKey(msg, key)
	case ViewPost:
		return h.handlePostKey(msg, key)
	}

	return a, nil
}

func (h *KeyHandler) handleBrowseKey(msg tea.KeyMsg, key string) (tea.Model, tea.Cmd) {
	a := h.app

	switch key {
	case "tab":
		h.cycleFocus(1)
		return a, nil
	case "shift+tab":
		h.cycleFocus(-1)
		return a, nil
	case h.keys.AddFavorite:
		a.view = ViewAddFavorite
		a.favInput.Focus()
		return a, nil
	case h.keys.Back:
		a.alert = ""
		return a, nil
	case "enter":
		switch a.focus {
		case focusFavorites:
			if item, ok := a.favList.SelectedItem().(favoriteItem); ok {
				// A favorite always starts fresh, superseding any
				// session still paginating.
				a.engine.Abort(a.engine.Generation())
				return a, a.startSearch(item.name)
			}
			return a, nil
		default:
			return a, a.startSearch(a.searchInput.Value())
		}
	}

	// Quit only when no text input is capturing keystrokes.
	if a.focus == focusFavorites && key == h.keys.Quit {
		return a, tea.Quit
	}

	return a, tea.Batch(a.updateComponents(msg)...)
}

func (h *KeyHandler) handleResultsKey(msg tea.KeyMsg, key string) (tea.Model, tea.Cmd) {
	a := h.app

	switch key {
	case h.keys.Quit:
		return a, tea.Quit
	case h.keys.Back:
		a.view = ViewBrowse
		a.alert = ""
		return a, nil
	case h.keys.AddFavorite:
		a.view = ViewAddFavorite
		a.favInput.Focus()
		return a, nil
	case h.keys.Help:
		a.showHelp = !a.showHelp
		return a, nil
	}

	if a.mode == ModeTop {
		return h.handleLeaderboardKey(msg, key)
	}
	return h.handleGridKey(msg, key)
}

func (h *KeyHandler) handleGridKey(msg tea.KeyMsg, key string) (tea.Model, tea.Cmd) {
	a := h.app
	count := a.grid.RealCount()
	columns := a.grid.Columns()

	moved := false
	switch key {
	case "left", "h":
		a.selectedCard--
		moved = true
	case "right", "l":
		a.selectedCard++
		moved = true
	case "up", "k":
		a.selectedCard -= columns
		moved = true
	case "down", "j":
		a.selectedCard += columns
		moved = true
	case "enter":
		if card := a.selectedGridCard(); card != nil {
			a.visited[card.Post.ID] = true
			a.currentPost = &card.Post
			a.view = ViewPost
			a.refreshResults()
			return a, a.renderPost(card.Post)
		}
		return a, nil
	case h.keys.OpenLink:
		if card := a.selectedGridCard(); card != nil {
			return a, openLink(card.Link)
		}
		return a, nil
	}

	if moved {
		if a.selectedCard < 0 {
			a.selectedCard = 0
		}
		if count > 0 && a.selectedCard >= count {
			a.selectedCard = count - 1
		}
		a.refreshResults()
		return a, nil
	}

	return a, tea.Batch(a.updateComponents(msg)...)
}

func (h *KeyHandler) handleLeaderboardKey(msg tea.KeyMsg, key string) (tea.Model, tea.Cmd) {
	a := h.app
	entries := a.board.Entries()

	switch key {
	case "up", "k":
		if a.selectedRow > 0 {
			a.selectedRow--
			a.refreshResults()
		}
		return a, nil
	case "down", "j":
		if a.selectedRow < len(entries)-1 {
			a.selectedRow++
			a.refreshResults()
		}
		return a, nil
	case "enter", h.keys.OpenLink:
		if a.selectedRow < len(entries) {
			return a, openLink(entries[a.selectedRow].ProfileURL())
		}
		return a, nil
	}

	return a, tea.Batch(a.updateComponents(msg)...)
}

func (h *KeyHandler) handleAddFavoriteKey(msg tea.KeyMsg, key string) (tea.Model, tea.Cmd) {
	a := h.app

	switch key {
	case "enter":
		return a, a.addFavorite(a.favInput.Value())
	case h.keys.Back:
		a.favInput.SetValue("")
		a.favInput.Blur()
		a.view = ViewBrowse
		return a, nil
	}

	return a, tea.Batch(a.updateComponents(msg)...)
}

func (h *KeyHandler) handlePostKey(msg tea.KeyMsg, key string) (tea.Model, tea.Cmd) {
	a := h.app

	switch key {
	case h.keys.Back:
		a.currentPost = nil
		a.view = ViewResults
		a.refreshResults()
		return a, nil
	case h.keys.OpenLink:
		if a.currentPost != nil {
			return a, openLink(a.currentPost.DetailURL())
		}
		return a, nil
	case h.keys.Help:
		a.showHelp = !a.showHelp
		return a, nil
	case h.keys.Quit:
		return a, tea.Quit
	}

	newViewport, cmd := a.viewport.Update(msg)
	a.viewport = newViewport
	return a, cmd
}

// cycleFocus moves focus between the browse view's controls. The date input
// only exists in grid mode.
func (h *KeyHandler) cycleFocus(dir int) {
	a := h.app

	order := []browseFocus{focusSearch, focusFavorites}
	if a.mode == ModeGrid {
		order = []browseFocus{focusSearch, focusDate, focusFavorites}
	}

	current := 0
	for i, f := range order {
		if f == a.focus {
			current = i
			break
		}
	}
	next := (current + dir + len(order)) % len(order)
	a.focus = order[next]

	a.searchInput.Blur()
	a.dateInput.Blur()
	switch a.focus {
	case focusSearch:
		a.searchInput.Focus()
	case focusDate:
		a.dateInput.Focus()
	}
}

// GetHelpForCurrentView returns the status bar hints for the active view.
func (h *KeyHandler) GetHelpForCurrentView() []string {
	a := h.app

	switch a.view {
	case ViewBrowse:
		help := []string{"Tab: Switch focus", "Enter: Search", "Ctrl+F: Add favorite", "Ctrl+C: Quit"}
		if a.focus == focusFavorites {
			help = append(help, "Q: Quit")
		}
		return help
	case ViewResults:
		if a.mode == ModeTop {
			return []string{"↑/↓: Navigate", "Enter/O: Open profile", "Esc: Back", "Q: Quit"}
		}
		return []string{"←→↑↓: Navigate", "Enter: View post", "O: Open link", "Esc: Back", "Q: Quit"}
	case ViewAddFavorite:
		return []string{"Enter: Add", "Esc: Cancel"}
	case ViewPost:
		return []string{"↑/↓: Scroll", "O: Open in browser", "Esc: Back", "Q: Quit"}
	}

	return nil
}
