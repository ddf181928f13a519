package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	progressbar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/djenkins1/quickview/internal/config"
	"github.com/djenkins1/quickview/internal/debuglog"
	"github.com/djenkins1/quickview/internal/grid"
	"github.com/djenkins1/quickview/internal/leaderboard"
	"github.com/djenkins1/quickview/internal/progress"
	"github.com/djenkins1/quickview/internal/reddit"
	"github.com/djenkins1/quickview/internal/session"
	"github.com/djenkins1/quickview/internal/storage"
)

type App struct {
	config    *config.Config
	store     *storage.Store
	client    *reddit.Client
	validator *reddit.NameValidator
	engine    *session.Engine
	grid      *grid.Grid
	board     *leaderboard.Board
	indicator *progress.Indicator

	keyHandler *KeyHandler

	mode Mode
	view View

	searchInput textinput.Model
	dateInput   textinput.Model
	favInput    textinput.Model
	favList     list.Model
	viewport    viewport.Model
	bar         progressbar.Model

	focus        browseFocus
	favorites    []string
	selectedCard int
	selectedRow  int
	visited      map[string]bool
	currentPost  *reddit.Post
	initialQuery string

	width  int
	height int

	alert    string
	err      error
	ticking  bool
	showHelp bool

	glamourRenderer *glamour.TermRenderer
	rendererWidth   int
}

func NewApp(store *storage.Store, cfg *config.Config, mode Mode, initialQuery string) *App {
	si := textinput.New()
	si.Placeholder = "Enter subreddit..."
	si.ShowSuggestions = true
	si.Focus()

	di := textinput.New()
	di.Placeholder = session.Today()
	di.SetValue(session.Today())
	di.CharLimit = len(session.DateLayout)

	fi := textinput.New()
	fi.Placeholder = "Subreddit to favorite..."

	favList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	favList.Title = "› favorites"
	favList.SetShowStatusBar(false)
	favList.SetFilteringEnabled(false)
	favList.SetShowHelp(false)

	vp := viewport.New(0, 0)

	bar := progressbar.New(
		progressbar.WithGradient(string(PrimaryColor), string(AccentColor)),
		progressbar.WithoutPercentage(),
	)

	app := &App{
		config:       cfg,
		store:        store,
		client:       reddit.NewClient(cfg),
		validator:    reddit.NewNameValidator(),
		grid:         grid.New(cfg.Grid.Columns),
		board:        leaderboard.NewBoard(),
		indicator:    progress.New(),
		mode:         mode,
		view:         ViewBrowse,
		searchInput:  si,
		dateInput:    di,
		favInput:     fi,
		favList:      favList,
		viewport:     vp,
		bar:          bar,
		visited:      map[string]bool{},
		showHelp:     true,
		initialQuery: initialQuery,
	}

	// The grid filters by the date floor; the leaderboard tallies every
	// fetched post.
	if mode == ModeTop {
		app.engine = session.NewEngine(app.board, false, cfg.Reddit.FetchDelay)
	} else {
		app.engine = session.NewEngine(app.grid, true, cfg.Reddit.FetchDelay)
	}

	app.keyHandler = NewKeyHandler(app, cfg)

	return app
}

func (a *App) getRenderer() (*glamour.TermRenderer, error) {
	wordWrapWidth := (a.width * 9) / 10
	if wordWrapWidth > 120 {
		wordWrapWidth = 120
	}
	if wordWrapWidth < 40 {
		wordWrapWidth = 40
	}
	if a.width < 50 {
		wordWrapWidth = a.width - 4
		if wordWrapWidth < 20 {
			wordWrapWidth = 20
		}
	}

	if a.glamourRenderer == nil || abs(a.rendererWidth-wordWrapWidth) > 10 {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wordWrapWidth),
		)
		if err != nil {
			return nil, err
		}
		a.glamourRenderer = r
		a.rendererWidth = wordWrapWidth
	}

	return a.glamourRenderer, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		a.loadFavorites(),
		tea.EnterAltScreen,
	}
	if a.initialQuery != "" {
		cmds = append(cmds, a.startSearch(a.initialQuery))
	}
	return tea.Batch(cmds...)
}

// startSearch begins a new session for the given subreddit name. While a
// session is still paginating, further search requests are ignored.
func (a *App) startSearch(raw string) tea.Cmd {
	if a.engine.Active() {
		return nil
	}

	name, err := a.validator.ValidateAndNormalize(raw)
	if err != nil {
		a.alert = err.Error()
		return nil
	}

	floor := time.Unix(0, 0)
	if a.mode == ModeGrid {
		floor, err = session.ParseDateFloor(a.dateInput.Value())
		if err != nil {
			a.alert = err.Error()
			return nil
		}
	}

	a.alert = ""
	a.err = nil
	a.visited = map[string]bool{}
	a.selectedCard = 0
	a.selectedRow = 0
	a.currentPost = nil

	gen := a.engine.Start(name, floor)
	a.indicator.Show()
	a.view = ViewResults
	a.refreshResults()

	cmds := []tea.Cmd{a.fetchPage(gen, "")}
	if a.indicator.RequestUnit() && !a.ticking {
		a.ticking = true
		cmds = append(cmds, a.progressTick())
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		a.viewport.Width = msg.Width
		a.viewport.Height = msg.Height - 5

		listHeight := msg.Height - 14
		if listHeight < 5 {
			listHeight = 5
		}
		a.favList.SetSize(msg.Width, listHeight)

		inputWidth := msg.Width - 8
		if inputWidth < 20 {
			inputWidth = msg.Width
		}
		a.searchInput.Width = inputWidth
		a.favInput.Width = inputWidth
		a.bar.Width = msg.Width - 8

	case tea.KeyMsg:
		return a.keyHandler.HandleKey(msg)

	case favoritesLoadedMsg:
		if msg.err != nil {
			a.err = msg.err
			break
		}
		a.setFavorites(msg.favorites)

	case favoriteAddedMsg:
		if msg.err != nil {
			a.err = msg.err
			break
		}
		a.setFavorites(msg.favorites)
		a.favInput.SetValue("")
		a.view = ViewBrowse
		a.alert = ""

	case suggestionsMsg:
		// Only apply suggestions still matching what's typed
		if a.view == ViewBrowse && msg.query == a.searchInput.Value() && len(msg.names) > 0 {
			a.searchInput.SetSuggestions(msg.names)
		}

	case pageFetchedMsg:
		cmds = append(cmds, a.handlePageFetched(msg)...)

	case fetchDelayMsg:
		if msg.gen != a.engine.Generation() || !a.engine.Active() {
			break
		}
		if a.indicator.RequestUnit() && !a.ticking {
			a.ticking = true
			cmds = append(cmds, a.progressTick())
		}
		cmds = append(cmds, a.fetchPage(msg.gen, msg.after))

	case progressTickMsg:
		if a.indicator.Tick() {
			cmds = append(cmds, a.progressTick())
		} else {
			a.ticking = false
		}

	case postRenderedMsg:
		if a.view == ViewPost {
			a.viewport.SetContent(msg.content)
			a.viewport.GotoTop()
		}

	case linkOpenedMsg:
		if msg.err != nil {
			a.err = msg.err
		}

	case errorMsg:
		a.err = msg.err
	}

	cmds = append(cmds, a.updateComponents(msg)...)

	return a, tea.Batch(cmds...)
}

// handlePageFetched folds one fetched page into the session and decides
// whether to keep paginating.
func (a *App) handlePageFetched(msg pageFetchedMsg) []tea.Cmd {
	if msg.gen != a.engine.Generation() {
		return nil
	}

	if msg.err != nil {
		debuglog.Errorf("search failed: %v", msg.err)
		a.engine.Abort(msg.gen)
		a.alert = MsgSearchFailed
		a.indicator.Set(0)
		a.indicator.Hide()
		a.refreshResults()
		return nil
	}

	var cmds []tea.Cmd
	step := a.engine.Advance(msg.gen, msg.page)
	switch step.Kind {
	case session.StepContinue:
		a.refreshResults()
		cmds = append(cmds, a.scheduleFetch(msg.gen, step.After, step.Delay))
	case session.StepStop:
		a.refreshResults()
		a.indicator.Finish()
		if !a.ticking {
			a.ticking = true
			cmds = append(cmds, a.progressTick())
		}
	}
	return cmds
}

// updateComponents routes messages to the focused bubbles component and
// triggers suggestion lookups as the search input changes.
func (a *App) updateComponents(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd

	switch a.view {
	case ViewBrowse:
		switch a.focus {
		case focusSearch:
			before := a.searchInput.Value()
			newInput, cmd := a.searchInput.Update(msg)
			a.searchInput = newInput
			cmds = append(cmds, cmd)

			query := a.searchInput.Value()
			if query != before && len(query) > 1 {
				cmds = append(cmds, a.fetchSuggestions(query))
			}
		case focusDate:
			newInput, cmd := a.dateInput.Update(msg)
			a.dateInput = newInput
			cmds = append(cmds, cmd)
		case focusFavorites:
			newList, cmd := a.favList.Update(msg)
			a.favList = newList
			cmds = append(cmds, cmd)
		}
	case ViewAddFavorite:
		newInput, cmd := a.favInput.Update(msg)
		a.favInput = newInput
		cmds = append(cmds, cmd)
	case ViewResults, ViewPost:
		switch msg.(type) {
		case tea.WindowSizeMsg, tea.MouseMsg:
			newViewport, cmd := a.viewport.Update(msg)
			a.viewport = newViewport
			cmds = append(cmds, cmd)
		}
	}

	return cmds
}

func (a *App) setFavorites(favorites []string) {
	a.favorites = favorites
	items := make([]list.Item, len(favorites))
	for i, name := range favorites {
		items[i] = favoriteItem{name: name}
	}
	a.favList.SetItems(items)
}

// refreshResults re-renders the results viewport from current session state.
func (a *App) refreshResults() {
	if a.mode == ModeTop {
		if a.engine.Active() {
			a.viewport.SetContent(renderMuted(MsgTallyProgress(a.board.AuthorCount())))
		} else {
			a.viewport.SetContent(renderLeaderboard(a.board.Entries(), a.selectedRow))
		}
		return
	}

	a.viewport.SetContent(renderGrid(a.grid, a.cardWidth(), a.selectedCard, a.visited))
}

func (a *App) cardWidth() int {
	width := a.config.Grid.CardWidth
	if a.width > 0 {
		available := a.width / a.config.Grid.Columns
		if available < width {
			width = available
		}
	}
	if width < 10 {
		width = 10
	}
	return width
}

// selectedGridCard returns the currently selected real card, if any.
func (a *App) selectedGridCard() *grid.Card {
	cards := a.grid.Cards()
	index := 0
	for i := range cards {
		if cards[i].Placeholder {
			continue
		}
		if index == a.selectedCard {
			return &cards[i]
		}
		index++
	}
	return nil
}

func (a *App) View() string {
	var content string

	switch a.view {
	case ViewBrowse:
		content = a.viewBrowse()
	case ViewResults:
		content = a.viewResults()
	case ViewAddFavorite:
		content = renderCentered(a.width, a.height-3,
			lipgloss.JoinVertical(
				lipgloss.Center,
				TitleStyle.Render("› add favorite"),
				"",
				a.favInput.View(),
				"",
				renderHelp("Press Enter to add, Esc to cancel"),
			),
		)
	case ViewPost:
		content = a.viewport.View()
	}

	statusBar := a.statusBar()
	if statusBar != "" {
		separatorWidth := a.width - 2
		if separatorWidth < 0 {
			separatorWidth = 0
		}
		separator := renderMuted("─" + strings.Repeat("─", separatorWidth))
		return lipgloss.JoinVertical(lipgloss.Left, content, separator, statusBar)
	}

	return content
}

func (a *App) viewBrowse() string {
	title := CompactLogo
	if a.mode == ModeTop {
		title = CompactLogo + " top posters"
	}

	sections := []string{
		TitleStyle.Render(title),
		"",
		renderInputFrame(a.searchInput.View(), a.focus == focusSearch, a.searchInput.Width),
	}

	if a.mode == ModeGrid {
		dateLabel := renderMuted("posted on or after")
		sections = append(sections,
			lipgloss.JoinHorizontal(lipgloss.Center, dateLabel, " ",
				renderInputFrame(a.dateInput.View(), a.focus == focusDate, len(session.DateLayout)+2)),
		)
	}

	if a.alert != "" {
		sections = append(sections, "", AlertStyle.Render("✗ "+a.alert))
	}

	if len(a.favorites) == 0 {
		sections = append(sections, "", renderCentered(a.width, 6, renderMuted(GetWelcomeMessage(a.mode))))
	} else {
		sections = append(sections, "", a.favList.View())
	}

	return lipgloss.NewStyle().
		Width(a.width).
		Height(a.height - 3).
		MaxHeight(a.height - 3).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (a *App) viewResults() string {
	header := HeaderStyle.Render("› r/" + a.engine.Subreddit())
	if a.engine.Active() {
		header += " " + renderMuted(MsgSearching)
	} else if a.mode == ModeGrid {
		header += " " + renderMuted(MsgResultsCount(a.grid.RealCount()))
	}

	sections := []string{header}

	if a.indicator.Visible() {
		sections = append(sections, a.bar.ViewAs(a.indicator.Percent()))
	}

	if a.alert != "" {
		sections = append(sections, AlertStyle.Render("✗ "+a.alert))
	}

	sections = append(sections, a.viewport.View())

	return lipgloss.NewStyle().
		Width(a.width).
		Height(a.height - 3).
		MaxHeight(a.height - 3).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (a *App) statusBar() string {
	if a.err != nil {
		return lipgloss.NewStyle().
			Width(a.width).
			Padding(0, 1).
			Render(AlertStyle.Render("✗ " + a.err.Error()))
	}

	if !a.showHelp {
		return ""
	}

	commands := a.keyHandler.GetHelpForCurrentView()
	if len(commands) == 0 {
		return ""
	}

	return lipgloss.NewStyle().
		Width(a.width).
		Padding(0, 1).
		Foreground(MutedColor).
		Render(joinHelp(commands))
}

func joinHelp(commands []string) string {
	out := ""
	for i, c := range commands {
		if i > 0 {
			out += " • "
		}
		out += c
	}
	return out
}

type favoriteItem struct {
	name string
}

func (i favoriteItem) Title() string       { return i.name }
func (i favoriteItem) Description() string { return "r/" + i.name }
func (i favoriteItem) FilterValue() string { return i.name }
