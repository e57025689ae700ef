package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkrylov/animereview/internal/adapter"
	"github.com/dkrylov/animereview/internal/service"
	"github.com/dkrylov/animereview/internal/store"
	"github.com/dkrylov/animereview/models"
)

type screen int

const (
	screenHome screen = iota
	screenSearch
	screenDetail
	screenProfile
)

type homeMode int

const (
	modeTop homeMode = iota
	modeHiddenGems
)

const (
	topListLimit    = 25
	hiddenGemsLimit = 10
	searchLimit     = 20
)

type mainModel struct {
	ctx      context.Context
	services *service.Services
	catalog  adapter.AnimeCatalog
	kv       store.KVStore

	screen screen

	// home list
	mode    homeMode
	animes  []models.Anime
	idx     int
	loading bool
	errMsg  string
	status  string

	// search
	searchInput textinput.Model
	results     []models.Anime
	resultIdx   int
	searching   bool
	lastQuery   string

	// detail
	cameFrom            screen
	anime               models.Anime
	reviews             []models.Review
	myReview            models.Review
	hasMine             bool
	detailLoading       bool
	reviewing           bool
	ratingValue         int
	commentArea         textarea.Model
	savingReview        bool
	confirmDeleteReview bool

	// profile
	profile profileState

	logout bool
}

func newMainModel(ctx context.Context, services *service.Services, catalog adapter.AnimeCatalog, kv store.KVStore) mainModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "type at least 3 characters"
	searchInput.CharLimit = 64
	searchInput.Width = 40

	commentArea := textarea.New()
	commentArea.Placeholder = "what did you think?"
	commentArea.CharLimit = 1000
	commentArea.SetWidth(48)
	commentArea.SetHeight(4)

	return mainModel{
		ctx:         ctx,
		services:    services,
		catalog:     catalog,
		kv:          kv,
		loading:     true,
		searchInput: searchInput,
		commentArea: commentArea,
		ratingValue: 7,
		profile:     newProfileState(),
	}
}

func (m mainModel) Init() tea.Cmd {
	return m.cmdLoadCatalog()
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.animes = msg.animes
		if m.idx >= len(m.animes) {
			m.idx = len(m.animes) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case loggedOutMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.logout = true
		return m, tea.Quit

	case accountDeletedMsg:
		if msg.err != nil {
			m.profile.errMsg = humanizeError(msg.err)
			m.profile.confirmDelete = false
			return m, nil
		}
		m.logout = true
		return m, tea.Quit

	case copiedMsg:
		m.status = "Link copied to clipboard"
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	switch m.screen {
	case screenSearch:
		return m.updateSearch(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenProfile:
		return m.updateProfile(msg)
	default:
		return m.updateHome(msg)
	}
}

func (m mainModel) View() string {
	switch m.screen {
	case screenSearch:
		return m.viewSearch()
	case screenDetail:
		return m.viewDetail()
	case screenProfile:
		return m.viewProfile()
	default:
		return m.viewHome()
	}
}

func (m mainModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.animes)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if len(m.animes) == 0 {
			return m, nil
		}
		return m.openDetail(m.animes[m.idx])
	case key.Matches(keyMsg, keys.search):
		m.screen = screenSearch
		m.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.profile):
		m.screen = screenProfile
		m.profile = newProfileState()
		return m, m.cmdLoadPreferences()
	case key.Matches(keyMsg, keys.hidden):
		if m.mode == modeTop {
			m.mode = modeHiddenGems
		} else {
			m.mode = modeTop
		}
		m.loading = true
		m.idx = 0
		return m, m.cmdLoadCatalog()
	case key.Matches(keyMsg, keys.reload):
		m.loading = true
		return m, m.cmdLoadCatalog()
	}

	return m, nil
}

func (m mainModel) viewHome() string {
	title := "TOP ANIME"
	if m.mode == modeHiddenGems {
		title = "HIDDEN GEMS"
	}

	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading catalog...\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n")
		b.WriteString("\nPress r to retry.\n")
	case len(m.animes) == 0:
		b.WriteString("Nothing here yet.\n")
	default:
		for i, anime := range m.animes {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(cursor + animeLine(anime) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"enter: details │ s: search │ h: hidden gems │ p: profile │ r: reload │ q: quit")
}

func (m mainModel) openDetail(anime models.Anime) (tea.Model, tea.Cmd) {
	m.cameFrom = m.screen
	m.screen = screenDetail
	m.anime = anime
	m.detailLoading = true
	m.reviewing = false
	m.confirmDeleteReview = false
	m.errMsg = ""
	return m, m.cmdLoadDetail(anime.MalID)
}

func (m mainModel) cmdLoadCatalog() tea.Cmd {
	ctx := m.ctx
	catalog := m.catalog
	mode := m.mode

	return func() tea.Msg {
		var (
			animes []models.Anime
			err    error
		)
		if mode == modeHiddenGems {
			animes, err = catalog.LeastPopular(ctx, hiddenGemsLimit)
		} else {
			animes, err = catalog.Top(ctx, topListLimit)
		}
		return catalogLoadedMsg{animes: animes, err: err}
	}
}

func (m mainModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}
