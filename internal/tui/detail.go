package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkrylov/animereview/models"
)

const statusLingerTime = 3 * time.Second

func (m mainModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		m.detailLoading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.anime = msg.anime
		m.reviews = msg.reviews
		m.myReview = msg.myReview
		m.hasMine = msg.hasMine
		return m, nil

	case reviewSavedMsg:
		m.savingReview = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.reviewing = false
		m.status = "Review saved"
		m.detailLoading = true
		return m, tea.Batch(m.cmdLoadDetail(m.anime.MalID), cmdClearStatusLater())

	case reviewDeletedMsg:
		m.confirmDeleteReview = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Review deleted"
		m.detailLoading = true
		return m, tea.Batch(m.cmdLoadDetail(m.anime.MalID), cmdClearStatusLater())

	case tea.KeyMsg:
		if m.reviewing {
			return m.updateReviewForm(msg)
		}
		if m.confirmDeleteReview {
			switch msg.String() {
			case "y", "Y", "enter":
				return m, m.cmdDeleteReview()
			case "n", "N", "esc":
				m.confirmDeleteReview = false
			}
			return m, nil
		}

		switch msg.String() {
		case "esc":
			m.screen = m.cameFrom
			m.errMsg = ""
			return m, nil
		case "r":
			return m.openReviewForm()
		case "d":
			if m.hasMine {
				m.confirmDeleteReview = true
			}
			return m, nil
		case "c":
			if m.anime.URL == "" {
				return m, nil
			}
			if err := clipboard.WriteAll(m.anime.URL); err != nil {
				m.errMsg = "Could not copy the link."
				return m, nil
			}
			return m, tea.Batch(func() tea.Msg { return copiedMsg{} }, cmdClearStatusLater())
		}
	}

	return m, nil
}

func (m mainModel) openReviewForm() (tea.Model, tea.Cmd) {
	m.reviewing = true
	m.errMsg = ""
	if m.hasMine {
		m.ratingValue = m.myReview.Rating
		m.commentArea.SetValue(m.myReview.Comment)
	} else {
		m.ratingValue = 7
		m.commentArea.SetValue("")
	}
	m.commentArea.Focus()
	return m, nil
}

func (m mainModel) updateReviewForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.reviewing = false
		m.commentArea.Blur()
		return m, nil
	case "ctrl+s":
		m.savingReview = true
		return m, m.cmdSaveReview()
	case "left", "ctrl+h":
		if m.ratingValue > 1 {
			m.ratingValue--
		}
		return m, nil
	case "right", "ctrl+l":
		if m.ratingValue < 10 {
			m.ratingValue++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.commentArea, cmd = m.commentArea.Update(msg)
	return m, cmd
}

func (m mainModel) viewDetail() string {
	if m.reviewing {
		return m.viewReviewForm()
	}

	var b strings.Builder

	switch {
	case m.detailLoading:
		b.WriteString("Loading...\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n")
	default:
		b.WriteString(m.renderAnimeCard())
		b.WriteString("\n")
		b.WriteString(m.renderReviews())
	}

	if m.confirmDeleteReview {
		b.WriteString("\n" + errorStyle.Render("Delete your review? (y/n)") + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	keys := "r: write review │ c: copy link │ esc: back"
	if m.hasMine {
		keys = "r: edit review │ d: delete review │ c: copy link │ esc: back"
	}

	return renderPage(fitText(m.anime.DisplayTitle(), 50), strings.TrimRight(b.String(), "\n"), keys)
}

func (m mainModel) renderAnimeCard() string {
	var b strings.Builder

	meta := m.anime.Type
	if m.anime.Year > 0 {
		meta += fmt.Sprintf(" · %d", m.anime.Year)
	}
	if m.anime.Episodes > 0 {
		meta += fmt.Sprintf(" · %d episodes", m.anime.Episodes)
	}
	if m.anime.Status != "" {
		meta += " · " + m.anime.Status
	}
	b.WriteString(strings.TrimPrefix(meta, " · ") + "\n")

	if m.anime.Score > 0 {
		b.WriteString("MAL score: " + scoreStyle.Render(fmt.Sprintf("%.2f", m.anime.Score)) + "\n")
	}

	if len(m.anime.Genres) > 0 {
		names := make([]string, 0, len(m.anime.Genres))
		for _, g := range m.anime.Genres {
			names = append(names, g.Name)
		}
		b.WriteString("Genres: " + strings.Join(names, ", ") + "\n")
	}

	if m.anime.Synopsis != "" {
		b.WriteString("\n" + wrapText(m.anime.Synopsis, 52, 6) + "\n")
	}

	return b.String()
}

func (m mainModel) renderReviews() string {
	var b strings.Builder

	avg := m.services.ReviewService.AverageRating(m.reviews)
	b.WriteString("Community: " + scoreStyle.Render(formatAverage(avg, len(m.reviews))) + "\n")

	if m.hasMine {
		b.WriteString("\nYour review\n")
		b.WriteString("  " + ratingBar(m.myReview.Rating) + fmt.Sprintf("  %d/10\n", m.myReview.Rating))
		if m.myReview.Comment != "" {
			b.WriteString("  " + fitText(m.myReview.Comment, 50) + "\n")
		}
	}

	others := 0
	for _, review := range m.reviews {
		if m.hasMine && review.ID == m.myReview.ID {
			continue
		}
		if others == 0 {
			b.WriteString("\nReviews\n")
		}
		others++
		name := review.UserName
		if name == "" {
			name = review.UserEmail
		}
		b.WriteString(fmt.Sprintf("  %s  %d/10  %s\n", fitText(name, 20), review.Rating, fitText(review.Comment, 40)))
	}

	return b.String()
}

func (m mainModel) viewReviewForm() string {
	var b strings.Builder

	b.WriteString("Rating:  " + ratingBar(m.ratingValue) + fmt.Sprintf("  %d/10\n", m.ratingValue))
	b.WriteString(helpStyle.Render("         adjust with left/right") + "\n\n")
	b.WriteString("Comment:\n")
	b.WriteString(m.commentArea.View() + "\n")

	if m.savingReview {
		b.WriteString("\nSaving...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	title := "REVIEW · " + fitText(m.anime.DisplayTitle(), 38)
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "ctrl+s: save │ esc: cancel")
}

func (m mainModel) cmdLoadDetail(animeID int64) tea.Cmd {
	ctx := m.ctx
	catalog := m.catalog
	reviews := m.services.ReviewService
	sess := m.services.Session

	return func() tea.Msg {
		anime, err := catalog.ByID(ctx, animeID)
		if err != nil {
			return detailLoadedMsg{err: err}
		}

		list, err := reviews.ByAnime(ctx, animeID)
		if err != nil {
			return detailLoadedMsg{err: err}
		}

		msg := detailLoadedMsg{anime: anime, reviews: list}
		if user := sess.Current(); user != nil {
			mine, ok, err := reviews.UserReviewForAnime(ctx, user.ID, animeID)
			if err != nil {
				return detailLoadedMsg{err: err}
			}
			msg.myReview = mine
			msg.hasMine = ok
		}
		return msg
	}
}

func (m mainModel) cmdSaveReview() tea.Cmd {
	ctx := m.ctx
	reviews := m.services.ReviewService

	review := models.Review{
		AnimeID:    m.anime.MalID,
		AnimeTitle: m.anime.DisplayTitle(),
		Rating:     m.ratingValue,
		Comment:    strings.TrimSpace(m.commentArea.Value()),
	}
	if m.hasMine {
		review.ID = m.myReview.ID
	}

	return func() tea.Msg {
		_, err := reviews.Save(ctx, review)
		return reviewSavedMsg{err: err}
	}
}

func (m mainModel) cmdDeleteReview() tea.Cmd {
	ctx := m.ctx
	reviews := m.services.ReviewService
	reviewID := m.myReview.ID

	return func() tea.Msg {
		return reviewDeletedMsg{err: reviews.Delete(ctx, reviewID)}
	}
}

func cmdClearStatusLater() tea.Cmd {
	return tea.Tick(statusLingerTime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// wrapText wraps v to lines of at most width characters, keeping at most
// maxLines lines.
func wrapText(v string, width, maxLines int) string {
	words := strings.Fields(v)
	var (
		lines     []string
		cur       string
		truncated bool
	)
	for _, word := range words {
		if cur == "" {
			cur = word
			continue
		}
		if len(cur)+1+len(word) > width {
			lines = append(lines, cur)
			cur = word
			if len(lines) == maxLines {
				cur = ""
				truncated = true
				break
			}
			continue
		}
		cur += " " + word
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	if truncated && len(lines) > 0 {
		lines[len(lines)-1] += " ..."
	}
	return strings.Join(lines, "\n")
}
