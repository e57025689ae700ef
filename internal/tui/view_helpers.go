package tui

import (
	"fmt"
	"strings"

	"github.com/dkrylov/animereview/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  " + helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

// fitText truncates v to at most max runes, never splitting a
// multibyte character.
func fitText(v string, max int) string {
	if max <= 0 {
		return v
	}

	runes := []rune(v)
	if len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// animeLine renders one catalog row: score, title, year and episode count.
func animeLine(a models.Anime) string {
	score := "  -"
	if a.Score > 0 {
		score = fmt.Sprintf("%.1f", a.Score)
	}

	meta := ""
	if a.Year > 0 {
		meta = fmt.Sprintf(" (%d)", a.Year)
	}
	if a.Episodes > 0 {
		meta += fmt.Sprintf(" · %d ep", a.Episodes)
	}

	return fmt.Sprintf("%s  %s%s", score, fitText(a.DisplayTitle(), 48), meta)
}

// ratingBar renders a ten-step rating as filled and empty stars.
func ratingBar(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 10 {
		rating = 10
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 10-rating)
}

func formatAverage(avg float64, count int) string {
	if count == 0 {
		return "no reviews yet"
	}
	noun := "reviews"
	if count == 1 {
		noun = "review"
	}
	return fmt.Sprintf("%.1f/10 · %d %s", avg, count, noun)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
