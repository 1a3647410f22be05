// Package courses implements the level catalogue screen: browsing the
// four career tiers, unlocking paid tiers through a simulated checkout,
// and claiming certificates for unlocked tiers.
package courses

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pmladder/internal/catalog"
	"github.com/abhisek/pmladder/internal/certification"
	"github.com/abhisek/pmladder/internal/router"
	"github.com/abhisek/pmladder/internal/screen"
	"github.com/abhisek/pmladder/internal/screens/login"
	"github.com/abhisek/pmladder/internal/session"
	"github.com/abhisek/pmladder/internal/ui/components"
	"github.com/abhisek/pmladder/internal/ui/layout"
	"github.com/abhisek/pmladder/internal/ui/theme"
)

// checkoutDelay simulates payment processing before the purchase lands.
const checkoutDelay = 1500 * time.Millisecond

type mode int

const (
	modeBrowse mode = iota
	modeConfirm
	modeProcessing
	modeDetail
)

// checkoutDoneMsg fires when the simulated payment delay elapses.
type checkoutDoneMsg struct {
	levelID string
}

// CoursesScreen lists the catalogue levels.
type CoursesScreen struct {
	sess     *session.Manager
	certs    *certification.Engine
	levels   []catalog.Level
	selected int
	mode     mode
	pending  string // level being checked out
	notice   string
	noticeOK bool
}

var _ screen.Screen = (*CoursesScreen)(nil)
var _ screen.KeyHintProvider = (*CoursesScreen)(nil)

// New creates a new CoursesScreen.
func New(sess *session.Manager, certs *certification.Engine) *CoursesScreen {
	return &CoursesScreen{
		sess:   sess,
		certs:  certs,
		levels: sess.Catalog().Levels(),
	}
}

func (c *CoursesScreen) Init() tea.Cmd {
	return nil
}

func (c *CoursesScreen) Title() string {
	return "Courses"
}

func (c *CoursesScreen) KeyHints() []layout.KeyHint {
	switch c.mode {
	case modeConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Pay"},
			{Key: "N", Description: "Cancel"},
		}
	case modeProcessing:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Abandon"},
		}
	case modeDetail:
		return []layout.KeyHint{
			{Key: "C", Description: "Claim certificate"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open / Unlock"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *CoursesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case checkoutDoneMsg:
		return c.handleCheckoutDone(msg)
	case tea.KeyMsg:
		return c.handleKey(msg)
	}
	return c, nil
}

func (c *CoursesScreen) handleCheckoutDone(msg checkoutDoneMsg) (screen.Screen, tea.Cmd) {
	// The learner may have abandoned the checkout; a late message for
	// a no-longer-pending level is dropped.
	if c.mode != modeProcessing || c.pending != msg.levelID {
		return c, nil
	}

	level, ok := c.sess.Catalog().Get(msg.levelID)
	if !ok {
		c.mode = modeBrowse
		return c, nil
	}

	_, err := c.sess.Purchase(level.ID, level.Title, level.Price)
	c.mode = modeBrowse
	c.pending = ""
	if err != nil {
		c.setNotice("Purchase failed: "+err.Error(), false)
		return c, nil
	}
	c.setNotice(fmt.Sprintf("%s unlocked. Receipt added to your profile.", level.Title), true)
	return c, nil
}

func (c *CoursesScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch c.mode {
	case modeConfirm:
		switch key {
		case "y", "Y", "enter":
			c.mode = modeProcessing
			levelID := c.pending
			return c, tea.Tick(checkoutDelay, func(time.Time) tea.Msg {
				return checkoutDoneMsg{levelID: levelID}
			})
		case "n", "N", "esc":
			c.mode = modeBrowse
			c.pending = ""
		}
		return c, nil

	case modeProcessing:
		if key == "esc" {
			c.mode = modeBrowse
			c.pending = ""
			c.setNotice("Checkout abandoned.", false)
		}
		return c, nil

	case modeDetail:
		switch key {
		case "c", "C":
			return c.claimCertificate()
		case "esc":
			c.mode = modeBrowse
		}
		return c, nil
	}

	// Browse mode.
	switch key {
	case "up", "k":
		if c.selected > 0 {
			c.selected--
		}
	case "down", "j":
		if c.selected < len(c.levels)-1 {
			c.selected++
		}
	case "enter":
		level := c.levels[c.selected]
		if c.sess.Entitlements().IsUnlocked(level.ID) {
			c.mode = modeDetail
			c.notice = ""
			return c, nil
		}
		if !c.sess.Authenticated() {
			c.setNotice("Sign in to purchase this level.", false)
			return c, func() tea.Msg {
				return router.PushScreenMsg{Screen: login.New(c.sess)}
			}
		}
		c.mode = modeConfirm
		c.pending = level.ID
		c.notice = ""
	}
	return c, nil
}

func (c *CoursesScreen) claimCertificate() (screen.Screen, tea.Cmd) {
	level := c.levels[c.selected]
	cert, err := c.certs.Claim(level.ID)
	if err != nil {
		c.setNotice("Cannot claim: "+err.Error(), false)
		return c, nil
	}
	c.setNotice(fmt.Sprintf("Certificate issued: %s", cert.Title), true)
	return c, nil
}

func (c *CoursesScreen) setNotice(text string, ok bool) {
	c.notice = text
	c.noticeOK = ok
}

func (c *CoursesScreen) View(width, height int) string {
	switch c.mode {
	case modeConfirm:
		return c.viewConfirm(width, height)
	case modeProcessing:
		return c.viewProcessing(width, height)
	case modeDetail:
		return c.viewDetail(width, height)
	}
	return c.viewBrowse(width, height)
}

func (c *CoursesScreen) viewBrowse(width, height int) string {
	var cards []string
	for i, level := range c.levels {
		cards = append(cards, c.renderCard(level, i == c.selected, width))
	}

	sections := []string{strings.Join(cards, "\n")}
	if c.notice != "" {
		color := theme.Error
		if c.noticeOK {
			color = theme.Success
		}
		sections = append(sections, lipgloss.NewStyle().Foreground(color).Render(c.notice))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (c *CoursesScreen) renderCard(level catalog.Level, selected bool, width int) string {
	cardWidth := width - 20
	if cardWidth > 72 {
		cardWidth = 72
	}
	if cardWidth < 40 {
		cardWidth = 40
	}

	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Lvl %d  %s", level.Rank, level.Title))

	var badge string
	unlocked := c.sess.Entitlements().IsUnlocked(level.ID)
	switch {
	case unlocked:
		badge = lipgloss.NewStyle().Foreground(theme.Success).Render("UNLOCKED")
	default:
		badge = lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("$%d", level.Price))
	}

	gap := cardWidth - lipgloss.Width(title) - lipgloss.Width(badge) - 4
	if gap < 1 {
		gap = 1
	}
	head := title + strings.Repeat(" ", gap) + badge

	tagline := lipgloss.NewStyle().Foreground(theme.TextDim).Render(level.Tagline)

	body := head + "\n" + tagline
	if unlocked {
		bar := components.NewProgressBar("", catalog.LevelProgress(level), true, cardWidth-8)
		body += "\n" + bar.View()
	}

	card := theme.Card.Width(cardWidth)
	if selected {
		card = card.BorderForeground(theme.Primary)
	}
	return card.Render(body)
}

func (c *CoursesScreen) viewConfirm(width, height int) string {
	level, _ := c.sess.Catalog().Get(c.pending)

	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Confirm purchase")
	line := fmt.Sprintf("%s\n\n%s  —  $%d\n\nPay now? (y/n)", title, level.Title, level.Price)
	box := theme.Card.Width(48).Render(line)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (c *CoursesScreen) viewProcessing(width, height int) string {
	msg := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render("Processing payment...")
	hint := theme.Hint.Render("this usually takes a moment")
	box := theme.Card.Width(48).Render(msg + "\n\n" + hint)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (c *CoursesScreen) viewDetail(width, height int) string {
	level := c.levels[c.selected]

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("Lvl %d  %s", level.Rank, level.Title))
	tagline := lipgloss.NewStyle().Foreground(theme.TextDim).Render(level.Tagline)

	var rows []string
	for _, course := range level.Courses {
		pct := 0.0
		if course.LessonCount > 0 {
			pct = float64(course.CompletedLessons) / float64(course.LessonCount)
		}
		status := fmt.Sprintf("%d/%d lessons", course.CompletedLessons, course.LessonCount)
		if course.CompletedLessons == course.LessonCount && course.LessonCount > 0 {
			status = "complete"
		}
		bar := components.NewProgressBar("", pct, false, 20)
		rows = append(rows, fmt.Sprintf("  %-34s %s  %s",
			course.Title, bar.View(),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(status)))
	}

	certLine := ""
	if _, held := c.sess.CertificateFor(level.ID); held {
		certLine = lipgloss.NewStyle().Foreground(theme.Success).
			Render("✦ Certificate of Completion issued")
	} else {
		certLine = theme.Hint.Render("press c to claim your certificate")
	}

	sections := []string{title, tagline, "", strings.Join(rows, "\n"), "", certLine}
	if c.notice != "" {
		color := theme.Error
		if c.noticeOK {
			color = theme.Success
		}
		sections = append(sections, "", lipgloss.NewStyle().Foreground(color).Render(c.notice))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
