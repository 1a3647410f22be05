// Package profile implements the learner profile screen: identity,
// order history, certificates, session AI usage, and sign out.
package profile

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pmladder/internal/llm"
	"github.com/abhisek/pmladder/internal/router"
	"github.com/abhisek/pmladder/internal/screen"
	"github.com/abhisek/pmladder/internal/screens/login"
	"github.com/abhisek/pmladder/internal/session"
	"github.com/abhisek/pmladder/internal/ui/layout"
	"github.com/abhisek/pmladder/internal/ui/theme"
)

// ProfileScreen shows the signed-in learner's account.
type ProfileScreen struct {
	sess  *session.Manager
	usage *llm.MemoryUsageLog
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a new ProfileScreen. usage may be nil when no provider
// is configured.
func New(sess *session.Manager, usage *llm.MemoryUsageLog) *ProfileScreen {
	return &ProfileScreen{sess: sess, usage: usage}
}

func (p *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfileScreen) Title() string {
	return "Profile"
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	if !p.sess.Authenticated() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Sign in"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "S", Description: "Sign out"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if !p.sess.Authenticated() {
		if kmsg.String() == "enter" {
			return p, func() tea.Msg {
				return router.PushScreenMsg{Screen: login.New(p.sess)}
			}
		}
		return p, nil
	}

	switch kmsg.String() {
	case "s", "S":
		p.sess.Logout()
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return p, nil
}

func (p *ProfileScreen) View(width, height int) string {
	if !p.sess.Authenticated() {
		msg := theme.Subtitle.Render("You are signed out.") + "\n\n" +
			theme.Hint.Render("press enter to sign in")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	l := p.sess.Learner()

	cardWidth := width - 20
	if cardWidth > 72 {
		cardWidth = 72
	}

	identity := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("(%s)  %s", l.Avatar, l.Name)) + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(l.Email) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("%s  ·  %s  ·  last exam %d%%", l.LevelLabel, l.Role, l.ExamScore))

	sections := []string{
		theme.Card.Width(cardWidth).Render(identity),
		p.renderOrders(cardWidth),
		p.renderCertificates(cardWidth),
	}
	if usage := p.renderUsage(cardWidth); usage != "" {
		sections = append(sections, usage)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (p *ProfileScreen) renderOrders(cardWidth int) string {
	head := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Order history")

	orders := p.sess.Entitlements().Orders()
	if len(orders) == 0 {
		return theme.Card.Width(cardWidth).Render(head + "\n\n" +
			theme.Hint.Render("no purchases yet"))
	}

	var rows []string
	for _, o := range orders {
		rows = append(rows, fmt.Sprintf("%s  %-36s $%-5d %s",
			o.Date.Format("2006-01-02"), o.LevelTitle, o.Price,
			lipgloss.NewStyle().Foreground(theme.Success).Render(o.Status)))
	}
	body := lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(rows, "\n"))
	return theme.Card.Width(cardWidth).Render(head + "\n\n" + body)
}

func (p *ProfileScreen) renderCertificates(cardWidth int) string {
	head := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Certificates")

	l := p.sess.Learner()
	if len(l.Certificates) == 0 {
		return theme.Card.Width(cardWidth).Render(head + "\n\n" +
			theme.Hint.Render("none yet — finish a level and claim one"))
	}

	var rows []string
	for _, c := range l.Certificates {
		rows = append(rows, fmt.Sprintf("✦ %-48s %s",
			c.Title, c.IssueDate.Format("2006-01-02")))
	}
	body := lipgloss.NewStyle().Foreground(theme.Accent).Render(strings.Join(rows, "\n"))
	return theme.Card.Width(cardWidth).Render(head + "\n\n" + body)
}

// renderUsage summarizes this session's AI mentor usage, with an
// estimated cost when the model is in the pricing table.
func (p *ProfileScreen) renderUsage(cardWidth int) string {
	if p.usage == nil {
		return ""
	}
	recs := p.usage.Records()
	if len(recs) == 0 {
		return ""
	}

	var in, out int
	var cost float64
	costKnown := true
	for _, r := range recs {
		in += r.InputTokens
		out += r.OutputTokens
		if c := llm.LookupCost(r.Model); c != nil {
			cost += c.Cost(r.InputTokens, r.OutputTokens)
		} else {
			costKnown = false
		}
	}

	head := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("AI usage this session")
	line := fmt.Sprintf("%d requests  ·  %d in / %d out tokens", len(recs), in, out)
	if costKnown {
		line += fmt.Sprintf("  ·  ~$%.4f", cost)
	}
	body := lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)
	return theme.Card.Width(cardWidth).Render(head + "\n\n" + body)
}
