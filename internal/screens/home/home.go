// Package home implements the main menu screen.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pmladder/internal/certification"
	"github.com/abhisek/pmladder/internal/llm"
	"github.com/abhisek/pmladder/internal/mentor"
	"github.com/abhisek/pmladder/internal/router"
	"github.com/abhisek/pmladder/internal/screen"
	"github.com/abhisek/pmladder/internal/screens/assessment"
	"github.com/abhisek/pmladder/internal/screens/courses"
	"github.com/abhisek/pmladder/internal/screens/interview"
	"github.com/abhisek/pmladder/internal/screens/login"
	"github.com/abhisek/pmladder/internal/screens/mentorchat"
	"github.com/abhisek/pmladder/internal/screens/profile"
	"github.com/abhisek/pmladder/internal/session"
	"github.com/abhisek/pmladder/internal/ui/components"
	"github.com/abhisek/pmladder/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	sess      *session.Manager
	mentorSvc *mentor.Service
	menu      components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen with injected engine services.
func New(sess *session.Manager, certs *certification.Engine, mentorSvc *mentor.Service, usage *llm.MemoryUsageLog) *HomeScreen {
	push := func(factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: factory()}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "COURSES", Action: push(func() screen.Screen { return courses.New(sess, certs) })},
		{Label: "ASSESSMENT", Action: push(func() screen.Screen { return assessment.New(sess) })},
		{Label: "AI MENTOR", Action: push(func() screen.Screen { return mentorchat.New(mentorSvc) })},
		{Label: "MOCK INTERVIEW", Action: push(func() screen.Screen { return interview.New(mentorSvc) })},
		{Label: "PROFILE", Action: push(func() screen.Screen { return profile.New(sess, usage) })},
		{Label: "SIGN IN", Action: push(func() screen.Screen { return login.New(sess) })},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	}

	h := &HomeScreen{
		sess:      sess,
		mentorSvc: mentorSvc,
		menu:      components.NewMenu(items),
	}
	h.syncAuthItem()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	h.syncAuthItem()
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// syncAuthItem keeps the sign-in menu entry in step with the session.
func (h *HomeScreen) syncAuthItem() {
	sess := h.sess
	if sess.Authenticated() {
		h.menu.Items[5].Label = "SIGN OUT"
		h.menu.Items[5].Action = func() tea.Cmd {
			sess.Logout()
			return nil
		}
	} else {
		h.menu.Items[5].Label = "SIGN IN"
		h.menu.Items[5].Action = func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: login.New(sess)}
			}
		}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("PM Ladder")
	subtitle := theme.Subtitle.Render("Climb from Associate PM to Product Director")

	sections := []string{title, subtitle, "", h.renderStats(), "", h.menu.View()}
	if !h.mentorSvc.Available() {
		sections = append(sections, theme.Hint.Render(
			"⚠ Set an LLM API key to enable the AI mentor (see pmladder --help)"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderStats() string {
	unlocked := 0
	for _, level := range h.sess.Catalog().Levels() {
		if h.sess.Entitlements().IsUnlocked(level.ID) {
			unlocked++
		}
	}

	var stats string
	if l := h.sess.Learner(); l != nil {
		stats = fmt.Sprintf("%s  ·  %d/%d levels unlocked  ·  %d certificate(s)  ·  last exam %d%%",
			l.Name, unlocked, len(h.sess.Catalog().Levels()), len(l.Certificates), l.ExamScore)
	} else {
		stats = fmt.Sprintf("guest  ·  %d/%d levels unlocked",
			unlocked, len(h.sess.Catalog().Levels()))
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(stats)
}
