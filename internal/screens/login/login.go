// Package login implements the sign-in screen. There is no real
// authentication; entering a name creates a fresh learner profile.
package login

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pmladder/internal/router"
	"github.com/abhisek/pmladder/internal/screen"
	"github.com/abhisek/pmladder/internal/session"
	"github.com/abhisek/pmladder/internal/ui/components"
	"github.com/abhisek/pmladder/internal/ui/layout"
	"github.com/abhisek/pmladder/internal/ui/theme"
)

// LoginScreen prompts for a learner name and signs them in.
type LoginScreen struct {
	sess   *session.Manager
	input  components.TextInput
	errMsg string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a new LoginScreen.
func New(sess *session.Manager) *LoginScreen {
	return &LoginScreen{
		sess:  sess,
		input: components.NewTextInput("Your name...", false, 24),
	}
}

func (l *LoginScreen) Init() tea.Cmd {
	return l.input.Init()
}

func (l *LoginScreen) Title() string {
	return "Sign In"
}

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Sign in"},
		{Key: "Esc", Description: "Back"},
	}
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		name := strings.TrimSpace(l.input.Value())
		if name == "" {
			l.errMsg = "Please enter a name."
			return l, nil
		}
		l.sess.Login(name)
		return l, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

func (l *LoginScreen) View(width, height int) string {
	title := theme.Title.Render("Welcome to PM Ladder")
	subtitle := theme.Subtitle.Render("Sign in to unlock paid levels and track your progress")

	prompt := lipgloss.NewStyle().Foreground(theme.Text).Render("Name")
	box := theme.Card.Width(44).Render(prompt + "\n\n" + l.input.View())

	sections := []string{title, "", subtitle, "", box}
	if l.errMsg != "" {
		sections = append(sections, "", lipgloss.NewStyle().Foreground(theme.Error).Render(l.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
