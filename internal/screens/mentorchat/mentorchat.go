// Package mentorchat implements the AI mentor chat screen.
package mentorchat

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pmladder/internal/llm"
	"github.com/abhisek/pmladder/internal/mentor"
	"github.com/abhisek/pmladder/internal/screen"
	"github.com/abhisek/pmladder/internal/ui/components"
	"github.com/abhisek/pmladder/internal/ui/layout"
	"github.com/abhisek/pmladder/internal/ui/theme"
)

const welcomeText = "Hi! I'm your AI product mentor. Ask me anything about prioritization " +
	"frameworks (RICE, MoSCoW), stakeholder management, or interview prep!"

// replyMsg carries the mentor's reply back into the update loop.
type replyMsg struct {
	text string
}

// MentorScreen is a chat transcript with the AI mentor.
type MentorScreen struct {
	svc    *mentor.Service
	turns  []mentor.Turn
	input  components.TextInput
	typing bool
	focus  mentor.AdviceContext
}

var _ screen.Screen = (*MentorScreen)(nil)
var _ screen.KeyHintProvider = (*MentorScreen)(nil)

// New creates a new MentorScreen.
func New(svc *mentor.Service) *MentorScreen {
	return &MentorScreen{
		svc: svc,
		turns: []mentor.Turn{
			{Role: llm.RoleAssistant, Text: welcomeText},
		},
		input: components.NewTextInput("Ask your mentor...", false, 0),
		focus: mentor.ContextGeneral,
	}
}

func (m *MentorScreen) Init() tea.Cmd {
	return m.input.Init()
}

func (m *MentorScreen) Title() string {
	return "AI Mentor"
}

func (m *MentorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+F", Description: "Focus: " + string(m.focus)},
		{Key: "Esc", Description: "Back"},
	}
}

// cycleFocus rotates general -> requirements -> data.
func (m *MentorScreen) cycleFocus() {
	switch m.focus {
	case mentor.ContextGeneral:
		m.focus = mentor.ContextRequirements
	case mentor.ContextRequirements:
		m.focus = mentor.ContextData
	default:
		m.focus = mentor.ContextGeneral
	}
}

func (m *MentorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		m.typing = false
		m.turns = append(m.turns, mentor.Turn{Role: llm.RoleAssistant, Text: msg.text})
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+f" {
			m.cycleFocus()
			return m, nil
		}
		if msg.String() == "enter" && !m.typing {
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.Model.SetValue("")
			m.turns = append(m.turns, mentor.Turn{Role: llm.RoleUser, Text: text})
			m.typing = true
			return m, m.send(text)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// send asks the mentor off the UI loop. History excludes the message
// being sent; failures degrade to a canned apology, never an error.
// A non-general focus routes through one-shot focused advice instead
// of the running conversation.
func (m *MentorScreen) send(text string) tea.Cmd {
	history := make([]mentor.Turn, len(m.turns)-1)
	copy(history, m.turns[:len(m.turns)-1])
	focus := m.focus

	return func() tea.Msg {
		var reply string
		var err error
		if focus == mentor.ContextGeneral {
			reply, err = m.svc.Chat(context.Background(), history, text)
		} else {
			reply, err = m.svc.Advise(context.Background(), text, focus)
		}
		if err != nil {
			return replyMsg{text: mentor.FallbackFor(err)}
		}
		return replyMsg{text: reply}
	}
}

func (m *MentorScreen) View(width, height int) string {
	return RenderTranscript(m.turns, m.typing, m.input.View(), "Mentor", width, height)
}

// RenderTranscript lays out a chat transcript with an input line at
// the bottom. Shared with the mock-interview screen.
func RenderTranscript(turns []mentor.Turn, typing bool, inputView, speaker string, width, height int) string {
	bubbleWidth := width - 24
	if bubbleWidth > 72 {
		bubbleWidth = 72
	}
	if bubbleWidth < 30 {
		bubbleWidth = 30
	}

	userStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	botStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(bubbleWidth)

	var lines []string
	for _, t := range turns {
		name := botStyle.Render(speaker)
		if t.Role == llm.RoleUser {
			name = userStyle.Render("You")
		}
		lines = append(lines, name)
		lines = append(lines, textStyle.Render(t.Text))
		lines = append(lines, "")
	}
	if typing {
		lines = append(lines, theme.Hint.Render(speaker+" is typing..."))
		lines = append(lines, "")
	}

	// Keep the tail of the conversation in view.
	transcript := strings.Join(lines, "\n")
	rows := strings.Split(transcript, "\n")
	avail := height - 4
	if avail < 4 {
		avail = 4
	}
	if len(rows) > avail {
		rows = rows[len(rows)-avail:]
	}
	transcript = strings.Join(rows, "\n")

	inputBox := theme.Card.Width(bubbleWidth + 4).Render(inputView)

	content := transcript + "\n" + inputBox
	return lipgloss.NewStyle().Padding(1, 4).Render(content)
}
