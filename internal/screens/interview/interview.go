// Package interview implements the mock-interview screen: a chat with
// an AI interviewer persona plus a structured end-of-session verdict.
package interview

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pmladder/internal/llm"
	"github.com/abhisek/pmladder/internal/mentor"
	"github.com/abhisek/pmladder/internal/screen"
	"github.com/abhisek/pmladder/internal/screens/mentorchat"
	"github.com/abhisek/pmladder/internal/ui/components"
	"github.com/abhisek/pmladder/internal/ui/layout"
	"github.com/abhisek/pmladder/internal/ui/theme"
)

// openedMsg carries the interviewer's opening message.
type openedMsg struct {
	text string
}

// replyMsg carries the interviewer's next question.
type replyMsg struct {
	text string
}

// verdictMsg carries the structured end-of-interview evaluation.
type verdictMsg struct {
	eval *mentor.Evaluation
	err  error
}

// InterviewScreen runs a mock PM interview.
type InterviewScreen struct {
	svc     *mentor.Service
	turns   []mentor.Turn
	input   components.TextInput
	typing  bool
	started bool
	verdict *mentor.Evaluation
	errMsg  string
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)

// New creates a new InterviewScreen.
func New(svc *mentor.Service) *InterviewScreen {
	return &InterviewScreen{
		svc:   svc,
		input: components.NewTextInput("Your answer...", false, 0),
	}
}

func (s *InterviewScreen) Init() tea.Cmd {
	s.typing = true
	return tea.Batch(s.input.Init(), s.open())
}

func (s *InterviewScreen) Title() string {
	return "Mock Interview"
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	if s.verdict != nil {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answer"},
		{Key: "Ctrl+E", Description: "End & evaluate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case openedMsg:
		s.typing = false
		s.started = true
		s.turns = append(s.turns, mentor.Turn{Role: llm.RoleAssistant, Text: msg.text})
		return s, nil

	case replyMsg:
		s.typing = false
		s.turns = append(s.turns, mentor.Turn{Role: llm.RoleAssistant, Text: msg.text})
		return s, nil

	case verdictMsg:
		s.typing = false
		if msg.err != nil {
			s.errMsg = mentor.FallbackFor(msg.err)
			return s, nil
		}
		s.verdict = msg.eval
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+e":
			if s.started && !s.typing && s.verdict == nil && len(s.turns) > 1 {
				s.typing = true
				return s, s.evaluate()
			}
			return s, nil
		case "enter":
			if s.typing || s.verdict != nil {
				return s, nil
			}
			text := strings.TrimSpace(s.input.Value())
			if text == "" {
				return s, nil
			}
			s.input.Model.SetValue("")
			s.turns = append(s.turns, mentor.Turn{Role: llm.RoleUser, Text: text})
			s.typing = true
			return s, s.answer(text)
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *InterviewScreen) open() tea.Cmd {
	return func() tea.Msg {
		text, err := s.svc.StartInterview(context.Background())
		if err != nil {
			text = mentor.FallbackFor(err)
		}
		return openedMsg{text: text}
	}
}

func (s *InterviewScreen) answer(text string) tea.Cmd {
	history := make([]mentor.Turn, len(s.turns)-1)
	copy(history, s.turns[:len(s.turns)-1])

	return func() tea.Msg {
		reply, err := s.svc.InterviewReply(context.Background(), history, text)
		if err != nil {
			reply = mentor.FallbackFor(err)
		}
		return replyMsg{text: reply}
	}
}

func (s *InterviewScreen) evaluate() tea.Cmd {
	transcript := make([]mentor.Turn, len(s.turns))
	copy(transcript, s.turns)

	return func() tea.Msg {
		eval, err := s.svc.EvaluateInterview(context.Background(), transcript)
		return verdictMsg{eval: eval, err: err}
	}
}

func (s *InterviewScreen) View(width, height int) string {
	if s.verdict != nil {
		return s.viewVerdict(width, height)
	}

	out := mentorchat.RenderTranscript(s.turns, s.typing, s.input.View(), "Interviewer", width, height)
	if s.errMsg != "" {
		out += "\n" + lipgloss.NewStyle().Padding(0, 4).
			Foreground(theme.Error).Render(s.errMsg)
	}
	return out
}

func (s *InterviewScreen) viewVerdict(width, height int) string {
	v := s.verdict

	rating := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("Overall: %d/10", v.Rating))

	renderList := func(heading string, items []string, c color.Color) string {
		head := lipgloss.NewStyle().Foreground(c).Bold(true).Render(heading)
		var lines []string
		for _, item := range items {
			lines = append(lines, "  • "+item)
		}
		return head + "\n" + lipgloss.NewStyle().Foreground(theme.Text).
			Render(strings.Join(lines, "\n"))
	}

	sections := []string{
		theme.Title.Render("Interview Verdict"),
		"",
		rating,
		"",
		renderList("Strengths", v.Strengths, theme.Success),
		"",
		renderList("Work on", v.Improvements, theme.Accent),
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
