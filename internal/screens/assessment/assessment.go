// Package assessment implements the timed placement exam screen: 20
// questions across the four tiers, a 20 minute countdown, free
// navigation between questions, and a scored result view.
package assessment

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pmladder/internal/exam"
	"github.com/abhisek/pmladder/internal/screen"
	"github.com/abhisek/pmladder/internal/session"
	"github.com/abhisek/pmladder/internal/ui/layout"
)

type phase int

const (
	phaseIntro phase = iota
	phaseActive
	phaseConfirmSubmit
	phaseResult
)

// timerTickMsg drives the countdown, one tick per second.
type timerTickMsg time.Time

// AssessmentScreen runs one exam attempt.
type AssessmentScreen struct {
	sess     *session.Manager
	run      *exam.Run
	phase    phase
	current  int // question index
	selected int // highlighted option for the current question
	result   exam.ScoreResult
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)

// New creates a new AssessmentScreen.
func New(sess *session.Manager) *AssessmentScreen {
	return &AssessmentScreen{
		sess: sess,
		run:  exam.NewRun(),
	}
}

func (a *AssessmentScreen) Init() tea.Cmd {
	return nil
}

func (a *AssessmentScreen) Title() string {
	return "Assessment"
}

func (a *AssessmentScreen) KeyHints() []layout.KeyHint {
	switch a.phase {
	case phaseIntro:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseActive:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Option"},
			{Key: "←→", Description: "Question"},
			{Key: "Enter", Description: "Answer"},
			{Key: "S", Description: "Submit"},
		}
	case phaseConfirmSubmit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "Retake"},
		{Key: "Esc", Description: "Back"},
	}
}

func (a *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return a.handleTimerTick()
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *AssessmentScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if a.phase != phaseActive && a.phase != phaseConfirmSubmit {
		return a, nil
	}

	a.run.Tick()
	if a.run.Finalized() {
		// Time expired; the run auto-submitted.
		a.result, _ = a.run.Result()
		a.finishRun()
		return a, nil
	}
	return a, a.scheduleTick()
}

func (a *AssessmentScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch a.phase {
	case phaseIntro:
		if key == "enter" {
			a.phase = phaseActive
			return a, a.scheduleTick()
		}
		return a, nil

	case phaseConfirmSubmit:
		switch key {
		case "y", "Y", "enter":
			result, err := a.run.Submit()
			if err != nil {
				// Already finalized by the timer between keystrokes.
				result, _ = a.run.Result()
			}
			a.result = result
			a.finishRun()
		case "n", "N", "esc":
			a.phase = phaseActive
		}
		return a, nil

	case phaseResult:
		if key == "r" || key == "R" {
			a.run.Reset()
			a.phase = phaseActive
			a.current = 0
			a.selected = 0
			return a, a.scheduleTick()
		}
		return a, nil
	}

	// Active phase.
	bank := a.run.Questions()
	q := bank[a.current]

	switch key {
	case "up", "k":
		if a.selected > 0 {
			a.selected--
		}
	case "down", "j":
		if a.selected < len(q.Options)-1 {
			a.selected++
		}
	case "left", "h":
		a.moveTo(a.current - 1)
	case "right", "l":
		a.moveTo(a.current + 1)
	case "enter":
		if err := a.run.SelectAnswer(a.current, a.selected); err == nil {
			if a.current < len(bank)-1 {
				a.moveTo(a.current + 1)
			}
		}
	case "s", "S":
		a.phase = phaseConfirmSubmit
	}
	return a, nil
}

// moveTo jumps to another question, restoring its recorded answer as
// the highlighted option.
func (a *AssessmentScreen) moveTo(idx int) {
	bank := a.run.Questions()
	if idx < 0 || idx >= len(bank) {
		return
	}
	a.current = idx
	if ans := a.run.Answer(idx); ans != exam.Unanswered {
		a.selected = ans
	} else {
		a.selected = 0
	}
}

func (a *AssessmentScreen) finishRun() {
	a.phase = phaseResult
	a.sess.RecordExamScore(a.result.OverallPercent)
}

func (a *AssessmentScreen) scheduleTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// formatClock renders remaining seconds as MM:SS.
func formatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
