package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pmladder/internal/exam"
	"github.com/abhisek/pmladder/internal/ui/components"
	"github.com/abhisek/pmladder/internal/ui/theme"
)

func (a *AssessmentScreen) View(width, height int) string {
	switch a.phase {
	case phaseIntro:
		return a.viewIntro(width, height)
	case phaseConfirmSubmit:
		return a.viewConfirmSubmit(width, height)
	case phaseResult:
		return a.viewResult(width, height)
	}
	return a.viewQuestion(width, height)
}

func (a *AssessmentScreen) viewIntro(width, height int) string {
	title := theme.Title.Render("PM Placement Assessment")
	lines := []string{
		title,
		"",
		fmt.Sprintf("%d questions, %d per career tier.", len(a.run.Questions()), exam.QuestionsPerTier),
		fmt.Sprintf("Time limit: %s. Unanswered questions count as incorrect.", formatClock(exam.TimeBudget)),
		"",
		"Your overall score places you on the PM career ladder,",
		"from Entry Learner up to Product Director.",
		"",
		theme.Hint.Render("press enter to start"),
	}
	content := strings.Join(lines, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (a *AssessmentScreen) viewQuestion(width, height int) string {
	bank := a.run.Questions()
	q := bank[a.current]

	clockStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	if a.run.TimeRemaining() < 60 {
		clockStyle = clockStyle.Foreground(theme.Error)
	}
	status := fmt.Sprintf("Question %d/%d   Answered %d/%d   %s",
		a.current+1, len(bank),
		a.run.AnsweredCount(), len(bank),
		clockStyle.Render(formatClock(a.run.TimeRemaining())))

	tier := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("[%s]", exam.TierName(q.Tier)))

	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Prompt)

	labels := []string{"A", "B", "C", "D"}
	var opts []string
	answered := a.run.Answer(a.current)
	for i, opt := range q.Options {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == a.selected {
			prefix = "▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, labels[i], opt)
		if i == answered {
			line += "  ●"
		}
		opts = append(opts, style.Render(line))
	}

	body := strings.Join([]string{
		status,
		"",
		tier,
		prompt,
		"",
		strings.Join(opts, "\n"),
	}, "\n")

	cardWidth := width - 16
	if cardWidth > 80 {
		cardWidth = 80
	}
	card := theme.Card.Width(cardWidth).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (a *AssessmentScreen) viewConfirmSubmit(width, height int) string {
	unanswered := len(a.run.Questions()) - a.run.AnsweredCount()
	warning := ""
	if unanswered > 0 {
		warning = lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("%d question(s) unanswered — they will count as incorrect.", unanswered)) + "\n\n"
	}
	msg := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Submit the exam?") +
		"\n\n" + warning + "(y/n)"
	box := theme.Card.Width(56).Render(msg)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (a *AssessmentScreen) viewResult(width, height int) string {
	overall := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("%d%%", a.result.OverallPercent))
	label := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(a.result.TierLabel)
	correct := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d correct", a.result.CorrectCount, len(a.run.Questions())))

	var bars []string
	for tier := 1; tier <= exam.TierCount; tier++ {
		pct := a.result.PerTierPercent[tier-1]
		bar := components.NewProgressBar(
			fmt.Sprintf("%-28s", exam.TierName(tier)),
			float64(pct)/100, true, 56)
		bars = append(bars, bar.View())
	}

	sections := []string{
		theme.Title.Render("Assessment Result"),
		"",
		overall + "   " + label,
		correct,
		"",
		strings.Join(bars, "\n"),
		"",
		theme.Hint.Render("r to retake, esc to go back"),
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
