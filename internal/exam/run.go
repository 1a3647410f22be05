package exam

import (
	"errors"
	"fmt"
)

// TimeBudget is the full run budget in timer ticks (one tick per second).
const TimeBudget = 1200 // 20 minutes for 20 questions

// Unanswered marks a question with no selected option.
const Unanswered = -1

// ErrInvalidState is returned when an operation is attempted after the
// run has been finalized.
var ErrInvalidState = errors.New("exam: run already finalized")

// Run is a single timed attempt at the question bank.
//
// The run moves InProgress -> Finalized exactly once; both the manual
// Submit path and the Tick timeout path go through the same guarded
// finalize, so double submission is impossible by construction. A
// second Submit without an intervening Reset fails with ErrInvalidState.
type Run struct {
	bank          []Question
	answers       []int
	timeRemaining int
	finalized     bool
	result        ScoreResult
}

// NewRun starts a fresh run over the default bank.
func NewRun() *Run {
	return NewRunWithBank(Bank())
}

// NewRunWithBank starts a fresh run over the given bank.
func NewRunWithBank(bank []Question) *Run {
	r := &Run{bank: bank}
	r.Reset()
	return r
}

// Questions returns the bank the run is answering.
func (r *Run) Questions() []Question {
	return r.bank
}

// SelectAnswer records (or overwrites) the answer for a question.
func (r *Run) SelectAnswer(questionIdx, optionIdx int) error {
	if r.finalized {
		return ErrInvalidState
	}
	if questionIdx < 0 || questionIdx >= len(r.bank) {
		return fmt.Errorf("exam: question index %d out of range [0,%d)", questionIdx, len(r.bank))
	}
	if optionIdx < 0 || optionIdx >= len(r.bank[questionIdx].Options) {
		return fmt.Errorf("exam: option index %d out of range [0,%d)", optionIdx, len(r.bank[questionIdx].Options))
	}
	r.answers[questionIdx] = optionIdx
	return nil
}

// Answer returns the selected option for a question, or Unanswered.
func (r *Run) Answer(questionIdx int) int {
	if questionIdx < 0 || questionIdx >= len(r.answers) {
		return Unanswered
	}
	return r.answers[questionIdx]
}

// AnsweredCount returns how many questions have a selected option.
func (r *Run) AnsweredCount() int {
	n := 0
	for _, a := range r.answers {
		if a != Unanswered {
			n++
		}
	}
	return n
}

// TimeRemaining returns the remaining ticks.
func (r *Run) TimeRemaining() int {
	return r.timeRemaining
}

// Finalized reports whether the run has been submitted or timed out.
func (r *Run) Finalized() bool {
	return r.finalized
}

// Result returns the score of a finalized run.
func (r *Run) Result() (ScoreResult, error) {
	if !r.finalized {
		return ScoreResult{}, errors.New("exam: run not finalized")
	}
	return r.result, nil
}

// Submit finalizes the run and scores it. Unanswered questions count
// as incorrect. Submitting a finalized run fails with ErrInvalidState.
func (r *Run) Submit() (ScoreResult, error) {
	if r.finalized {
		return ScoreResult{}, ErrInvalidState
	}
	r.finalized = true
	r.result = score(r.bank, r.answers)
	return r.result, nil
}

// Tick advances the countdown by one unit. When the budget reaches
// zero while still in progress, the run auto-finalizes exactly once.
func (r *Run) Tick() {
	if r.finalized || r.timeRemaining == 0 {
		return
	}
	r.timeRemaining--
	if r.timeRemaining == 0 {
		// Timeout and manual submit share the same guarded transition.
		r.Submit() //nolint:errcheck // guarded above: cannot be finalized here
	}
}

// Reset discards all answers and restores the full time budget.
func (r *Run) Reset() {
	r.answers = make([]int, len(r.bank))
	for i := range r.answers {
		r.answers[i] = Unanswered
	}
	r.timeRemaining = TimeBudget
	r.finalized = false
	r.result = ScoreResult{}
}
