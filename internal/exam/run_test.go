package exam

import (
	"errors"
	"testing"
)

func TestBankShape(t *testing.T) {
	bank := Bank()
	if len(bank) != TierCount*QuestionsPerTier {
		t.Fatalf("expected %d questions, got %d", TierCount*QuestionsPerTier, len(bank))
	}

	perTier := make(map[int]int)
	seen := make(map[string]bool)
	for _, q := range bank {
		if q.Tier < 1 || q.Tier > TierCount {
			t.Errorf("question %s: tier %d out of range", q.ID, q.Tier)
		}
		if q.CorrectIdx < 0 || q.CorrectIdx > 3 {
			t.Errorf("question %s: correct index %d out of range", q.ID, q.CorrectIdx)
		}
		if seen[q.ID] {
			t.Errorf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = true
		perTier[q.Tier]++
	}
	for tier := 1; tier <= TierCount; tier++ {
		if perTier[tier] != QuestionsPerTier {
			t.Errorf("tier %d: expected %d questions, got %d", tier, QuestionsPerTier, perTier[tier])
		}
	}
}

func TestSelectAnswerOverwrites(t *testing.T) {
	r := NewRun()

	if err := r.SelectAnswer(0, 1); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := r.SelectAnswer(0, 3); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if got := r.Answer(0); got != 3 {
		t.Errorf("expected answer 3, got %d", got)
	}
	if r.AnsweredCount() != 1 {
		t.Errorf("expected 1 answered, got %d", r.AnsweredCount())
	}
}

func TestSelectAnswerOutOfRange(t *testing.T) {
	r := NewRun()

	if err := r.SelectAnswer(-1, 0); err == nil {
		t.Error("expected error for negative question index")
	}
	if err := r.SelectAnswer(len(r.Questions()), 0); err == nil {
		t.Error("expected error for question index past the bank")
	}
	if err := r.SelectAnswer(0, 4); err == nil {
		t.Error("expected error for option index past 3")
	}
}

func TestSubmitTwiceFails(t *testing.T) {
	r := NewRun()

	if _, err := r.Submit(); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := r.Submit(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
}

func TestSelectAfterFinalizeFails(t *testing.T) {
	r := NewRun()
	r.Submit()

	if err := r.SelectAnswer(0, 0); !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
}

func TestUnansweredCountsIncorrect(t *testing.T) {
	r := NewRun()
	bank := r.Questions()

	// Answer the first three correctly, leave the rest blank.
	for i := 0; i < 3; i++ {
		if err := r.SelectAnswer(i, bank[i].CorrectIdx); err != nil {
			t.Fatalf("select %d: %v", i, err)
		}
	}

	res, err := r.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.CorrectCount != 3 {
		t.Errorf("expected 3 correct, got %d", res.CorrectCount)
	}
	if res.OverallPercent != 15 {
		t.Errorf("expected 15%%, got %d%%", res.OverallPercent)
	}
}

func TestTickAutoSubmitsOnce(t *testing.T) {
	r := NewRun()
	bank := r.Questions()
	for i := 0; i < 3; i++ {
		r.SelectAnswer(i, bank[i].CorrectIdx)
	}

	for i := 0; i < TimeBudget; i++ {
		r.Tick()
	}

	if !r.Finalized() {
		t.Fatal("expected run to auto-finalize at zero")
	}
	if r.TimeRemaining() != 0 {
		t.Errorf("expected 0 remaining, got %d", r.TimeRemaining())
	}

	res, err := r.Result()
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if res.CorrectCount != 3 {
		t.Errorf("expected the 17 blanks to count incorrect; correct=%d", res.CorrectCount)
	}

	// Further ticks after finalization are no-ops.
	r.Tick()
	if r.TimeRemaining() != 0 {
		t.Error("tick after finalize should not change the clock")
	}
}

func TestResetClearsRun(t *testing.T) {
	r := NewRun()
	r.SelectAnswer(0, 2)
	r.Tick()
	r.Submit()

	r.Reset()

	if r.Finalized() {
		t.Error("expected reset run to be in progress")
	}
	if r.TimeRemaining() != TimeBudget {
		t.Errorf("expected full budget %d, got %d", TimeBudget, r.TimeRemaining())
	}
	if r.AnsweredCount() != 0 {
		t.Errorf("expected 0 answered after reset, got %d", r.AnsweredCount())
	}
	if got := r.Answer(0); got != Unanswered {
		t.Errorf("expected unanswered, got %d", got)
	}
}
