package mentor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/pmladder/internal/llm"
)

const interviewOpenerInstruction = "You are a senior product interviewer at a top tech company " +
	"running a mock interview. Introduce yourself briefly, then ask the candidate for a " +
	"self-introduction. Ask one question at a time and follow up on each answer. " +
	"Keep a professional, sharp but constructive style."

const interviewReplyInstruction = "You are a senior product interviewer at a top tech company. " +
	"Briefly comment on the candidate's last answer, then ask the next challenging interview " +
	"question. For estimation or logic questions, probe for gaps in the reasoning. Stay professional."

// StartInterview opens a mock interview session and returns the
// interviewer's opening message.
func (s *Service) StartInterview(ctx context.Context) (string, error) {
	return s.chat(ctx, "mock_interview", interviewOpenerInstruction, nil,
		"Shall we start the mock interview? Please open as the interviewer.")
}

// InterviewReply continues the mock interview with the candidate's
// latest answer.
func (s *Service) InterviewReply(ctx context.Context, history []Turn, answer string) (string, error) {
	return s.chat(ctx, "mock_interview", interviewReplyInstruction, history, answer)
}

// Evaluation is the interviewer's structured verdict on a finished
// mock interview.
type Evaluation struct {
	Rating       int      `json:"rating"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

const evaluationInstruction = "You are a senior product interviewer. The mock interview below has " +
	"ended. Evaluate the candidate's performance across the whole transcript. Be specific and " +
	"reference their actual answers."

// EvaluateInterview scores a finished interview transcript. The
// response is schema-validated JSON.
func (s *Service) EvaluateInterview(ctx context.Context, history []Turn) (*Evaluation, error) {
	if s.provider == nil {
		return nil, ErrNoProvider
	}

	ctx = llm.WithPurpose(ctx, "interview_evaluation")

	var b strings.Builder
	for _, t := range history {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", t.Role, t.Text)
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: evaluationInstruction,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("interview evaluation failed: %w", err)
	}

	var eval Evaluation
	if err := json.Unmarshal(resp.Content, &eval); err != nil {
		return nil, fmt.Errorf("failed to parse evaluation response: %w", err)
	}
	return &eval, nil
}
