// Package quiz runs the Learn Center knowledge check: a fixed ordered
// question bank, one attempt per question, and a feedback tier computed from
// the final percentage.
package quiz

import (
	"errors"
	"math"
	"sync"

	"dbt-portal/internal/i18n"
)

type State string

const (
	StateNotStarted State = "NOT_STARTED"
	StateInProgress State = "IN_PROGRESS"
	StateFinished   State = "FINISHED"
)

const noSelection = -1

var (
	ErrNotInProgress = errors.New("quiz is not in progress")
	ErrInvalidOption = errors.New("option index out of range")
)

// Session is one run through the question bank. Methods are safe for
// concurrent use; the registry hands the same session to every request that
// carries its id.
type Session struct {
	mu        sync.Mutex
	questions []Question
	state     State
	index     int
	selected  int
	revealed  bool
	score     int
}

func NewSession(questions []Question) *Session {
	return &Session{
		questions: questions,
		state:     StateNotStarted,
		selected:  noSelection,
	}
}

// Start moves NotStarted to the first question. Starting an already started
// session is a no-op.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateNotStarted {
		return
	}
	s.state = StateInProgress
	s.index = 0
	s.selected = noSelection
	s.revealed = false
	s.score = 0
}

// Answer records the selection for the current question and reveals the
// result. The first answer is final: answering again while revealed is a
// no-op, not an error.
func (s *Session) Answer(option int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	if s.revealed {
		return nil
	}
	if option < 0 || option >= len(s.questions[s.index].Options) {
		return ErrInvalidOption
	}

	s.selected = option
	s.revealed = true
	if option == s.questions[s.index].CorrectOption {
		s.score++
	}
	return nil
}

// Next advances to the following question, or finishes the session when the
// current question is the last one.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return ErrNotInProgress
	}

	if s.index == len(s.questions)-1 {
		s.state = StateFinished
		return nil
	}
	s.index++
	s.selected = noSelection
	s.revealed = false
	return nil
}

// Restart returns the session to NotStarted with a zero score, from any state.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateNotStarted
	s.index = 0
	s.selected = noSelection
	s.revealed = false
	s.score = 0
}

// Snapshot is the wire view of a session at one moment.
type Snapshot struct {
	State          State      `json:"state"`
	QuestionIndex  int        `json:"question_index"`
	TotalQuestions int        `json:"total_questions"`
	Prompt         i18n.Key   `json:"prompt,omitempty"`
	Options        []i18n.Key `json:"options,omitempty"`
	Selected       *int       `json:"selected,omitempty"`
	Revealed       bool       `json:"revealed"`
	CorrectOption  *int       `json:"correct_option,omitempty"`
	Score          int        `json:"score"`
	Percentage     *int       `json:"percentage,omitempty"`
	Feedback       i18n.Key   `json:"feedback,omitempty"`
}

// Snapshot captures the current state. The correct option is exposed only
// after the current question is revealed; percentage and feedback only once
// finished.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:          s.state,
		QuestionIndex:  s.index,
		TotalQuestions: len(s.questions),
		Revealed:       s.revealed,
		Score:          s.score,
	}

	switch s.state {
	case StateInProgress:
		q := s.questions[s.index]
		snap.Prompt = q.Prompt
		snap.Options = q.Options
		if s.selected != noSelection {
			sel := s.selected
			snap.Selected = &sel
		}
		if s.revealed {
			correct := q.CorrectOption
			snap.CorrectOption = &correct
		}
	case StateFinished:
		pct := Percentage(s.score, len(s.questions))
		snap.Percentage = &pct
		snap.Feedback = FeedbackTier(pct)
	}
	return snap
}

// Percentage mirrors the portal's rounding: score over total, rounded to the
// nearest whole percent.
func Percentage(score, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// FeedbackTier buckets a percentage. Boundary values belong to the higher
// tier: 80 is good, 50 is ok.
func FeedbackTier(percentage int) i18n.Key {
	switch {
	case percentage >= 80:
		return i18n.KeyQuizFeedbackGood
	case percentage >= 50:
		return i18n.KeyQuizFeedbackOK
	}
	return i18n.KeyQuizFeedbackBad
}
