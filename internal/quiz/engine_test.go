package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbt-portal/internal/i18n"
)

func TestPerfectRun(t *testing.T) {
	s := NewSession(Questions())
	s.Start()

	for i := 0; i < len(Questions()); i++ {
		snap := s.Snapshot()
		require.Equal(t, StateInProgress, snap.State)
		require.Equal(t, i, snap.QuestionIndex)
		require.Nil(t, snap.CorrectOption, "correct option leaked before reveal")

		require.NoError(t, s.Answer(Questions()[i].CorrectOption))
		require.NoError(t, s.Next())
	}

	snap := s.Snapshot()
	assert.Equal(t, StateFinished, snap.State)
	assert.Equal(t, len(Questions()), snap.Score)
	require.NotNil(t, snap.Percentage)
	assert.Equal(t, 100, *snap.Percentage)
	assert.Equal(t, i18n.KeyQuizFeedbackGood, snap.Feedback)
}

func TestAllWrongRun(t *testing.T) {
	s := NewSession(Questions())
	s.Start()

	for i := 0; i < len(Questions()); i++ {
		wrong := (Questions()[i].CorrectOption + 1) % len(Questions()[i].Options)
		require.NoError(t, s.Answer(wrong))
		require.NoError(t, s.Next())
	}

	snap := s.Snapshot()
	assert.Equal(t, StateFinished, snap.State)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, i18n.KeyQuizFeedbackBad, snap.Feedback)
}

func TestFirstAnswerIsFinal(t *testing.T) {
	s := NewSession(Questions())
	s.Start()

	correct := Questions()[0].CorrectOption
	wrong := (correct + 1) % len(Questions()[0].Options)

	require.NoError(t, s.Answer(wrong))
	// Second answer while revealed: no-op, not an error, score unchanged.
	require.NoError(t, s.Answer(correct))

	snap := s.Snapshot()
	assert.Equal(t, 0, snap.Score)
	require.NotNil(t, snap.Selected)
	assert.Equal(t, wrong, *snap.Selected)
	require.NotNil(t, snap.CorrectOption)
	assert.Equal(t, correct, *snap.CorrectOption)
}

func TestAnswerValidation(t *testing.T) {
	s := NewSession(Questions())

	assert.ErrorIs(t, s.Answer(0), ErrNotInProgress)
	assert.ErrorIs(t, s.Next(), ErrNotInProgress)

	s.Start()
	assert.ErrorIs(t, s.Answer(-1), ErrInvalidOption)
	assert.ErrorIs(t, s.Answer(len(Questions()[0].Options)), ErrInvalidOption)
}

func TestNextResetsSelection(t *testing.T) {
	s := NewSession(Questions())
	s.Start()

	require.NoError(t, s.Answer(0))
	require.NoError(t, s.Next())

	snap := s.Snapshot()
	assert.Nil(t, snap.Selected)
	assert.False(t, snap.Revealed)
	assert.Equal(t, 1, snap.QuestionIndex)
}

func TestRestart(t *testing.T) {
	s := NewSession(Questions())
	s.Start()

	for range Questions() {
		require.NoError(t, s.Answer(0))
		require.NoError(t, s.Next())
	}
	require.Equal(t, StateFinished, s.Snapshot().State)

	s.Restart()
	snap := s.Snapshot()
	assert.Equal(t, StateNotStarted, snap.State)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 0, snap.QuestionIndex)
}

func TestFeedbackTierBoundaries(t *testing.T) {
	cases := []struct {
		percentage int
		want       i18n.Key
	}{
		{100, i18n.KeyQuizFeedbackGood},
		{81, i18n.KeyQuizFeedbackGood},
		{80, i18n.KeyQuizFeedbackGood}, // boundary belongs to the higher tier
		{79, i18n.KeyQuizFeedbackOK},
		{50, i18n.KeyQuizFeedbackOK}, // boundary belongs to the higher tier
		{49, i18n.KeyQuizFeedbackBad},
		{0, i18n.KeyQuizFeedbackBad},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FeedbackTier(tc.percentage), "percentage %d", tc.percentage)
	}
}

func TestPercentageRounding(t *testing.T) {
	assert.Equal(t, 80, Percentage(4, 5))
	assert.Equal(t, 67, Percentage(2, 3))
	assert.Equal(t, 33, Percentage(1, 3))
	assert.Equal(t, 0, Percentage(0, 0))
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	id, s := r.Create()
	require.NotEmpty(t, id)
	assert.Equal(t, StateInProgress, s.Snapshot().State)

	got, ok := r.Get(id)
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = r.Get("unknown")
	assert.False(t, ok)

	id2, _ := r.Create()
	assert.NotEqual(t, id, id2)
}
