package navigation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertConsistent(t *testing.T, s *Session) {
	t.Helper()
	assert.Equal(t, PageName(s.Step()), s.Page())
	assert.True(t, s.Rating() >= 0 && s.Rating() <= MaxRating)
}

func TestNewSession(t *testing.T) {
	s := New()
	assert.Equal(t, StepLanding, s.Step())
	assert.Equal(t, "Landing", s.Page())
	assert.Zero(t, s.Rating())
}

func TestNextAndBackAreClamped(t *testing.T) {
	s := New()

	s.Back()
	assert.Equal(t, StepLanding, s.Step())

	for i := 0; i < 10; i++ {
		require.NoError(t, s.Next(true))
		assertConsistent(t, s)
	}
	assert.Equal(t, StepContact, s.Step())
	assert.Equal(t, "Contact Us", s.Page())

	s.Back()
	assert.Equal(t, StepFeedback, s.Step())
	assert.Equal(t, "Feedback", s.Page())
}

func TestNextFromPlannerIsGated(t *testing.T) {
	s := New()
	require.NoError(t, s.Goto(StepPlanner))

	err := s.Next(false)
	assert.True(t, errors.Is(err, ErrPlanIncomplete))
	assert.Equal(t, StepPlanner, s.Step())
	assert.Equal(t, "Study Planner", s.Page())

	require.NoError(t, s.Next(true))
	assert.Equal(t, StepFeedback, s.Step())
	assert.Equal(t, "Feedback", s.Page())
}

func TestOnlyPlannerHasAGate(t *testing.T) {
	for _, step := range []int{StepLanding, StepHome, StepPrediction, StepFeedback} {
		s := Restore(step, 0)
		require.NoError(t, s.Next(false))
		assert.Equal(t, step+1, s.Step())
	}
}

func TestGoto(t *testing.T) {
	s := New()
	for step := FirstStep; step <= LastStep; step++ {
		require.NoError(t, s.Goto(step))
		assert.Equal(t, step, s.Step())
		assertConsistent(t, s)
	}

	for _, bad := range []int{-1, 6, 42} {
		err := s.Goto(bad)
		assert.True(t, errors.Is(err, ErrInvalidStep))
		assert.Equal(t, LastStep, s.Step())
	}
}

func TestSelectStarIsIdempotent(t *testing.T) {
	s := New()

	require.NoError(t, s.SelectStar(4))
	assert.Equal(t, 5, s.Rating())

	require.NoError(t, s.SelectStar(1))
	assert.Equal(t, 2, s.Rating())

	require.NoError(t, s.SelectStar(1))
	assert.Equal(t, 2, s.Rating())

	assert.True(t, errors.Is(s.SelectStar(5), ErrInvalidStar))
	assert.True(t, errors.Is(s.SelectStar(-1), ErrInvalidStar))
	assert.Equal(t, 2, s.Rating())

	s.ResetRating()
	assert.Zero(t, s.Rating())
}

func TestRestore(t *testing.T) {
	s := Restore(StepFeedback, 3)
	assert.Equal(t, StepFeedback, s.Step())
	assert.Equal(t, "Feedback", s.Page())
	assert.Equal(t, 3, s.Rating())

	s = Restore(9, 8)
	assert.Equal(t, StepLanding, s.Step())
	assert.Zero(t, s.Rating())
	assertConsistent(t, s)
}

func TestProgressAndNavBar(t *testing.T) {
	s := Restore(StepPrediction, 0)
	assert.Equal(t, 40, s.Progress())

	links := s.NavBar()
	require.Len(t, links, 5)
	assert.Equal(t, NavLink{Step: StepHome, Name: "Home"}, links[0])
	assert.True(t, links[1].Active)
	assert.Equal(t, "Contact Us", links[4].Name)
}
