// Package navigation tracks where a visitor is in the five page flow.
package navigation

import (
	"errors"
	"fmt"
)

const (
	StepLanding = iota
	StepHome
	StepPrediction
	StepPlanner
	StepFeedback
	StepContact
)

const (
	FirstStep = StepLanding
	LastStep  = StepContact

	// Pages is the number of steps shown in the progress bar. Landing is not counted.
	Pages = LastStep

	MaxRating = 5
)

var pageMap = map[int]string{
	StepLanding:    "Landing",
	StepHome:       "Home",
	StepPrediction: "Prediction",
	StepPlanner:    "Study Planner",
	StepFeedback:   "Feedback",
	StepContact:    "Contact Us",
}

var (
	ErrInvalidStep    = errors.New("invalid step")
	ErrInvalidStar    = errors.New("invalid star")
	ErrPlanIncomplete = errors.New("fill all study fields before going next")
)

// PageName returns the label assigned to step, or "" when step is out of range.
func PageName(step int) string {
	return pageMap[step]
}

// NavLink is an entry of the navigation bar.
type NavLink struct {
	Step   int
	Name   string
	Active bool
}

// Session is the per-visitor navigation state. The page label and rating are only
// changed through methods so they can't drift from the step.
type Session struct {
	step   int
	page   string
	rating int
}

func New() *Session {
	s := &Session{}
	s.setStep(FirstStep)
	return s
}

// Restore rebuilds a session from stored values. Out of range values are reset to their
// initial state.
func Restore(step, rating int) *Session {
	s := New()
	if step >= FirstStep && step <= LastStep {
		s.setStep(step)
	}
	if rating >= 0 && rating <= MaxRating {
		s.rating = rating
	}
	return s
}

func (s *Session) Step() int { return s.step }
func (s *Session) Page() string { return s.page }
func (s *Session) Rating() int { return s.rating }

// Next moves one step forward and stays on the last step. Leaving the study planner
// requires planReady; it is ignored on every other step.
func (s *Session) Next(planReady bool) error {
	if s.step == StepPlanner && !planReady {
		return ErrPlanIncomplete
	}
	if s.step < LastStep {
		s.setStep(s.step + 1)
	}
	return nil
}

// Back moves one step backward and stays on the landing page.
func (s *Session) Back() {
	if s.step > FirstStep {
		s.setStep(s.step - 1)
	}
}

// Goto jumps straight to step, as the navigation bar does. It skips the planner gate.
func (s *Session) Goto(step int) error {
	if step < FirstStep || step > LastStep {
		return fmt.Errorf("%w: %d", ErrInvalidStep, step)
	}
	s.setStep(step)
	return nil
}

// SelectStar records a click on the star at index (0 based): the rating becomes index+1
// whatever it was before.
func (s *Session) SelectStar(index int) error {
	if index < 0 || index >= MaxRating {
		return fmt.Errorf("%w: %d", ErrInvalidStar, index)
	}
	s.rating = index + 1
	return nil
}

func (s *Session) ResetRating() {
	s.rating = 0
}

// Progress returns the percentage shown by the progress bar.
func (s *Session) Progress() int {
	return s.step * 100 / Pages
}

// NavBar lists the pages of the navigation bar. Landing is reachable only through Back.
func (s *Session) NavBar() []NavLink {
	links := make([]NavLink, 0, Pages)
	for step := StepHome; step <= LastStep; step++ {
		links = append(links, NavLink{Step: step, Name: pageMap[step], Active: step == s.step})
	}
	return links
}

func (s *Session) setStep(step int) {
	s.step = step
	s.page = pageMap[step]
}
