package middleware

import (
	"fmt"
	"time"

	"smartscholar/navigation"
	"smartscholar/planner"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

const SessionCookie = "smartscholar_session"

const (
	keyStep           = "step"
	keyRating         = "rating"
	keyPlanCollege    = "plan_college"
	keyPlanStudy      = "plan_study"
	keyPlanSleep      = "plan_sleep"
	keyPlanDifficulty = "plan_difficulty"
)

// Sessions hands out the per-visitor state kept between requests.
type Sessions struct {
	store *session.Store
}

func NewSessions(expiry time.Duration) *Sessions {
	return &Sessions{store: session.New(session.Config{
		Expiration:     expiry,
		KeyLookup:      "cookie:" + SessionCookie,
		KeyGenerator:   uuid.NewString,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})}
}

// SessionState is one visitor's navigation state and last study planner input.
type SessionState struct {
	Nav  *navigation.Session
	Plan planner.Input

	sess *session.Session
}

// Load returns the state of the visitor behind c, starting a new one when needed.
func (s *Sessions) Load(c *fiber.Ctx) (*SessionState, error) {
	sess, err := s.store.Get(c)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	step, _ := sess.Get(keyStep).(int)
	rating, _ := sess.Get(keyRating).(int)
	state := &SessionState{
		Nav:  navigation.Restore(step, rating),
		sess: sess,
	}
	state.Plan.CollegeHours, _ = sess.Get(keyPlanCollege).(float64)
	state.Plan.StudyHours, _ = sess.Get(keyPlanStudy).(float64)
	state.Plan.SleepHours, _ = sess.Get(keyPlanSleep).(float64)
	if d, ok := sess.Get(keyPlanDifficulty).(string); ok {
		state.Plan.Difficulty = planner.Difficulty(d)
	}
	return state, nil
}

// Save writes the state back and refreshes the session cookie.
func (st *SessionState) Save() error {
	st.sess.Set(keyStep, st.Nav.Step())
	st.sess.Set(keyRating, st.Nav.Rating())
	st.sess.Set(keyPlanCollege, st.Plan.CollegeHours)
	st.sess.Set(keyPlanStudy, st.Plan.StudyHours)
	st.sess.Set(keyPlanSleep, st.Plan.SleepHours)
	st.sess.Set(keyPlanDifficulty, string(st.Plan.Difficulty))
	if err := st.sess.Save(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
