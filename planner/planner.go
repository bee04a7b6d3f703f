// Package planner builds a daily study routine from college, home study and sleep hours.
//
// Every hour is on a 24h clock starting at 08:00 and wraps past midnight. Fractional
// hours are truncated, both when counting one-hour blocks and when printing a time,
// so 2.5h of home study yields one session, a break and one more session.
package planner

import (
	"errors"
	"fmt"
	"math"
)

type Difficulty string

const (
	Easy     Difficulty = "Easy"
	Moderate Difficulty = "Moderate"
	Hard     Difficulty = "Hard"
)

var Difficulties = []Difficulty{Easy, Moderate, Hard}

func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Moderate, Hard:
		return true
	}
	return false
}

var ErrIncompletePlan = errors.New("fill all fields before generating the plan")

const (
	dayStart = 8
	MaxHours = 12
)

// Input is what the user enters on the study planner page.
type Input struct {
	CollegeHours float64    `json:"collegeHours" form:"college_hours"`
	StudyHours   float64    `json:"studyHours" form:"study_hours"`
	SleepHours   float64    `json:"sleepHours" form:"sleep_hours"`
	Difficulty   Difficulty `json:"difficulty" form:"difficulty"`
}

// Ready reports whether a plan can be generated: some home study, some sleep and a
// chosen difficulty. College hours may be zero.
func (in Input) Ready() bool {
	return in.StudyHours > 0 && in.SleepHours > 0 && in.Difficulty.Valid()
}

type BlockKind string

const (
	KindCollege        BlockKind = "college"
	KindStudy          BlockKind = "study"
	KindBreak          BlockKind = "break"
	KindPractice       BlockKind = "practice"
	KindRecommendation BlockKind = "recommendation"
	KindSleep          BlockKind = "sleep"
)

var icons = map[BlockKind]string{
	KindCollege:  "🎓",
	KindStudy:    "📖",
	KindBreak:    "☕",
	KindPractice: "📝",
	KindSleep:    "🛌",
}

// Block is one line of the routine. Recommendation blocks have no time range.
type Block struct {
	Kind  BlockKind `json:"kind"`
	Start int       `json:"start"`
	End   int       `json:"end"`
	Label string    `json:"label"`
}

func (b Block) String() string {
	if b.Kind == KindRecommendation {
		return b.Label
	}
	return fmt.Sprintf("%02d:00 - %02d:00 ➝ %s %s", b.Start, b.End, icons[b.Kind], b.Label)
}

var recommendations = map[Difficulty]string{
	Easy:     "Before bed ➝ 1 hour Revision.",
	Moderate: "Before bed ➝ 1.5 hours Problem Solving + Revision.",
	Hard:     "Before bed ➝ 2 hours Deep Study + Mock Tests.",
}

// Options tune hour handling. The zero value truncates fractional hours.
type Options struct {
	RoundHours bool
}

// Generate returns the routine for in using the default options.
func Generate(in Input) ([]Block, error) {
	return Options{}.Generate(in)
}

func (o Options) normalize(in Input) Input {
	if o.RoundHours {
		in.CollegeHours = math.Round(in.CollegeHours)
		in.StudyHours = math.Round(in.StudyHours)
		in.SleepHours = math.Round(in.SleepHours)
	}
	return in
}

// Ready reports whether Generate would accept in under these options.
func (o Options) Ready(in Input) bool {
	return o.normalize(in).Ready()
}

func (o Options) Generate(in Input) ([]Block, error) {
	in = o.normalize(in)
	if !in.Ready() {
		return nil, ErrIncompletePlan
	}

	var plan []Block
	clock := float64(dayStart)

	sleepStart := math.Mod(24-in.SleepHours+dayStart, 24)
	sleepEnd := math.Mod(sleepStart+in.SleepHours, 24)
	sleep := Block{Kind: KindSleep, Start: hour(sleepStart), End: hour(sleepEnd), Label: "Sleep"}

	if in.CollegeHours > 0 {
		plan = append(plan, Block{Kind: KindCollege, Start: hour(clock), End: hour(clock + in.CollegeHours), Label: "College"})
		clock += in.CollegeHours
	}

	firstHalf := math.Floor(in.StudyHours / 2)
	for i := 0; i < int(firstHalf); i++ {
		plan = append(plan, oneHour(KindStudy, clock, "Study Session"))
		clock++
	}

	if in.StudyHours > 2 {
		plan = append(plan, oneHour(KindBreak, clock, "Break/Relax"))
		clock++
	}

	secondHalf := int(in.StudyHours - firstHalf)
	for i := 0; i < secondHalf; i++ {
		plan = append(plan, oneHour(KindPractice, clock, "Study Session"))
		clock++
	}

	plan = append(plan, Block{Kind: KindRecommendation, Label: recommendations[in.Difficulty]})
	plan = append(plan, sleep)

	return plan, nil
}

// Lines renders a plan the way it is shown to the user.
func Lines(plan []Block) []string {
	lines := make([]string, len(plan))
	for i, b := range plan {
		lines[i] = b.String()
	}
	return lines
}

func oneHour(kind BlockKind, clock float64, label string) Block {
	start := hour(clock)
	return Block{Kind: kind, Start: start, End: (start + 1) % 24, Label: label}
}

// hour truncates a clock reading to its whole hour on the 24h dial.
func hour(clock float64) int {
	return int(clock) % 24
}
