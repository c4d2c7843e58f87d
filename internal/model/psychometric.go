package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/protomem/licensing/internal/validator"
)

const (
	PassingScore = 70.0
	MinScore     = 0.0
	MaxScore     = 100.0

	_scoreCount = 5
)

type TestResult string

const (
	TestResultPassed TestResult = "PASSED"
	TestResultFailed TestResult = "FAILED"
)

// Scores holds the five sub-scores of an assessment, each in [0, 100].
type Scores struct {
	Reaction      float64 `json:"reaction" db:"reaction"`
	Attention     float64 `json:"attention" db:"attention"`
	Coordination  float64 `json:"coordination" db:"coordination"`
	Perception    float64 `json:"perception" db:"perception"`
	Psychological float64 `json:"psychological" db:"psychological"`
}

// Validate stops at the first sub-score outside [0, 100].
func (s Scores) Validate() error {
	for _, sc := range s.named() {
		if !validator.InRange(sc.value, MinScore, MaxScore) {
			return NewInvalidDataError(sc.name, fmt.Sprintf("score must be between %.1f and %.1f", MinScore, MaxScore))
		}
	}
	return nil
}

func (s Scores) Average() float64 {
	return (s.Reaction + s.Attention + s.Coordination + s.Perception + s.Psychological) / _scoreCount
}

type namedScore struct {
	name  string
	label string
	value float64
}

func (s Scores) named() []namedScore {
	return []namedScore{
		{"reaction", "Reaction", s.Reaction},
		{"attention", "Attention", s.Attention},
		{"coordination", "Coordination", s.Coordination},
		{"perception", "Perception", s.Perception},
		{"psychological", "Psychological", s.Psychological},
	}
}

type PsychometricTest struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	DriverID ID `json:"driverId" db:"driver_id"`
	Scores
	TakenAt time.Time `json:"takenAt" db:"taken_at"`
	Notes   string    `json:"notes" db:"notes"`
}

// NewPsychometricTest validates the scores and stamps takenAt with now when it is zero.
func NewPsychometricTest(driverID ID, scores Scores, takenAt time.Time) (PsychometricTest, error) {
	if err := scores.Validate(); err != nil {
		return PsychometricTest{}, err
	}
	if takenAt.IsZero() {
		takenAt = time.Now()
	}
	return PsychometricTest{
		DriverID: driverID,
		Scores:   scores,
		TakenAt:  takenAt,
	}, nil
}

func (t PsychometricTest) Passed() bool {
	return t.Average() >= PassingScore
}

func (t PsychometricTest) Result() TestResult {
	if t.Passed() {
		return TestResultPassed
	}
	return TestResultFailed
}

func (t PsychometricTest) Report() string {
	var b strings.Builder

	b.WriteString("PSYCHOMETRIC TEST REPORT\n")
	fmt.Fprintf(&b, "Taken at: %s\n", t.TakenAt.Format("2006-01-02 15:04"))
	for _, sc := range t.named() {
		fmt.Fprintf(&b, "%s: %.2f\n", sc.label, sc.value)
	}
	fmt.Fprintf(&b, "Average: %.2f\n", t.Average())
	fmt.Fprintf(&b, "Result: %s\n", t.Result())
	if t.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", t.Notes)
	}

	return b.String()
}
