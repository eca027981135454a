// Package progress reconciles a declarative weekly study plan with the
// submission history of its owner. Everything here is pure: callers supply
// the plan, the submissions and the current instant, and get derived state
// back. Nothing is cached; evaluating again with new inputs is always safe.
package progress

import (
	"fmt"
	"strings"
	"time"
)

type Plan struct {
	StartDate time.Time
	Weeks     []WeeklyPlan
}

// ValidationError lists every problem found in a plan.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid learning plan: " + strings.Join(e.Problems, "; ")
}

// Validate checks the invariants the expander relies on.
func (p Plan) Validate() error {
	var problems []string
	if p.StartDate.IsZero() {
		problems = append(problems, "startDate is required")
	}
	if len(p.Weeks) == 0 {
		problems = append(problems, "weeklyPlans must not be empty")
	}
	for i, wp := range p.Weeks {
		if wp.Week != i+1 {
			problems = append(problems, fmt.Sprintf("weeklyPlans[%d]: week is %d, want %d", i, wp.Week, i+1))
		}
		seen := make(map[int]bool, len(wp.StudyDays))
		for _, d := range wp.StudyDays {
			if d < 0 || d > 6 {
				problems = append(problems, fmt.Sprintf("week %d: study day %d out of range 0-6", i+1, d))
				continue
			}
			if seen[d] {
				problems = append(problems, fmt.Sprintf("week %d: duplicate study day %d", i+1, d))
			}
			seen[d] = true
		}
		if wp.SessionsPerWeek != len(wp.StudyDays) {
			problems = append(problems, fmt.Sprintf("week %d: sessionsPerWeek %d does not match %d study days", i+1, wp.SessionsPerWeek, len(wp.StudyDays)))
		}
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// Report is the derived state of a plan at one instant.
type Report struct {
	HasPlan  bool           `json:"hasPlan"`
	Sessions []StudySession `json:"sessions"`
	Summary  *Summary       `json:"summary,omitempty"`
}

// Evaluate runs the plan pipeline. now is read once by the caller and fixes
// both "today" and the calendar location; the plan's start date keeps its
// year, month and day in that location. A nil plan, a missing start date or
// an empty week list yield a report with HasPlan false.
func Evaluate(plan *Plan, subs []Submission, now time.Time) Report {
	if plan == nil || plan.StartDate.IsZero() || len(plan.Weeks) == 0 {
		return Report{Sessions: []StudySession{}}
	}

	loc := now.Location()
	start, _ := wallDate(plan.StartDate, loc)
	p := Plan{StartDate: start, Weeks: plan.Weeks}

	sessions := ExpandSessions(p.StartDate, p.Weeks)
	sessions = Classify(sessions, AggregateByWeek(subs, loc), now)
	sum := Summarize(p, sessions, now)

	return Report{HasPlan: true, Sessions: sessions, Summary: &sum}
}

// Sequence runs the assignment pipeline; the completed set is derived from subs.
func Sequence(assignments []Assignment, subs []Submission, now time.Time) AssignmentSequence {
	return SequenceAssignments(assignments, CompletedAssignments(subs), now)
}
