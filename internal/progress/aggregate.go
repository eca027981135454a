package progress

import "time"

// WeekKey identifies an ISO week. The year is kept so multi-year histories do not collide.
type WeekKey struct {
	Year int
	Week int
}

func WeekKeyOf(t time.Time) WeekKey {
	y, w := t.ISOWeek()
	return WeekKey{Year: y, Week: w}
}

// Submission is the part of a quiz submission the engine reads.
type Submission struct {
	CreatedAt    time.Time
	AssignmentID string
}

// WeekCounts maps an ISO week to the number of submissions made in it.
type WeekCounts map[WeekKey]int

// AggregateByWeek counts submissions per ISO week of their creation day in loc.
// Which day of the week a submission falls on does not matter.
func AggregateByWeek(subs []Submission, loc *time.Location) WeekCounts {
	if loc == nil {
		loc = time.UTC
	}
	counts := make(WeekCounts)
	for _, s := range subs {
		if s.CreatedAt.IsZero() {
			continue
		}
		counts[WeekKeyOf(s.CreatedAt.In(loc))]++
	}
	return counts
}

// CompletedAssignments is the set of assignment ids referenced by subs.
func CompletedAssignments(subs []Submission) map[string]struct{} {
	set := make(map[string]struct{})
	for _, s := range subs {
		if s.AssignmentID != "" {
			set[s.AssignmentID] = struct{}{}
		}
	}
	return set
}
