package progress

import (
	"sort"
	"time"
)

type Assignment struct {
	ID              string     `json:"id"`
	AssignmentName  string     `json:"assignmentName"`
	AcademyName     string     `json:"academyName"`
	AssignedUnitIDs []string   `json:"assignedUnitIds"`
	Week            int        `json:"week"`
	DueDate         *time.Time `json:"dueDate,omitempty"`
}

type SequenceState string

const (
	SequenceNoAssignments SequenceState = "no_assignments"
	SequenceAllCompleted  SequenceState = "all_completed"
	SequenceInProgress    SequenceState = "in_progress"
)

// AssignmentStatus carries the display flags of one assignment. Only the next
// assignment is startable; every other unfinished one waits, overdue or not.
type AssignmentStatus struct {
	Assignment
	IsCompleted bool `json:"isCompleted"`
	IsOverdue   bool `json:"isOverdue"`
	IsNext      bool `json:"isNext"`
	IsStartable bool `json:"isStartable"`
	IsWaiting   bool `json:"isWaiting"`
}

type AssignmentSequence struct {
	State SequenceState      `json:"state"`
	Next  *AssignmentStatus  `json:"next,omitempty"`
	Items []AssignmentStatus `json:"items"`
}

// SequenceAssignments orders assignments by week and picks the first one not
// in completed as next. Overdue is derived from the due date and never stored.
func SequenceAssignments(assignments []Assignment, completed map[string]struct{}, now time.Time) AssignmentSequence {
	if len(assignments) == 0 {
		return AssignmentSequence{State: SequenceNoAssignments, Items: []AssignmentStatus{}}
	}

	ordered := make([]Assignment, len(assignments))
	copy(ordered, assignments)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Week < ordered[j].Week
	})

	seq := AssignmentSequence{
		State: SequenceAllCompleted,
		Items: make([]AssignmentStatus, len(ordered)),
	}
	nextIdx := -1
	for i, a := range ordered {
		_, done := completed[a.ID]
		st := AssignmentStatus{
			Assignment:  a,
			IsCompleted: done,
			IsOverdue:   !done && a.DueDate != nil && a.DueDate.Before(now),
		}
		if !done && nextIdx < 0 {
			nextIdx = i
			st.IsNext = true
			st.IsStartable = true
		}
		st.IsWaiting = !done && !st.IsNext
		seq.Items[i] = st
	}

	if nextIdx >= 0 {
		next := seq.Items[nextIdx]
		seq.Next = &next
		seq.State = SequenceInProgress
	}
	return seq
}
