package progress

import (
	"testing"
	"time"
)

func TestExpandSessionsDates(t *testing.T) {
	weeks := []WeeklyPlan{
		{Week: 1, SessionsPerWeek: 3, StudyDays: []int{5, 1, 3}},
		{Week: 2, SessionsPerWeek: 2, StudyDays: []int{6, 0}},
	}
	got := ExpandSessions(day(2024, time.January, 3), weeks)

	want := []StudySession{
		{Date: day(2024, time.January, 1), Week: 1, Session: 1, DayOfWeek: "Monday"},
		{Date: day(2024, time.January, 3), Week: 1, Session: 2, DayOfWeek: "Wednesday"},
		{Date: day(2024, time.January, 5), Week: 1, Session: 3, DayOfWeek: "Friday"},
		{Date: day(2024, time.January, 14), Week: 2, Session: 1, DayOfWeek: "Sunday"},
		{Date: day(2024, time.January, 13), Week: 2, Session: 2, DayOfWeek: "Saturday"},
	}
	if len(got) != len(want) {
		t.Fatalf("len: got=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Date.Equal(want[i].Date) || got[i].Week != want[i].Week ||
			got[i].Session != want[i].Session || got[i].DayOfWeek != want[i].DayOfWeek {
			t.Fatalf("session %d: got=%+v want=%+v", i, got[i], want[i])
		}
		if got[i].Status != "" {
			t.Fatalf("session %d: status should be unset, got %q", i, got[i].Status)
		}
	}
}

func TestExpandSessionsSundayAnchor(t *testing.T) {
	got := ExpandSessions(day(2024, time.January, 7), []WeeklyPlan{{Week: 1, SessionsPerWeek: 1, StudyDays: []int{1}}})
	if len(got) != 1 || !got[0].Date.Equal(day(2024, time.January, 1)) {
		t.Fatalf("sunday anchor belongs to the week starting the Monday before: %+v", got)
	}
}

func TestExpandSessionsCountsAndOrdinals(t *testing.T) {
	weeks := []WeeklyPlan{
		{Week: 1, SessionsPerWeek: 0},
		{Week: 2, SessionsPerWeek: 7, StudyDays: []int{6, 5, 4, 3, 2, 1, 0}},
		{Week: 3, SessionsPerWeek: 1, StudyDays: []int{4}},
		{Week: 4, SessionsPerWeek: 4, StudyDays: []int{2, 0, 6, 4}},
	}
	sessions := ExpandSessions(day(2024, time.February, 14), weeks)

	total := 0
	for _, wp := range weeks {
		total += len(wp.StudyDays)
	}
	if len(sessions) != total {
		t.Fatalf("sessions: got=%d want=%d", len(sessions), total)
	}

	byWeek := map[int][]StudySession{}
	for _, s := range sessions {
		byWeek[s.Week] = append(byWeek[s.Week], s)
	}
	for _, wp := range weeks {
		list := byWeek[wp.Week]
		if len(list) != len(wp.StudyDays) {
			t.Fatalf("week %d: got=%d sessions want=%d", wp.Week, len(list), len(wp.StudyDays))
		}
		prevDay := -1
		for i, s := range list {
			if s.Session != i+1 {
				t.Fatalf("week %d: ordinal got=%d want=%d", wp.Week, s.Session, i+1)
			}
			d := int(s.Date.Weekday())
			if d <= prevDay {
				t.Fatalf("week %d: weekday %d not ascending after %d", wp.Week, d, prevDay)
			}
			prevDay = d
			if !WeekStart(s.Date).Equal(day(2024, time.February, 12).AddDate(0, 0, 7*(wp.Week-1))) {
				t.Fatalf("week %d: session %v outside its week", wp.Week, s.Date)
			}
		}
	}
}

func TestNormalizeStudyDays(t *testing.T) {
	got := NormalizeStudyDays([]int{3, 9, 1, 3, -1, 0})
	want := []int{0, 1, 3}
	if len(got) != len(want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got=%v want=%v", got, want)
		}
	}
}

func TestClassifyMonotonicInCompletions(t *testing.T) {
	sessions := ExpandSessions(day(2024, time.January, 1), []WeeklyPlan{
		{Week: 1, SessionsPerWeek: 4, StudyDays: []int{1, 2, 4, 6}},
	})
	now := at(2024, time.January, 4, 12)
	key := WeekKeyOf(day(2024, time.January, 1))

	prev := Classify(sessions, WeekCounts{key: 0}, now)
	for n := 1; n <= 6; n++ {
		cur := Classify(sessions, WeekCounts{key: n}, now)
		for i := range cur {
			if prev[i].Status == StatusCompleted && cur[i].Status != StatusCompleted {
				t.Fatalf("count %d: session %d regressed to %s", n, i+1, cur[i].Status)
			}
		}
		prev = cur
	}
	for _, s := range prev {
		if s.Status != StatusCompleted {
			t.Fatalf("all sessions should be completed, got %s", s.Status)
		}
	}
}

func TestClassifyDoesNotMutateInput(t *testing.T) {
	sessions := ExpandSessions(day(2024, time.January, 1), []WeeklyPlan{{Week: 1, SessionsPerWeek: 1, StudyDays: []int{1}}})
	_ = Classify(sessions, nil, at(2024, time.March, 1, 0))
	if sessions[0].Status != "" {
		t.Fatalf("input mutated: %+v", sessions[0])
	}
}

func TestAggregateByWeek(t *testing.T) {
	subs := []Submission{
		{CreatedAt: at(2024, time.January, 1, 0)},
		{CreatedAt: at(2024, time.January, 7, 23)},
		{CreatedAt: at(2024, time.January, 8, 0)},
		{},
	}
	counts := AggregateByWeek(subs, time.UTC)
	if got := counts[WeekKey{Year: 2024, Week: 1}]; got != 2 {
		t.Fatalf("week 1: got=%d want=2", got)
	}
	if got := counts[WeekKey{Year: 2024, Week: 2}]; got != 1 {
		t.Fatalf("week 2: got=%d want=1", got)
	}
	if len(counts) != 2 {
		t.Fatalf("unexpected keys: %v", counts)
	}

	shifted := AggregateByWeek(subs[1:2], time.FixedZone("UTC+2", 2*3600))
	if got := shifted[WeekKey{Year: 2024, Week: 2}]; got != 1 {
		t.Fatalf("shifted: got=%v", shifted)
	}
}

func TestCompletedAssignments(t *testing.T) {
	set := CompletedAssignments([]Submission{{AssignmentID: "a"}, {}, {AssignmentID: "a"}, {AssignmentID: "b"}})
	if len(set) != 2 {
		t.Fatalf("set: %v", set)
	}
	if _, ok := set["b"]; !ok {
		t.Fatalf("missing b: %v", set)
	}
}
