package progress

import (
	"sort"
	"time"
)

type SessionStatus string

const (
	StatusCompleted SessionStatus = "completed"
	StatusPending   SessionStatus = "pending"
	StatusMissed    SessionStatus = "missed"
)

// WeeklyPlan is one week of a learning plan. StudyDays uses 0 = Sunday .. 6 = Saturday.
type WeeklyPlan struct {
	Week            int      `json:"week"`
	SessionsPerWeek int      `json:"sessionsPerWeek"`
	StudyDays       []int    `json:"studyDays"`
	UnitIDs         []string `json:"unitIds"`
	UnitNames       []string `json:"unitNames"`
}

type StudySession struct {
	Date      time.Time     `json:"date"`
	Week      int           `json:"week"`
	Session   int           `json:"session"`
	DayOfWeek string        `json:"dayOfWeek"`
	Status    SessionStatus `json:"status,omitempty"`
}

// NormalizeStudyDays returns the valid weekday indices of days, deduplicated and sorted ascending.
func NormalizeStudyDays(days []int) []int {
	seen := make(map[int]bool, len(days))
	out := make([]int, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// dayOffset is the distance from Monday in a Monday-first week; Sunday is the last day.
func dayOffset(weekday int) int {
	if weekday == 0 {
		return 6
	}
	return weekday - 1
}

// ExpandSessions lays every weekly plan onto the calendar. Week n starts on
// the Monday n-1 weeks after the Monday of start; a week's position in weeks
// is its week number. Session ordinals follow ascending weekday index.
func ExpandSessions(start time.Time, weeks []WeeklyPlan) []StudySession {
	total := 0
	for _, wp := range weeks {
		total += len(wp.StudyDays)
	}
	sessions := make([]StudySession, 0, total)

	anchor := WeekStart(start)
	for i, wp := range weeks {
		base := anchor.AddDate(0, 0, 7*i)
		for j, day := range NormalizeStudyDays(wp.StudyDays) {
			sessions = append(sessions, StudySession{
				Date:      base.AddDate(0, 0, dayOffset(day)),
				Week:      i + 1,
				Session:   j + 1,
				DayOfWeek: time.Weekday(day).String(),
			})
		}
	}
	return sessions
}
