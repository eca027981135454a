package progress

import (
	"strconv"
	"strings"
	"time"
)

type MotivationalState string

const (
	StateCelebratory    MotivationalState = "celebratory"
	StateUrgency        MotivationalState = "urgency"
	StateWeeklySuccess  MotivationalState = "weekly_success"
	StateSteadyProgress MotivationalState = "steady_progress"
)

// MissedPlaceholder is replaced by the missed session count when a message is rendered.
const MissedPlaceholder = "{missed}"

var DefaultMessages = map[MotivationalState]string{
	StateCelebratory:    "You completed every session in your plan. Outstanding work!",
	StateUrgency:        "You have {missed} missed sessions. Catch up today to get back on track.",
	StateWeeklySuccess:  "This week's sessions are all done. Keep the momentum going!",
	StateSteadyProgress: "Steady progress wins. Take on your next session when it's due.",
}

// MotivationalStates returns the states in selection priority order.
func MotivationalStates() []MotivationalState {
	return []MotivationalState{StateCelebratory, StateUrgency, StateWeeklySuccess, StateSteadyProgress}
}

func (s MotivationalState) Valid() bool {
	_, ok := DefaultMessages[s]
	return ok
}

type Motivation struct {
	State       MotivationalState `json:"state"`
	MissedCount int               `json:"missedCount,omitempty"`
}

// Render fills template with the motivation's parameters. An empty template
// falls back to the state's default message.
func (m Motivation) Render(template string) string {
	if template == "" {
		template = DefaultMessages[m.State]
	}
	return strings.ReplaceAll(template, MissedPlaceholder, strconv.Itoa(m.MissedCount))
}

// SelectMotivation applies the state rules in priority order: a finished plan
// is never shown as behind, and backlog from earlier weeks is not hidden by a
// completed current week.
func SelectMotivation(isAllCompleted bool, missed int, currentWeek []StudySession) Motivation {
	switch {
	case isAllCompleted:
		return Motivation{State: StateCelebratory}
	case missed > 0:
		return Motivation{State: StateUrgency, MissedCount: missed}
	case len(currentWeek) > 0 && allCompleted(currentWeek):
		return Motivation{State: StateWeeklySuccess}
	default:
		return Motivation{State: StateSteadyProgress}
	}
}

type WeekProgress struct {
	Week      int       `json:"week"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	UnitNames []string  `json:"unitNames"`
	Scheduled int       `json:"scheduled"`
	Completed int       `json:"completed"`
	Missed    int       `json:"missed"`
	Pending   int       `json:"pending"`
}

type Summary struct {
	TotalWeeks          int            `json:"totalWeeks"`
	TotalSessions       int            `json:"totalSessions"`
	CompletedSessions   int            `json:"completedSessionsCount"`
	MissedSessionsCount int            `json:"missedSessionsCount"`
	PendingSessions     int            `json:"pendingSessionsCount"`
	IsAllCompleted      bool           `json:"isAllCompleted"`
	CompletionRate      float64        `json:"completionRate"`
	CurrentWeekSessions []StudySession `json:"currentWeekSessions"`
	NextSession         *StudySession  `json:"nextSession,omitempty"`
	Weeks               []WeekProgress `json:"weeks"`
	Motivation          Motivation     `json:"motivation"`
}

// Summarize derives plan totals from classified sessions.
func Summarize(plan Plan, sessions []StudySession, now time.Time) Summary {
	sum := Summary{
		TotalWeeks:          len(plan.Weeks),
		TotalSessions:       len(sessions),
		CurrentWeekSessions: []StudySession{},
	}

	anchor := WeekStart(plan.StartDate)
	sum.Weeks = make([]WeekProgress, len(plan.Weeks))
	for i, wp := range plan.Weeks {
		start := anchor.AddDate(0, 0, 7*i)
		sum.Weeks[i] = WeekProgress{
			Week:      i + 1,
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 6),
			UnitNames: wp.UnitNames,
		}
	}

	today := WeekKeyOf(now)
	for _, s := range sessions {
		var wk *WeekProgress
		if s.Week >= 1 && s.Week <= len(sum.Weeks) {
			wk = &sum.Weeks[s.Week-1]
			wk.Scheduled++
		}
		switch s.Status {
		case StatusCompleted:
			sum.CompletedSessions++
			if wk != nil {
				wk.Completed++
			}
		case StatusMissed:
			sum.MissedSessionsCount++
			if wk != nil {
				wk.Missed++
			}
		default:
			sum.PendingSessions++
			if wk != nil {
				wk.Pending++
			}
			if sum.NextSession == nil || s.Date.Before(sum.NextSession.Date) {
				next := s
				sum.NextSession = &next
			}
		}
		if WeekKeyOf(s.Date) == today {
			sum.CurrentWeekSessions = append(sum.CurrentWeekSessions, s)
		}
	}

	sum.IsAllCompleted = len(sessions) > 0 && sum.CompletedSessions == len(sessions)
	if len(sessions) > 0 {
		sum.CompletionRate = float64(sum.CompletedSessions) / float64(len(sessions))
	}
	sum.Motivation = SelectMotivation(sum.IsAllCompleted, sum.MissedSessionsCount, sum.CurrentWeekSessions)
	return sum
}

func allCompleted(sessions []StudySession) bool {
	for _, s := range sessions {
		if s.Status != StatusCompleted {
			return false
		}
	}
	return true
}
