package progress

import "time"

// ClassifySession decides one session's status. Completion wins over lateness:
// a session whose ordinal is covered by the week's completions is completed
// even when its date has passed.
func ClassifySession(s StudySession, completedInWeek int, cutoff time.Time) SessionStatus {
	switch {
	case s.Session <= completedInWeek:
		return StatusCompleted
	case s.Date.Before(cutoff):
		return StatusMissed
	default:
		return StatusPending
	}
}

// Classify returns a copy of sessions with every status set. Sessions dated
// before the end of now's calendar day count as missed unless completed.
func Classify(sessions []StudySession, counts WeekCounts, now time.Time) []StudySession {
	cutoff := EndOfDay(now)
	out := make([]StudySession, len(sessions))
	for i, s := range sessions {
		s.Status = ClassifySession(s, counts[WeekKeyOf(s.Date)], cutoff)
		out[i] = s
	}
	return out
}
