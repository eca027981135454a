package service

import (
	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/progress"
	"quiz_progress_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
)

// toEnginePlan returns nil when the stored start date cannot be scheduled.
func toEnginePlan(p *model.LearningPlan, loc *time.Location) *progress.Plan {
	start, ok := progress.NormalizeDate(p.StartDate, loc)
	if !ok {
		logger.Log.Warn("learning plan has no usable start date", zap.String("userId", p.UserID))
		return nil
	}

	weeks := make([]progress.WeeklyPlan, 0, len(p.WeeklyPlans))
	for _, wp := range p.WeeklyPlans {
		days := []int(wp.StudyDays)
		if wp.SessionsPerWeek != len(days) {
			logger.Log.Warn("sessionsPerWeek does not match studyDays, using studyDays",
				zap.String("userId", p.UserID),
				zap.Int("week", wp.Week),
				zap.Int("sessionsPerWeek", wp.SessionsPerWeek),
				zap.Int("studyDays", len(days)),
			)
		}
		weeks = append(weeks, progress.WeeklyPlan{
			Week:            wp.Week,
			SessionsPerWeek: len(days),
			StudyDays:       days,
			UnitIDs:         []string(wp.UnitIDs),
			UnitNames:       []string(wp.UnitNames),
		})
	}
	return &progress.Plan{StartDate: start, Weeks: weeks}
}

func toEngineSubmissions(subs []model.QuizSubmission) []progress.Submission {
	out := make([]progress.Submission, 0, len(subs))
	for _, s := range subs {
		es := progress.Submission{CreatedAt: s.CreatedAt}
		if s.AssignmentID != nil {
			es.AssignmentID = *s.AssignmentID
		}
		out = append(out, es)
	}
	return out
}

// toEngineAssignments turns a due date into the end of that day in loc, so an
// assignment becomes overdue once its due day is over.
func toEngineAssignments(list []model.AcademyAssignment, loc *time.Location) []progress.Assignment {
	out := make([]progress.Assignment, 0, len(list))
	for _, a := range list {
		ea := progress.Assignment{
			ID:              a.ID,
			AssignmentName:  a.AssignmentName,
			AcademyName:     a.AcademyName,
			AssignedUnitIDs: []string(a.AssignedUnitIDs),
			Week:            a.Week,
		}
		if day, ok := progress.NormalizeDate(a.DueDate, loc); ok {
			due := progress.EndOfDay(day)
			ea.DueDate = &due
		}
		out = append(out, ea)
	}
	return out
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
