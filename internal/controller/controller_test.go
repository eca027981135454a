package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"quiz_progress_backend/internal/config"
	"quiz_progress_backend/internal/middleware"
	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/repository"
	"quiz_progress_backend/internal/service"
	"quiz_progress_backend/internal/testutil"
	"quiz_progress_backend/internal/util"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type harness struct {
	t      *testing.T
	router *gin.Engine
}

func newHarness(t *testing.T, now time.Time) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)
	util.RegisterValidators()

	db := testutil.DB(t)
	clock := service.ClockFunc(func() time.Time { return now })
	planRepo := repository.NewPlanRepository(db)
	subRepo := repository.NewSubmissionRepository(db)
	assignRepo := repository.NewAssignmentRepository(db)
	cache := repository.NewCompletionCache(nil, 0)
	profiles, err := service.NewProfileService(repository.NewProfileRepository(db), "UTC")
	require.NoError(t, err)
	motivations := service.NewMotivationService(repository.NewMotivationRepository(db))

	plan := NewPlanController(service.NewPlanService(planRepo))
	prog := NewProgressController(service.NewProgressService(planRepo, subRepo, profiles, motivations, clock))
	subs := NewSubmissionController(service.NewSubmissionService(subRepo, assignRepo, cache, clock))
	assigns := NewAssignmentController(service.NewAssignmentService(assignRepo, subRepo, profiles, cache, clock))
	profile := NewProfileController(profiles)
	motivation := NewMotivationController(motivations)
	health := NewHealthController(db, cache)

	cfg := &config.Config{JWT: config.JWTConfig{Secret: secret}}
	r := gin.New()
	r.GET("/api/health", health.HealthCheck)
	api := r.Group("/api", middleware.AuthMiddleware(cfg))
	api.GET("/learning-plan", plan.GetPlan)
	api.PUT("/learning-plan", plan.SavePlan)
	api.PATCH("/learning-plan/status", plan.UpdateStatus)
	api.GET("/learning-plan/progress", prog.GetProgress)
	api.GET("/learning-plan/current-week", prog.GetCurrentWeek)
	api.POST("/submissions", subs.Create)
	api.GET("/submissions", subs.List)
	api.GET("/assignments", assigns.GetSequence)
	api.GET("/profile", profile.GetProfile)
	api.PUT("/profile", profile.UpdateProfile)
	teacher := api.Group("/teacher", middleware.RoleMiddleware(model.Teacher))
	teacher.GET("/assignments", assigns.List)
	teacher.POST("/assignments", assigns.Create)
	teacher.PUT("/assignments/:id", assigns.Update)
	teacher.DELETE("/assignments/:id", assigns.Delete)
	admin := api.Group("/admin", middleware.RoleMiddleware(model.Admin))
	admin.GET("/motivations", motivation.GetAllTemplates)
	admin.GET("/motivations/:state", motivation.GetTemplate)
	admin.PUT("/motivations/:state", motivation.UpdateTemplate)

	return &harness{t: t, router: r}
}

func (h *harness) do(method, path, userID string, role model.UserRole, body interface{}) (int, envelope) {
	h.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(h.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		tok, err := util.GenerateJWT(userID, role, secret, time.Hour)
		require.NoError(h.t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(h.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func TestHealthCheck(t *testing.T) {
	h := newHarness(t, time.Now())
	code, env := h.do(http.MethodGet, "/api/health", "", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"database":"up"`)
	assert.Contains(t, string(env.Data), `"redis":"disabled"`)
}

func TestPlanLifecycle(t *testing.T) {
	h := newHarness(t, time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC))

	code, _ := h.do(http.MethodGet, "/api/learning-plan", "", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = h.do(http.MethodGet, "/api/learning-plan", "s1", model.Student, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, env := h.do(http.MethodGet, "/api/learning-plan/progress", "s1", model.Student, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"hasPlan":false`)

	code, env = h.do(http.MethodPut, "/api/learning-plan", "s1", model.Student, gin.H{
		"startDate":   "2024-03-04",
		"weeklyPlans": []gin.H{{"week": 1, "studyDays": []int{1, 1}}},
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Message, "studyDays")

	code, _ = h.do(http.MethodPut, "/api/learning-plan", "s1", model.Student, gin.H{
		"startDate":   "2024-03-04",
		"weeklyPlans": []gin.H{{"week": 1, "studyDays": []int{1, 3, 5}, "unitNames": []string{"Fractions"}}},
	})
	require.Equal(t, http.StatusOK, code)

	code, _ = h.do(http.MethodPost, "/api/submissions", "s1", model.Student, gin.H{"score": 88, "quizMode": "practice"})
	require.Equal(t, http.StatusCreated, code)

	code, env = h.do(http.MethodGet, "/api/learning-plan/progress", "s1", model.Student, nil)
	require.Equal(t, http.StatusOK, code)
	var report service.ProgressReport
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.True(t, report.HasPlan)
	require.Len(t, report.Sessions, 3)
	assert.Equal(t, 1, report.Summary.CompletedSessions)
	assert.NotEmpty(t, report.Message)

	code, env = h.do(http.MethodGet, "/api/learning-plan/current-week", "s1", model.Student, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"hasPlan":true`)

	code, _ = h.do(http.MethodPatch, "/api/learning-plan/status", "s1", model.Student, gin.H{"status": "paused"})
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = h.do(http.MethodPatch, "/api/learning-plan/status", "s1", model.Student, gin.H{"status": "inactive"})
	assert.Equal(t, http.StatusOK, code)

	code, env = h.do(http.MethodGet, "/api/submissions?page=1&limit=5", "s1", model.Student, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"total":1`)
}

func TestSubmissionValidation(t *testing.T) {
	h := newHarness(t, time.Now())

	code, _ := h.do(http.MethodPost, "/api/submissions", "s1", model.Student, gin.H{"quizMode": "x"})
	assert.Equal(t, http.StatusBadRequest, code, "score is required")

	code, _ = h.do(http.MethodPost, "/api/submissions", "s1", model.Student, gin.H{"score": 140})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = h.do(http.MethodPost, "/api/submissions", "s1", model.Student, gin.H{"score": 40, "assignmentId": "nope"})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAssignmentsFlow(t *testing.T) {
	h := newHarness(t, time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC))

	code, env := h.do(http.MethodGet, "/api/assignments", "s1", model.Student, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"state":"no_assignments"`)

	code, _ = h.do(http.MethodPost, "/api/teacher/assignments", "s1", model.Student, gin.H{})
	assert.Equal(t, http.StatusForbidden, code)

	code, env = h.do(http.MethodPost, "/api/teacher/assignments", "t1", model.Teacher, gin.H{
		"assignmentName": "Week one", "academyName": "north", "week": 1, "dueDate": "2024-03-10",
	})
	require.Equal(t, http.StatusCreated, code)
	var created model.AcademyAssignment
	require.NoError(t, json.Unmarshal(env.Data, &created))

	code, _ = h.do(http.MethodPut, "/api/profile", "s1", model.Student, gin.H{"academyName": "north", "timezone": "Not/AZone"})
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = h.do(http.MethodPut, "/api/profile", "s1", model.Student, gin.H{"academyName": "north"})
	require.Equal(t, http.StatusOK, code)

	code, env = h.do(http.MethodGet, "/api/assignments", "s1", model.Student, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"state":"in_progress"`)
	assert.Contains(t, string(env.Data), `"isOverdue":true`)

	code, _ = h.do(http.MethodPost, "/api/submissions", "s1", model.Student, gin.H{"score": 100, "assignmentId": created.ID})
	require.Equal(t, http.StatusCreated, code)
	code, env = h.do(http.MethodGet, "/api/assignments", "s1", model.Student, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"state":"all_completed"`)

	code, env = h.do(http.MethodGet, "/api/teacher/assignments?academyName=north", "a1", model.Admin, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), "Week one")

	code, _ = h.do(http.MethodDelete, "/api/teacher/assignments/"+created.ID, "t1", model.Teacher, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = h.do(http.MethodDelete, "/api/teacher/assignments/"+created.ID, "t1", model.Teacher, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestMotivationAdmin(t *testing.T) {
	h := newHarness(t, time.Now())

	code, _ := h.do(http.MethodGet, "/api/admin/motivations", "t1", model.Teacher, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, env := h.do(http.MethodGet, "/api/admin/motivations", "a1", model.Admin, nil)
	require.Equal(t, http.StatusOK, code)
	var all []model.MotivationTemplate
	require.NoError(t, json.Unmarshal(env.Data, &all))
	assert.Len(t, all, 4)

	code, _ = h.do(http.MethodPut, "/api/admin/motivations/gloomy", "a1", model.Admin, gin.H{"content": "whatever"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = h.do(http.MethodPut, "/api/admin/motivations/urgency", "a1", model.Admin, gin.H{"content": "Only {missed} left to catch up"})
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), "Only {missed} left")

	code, env = h.do(http.MethodGet, "/api/admin/motivations/urgency", "a1", model.Admin, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), "Only {missed} left")
}
