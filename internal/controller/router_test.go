package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/proctorview/proctorview/config"
	"github.com/proctorview/proctorview/internal/auth"
	"github.com/proctorview/proctorview/internal/middleware"
	"github.com/proctorview/proctorview/internal/model"
	"github.com/proctorview/proctorview/internal/repository"
	"github.com/proctorview/proctorview/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var routerDBSeq atomic.Uint64

// newTestRouter wires the full HTTP surface against an in-memory database,
// mirroring the route registration in cmd/main.go.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:ctrl%d?mode=memory&cache=shared", routerDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Admin{},
		&model.User{},
		&model.Test{},
		&model.UserTest{},
		&model.Activity{},
	))

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "testsecret"
	cfg.Auth.TokenTTL = 1
	cfg.Session.AllowMultipleAttempts = true
	tokens, err := auth.NewJWTManager(cfg)
	require.NoError(t, err)

	adminRepo := repository.NewAdminRepository(db)
	userRepo := repository.NewUserRepository(db)
	testRepo := repository.NewTestRepository(db)
	userTestRepo := repository.NewUserTestRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	authCtrl := NewAuthController(service.NewAuthService(adminRepo, tokens))
	adminCtrl := NewAdminController(service.NewAdminService(adminRepo))
	testCtrl := NewTestController(service.NewTestService(testRepo, userTestRepo, activityRepo))
	userCtrl := NewUserController(service.NewUserService(userRepo))
	sessionCtrl := NewSessionController(service.NewSessionService(userTestRepo, userRepo, testRepo, cfg))
	activityCtrl := NewActivityController(service.NewActivityService(activityRepo, userTestRepo))

	router := gin.New()
	router.POST("/auth/signup", authCtrl.Signup)
	router.POST("/auth/login", authCtrl.Login)

	api := router.Group("/api")
	api.GET("/admins/:id", adminCtrl.GetAdmin)
	api.POST("/admins", adminCtrl.CreateAdmin)
	api.POST("/tests", middleware.RequireAuth(tokens, adminRepo), testCtrl.CreateTest)
	api.GET("/tests/activeTests", testCtrl.ListActiveTests)
	api.GET("/tests/activeTestsCnt", testCtrl.CountActiveTests)
	api.GET("/tests/active/:adminId", testCtrl.ListActiveTestsByAdmin)
	api.GET("/tests/:id", testCtrl.GetTest)
	api.GET("/tests/:id/users", testCtrl.ListTestUsers)
	api.GET("/tests/:id/alerts", testCtrl.ListTestAlerts)
	api.POST("/users", userCtrl.CreateUser)
	api.GET("/users/count", userCtrl.CountUsers)
	api.GET("/users/:id", userCtrl.GetUser)
	api.POST("/userTests", sessionCtrl.CreateSession)
	api.GET("/activities", activityCtrl.ListActivities)
	api.POST("/activities", activityCtrl.CreateActivity)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestSignupLoginScenario(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/signup", "", gin.H{
		"name": "A", "email": "a@x.com", "password": "p1secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode(t, rec)["token"])

	// Duplicate email keeps the original client contract: 400, not 409.
	rec = doJSON(t, router, http.MethodPost, "/auth/signup", "", gin.H{
		"name": "A", "email": "a@x.com", "password": "p1secret",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "conflict", decode(t, rec)["code"])

	rec = doJSON(t, router, http.MethodPost, "/auth/login", "", gin.H{
		"email": "a@x.com", "password": "p1secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "success", body["message"])
	assert.NotEmpty(t, body["token"])
	admin, ok := body["admin"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", admin["email"])

	rec = doJSON(t, router, http.MethodPost, "/auth/login", "", gin.H{
		"email": "a@x.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateTestRequiresBearerToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/signup", "", gin.H{
		"name": "A", "email": "a@x.com", "password": "p1secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	token := decode(t, rec)["token"].(string)

	rec = doJSON(t, router, http.MethodPost, "/api/tests", "", gin.H{"url": "http://t", "name": "T1"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/tests", "garbage", gin.H{"url": "http://t", "name": "T1"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/tests", token, gin.H{"url": "http://t", "name": "T1"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created, ok := decode(t, rec)["test"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, created["is_active"])
	assert.Equal(t, "T1", created["name"])
}

func TestParticipantSessionActivityFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/signup", "", gin.H{
		"name": "A", "email": "a@x.com", "password": "p1secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	token := decode(t, rec)["token"].(string)

	rec = doJSON(t, router, http.MethodPost, "/api/tests", token, gin.H{"url": "http://t", "name": "T5"})
	require.Equal(t, http.StatusCreated, rec.Code)
	testID := decode(t, rec)["test"].(map[string]any)["id"].(float64)

	for _, user := range []gin.H{
		{"id": 1, "name": "U1", "branch": "CSE"},
		{"id": 2, "name": "U2", "branch": "ECE"},
	} {
		rec = doJSON(t, router, http.MethodPost, "/api/users", "", user)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	for _, userID := range []int{1, 2} {
		rec = doJSON(t, router, http.MethodPost, "/api/userTests", "", gin.H{
			"user_id": userID, "test_id": testID, "user_location": "lab-1",
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// Session against a missing test is rejected before anything is written.
	rec = doJSON(t, router, http.MethodPost, "/api/userTests", "", gin.H{"user_id": 1, "test_id": 999})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	path := fmt.Sprintf("/api/tests/%.0f/users", testID)
	rec = doJSON(t, router, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	users, ok := decode(t, rec)["users"].([]any)
	require.True(t, ok)
	require.Len(t, users, 2)
	assert.Equal(t, float64(1), users[0].(map[string]any)["id"])
	assert.Equal(t, float64(2), users[1].(map[string]any)["id"])

	rec = doJSON(t, router, http.MethodPost, "/api/activities", "", gin.H{
		"user_test_id": 1, "time_issue": "2025-03-14T09:26:53Z", "type": "tab-switch",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/activities", "", gin.H{
		"user_test_id": 1, "time_issue": "not a time", "type": "tab-switch",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/activities", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/tests/activeTestsCnt", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["count"])

	rec = doJSON(t, router, http.MethodGet, "/api/users/count", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decode(t, rec)["count"])
}

func TestGetEndpointsNotFoundAndBadRequest(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/admins/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/tests/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/users/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/tests/active/banana", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decode(t, rec)["code"])
}
