package handlers

import (
	"context"
	"net/http"
	"time"

	"smartcloth/internal/engine"
	"smartcloth/internal/models"
	"smartcloth/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockDevice struct {
	pressErr  error
	scaleErr  error
	lastPress service.ButtonParams
	lastScale service.ScaleParams
	presses   int
	scales    int
}

func (m *mockDevice) Press(_ context.Context, p service.ButtonParams) error {
	m.presses++
	m.lastPress = p
	return m.pressErr
}
func (m *mockDevice) SetScale(_ context.Context, p service.ScaleParams) error {
	m.scales++
	m.lastScale = p
	return m.scaleErr
}

type mockMonitoring struct {
	state models.DeviceState
	err   error
	snap  engine.Snapshot
	view  engine.View
	views chan engine.View
}

func (m *mockMonitoring) GetState(context.Context) (models.DeviceState, error) {
	return m.state, m.err
}
func (m *mockMonitoring) Snapshot(context.Context) (engine.Snapshot, error) {
	return m.snap, m.err
}
func (m *mockMonitoring) Display(context.Context) (engine.View, error) {
	return m.view, m.err
}
func (m *mockMonitoring) Subscribe() (<-chan engine.View, func()) {
	return m.views, func() {}
}

type mockInspector struct {
	rules []engine.Rule
	dump  string
}

func (m *mockInspector) Rules() []engine.Rule { return m.rules }
func (m *mockInspector) Dump() string         { return m.dump }

type mockEventLog struct {
	resp     []models.TransitionLog
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(_ context.Context, f service.LogFilter) ([]models.TransitionLog, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

type mockDiary struct {
	meals    []models.Meal
	totals   models.Diary
	err      error
	lastFrom time.Time
	lastTo   time.Time
}

func (m *mockDiary) List(_ context.Context, f service.MealFilter) ([]models.Meal, error) {
	m.lastFrom, m.lastTo = f.From, f.To
	return m.meals, m.err
}
func (m *mockDiary) Totals(_ context.Context, f service.MealFilter) (models.Diary, error) {
	return m.totals, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
