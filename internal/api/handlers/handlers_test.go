package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/fitlog-be/internal/models"
	"github.com/isdelr/fitlog-be/internal/query"
)

// Shared fixtures for handler tests. Mocks use the function-fields pattern:
// a nil field falls back to a benign default.

const testUserID = "0b28e168-98d2-4dd3-b56a-62d8bbbd0ac6"

var testUser = models.User{ID: testUserID, Username: "alice"}

type mockUserService struct {
	createFn  func(username string) (models.User, error)
	getByIDFn func(id string) (models.User, error)
	getAllFn  func() ([]models.User, error)
}

func (m *mockUserService) CreateUser(username string) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(username)
	}
	return models.User{ID: testUserID, Username: username}, nil
}

func (m *mockUserService) GetUserByID(id string) (models.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return testUser, nil
}

func (m *mockUserService) GetAllUsers() ([]models.User, error) {
	if m.getAllFn != nil {
		return m.getAllFn()
	}
	return []models.User{testUser}, nil
}

type mockExerciseService struct {
	addFn  func(userID, description string, duration int, date time.Time) (models.Exercise, error)
	logsFn func(filter query.LogFilter, opts query.LogOptions) (models.LogResult, error)

	addCalls  int
	logsCalls int
}

func (m *mockExerciseService) AddExercise(userID, description string, duration int, date time.Time) (models.Exercise, error) {
	m.addCalls++
	if m.addFn != nil {
		return m.addFn(userID, description, duration, date)
	}
	return models.Exercise{
		ID: "e1", UserID: userID, Description: description, Duration: duration, Date: date,
	}, nil
}

func (m *mockExerciseService) GetLogs(filter query.LogFilter, opts query.LogOptions) (models.LogResult, error) {
	m.logsCalls++
	if m.logsFn != nil {
		return m.logsFn(filter, opts)
	}
	return models.LogResult{}, nil
}

// withURLParam attaches a chi route parameter to the request context so
// handlers can be exercised without a full router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
