package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/fitlog-be/internal/query"
	"github.com/isdelr/fitlog-be/internal/services"
	"github.com/isdelr/fitlog-be/internal/validate"
	"github.com/rs/zerolog/log"
)

// ExerciseHandler handles HTTP requests for exercise log entries.
type ExerciseHandler struct {
	users     services.UserServiceProvider
	exercises services.ExerciseServiceProvider
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(users services.UserServiceProvider, exercises services.ExerciseServiceProvider) *ExerciseHandler {
	return &ExerciseHandler{users: users, exercises: exercises}
}

// ExercisePayload defines the structure for add-exercise requests. Duration
// and date arrive as strings so that both form bodies and loosely-typed
// JSON clients are accepted.
type ExercisePayload struct {
	Description flexString `json:"description"`
	Duration    flexString `json:"duration"`
	Date        flexString `json:"date"`
}

func (p *ExercisePayload) fromForm(v url.Values) {
	p.Description = flexString(v.Get("description"))
	p.Duration = flexString(v.Get("duration"))
	p.Date = flexString(v.Get("date"))
}

// ExerciseResponse echoes the stored entry together with its owner.
type ExerciseResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// Add handles attaching a new exercise entry to a user.
func (h *ExerciseHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if err := validate.UserID(userID); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var payload ExercisePayload
	if err := decodeBody(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "Description and duration are required")
		return
	}

	description, err := validate.RequiredString(string(payload.Description))
	if err != nil || strings.TrimSpace(string(payload.Duration)) == "" {
		respondError(w, http.StatusBadRequest, "Description and duration are required")
		return
	}

	user, err := h.users.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to look up user")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	date, err := validate.Date(string(payload.Date), time.Now().UTC())
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	duration, err := validate.LenientInt(string(payload.Duration))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid duration")
		return
	}

	exercise, err := h.exercises.AddExercise(user.ID, description, duration, date)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to add exercise")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, ExerciseResponse{
		ID:          user.ID,
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date.Format(dateLayout),
	})
}

// LogEntryResponse is one row of a log listing.
type LogEntryResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogsResponse is the full get-logs reply. Count is the total number of
// matches for the date filter and does not shrink when a limit caps Log.
type LogsResponse struct {
	ID       string             `json:"id"`
	Username string             `json:"username"`
	Count    int                `json:"count"`
	Log      []LogEntryResponse `json:"log"`
}

// GetLogs handles the filtered, optionally capped retrieval of a user's
// exercise log.
func (h *ExerciseHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if err := validate.UserID(userID); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.users.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to look up user")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	// All query parameters are validated before any exercise row is read.
	filter := query.LogFilter{UserID: user.ID}
	if from := r.URL.Query().Get("from"); from != "" {
		t, err := validate.Date(from, time.Time{})
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid from date")
			return
		}
		filter.From = &t
	}
	if to := r.URL.Query().Get("to"); to != "" {
		t, err := validate.Date(to, time.Time{})
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid to date")
			return
		}
		filter.To = &t
	}

	var opts query.LogOptions
	if limit := r.URL.Query().Get("limit"); limit != "" {
		n, err := validate.LenientInt(limit)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		opts.Limit = &n
	}

	result, err := h.exercises.GetLogs(filter, opts)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to fetch logs")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	entries := make([]LogEntryResponse, 0, len(result.Entries))
	for _, e := range result.Entries {
		entries = append(entries, LogEntryResponse{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date.Format(dateLayout),
		})
	}

	respondJSON(w, http.StatusOK, LogsResponse{
		ID:       user.ID,
		Username: user.Username,
		Count:    result.Count,
		Log:      entries,
	})
}
