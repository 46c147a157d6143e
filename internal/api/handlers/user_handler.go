package handlers

import (
	"net/http"
	"net/url"

	"github.com/isdelr/fitlog-be/internal/models"
	"github.com/isdelr/fitlog-be/internal/services"
	"github.com/isdelr/fitlog-be/internal/validate"
	"github.com/rs/zerolog/log"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	service services.UserServiceProvider
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider) *UserHandler {
	return &UserHandler{service: service}
}

// CreateUserPayload defines the structure for user creation requests.
type CreateUserPayload struct {
	Username flexString `json:"username"`
}

func (p *CreateUserPayload) fromForm(v url.Values) {
	p.Username = flexString(v.Get("username"))
}

// Create handles new user registration. Registering an existing username
// returns the existing record rather than erroring.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload CreateUserPayload
	if err := decodeBody(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "Username is required")
		return
	}

	username, err := validate.RequiredString(string(payload.Username))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Username is required")
		return
	}

	user, err := h.service.CreateUser(username)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("Failed to create user")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// GetAll handles the request to list every registered user.
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	if users == nil {
		users = []models.User{}
	}
	respondJSON(w, http.StatusOK, users)
}
