package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/isdelr/fitlog-be/internal/models"
)

// ErrUserNotFound is returned when a lookup matches no user record.
var ErrUserNotFound = errors.New("user not found")

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	CreateUser(username string) (models.User, error)
	GetUserByID(id string) (models.User, error)
	GetAllUsers() ([]models.User, error)
}

// UserService provides business logic for user management.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// CreateUser registers a username, returning the existing record unchanged
// if the name is already taken. Two concurrent calls with the same novel
// name race on the UNIQUE constraint; the loser re-fetches the winner's row
// so both callers see the same record.
func (s *UserService) CreateUser(username string) (models.User, error) {
	existing, err := s.GetUserByUsername(username)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return models.User{}, err
	}

	user := models.User{
		ID:       uuid.New().String(),
		Username: username,
	}

	stmt, err := s.db.Prepare("INSERT INTO users(id, username) VALUES(?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(user.ID, user.Username); err != nil {
		// Lost the race on the unique username; the row now exists.
		if winner, fetchErr := s.GetUserByUsername(username); fetchErr == nil {
			return winner, nil
		}
		return models.User{}, err
	}
	return user, nil
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Username, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, fmt.Errorf("user with ID %s: %w", id, ErrUserNotFound)
		}
		return models.User{}, err
	}
	return user, nil
}

// GetUserByUsername retrieves a single user by exact username match.
func (s *UserService) GetUserByUsername(username string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, created_at FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, fmt.Errorf("user %q: %w", username, ErrUserNotFound)
		}
		return models.User{}, err
	}
	return user, nil
}

// GetAllUsers retrieves every registered user. Order is unspecified.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	rows, err := s.db.Query("SELECT id, username, created_at FROM users")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
