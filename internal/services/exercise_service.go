package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/isdelr/fitlog-be/internal/models"
	"github.com/isdelr/fitlog-be/internal/query"
)

// ExerciseServiceProvider defines the interface for exercise services.
type ExerciseServiceProvider interface {
	AddExercise(userID, description string, duration int, date time.Time) (models.Exercise, error)
	GetLogs(filter query.LogFilter, opts query.LogOptions) (models.LogResult, error)
}

// ExerciseService provides business logic for exercise log entries.
type ExerciseService struct {
	db *sql.DB
}

// NewExerciseService creates a new ExerciseService.
func NewExerciseService(db *sql.DB) *ExerciseService {
	return &ExerciseService{db: db}
}

// AddExercise persists a new log entry for the given user. The caller has
// already validated that the user exists and that the fields are well formed.
func (s *ExerciseService) AddExercise(userID, description string, duration int, date time.Time) (models.Exercise, error) {
	exercise := models.Exercise{
		ID:          uuid.New().String(),
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        date.UTC(),
	}

	stmt, err := s.db.Prepare("INSERT INTO exercises(id, user_id, description, duration, date) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return models.Exercise{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(exercise.ID, exercise.UserID, exercise.Description, exercise.Duration, exercise.Date); err != nil {
		return models.Exercise{}, err
	}
	return exercise, nil
}

// GetLogs returns the entries matching the filter, date ascending, capped by
// the options' limit. Count is computed by a separate query over the same
// filter and ignores the limit, so it is the total match count even when
// fewer rows are returned.
func (s *ExerciseService) GetLogs(filter query.LogFilter, opts query.LogOptions) (models.LogResult, error) {
	where, whereArgs := filter.WhereClause()

	var result models.LogResult
	row := s.db.QueryRow("SELECT COUNT(*) FROM exercises WHERE "+where, whereArgs...)
	if err := row.Scan(&result.Count); err != nil {
		return models.LogResult{}, err
	}

	limit, limitArgs := opts.LimitClause()
	stmt := "SELECT description, duration, date FROM exercises WHERE " + where + " ORDER BY date ASC" + limit
	rows, err := s.db.Query(stmt, append(whereArgs, limitArgs...)...)
	if err != nil {
		return models.LogResult{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry models.LogEntry
		if err := rows.Scan(&entry.Description, &entry.Duration, &entry.Date); err != nil {
			return models.LogResult{}, err
		}
		result.Entries = append(result.Entries, entry)
	}
	return result, rows.Err()
}
