package store

import (
	"errors"

	"literacy_app_backend/models"
)

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when creating a user with a taken email.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Store is the persistence boundary for users, sessions, the course catalog,
// quiz results and per-user progress.
type Store interface {
	// User operations
	GetUser(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByVerificationToken(token string) (*models.User, error)
	GetUserByResetToken(token string) (*models.User, error)
	CreateUser(u *models.User) error
	UpdateUser(u *models.User) error

	// Session operations
	CreateSession(s *models.Session) error
	GetSession(token string) (*models.Session, error)
	DeleteSession(token string) error
	DeleteUserSessions(userID string) error

	// Catalog operations (read-only after seeding)
	ListModules() ([]models.Module, error)
	GetModule(id string) (*models.Module, error)
	ListQuestions(moduleID string) ([]models.Question, error)

	// Quiz result operations
	CreateQuizResult(r *models.QuizResult) error
	ListQuizResults(userID string) ([]models.QuizResult, error)

	// Progress operations. UpsertProgress must apply the merge atomically
	// per (userID, moduleID): flags keep their existing value unless the
	// patch provides one, best_score only ever increases.
	GetProgress(userID, moduleID string) (*models.UserProgress, error)
	ListProgress(userID string) ([]models.UserProgress, error)
	UpsertProgress(userID, moduleID string, patch models.ProgressPatch) (*models.UserProgress, error)
}
