package store

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"literacy_app_backend/models"
)

// PostgresStore implements Store on top of database/sql with lib/pq.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const userColumns = `id, email, password_hash, first_name, last_name, profile_image_url,
	email_verified, verification_token, verification_token_expires,
	reset_token, reset_token_expires, created_at, updated_at`

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.ProfileImageURL,
		&u.EmailVerified, &u.VerificationToken, &u.VerificationTokenExpires,
		&u.ResetToken, &u.ResetTokenExpires, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error scanning user: %w", err)
	}
	return &u, nil
}

func (s *PostgresStore) GetUser(id string) (*models.User, error) {
	return scanUser(s.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (s *PostgresStore) GetUserByEmail(email string) (*models.User, error) {
	return scanUser(s.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (s *PostgresStore) GetUserByVerificationToken(token string) (*models.User, error) {
	return scanUser(s.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE verification_token = $1`, token))
}

func (s *PostgresStore) GetUserByResetToken(token string) (*models.User, error) {
	return scanUser(s.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE reset_token = $1`, token))
}

func (s *PostgresStore) CreateUser(u *models.User) error {
	err := s.db.QueryRow(`
		INSERT INTO users (id, email, password_hash, first_name, last_name, profile_image_url,
			email_verified, verification_token, verification_token_expires)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`, u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.ProfileImageURL,
		u.EmailVerified, u.VerificationToken, u.VerificationTokenExpires,
	).Scan(&u.CreatedAt, &u.UpdatedAt)

	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpdateUser(u *models.User) error {
	result, err := s.db.Exec(`
		UPDATE users SET
			email = $2,
			password_hash = $3,
			first_name = $4,
			last_name = $5,
			profile_image_url = $6,
			email_verified = $7,
			verification_token = $8,
			verification_token_expires = $9,
			reset_token = $10,
			reset_token_expires = $11,
			updated_at = NOW()
		WHERE id = $1
	`, u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.ProfileImageURL,
		u.EmailVerified, u.VerificationToken, u.VerificationTokenExpires,
		u.ResetToken, u.ResetTokenExpires)
	if err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error verifying user update: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) CreateSession(sess *models.Session) error {
	_, err := s.db.Exec(`
		INSERT INTO sessions (token, user_id, expires_at) VALUES ($1, $2, $3)
	`, sess.Token, sess.UserID, sess.ExpiresAt)
	if err != nil {
		return fmt.Errorf("error creating session: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetSession(token string) (*models.Session, error) {
	var sess models.Session
	err := s.db.QueryRow(`
		SELECT token, user_id, expires_at, created_at
		FROM sessions
		WHERE token = $1 AND expires_at > NOW()
	`, token).Scan(&sess.Token, &sess.UserID, &sess.ExpiresAt, &sess.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching session: %w", err)
	}
	return &sess, nil
}

func (s *PostgresStore) DeleteSession(token string) error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteUserSessions(userID string) error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("error deleting user sessions: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListModules() ([]models.Module, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, content, icon, order_index
		FROM modules
		ORDER BY order_index
	`)
	if err != nil {
		return nil, fmt.Errorf("error fetching modules: %w", err)
	}
	defer rows.Close()

	modules := make([]models.Module, 0)
	for rows.Next() {
		var m models.Module
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.Content, &m.Icon, &m.OrderIndex); err != nil {
			return nil, fmt.Errorf("error scanning module: %w", err)
		}
		modules = append(modules, m)
	}
	return modules, rows.Err()
}

func (s *PostgresStore) GetModule(id string) (*models.Module, error) {
	var m models.Module
	err := s.db.QueryRow(`
		SELECT id, title, description, content, icon, order_index
		FROM modules WHERE id = $1
	`, id).Scan(&m.ID, &m.Title, &m.Description, &m.Content, &m.Icon, &m.OrderIndex)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching module: %w", err)
	}
	return &m, nil
}

func (s *PostgresStore) ListQuestions(moduleID string) ([]models.Question, error) {
	rows, err := s.db.Query(`
		SELECT id, module_id, question_text, options, correct_answer, order_index
		FROM questions
		WHERE module_id = $1
		ORDER BY order_index
	`, moduleID)
	if err != nil {
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}
	defer rows.Close()

	questions := make([]models.Question, 0)
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.ModuleID, &q.QuestionText, pq.Array(&q.Options), &q.CorrectAnswer, &q.OrderIndex); err != nil {
			return nil, fmt.Errorf("error scanning question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (s *PostgresStore) CreateQuizResult(r *models.QuizResult) error {
	err := s.db.QueryRow(`
		INSERT INTO quiz_results (id, user_id, module_id, score, total_questions, passed)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING completed_at
	`, r.ID, r.UserID, r.ModuleID, r.Score, r.TotalQuestions, r.Passed).Scan(&r.CompletedAt)
	if err != nil {
		return fmt.Errorf("error creating quiz result: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListQuizResults(userID string) ([]models.QuizResult, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, module_id, score, total_questions, passed, completed_at
		FROM quiz_results
		WHERE user_id = $1
		ORDER BY completed_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching quiz results: %w", err)
	}
	defer rows.Close()

	results := make([]models.QuizResult, 0)
	for rows.Next() {
		var r models.QuizResult
		if err := rows.Scan(&r.ID, &r.UserID, &r.ModuleID, &r.Score, &r.TotalQuestions, &r.Passed, &r.CompletedAt); err != nil {
			return nil, fmt.Errorf("error scanning quiz result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func (s *PostgresStore) GetProgress(userID, moduleID string) (*models.UserProgress, error) {
	var p models.UserProgress
	err := s.db.QueryRow(`
		SELECT id, user_id, module_id, content_completed, quiz_completed, best_score, updated_at
		FROM user_progress
		WHERE user_id = $1 AND module_id = $2
	`, userID, moduleID).Scan(&p.ID, &p.UserID, &p.ModuleID, &p.ContentCompleted, &p.QuizCompleted, &p.BestScore, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching progress: %w", err)
	}
	return &p, nil
}

func (s *PostgresStore) ListProgress(userID string) ([]models.UserProgress, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, module_id, content_completed, quiz_completed, best_score, updated_at
		FROM user_progress
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching progress: %w", err)
	}
	defer rows.Close()

	progress := make([]models.UserProgress, 0)
	for rows.Next() {
		var p models.UserProgress
		if err := rows.Scan(&p.ID, &p.UserID, &p.ModuleID, &p.ContentCompleted, &p.QuizCompleted, &p.BestScore, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning progress: %w", err)
		}
		progress = append(progress, p)
	}
	return progress, rows.Err()
}

// UpsertProgress merges the patch into the (userID, moduleID) row in a single
// statement, so concurrent submissions cannot lose each other's updates.
// Flags keep their stored value when the patch leaves them nil; best_score
// is merged with GREATEST so it never decreases.
func (s *PostgresStore) UpsertProgress(userID, moduleID string, patch models.ProgressPatch) (*models.UserProgress, error) {
	var p models.UserProgress
	err := s.db.QueryRow(`
		INSERT INTO user_progress (id, user_id, module_id, content_completed, quiz_completed, best_score)
		VALUES ($1, $2, $3, COALESCE($4::boolean, FALSE), COALESCE($5::boolean, FALSE), $6::integer)
		ON CONFLICT (user_id, module_id) DO UPDATE SET
			content_completed = COALESCE($4::boolean, user_progress.content_completed),
			quiz_completed = COALESCE($5::boolean, user_progress.quiz_completed),
			best_score = CASE
				WHEN $6::integer IS NULL THEN user_progress.best_score
				ELSE GREATEST($6::integer, COALESCE(user_progress.best_score, 0))
			END,
			updated_at = NOW()
		RETURNING id, user_id, module_id, content_completed, quiz_completed, best_score, updated_at
	`, newID(), userID, moduleID, patch.ContentCompleted, patch.QuizCompleted, patch.BestScore,
	).Scan(&p.ID, &p.UserID, &p.ModuleID, &p.ContentCompleted, &p.QuizCompleted, &p.BestScore, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error upserting progress: %w", err)
	}
	return &p, nil
}
