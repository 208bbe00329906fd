package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"literacy_app_backend/email"
	"literacy_app_backend/models"
	"literacy_app_backend/store"
)

var (
	// ErrEmailTaken is returned when registering an already-used email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers unknown email and wrong password alike,
	// so callers cannot probe which emails exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailNotVerified is deliberately distinct from ErrInvalidCredentials
	// so the user knows to check their inbox.
	ErrEmailNotVerified = errors.New("email not verified")
	// ErrInvalidToken covers unknown and expired verification/reset tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrInvalidSession is returned for missing, expired or orphaned sessions.
	ErrInvalidSession = errors.New("invalid session")
)

const (
	verificationTokenTTL = 24 * time.Hour
	resetTokenTTL        = time.Hour
)

type Config struct {
	RequireVerifiedEmail bool          // gate login on a verified email
	SessionTTL           time.Duration // fixed session lifetime
	BaseURL              string        // base URL for links in emails
}

// Service owns the account lifecycle: registration, email verification,
// login, sessions, and password reset.
type Service struct {
	store  store.Store
	mailer email.Sender
	log    *zap.Logger
	cfg    Config
}

func NewService(st store.Store, mailer email.Sender, log *zap.Logger, cfg Config) *Service {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 7 * 24 * time.Hour
	}
	return &Service{store: st, mailer: mailer, log: log, cfg: cfg}
}

// Register creates an unverified user and sends a verification email.
// Email delivery failure is logged but does not fail registration.
func (s *Service) Register(req models.RegisterRequest) (*models.User, error) {
	if _, err := s.store.GetUserByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("error checking email: %w", err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	token, err := NewToken()
	if err != nil {
		return nil, fmt.Errorf("error generating verification token: %w", err)
	}
	expires := time.Now().Add(verificationTokenTTL)

	user := &models.User{
		ID:                       uuid.NewString(),
		Email:                    req.Email,
		PasswordHash:             hash,
		FirstName:                req.FirstName,
		LastName:                 req.LastName,
		EmailVerified:            false,
		VerificationToken:        &token,
		VerificationTokenExpires: &expires,
	}

	if err := s.store.CreateUser(user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	msg := email.VerificationMessage(user.Email, user.FirstName, s.cfg.BaseURL, token)
	if err := s.mailer.Send(msg); err != nil {
		s.log.Error("failed to send verification email",
			zap.String("user_id", user.ID), zap.Error(err))
	}

	return user, nil
}

// VerifyEmail redeems a verification token. Tokens are single-use: the token
// fields are cleared on success.
func (s *Service) VerifyEmail(token string) error {
	user, err := s.store.GetUserByVerificationToken(token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("error looking up verification token: %w", err)
	}

	if user.VerificationTokenExpires != nil && time.Now().After(*user.VerificationTokenExpires) {
		return ErrInvalidToken
	}

	user.EmailVerified = true
	user.VerificationToken = nil
	user.VerificationTokenExpires = nil

	if err := s.store.UpdateUser(user); err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}
	return nil
}

// Login validates credentials and returns the user. Unknown email and wrong
// password produce the same error; the unverified case is surfaced separately
// when verification is required.
func (s *Service) Login(userEmail, password string) (*models.User, error) {
	user, err := s.store.GetUserByEmail(userEmail)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.log.Debug("login for unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !VerifyPassword(user.PasswordHash, password) {
		s.log.Debug("login with wrong password", zap.String("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	if s.cfg.RequireVerifiedEmail && !user.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	return user, nil
}

// CreateSession issues a new session for the user.
func (s *Service) CreateSession(userID string) (*models.Session, error) {
	token, err := NewToken()
	if err != nil {
		return nil, fmt.Errorf("error generating session token: %w", err)
	}
	sess := &models.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.cfg.SessionTTL),
	}
	if err := s.store.CreateSession(sess); err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}
	return sess, nil
}

// CurrentUser resolves a session token to its user. Sessions that are
// expired, unknown, or belong to a deleted user are rejected.
func (s *Service) CurrentUser(token string) (*models.User, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}
	sess, err := s.store.GetSession(token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("error fetching session: %w", err)
	}
	user, err := s.store.GetUser(sess.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("error fetching session user: %w", err)
	}
	return user, nil
}

// Logout deletes the session; deleting an unknown token is not an error.
func (s *Service) Logout(token string) error {
	if token == "" {
		return nil
	}
	return s.store.DeleteSession(token)
}

// SessionTTL returns the configured session lifetime.
func (s *Service) SessionTTL() time.Duration {
	return s.cfg.SessionTTL
}

// RequestPasswordReset stores a short-lived reset token and emails it. It
// reports success whether or not the email is registered.
func (s *Service) RequestPasswordReset(userEmail string) error {
	user, err := s.store.GetUserByEmail(userEmail)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.log.Debug("password reset for unknown email")
			return nil
		}
		return fmt.Errorf("error looking up user: %w", err)
	}

	token, err := NewToken()
	if err != nil {
		return fmt.Errorf("error generating reset token: %w", err)
	}
	expires := time.Now().Add(resetTokenTTL)
	user.ResetToken = &token
	user.ResetTokenExpires = &expires

	if err := s.store.UpdateUser(user); err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}

	msg := email.PasswordResetMessage(user.Email, user.FirstName, s.cfg.BaseURL, token)
	if err := s.mailer.Send(msg); err != nil {
		s.log.Error("failed to send password reset email",
			zap.String("user_id", user.ID), zap.Error(err))
	}
	return nil
}

// ResetPassword redeems a reset token, replaces the password hash, and
// invalidates every session of the user.
func (s *Service) ResetPassword(token, newPassword string) error {
	user, err := s.store.GetUserByResetToken(token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("error looking up reset token: %w", err)
	}

	if user.ResetTokenExpires != nil && time.Now().After(*user.ResetTokenExpires) {
		return ErrInvalidToken
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user.PasswordHash = hash
	user.ResetToken = nil
	user.ResetTokenExpires = nil

	if err := s.store.UpdateUser(user); err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}

	if err := s.store.DeleteUserSessions(user.ID); err != nil {
		s.log.Error("failed to delete sessions after password reset",
			zap.String("user_id", user.ID), zap.Error(err))
	}
	return nil
}
