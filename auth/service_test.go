package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"literacy_app_backend/email"
	"literacy_app_backend/models"
	"literacy_app_backend/store"
)

// captureMailer records messages instead of sending them.
type captureMailer struct {
	messages []email.Message
	fail     bool
}

func (m *captureMailer) Send(msg email.Message) error {
	if m.fail {
		return errors.New("smtp unreachable")
	}
	m.messages = append(m.messages, msg)
	return nil
}

func newTestService(t *testing.T, requireVerified bool) (*Service, *store.MemoryStore, *captureMailer) {
	t.Helper()
	st := store.NewMemoryStore()
	mailer := &captureMailer{}
	svc := NewService(st, mailer, zap.NewNop(), Config{
		RequireVerifiedEmail: requireVerified,
		SessionTTL:           7 * 24 * time.Hour,
		BaseURL:              "http://localhost:8080",
	})
	return svc, st, mailer
}

func register(t *testing.T, svc *Service, userEmail string) *models.User {
	t.Helper()
	user, err := svc.Register(models.RegisterRequest{
		Email:     userEmail,
		Password:  "password123",
		FirstName: "Aizhan",
		LastName:  "Seitova",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return user
}

func TestRegisterCreatesUnverifiedUser(t *testing.T) {
	svc, st, mailer := newTestService(t, true)

	user := register(t, svc, "aizhan@example.com")

	if user.EmailVerified {
		t.Error("new user should be unverified")
	}
	if user.PasswordHash == "password123" || user.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
	if user.VerificationToken == nil || *user.VerificationToken == "" {
		t.Fatal("verification token not set")
	}
	if user.VerificationTokenExpires == nil || time.Until(*user.VerificationTokenExpires) > 24*time.Hour {
		t.Error("verification token expiry not within 24 hours")
	}

	if len(mailer.messages) != 1 {
		t.Fatalf("got %d emails, want 1", len(mailer.messages))
	}
	msg := mailer.messages[0]
	if msg.To != "aizhan@example.com" {
		t.Errorf("email sent to %s", msg.To)
	}
	if !strings.Contains(msg.Text, *user.VerificationToken) {
		t.Error("verification email does not contain the token")
	}

	if _, err := st.GetUserByEmail("aizhan@example.com"); err != nil {
		t.Errorf("user not persisted: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, st, _ := newTestService(t, true)

	first := register(t, svc, "aizhan@example.com")

	_, err := svc.Register(models.RegisterRequest{
		Email:     "aizhan@example.com",
		Password:  "otherpassword",
		FirstName: "Dana",
		LastName:  "Omarova",
	})
	if err != ErrEmailTaken {
		t.Fatalf("Register error = %v, want ErrEmailTaken", err)
	}

	stored, err := st.GetUserByEmail("aizhan@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if stored.ID != first.ID || stored.FirstName != "Aizhan" {
		t.Errorf("first registration altered by the duplicate: %+v", stored)
	}
}

func TestRegisterSucceedsWhenEmailDeliveryFails(t *testing.T) {
	svc, st, mailer := newTestService(t, true)
	mailer.fail = true

	user := register(t, svc, "aizhan@example.com")

	if _, err := st.GetUser(user.ID); err != nil {
		t.Errorf("user not persisted despite email failure: %v", err)
	}
}

func TestVerifyEmailSingleUse(t *testing.T) {
	svc, st, _ := newTestService(t, true)

	user := register(t, svc, "aizhan@example.com")
	token := *user.VerificationToken

	if err := svc.VerifyEmail(token); err != nil {
		t.Fatalf("VerifyEmail failed: %v", err)
	}

	stored, _ := st.GetUser(user.ID)
	if !stored.EmailVerified {
		t.Error("EmailVerified = false after verification")
	}
	if stored.VerificationToken != nil || stored.VerificationTokenExpires != nil {
		t.Error("token fields not cleared after verification")
	}

	if err := svc.VerifyEmail(token); err != ErrInvalidToken {
		t.Fatalf("second VerifyEmail error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyEmailUnknownAndExpired(t *testing.T) {
	svc, st, _ := newTestService(t, true)

	if err := svc.VerifyEmail("no-such-token"); err != ErrInvalidToken {
		t.Fatalf("VerifyEmail error = %v, want ErrInvalidToken", err)
	}

	user := register(t, svc, "aizhan@example.com")
	past := time.Now().Add(-time.Minute)
	user.VerificationTokenExpires = &past
	if err := st.UpdateUser(user); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}

	if err := svc.VerifyEmail(*user.VerificationToken); err != ErrInvalidToken {
		t.Fatalf("VerifyEmail with expired token error = %v, want ErrInvalidToken", err)
	}
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	svc, _, _ := newTestService(t, false)

	register(t, svc, "aizhan@example.com")

	_, wrongPassword := svc.Login("aizhan@example.com", "not-the-password")
	_, unknownEmail := svc.Login("nobody@example.com", "password123")

	if wrongPassword != ErrInvalidCredentials {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", wrongPassword)
	}
	if unknownEmail != ErrInvalidCredentials {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", unknownEmail)
	}
	if wrongPassword != unknownEmail {
		t.Error("credential failures must be indistinguishable")
	}
}

func TestLoginVerificationGate(t *testing.T) {
	// Verification required: unverified accounts are told to check their inbox.
	strict, _, _ := newTestService(t, true)
	register(t, strict, "aizhan@example.com")

	if _, err := strict.Login("aizhan@example.com", "password123"); err != ErrEmailNotVerified {
		t.Fatalf("Login error = %v, want ErrEmailNotVerified", err)
	}

	// Verification not required: the same unverified account logs in.
	lax, _, _ := newTestService(t, false)
	register(t, lax, "aizhan@example.com")

	user, err := lax.Login("aizhan@example.com", "password123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.Email != "aizhan@example.com" {
		t.Errorf("logged in as %s", user.Email)
	}
}

func TestLoginAfterVerification(t *testing.T) {
	svc, _, _ := newTestService(t, true)

	user := register(t, svc, "aizhan@example.com")
	if err := svc.VerifyEmail(*user.VerificationToken); err != nil {
		t.Fatalf("VerifyEmail failed: %v", err)
	}

	logged, err := svc.Login("aizhan@example.com", "password123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if logged.ID != user.ID {
		t.Errorf("logged in as %s, want %s", logged.ID, user.ID)
	}
}

func TestSessionLifecycle(t *testing.T) {
	svc, _, _ := newTestService(t, false)

	user := register(t, svc, "aizhan@example.com")

	sess, err := svc.CreateSession(user.ID)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	current, err := svc.CurrentUser(sess.Token)
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if current.ID != user.ID {
		t.Errorf("CurrentUser = %s, want %s", current.ID, user.ID)
	}

	if err := svc.Logout(sess.Token); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := svc.CurrentUser(sess.Token); err != ErrInvalidSession {
		t.Fatalf("CurrentUser after logout error = %v, want ErrInvalidSession", err)
	}

	// Logout is idempotent.
	if err := svc.Logout(sess.Token); err != nil {
		t.Fatalf("second Logout failed: %v", err)
	}
}

func TestCurrentUserRejectsBadSessions(t *testing.T) {
	svc, st, _ := newTestService(t, false)

	if _, err := svc.CurrentUser(""); err != ErrInvalidSession {
		t.Errorf("empty token error = %v, want ErrInvalidSession", err)
	}
	if _, err := svc.CurrentUser("unknown-token"); err != ErrInvalidSession {
		t.Errorf("unknown token error = %v, want ErrInvalidSession", err)
	}

	// An expired session is treated as absent.
	expired := &models.Session{
		Token:     "expired-token",
		UserID:    "u1",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	if err := st.CreateSession(expired); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if _, err := svc.CurrentUser("expired-token"); err != ErrInvalidSession {
		t.Errorf("expired session error = %v, want ErrInvalidSession", err)
	}

	// A session for a user that no longer exists is rejected.
	orphan := &models.Session{
		Token:     "orphan-token",
		UserID:    "no-such-user",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := st.CreateSession(orphan); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if _, err := svc.CurrentUser("orphan-token"); err != ErrInvalidSession {
		t.Errorf("orphaned session error = %v, want ErrInvalidSession", err)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	svc, st, mailer := newTestService(t, false)

	user := register(t, svc, "aizhan@example.com")
	sess, err := svc.CreateSession(user.ID)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	if err := svc.RequestPasswordReset("aizhan@example.com"); err != nil {
		t.Fatalf("RequestPasswordReset failed: %v", err)
	}

	stored, _ := st.GetUser(user.ID)
	if stored.ResetToken == nil {
		t.Fatal("reset token not set")
	}
	if len(mailer.messages) != 2 { // verification + reset
		t.Fatalf("got %d emails, want 2", len(mailer.messages))
	}
	if !strings.Contains(mailer.messages[1].Text, *stored.ResetToken) {
		t.Error("reset email does not contain the token")
	}

	if err := svc.ResetPassword(*stored.ResetToken, "newpassword1"); err != nil {
		t.Fatalf("ResetPassword failed: %v", err)
	}

	if _, err := svc.Login("aizhan@example.com", "password123"); err != ErrInvalidCredentials {
		t.Errorf("old password still works after reset")
	}
	if _, err := svc.Login("aizhan@example.com", "newpassword1"); err != nil {
		t.Errorf("new password rejected: %v", err)
	}

	// Existing sessions are invalidated by the reset.
	if _, err := svc.CurrentUser(sess.Token); err != ErrInvalidSession {
		t.Errorf("session survived password reset")
	}

	// The reset token is single-use.
	stored, _ = st.GetUser(user.ID)
	if stored.ResetToken != nil {
		t.Error("reset token not cleared")
	}
}

func TestRequestPasswordResetUnknownEmail(t *testing.T) {
	svc, _, mailer := newTestService(t, false)

	if err := svc.RequestPasswordReset("nobody@example.com"); err != nil {
		t.Fatalf("RequestPasswordReset for unknown email failed: %v", err)
	}
	if len(mailer.messages) != 0 {
		t.Errorf("no email should be sent for an unknown address")
	}
}

func TestNewTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := NewToken()
		if err != nil {
			t.Fatalf("NewToken failed: %v", err)
		}
		if len(token) != 64 {
			t.Fatalf("token length = %d, want 64 hex chars", len(token))
		}
		if seen[token] {
			t.Fatal("duplicate token generated")
		}
		seen[token] = true
	}
}
