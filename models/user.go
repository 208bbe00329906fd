package models

import "time"

type User struct {
	ID                       string     `json:"id"`
	Email                    string     `json:"email"`
	PasswordHash             string     `json:"-"` // never serialized
	FirstName                string     `json:"first_name"`
	LastName                 string     `json:"last_name"`
	ProfileImageURL          *string    `json:"profile_image_url"`
	EmailVerified            bool       `json:"email_verified"`
	VerificationToken        *string    `json:"-"`
	VerificationTokenExpires *time.Time `json:"-"`
	ResetToken               *string    `json:"-"`
	ResetTokenExpires        *time.Time `json:"-"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`
}

// Session is a server-side login session carried by an HTTP-only cookie.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry at time now.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
