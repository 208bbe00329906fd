package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"literacy_app_backend/auth"
	"literacy_app_backend/middleware"
	"literacy_app_backend/models"
)

type AuthHandler struct {
	auth   *auth.Service
	log    *zap.Logger
	secure bool // set cookie Secure + SameSite=None in production
}

func NewAuthHandler(authService *auth.Service, log *zap.Logger, secure bool) *AuthHandler {
	return &AuthHandler{auth: authService, log: log, secure: secure}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	if h.secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", h.secure, true)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.Register(req)
	if err != nil {
		if err == auth.ErrEmailTaken {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		h.log.Error("error registering user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful, check your inbox for a verification email",
		"user_id": user.ID,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		switch err {
		case auth.ErrInvalidCredentials:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		case auth.ErrEmailNotVerified:
			c.JSON(http.StatusForbidden, gin.H{"error": "Email not verified, check your inbox"})
		default:
			h.log.Error("error logging in", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		}
		return
	}

	session, err := h.auth.CreateSession(user.ID)
	if err != nil {
		h.log.Error("error creating session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	h.setSessionCookie(c, session.Token, int(h.auth.SessionTTL().Seconds()))
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user.Summary(),
	})
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req models.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.VerifyEmail(req.Token); err != nil {
		if err == auth.ErrInvalidToken {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
			return
		}
		h.log.Error("error verifying email", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}

// Logout always succeeds, even without a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookieName)
	if err == nil && token != "" {
		if err := h.auth.Logout(token); err != nil {
			h.log.Error("error deleting session", zap.Error(err))
		}
	}

	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	user := c.MustGet(middleware.ContextUserKey).(*models.User)
	c.JSON(http.StatusOK, user.Summary())
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.RequestPasswordReset(req.Email); err != nil {
		h.log.Error("error requesting password reset", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}

	// Same response whether or not the email is registered.
	c.JSON(http.StatusOK, gin.H{"message": "If the email is registered, a reset link has been sent"})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.ResetPassword(req.Token, req.Password); err != nil {
		if err == auth.ErrInvalidToken {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
			return
		}
		h.log.Error("error resetting password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}
