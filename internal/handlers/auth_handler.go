package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"hr-management-api/internal/middleware"
	"hr-management-api/internal/store"
)

// AuthHandler issues bearer tokens for admin identities. It is the only
// handler exempt from the authentication gate.
type AuthHandler struct {
	admins store.CredentialStore
	auth   *middleware.AuthService
}

// NewAuthHandler creates the login handler.
func NewAuthHandler(admins store.CredentialStore, auth *middleware.AuthService) *AuthHandler {
	return &AuthHandler{admins: admins, auth: auth}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies an email/password pair against the stored bcrypt hash and
// returns a signed, time-limited token. Lookup misses and password
// mismatches are indistinguishable to the caller.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	creds, err := h.admins.GetAdminByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		logrus.WithField("error", err.Error()).Error("Login lookup failed")
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(req.Password)) != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.auth.GenerateToken(creds.ID.Hex(), creds.Email)
	if err != nil {
		logrus.WithField("error", err.Error()).Error("Token generation failed")
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
