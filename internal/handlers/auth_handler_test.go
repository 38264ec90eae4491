package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"hr-management-api/internal/store"
)

func adminCredentials(t *testing.T, email, password string) *store.Credentials {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &store.Credentials{
		ID:           bson.NewObjectID(),
		Email:        email,
		PasswordHash: string(hash),
	}
}

func TestLoginSuccess(t *testing.T) {
	env := newTestEnv(t)
	creds := adminCredentials(t, "admin@x.com", "s3cret")
	env.admins.On("GetAdminByEmail", mock.Anything, "admin@x.com").Return(creds, nil)

	w := env.do(t, http.MethodPost, "/auth-login", map[string]any{
		"email":    "admin@x.com",
		"password": "s3cret",
	}, false)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	token, ok := body["token"].(string)
	require.True(t, ok)

	// The issued credential must pass the authentication gate.
	claims, err := env.auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, creds.ID.Hex(), claims.ID)
	assert.Equal(t, "admin@x.com", claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	creds := adminCredentials(t, "admin@x.com", "s3cret")
	env.admins.On("GetAdminByEmail", mock.Anything, "admin@x.com").Return(creds, nil)

	w := env.do(t, http.MethodPost, "/auth-login", map[string]any{
		"email":    "admin@x.com",
		"password": "wrong",
	}, false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)
	env.admins.On("GetAdminByEmail", mock.Anything, "ghost@x.com").Return(nil, store.ErrNotFound)

	w := env.do(t, http.MethodPost, "/auth-login", map[string]any{
		"email":    "ghost@x.com",
		"password": "whatever",
	}, false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
}

func TestLoginMissingFields(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/auth-login", map[string]any{
		"email": "admin@x.com",
	}, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Email and password are required"}`, w.Body.String())
	env.admins.AssertNotCalled(t, "GetAdminByEmail", mock.Anything, mock.Anything)
}
