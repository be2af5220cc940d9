// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ralona/nutritracker/internal/service"
	"github.com/ralona/nutritracker/internal/validators"
	"github.com/ralona/nutritracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSession = models.Session{
	ID:        testSessionID,
	UserID:    testClient.ID,
	CreatedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	ExpiresAt: time.Date(2026, 3, 17, 12, 0, 0, 0, time.UTC),
}

func decodeErrorBody(t *testing.T, rr *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	auth := sessionAs(testClient)
	auth.registerFn = func(_ context.Context, req models.RegisterRequest) (models.User, models.Session, error) {
		assert.Equal(t, "ana@example.com", req.Email)
		assert.Equal(t, models.RoleClient, req.Role)
		return testClient, testSession, nil
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	rr := serve(t, h, http.MethodPost, "/api/register",
		`{"email":"ana@example.com","password":"secret1","name":"Ana","role":"client","nutritionist_id":1}`, false)

	require.Equal(t, http.StatusCreated, rr.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, testClient.ID, user.ID)
	assert.NotContains(t, rr.Body.String(), "password")

	cookie := findCookie(rr, sessionCookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookie.MaxAge)

	var sessionID string
	require.NoError(t, h.cookies.Decode(sessionCookieName, cookie.Value, &sessionID))
	assert.Equal(t, testSessionID, sessionID)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "invalid json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid JSON body",
		},
		{
			name:       "email already registered",
			body:       `{"email":"ana@example.com","password":"secret1","name":"Ana","role":"client"}`,
			serviceErr: service.ErrEmailAlreadyRegistered,
			wantStatus: http.StatusBadRequest,
			wantError:  "email already registered",
		},
		{
			name: "validation",
			body: `{"email":"nope","password":"1","name":"","role":"client"}`,
			serviceErr: &validators.ValidationError{Fields: []validators.FieldError{
				{Field: validators.FieldEmail, Message: validators.MsgInvalidEmail},
			}},
			wantStatus: http.StatusBadRequest,
			wantError:  "validation failed",
		},
		{
			name:       "internal",
			body:       `{"email":"ana@example.com","password":"secret1","name":"Ana","role":"client"}`,
			serviceErr: assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := sessionAs(testClient)
			auth.registerFn = func(context.Context, models.RegisterRequest) (models.User, models.Session, error) {
				return models.User{}, models.Session{}, tt.serviceErr
			}
			h := newTestHandler(t, &service.Services{AuthService: auth})

			rr := serve(t, h, http.MethodPost, "/api/register", tt.body, false)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantError, decodeErrorBody(t, rr).Error)
			assert.Nil(t, findCookie(rr, sessionCookieName))
		})
	}
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := sessionAs(testClient)
	auth.loginFn = func(_ context.Context, req models.LoginRequest) (models.User, models.Session, error) {
		assert.Equal(t, "secret1", req.Password)
		return testClient, testSession, nil
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	rr := serve(t, h, http.MethodPost, "/api/login", `{"email":"ana@example.com","password":"secret1"}`, false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotNil(t, findCookie(rr, sessionCookieName))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := sessionAs(testClient)
	auth.loginFn = func(context.Context, models.LoginRequest) (models.User, models.Session, error) {
		return models.User{}, models.Session{}, service.ErrInvalidCredentials
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	rr := serve(t, h, http.MethodPost, "/api/login", `{"email":"ana@example.com","password":"wrong"}`, false)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "invalid email or password", decodeErrorBody(t, rr).Error)
}

// ─────────────────────────────────────────────
// logout / current user
// ─────────────────────────────────────────────

func TestLogout_DeletesSessionAndClearsCookie(t *testing.T) {
	var deleted string
	auth := sessionAs(testClient)
	auth.logoutFn = func(_ context.Context, sessionID string) error {
		deleted = sessionID
		return nil
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	rr := serve(t, h, http.MethodPost, "/api/logout", "", true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"logged out"}`, rr.Body.String())
	assert.Equal(t, testSessionID, deleted)

	cookie := findCookie(rr, sessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestLogout_WithoutCookie(t *testing.T) {
	auth := sessionAs(testClient)
	auth.logoutFn = func(context.Context, string) error {
		t.Fatal("logout must not be called without a session")
		return nil
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	rr := serve(t, h, http.MethodPost, "/api/logout", "", false)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestLogout_ServiceErrorStillClearsCookie(t *testing.T) {
	auth := sessionAs(testClient)
	auth.logoutFn = func(context.Context, string) error { return assert.AnError }
	h := newTestHandler(t, &service.Services{AuthService: auth})

	rr := serve(t, h, http.MethodPost, "/api/logout", "", true)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotNil(t, findCookie(rr, sessionCookieName))
}

func TestCurrentUser(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: sessionAs(testNutritionist)})

	rr := serve(t, h, http.MethodGet, "/api/user", "", true)

	require.Equal(t, http.StatusOK, rr.Code)
	var user models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, testNutritionist.ID, user.ID)
	assert.Equal(t, models.RoleNutritionist, user.Role)
}

func TestCurrentUser_Unauthenticated(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	rr := serve(t, h, http.MethodGet, "/api/user", "", false)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "unauthorized", decodeErrorBody(t, rr).Error)
}
