// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// validUser is a convenience fixture used across multiple tests.
var validUser = models.User{
	Login:    "alice12",
	Password: "hunter22",
}

// userBody serialises a models.User to a JSON request body string.
func userBody(t *testing.T, u models.User) string {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	return string(b)
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"
	mocks, h := newTestServices(t)

	gomock.InOrder(
		mocks.auth.EXPECT().RegisterUser(gomock.Any(), validUser).Return(models.User{Login: validUser.Login}, nil),
		mocks.auth.EXPECT().CreateToken(gomock.Any(), models.User{Login: validUser.Login}).
			Return(models.Token{SignedString: signedToken, Username: validUser.Login}, nil),
	)

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *testServices)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid JSON",
			body:       `{"login":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name:       "empty body",
			body:       "",
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name:       "unknown field",
			body:       `{"login":"alice12","password":"hunter22","role":"admin"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name: "invalid credentials",
			body: `{"login":"a","password":"b"}`,
			setup: func(m *testServices) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
					Return(models.User{}, fmt.Errorf("%w: login too short", service.ErrInvalidDataProvided))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name: "login already exists",
			setup: func(m *testServices) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), validUser).
					Return(models.User{}, fmt.Errorf("register: %w", store.ErrLoginAlreadyExists))
			},
			wantStatus: http.StatusConflict,
			wantBody:   app.MsgLoginAlreadyExists,
		},
		{
			name: "storage failure",
			setup: func(m *testServices) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), validUser).
					Return(models.User{}, fmt.Errorf("%w: disk full", store.ErrIOFailure))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError,
		},
		{
			name: "token creation fails",
			setup: func(m *testServices) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), validUser).Return(models.User{Login: validUser.Login}, nil)
				m.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).
					Return(models.Token{}, service.ErrTokenCreationFailed)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgLoginFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks, h := newTestServices(t)
			if tt.setup != nil {
				tt.setup(mocks)
			}

			body := tt.body
			if body == "" && tt.setup != nil {
				body = userBody(t, validUser)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(body))
			rec := httptest.NewRecorder()

			h.register(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
			assert.Empty(t, rec.Header().Get("Authorization"))
		})
	}
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	const signedToken = "login.jwt.token"
	mocks, h := newTestServices(t)

	mocks.auth.EXPECT().Login(gomock.Any(), validUser).Return(models.User{Login: validUser.Login}, nil)
	mocks.auth.EXPECT().CreateToken(gomock.Any(), models.User{Login: validUser.Login}).
		Return(models.Token{SignedString: signedToken}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"user not found", fmt.Errorf("login: %w: alice12", store.ErrRecordNotFound), http.StatusNotFound, app.MsgUserNotFound},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
		{"wrapped wrong password", fmt.Errorf("login: %w", service.ErrWrongPassword), http.StatusUnauthorized, app.MsgInvalidLoginPassword},
		{"malformed record", fmt.Errorf("%w: truncated", store.ErrMalformedRecord), http.StatusInternalServerError, app.MsgInternalServerError},
		{"unexpected error", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks, h := newTestServices(t)
			mocks.auth.EXPECT().Login(gomock.Any(), validUser).Return(models.User{}, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(userBody(t, validUser)))
			rec := httptest.NewRecorder()

			h.login(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
		})
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	_, h := newTestServices(t)

	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
