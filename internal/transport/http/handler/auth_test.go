package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agaman/jobboard-api/internal/application/auth"
	"github.com/agaman/jobboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockAuthSvc struct{ mock.Mock }

func (m *mockAuthSvc) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResult, error) {
	args := m.Called(ctx, req)
	if res, _ := args.Get(0).(*auth.LoginResult); res != nil {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthSvc) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockAuthSvc) VerifyOTP(ctx context.Context, req auth.VerifyOTPRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockAuthSvc) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}

// --- Login tests ---

func TestLogin_HappyPath(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("Login", mock.Anything, mock.Anything).Return(&auth.LoginResult{
		Token: "signed-token",
		Role:  domain.RoleRecruiter,
	}, nil)
	h := NewAuthHandler(svc, nil)

	body := []byte(`{"username_or_email":"alice","password":"secret-123","captcha_token":"tok"}`)
	r := httptest.NewRequest(http.MethodPost, "/api/Auth/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Login(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp AuthEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, domain.RoleRecruiter, resp.Role)
	svc.AssertExpectations(t)
}

func TestLogin_InvalidBody(t *testing.T) {
	svc := &mockAuthSvc{}
	h := NewAuthHandler(svc, nil)
	r := httptest.NewRequest(http.MethodPost, "/api/Auth/login", bytes.NewBufferString("not-json"))
	rr := httptest.NewRecorder()
	h.Login(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestLogin_UnknownAccount(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("Login", mock.Anything, mock.Anything).
		Return(nil, domain.E(domain.ErrUnauthorized, "User is not FOUND"))
	h := NewAuthHandler(svc, nil)

	body := []byte(`{"username_or_email":"ghost","password":"secret-123","captcha_token":"tok"}`)
	r := httptest.NewRequest(http.MethodPost, "/api/Auth/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Login(rr, r)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	var resp AuthEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "User is not FOUND", resp.Error)
}

func TestLogin_UnexpectedErrorIsNotEchoed(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("Login", mock.Anything, mock.Anything).
		Return(nil, assert.AnError)
	h := NewAuthHandler(svc, nil)

	body := []byte(`{"username_or_email":"alice","password":"secret-123","captcha_token":"tok"}`)
	r := httptest.NewRequest(http.MethodPost, "/api/Auth/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Login(rr, r)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp AuthEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "internal server error", resp.Error)
}

// --- Password recovery tests ---

func TestForgotPassword_HappyPath(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("ForgotPassword", mock.Anything, auth.ForgotPasswordRequest{Email: "alice@example.com"}).Return(nil)
	h := NewAuthHandler(svc, nil)

	body := []byte(`{"email":"alice@example.com"}`)
	r := httptest.NewRequest(http.MethodPost, "/api/Auth/ForgotPassword", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.ForgotPassword(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "OTP sent.", resp.Message)
	svc.AssertExpectations(t)
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("ForgotPassword", mock.Anything, mock.Anything).
		Return(domain.E(domain.ErrNotFound, "Email not found. Please register first."))
	h := NewAuthHandler(svc, nil)

	body := []byte(`{"email":"ghost@example.com"}`)
	r := httptest.NewRequest(http.MethodPost, "/api/Auth/ForgotPassword", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.ForgotPassword(rr, r)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	var resp MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Email not found. Please register first.", resp.Error)
}

func TestVerifyOTP_Invalid(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifyOTP", mock.Anything, auth.VerifyOTPRequest{Email: "alice@example.com", OTP: "000000"}).
		Return(domain.E(domain.ErrUnauthorized, "Invalid OTP."))
	h := NewAuthHandler(svc, nil)

	body := []byte(`{"email":"alice@example.com","otp":"000000"}`)
	r := httptest.NewRequest(http.MethodPost, "/api/Auth/VerifyOTP", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.VerifyOTP(rr, r)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	var resp MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Invalid OTP.", resp.Error)
	svc.AssertExpectations(t)
}

func TestResetPassword_HappyPath(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("ResetPassword", mock.Anything, auth.ResetPasswordRequest{Email: "alice@example.com", Password: "new-secret-1"}).Return(nil)
	h := NewAuthHandler(svc, nil)

	body := []byte(`{"email":"alice@example.com","password":"new-secret-1"}`)
	r := httptest.NewRequest(http.MethodPost, "/api/Auth/ResetPassword", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.ResetPassword(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Password updated.", resp.Message)
	svc.AssertExpectations(t)
}

// --- GetAllRecruiter tests ---

func TestGetAllRecruiter(t *testing.T) {
	authSvc := &mockAuthSvc{}
	userSvc := &mockUserSvc{}
	userSvc.On("ListByRoleName", mock.Anything, domain.RoleRecruiter).
		Return([]domain.User{{UserID: "u1"}, {UserID: "u2"}}, nil)
	h := NewAuthHandler(authSvc, userSvc)

	r := httptest.NewRequest(http.MethodGet, "/api/Auth/GetAllRecruiter", nil)
	rr := httptest.NewRecorder()
	h.GetAllRecruiter(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []domain.User
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 2)
	userSvc.AssertExpectations(t)
}
