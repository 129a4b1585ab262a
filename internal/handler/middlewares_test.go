package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrm-dev/hr-workflow/backend/internal/domain"
)

func TestRequiredRole(t *testing.T) {
	h := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mw := h.RequiredRole([]domain.Role{domain.RoleAdmin})(next)

	cases := []struct {
		role       domain.Role
		wantStatus int
	}{
		{domain.RoleAdmin, http.StatusNoContent},
		{domain.RolePartime, http.StatusForbidden},
		{domain.RoleFulltime, http.StatusForbidden},
	}

	for _, c := range cases {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), RoleCtxKey, c.role))

		mw.ServeHTTP(rec, req)

		assert.Equal(t, c.wantStatus, rec.Code, "role = %s", c.role)
	}
}

func TestAuthWithoutCookie(t *testing.T) {
	h := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("未登录的请求不应该到达业务 handler")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthWithInvalidToken(t *testing.T) {
	h := newTestHandler(t)
	h.config.JWT.Secret = "test-secret"

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("无效令牌的请求不应该到达业务 handler")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "__hr_workflow_token", Value: "not-a-jwt"})
	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthPutsRoleAndSubjectIntoContext(t *testing.T) {
	h := newTestHandler(t)
	h.config.JWT.Secret = "test-secret"

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{
		Role: domain.RoleFulltime.Code(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Subject:   strconv.FormatInt(42, 10),
		},
	})
	ss, err := token.SignedString([]byte(h.config.JWT.Secret))
	require.NoError(t, err)

	var gotRole domain.Role
	var gotSub string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRole = r.Context().Value(RoleCtxKey).(domain.Role)
		gotSub = r.Context().Value(SubCtxKey).(string)
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "__hr_workflow_token", Value: ss})
	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, domain.RoleFulltime, gotRole)
	assert.Equal(t, "42", gotSub)
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	h := newTestHandler(t)
	h.config.JWT.Secret = "test-secret"

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{
		Role: domain.RoleFulltime.Code(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			Subject:   "42",
		},
	})
	ss, err := token.SignedString([]byte(h.config.JWT.Secret))
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("过期令牌的请求不应该到达业务 handler")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "__hr_workflow_token", Value: ss})
	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
