package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrm-dev/hr-workflow/backend/internal/config"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := &config.Config{}
	h, err := NewHandler(cfg, nil, nil, nil)
	require.NoError(t, err)
	return h
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestSuccessResponse(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.successResponse(rec, req, "操作成功", map[string]any{"id": 1})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeResponse(t, rec)
	assert.True(t, resp.IsSuccess)
	assert.Equal(t, []string{"操作成功"}, resp.Message)
	assert.NotNil(t, resp.Metadata)
}

func TestCreatedResponse(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	h.createdResponse(rec, req, "创建成功", nil)

	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.IsSuccess)
}

func TestErrorResponse(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.errorResponse(rec, req, http.StatusBadRequest, "出错了")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.IsSuccess)
	assert.Equal(t, []string{"出错了"}, resp.Message)
	assert.Nil(t, resp.Metadata)
}

func TestForbidden(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.forbidden(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	resp := decodeResponse(t, rec)
	assert.Equal(t, []string{"权限不足"}, resp.Message)
}

func TestBadRequestTranslatesValidationErrors(t *testing.T) {
	h := newTestHandler(t)

	var req struct {
		Username string `json:"username" validate:"required"`
	}
	err := h.validate.Struct(req)
	require.Error(t, err)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	h.badRequest(rec, r, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	require.Len(t, resp.Message, 1)
	// 错误信息应该是翻译后的中文而不是英文原文
	assert.NotContains(t, resp.Message[0], "required")
}
