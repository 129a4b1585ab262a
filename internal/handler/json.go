package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	slog.Error("服务器内部错误", "method", r.Method, "path", r.URL.Path, "error", err)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logInternalServerError(r, err)
		http.Error(w, "服务器内部错误", http.StatusInternalServerError)
	}
}

// Response 是所有接口统一的响应信封，无论成功失败都是这三个字段。
// HTTP 状态码只作参考，客户端应该根据 isSuccess 判断结果
type Response struct {
	IsSuccess bool     `json:"isSuccess"`
	Message   []string `json:"message"`
	Metadata  any      `json:"metadata"`
}

func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, status, Response{
		IsSuccess: false,
		Message:   []string{msg},
		Metadata:  nil,
	})
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	h.errorResponse(w, r, http.StatusBadRequest, validationErrors[0].Translate(h.translator))
}

func (h *Handler) unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	h.errorResponse(w, r, http.StatusUnauthorized, msg)
}

func (h *Handler) forbidden(w http.ResponseWriter, r *http.Request) {
	h.errorResponse(w, r, http.StatusForbidden, "权限不足")
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request, msg string) {
	h.errorResponse(w, r, http.StatusNotFound, msg)
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.writeJSON(w, r, http.StatusInternalServerError, Response{
		IsSuccess: false,
		Message:   []string{"服务器内部错误"},
		Metadata:  nil,
	})
}

func (h *Handler) successResponse(w http.ResponseWriter, r *http.Request, msg string, data any) {
	h.writeJSON(w, r, http.StatusOK, Response{
		IsSuccess: true,
		Message:   []string{msg},
		Metadata:  data,
	})
}

func (h *Handler) createdResponse(w http.ResponseWriter, r *http.Request, msg string, data any) {
	h.writeJSON(w, r, http.StatusCreated, Response{
		IsSuccess: true,
		Message:   []string{msg},
		Metadata:  data,
	})
}
