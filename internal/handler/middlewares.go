package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/hrm-dev/hr-workflow/backend/internal/domain"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("已处理请求", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // 这里如果用 slog 的话会很乱
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 从 cookie 中获取 token
		cookie, err := r.Cookie("__hr_workflow_token")
		if err != nil {
			switch {
			case errors.Is(err, http.ErrNoCookie):
				h.unauthorized(w, r, "用户未登录")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		// 验证 token
		tokenString := cookie.Value
		claims := &AuthClaims{}
		_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(h.config.JWT.Secret), nil
		})
		if err != nil {
			h.unauthorized(w, r, "无效的令牌")
			return
		}

		// 令牌中的角色是数字编码，这里统一转回角色再放进 context
		role, ok := domain.RoleFromCode(claims.Role)
		if !ok {
			h.unauthorized(w, r, "无效的令牌")
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, RoleCtxKey, role)
		ctx = context.WithValue(ctx, SubCtxKey, claims.Subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) myInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subString := r.Context().Value(SubCtxKey).(string)

		sub, err := strconv.ParseInt(subString, 10, 64)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		myInfo, err := h.repository.GetEmployeeByID(sub)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFound(w, r, "个人信息不存在")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), MyInfoCtx, myInfo)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) RequiredRole(roles []domain.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := r.Context().Value(RoleCtxKey).(domain.Role)
			if !slices.Contains(roles, role) {
				h.forbidden(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (h *Handler) employeeInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		employeeIDParam := chi.URLParam(r, "id")
		employeeID, err := strconv.ParseInt(employeeIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, http.StatusBadRequest, "员工ID无效")
			return
		}

		employee, err := h.repository.GetEmployeeByID(employeeID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFound(w, r, "员工不存在")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), EmployeeInfoCtx, employee)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) workPlan(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		planIDParam := chi.URLParam(r, "planID")
		planID, err := strconv.ParseInt(planIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, http.StatusBadRequest, "工作计划ID无效")
			return
		}

		plan, err := h.repository.GetWorkPlanByID(planID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFound(w, r, "工作计划不存在")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), WorkPlanCtx, plan)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) leaveApplication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		applicationIDParam := chi.URLParam(r, "id")
		applicationID, err := strconv.ParseInt(applicationIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, http.StatusBadRequest, "请假申请ID无效")
			return
		}

		application, err := h.repository.GetLeaveApplicationByID(applicationID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFound(w, r, "请假申请不存在")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), LeaveApplicationCtx, application)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
