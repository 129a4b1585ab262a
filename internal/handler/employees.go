package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrm-dev/hr-workflow/backend/internal/domain"
	"github.com/hrm-dev/hr-workflow/backend/internal/utils"
)

func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取员工列表成功", employees)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required"`
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Role     int32  `json:"role" validate:"required,min=1,max=3"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	role, ok := domain.RoleFromCode(req.Role)
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "无效的角色编码")
		return
	}

	// 生成随机初始密码
	password := utils.GenerateRandomPassword(h.config.NewEmployee.PasswordLength)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	employee := &domain.Employee{
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		Name:         req.Name,
		Email:        req.Email,
		Role:         role,
	}

	if err := h.repository.CreateEmployee(employee); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "employees_username_key":
				h.errorResponse(w, r, http.StatusBadRequest, "用户名已存在")
			case pgErr.ConstraintName == "employees_email_key":
				h.errorResponse(w, r, http.StatusBadRequest, "邮箱已存在")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 初始密码通过邮件发给员工本人
	if err := h.queueMail(domain.MailMessage{
		Type: "create_employee",
		To:   employee.Email,
		Data: domain.CreateEmployeeMailData{
			Name:     req.Name,
			Username: req.Username,
			Password: password,
		},
	}); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.createdResponse(w, r, "员工创建成功", employee)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)
	h.successResponse(w, r, "获取员工信息成功", employee)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     *string `json:"name"`
		Email    *string `json:"email" validate:"omitempty,email"`
		Role     *int32  `json:"role" validate:"omitempty,min=1,max=3"`
		IsActive *bool   `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Role != nil {
		role, ok := domain.RoleFromCode(*req.Role)
		if !ok {
			h.errorResponse(w, r, http.StatusBadRequest, "无效的角色编码")
			return
		}
		employee.Role = role
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := h.repository.UpdateEmployee(employee); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "employees_email_key":
				h.errorResponse(w, r, http.StatusBadRequest, "邮箱已存在")
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusBadRequest, "更新员工信息失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新员工信息成功", employee)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)

	if err := h.repository.DeleteEmployee(employee.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除员工成功", nil)
}
