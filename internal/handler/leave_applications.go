package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/hrm-dev/hr-workflow/backend/internal/domain"
	"github.com/hrm-dev/hr-workflow/backend/internal/utils"
)

// 非管理员的请求体在结构上就没有 status 字段，而不是收下来再覆盖掉，
// 这样客户端声称的状态从一开始就进不了系统
type createLeaveRequest struct {
	StartDate *time.Time `json:"startDate" validate:"required"`
	EndDate   *time.Time `json:"endDate" validate:"required"`
	Reason    string     `json:"reason" validate:"required"`
}

type createLeaveRequestPrivileged struct {
	EmployeeID int64      `json:"employeeID" validate:"required"`
	StartDate  *time.Time `json:"startDate" validate:"required"`
	EndDate    *time.Time `json:"endDate" validate:"required"`
	Reason     string     `json:"reason" validate:"required"`
	Status     *int32     `json:"status" validate:"omitempty,min=1,max=3"`
}

func (h *Handler) CreateLeaveApplication(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Employee)

	application := &domain.LeaveApplication{
		Status: domain.LeaveDraft,
	}

	// 按角色选择要反序列化的请求变体：管理员可以替人提单并直接指定状态
	if myInfo.Role == domain.RoleAdmin {
		var req createLeaveRequestPrivileged
		if err := h.readJSON(r, &req); err != nil {
			h.badRequest(w, r, err)
			return
		}
		if err := h.validate.Struct(req); err != nil {
			h.badRequest(w, r, err)
			return
		}

		if _, err := h.repository.GetEmployeeByID(req.EmployeeID); err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFound(w, r, "员工不存在")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		application.EmployeeID = req.EmployeeID
		application.StartDate = *req.StartDate
		application.EndDate = *req.EndDate
		application.Reason = req.Reason
		if req.Status != nil {
			status, ok := domain.LeaveStatusFromCode(*req.Status)
			if !ok {
				h.errorResponse(w, r, http.StatusBadRequest, "无效的状态编码")
				return
			}
			application.Status = status
		}
	} else {
		var req createLeaveRequest
		if err := h.readJSON(r, &req); err != nil {
			h.badRequest(w, r, err)
			return
		}
		if err := h.validate.Struct(req); err != nil {
			h.badRequest(w, r, err)
			return
		}

		application.EmployeeID = myInfo.ID
		application.StartDate = *req.StartDate
		application.EndDate = *req.EndDate
		application.Reason = req.Reason
	}

	if err := utils.ValidateLeavePeriod(application); err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repository.CreateLeaveApplication(application); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.createdResponse(w, r, "创建请假申请成功", application)
}

func (h *Handler) GetAllLeaveApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := h.repository.GetAllLeaveApplications()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取请假申请列表成功", applications)
}

func (h *Handler) GetLeaveApplication(w http.ResponseWriter, r *http.Request) {
	application := r.Context().Value(LeaveApplicationCtx).(*domain.LeaveApplication)
	h.successResponse(w, r, "获取请假申请成功", application)
}

type updateLeaveRequest struct {
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Reason    *string    `json:"reason"`
}

type updateLeaveRequestPrivileged struct {
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Reason    *string    `json:"reason"`
	Status    *int32     `json:"status" validate:"omitempty,min=1,max=3"`
}

func (h *Handler) UpdateLeaveApplication(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Employee)
	application := r.Context().Value(LeaveApplicationCtx).(*domain.LeaveApplication)

	if !domain.CanEditLeaveApplication(myInfo, application) {
		h.forbidden(w, r)
		return
	}

	var decided bool

	if myInfo.Role == domain.RoleAdmin {
		var req updateLeaveRequestPrivileged
		if err := h.readJSON(r, &req); err != nil {
			h.badRequest(w, r, err)
			return
		}
		if err := h.validate.Struct(req); err != nil {
			h.badRequest(w, r, err)
			return
		}

		if req.StartDate != nil {
			application.StartDate = *req.StartDate
		}
		if req.EndDate != nil {
			application.EndDate = *req.EndDate
		}
		if req.Reason != nil {
			application.Reason = *req.Reason
		}
		if req.Status != nil {
			status, ok := domain.LeaveStatusFromCode(*req.Status)
			if !ok {
				h.errorResponse(w, r, http.StatusBadRequest, "无效的状态编码")
				return
			}
			decided = status != application.Status && status.IsTerminal()
			application.Status = status
		}
	} else {
		// 非管理员的变体没有 status 字段，申请保持草稿状态
		var req updateLeaveRequest
		if err := h.readJSON(r, &req); err != nil {
			h.badRequest(w, r, err)
			return
		}
		if err := h.validate.Struct(req); err != nil {
			h.badRequest(w, r, err)
			return
		}

		if req.StartDate != nil {
			application.StartDate = *req.StartDate
		}
		if req.EndDate != nil {
			application.EndDate = *req.EndDate
		}
		if req.Reason != nil {
			application.Reason = *req.Reason
		}
	}

	if err := utils.ValidateLeavePeriod(application); err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repository.UpdateLeaveApplication(application); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusBadRequest, "请假申请已被他人修改，请刷新后重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 审批结果通知申请人
	if decided {
		owner, err := h.repository.GetEmployeeByID(application.EmployeeID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		if err := h.queueMail(domain.MailMessage{
			Type: "leave_decision",
			To:   owner.Email,
			Data: domain.LeaveDecisionMailData{
				Name:      owner.Name,
				StartDate: application.StartDate.Format("2006-01-02"),
				EndDate:   application.EndDate.Format("2006-01-02"),
				Status:    string(application.Status),
			},
		}); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "更新请假申请成功", application)
}

func (h *Handler) DeleteLeaveApplication(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Employee)
	application := r.Context().Value(LeaveApplicationCtx).(*domain.LeaveApplication)

	if !domain.CanDeleteLeaveApplication(myInfo, application) {
		h.forbidden(w, r)
		return
	}

	if err := h.repository.DeleteLeaveApplication(application.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除请假申请成功", nil)
}
