package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/hrm-dev/hr-workflow/backend/internal/domain"
	"github.com/hrm-dev/hr-workflow/backend/internal/utils"
)

func (h *Handler) CreateWorkPlan(w http.ResponseWriter, r *http.Request) {
	// 计划归属的员工永远取自登录身份，不从请求体中读，防止冒用他人身份建计划
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Employee)

	var req struct {
		PeriodStart *time.Time `json:"periodStart" validate:"required"`
		PeriodEnd   *time.Time `json:"periodEnd" validate:"required"`
		Status      int32      `json:"status" validate:"required"`
		DayWorks    []struct {
			ShiftLabel string `json:"shiftLabel" validate:"required"`
			ShiftTime  int32  `json:"shiftTime" validate:"required,min=1"`
		} `json:"dayWorks" validate:"required,min=1,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 创建时只允许 DRAFT 和 SUBMITTED，其余状态只能通过状态转换到达
	status, ok := domain.WorkPlanStatusFromCode(req.Status)
	if !ok || (status != domain.WorkPlanDraft && status != domain.WorkPlanSubmitted) {
		h.errorResponse(w, r, http.StatusBadRequest, "无效的初始状态")
		return
	}

	plan := &domain.WorkPlan{
		EmployeeID:     myInfo.ID,
		PeriodStart:    *req.PeriodStart,
		PeriodEnd:      *req.PeriodEnd,
		Status:         status,
		DayAssignments: make([]domain.DayAssignment, len(req.DayWorks)),
	}

	for i, dayWork := range req.DayWorks {
		plan.DayAssignments[i] = domain.DayAssignment{
			ShiftLabel: dayWork.ShiftLabel,
			ShiftTime:  dayWork.ShiftTime,
			Status:     domain.AssignmentPending,
		}
	}

	if err := utils.ValidateWorkPlanPeriod(plan); err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	// 计划和班次在同一个事务中落库
	if err := h.repository.CreateWorkPlan(plan); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.createdResponse(w, r, "创建工作计划成功", plan)
}

func (h *Handler) GetWorkPlan(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(WorkPlanCtx).(*domain.WorkPlan)
	h.successResponse(w, r, "获取工作计划成功", plan)
}

func (h *Handler) GetWorkPlansByEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)

	var statusFilter *domain.WorkPlanStatus
	if statusParam := r.URL.Query().Get("status"); statusParam != "" {
		status := domain.WorkPlanStatus(statusParam)
		if !status.IsValid() {
			h.errorResponse(w, r, http.StatusBadRequest, "无效的状态过滤条件")
			return
		}
		statusFilter = &status
	}

	plans, err := h.repository.GetWorkPlansByEmployee(employee.ID, statusFilter)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取工作计划列表成功", plans)
}

func (h *Handler) UpdateWorkPlanStatus(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Employee)
	plan := r.Context().Value(WorkPlanCtx).(*domain.WorkPlan)

	var req struct {
		Status int32 `json:"status" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	target, ok := domain.WorkPlanStatusFromCode(req.Status)
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "无效的状态编码")
		return
	}

	// 先查状态图再查权限，必须在同一个版本号守护的写入中完成落库
	if err := domain.ValidateWorkPlanTransition(myInfo, plan, target); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTransition):
			h.errorResponse(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrForbidden):
			h.forbidden(w, r)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.repository.UpdateWorkPlanStatus(plan, target); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			// 版本号对不上，说明有人抢先改了状态
			h.errorResponse(w, r, http.StatusBadRequest, "工作计划已被他人修改，请刷新后重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 审批结果通知计划的所有者
	if target == domain.WorkPlanApproved || target == domain.WorkPlanRefused {
		owner, err := h.repository.GetEmployeeByID(plan.EmployeeID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		if err := h.queueMail(domain.MailMessage{
			Type: "work_plan_decision",
			To:   owner.Email,
			Data: domain.WorkPlanDecisionMailData{
				Name:        owner.Name,
				PeriodStart: plan.PeriodStart.Format("2006-01-02"),
				PeriodEnd:   plan.PeriodEnd.Format("2006-01-02"),
				Status:      string(target),
			},
		}); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "更新工作计划状态成功", plan)
}

func (h *Handler) DeleteWorkPlan(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Employee)
	plan := r.Context().Value(WorkPlanCtx).(*domain.WorkPlan)

	if !domain.CanDeleteWorkPlan(myInfo, plan) {
		h.forbidden(w, r)
		return
	}

	if err := h.repository.DeleteWorkPlan(plan.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除工作计划成功", nil)
}
