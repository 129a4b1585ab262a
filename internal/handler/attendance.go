package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/hrm-dev/hr-workflow/backend/internal/domain"
)

func (h *Handler) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)

	var req struct {
		TimeSweep     *time.Time `json:"timeSweep" validate:"required"`
		StatusHistory int32      `json:"statusHistory" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	direction, ok := domain.DirectionFromCode(req.StatusHistory)
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "无效的打卡方向")
		return
	}

	// 只追加记录，不做任何去重或顺序校验，原始数据的解释交给聚合查询
	event := &domain.AttendanceEvent{
		EmployeeID: employee.ID,
		Timestamp:  *req.TimeSweep,
		Direction:  direction,
	}

	if err := h.repository.InsertAttendanceEvent(event); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.createdResponse(w, r, "打卡成功", map[string]any{
		"employeeName": employee.Name,
		"timeSweep":    event.Timestamp,
		"status":       event.Direction,
	})
}

// parseDateParam 同时接受纯日期和 RFC3339 两种格式。
// endOfDay 为 true 时，纯日期会被扩展到当天的最后一刻，使日期范围成为闭区间
func parseDateParam(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse("2006-01-02", value); err == nil {
		if endOfDay {
			t = t.AddDate(0, 0, 1).Add(-time.Microsecond)
		}
		return &t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *Handler) GetAttendanceHistory(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)

	start, err := parseDateParam(r.URL.Query().Get("startDate"), false)
	if err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "开始日期格式错误")
		return
	}
	end, err := parseDateParam(r.URL.Query().Get("endDate"), true)
	if err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "结束日期格式错误")
		return
	}

	events, err := h.repository.GetAttendanceEvents(employee.ID, start, end)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取考勤记录成功", events)
}

func (h *Handler) GetAttendanceCalendar(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.errorResponse(w, r, http.StatusBadRequest, "月份无效")
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year <= 0 {
		h.errorResponse(w, r, http.StatusBadRequest, "年份无效")
		return
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Microsecond)

	events, err := h.repository.GetAttendanceEvents(employee.ID, &monthStart, &monthEnd)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	plans, err := h.repository.GetWorkPlansInPeriod(employee.ID, monthStart, monthEnd)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取考勤日历成功", map[string]any{
		"workPlans":        plans,
		"attendanceByDate": domain.GroupEventsByDate(events),
	})
}
