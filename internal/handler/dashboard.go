package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hrm-dev/hr-workflow/backend/internal/domain"
)

const dashboardStatsCacheKey = "dashboard_stats"

func (h *Handler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	// 先查缓存，仪表盘会被轮询，没必要每次都跑三个 COUNT
	cached, err := h.redisClient.Get(ctx, dashboardStatsCacheKey).Result()
	if err == nil {
		stats := &domain.DashboardStats{}
		if err := json.Unmarshal([]byte(cached), stats); err == nil {
			h.successResponse(w, r, "获取仪表盘统计成功", stats)
			return
		}
	} else if !errors.Is(err, redis.Nil) {
		// 缓存不可用时退化为直接查库，只记日志不报错
		slog.Error("无法读取仪表盘统计缓存", "error", err)
	}

	todayAttendance, err := h.repository.CountTodayAttendanceEvents()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	totalEmployees, err := h.repository.CountEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	pendingWorkPlans, err := h.repository.CountWorkPlansByStatus(domain.WorkPlanSubmitted)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	stats := &domain.DashboardStats{
		TodayAttendance:  todayAttendance,
		TotalEmployees:   totalEmployees,
		PendingWorkPlans: pendingWorkPlans,
		AttendanceRate:   domain.FormatAttendanceRate(todayAttendance, totalEmployees),
	}

	if data, err := json.Marshal(stats); err == nil {
		if err := h.redisClient.Set(ctx, dashboardStatsCacheKey, data, time.Duration(h.config.Dashboard.CacheExpiration)*time.Second).Err(); err != nil {
			slog.Error("无法写入仪表盘统计缓存", "error", err)
		}
	}

	h.successResponse(w, r, "获取仪表盘统计成功", stats)
}
