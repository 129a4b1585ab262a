package utils

import (
	"fmt"

	"github.com/hrm-dev/hr-workflow/backend/internal/domain"
)

func ValidateWorkPlanPeriod(plan *domain.WorkPlan) error {
	if plan.PeriodEnd.Before(plan.PeriodStart) {
		return fmt.Errorf("计划结束时间不能早于开始时间")
	}
	return nil
}

func ValidateLeavePeriod(application *domain.LeaveApplication) error {
	if application.EndDate.Before(application.StartDate) {
		return fmt.Errorf("请假结束日期不能早于开始日期")
	}
	return nil
}
