package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hrm-dev/hr-workflow/backend/internal/domain"
)

func TestValidateWorkPlanPeriod(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	plan := &domain.WorkPlan{PeriodStart: start, PeriodEnd: start.AddDate(0, 0, 6)}
	assert.NoError(t, ValidateWorkPlanPeriod(plan))

	// 起止同一天也合法
	plan = &domain.WorkPlan{PeriodStart: start, PeriodEnd: start}
	assert.NoError(t, ValidateWorkPlanPeriod(plan))

	plan = &domain.WorkPlan{PeriodStart: start, PeriodEnd: start.AddDate(0, 0, -1)}
	assert.Error(t, ValidateWorkPlanPeriod(plan))
}

func TestValidateLeavePeriod(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	application := &domain.LeaveApplication{StartDate: start, EndDate: start.AddDate(0, 0, 2)}
	assert.NoError(t, ValidateLeavePeriod(application))

	application = &domain.LeaveApplication{StartDate: start, EndDate: start}
	assert.NoError(t, ValidateLeavePeriod(application))

	application = &domain.LeaveApplication{StartDate: start, EndDate: start.AddDate(0, 0, -1)}
	assert.Error(t, ValidateLeavePeriod(application))
}
