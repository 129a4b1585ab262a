package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrm-dev/hr-workflow/backend/internal/domain"
)

func TestGenerateRandomPassword(t *testing.T) {
	for _, length := range []int{1, 8, 12, 32} {
		password := GenerateRandomPassword(length)
		assert.Len(t, []rune(password), length)
	}
}

func TestGenerateUsernameFromChineseName(t *testing.T) {
	username := GenerateUsernameFromChineseName("张伟")

	// 用户名应该是纯 ASCII 的拼音前缀加数字后缀
	for _, r := range username {
		assert.True(t, r < 128, "用户名中出现了非 ASCII 字符: %q", username)
	}
	assert.NotEmpty(t, username)
	assert.True(t, strings.HasPrefix(username, "z"), "username = %q", username)
}

func TestGenerateRandomEmployee(t *testing.T) {
	employee, err := GenerateRandomEmployee("test-password", "example.com")
	require.NoError(t, err)

	assert.NotEmpty(t, employee.Name)
	assert.NotEmpty(t, employee.Username)
	assert.Equal(t, employee.Username+"@example.com", employee.Email)
	assert.NotEqual(t, domain.RoleAdmin, employee.Role)
	assert.True(t, employee.Role.IsValid())

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte("test-password")))
}

func TestGenerateRandomWorkPlan(t *testing.T) {
	plan := GenerateRandomWorkPlan(42)

	assert.Equal(t, int64(42), plan.EmployeeID)
	assert.Equal(t, domain.WorkPlanDraft, plan.Status)
	assert.False(t, plan.PeriodEnd.Before(plan.PeriodStart))
	require.NotEmpty(t, plan.DayAssignments)

	for _, assignment := range plan.DayAssignments {
		assert.Equal(t, domain.AssignmentPending, assignment.Status)
		assert.NotEmpty(t, assignment.ShiftLabel)
		assert.Positive(t, assignment.ShiftTime)
	}
}

func TestGenerateRandomLeaveApplication(t *testing.T) {
	application := GenerateRandomLeaveApplication(42)

	assert.Equal(t, int64(42), application.EmployeeID)
	assert.Equal(t, domain.LeaveDraft, application.Status)
	assert.False(t, application.EndDate.Before(application.StartDate))
	assert.NotEmpty(t, application.Reason)
}

func TestGenerateRandomAttendanceEvents(t *testing.T) {
	events := GenerateRandomAttendanceEvents(42, 5)

	require.Len(t, events, 10)
	for i := 0; i < len(events); i += 2 {
		assert.Equal(t, domain.DirectionIn, events[i].Direction)
		assert.Equal(t, domain.DirectionOut, events[i+1].Direction)
		assert.True(t, events[i].Timestamp.Before(events[i+1].Timestamp))
		assert.Equal(t, int64(42), events[i].EmployeeID)
	}
}
