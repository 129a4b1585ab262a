package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaveStatusCodeRoundTrip(t *testing.T) {
	cases := []struct {
		status LeaveStatus
		code   int32
	}{
		{LeaveDraft, 1},
		{LeaveApproved, 2},
		{LeaveRefused, 3},
	}

	for _, c := range cases {
		assert.Equal(t, c.code, c.status.Code())

		status, ok := LeaveStatusFromCode(c.code)
		assert.True(t, ok)
		assert.Equal(t, c.status, status)
	}

	_, ok := LeaveStatusFromCode(0)
	assert.False(t, ok)
	_, ok = LeaveStatusFromCode(4)
	assert.False(t, ok)
}

func TestLeaveStatusIsTerminal(t *testing.T) {
	assert.False(t, LeaveDraft.IsTerminal())
	assert.True(t, LeaveApproved.IsTerminal())
	assert.True(t, LeaveRefused.IsTerminal())
}

func TestCanEditLeaveApplication(t *testing.T) {
	admin := &Employee{ID: 1, Role: RoleAdmin}
	owner := &Employee{ID: 2, Role: RolePartime}
	other := &Employee{ID: 3, Role: RoleFulltime}

	draft := &LeaveApplication{EmployeeID: owner.ID, Status: LeaveDraft}
	approved := &LeaveApplication{EmployeeID: owner.ID, Status: LeaveApproved}
	refused := &LeaveApplication{EmployeeID: owner.ID, Status: LeaveRefused}

	assert.True(t, CanEditLeaveApplication(admin, draft))
	assert.True(t, CanEditLeaveApplication(admin, approved))
	assert.True(t, CanEditLeaveApplication(admin, refused))

	assert.True(t, CanEditLeaveApplication(owner, draft))
	assert.False(t, CanEditLeaveApplication(owner, approved))
	assert.False(t, CanEditLeaveApplication(owner, refused))

	assert.False(t, CanEditLeaveApplication(other, draft))
}

func TestCanDeleteLeaveApplication(t *testing.T) {
	admin := &Employee{ID: 1, Role: RoleAdmin}
	owner := &Employee{ID: 2, Role: RolePartime}
	other := &Employee{ID: 3, Role: RoleFulltime}

	draft := &LeaveApplication{EmployeeID: owner.ID, Status: LeaveDraft}
	approved := &LeaveApplication{EmployeeID: owner.ID, Status: LeaveApproved}

	assert.True(t, CanDeleteLeaveApplication(admin, draft))
	assert.True(t, CanDeleteLeaveApplication(admin, approved))

	assert.True(t, CanDeleteLeaveApplication(owner, draft))
	assert.False(t, CanDeleteLeaveApplication(owner, approved))

	assert.False(t, CanDeleteLeaveApplication(other, draft))
}
