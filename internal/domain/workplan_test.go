package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkPlanStatusCodeRoundTrip(t *testing.T) {
	cases := []struct {
		status WorkPlanStatus
		code   int32
	}{
		{WorkPlanDraft, 1},
		{WorkPlanSubmitted, 2},
		{WorkPlanApproved, 3},
		{WorkPlanRefused, 4},
		{WorkPlanCancelled, 5},
	}

	for _, c := range cases {
		assert.Equal(t, c.code, c.status.Code())

		status, ok := WorkPlanStatusFromCode(c.code)
		assert.True(t, ok)
		assert.Equal(t, c.status, status)
	}

	_, ok := WorkPlanStatusFromCode(0)
	assert.False(t, ok)
	_, ok = WorkPlanStatusFromCode(6)
	assert.False(t, ok)
}

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from WorkPlanStatus
		to   WorkPlanStatus
		want bool
	}{
		{WorkPlanDraft, WorkPlanSubmitted, true},
		{WorkPlanDraft, WorkPlanCancelled, true},
		{WorkPlanDraft, WorkPlanApproved, false},
		{WorkPlanDraft, WorkPlanRefused, false},
		{WorkPlanDraft, WorkPlanDraft, false},
		{WorkPlanSubmitted, WorkPlanApproved, true},
		{WorkPlanSubmitted, WorkPlanRefused, true},
		{WorkPlanSubmitted, WorkPlanCancelled, true},
		{WorkPlanSubmitted, WorkPlanDraft, false},
		{WorkPlanApproved, WorkPlanCancelled, false},
		{WorkPlanApproved, WorkPlanSubmitted, false},
		{WorkPlanRefused, WorkPlanSubmitted, false},
		{WorkPlanCancelled, WorkPlanSubmitted, false},
		{WorkPlanCancelled, WorkPlanDraft, false},
	}

	for _, c := range cases {
		got := c.from.CanTransitionTo(c.to)
		if got != c.want {
			t.Errorf("%s -> %s = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, WorkPlanDraft.IsTerminal())
	assert.False(t, WorkPlanSubmitted.IsTerminal())
	assert.True(t, WorkPlanApproved.IsTerminal())
	assert.True(t, WorkPlanRefused.IsTerminal())
	assert.True(t, WorkPlanCancelled.IsTerminal())
}

func TestValidateWorkPlanTransition(t *testing.T) {
	admin := &Employee{ID: 1, Role: RoleAdmin}
	owner := &Employee{ID: 2, Role: RoleFulltime}
	other := &Employee{ID: 3, Role: RolePartime}

	cases := []struct {
		name    string
		actor   *Employee
		from    WorkPlanStatus
		target  WorkPlanStatus
		wantErr error
	}{
		{"所有者提交草稿", owner, WorkPlanDraft, WorkPlanSubmitted, nil},
		{"管理员提交他人的草稿", admin, WorkPlanDraft, WorkPlanSubmitted, nil},
		{"非所有者提交他人的草稿", other, WorkPlanDraft, WorkPlanSubmitted, ErrForbidden},
		{"管理员批准", admin, WorkPlanSubmitted, WorkPlanApproved, nil},
		{"管理员拒绝", admin, WorkPlanSubmitted, WorkPlanRefused, nil},
		{"所有者批准自己的计划", owner, WorkPlanSubmitted, WorkPlanApproved, ErrForbidden},
		{"所有者拒绝自己的计划", owner, WorkPlanSubmitted, WorkPlanRefused, ErrForbidden},
		{"所有者撤销已提交的计划", owner, WorkPlanSubmitted, WorkPlanCancelled, nil},
		{"所有者撤销草稿", owner, WorkPlanDraft, WorkPlanCancelled, nil},
		{"非所有者撤销他人的计划", other, WorkPlanSubmitted, WorkPlanCancelled, ErrForbidden},
		{"草稿直接批准", admin, WorkPlanDraft, WorkPlanApproved, ErrInvalidTransition},
		{"已批准的计划再撤销", admin, WorkPlanApproved, WorkPlanCancelled, ErrInvalidTransition},
		{"已拒绝的计划再提交", owner, WorkPlanRefused, WorkPlanSubmitted, ErrInvalidTransition},
		{"已撤销的计划再提交", owner, WorkPlanCancelled, WorkPlanSubmitted, ErrInvalidTransition},
		// 状态图检查在权限检查之前，非所有者操作终态的计划也应报非法转换
		{"非所有者操作终态的计划", other, WorkPlanApproved, WorkPlanCancelled, ErrInvalidTransition},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			plan := &WorkPlan{ID: 10, EmployeeID: owner.ID, Status: c.from}
			err := ValidateWorkPlanTransition(c.actor, plan, c.target)
			assert.ErrorIs(t, err, c.wantErr)
		})
	}
}

func TestCanDeleteWorkPlan(t *testing.T) {
	admin := &Employee{ID: 1, Role: RoleAdmin}
	owner := &Employee{ID: 2, Role: RoleFulltime}
	other := &Employee{ID: 3, Role: RolePartime}

	draft := &WorkPlan{EmployeeID: owner.ID, Status: WorkPlanDraft}
	submitted := &WorkPlan{EmployeeID: owner.ID, Status: WorkPlanSubmitted}
	approved := &WorkPlan{EmployeeID: owner.ID, Status: WorkPlanApproved}

	assert.True(t, CanDeleteWorkPlan(admin, draft))
	assert.True(t, CanDeleteWorkPlan(admin, submitted))
	assert.True(t, CanDeleteWorkPlan(admin, approved))

	assert.True(t, CanDeleteWorkPlan(owner, draft))
	assert.False(t, CanDeleteWorkPlan(owner, submitted))
	assert.False(t, CanDeleteWorkPlan(owner, approved))

	assert.False(t, CanDeleteWorkPlan(other, draft))
}
