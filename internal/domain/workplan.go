package domain

import (
	"errors"
	"time"
)

type WorkPlanStatus string

const (
	WorkPlanDraft     WorkPlanStatus = "DRAFT"
	WorkPlanSubmitted WorkPlanStatus = "SUBMITTED"
	WorkPlanApproved  WorkPlanStatus = "APPROVED"
	WorkPlanRefused   WorkPlanStatus = "REFUSED"
	WorkPlanCancelled WorkPlanStatus = "CANCELLED"
)

var workPlanStatusCodes = map[WorkPlanStatus]int32{
	WorkPlanDraft:     1,
	WorkPlanSubmitted: 2,
	WorkPlanApproved:  3,
	WorkPlanRefused:   4,
	WorkPlanCancelled: 5,
}

var codeWorkPlanStatuses = map[int32]WorkPlanStatus{}

func init() {
	for status, code := range workPlanStatusCodes {
		codeWorkPlanStatuses[code] = status
	}
}

func (s WorkPlanStatus) Code() int32 {
	return workPlanStatusCodes[s]
}

func (s WorkPlanStatus) IsValid() bool {
	_, ok := workPlanStatusCodes[s]
	return ok
}

func WorkPlanStatusFromCode(code int32) (WorkPlanStatus, bool) {
	status, ok := codeWorkPlanStatuses[code]
	return status, ok
}

// 工作计划的状态转换图，不在图中的转换一律拒绝。
// APPROVED、REFUSED 和 CANCELLED 是终态，没有出边
var workPlanTransitions = map[WorkPlanStatus][]WorkPlanStatus{
	WorkPlanDraft:     {WorkPlanSubmitted, WorkPlanCancelled},
	WorkPlanSubmitted: {WorkPlanApproved, WorkPlanRefused, WorkPlanCancelled},
}

var (
	ErrInvalidTransition = errors.New("非法的状态转换")
	ErrForbidden         = errors.New("权限不足")
)

func (s WorkPlanStatus) CanTransitionTo(target WorkPlanStatus) bool {
	for _, next := range workPlanTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

func (s WorkPlanStatus) IsTerminal() bool {
	return len(workPlanTransitions[s]) == 0
}

type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "PENDING"
	AssignmentConfirmed AssignmentStatus = "CONFIRMED"
	AssignmentRejected  AssignmentStatus = "REJECTED"
)

// DayAssignment 是工作计划中的一个班次，只能随所属计划一起创建，
// 删除计划时一并删除
type DayAssignment struct {
	ID         int64            `json:"id"`
	WorkPlanID int64            `json:"workPlanID"`
	ShiftLabel string           `json:"shiftLabel"`
	ShiftTime  int32            `json:"shiftTime"`
	Status     AssignmentStatus `json:"status"`
}

type WorkPlan struct {
	ID             int64           `json:"id"`
	EmployeeID     int64           `json:"employeeID"`
	EmployeeName   string          `json:"employeeName,omitempty"`
	PeriodStart    time.Time       `json:"periodStart"`
	PeriodEnd      time.Time       `json:"periodEnd"`
	Status         WorkPlanStatus  `json:"status"`
	DayAssignments []DayAssignment `json:"dayAssignments"`
	CreatedAt      time.Time       `json:"createdAt"`
	Version        int32           `json:"-"`
}

// ValidateWorkPlanTransition 先检查状态图，再检查调用者的权限：
// 审批（APPROVED / REFUSED）只有管理员可以执行，
// 提交和撤销只有计划的所有者（或管理员）可以执行。
// 状态图检查在权限检查之前，保证终态上的任何操作都报非法转换而不是权限不足
func ValidateWorkPlanTransition(actor *Employee, plan *WorkPlan, target WorkPlanStatus) error {
	if !plan.Status.CanTransitionTo(target) {
		return ErrInvalidTransition
	}

	switch target {
	case WorkPlanApproved, WorkPlanRefused:
		if actor.Role != RoleAdmin {
			return ErrForbidden
		}
	case WorkPlanSubmitted, WorkPlanCancelled:
		if actor.Role != RoleAdmin && actor.ID != plan.EmployeeID {
			return ErrForbidden
		}
	}

	return nil
}

// CanDeleteWorkPlan 管理员可以删除任何计划，所有者只能删除还在草稿状态的计划
func CanDeleteWorkPlan(actor *Employee, plan *WorkPlan) bool {
	if actor.Role == RoleAdmin {
		return true
	}
	return actor.ID == plan.EmployeeID && plan.Status == WorkPlanDraft
}
