package domain

import (
	"time"
)

type LeaveStatus string

const (
	LeaveDraft    LeaveStatus = "DRAFT"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveRefused  LeaveStatus = "REFUSED"
)

var leaveStatusCodes = map[LeaveStatus]int32{
	LeaveDraft:    1,
	LeaveApproved: 2,
	LeaveRefused:  3,
}

var codeLeaveStatuses = map[int32]LeaveStatus{}

func init() {
	for status, code := range leaveStatusCodes {
		codeLeaveStatuses[code] = status
	}
}

func (s LeaveStatus) Code() int32 {
	return leaveStatusCodes[s]
}

func (s LeaveStatus) IsValid() bool {
	_, ok := leaveStatusCodes[s]
	return ok
}

func LeaveStatusFromCode(code int32) (LeaveStatus, bool) {
	status, ok := codeLeaveStatuses[code]
	return status, ok
}

// 请假申请没有单独的已提交状态，创建即为 DRAFT，等待管理员审批。
// APPROVED 和 REFUSED 都是终态
func (s LeaveStatus) IsTerminal() bool {
	return s != LeaveDraft
}

type LeaveApplication struct {
	ID           int64       `json:"id"`
	EmployeeID   int64       `json:"employeeID"`
	EmployeeName string      `json:"employeeName,omitempty"`
	StartDate    time.Time   `json:"startDate"`
	EndDate      time.Time   `json:"endDate"`
	Reason       string      `json:"reason"`
	Status       LeaveStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	Version      int32       `json:"-"`
}

// CanEditLeaveApplication 非管理员只能修改自己的、且仍处于草稿状态的申请
func CanEditLeaveApplication(actor *Employee, application *LeaveApplication) bool {
	if actor.Role == RoleAdmin {
		return true
	}
	return actor.ID == application.EmployeeID && application.Status == LeaveDraft
}

// CanDeleteLeaveApplication 所有者只能在草稿状态下删除，管理员任何状态都可以删除
func CanDeleteLeaveApplication(actor *Employee, application *LeaveApplication) bool {
	if actor.Role == RoleAdmin {
		return true
	}
	return actor.ID == application.EmployeeID && application.Status == LeaveDraft
}
