package domain

import "fmt"

type DashboardStats struct {
	TodayAttendance  int64  `json:"todayAttendance"`
	TotalEmployees   int64  `json:"totalEmployees"`
	PendingWorkPlans int64  `json:"pendingWorkPlans"`
	AttendanceRate   string `json:"attendanceRate"`
}

// FormatAttendanceRate 计算出勤率并格式化为保留两位小数的百分比字符串。
// 员工总数为 0 时返回 "0"，不允许除零
func FormatAttendanceRate(todayAttendance, totalEmployees int64) string {
	if totalEmployees <= 0 {
		return "0"
	}
	return fmt.Sprintf("%.2f", float64(todayAttendance)/float64(totalEmployees)*100)
}
