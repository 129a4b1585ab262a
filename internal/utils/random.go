package utils

import (
	"math/rand"
	"time"

	"github.com/mozillazg/go-pinyin"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrm-dev/hr-workflow/backend/internal/domain"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "霞", "飞", "玲", "超",
	"华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var roles = []domain.Role{
	domain.RolePartime,
	domain.RoleFulltime,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var digits = "0123456789"

func GenerateUsernameFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	username := ""

	for _, pinyin := range pinyinArray {
		length := rand.Intn(len(pinyin)) + 1
		username += pinyin[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomEmployee(password string, emailDomainName string) (*domain.Employee, error) {
	name := GenerateRandomChineseName()
	username := GenerateUsernameFromChineseName(name)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	employee := &domain.Employee{
		Username:     username,
		PasswordHash: string(passwordHash),
		Name:         name,
		Email:        username + "@" + emailDomainName,
		Role:         GenerateRandomRole(),
	}

	return employee, nil
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

var shiftLabels = []string{"早班", "中班", "晚班"}

// GenerateRandomWorkPlan 生成一个从明天开始、覆盖一周的随机工作计划
func GenerateRandomWorkPlan(employeeID int64) *domain.WorkPlan {
	periodStart := time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour)
	periodEnd := periodStart.AddDate(0, 0, 6)

	assignmentsNum := rand.Intn(5) + 1
	assignments := make([]domain.DayAssignment, assignmentsNum)
	for i := range assignments {
		assignments[i] = domain.DayAssignment{
			ShiftLabel: shiftLabels[rand.Intn(len(shiftLabels))],
			ShiftTime:  int32(rand.Intn(7) + 1),
			Status:     domain.AssignmentPending,
		}
	}

	return &domain.WorkPlan{
		EmployeeID:     employeeID,
		PeriodStart:    periodStart,
		PeriodEnd:      periodEnd,
		Status:         domain.WorkPlanDraft,
		DayAssignments: assignments,
	}
}

var leaveReasons = []string{"事假", "病假", "年假", "婚假", "调休"}

func GenerateRandomLeaveApplication(employeeID int64) *domain.LeaveApplication {
	startDate := time.Now().AddDate(0, 0, rand.Intn(14)+1).Truncate(24 * time.Hour)
	endDate := startDate.AddDate(0, 0, rand.Intn(5))

	return &domain.LeaveApplication{
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     leaveReasons[rand.Intn(len(leaveReasons))],
		Status:     domain.LeaveDraft,
	}
}

// GenerateRandomAttendanceEvents 为过去 days 天生成成对的上下班打卡记录
func GenerateRandomAttendanceEvents(employeeID int64, days int) []*domain.AttendanceEvent {
	events := make([]*domain.AttendanceEvent, 0, days*2)

	for i := 1; i <= days; i++ {
		day := time.Now().AddDate(0, 0, -i).Truncate(24 * time.Hour)
		checkIn := day.Add(8*time.Hour + time.Duration(rand.Intn(60))*time.Minute)
		checkOut := day.Add(17*time.Hour + time.Duration(rand.Intn(120))*time.Minute)

		events = append(events,
			&domain.AttendanceEvent{
				EmployeeID: employeeID,
				Timestamp:  checkIn,
				Direction:  domain.DirectionIn,
			},
			&domain.AttendanceEvent{
				EmployeeID: employeeID,
				Timestamp:  checkOut,
				Direction:  domain.DirectionOut,
			},
		)
	}

	return events
}
