package domain

import (
	"time"
)

type AttendanceDirection string

const (
	DirectionIn  AttendanceDirection = "IN"
	DirectionOut AttendanceDirection = "OUT"
)

var directionCodes = map[AttendanceDirection]int32{
	DirectionIn:  1,
	DirectionOut: 2,
}

var codeDirections = map[int32]AttendanceDirection{}

func init() {
	for direction, code := range directionCodes {
		codeDirections[code] = direction
	}
}

func (d AttendanceDirection) Code() int32 {
	return directionCodes[d]
}

func DirectionFromCode(code int32) (AttendanceDirection, bool) {
	direction, ok := codeDirections[code]
	return direction, ok
}

// AttendanceEvent 是一次打卡记录，写入后不可变更
type AttendanceEvent struct {
	ID         int64               `json:"id"`
	EmployeeID int64               `json:"employeeID"`
	Timestamp  time.Time           `json:"timestamp"`
	Direction  AttendanceDirection `json:"direction"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// GroupEventsByDate 把打卡记录按照 UTC 日期分组，组内保持时间顺序。
// 没有打卡记录的日期不会出现在结果中，前端依赖 key 是否存在来判断当天是否有活动，
// 所以这里绝对不能为空日期放一个空数组
func GroupEventsByDate(events []*AttendanceEvent) map[string][]*AttendanceEvent {
	eventsByDate := make(map[string][]*AttendanceEvent)

	for _, event := range events {
		date := event.Timestamp.UTC().Format("2006-01-02")
		eventsByDate[date] = append(eventsByDate[date], event)
	}

	return eventsByDate
}
