package repository

import (
	"context"
	"time"

	"github.com/hrm-dev/hr-workflow/backend/internal/domain"
)

func (r *Repository) InsertAttendanceEvent(event *domain.AttendanceEvent) error {
	// 打卡记录只追加，不存在更新和删除的路径
	query := `
		INSERT INTO attendance_events (employee_id, occurred_at, direction)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{event.EmployeeID, event.Timestamp, event.Direction}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&event.ID, &event.CreatedAt); err != nil {
		return err
	}

	return nil
}

// GetAttendanceEvents 获取某个员工的打卡记录，可选的时间范围是闭区间，
// 结果按打卡时间升序排列
func (r *Repository) GetAttendanceEvents(employeeID int64, start, end *time.Time) ([]*domain.AttendanceEvent, error) {
	query := `
		SELECT id, occurred_at, direction, created_at
		FROM attendance_events
		WHERE employee_id = $1
			AND ($2::timestamptz IS NULL OR occurred_at >= $2)
			AND ($3::timestamptz IS NULL OR occurred_at <= $3)
		ORDER BY occurred_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.AttendanceEvent, 0)
	for rows.Next() {
		event := &domain.AttendanceEvent{
			EmployeeID: employeeID,
		}
		if err := rows.Scan(&event.ID, &event.Timestamp, &event.Direction, &event.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *Repository) CountTodayAttendanceEvents() (int64, error) {
	query := `
		SELECT COUNT(*) FROM attendance_events
		WHERE occurred_at >= date_trunc('day', NOW())
			AND occurred_at < date_trunc('day', NOW()) + INTERVAL '1 day'
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var count int64
	if err := r.dbpool.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
