package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/hrm-dev/hr-workflow/backend/internal/domain"
)

// CreateWorkPlan 在同一个事务中插入工作计划和它的所有班次，
// 任何一步失败都整体回滚，不允许出现没有班次的半成品计划
func (r *Repository) CreateWorkPlan(plan *domain.WorkPlan) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO work_plans (employee_id, period_start, period_end, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`
	args := []any{plan.EmployeeID, plan.PeriodStart, plan.PeriodEnd, plan.Status}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&plan.ID, &plan.CreatedAt, &plan.Version); err != nil {
		return err
	}

	for i := range plan.DayAssignments {
		query = `
			INSERT INTO day_assignments (work_plan_id, shift_label, shift_time, status)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`
		params := []any{plan.ID, plan.DayAssignments[i].ShiftLabel, plan.DayAssignments[i].ShiftTime, plan.DayAssignments[i].Status}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&plan.DayAssignments[i].ID); err != nil {
			return err
		}
		plan.DayAssignments[i].WorkPlanID = plan.ID
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetWorkPlanByID(id int64) (*domain.WorkPlan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT wp.employee_id, wp.period_start, wp.period_end, wp.status, wp.created_at, wp.version,
			da.id, da.shift_label, da.shift_time, da.status
		FROM work_plans wp
		LEFT JOIN day_assignments da ON wp.id = da.work_plan_id
		WHERE wp.id = $1
		ORDER BY da.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plan := &domain.WorkPlan{
		ID:             id,
		DayAssignments: make([]domain.DayAssignment, 0),
	}
	found := false

	for rows.Next() {
		var row struct {
			AssignmentID     sql.NullInt64
			ShiftLabel       sql.NullString
			ShiftTime        sql.NullInt32
			AssignmentStatus sql.NullString
		}

		dst := []any{
			&plan.EmployeeID,
			&plan.PeriodStart,
			&plan.PeriodEnd,
			&plan.Status,
			&plan.CreatedAt,
			&plan.Version,
			&row.AssignmentID,
			&row.ShiftLabel,
			&row.ShiftTime,
			&row.AssignmentStatus,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		found = true

		// 班次 ID 为空表示这个计划没有任何班次
		if !row.AssignmentID.Valid {
			continue
		}

		plan.DayAssignments = append(plan.DayAssignments, domain.DayAssignment{
			ID:         row.AssignmentID.Int64,
			WorkPlanID: id,
			ShiftLabel: row.ShiftLabel.String,
			ShiftTime:  row.ShiftTime.Int32,
			Status:     domain.AssignmentStatus(row.AssignmentStatus.String),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !found {
		return nil, sql.ErrNoRows
	}

	return plan, nil
}

// GetWorkPlansByEmployee 获取某个员工的所有工作计划，按创建时间倒序排列，
// 可以按状态过滤
func (r *Repository) GetWorkPlansByEmployee(employeeID int64, status *domain.WorkPlanStatus) ([]*domain.WorkPlan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT wp.id, wp.period_start, wp.period_end, wp.status, wp.created_at, wp.version, e.name,
			da.id, da.shift_label, da.shift_time, da.status
		FROM work_plans wp
		JOIN employees e ON wp.employee_id = e.id
		LEFT JOIN day_assignments da ON wp.id = da.work_plan_id
		WHERE wp.employee_id = $1
			AND ($2::text IS NULL OR wp.status = $2)
		ORDER BY wp.created_at DESC, wp.id, da.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, employeeID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// rows 已经按创建时间倒序排好，这里用 map 去重、用 slice 保持顺序
	plansMap := make(map[int64]*domain.WorkPlan)
	plans := make([]*domain.WorkPlan, 0)

	for rows.Next() {
		var row struct {
			PlanID           int64
			PeriodStart      time.Time
			PeriodEnd        time.Time
			Status           domain.WorkPlanStatus
			CreatedAt        time.Time
			Version          int32
			EmployeeName     string
			AssignmentID     sql.NullInt64
			ShiftLabel       sql.NullString
			ShiftTime        sql.NullInt32
			AssignmentStatus sql.NullString
		}

		dst := []any{
			&row.PlanID,
			&row.PeriodStart,
			&row.PeriodEnd,
			&row.Status,
			&row.CreatedAt,
			&row.Version,
			&row.EmployeeName,
			&row.AssignmentID,
			&row.ShiftLabel,
			&row.ShiftTime,
			&row.AssignmentStatus,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		plan, exists := plansMap[row.PlanID]
		if !exists {
			plan = &domain.WorkPlan{
				ID:             row.PlanID,
				EmployeeID:     employeeID,
				EmployeeName:   row.EmployeeName,
				PeriodStart:    row.PeriodStart,
				PeriodEnd:      row.PeriodEnd,
				Status:         row.Status,
				DayAssignments: make([]domain.DayAssignment, 0),
				CreatedAt:      row.CreatedAt,
				Version:        row.Version,
			}
			plansMap[row.PlanID] = plan
			plans = append(plans, plan)
		}

		if !row.AssignmentID.Valid {
			continue
		}

		plan.DayAssignments = append(plan.DayAssignments, domain.DayAssignment{
			ID:         row.AssignmentID.Int64,
			WorkPlanID: row.PlanID,
			ShiftLabel: row.ShiftLabel.String,
			ShiftTime:  row.ShiftTime.Int32,
			Status:     domain.AssignmentStatus(row.AssignmentStatus.String),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}

// GetWorkPlansInPeriod 获取某个员工计划时段与给定区间有交集的工作计划，
// 供考勤日历使用
func (r *Repository) GetWorkPlansInPeriod(employeeID int64, start, end time.Time) ([]*domain.WorkPlan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT wp.id, wp.period_start, wp.period_end, wp.status, wp.created_at, wp.version,
			da.id, da.shift_label, da.shift_time, da.status
		FROM work_plans wp
		LEFT JOIN day_assignments da ON wp.id = da.work_plan_id
		WHERE wp.employee_id = $1 AND wp.period_start <= $3 AND wp.period_end >= $2
		ORDER BY wp.period_start, wp.id, da.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plansMap := make(map[int64]*domain.WorkPlan)
	plans := make([]*domain.WorkPlan, 0)

	for rows.Next() {
		var row struct {
			PlanID           int64
			PeriodStart      time.Time
			PeriodEnd        time.Time
			Status           domain.WorkPlanStatus
			CreatedAt        time.Time
			Version          int32
			AssignmentID     sql.NullInt64
			ShiftLabel       sql.NullString
			ShiftTime        sql.NullInt32
			AssignmentStatus sql.NullString
		}

		dst := []any{
			&row.PlanID,
			&row.PeriodStart,
			&row.PeriodEnd,
			&row.Status,
			&row.CreatedAt,
			&row.Version,
			&row.AssignmentID,
			&row.ShiftLabel,
			&row.ShiftTime,
			&row.AssignmentStatus,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		plan, exists := plansMap[row.PlanID]
		if !exists {
			plan = &domain.WorkPlan{
				ID:             row.PlanID,
				EmployeeID:     employeeID,
				PeriodStart:    row.PeriodStart,
				PeriodEnd:      row.PeriodEnd,
				Status:         row.Status,
				DayAssignments: make([]domain.DayAssignment, 0),
				CreatedAt:      row.CreatedAt,
				Version:        row.Version,
			}
			plansMap[row.PlanID] = plan
			plans = append(plans, plan)
		}

		if !row.AssignmentID.Valid {
			continue
		}

		plan.DayAssignments = append(plan.DayAssignments, domain.DayAssignment{
			ID:         row.AssignmentID.Int64,
			WorkPlanID: row.PlanID,
			ShiftLabel: row.ShiftLabel.String,
			ShiftTime:  row.ShiftTime.Int32,
			Status:     domain.AssignmentStatus(row.AssignmentStatus.String),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}

// UpdateWorkPlanStatus 带版本号的条件更新。并发的两个状态转换中，
// 后写的那个会因为版本号对不上拿到 sql.ErrNoRows，由调用方决定如何向用户报告
func (r *Repository) UpdateWorkPlanStatus(plan *domain.WorkPlan, status domain.WorkPlanStatus) error {
	query := `
		UPDATE work_plans
		SET
			status = $1,
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, status, plan.ID, plan.Version).Scan(&plan.Version); err != nil {
		return err
	}

	plan.Status = status
	return nil
}

// DeleteWorkPlan 删除计划的同时删除它拥有的所有班次
func (r *Repository) DeleteWorkPlan(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `DELETE FROM day_assignments WHERE work_plan_id = $1`
	if _, err := tx.ExecContext(ctx, query, id); err != nil {
		return err
	}

	query = `DELETE FROM work_plans WHERE id = $1`
	if _, err := tx.ExecContext(ctx, query, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) CountWorkPlansByStatus(status domain.WorkPlanStatus) (int64, error) {
	query := `
		SELECT COUNT(*) FROM work_plans WHERE status = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var count int64
	if err := r.dbpool.QueryRowContext(ctx, query, status).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
