package repository

import (
	"context"
	"time"

	"github.com/hrm-dev/hr-workflow/backend/internal/domain"
)

func (r *Repository) CreateLeaveApplication(application *domain.LeaveApplication) error {
	query := `
		INSERT INTO leave_applications (employee_id, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{application.EmployeeID, application.StartDate, application.EndDate, application.Reason, application.Status}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&application.ID, &application.CreatedAt, &application.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllLeaveApplications() ([]*domain.LeaveApplication, error) {
	query := `
		SELECT la.id, la.employee_id, e.name, la.start_date, la.end_date, la.reason, la.status, la.created_at, la.version
		FROM leave_applications la
		JOIN employees e ON la.employee_id = e.id
		ORDER BY la.created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := make([]*domain.LeaveApplication, 0)
	for rows.Next() {
		application := &domain.LeaveApplication{}
		dst := []any{
			&application.ID,
			&application.EmployeeID,
			&application.EmployeeName,
			&application.StartDate,
			&application.EndDate,
			&application.Reason,
			&application.Status,
			&application.CreatedAt,
			&application.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		applications = append(applications, application)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

func (r *Repository) GetLeaveApplicationByID(id int64) (*domain.LeaveApplication, error) {
	query := `
		SELECT la.employee_id, e.name, la.start_date, la.end_date, la.reason, la.status, la.created_at, la.version
		FROM leave_applications la
		JOIN employees e ON la.employee_id = e.id
		WHERE la.id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	application := &domain.LeaveApplication{
		ID: id,
	}

	dst := []any{
		&application.EmployeeID,
		&application.EmployeeName,
		&application.StartDate,
		&application.EndDate,
		&application.Reason,
		&application.Status,
		&application.CreatedAt,
		&application.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return application, nil
}

// UpdateLeaveApplication 带版本号的条件更新，并发修改时后写的一方拿到 sql.ErrNoRows
func (r *Repository) UpdateLeaveApplication(application *domain.LeaveApplication) error {
	query := `
		UPDATE leave_applications
		SET
			start_date = $1,
			end_date = $2,
			reason = $3,
			status = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{application.StartDate, application.EndDate, application.Reason, application.Status, application.ID, application.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&application.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteLeaveApplication(id int64) error {
	query := `
		DELETE FROM leave_applications WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
