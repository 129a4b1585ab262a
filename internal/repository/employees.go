package repository

import (
	"context"
	"time"

	"github.com/hrm-dev/hr-workflow/backend/internal/domain"
)

func (r *Repository) GetEmployeeByID(id int64) (*domain.Employee, error) {
	query := `
		SELECT username, password_hash, name, email, role, is_active, created_at, version
		FROM employees WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	employee := &domain.Employee{
		ID: id,
	}

	dst := []any{&employee.Username, &employee.PasswordHash, &employee.Name, &employee.Email, &employee.Role, &employee.IsActive, &employee.CreatedAt, &employee.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return employee, nil
}

func (r *Repository) GetEmployeeByUsername(username string) (*domain.Employee, error) {
	query := `
		SELECT id, password_hash, name, email, role, is_active, created_at, version
		FROM employees WHERE username = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	employee := &domain.Employee{
		Username: username,
	}

	dst := []any{&employee.ID, &employee.PasswordHash, &employee.Name, &employee.Email, &employee.Role, &employee.IsActive, &employee.CreatedAt, &employee.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, username).Scan(dst...); err != nil {
		return nil, err
	}

	return employee, nil
}

func (r *Repository) GetAllEmployees() ([]*domain.Employee, error) {
	query := `
		SELECT id, username, password_hash, name, email, role, is_active, created_at, version FROM employees
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee := &domain.Employee{}
		dst := []any{&employee.ID, &employee.Username, &employee.PasswordHash, &employee.Name, &employee.Email, &employee.Role, &employee.IsActive, &employee.CreatedAt, &employee.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) CreateEmployee(employee *domain.Employee) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO employees (username, password_hash, name, email, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_active, created_at, version
	`

	args := []any{employee.Username, employee.PasswordHash, employee.Name, employee.Email, employee.Role}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&employee.ID, &employee.IsActive, &employee.CreatedAt, &employee.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateEmployee(employee *domain.Employee) error {
	query := `
		UPDATE employees
		SET
			password_hash = $1,
			name = $2,
			email = $3,
			role = $4,
			is_active = $5,
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{employee.PasswordHash, employee.Name, employee.Email, employee.Role, employee.IsActive, employee.ID, employee.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&employee.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteEmployee(id int64) error {
	query := `
		DELETE FROM employees WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CountEmployees() (int64, error) {
	query := `
		SELECT COUNT(*) FROM employees
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var count int64
	if err := r.dbpool.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
