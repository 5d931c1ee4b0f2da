package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/employee"
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	emp_id, name, email, mobile, role, reporting_manager, shift,
	office_name, office_lat_long, is_geofence, geofence_radius_m,
	is_active, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.EmpID,
		&emp.Name,
		&emp.Email,
		&emp.Mobile,
		&emp.Role,
		&emp.ReportingManager,
		&emp.Shift,
		&emp.OfficeName,
		&emp.OfficeLatLong,
		&emp.IsGeofence,
		&emp.GeofenceRadiusM,
		&emp.IsActive,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			emp_id, name, email, mobile, role, reporting_manager, shift,
			office_name, office_lat_long, is_geofence, geofence_radius_m, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + employeeColumns

	return scanEmployee(q.QueryRow(ctx, query,
		emp.EmpID,
		emp.Name,
		emp.Email,
		emp.Mobile,
		emp.Role,
		emp.ReportingManager,
		emp.Shift,
		emp.OfficeName,
		emp.OfficeLatLong,
		emp.IsGeofence,
		emp.GeofenceRadiusM,
		emp.IsActive,
	))
}

// GetByEmpID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmpID(ctx context.Context, empID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE emp_id = $1`
	return scanEmployee(q.QueryRow(ctx, query, empID))
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`
	return scanEmployee(q.QueryRow(ctx, query, email))
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	countQuery := `
		SELECT COUNT(*)
		FROM employees
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR emp_id ILIKE '%' || $1 || '%')
		  AND ($2::boolean IS NULL OR is_active = $2)
	`

	var total int64
	if err := q.QueryRow(ctx, countQuery, filter.Search, filter.IsActive).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR emp_id ILIKE '%' || $1 || '%')
		  AND ($2::boolean IS NULL OR is_active = $2)
		ORDER BY emp_id
		LIMIT $3 OFFSET $4
	`

	offset := (filter.Page - 1) * filter.Limit
	rows, err := q.Query(ctx, query, filter.Search, filter.IsActive, filter.Limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $2, email = $3, mobile = $4, role = $5, reporting_manager = $6, shift = $7,
			office_name = $8, office_lat_long = $9, is_geofence = $10, geofence_radius_m = $11,
			updated_at = NOW()
		WHERE emp_id = $1
		RETURNING ` + employeeColumns

	return scanEmployee(q.QueryRow(ctx, query,
		emp.EmpID,
		emp.Name,
		emp.Email,
		emp.Mobile,
		emp.Role,
		emp.ReportingManager,
		emp.Shift,
		emp.OfficeName,
		emp.OfficeLatLong,
		emp.IsGeofence,
		emp.GeofenceRadiusM,
	))
}

// SetActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetActive(ctx context.Context, empID string, active bool) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET is_active = $2, updated_at = NOW() WHERE emp_id = $1`
	tag, err := q.Exec(ctx, query, empID, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
