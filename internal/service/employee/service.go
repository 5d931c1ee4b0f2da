package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/employee"
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/database"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByEmpID(ctx, req.EmpID); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmpIDExists
	} else if !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check emp id: %w", err)
	}

	if _, err := s.EmployeeRepository.GetByEmail(ctx, req.Email); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	} else if !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		EmpID:            req.EmpID,
		Name:             req.Name,
		Email:            req.Email,
		Mobile:           req.Mobile,
		Role:             req.Role,
		ReportingManager: req.ReportingManager,
		Shift:            req.Shift,
		OfficeName:       req.OfficeName,
		OfficeLatLong:    req.OfficeLatLong,
		IsGeofence:       req.IsGeofence,
		GeofenceRadiusM:  req.GeofenceRadiusM,
		IsActive:         true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return toResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, empID string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByEmpID(ctx, empID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return toResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListFilter) (employee.ListEmployeesResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 25
	}

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}

	return employee.ListEmployeesResponse{
		Employees: responses,
		Total:     total,
		Page:      filter.Page,
		Limit:     filter.Limit,
	}, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByEmpID(ctx, req.EmpID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	emp.Name = req.Name
	emp.Email = req.Email
	emp.Mobile = req.Mobile
	emp.Role = req.Role
	emp.ReportingManager = req.ReportingManager
	emp.Shift = req.Shift
	emp.OfficeName = req.OfficeName
	emp.OfficeLatLong = req.OfficeLatLong
	emp.IsGeofence = req.IsGeofence
	emp.GeofenceRadiusM = req.GeofenceRadiusM

	updated, err := s.EmployeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return toResponse(updated), nil
}

// Deactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, empID string) error {
	if _, err := s.EmployeeRepository.GetByEmpID(ctx, empID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if err := s.EmployeeRepository.SetActive(ctx, empID, false); err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	return nil
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		EmpID:            emp.EmpID,
		Name:             emp.Name,
		Email:            emp.Email,
		Mobile:           emp.Mobile,
		Role:             emp.Role,
		ReportingManager: emp.ReportingManager,
		Shift:            emp.Shift,
		OfficeName:       emp.OfficeName,
		OfficeLatLong:    emp.OfficeLatLong,
		IsGeofence:       emp.IsGeofence,
		IsActive:         emp.IsActive,
	}
}
