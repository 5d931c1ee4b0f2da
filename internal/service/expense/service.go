package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/employee"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/expense"
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/database"
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/validator"
)

type ExpenseServiceImpl struct {
	db *database.DB
	expense.ExpenseRepository
	employee.EmployeeRepository
}

func NewExpenseService(db *database.DB, expenseRepo expense.ExpenseRepository, employeeRepo employee.EmployeeRepository) expense.ExpenseService {
	return &ExpenseServiceImpl{
		db:                 db,
		ExpenseRepository:  expenseRepo,
		EmployeeRepository: employeeRepo,
	}
}

// Submit implements expense.ExpenseService.
func (s *ExpenseServiceImpl) Submit(ctx context.Context, req expense.SubmitExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByEmpID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.ExpenseResponse{}, employee.ErrEmployeeNotFound
		}
		return expense.ExpenseResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date, _ := validator.IsValidDate(req.ExpenseDate)

	created, err := s.ExpenseRepository.Create(ctx, expense.Expense{
		ID:          uuid.New().String(),
		EmployeeID:  req.EmployeeID,
		ExpenseType: req.ExpenseType,
		Amount:      req.Amount,
		ExpenseDate: date,
		Status:      expense.StatusPending,
	})
	if err != nil {
		return expense.ExpenseResponse{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return toResponse(created), nil
}

// List implements expense.ExpenseService.
func (s *ExpenseServiceImpl) List(ctx context.Context, filter expense.ListExpenseFilter) (expense.ListExpenseResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 25
	}

	expenses, total, err := s.ExpenseRepository.List(ctx, filter)
	if err != nil {
		return expense.ListExpenseResponse{}, fmt.Errorf("failed to list expenses: %w", err)
	}

	responses := make([]expense.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, toResponse(e))
	}

	return expense.ListExpenseResponse{
		Expenses: responses,
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}, nil
}

// Approve implements expense.ExpenseService.
func (s *ExpenseServiceImpl) Approve(ctx context.Context, req expense.ActOnExpenseRequest) (expense.ExpenseResponse, error) {
	return s.act(ctx, req, expense.StatusApproved)
}

// Reject implements expense.ExpenseService.
func (s *ExpenseServiceImpl) Reject(ctx context.Context, req expense.ActOnExpenseRequest) (expense.ExpenseResponse, error) {
	return s.act(ctx, req, expense.StatusRejected)
}

func (s *ExpenseServiceImpl) act(ctx context.Context, req expense.ActOnExpenseRequest, status expense.Status) (expense.ExpenseResponse, error) {
	e, err := s.ExpenseRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.ExpenseResponse{}, expense.ErrExpenseNotFound
		}
		return expense.ExpenseResponse{}, fmt.Errorf("failed to get expense: %w", err)
	}

	if e.Status != expense.StatusPending {
		return expense.ExpenseResponse{}, expense.ErrExpenseAlreadyProcessed
	}

	now := time.Now()
	e.Status = status
	e.ActedBy = &req.ActedBy
	e.ActedAt = &now

	updated, err := s.ExpenseRepository.UpdateStatus(ctx, e)
	if err != nil {
		return expense.ExpenseResponse{}, fmt.Errorf("failed to update expense status: %w", err)
	}

	return toResponse(updated), nil
}

func toResponse(e expense.Expense) expense.ExpenseResponse {
	return expense.ExpenseResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		ExpenseType: e.ExpenseType,
		Amount:      e.Amount,
		ExpenseDate: e.ExpenseDate.Format("2006-01-02"),
		Status:      e.Status,
	}
}
