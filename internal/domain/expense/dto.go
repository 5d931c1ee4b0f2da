package expense

import (
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/validator"
)

type SubmitExpenseRequest struct {
	EmployeeID  string  `json:"empId"`
	ExpenseType string  `json:"expenseType"`
	Amount      float64 `json:"expenseAmount"`
	ExpenseDate string  `json:"expenseDate"` // YYYY-MM-DD
}

func (r *SubmitExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "empId",
			Message: "empId is required",
		})
	}

	if validator.IsEmpty(r.ExpenseType) {
		errs = append(errs, validator.ValidationError{
			Field:   "expenseType",
			Message: "expenseType is required",
		})
	}

	if r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "expenseAmount",
			Message: "expenseAmount must be positive",
		})
	}

	if _, ok := validator.IsValidDate(r.ExpenseDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "expenseDate",
			Message: "expenseDate must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ActOnExpenseRequest struct {
	ID      string `json:"-"`
	ActedBy string `json:"-"`
}

type ListExpenseFilter struct {
	EmployeeID string
	Status     string
	Page       int
	Limit      int
}

type ExpenseResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"empId"`
	ExpenseType string  `json:"expenseType"`
	Amount      float64 `json:"expenseAmount"`
	ExpenseDate string  `json:"expenseDate"`
	Status      Status  `json:"status"`
}

type ListExpenseResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}
