package expense

import "context"

type ExpenseRepository interface {
	Create(ctx context.Context, e Expense) (Expense, error)
	GetByID(ctx context.Context, id string) (Expense, error)
	List(ctx context.Context, filter ListExpenseFilter) ([]Expense, int64, error)
	UpdateStatus(ctx context.Context, e Expense) (Expense, error)
}
