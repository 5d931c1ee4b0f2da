package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/expense"
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/database"
)

type expenseRepositoryImpl struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepositoryImpl{db: db}
}

const expenseColumns = `
	id, employee_id, expense_type, amount, expense_date, status, acted_by, acted_at, created_at, updated_at
`

func scanExpense(row pgx.Row) (expense.Expense, error) {
	var e expense.Expense
	err := row.Scan(
		&e.ID,
		&e.EmployeeID,
		&e.ExpenseType,
		&e.Amount,
		&e.ExpenseDate,
		&e.Status,
		&e.ActedBy,
		&e.ActedAt,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

// Create implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) Create(ctx context.Context, e expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expenses (id, employee_id, expense_type, amount, expense_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + expenseColumns

	return scanExpense(q.QueryRow(ctx, query,
		e.ID,
		e.EmployeeID,
		e.ExpenseType,
		e.Amount,
		e.ExpenseDate,
		e.Status,
	))
}

// GetByID implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) GetByID(ctx context.Context, id string) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	return scanExpense(q.QueryRow(ctx, query, id))
}

// List implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) List(ctx context.Context, filter expense.ListExpenseFilter) ([]expense.Expense, int64, error) {
	q := GetQuerier(ctx, r.db)

	countQuery := `
		SELECT COUNT(*)
		FROM expenses
		WHERE ($1 = '' OR employee_id = $1)
		  AND ($2 = '' OR status = $2)
	`

	var total int64
	if err := q.QueryRow(ctx, countQuery, filter.EmployeeID, filter.Status).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE ($1 = '' OR employee_id = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY expense_date DESC, created_at DESC
		LIMIT $3 OFFSET $4
	`

	offset := (filter.Page - 1) * filter.Limit
	rows, err := q.Query(ctx, query, filter.EmployeeID, filter.Status, filter.Limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, err
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return expenses, total, nil
}

// UpdateStatus implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) UpdateStatus(ctx context.Context, e expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE expenses
		SET status = $2, acted_by = $3, acted_at = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + expenseColumns

	return scanExpense(q.QueryRow(ctx, query, e.ID, e.Status, e.ActedBy, e.ActedAt))
}
