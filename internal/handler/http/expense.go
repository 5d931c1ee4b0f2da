package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/expense"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/user"
	"github.com/yashxjain/hrsmile-backend-go/internal/handler/http/response"
)

type ExpenseHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type ExpenseHandlerImpl struct {
	expenseService expense.ExpenseService
}

func NewExpenseHandler(expenseService expense.ExpenseService) ExpenseHandler {
	return &ExpenseHandlerImpl{expenseService: expenseService}
}

// Submit implements ExpenseHandler.
func (h *ExpenseHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req expense.SubmitExpenseRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit expense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actorID, _, err := actorFromClaims(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	req.EmployeeID = actorID

	created, err := h.expenseService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Expense submitted successfully", created)
}

// List implements ExpenseHandler. Non-HR actors only see their own claims.
func (h *ExpenseHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, err := actorFromClaims(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	filter := expense.ListExpenseFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Status:     r.URL.Query().Get("status"),
		Page:       page,
		Limit:      limit,
	}
	if actorRole != user.RoleHR {
		filter.EmployeeID = actorID
	}

	result, err := h.expenseService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.Total,
	})
}

// Approve implements ExpenseHandler.
func (h *ExpenseHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.expenseService.Approve, "Expense approved successfully")
}

// Reject implements ExpenseHandler.
func (h *ExpenseHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.expenseService.Reject, "Expense rejected successfully")
}

func (h *ExpenseHandlerImpl) act(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, req expense.ActOnExpenseRequest) (expense.ExpenseResponse, error), message string) {
	actorID, _, err := actorFromClaims(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	acted, err := fn(r.Context(), expense.ActOnExpenseRequest{
		ID:      chi.URLParam(r, "id"),
		ActedBy: actorID,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, acted)
}
