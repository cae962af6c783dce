package http

import (
	"net/http"

	"stayops-backend/internal/domain"
)

type ExpenseHandler struct{}

func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{}
}

type createExpenseRequest struct {
	BookingID   int32   `json:"booking_id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	svcs, ok := sessionServices(w, r)
	if !ok {
		return
	}

	var req createExpenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	expense, err := svcs.Expenses.CreateExpense(r.Context(), req.BookingID, req.Description, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

func (h *ExpenseHandler) ListForBooking(w http.ResponseWriter, r *http.Request) {
	svcs, ok := sessionServices(w, r)
	if !ok {
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid booking id"})
		return
	}

	expenses, err := svcs.Expenses.ListBookingExpenses(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	writeJSON(w, http.StatusOK, expenses)
}
