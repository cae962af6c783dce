package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"stayops-backend/internal/domain"
)

type PayoutHandler struct{}

func NewPayoutHandler() *PayoutHandler {
	return &PayoutHandler{}
}

func (h *PayoutHandler) BookingSplit(w http.ResponseWriter, r *http.Request) {
	svcs, ok := sessionServices(w, r)
	if !ok {
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid booking id"})
		return
	}

	split, err := svcs.Payouts.BookingSplit(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, split)
}

func (h *PayoutHandler) Earnings(w http.ResponseWriter, r *http.Request) {
	svcs, ok := sessionServices(w, r)
	if !ok {
		return
	}

	role := domain.UserRole(mux.Vars(r)["role"])
	userID, ok := pathID(r, "userID")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid user id"})
		return
	}

	summary, err := svcs.Payouts.SummarizeEarnings(r.Context(), role, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
