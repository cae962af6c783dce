package http

import (
	"net/http"

	"stayops-backend/internal/domain"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

type createUserRequest struct {
	Name string          `json:"name"`
	Role domain.UserRole `json:"role"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	svcs, ok := sessionServices(w, r)
	if !ok {
		return
	}

	var req createUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := svcs.Users.CreateUser(r.Context(), req.Name, req.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	svcs, ok := sessionServices(w, r)
	if !ok {
		return
	}

	role := domain.UserRole(r.URL.Query().Get("role"))
	users, err := svcs.Users.ListUsers(r.Context(), role)
	if err != nil {
		writeError(w, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	writeJSON(w, http.StatusOK, users)
}
