package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"stayops-backend/internal/domain"
	"stayops-backend/internal/session"
)

func sessionServices(w http.ResponseWriter, r *http.Request) (*session.Services, bool) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "session not initialized"})
		return nil, false
	}
	return sess.Services, true
}

func pathID(r *http.Request, name string) (int32, bool) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

type PropertyHandler struct{}

func NewPropertyHandler() *PropertyHandler {
	return &PropertyHandler{}
}

type createPropertyRequest struct {
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	OwnerID     int32   `json:"owner_id"`
	OperatorID  int32   `json:"operator_id"`
	NightlyRate float64 `json:"nightly_rate"`
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	svcs, ok := sessionServices(w, r)
	if !ok {
		return
	}

	var req createPropertyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	property, err := svcs.Properties.CreateProperty(r.Context(), req.Name, req.Location, req.OwnerID, req.OperatorID, req.NightlyRate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, property)
}

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	svcs, ok := sessionServices(w, r)
	if !ok {
		return
	}

	properties, err := svcs.Properties.ListProperties(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if properties == nil {
		properties = []domain.Property{}
	}
	writeJSON(w, http.StatusOK, properties)
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	svcs, ok := sessionServices(w, r)
	if !ok {
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid property id"})
		return
	}

	property, err := svcs.Properties.GetProperty(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, property)
}
