package http

import (
	"net/http"
	"strconv"

	"stayops-backend/internal/domain"
)

type BookingHandler struct{}

func NewBookingHandler() *BookingHandler {
	return &BookingHandler{}
}

type createBookingRequest struct {
	PropertyID int32  `json:"property_id"`
	GuestName  string `json:"guest_name"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	svcs, ok := sessionServices(w, r)
	if !ok {
		return
	}

	var req createBookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := svcs.Bookings.CreateBooking(r.Context(), req.PropertyID, req.GuestName, req.CheckIn, req.CheckOut)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	svcs, ok := sessionServices(w, r)
	if !ok {
		return
	}

	var propertyID int32
	if raw := r.URL.Query().Get("property_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || id <= 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid property_id"})
			return
		}
		propertyID = int32(id)
	}

	bookings, err := svcs.Bookings.ListBookings(r.Context(), propertyID)
	if err != nil {
		writeError(w, err)
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	svcs, ok := sessionServices(w, r)
	if !ok {
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := svcs.Bookings.GetBooking(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}
