package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"stayops-backend/internal/config"
	"stayops-backend/internal/session"
)

// NewRouter wires the REST surface over the session manager. Every
// /api/v1 route runs behind the session middleware, so each caller
// operates on their own store.
func NewRouter(manager *session.Manager, cfg *config.Config) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(SessionMiddleware(manager, cfg.Session.CookieName))

	userHandler := NewUserHandler()
	api.HandleFunc("/users", userHandler.Create).Methods("POST")
	api.HandleFunc("/users", userHandler.List).Methods("GET")

	propertyHandler := NewPropertyHandler()
	api.HandleFunc("/properties", propertyHandler.Create).Methods("POST")
	api.HandleFunc("/properties", propertyHandler.List).Methods("GET")
	api.HandleFunc("/properties/{id:[0-9]+}", propertyHandler.Get).Methods("GET")

	bookingHandler := NewBookingHandler()
	api.HandleFunc("/bookings", bookingHandler.Create).Methods("POST")
	api.HandleFunc("/bookings", bookingHandler.List).Methods("GET")
	api.HandleFunc("/bookings/{id:[0-9]+}", bookingHandler.Get).Methods("GET")

	expenseHandler := NewExpenseHandler()
	api.HandleFunc("/expenses", expenseHandler.Create).Methods("POST")
	api.HandleFunc("/bookings/{id:[0-9]+}/expenses", expenseHandler.ListForBooking).Methods("GET")

	payoutHandler := NewPayoutHandler()
	api.HandleFunc("/bookings/{id:[0-9]+}/split", payoutHandler.BookingSplit).Methods("GET")
	api.HandleFunc("/earnings/{role}/{userID:[0-9]+}", payoutHandler.Earnings).Methods("GET")

	return router
}
