package handler

import (
	"github.com/gorilla/mux"
)

// NewRouter assembles the full route tree. The request logger wraps every
// route; the auth gate wraps only the protected subrouter.
func NewRouter(h *Handler, logMW, authMW mux.MiddlewareFunc) *mux.Router {
	r := mux.NewRouter()
	r.Use(logMW)

	// Public routes
	r.HandleFunc("/", h.Index).Methods("GET")
	r.HandleFunc("/api/login", h.Login).Methods("POST")

	// Protected routes
	protected := r.PathPrefix("/").Subrouter()
	protected.Use(authMW)
	protected.HandleFunc("/api/protected", h.Protected).Methods("GET")
	protected.HandleFunc("/add", h.Add).Methods("POST")
	protected.HandleFunc("/subtract", h.Subtract).Methods("POST")
	protected.HandleFunc("/multiply", h.Multiply).Methods("POST")
	protected.HandleFunc("/divide", h.Divide).Methods("POST")

	return r
}
