package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const apiV1 = "/api/v1"

// setupRoutes configures all HTTP routes for the API server
func (s *Server) setupRoutes() *mux.Router {
	r := mux.NewRouter()

	// Health check endpoint
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	// API v1 endpoints. Registered on the root router so a method mismatch
	// answers 405 instead of falling through a prefix subrouter as 404.
	r.HandleFunc(apiV1+"/config", s.handleConfig).Methods(http.MethodGet)
	r.HandleFunc(apiV1+"/latest-message", s.handleLatestMessage).Methods(http.MethodGet)
	r.HandleFunc(apiV1+"/accounts/{address}", s.handleAccount).Methods(http.MethodGet)

	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	return r
}
