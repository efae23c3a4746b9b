package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hotmart-post-generator/config"
)

func NewHTTPServer(cfg config.Config, mux *chi.Mux) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// A full five-platform batch blocks on sequential completion
		// calls, so the write timeout has to cover the whole run.
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
