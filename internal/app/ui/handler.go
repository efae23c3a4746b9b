// Package ui serves the embedded single-page form front-end. All
// session state lives in the browser; the server keeps nothing between
// requests.
package ui

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hotmart-post-generator/internal/router"
)

//go:embed index.html
var indexHTML []byte

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoute(r *chi.Mux) {
	r.Get("/", h.Handle)
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

var _ router.Handler = (*Handler)(nil)
