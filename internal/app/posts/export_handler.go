package posts

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"hotmart-post-generator/internal/export"
	"hotmart-post-generator/internal/pkg/render"
	"hotmart-post-generator/internal/product"
	"hotmart-post-generator/internal/router"
)

type exportRequest struct {
	ProductInfo product.Info      `json:"product_info"`
	Posts       map[string]string `json:"posts" validate:"required,min=1"`
	Language    string            `json:"language" validate:"required"`
}

// ExportHandler streams a generation run back as a downloadable JSON
// bundle (the form front-end's download button).
type ExportHandler struct {
	validate *validator.Validate
	logger   *zap.SugaredLogger
}

func NewExportHandler(logger *zap.SugaredLogger) *ExportHandler {
	return &ExportHandler{
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *ExportHandler) RegisterRoute(r *chi.Mux) {
	r.Post("/v1/posts/export", h.Handle)
}

func (h *ExportHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Err(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		render.Err(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now().UTC()
	bundle := export.Bundle{
		ProductInfo: req.ProductInfo,
		Posts:       req.Posts,
		Language:    req.Language,
		GeneratedAt: now,
	}
	data, err := export.Marshal(bundle)
	if err != nil {
		h.logger.Errorw("export_marshal_failed", "err", err)
		render.Err(w, http.StatusInternalServerError, "export failed")
		return
	}

	filename := export.Filename(req.ProductInfo.Title, now)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

var _ router.Handler = (*ExportHandler)(nil)
