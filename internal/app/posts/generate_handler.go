// Package posts exposes the generation pipeline over HTTP. Handlers are
// thin: decode, validate entry preconditions, call the orchestrator.
package posts

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"hotmart-post-generator/internal/generator"
	"hotmart-post-generator/internal/llm"
	"hotmart-post-generator/internal/pkg/render"
	"hotmart-post-generator/internal/product"
	"hotmart-post-generator/internal/router"
)

type manualProduct struct {
	URL         string `json:"url"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type generateRequest struct {
	URL       string         `json:"url" validate:"omitempty,url"`
	Product   *manualProduct `json:"product" validate:"omitempty"`
	Language  string         `json:"language"`
	Platforms []string       `json:"platforms" validate:"required,min=1,dive,min=1"`
	// Optional per-request key from the form; overrides the configured one.
	// Never logged.
	APIKey string `json:"api_key"`
}

type generateResponse struct {
	ID          string           `json:"id"`
	ProductInfo product.Info     `json:"product_info"`
	Language    string           `json:"language"`
	Posts       []generator.Post `json:"posts"`
	GeneratedAt time.Time        `json:"generated_at"`
}

type GenerateHandler struct {
	svc      *generator.Service
	groq     *llm.Groq
	validate *validator.Validate
	logger   *zap.SugaredLogger
}

func NewGenerateHandler(svc *generator.Service, groq *llm.Groq, logger *zap.SugaredLogger) *GenerateHandler {
	return &GenerateHandler{
		svc:      svc,
		groq:     groq,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *GenerateHandler) RegisterRoute(r *chi.Mux) {
	r.Post("/v1/posts/generate", h.Handle)
}

func (h *GenerateHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Err(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		render.Err(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.URL == "" && req.Product == nil {
		render.Err(w, http.StatusBadRequest, "either url or product is required")
		return
	}

	client := h.groq.WithAPIKey(req.APIKey)
	if !client.HasAPIKey() {
		render.Err(w, http.StatusBadRequest, "missing API key: set GROQ_API_KEY or pass api_key")
		return
	}

	genReq := generator.Request{
		URL:       req.URL,
		Language:  req.Language,
		Platforms: req.Platforms,
	}
	if req.Product != nil {
		genReq.Product = &product.Info{
			URL:         req.Product.URL,
			Title:       req.Product.Title,
			Description: req.Product.Description,
			Price:       req.Product.Price,
			Benefits:    []string{},
		}
	}

	res, err := h.svc.GenerateAllWithClient(r.Context(), genReq, client)
	if err != nil {
		// Only entry preconditions reach here; per-platform failures
		// are data in the posts themselves.
		if errors.Is(err, generator.ErrMissingProduct) || errors.Is(err, generator.ErrNoPlatforms) {
			render.Err(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Errorw("generate_failed", "err", err)
		render.Err(w, http.StatusInternalServerError, "generation failed")
		return
	}

	render.JSON(w, http.StatusOK, generateResponse{
		ID:          res.ID,
		ProductInfo: res.Product,
		Language:    res.Language,
		Posts:       res.Posts,
		GeneratedAt: res.GeneratedAt,
	})
}

var _ router.Handler = (*GenerateHandler)(nil)
