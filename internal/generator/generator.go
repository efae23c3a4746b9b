// Package generator sequences extraction, prompt building and
// completion calls across a list of platforms.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hotmart-post-generator/internal/llm"
	"hotmart-post-generator/internal/platform"
	"hotmart-post-generator/internal/product"
	"hotmart-post-generator/internal/prompt"
)

// Extractor is implemented by product.Extractor.
type Extractor interface {
	Extract(ctx context.Context, url string) product.Info
}

var (
	ErrMissingProduct = errors.New("a product URL or a manual product with a title is required")
	ErrNoPlatforms    = errors.New("at least one platform must be selected")
)

// Request is the per-invocation input. Product, when non-nil, skips
// extraction entirely (manual entry from the form front-end).
type Request struct {
	URL       string
	Product   *product.Info
	Language  string
	Platforms []string
}

// Post is one platform's generated copy. Body carries the error text on
// completion failure too; Failed is the only way to tell them apart.
type Post struct {
	Platform string `json:"platform"`
	Body     string `json:"body"`
	Failed   bool   `json:"failed"`
}

// Result is the outcome of one generation run. Posts preserves the
// caller's platform order.
type Result struct {
	ID          string       `json:"id"`
	Product     product.Info `json:"product_info"`
	Language    string       `json:"language"`
	Posts       []Post       `json:"posts"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// PostMap returns the platform→body mapping for export and display.
func (r Result) PostMap() map[string]string {
	m := make(map[string]string, len(r.Posts))
	for _, p := range r.Posts {
		m[p.Platform] = p.Body
	}
	return m
}

type Service struct {
	extractor Extractor
	client    llm.Client
	logger    *zap.SugaredLogger
}

func NewService(extractor Extractor, client llm.Client, logger *zap.SugaredLogger) *Service {
	return &Service{extractor: extractor, client: client, logger: logger}
}

// GenerateAll runs the whole pipeline once: extract (unless a manual
// product was supplied), then per requested platform build a prompt and
// call the completion endpoint. Per-platform completion failures do not
// abort the batch; the failed platform still gets an entry whose body
// is the error text. The returned error covers entry preconditions only.
func (s *Service) GenerateAll(ctx context.Context, req Request) (Result, error) {
	platforms, err := normalizePlatforms(req.Platforms)
	if err != nil {
		return Result{}, err
	}

	info, err := s.resolveProduct(ctx, req)
	if err != nil {
		return Result{}, err
	}

	language := strings.TrimSpace(req.Language)
	if language == "" {
		language = prompt.DefaultLanguage
	}

	res := Result{
		ID:          uuid.NewString(),
		Product:     info,
		Language:    language,
		Posts:       make([]Post, 0, len(platforms)),
		GeneratedAt: time.Now().UTC(),
	}

	return s.generate(ctx, res, platforms)
}

// GenerateAllWithClient is GenerateAll with a per-request completion
// client (a caller-supplied API key from the form front-end).
func (s *Service) GenerateAllWithClient(ctx context.Context, req Request, client llm.Client) (Result, error) {
	if client == nil {
		client = s.client
	}
	svc := &Service{extractor: s.extractor, client: client, logger: s.logger}
	return svc.GenerateAll(ctx, req)
}

func (s *Service) generate(ctx context.Context, res Result, platforms []string) (Result, error) {
	for _, name := range platforms {
		spec := platform.SpecFor(name)
		userPrompt := prompt.Build(res.Product, name, spec, res.Language)

		body, err := s.client.Complete(ctx, prompt.System, userPrompt)
		if err != nil {
			// The error becomes the post body, indistinguishable from
			// generated text downstream except for the Failed flag.
			s.logger.Warnw("post_generation_failed",
				"run_id", res.ID,
				"platform", name,
				"err", err,
			)
			res.Posts = append(res.Posts, Post{
				Platform: name,
				Body:     fmt.Sprintf("Error generating post: %v", err),
				Failed:   true,
			})
			continue
		}

		res.Posts = append(res.Posts, Post{Platform: name, Body: body})
	}

	s.logger.Infow("generation_run_done",
		"run_id", res.ID,
		"title", res.Product.Title,
		"language", res.Language,
		"platforms", len(res.Posts),
	)
	return res, nil
}

func (s *Service) resolveProduct(ctx context.Context, req Request) (product.Info, error) {
	if req.Product != nil {
		info := *req.Product
		if strings.TrimSpace(info.Title) == "" {
			return product.Info{}, ErrMissingProduct
		}
		if info.Benefits == nil {
			info.Benefits = []string{}
		}
		if info.URL == "" {
			info.URL = req.URL
		}
		return info, nil
	}
	if strings.TrimSpace(req.URL) == "" {
		return product.Info{}, ErrMissingProduct
	}
	return s.extractor.Extract(ctx, req.URL), nil
}

// normalizePlatforms lower-cases names and drops duplicates while
// keeping the caller's order. Unknown names are kept; SpecFor falls
// back to the facebook spec for them.
func normalizePlatforms(names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, raw := range names {
		name := platform.Canonical(raw)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	if len(out) == 0 {
		return nil, ErrNoPlatforms
	}
	return out, nil
}
