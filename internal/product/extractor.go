package product

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"hotmart-post-generator/config"
)

// Price patterns are tried in order; the first match is kept verbatim,
// no currency normalization.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`R\$\s*[\d,.]+`),
	regexp.MustCompile(`\$\s*[\d,.]+`),
	regexp.MustCompile(`USD\s*[\d,.]+`),
	regexp.MustCompile(`EUR\s*[\d,.]+`),
}

type Extractor struct {
	client    *http.Client
	userAgent string
	logger    *zap.SugaredLogger
}

func NewExtractor(cfg config.Config, logger *zap.SugaredLogger) *Extractor {
	timeout := cfg.ScrapeTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Extractor{
		client:    &http.Client{Timeout: timeout},
		userAgent: cfg.ScrapeUserAgent,
		logger:    logger,
	}
}

// Extract fetches a product page and pulls title, description and price.
// Any fetch or parse failure yields the placeholder Info instead of an
// error; the per-platform generation flow proceeds either way.
func (e *Extractor) Extract(ctx context.Context, url string) Info {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		e.logger.Warnw("product_fetch_bad_url", "url", url, "err", err)
		return Fallback(url)
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		e.logger.Warnw("product_fetch_failed", "url", url, "err", err)
		return Fallback(url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e.logger.Warnw("product_fetch_bad_status", "url", url, "status", resp.StatusCode)
		return Fallback(url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		e.logger.Warnw("product_parse_failed", "url", url, "err", err)
		return Fallback(url)
	}

	info := Info{
		URL:         url,
		Title:       extractTitle(doc),
		Description: extractDescription(doc),
		Price:       extractPrice(doc),
		Benefits:    []string{},
	}
	return info
}

// extractTitle tries h1 text, then og:title, then the <title> tag.
func extractTitle(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("h1").First().Text()); t != "" {
		return t
	}
	if c, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if t := strings.TrimSpace(c); t != "" {
			return t
		}
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

func extractDescription(doc *goquery.Document) string {
	for _, sel := range []string{`meta[property="og:description"]`, `meta[name="description"]`} {
		if c, ok := doc.Find(sel).First().Attr("content"); ok {
			if d := strings.TrimSpace(c); d != "" {
				return d
			}
		}
	}
	for _, sel := range []string{".description", ".product-description"} {
		s := doc.Find(sel).First()
		if s.Length() > 0 {
			return strings.TrimSpace(s.Text())
		}
	}
	return ""
}

func extractPrice(doc *goquery.Document) string {
	text := doc.Text()
	for _, re := range pricePatterns {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}
