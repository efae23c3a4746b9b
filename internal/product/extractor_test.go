package product

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotmart-post-generator/config"
)

func newTestExtractor() *Extractor {
	cfg := config.Config{
		ScrapeTimeout:   2 * time.Second,
		ScrapeUserAgent: "test-agent",
	}
	return NewExtractor(cfg, zap.NewNop().Sugar())
}

func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestExtract_PrefersH1OverOGTitle(t *testing.T) {
	t.Parallel()

	srv := serveHTML(t, `<html><head>
<meta property="og:title" content="OG Title">
<title>Tag Title</title>
</head><body><h1>Heading Title</h1></body></html>`)

	info := newTestExtractor().Extract(context.Background(), srv.URL)
	require.Equal(t, "Heading Title", info.Title)
}

func TestExtract_OGTitleWhenNoH1(t *testing.T) {
	t.Parallel()

	srv := serveHTML(t, `<html><head>
<meta property="og:title" content="OG Title">
<title>Tag Title</title>
</head><body><p>no heading</p></body></html>`)

	info := newTestExtractor().Extract(context.Background(), srv.URL)
	require.Equal(t, "OG Title", info.Title)
}

func TestExtract_TitleTagAsLastResort(t *testing.T) {
	t.Parallel()

	srv := serveHTML(t, `<html><head><title>Tag Title</title></head><body></body></html>`)

	info := newTestExtractor().Extract(context.Background(), srv.URL)
	require.Equal(t, "Tag Title", info.Title)
}

func TestExtract_DescriptionOrder(t *testing.T) {
	t.Parallel()

	srv := serveHTML(t, `<html><head>
<meta property="og:description" content="og desc">
<meta name="description" content="meta desc">
</head><body><div class="description">class desc</div></body></html>`)

	info := newTestExtractor().Extract(context.Background(), srv.URL)
	require.Equal(t, "og desc", info.Description)
}

func TestExtract_DescriptionFromClass(t *testing.T) {
	t.Parallel()

	srv := serveHTML(t, `<html><body><div class="product-description">from class</div></body></html>`)

	info := newTestExtractor().Extract(context.Background(), srv.URL)
	require.Equal(t, "from class", info.Description)
}

func TestExtract_BRLPriceKeptVerbatim(t *testing.T) {
	t.Parallel()

	srv := serveHTML(t, `<html><body><h1>Curso</h1><span>Por apenas R$ 197,00 hoje</span></body></html>`)

	info := newTestExtractor().Extract(context.Background(), srv.URL)
	require.Equal(t, "R$ 197,00", info.Price)
}

func TestExtract_USDPrice(t *testing.T) {
	t.Parallel()

	srv := serveHTML(t, `<html><body><span>Only $49.90 today</span></body></html>`)

	info := newTestExtractor().Extract(context.Background(), srv.URL)
	require.Equal(t, "$49.90", info.Price)
}

func TestExtract_NoPricePatterns(t *testing.T) {
	t.Parallel()

	srv := serveHTML(t, `<html><body><p>free course</p></body></html>`)

	info := newTestExtractor().Extract(context.Background(), srv.URL)
	require.Empty(t, info.Price)
}

func TestExtract_NetworkFailureYieldsFallback(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	info := newTestExtractor().Extract(context.Background(), srv.URL)
	require.Equal(t, FallbackTitle, info.Title)
	require.Equal(t, srv.URL, info.URL)
	require.Empty(t, info.Description)
	require.Empty(t, info.Price)
	require.Empty(t, info.Benefits)
}

func TestExtract_Non2xxYieldsFallback(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	info := newTestExtractor().Extract(context.Background(), srv.URL)
	require.Equal(t, FallbackTitle, info.Title)
}

func TestExtract_SendsUserAgent(t *testing.T) {
	t.Parallel()

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`<html><body><h1>ok</h1></body></html>`))
	}))
	t.Cleanup(srv.Close)

	_ = newTestExtractor().Extract(context.Background(), srv.URL)
	require.Equal(t, "test-agent", gotUA)
}
