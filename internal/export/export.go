// Package export writes a generation run to a JSON file. The bundle is
// write-once; nothing in this service reads it back.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"hotmart-post-generator/internal/generator"
	"hotmart-post-generator/internal/product"
)

type Bundle struct {
	ProductInfo product.Info      `json:"product_info"`
	Posts       map[string]string `json:"posts"`
	Language    string            `json:"language"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// FromResult flattens a generation result into the exported shape.
// Failed posts are exported as-is; their bodies already carry the
// error text.
func FromResult(res generator.Result) Bundle {
	return Bundle{
		ProductInfo: res.Product,
		Posts:       res.PostMap(),
		Language:    res.Language,
		GeneratedAt: res.GeneratedAt,
	}
}

var nonWord = regexp.MustCompile(`[^\w\s-]`)

// Filename derives the export file name from the product title: first
// 30 characters, spaces to underscores, non-word characters stripped.
// A title that strips to nothing falls back to a timestamp-based name.
func Filename(title string, now time.Time) string {
	t := []rune(strings.TrimSpace(title))
	if len(t) > 30 {
		t = t[:30]
	}
	name := strings.ReplaceAll(string(t), " ", "_")
	name = nonWord.ReplaceAllString(name, "")
	if strings.Trim(name, "_") == "" {
		return fmt.Sprintf("hotmart_posts_%s.json", now.UTC().Format("20060102T150405"))
	}
	return fmt.Sprintf("hotmart_posts_%s.json", name)
}

// Marshal renders the bundle UTF-8 with two-space indentation. HTML
// escaping is off so non-ASCII text and ampersands survive unescaped.
func Marshal(b Bundle) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return nil, fmt.Errorf("marshal export bundle: %w", err)
	}
	return buf.Bytes(), nil
}

// Write persists the bundle under dir and returns the full path.
func Write(dir string, b Bundle) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	data, err := Marshal(b)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, Filename(b.ProductInfo.Title, b.GeneratedAt))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
