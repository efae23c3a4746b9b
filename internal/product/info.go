package product

// Info is the descriptive record for one product page, either scraped
// or supplied manually. Immutable once built.
type Info struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	// Benefits is always empty today; no extraction logic exists for it.
	Benefits []string `json:"benefits"`
}

// FallbackTitle is used when a page cannot be fetched or parsed.
const FallbackTitle = "Hotmart Product"

// Fallback returns the placeholder Info for a URL whose page could not
// be scraped. Callers cannot tell defaulted fields from scraped ones.
func Fallback(url string) Info {
	return Info{
		URL:      url,
		Title:    FallbackTitle,
		Benefits: []string{},
	}
}
