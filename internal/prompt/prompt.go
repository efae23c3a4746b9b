// Package prompt composes the chat-completion instructions for one
// product/platform/language combination.
package prompt

import (
	"fmt"
	"strings"

	"hotmart-post-generator/internal/platform"
	"hotmart-post-generator/internal/product"
)

// System is sent as the system-role message on every completion call.
const System = "You are an expert social media marketing content creator, specialized in writing engaging and effective posts."

// DefaultLanguage is used when a language code is not recognized.
const DefaultLanguage = "en"

var languageDirectives = map[string]string{
	"en": "Write in English",
	"ar": "Write in Arabic (Modern Standard Arabic or Moroccan Darija if appropriate)",
	"es": "Write in Spanish",
	"pt": "Write in Portuguese",
	"fr": "Write in French",
}

// SupportedLanguages returns the recognized language codes in a stable order.
func SupportedLanguages() []string {
	return []string{"en", "ar", "es", "pt", "fr"}
}

// LanguageDirective resolves a language code to its instruction sentence.
// Unrecognized codes fall back to the English directive.
func LanguageDirective(code string) string {
	if d, ok := languageDirectives[strings.ToLower(strings.TrimSpace(code))]; ok {
		return d
	}
	return languageDirectives[DefaultLanguage]
}

// Build composes the user-role instruction block. Product title, price
// and URL are embedded verbatim.
func Build(info product.Info, name string, spec platform.Spec, language string) string {
	return fmt.Sprintf(`You are an expert in digital marketing and social media content creation.

Product Information:
- Title: %s
- Description: %s
- Price: %s
- URL: %s

Create a professional marketing post for %s with these specifications:
- Maximum length: %d characters
- Style: %s
- Format: %s

The post must:
1. Grab attention from the first line
2. Highlight key benefits
3. Include a clear call-to-action
4. %s
5. Use emojis strategically

Write ONLY the post without any preambles or additional explanations.`,
		info.Title,
		info.Description,
		info.Price,
		info.URL,
		name,
		spec.MaxLength,
		spec.Style,
		spec.Format,
		LanguageDirective(language),
	)
}
