package fx

import (
	"go.uber.org/fx"

	"hotmart-post-generator/internal/app/posts"
	"hotmart-post-generator/internal/generator"
	"hotmart-post-generator/internal/llm"
	"hotmart-post-generator/internal/product"
	"hotmart-post-generator/internal/router"
)

var Module = fx.Options(
	fx.Provide(
		llm.NewGroq,
		product.NewExtractor,
		func(g *llm.Groq) llm.Client { return g },
		func(e *product.Extractor) generator.Extractor { return e },
		generator.NewService,
		router.AsRoute(posts.NewGenerateHandler),
		router.AsRoute(posts.NewExportHandler),
	),
)
