package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hotmart-post-generator/config"
	"hotmart-post-generator/internal/envutil"
	"hotmart-post-generator/internal/export"
	"hotmart-post-generator/internal/generator"
	"hotmart-post-generator/internal/llm"
	"hotmart-post-generator/internal/logs"
	"hotmart-post-generator/internal/platform"
	"hotmart-post-generator/internal/product"
)

func newRootCmd() *cobra.Command {
	var (
		url       string
		language  string
		platforms []string
		outDir    string
		save      bool
	)

	rootCmd := &cobra.Command{
		Use:           "hotmart-posts",
		Short:         "Generate social media posts for a Hotmart product page",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig(config.NewViper())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			in := bufio.NewReader(cmd.InOrStdin())

			fmt.Fprintln(out, strings.Repeat("=", 60))
			fmt.Fprintln(out, "🚀 Hotmart Social Media Posts Generator")
			fmt.Fprintln(out, strings.Repeat("=", 60))

			if cfg.GroqAPIKey == "" {
				key, err := promptLine(in, out, "🔑 Enter your Groq API key: ")
				if err != nil {
					return err
				}
				if key == "" {
					return errors.New("please provide a valid API key")
				}
				cfg.GroqAPIKey = key
			}

			if strings.TrimSpace(url) == "" {
				url, err = promptLine(in, out, "🔗 Enter Hotmart product URL: ")
				if err != nil {
					return err
				}
			}
			if strings.TrimSpace(url) == "" {
				return errors.New("please provide a valid URL")
			}

			if language == "" {
				language, err = promptLine(in, out, "🌍 Language (en/ar/es/pt/fr) [default: en]: ")
				if err != nil && !errors.Is(err, io.EOF) {
					return err
				}
			}
			if language == "" {
				language = cfg.DefaultLanguage
			}

			if len(platforms) == 0 {
				platforms = platform.Known()
			}
			if outDir == "" {
				outDir = cfg.OutputDir
			}

			logger, err := logs.NewLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			sugar := logger.Sugar()

			svc := generator.NewService(
				product.NewExtractor(cfg, sugar),
				llm.NewGroq(cfg),
				sugar,
			)

			fmt.Fprintln(out, "\n🔍 Extracting product information...")
			res, err := svc.GenerateAll(cmd.Context(), generator.Request{
				URL:       url,
				Language:  language,
				Platforms: platforms,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "✅ Product: %s\n\n", res.Product.Title)
			fmt.Fprintln(out, "📱 Generated Posts:")
			for _, p := range res.Posts {
				fmt.Fprintf(out, "\n%s\n📌 %s\n%s\n%s\n", strings.Repeat("=", 60), strings.ToUpper(p.Platform), strings.Repeat("=", 60), p.Body)
			}

			if !save && !envutil.Bool(os.Getenv, "AUTO_SAVE", false) {
				answer, err := promptLine(in, out, "\n💾 Save results to JSON file? (y/n): ")
				if err != nil && !errors.Is(err, io.EOF) {
					return err
				}
				save = strings.EqualFold(answer, "y")
			} else {
				save = true
			}

			if save {
				path, err := export.Write(outDir, export.FromResult(res))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "✅ Saved to: %s\n", path)
			}

			fmt.Fprintln(out, "\n🎉 Done!")
			return nil
		},
	}

	rootCmd.Flags().StringVar(&url, "url", "", "Hotmart product URL (prompted interactively when omitted)")
	rootCmd.Flags().StringVar(&language, "language", "", "Post language: en/ar/es/pt/fr (default en)")
	rootCmd.Flags().StringSliceVar(&platforms, "platforms", nil, "Platforms to generate for (default all five)")
	rootCmd.Flags().StringVar(&outDir, "out-dir", "", "Output directory for the JSON export")
	rootCmd.Flags().BoolVar(&save, "save", false, "Save the JSON export without asking")

	return rootCmd
}

func promptLine(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
