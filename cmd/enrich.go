package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkrasov/newsglot/internal/enrich"
	"github.com/dkrasov/newsglot/internal/lang"
)

var (
	enrichTitle string
	enrichBody  string
	enrichLang  string
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Summarize a news item and classify its sentiment",
	Long: `Produce a short summary plus sentiment for a news item.

The result is printed as JSON: {"summary": "...", "sentiment": "..."}. The
command always produces a usable result; on total provider failure it falls
back to the (possibly translated) title with neutral sentiment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := lang.Parse(enrichLang)
		if err != nil {
			return err
		}

		enricher, _ := buildEnricher()
		ctx := context.Background()

		var summary enrich.Summary
		switch target {
		case lang.Ukrainian:
			summary = enricher.SummarizeAndTranslate(ctx, enrichTitle, enrichBody)
		default:
			summary = enricher.SummarizeInEnglish(ctx, enrichTitle, enrichBody)
		}

		out, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enrichCmd)

	enrichCmd.Flags().StringVar(&enrichTitle, "title", "", "news item title (required)")
	enrichCmd.Flags().StringVar(&enrichBody, "body", "", "news item body (optional)")
	enrichCmd.Flags().StringVarP(&enrichLang, "lang", "l", "uk", "summary language (uk, en)")
	enrichCmd.MarkFlagRequired("title")
}
