package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dkrasov/newsglot/internal/lang"
)

var (
	batchTarget string
	batchInput  string
	batchOutput string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Translate a file of texts, one per line",
	Long: `Translate every non-empty line of the input file concurrently.

Output preserves input order. A line whose translation degrades does not
affect the others.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := lang.Parse(batchTarget)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(batchInput)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}

		var texts []string
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				texts = append(texts, line)
			}
		}

		enricher, _ := buildEnricher()
		results := enricher.TranslateBatch(context.Background(), texts, target)

		out := strings.Join(results, "\n") + "\n"
		if batchOutput != "" {
			return os.WriteFile(batchOutput, []byte(out), 0o644)
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchTarget, "target", "t", "uk", "target language (uk, en)")
	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "input file, one text per line (required)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "write results to a file")
	batchCmd.MarkFlagRequired("input")
}
