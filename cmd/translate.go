package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkrasov/newsglot/internal/lang"
	"github.com/dkrasov/newsglot/internal/store"
)

var (
	translateTarget string
	translateInput  string
	translateOutput string
	translateDB     string
	translateNoMem  bool
)

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate a single text",
	Long: `Translate a text into the target language.

The text is normalized first (markup, tracking noise and feed artifacts are
stripped), then sent through the provider chain. On total provider failure
the normalized text is printed — the command never fails on bad upstreams.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}

		target, err := lang.Parse(translateTarget)
		if err != nil {
			return err
		}

		enricher, log := buildEnricher()
		ctx := context.Background()

		var memory *store.Store
		if !translateNoMem {
			memory, err = store.New(translateDB)
			if err != nil {
				log.WithError(err).Warn("translation memory unavailable, continuing without it")
			} else {
				defer memory.Close()
			}
		}

		if memory != nil {
			if cached, found, err := memory.Lookup(ctx, text, string(target)); err == nil && found {
				log.Debug("translation memory hit")
				return writeOutput(cached)
			}
		}

		result := enricher.Translate(ctx, text, target)

		if memory != nil {
			if err := memory.Save(ctx, text, string(target), result); err != nil {
				log.WithError(err).Warn("failed to record translation")
			}
		}

		return writeOutput(result)
	},
}

func readInput(args []string) (string, error) {
	if translateInput != "" {
		data, err := os.ReadFile(translateInput)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return "", fmt.Errorf("provide a text argument or --input")
}

func writeOutput(result string) error {
	if translateOutput != "" {
		return os.WriteFile(translateOutput, []byte(result+"\n"), 0o644)
	}
	fmt.Println(result)
	return nil
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&translateTarget, "target", "t", "uk", "target language (uk, en)")
	translateCmd.Flags().StringVarP(&translateInput, "input", "i", "", "read the text from a file")
	translateCmd.Flags().StringVarP(&translateOutput, "output", "o", "", "write the result to a file")
	translateCmd.Flags().StringVar(&translateDB, "db", "newsglot.db", "translation memory database path")
	translateCmd.Flags().BoolVar(&translateNoMem, "no-cache", false, "skip the translation memory")
}
