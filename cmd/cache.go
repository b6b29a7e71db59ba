package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkrasov/newsglot/internal/store"
)

var cacheDB string

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the translation memory",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show translation memory statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		memory, err := store.New(cacheDB)
		if err != nil {
			return err
		}
		defer memory.Close()

		stats, err := memory.Stats(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("Entries: %d\n", stats.TotalEntries)
		fmt.Printf("Total usage: %d\n", stats.TotalUsage)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all translation memory entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		memory, err := store.New(cacheDB)
		if err != nil {
			return err
		}
		defer memory.Close()

		deleted, err := memory.Clear(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("Deleted %d entries\n", deleted)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatsCmd, cacheClearCmd)

	cacheCmd.PersistentFlags().StringVar(&cacheDB, "db", "newsglot.db", "translation memory database path")
}
