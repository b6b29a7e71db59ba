package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.1.0"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "newsglot",
	Short: "News text-enrichment pipeline",
	Long: `newsglot cleans, translates and summarizes raw news items.

A free translation endpoint (reached through a network proxy) is tried first;
an OpenAI-compatible model backend is the fallback. Every command degrades to
the best available text instead of failing.

All flags can be set via NEWSGLOT_* environment variables or a config file.`,
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.newsglot.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.PersistentFlags().String("proxy-url", "", "proxy endpoint the fast provider is reached through")
	rootCmd.PersistentFlags().String("fast-origin", "libretranslate.com", "fast provider origin host")
	rootCmd.PersistentFlags().String("fast-path", "/translate", "fast provider endpoint path")
	rootCmd.PersistentFlags().String("fast-api-key", "", "fast provider API key (optional)")

	rootCmd.PersistentFlags().String("chat-url", "https://api.openai.com/v1", "model provider base URL")
	rootCmd.PersistentFlags().String("chat-model", "gpt-4o-mini", "model provider model name")
	rootCmd.PersistentFlags().String("chat-key", "", "model provider API key")

	rootCmd.PersistentFlags().String("google-credentials", "", "service-account file; when set, Cloud Translation replaces the fast provider")

	for _, name := range []string{
		"log-level",
		"proxy-url", "fast-origin", "fast-path", "fast-api-key",
		"chat-url", "chat-model", "chat-key",
		"google-credentials",
	} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".newsglot")
	}

	viper.SetEnvPrefix("NEWSGLOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; env and flags cover everything.
	_ = viper.ReadInConfig()
}
