package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/dkrasov/newsglot/internal/enrich"
	"github.com/dkrasov/newsglot/internal/logging"
	"github.com/dkrasov/newsglot/internal/provider"
	"github.com/dkrasov/newsglot/internal/proxy"
)

// buildEnricher wires the provider chain from configuration. When Google
// credentials are configured the official Cloud Translation client takes the
// fast tier; otherwise the proxy-backed free endpoint does.
func buildEnricher() (*enrich.Enricher, *logrus.Logger) {
	log := logging.New(viper.GetString("log-level"))

	var fast provider.Service
	if creds := viper.GetString("google-credentials"); creds != "" {
		fast = provider.NewGoogle(provider.GoogleConfig{CredentialsFile: creds})
	} else {
		fast = provider.NewFast(provider.FastConfig{
			Origin: viper.GetString("fast-origin"),
			Path:   viper.GetString("fast-path"),
			APIKey: viper.GetString("fast-api-key"),
		}, proxy.New(viper.GetString("proxy-url")), log)
	}

	model := provider.NewChat(provider.ChatConfig{
		BaseURL: viper.GetString("chat-url"),
		Model:   viper.GetString("chat-model"),
		APIKey:  viper.GetString("chat-key"),
	}, log)

	return enrich.New(fast, model, log), log
}
