package enrich

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/dkrasov/newsglot/internal/lang"
	"github.com/dkrasov/newsglot/internal/normalizer"
	"github.com/dkrasov/newsglot/internal/provider"
	"github.com/dkrasov/newsglot/internal/retry"
)

// minTranslationRunes is the acceptance cutoff for provider output: anything
// this short is treated as a failed translation.
const minTranslationRunes = 10

// Translate returns text in the target language. It never fails: when every
// tier is exhausted the normalized input is returned as the degraded result.
//
// Tier order: normalize -> fast provider (single attempt) -> model provider
// (with retry) -> normalized text.
func (e *Enricher) Translate(ctx context.Context, text string, target lang.Tag) string {
	cleaned := normalizer.Normalize(text)

	// English items need no translation.
	if target == lang.Source {
		if cleaned == "" {
			return strings.TrimSpace(text)
		}
		return cleaned
	}

	// Nothing usable survived normalization: prefer returning the original
	// raw text over returning nothing.
	if cleaned == "" {
		return strings.TrimSpace(text)
	}

	if res, err := e.fast.Invoke(ctx, provider.Request{Text: cleaned, TargetLang: target}); err != nil {
		e.log.WithError(err).WithField("provider", e.fast.Name()).Warn("primary translation failed")
	} else if out, ok := acceptTranslation(res.Text, cleaned); ok {
		return out
	} else {
		e.log.WithField("provider", e.fast.Name()).Debug("primary translation rejected by quality check")
	}

	req := provider.Request{
		Text:         cleaned,
		TargetLang:   target,
		SystemPrompt: lang.TranslationPrompt(target),
	}
	res, err := retry.Do(ctx, e.fallbackRetry, func(ctx context.Context) (*provider.Result, error) {
		return e.model.Invoke(ctx, req)
	})
	if err != nil {
		e.log.WithError(err).WithField("provider", e.model.Name()).Warn("fallback translation failed, returning normalized text")
		return cleaned
	}

	out := strings.TrimSpace(res.Text)
	if utf8.RuneCountInString(out) <= minTranslationRunes {
		e.log.WithField("provider", e.model.Name()).Debug("fallback translation too short, returning normalized text")
		return cleaned
	}
	return normalizer.StripMarkup(out)
}

// acceptTranslation applies the heuristic quality check to fast-provider
// output: it must exceed the length cutoff and differ from the cleaned input
// (an unchanged echo means the endpoint did not actually translate).
func acceptTranslation(out, cleaned string) (string, bool) {
	out = strings.TrimSpace(out)
	if utf8.RuneCountInString(out) <= minTranslationRunes {
		return "", false
	}
	if strings.EqualFold(out, cleaned) {
		return "", false
	}
	return out, true
}
