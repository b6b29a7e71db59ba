package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dkrasov/newsglot/internal/detector"
	"github.com/dkrasov/newsglot/internal/lang"
	"github.com/dkrasov/newsglot/internal/postprocess"
	"github.com/dkrasov/newsglot/internal/provider"
	"github.com/dkrasov/newsglot/internal/retry"
)

// Sentiment is the closed classification set. Provider output outside the
// set is coerced to neutral.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Summary is the summarization result. Summary is never empty; it degrades
// to the original title when the provider chain produces nothing usable.
type Summary struct {
	Summary   string    `json:"summary"`
	Sentiment Sentiment `json:"sentiment"`
}

const (
	// maxContentRunes bounds the text sent to the model provider.
	maxContentRunes = 2000
	// minSummaryRunes is the acceptance cutoff for a parsed summary.
	minSummaryRunes = 10
	// minRescueRunes is the acceptance cutoff on the title-rescue path.
	minRescueRunes = 8

	truncationMarker = "..."
)

// SummarizeAndTranslate produces a Ukrainian summary plus sentiment for a
// news item. Total: always returns a structurally valid Summary.
func (e *Enricher) SummarizeAndTranslate(ctx context.Context, title, body string) Summary {
	return e.summarize(ctx, title, body, lang.SummaryUkrainian)
}

// SummarizeInEnglish is the English-target mirror of SummarizeAndTranslate.
func (e *Enricher) SummarizeInEnglish(ctx context.Context, title, body string) Summary {
	return e.summarize(ctx, title, body, lang.SummaryEnglish)
}

func (e *Enricher) summarize(ctx context.Context, title, body string, profile lang.Profile) Summary {
	content := strings.TrimSpace(title)
	if b := strings.TrimSpace(body); b != "" {
		if content == "" {
			content = b
		} else {
			content = content + "\n\n" + b
		}
	}
	content = truncateRunes(content, maxContentRunes)
	if content == "" {
		return Summary{Summary: title, Sentiment: SentimentNeutral}
	}

	req := provider.Request{
		Text:         content,
		TargetLang:   profile.Tag,
		SystemPrompt: profile.SystemPrompt,
	}
	parsed, err := retry.Do(ctx, e.summaryRetry, func(ctx context.Context) (rawSummary, error) {
		res, err := e.model.Invoke(ctx, req)
		if err != nil {
			return rawSummary{}, err
		}
		return parseSummary(res.Text)
	})
	if err != nil {
		e.log.WithError(err).WithField("lang", profile.Tag).Warn("summarization exhausted, falling back to title translation")
		return e.rescueTitle(ctx, title, profile)
	}

	summary := strings.TrimSpace(parsed.summary)
	if profile.ScrubLeakage {
		summary = postprocess.ScrubEnglishLeakage(summary)
	}
	if utf8.RuneCountInString(summary) <= minSummaryRunes {
		summary = title
	}
	return Summary{Summary: summary, Sentiment: coerceSentiment(parsed.sentiment)}
}

// rawSummary is the defensively parsed provider payload. sentiment stays
// untyped until coercion because models return strings, numbers or nothing.
type rawSummary struct {
	summary   string
	sentiment any
}

// parseSummary extracts the summary object from provider text. Models wrap
// JSON in code fences and sometimes answer in prose; a prose answer longer
// than the acceptance cutoff is used verbatim rather than discarded.
func parseSummary(raw string) (rawSummary, error) {
	cleaned := postprocess.StripCodeFence(raw)

	var parsed struct {
		Summary   string `json:"summary"`
		Sentiment any    `json:"sentiment"`
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		if utf8.RuneCountInString(cleaned) > minSummaryRunes {
			return rawSummary{summary: cleaned}, nil
		}
		return rawSummary{}, fmt.Errorf("failed to parse summary response: %w", err)
	}
	return rawSummary{summary: parsed.Summary, sentiment: parsed.Sentiment}, nil
}

// coerceSentiment maps arbitrary provider output onto the closed set.
// "Positive!" counts as positive; numbers, absence and anything else become
// neutral.
func coerceSentiment(v any) Sentiment {
	s, ok := v.(string)
	if !ok {
		return SentimentNeutral
	}
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimRight(s, "!.?,:;")
	switch Sentiment(s) {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return Sentiment(s)
	}
	return SentimentNeutral
}

// rescueTitle is the terminal summarization tier: a bare translation of the
// title alone, accepted on loose evidence that it actually landed in the
// target language. Sentiment is always neutral here.
func (e *Enricher) rescueTitle(ctx context.Context, title string, profile lang.Profile) Summary {
	out := Summary{Summary: title, Sentiment: SentimentNeutral}
	if strings.TrimSpace(title) == "" {
		return out
	}

	translated, err := retry.Do(ctx, e.rescueRetry, func(ctx context.Context) (string, error) {
		candidate := e.Translate(ctx, title, profile.Tag)
		if !e.acceptRescue(candidate, title, profile.Tag) {
			return "", fmt.Errorf("rescue translation of title not accepted")
		}
		return candidate, nil
	})
	if err != nil {
		return out
	}
	out.Summary = translated
	return out
}

// acceptRescue accepts a rescue candidate when any signal suggests it is a
// real translation: it differs from the title, exceeds the rescue cutoff, or
// carries a target-language-distinctive character (Cyrillic for Ukrainian;
// for English, detection has to do).
func (e *Enricher) acceptRescue(candidate, title string, target lang.Tag) bool {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return false
	}
	if !strings.EqualFold(candidate, strings.TrimSpace(title)) {
		return true
	}
	if utf8.RuneCountInString(candidate) > minRescueRunes {
		return true
	}
	if target == lang.Ukrainian {
		return detector.HasCyrillic(candidate)
	}
	iso, ok := e.det.DetectISO(candidate)
	return ok && iso == string(target)
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + truncationMarker
}
