package lang

import "fmt"

// Profile parameterizes the summarization orchestrator for one target
// language. The two profiles share the whole pipeline; only the system
// prompt and the leakage scrub differ.
type Profile struct {
	Tag          Tag
	SystemPrompt string
	// ScrubLeakage enables the regex pass that removes English sentence
	// fragments the model sometimes appends to non-English summaries.
	ScrubLeakage bool
}

const ukrainianSummaryPrompt = `You are an editor for a crypto news feed. Summarize the news item provided by the user in 1-2 short sentences and classify its sentiment.

Respond ONLY with a JSON object, no markdown, no explanations:
{"summary": "...", "sentiment": "positive|negative|neutral"}

The summary must be written entirely in Ukrainian. Do not include any English sentences or fragments. The only English words allowed are proper nouns and established domain terms: coin and protocol names (Bitcoin, Ethereum, Solana, DeFi, NFT, stablecoin tickers) and names of people and companies.`

const englishSummaryPrompt = `You are an editor for a crypto news feed. Summarize the news item provided by the user in 1-2 short sentences and classify its sentiment.

Respond ONLY with a JSON object, no markdown, no explanations:
{"summary": "...", "sentiment": "positive|negative|neutral"}

The summary must be written in plain English.`

// SummaryUkrainian is the target-language-A profile: Ukrainian output with a
// proper-noun allow-list in the prompt and the leakage scrub enabled.
var SummaryUkrainian = Profile{
	Tag:          Ukrainian,
	SystemPrompt: ukrainianSummaryPrompt,
	ScrubLeakage: true,
}

// SummaryEnglish is the target-language-B profile.
var SummaryEnglish = Profile{
	Tag:          English,
	SystemPrompt: englishSummaryPrompt,
}

// TranslationPrompt builds the system prompt for the model-backed translation
// fallback tier.
func TranslationPrompt(target Tag) string {
	return fmt.Sprintf(`You are a professional news translator. Translate the following text from English to %s.
Only respond with the translation, nothing else. No explanations, no quotes, just the translation. Keep coin names, tickers and proper nouns unchanged.`, target.DisplayName())
}
