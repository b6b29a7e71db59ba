// Package postprocess removes common LLM artifacts from provider output.
//
// Clean is applied to every raw text returned by the model provider before
// the result is used downstream. ScrubEnglishLeakage is the extra pass the
// Ukrainian summary profile runs over parsed summaries.
package postprocess

import (
	"regexp"
	"strings"
)

// Clean removes LLM artifacts from text in three phases and returns the
// trimmed result:
//  1. Thinking / reasoning block removal
//  2. Instruction echo removal (prompt leakage)
//  3. Quote wrapping removal
//
// Markdown code fences are deliberately left in place here; the summarizer
// strips them itself via StripCodeFence because the fenced body is the
// payload it parses.
func Clean(text string) string {
	text = removeThinkingBlocks(text)
	text = removeInstructionEchoes(text)
	text = removeQuoteWrapping(text)
	return strings.TrimSpace(text)
}

// --- Phase 1: thinking blocks ---

// thinkingBlockRe matches complete <thinking>…</thinking> style blocks.
// Each tag variant is listed explicitly because Go's RE2 engine does not
// support backreferences.
var thinkingBlockRe = regexp.MustCompile(
	`(?is)<thinking>.*?</thinking>|<think>.*?</think>|<reasoning>.*?</reasoning>`,
)

// truncatedThinkingRe matches an opened thinking tag whose closing tag is
// missing (the model was cut off mid-thought).
var truncatedThinkingRe = regexp.MustCompile(
	`(?is)(?:<thinking>|<think>|<reasoning>).*$`,
)

func removeThinkingBlocks(text string) string {
	text = thinkingBlockRe.ReplaceAllString(text, "")
	text = truncatedThinkingRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// --- Phase 2: instruction echoes ---

// echoPatterns match introductory phrases that LLMs sometimes prepend even
// when instructed not to. Each pattern is anchored to the start of the string
// and requires a colon to reduce false positives on legitimate content.
var echoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^here(?:'s| is)(?: the)? (?:translated text|translation|summary|text)\s*:`),
	regexp.MustCompile(`(?i)^(?:the )?(?:translation|translated text|summary)\s*:`),
	regexp.MustCompile(`(?i)^(?:certainly|sure|of course)[,.]? here(?:'s| is)(?: the)? (?:translation|summary|text)\s*:`),
}

func removeInstructionEchoes(text string) string {
	for _, re := range echoPatterns {
		if loc := re.FindStringIndex(text); loc != nil && loc[0] == 0 {
			text = strings.TrimSpace(text[loc[1]:])
		}
	}
	return text
}

// --- Phase 3: quote wrapping ---

// removeQuoteWrapping strips a matching pair of outer quotes when the entire
// text is wrapped in them (a common LLM artifact). Supported pairs:
//
//	"…"  '…'  «…»  "…"  '…'
func removeQuoteWrapping(text string) string {
	runes := []rune(text)
	n := len(runes)
	if n < 2 {
		return text
	}
	first, last := runes[0], runes[n-1]
	if (first == '"' && last == '"') ||
		(first == '\'' && last == '\'') ||
		(first == '«' && last == '»') ||
		(first == '“' && last == '”') ||
		(first == '‘' && last == '’') {
		return strings.TrimSpace(string(runes[1 : n-1]))
	}
	return text
}

// --- Code fences ---

// fencedRe captures the body of a ```lang … ``` block that wraps the whole
// response.
var fencedRe = regexp.MustCompile("(?s)^```[a-zA-Z]*[ \t]*\r?\n?(.*?)\r?\n?```$")

// StripCodeFence removes a markdown code fence wrapping the entire text, as
// models routinely emit ```json blocks despite being told not to. Text that
// is not fully fenced is returned unchanged (trimmed).
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if m := fencedRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	// Unterminated fence: the model ran out of tokens before closing it.
	if after, ok := strings.CutPrefix(text, "```json"); ok {
		return strings.TrimSpace(strings.TrimSuffix(after, "```"))
	}
	if after, ok := strings.CutPrefix(text, "```"); ok {
		return strings.TrimSpace(strings.TrimSuffix(after, "```"))
	}
	return text
}

// --- English leakage scrub ---

// leakagePatterns match the start of a sentence that looks English rather
// than Ukrainian: auxiliary verbs, determiners and discourse connectives.
// The scrub is heuristic by construction. It cannot catch English sentences
// that open with a proper noun, and a Ukrainian sentence will never match
// because the patterns are ASCII-only.
var leakagePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(?:The|This|That|These|Those|It|Its|There|Here|A|An|We|They|He|She|You|I)\b`),
	regexp.MustCompile(`^(?:Is|Are|Was|Were|Has|Have|Had|Will|Would|Should|Could|Can|May|Might|Do|Does|Did)\b`),
	regexp.MustCompile(`^(?:However|Meanwhile|Additionally|Furthermore|Moreover|Also|Overall|Finally|Therefore|In addition|Note that|According to|As a result)\b`),
}

// sentenceRe splits text into sentence-shaped spans: a run of non-terminator
// characters followed by any number of terminators.
var sentenceRe = regexp.MustCompile(`[^.!?]+[.!?]*`)

// repeatedTerminatorsRe collapses runs of sentence terminators to the first
// one ("!!." -> "!").
var repeatedTerminatorsRe = regexp.MustCompile(`([.!?])[.!?]+`)

// ScrubEnglishLeakage drops trailing or embedded sentences that begin with a
// common English sentence-starter pattern, collapses repeated sentence
// terminators and trims the result. The model backend occasionally appends
// leftover English fragments to Ukrainian summaries; this pass removes them
// without a model round-trip.
//
// Leaked spans are removed in place; kept text is never re-joined, so dotted
// tokens that straddle span boundaries (decimals, "3.5%", "$1.2M") come
// through untouched.
func ScrubEnglishLeakage(text string) string {
	out := sentenceRe.ReplaceAllStringFunc(text, func(s string) string {
		trimmed := strings.TrimSpace(s)
		for _, re := range leakagePatterns {
			if re.MatchString(trimmed) {
				return ""
			}
		}
		return s
	})
	out = repeatedTerminatorsRe.ReplaceAllString(out, "$1")
	return strings.TrimSpace(out)
}
