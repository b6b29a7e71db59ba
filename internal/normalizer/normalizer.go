// Package normalizer turns raw, possibly HTML-contaminated feed text into
// clean plain text. The empty string is the "nothing usable remained"
// sentinel; callers must treat it as no content, never as a valid value.
package normalizer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

// minUsableRunes is the cutoff below which normalized text is considered
// noise and dropped entirely.
const minUsableRunes = 10

var (
	urlRe       = regexp.MustCompile(`https?://[^\s]+`)
	wwwRe       = regexp.MustCompile(`\bwww\.[^\s]+`)
	shortenerRe = regexp.MustCompile(`\b(?:bit\.ly|t\.co|goo\.gl|tinyurl\.com|ow\.ly|buff\.ly|is\.gd)/[^\s]*`)

	// Query fragments left behind after URL removal: ?key=value(&key=value)*
	queryRe = regexp.MustCompile(`[?&][A-Za-z0-9_.-]+=[^\s&]*(?:&[A-Za-z0-9_.-]+=[^\s&]*)*`)
	utmRe   = regexp.MustCompile(`\butm_[a-z]+=[^\s&]*&?`)
	refRe   = regexp.MustCompile(`\bref=[^\s&]*&?`)
	// Social-source annotations feeds append to shared items.
	socialRe = regexp.MustCompile(`\bsource=(?:twitter|x|facebook|telegram|reddit|rss)\b`)

	artifactRe        = regexp.MustCompile(`(?i)\b(?:RSVP|Read more|Click here)\s*:`)
	bracketEllipsisRe = regexp.MustCompile(`\[(?:\.{3}|…)\]`)

	tagRe   = regexp.MustCompile(`<[^>]*>`)
	spaceRe = regexp.MustCompile(`[ \t]+`)
	blankRe = regexp.MustCompile(` *\n[\n ]*`)
)

// Normalize strips markup and feed noise from raw and returns plain text.
// Text that ends up shorter than 10 runes is returned as "". Normalize never
// fails: when HTML parsing itself breaks it degrades to a regex-only
// tag-stripping pass.
func Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	raw = norm.NFC.String(raw)

	text, err := parseHTML(raw)
	if err != nil {
		// Terminal fallback: tag strip, pipe truncation, whitespace collapse.
		text = collapseWhitespace(truncateAtPipe(tagRe.ReplaceAllString(raw, " ")))
		if utf8.RuneCountInString(text) < minUsableRunes {
			return ""
		}
		return text
	}

	text = truncateAtPipe(text)
	text = stripNoise(text)
	text = collapseWhitespace(text)

	if utf8.RuneCountInString(text) < minUsableRunes {
		return ""
	}
	return text
}

// StripMarkup removes any HTML tags from text and collapses the resulting
// whitespace. Used on provider output, which occasionally echoes markup back.
func StripMarkup(text string) string {
	return collapseWhitespace(tagRe.ReplaceAllString(text, " "))
}

// parseHTML is a variable so tests can force the parse-failure path.
var parseHTML = extractText

// extractText parses raw as HTML, drops script/style subtrees and returns
// the text content.
func extractText(raw string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript").Remove()
	return doc.Text(), nil
}

// truncateAtPipe keeps only the segment before the first pipe. Mixed-content
// feeds append source/category metadata after a pipe.
func truncateAtPipe(text string) string {
	if idx := strings.IndexByte(text, '|'); idx >= 0 {
		return text[:idx]
	}
	return text
}

func stripNoise(text string) string {
	text = urlRe.ReplaceAllString(text, " ")
	text = wwwRe.ReplaceAllString(text, " ")
	text = shortenerRe.ReplaceAllString(text, " ")
	text = queryRe.ReplaceAllString(text, " ")
	text = utmRe.ReplaceAllString(text, " ")
	text = refRe.ReplaceAllString(text, " ")
	text = socialRe.ReplaceAllString(text, " ")
	text = artifactRe.ReplaceAllString(text, " ")
	text = bracketEllipsisRe.ReplaceAllString(text, " ")
	return text
}

func collapseWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = spaceRe.ReplaceAllString(text, " ")
	text = blankRe.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
