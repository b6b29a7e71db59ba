// Package lang defines the language tags the pipeline operates on and the
// per-language enrichment profiles (system prompts, scrub behavior).
package lang

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Tag is an ISO 639-1 language code.
type Tag string

const (
	English   Tag = "en"
	Ukrainian Tag = "uk"
)

// Source is the language incoming news items are written in. Translation to
// Source is a no-op beyond normalization.
const Source = English

// Parse validates a user-supplied language code and maps it to a Tag.
func Parse(s string) (Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid language %q: %w", s, err)
	}
	base, _ := tag.Base()
	switch code := base.String(); code {
	case "en":
		return English, nil
	case "uk":
		return Ukrainian, nil
	default:
		return "", fmt.Errorf("unsupported language %q", code)
	}
}

// DisplayName returns the English name of the language ("Ukrainian"), used
// when building prompts for the model provider.
func (t Tag) DisplayName() string {
	tag, err := language.Parse(string(t))
	if err != nil {
		return string(t)
	}
	return display.English.Tags().Name(tag)
}
