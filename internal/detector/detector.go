// Package detector wraps lingua-go language detection for the languages this
// pipeline actually sees: English source text, Ukrainian output and the
// Russian false-positives lingua needs to discriminate Cyrillic properly.
package detector

import (
	"strings"
	"unicode"

	lingua "github.com/pemistahl/lingua-go"
)

type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.Ukrainian, lingua.Russian).
		Build()

	return &Detector{detector: detector}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if text == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// DetectISO returns the lowercase ISO 639-1 code of the detected language.
func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

// HasCyrillic reports whether text contains at least one Cyrillic rune. Used
// as the cheap "target-language-distinctive character" acceptance test on
// degraded Ukrainian output, where running full detection on a short title
// would be unreliable.
func HasCyrillic(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Cyrillic, r) {
			return true
		}
	}
	return false
}
