package normalizer

import (
	"errors"
	"testing"
)

func TestNormalize_PipeTruncation(t *testing.T) {
	got := Normalize("Bitcoin hits $50k | via @cryptoNews")
	want := "Bitcoin hits $50k"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalize_StripsMarkup(t *testing.T) {
	got := Normalize(`<div><b>Ethereum</b> upgrade shipped <script>alert("x")</script>on mainnet</div>`)
	want := "Ethereum upgrade shipped on mainnet"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalize_RemovesScriptAndStyleContent(t *testing.T) {
	got := Normalize(`<style>.a{color:red}</style><p>Solana network back online after outage</p>`)
	want := "Solana network back online after outage"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalize_StripsURLs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "absolute url",
			input: "Whale moves 10k BTC https://example.com/article?id=1 to exchange",
			want:  "Whale moves 10k BTC to exchange",
		},
		{
			name:  "bare www",
			input: "Full story at www.cryptonews.example plus market recap",
			want:  "Full story at plus market recap",
		},
		{
			name:  "shortener",
			input: "Airdrop confirmed bit.ly/a1b2c3 for early users",
			want:  "Airdrop confirmed for early users",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNormalize_StripsTrackingFragments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "utm chain",
			input: "Exchange lists new token ?utm_source=feed&utm_medium=rss today",
			want:  "Exchange lists new token today",
		},
		{
			name:  "bare utm",
			input: "Exchange lists new token utm_campaign=daily today",
			want:  "Exchange lists new token today",
		},
		{
			name:  "ref fragment",
			input: "Protocol raises funding ref=homepage round closed",
			want:  "Protocol raises funding round closed",
		},
		{
			name:  "social source annotation",
			input: "Regulator comments on stablecoins source=twitter",
			want:  "Regulator comments on stablecoins",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNormalize_StripsArtifactPhrases(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Conference next week RSVP: here if attending", "Conference next week here if attending"},
		{"Miner revenue doubles Read more: at the site", "Miner revenue doubles at the site"},
		{"Token unlock schedule Click here: for details", "Token unlock schedule for details"},
		{"Exchange halts withdrawals [...] pending review", "Exchange halts withdrawals pending review"},
		{"Exchange halts withdrawals […] pending review", "Exchange halts withdrawals pending review"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	got := Normalize("Bitcoin   ETF \t approved\n\n\n by   regulator")
	want := "Bitcoin ETF approved\nby regulator"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalize_ShortResultBecomesEmpty(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"BTC up",
		"<p>ok</p>",
		"noise | Bitcoin hits new all-time high",
	}
	for _, input := range tests {
		if got := Normalize(input); got != "" {
			t.Errorf("Normalize(%q) = %q, want empty", input, got)
		}
	}
}

func TestNormalize_ParseFailureFallback(t *testing.T) {
	orig := parseHTML
	parseHTML = func(string) (string, error) { return "", errors.New("parse failed") }
	defer func() { parseHTML = orig }()

	got := Normalize("<p>Bitcoin  hits\t$50k</p> | via @cryptoNews")
	want := "Bitcoin hits $50k"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if got := Normalize("<p>ok</p>"); got != "" {
		t.Errorf("expected short fallback result to become empty, got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Bitcoin hits $50k | via @cryptoNews",
		"<b>Ethereum</b> upgrade shipped on mainnet",
		"Whale moves 10k BTC https://example.com/a to exchange",
		"Біткоїн перевищив позначку у $50 тисяч",
		"Exchange lists new token ?utm_source=feed today",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestStripMarkup(t *testing.T) {
	got := StripMarkup("Біткоїн <b>зріс</b> до<br/>нового максимуму")
	want := "Біткоїн зріс до нового максимуму"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
