package detector

import "testing"

func TestDetectISO_English(t *testing.T) {
	d := New()

	iso, ok := d.DetectISO("Bitcoin surged past fifty thousand dollars this morning.")
	if !ok {
		t.Fatal("expected detection to succeed")
	}
	if iso != "en" {
		t.Errorf("expected en, got %q", iso)
	}
}

func TestDetectISO_Ukrainian(t *testing.T) {
	d := New()

	iso, ok := d.DetectISO("Біткоїн перевищив позначку у п'ятдесят тисяч доларів.")
	if !ok {
		t.Fatal("expected detection to succeed")
	}
	if iso != "uk" {
		t.Errorf("expected uk, got %q", iso)
	}
}

func TestDetectISO_Empty(t *testing.T) {
	d := New()

	if _, ok := d.DetectISO(""); ok {
		t.Error("expected detection to fail for empty text")
	}
}

func TestHasCyrillic(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"Біткоїн зріс", true},
		{"Bitcoin hits $50k", false},
		{"Bitcoin зріс", true},
		{"", false},
		{"123 $%#", false},
	}
	for _, tt := range tests {
		if got := HasCyrillic(tt.input); got != tt.want {
			t.Errorf("HasCyrillic(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
