package stemmer

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name    string
		backend string
		lang    string
		wantErr error
	}{
		{name: "snowball", backend: "snowball", lang: "english"},
		{name: "default backend", backend: "", lang: "english"},
		{name: "porter", backend: "Porter", lang: "english"},
		{name: "none", backend: "none", lang: "klingon"},
		{name: "unknown", backend: "lancaster", lang: "english", wantErr: ErrUnknownBackend},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, closeFn, err := New(tc.backend, tc.lang)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("New(%q) error == %v, want %v", tc.backend, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%q) returned %v", tc.backend, err)
			}
			defer closeFn()
			if s == nil {
				t.Fatalf("New(%q) returned nil stemmer", tc.backend)
			}
		})
	}
}

func TestUnsupportedLanguage(t *testing.T) {
	if _, err := NewSnowball("klingon"); err == nil {
		t.Errorf("NewSnowball(klingon) returned nil error")
	}
	if _, err := NewPorter("klingon"); err == nil {
		t.Errorf("NewPorter(klingon) returned nil error")
	}
}

func TestStem(t *testing.T) {
	snow, err := NewSnowball("english")
	if err != nil {
		t.Fatal(err)
	}
	defer snow.Close()

	porter, err := NewPorter("english")
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		word     string
		expected string
	}{
		{"running", "run"},
		{"stocks", "stock"},
		{"goal", "goal"},
		{"markets", "market"},
	}

	for _, s := range []Stemmer{snow, porter} {
		for _, tc := range testCases {
			got, err := s.Stem(tc.word)
			if err != nil {
				t.Errorf("%T.Stem(%q) returned %v", s, tc.word, err)
				continue
			}
			if got != tc.expected {
				t.Errorf("%T.Stem(%q) == %q, want %q", s, tc.word, got, tc.expected)
			}
		}
	}
}

func TestSnowballAfterClose(t *testing.T) {
	snow, err := NewSnowball("english")
	if err != nil {
		t.Fatal(err)
	}
	snow.Close()
	snow.Close()

	if _, err := snow.Stem("running"); err == nil {
		t.Errorf("Stem() after Close returned nil error")
	}
}

func TestCheckStem(t *testing.T) {
	if _, err := checkStem("word", ""); !errors.Is(err, ErrEmptyStem) {
		t.Errorf("checkStem(word, \"\") error == %v, want ErrEmptyStem", err)
	}
	if got, err := checkStem("", ""); err != nil || got != "" {
		t.Errorf("checkStem(\"\", \"\") == %q, %v", got, err)
	}
}

func TestIdentity(t *testing.T) {
	got, err := Identity{}.Stem("Running")
	if err != nil || got != "Running" {
		t.Errorf("Identity.Stem(Running) == %q, %v", got, err)
	}
}

func TestLanguages(t *testing.T) {
	found := false
	for _, lang := range Languages() {
		if lang == "english" {
			found = true
		}
	}
	if !found {
		t.Errorf("Languages() does not include english")
	}
}
