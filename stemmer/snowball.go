package stemmer

import (
	"fmt"
	"sync"

	"github.com/tebeka/snowball"
)

// Snowball stems with the libstemmer C library. The underlying stemmer is
// not safe for concurrent use so calls are serialised.
type Snowball struct {
	mu      sync.Mutex
	stemmer *snowball.Stemmer
}

// NewSnowball returns a stemmer for lang, e.g. "english"
func NewSnowball(lang string) (*Snowball, error) {
	stemmer, err := snowball.New(lang)
	if err != nil {
		return nil, fmt.Errorf("stemmer: snowball %q: %w", lang, err)
	}
	return &Snowball{stemmer: stemmer}, nil
}

func (s *Snowball) Stem(word string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stemmer == nil {
		return "", fmt.Errorf("stemmer: snowball used after Close")
	}
	return checkStem(word, s.stemmer.Stem(word))
}

// Close releases the C stemmer
func (s *Snowball) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stemmer != nil {
		s.stemmer.Close()
		s.stemmer = nil
	}
}

// Languages lists the languages the snowball backend supports
func Languages() []string {
	return snowball.LangList()
}
