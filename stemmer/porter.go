package stemmer

import (
	"fmt"

	"github.com/kljensen/snowball"
)

// Porter stems with the pure Go snowball implementation. Stop words are
// left as they are.
type Porter struct {
	language string
}

// NewPorter returns a stemmer for language, checking that it is supported
func NewPorter(language string) (*Porter, error) {
	if _, err := snowball.Stem("test", language, false); err != nil {
		return nil, fmt.Errorf("stemmer: porter %q: %w", language, err)
	}
	return &Porter{language: language}, nil
}

func (p *Porter) Stem(word string) (string, error) {
	stem, err := snowball.Stem(word, p.language, false)
	if err != nil {
		return "", err
	}
	return checkStem(word, stem)
}
