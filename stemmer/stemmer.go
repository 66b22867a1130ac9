// Package stemmer provides the word stemmers used to normalize training
// and query text.
package stemmer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyStem is returned when a non-empty word has no root form
	ErrEmptyStem = errors.New("stemmer: word stemmed to empty string")

	// ErrUnknownBackend is returned by New for an unrecognised backend name
	ErrUnknownBackend = errors.New("stemmer: unknown backend")
)

// Backend names accepted by New
const (
	BackendSnowball = "snowball"
	BackendPorter   = "porter"
	BackendNone     = "none"
)

// Stemmer reduces a word to its root form
type Stemmer interface {
	Stem(word string) (string, error)
}

// New returns the stemmer for backend in the given language. The returned
// close function must be called once the stemmer is no longer used.
func New(backend string, language string) (Stemmer, func(), error) {
	switch strings.ToLower(backend) {
	case BackendSnowball, "":
		s, err := NewSnowball(language)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case BackendPorter:
		p, err := NewPorter(language)
		if err != nil {
			return nil, nil, err
		}
		return p, func() {}, nil
	case BackendNone:
		return Identity{}, func() {}, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}

// Identity returns every word unchanged
type Identity struct{}

func (Identity) Stem(word string) (string, error) {
	return word, nil
}

func checkStem(word string, stem string) (string, error) {
	if stem == "" && word != "" {
		return "", ErrEmptyStem
	}
	return stem, nil
}
