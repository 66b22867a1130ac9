package classifier

import (
	"errors"
	"fmt"
)

// ErrStem is matched by every error caused by a token the stemmer rejected
var ErrStem = errors.New("classifier: unable to stem token")

// StemError reports the token that could not be reduced to a root form
type StemError struct {
	Word string
	Err  error
}

func (e *StemError) Error() string {
	return fmt.Sprintf("classifier: unable to stem %q: %v", e.Word, e.Err)
}

func (e *StemError) Unwrap() error {
	return e.Err
}

func (e *StemError) Is(target error) bool {
	return target == ErrStem
}

// normalize tokenizes text and stems every token, stopping at the first
// token the stemmer rejects
func (m *Model) normalize(text string) ([]string, error) {
	tokens := m.tokenizer.Tokenize(text)
	terms := make([]string, 0, len(tokens))
	for _, token := range tokens {
		term, err := m.stemmer.Stem(token)
		if err != nil {
			return nil, &StemError{Word: token, Err: err}
		}
		terms = append(terms, term)
	}
	return terms, nil
}
