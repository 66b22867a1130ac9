package lexer

import "unicode"

// Tokenizer splits text into words with a fresh Lexer per call
type Tokenizer struct {
	punctuation bool
}

type Option func(*Tokenizer)

// WithPunctuation controls whether single rune punctuation tokens are kept.
// They are kept by default.
func WithPunctuation(keep bool) Option {
	return func(t *Tokenizer) {
		t.punctuation = keep
	}
}

func NewTokenizer(opts ...Option) *Tokenizer {
	t := &Tokenizer{punctuation: true}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize returns the tokens of text in order
func (t *Tokenizer) Tokenize(text string) []string {
	tokens := []string{}
	l := NewLexer(text)
	for {
		token, err := l.Next()
		if err != nil {
			return tokens
		}
		if !t.punctuation && isPunctuation(token) {
			continue
		}
		tokens = append(tokens, token)
	}
}

func isPunctuation(token string) bool {
	r := []rune(token)
	return len(r) == 1 && !unicode.IsLetter(r[0]) && !unicode.IsNumber(r[0])
}
