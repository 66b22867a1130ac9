// Package corpus loads labelled training documents from YAML or TOML files
// and feeds them to a classifier.
package corpus

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/deanrtaylor1/gobayes/lexer"
)

var (
	ErrInvalidDocument = errors.New("corpus: invalid document")
	ErrUnknownFormat   = errors.New("corpus: unknown file format")
	ErrNoFetcher       = errors.New("corpus: document has a url but no fetcher was given")
)

// Document is one labelled training example. Exactly one of Text, File and
// URL is set.
type Document struct {
	Label string `yaml:"label" toml:"label"`
	Text  string `yaml:"text" toml:"text"`
	File  string `yaml:"file" toml:"file"`
	URL   string `yaml:"url" toml:"url"`
	// HTML strips markup from Text or File content before training
	HTML bool `yaml:"html" toml:"html"`
}

type Corpus struct {
	Documents []Document `yaml:"documents" toml:"documents"`

	dir string
}

// Trainer receives each resolved document
type Trainer interface {
	Train(text string, label string) error
}

// Fetcher returns the text content of a URL
type Fetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// Load reads a corpus, choosing the decoder from the file extension
func Load(path string) (*Corpus, error) {
	c := &Corpus{dir: filepath.Dir(path)}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading corpus: %w", err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("error parsing corpus %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, c); err != nil {
			return nil, fmt.Errorf("error parsing corpus %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that every document names exactly one source
func (c *Corpus) Validate() error {
	for i, doc := range c.Documents {
		sources := 0
		for _, s := range []string{doc.Text, doc.File, doc.URL} {
			if s != "" {
				sources += 1
			}
		}
		if sources != 1 {
			return fmt.Errorf("%w: document %d (label %q) must set exactly one of text, file or url", ErrInvalidDocument, i, doc.Label)
		}
	}
	return nil
}

// Train resolves every document and trains it under its label. It stops at
// the first failure and returns how many documents were trained before it.
func (c *Corpus) Train(ctx context.Context, trainer Trainer, fetcher Fetcher) (int, error) {
	trained := 0
	for i, doc := range c.Documents {
		if err := ctx.Err(); err != nil {
			return trained, err
		}

		text, err := c.resolve(ctx, doc, fetcher)
		if err != nil {
			return trained, fmt.Errorf("document %d: %w", i, err)
		}

		if err := trainer.Train(text, doc.Label); err != nil {
			return trained, fmt.Errorf("document %d: %w", i, err)
		}
		trained += 1
	}
	return trained, nil
}

// Labels returns the distinct labels in document order
func (c *Corpus) Labels() []string {
	seen := make(map[string]bool)
	labels := []string{}
	for _, doc := range c.Documents {
		if !seen[doc.Label] {
			seen[doc.Label] = true
			labels = append(labels, doc.Label)
		}
	}
	return labels
}

func (c *Corpus) resolve(ctx context.Context, doc Document, fetcher Fetcher) (string, error) {
	var text string
	switch {
	case doc.URL != "":
		if fetcher == nil {
			return "", ErrNoFetcher
		}
		return fetcher.FetchText(ctx, doc.URL)
	case doc.File != "":
		path := doc.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.dir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("error reading document file: %w", err)
		}
		text = string(data)
	default:
		text = doc.Text
	}

	if doc.HTML {
		text = lexer.ParseHtmlTextContent(text)
	}
	return text, nil
}
