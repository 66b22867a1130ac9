package classifier

import (
	"math"
	"sort"
)

// Scores whose magnitude falls below this are treated as "no match".
const zeroThreshold = 0.0001

// TermTable maps a stemmed term to its count for a single label
type TermTable map[string]int

// Tokenizer splits text into an ordered sequence of word tokens
type Tokenizer interface {
	Tokenize(text string) []string
}

// Stemmer reduces a single word to its root form
type Stemmer interface {
	Stem(word string) (string, error)
}

// Model is a single label text classifier. It is not safe for concurrent
// use, wrap it in a Locked when it is shared between goroutines.
type Model struct {
	labels        map[string]TermTable
	trainingCount int

	tokenizer Tokenizer
	stemmer   Stemmer
}

// NewModel returns an empty model that normalizes text with the given
// tokenizer and stemmer
func NewModel(tokenizer Tokenizer, stemmer Stemmer) *Model {
	return &Model{
		labels:    make(map[string]TermTable),
		tokenizer: tokenizer,
		stemmer:   stemmer,
	}
}

// Train folds the stemmed terms of text into the table for label.
// Nothing is changed when the text cannot be normalized.
func (m *Model) Train(text string, label string) error {
	terms, err := m.normalize(text)
	if err != nil {
		return err
	}

	table, ok := m.labels[label]
	if !ok {
		table = make(TermTable)
		m.labels[label] = table
	}

	for _, term := range terms {
		// A new term starts at 1 and is only incremented on later
		// sightings, so stored counts are 1 + (occurrences - 1). This looks
		// like an accident of insert-with-default-1 but callers depend on it.
		if _, ok := table[term]; !ok {
			table[term] = 1
			continue
		}
		table[term] += 1
	}

	m.trainingCount += 1
	return nil
}

// Guess returns the label that best matches text, or "" when no label has
// a positive score. Ties between labels resolve to an arbitrary one of them
// since labels are scanned in map order.
func (m *Model) Guess(text string) (string, error) {
	terms, err := m.normalize(text)
	if err != nil {
		return "", err
	}

	var result string
	var best float32
	for label, table := range m.labels {
		p := m.probability(terms, table)
		if p > 0 && p >= best {
			result = label
			best = p
		}
	}
	return result, nil
}

// probability scores the stemmed query terms against one label's table
func (m *Model) probability(terms []string, table TermTable) float32 {
	size := len(table)
	if size == 0 || m.trainingCount == 0 {
		return 0
	}

	var score float32
	weight := float32(math.Log(1.0 / float64(size)))
	for _, term := range terms {
		if _, ok := table[term]; ok {
			score += weight
		}
	}

	abs := float32(math.Abs(float64(score)))
	if abs < zeroThreshold {
		return 0
	}
	return float32(size) * abs / float32(m.trainingCount)
}

// TrainingCount returns the number of Train calls that succeeded
func (m *Model) TrainingCount() int {
	return m.trainingCount
}

// Labels returns every known label in sorted order
func (m *Model) Labels() []string {
	labels := make([]string, 0, len(m.labels))
	for label := range m.labels {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Vocabulary returns the number of distinct terms recorded for label
func (m *Model) Vocabulary(label string) int {
	return len(m.labels[label])
}

// TermCount returns the stored count of a stemmed term for label
func (m *Model) TermCount(label string, term string) (int, bool) {
	table, ok := m.labels[label]
	if !ok {
		return 0, false
	}
	count, ok := table[term]
	return count, ok
}

// Terms returns a copy of the table for label, nil if the label is unknown
func (m *Model) Terms(label string) TermTable {
	table, ok := m.labels[label]
	if !ok {
		return nil
	}
	out := make(TermTable, len(table))
	for term, count := range table {
		out[term] = count
	}
	return out
}
