package tfidf

import (
	"math"
	"sort"
)

type TermFreq map[string]int
type DocFreq = map[string]int

// TermScore is a term and its tf-idf weight within one label
type TermScore struct {
	Term  string  `json:"term"`
	Score float32 `json:"score"`
}

// DistinctiveTerms ranks the terms of label by tf-idf, treating each label's
// table as one document. Terms shared by every label score 0 and are left
// out. At most n terms are returned, n < 1 returns them all.
func DistinctiveTerms(tables map[string]TermFreq, label string, n int) []TermScore {
	table, ok := tables[label]
	if !ok {
		return nil
	}

	df := make(DocFreq)
	for _, t := range tables {
		for term := range t {
			df[term] += 1
		}
	}

	var termCount int
	for _, freq := range table {
		termCount += freq
	}

	var result []TermScore
	for term := range table {
		score := ComputeTF(term, termCount, table) * ComputeIDF(term, len(tables), df)
		if score > 0 {
			result = append(result, TermScore{Term: term, Score: score})
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Score == result[j].Score {
			return result[i].Term < result[j].Term
		}
		return result[i].Score > result[j].Score
	})

	if n > 0 && len(result) > n {
		result = result[:n]
	}
	return result
}

// This function computes the term frequency of a given term in a document using tfidf
func ComputeTF(t string, N int, d TermFreq) float32 {
	//T is the term we are looking for
	//N is the total number of terms (not unique) in the document
	//d is the map of terms to their frequency in the document
	if _, ok := d[t]; ok && N > 0 {
		return float32(d[t]) / float32(N)
	}
	return 0
}

// Compute Inverse document frequency, that is to say, it computes the importance of a term in the collection.
// By seeing how frequent it is in all other documents vs the current document.
func ComputeIDF(t string, N int, df DocFreq) float32 {
	//N The total number of documents in the collection.

	//If M is 0, set it to 1 to avoid division by zero errors.
	M := math.Max(float64(df[t]), 1)

	return float32(math.Log10(float64(N) / M))
}
