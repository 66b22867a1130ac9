package tfidf

import (
	"math"
	"testing"
)

func TestComputeTF(t *testing.T) {
	testCases := []struct {
		name          string
		term          string
		totalTerms    int
		termFreq      TermFreq
		expectedValue float32
	}{
		{
			name:          "Basic test",
			term:          "apple",
			totalTerms:    10,
			termFreq:      TermFreq{"apple": 3, "orange": 2, "banana": 5},
			expectedValue: 0.3,
		},
		{
			name:          "Missing term",
			term:          "kiwi",
			totalTerms:    10,
			termFreq:      TermFreq{"apple": 3},
			expectedValue: 0,
		},
		{
			name:          "Empty document",
			term:          "apple",
			totalTerms:    0,
			termFreq:      TermFreq{"apple": 3},
			expectedValue: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := ComputeTF(tc.term, tc.totalTerms, tc.termFreq)
			if math.Abs(float64(result-tc.expectedValue)) > 1e-5 {
				t.Errorf("Expected: %f, got: %f", tc.expectedValue, result)
			}
		})
	}
}

func TestComputeIDF(t *testing.T) {
	testCases := []struct {
		name          string
		term          string
		totalDocs     int
		docFreq       DocFreq
		expectedValue float32
	}{
		{
			name:          "Basic test",
			totalDocs:     1000,
			docFreq:       DocFreq{"apple": 100, "orange": 50, "banana": 200},
			term:          "apple",
			expectedValue: 1,
		},
		{
			name:          "Unseen term",
			totalDocs:     10,
			docFreq:       DocFreq{},
			term:          "apple",
			expectedValue: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := ComputeIDF(tc.term, tc.totalDocs, tc.docFreq)
			if math.Abs(float64(result-tc.expectedValue)) > 1e-5 {
				t.Errorf("Expected: %f, got: %f", tc.expectedValue, result)
			}
		})
	}
}

func TestDistinctiveTerms(t *testing.T) {
	tables := map[string]TermFreq{
		"sports":  {"the": 2, "team": 3, "goal": 1},
		"finance": {"the": 1, "stock": 2},
	}

	result := DistinctiveTerms(tables, "sports", 0)
	if len(result) != 2 {
		t.Fatalf("DistinctiveTerms() == %v, want 2 terms", result)
	}
	if result[0].Term != "team" || result[1].Term != "goal" {
		t.Errorf("DistinctiveTerms() == %v, want team then goal", result)
	}

	if top := DistinctiveTerms(tables, "sports", 1); len(top) != 1 || top[0].Term != "team" {
		t.Errorf("DistinctiveTerms(n=1) == %v", top)
	}

	if DistinctiveTerms(tables, "weather", 3) != nil {
		t.Errorf("DistinctiveTerms(unknown label) != nil")
	}
}
