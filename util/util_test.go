package util

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestMapToJSON(t *testing.T) {
	testCases := []struct {
		name     string
		input    map[string]int
		expected string
	}{
		{name: "empty", input: map[string]int{}, expected: ""},
		{name: "sorted keys", input: map[string]int{"b": 2, "a": 1}, expected: `{"a":1,"b":2}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MapToJSON(tc.input); got != tc.expected {
				t.Errorf("Expected: %v, got: %v", tc.expected, got)
			}
		})
	}
}

func TestCheckFileIsValid(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "corpus.yaml")
	if err := os.WriteFile(file, []byte("documents: []\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		path string
		want bool
	}{
		{file, true},
		{dir, false},
		{filepath.Join(dir, "missing.yaml"), false},
	}

	for _, v := range cases {
		got, err := CheckFileIsValid(v.path)
		if err != nil {
			t.Errorf("CheckFileIsValid(%q) returned %v", v.path, err)
		}
		if got != v.want {
			t.Errorf("CheckFileIsValid(%q) == %t, want %t", v.path, got, v.want)
		}
	}
}

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("  first line \n\n\tsecond\n   \nthird"))
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"first line", "second", "third"}
	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("ReadLines() == %q, want %q", lines, expected)
	}
}
