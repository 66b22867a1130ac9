package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

const testCorpus = `
documents:
  - label: sports
    text: the team scored a goal
  - label: finance
    text: stocks rose on the market today
`

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func writeCorpus(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	if err := os.WriteFile(path, []byte(testCorpus), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := Execute()
	return out.String(), err
}

func TestGuessCommand(t *testing.T) {
	corpusFile := writeCorpus(t)

	out, err := run(t, "", "guess", "--stemmer", "porter", "--corpus", corpusFile, "the team won the goal")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "sports" {
		t.Errorf("guess output == %q, want sports", out)
	}
}

func TestGuessCommandStdin(t *testing.T) {
	corpusFile := writeCorpus(t)

	out, err := run(t, "stocks and the market\n\nthe team won the goal\n", "guess", "--stemmer", "none", "--corpus", corpusFile)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("guess printed %d lines, want 2: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "finance\t") || !strings.HasPrefix(lines[1], "sports\t") {
		t.Errorf("guess output == %q", out)
	}
}

func TestLabelsCommand(t *testing.T) {
	corpusFile := writeCorpus(t)

	out, err := run(t, "", "labels", "--stemmer", "none", "--corpus", corpusFile)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"finance\t6", "sports\t5", "2 documents trained"} {
		if !strings.Contains(out, want) {
			t.Errorf("labels output does not contain %q: %q", want, out)
		}
	}
}

func TestLabelsCommandTop(t *testing.T) {
	corpusFile := writeCorpus(t)

	out, err := run(t, "", "labels", "--stemmer", "none", "--corpus", corpusFile, "--top", "2")
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "sports\t") && strings.Contains(line, "the") {
			t.Errorf("shared term listed as distinctive: %q", line)
		}
	}
	if !strings.Contains(out, "sports\t5\t") {
		t.Errorf("labels --top output == %q", out)
	}
}

func TestUnknownStemmer(t *testing.T) {
	corpusFile := writeCorpus(t)

	if _, err := run(t, "", "labels", "--stemmer", "lancaster", "--corpus", corpusFile); err == nil {
		t.Errorf("labels with an unknown stemmer returned nil error")
	}
}

func TestMissingCorpusFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := run(t, "", "labels", "--stemmer", "none", "--corpus", missing)
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("labels with a missing corpus returned %v", err)
	}
}

func TestLabelsCommandJSON(t *testing.T) {
	corpusFile := writeCorpus(t)

	out, err := run(t, "", "labels", "--stemmer", "none", "--corpus", corpusFile, "--json")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != `{"finance":6,"sports":5}` {
		t.Errorf("labels --json output == %q", out)
	}
}
