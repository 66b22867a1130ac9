package util

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// IndexedData is a fetched page and its text content
type IndexedData struct {
	URL     string
	Content string
}

// MapToJSON renders a map as a JSON object, empty string for an empty map
func MapToJSON(m map[string]int) string {
	if len(m) == 0 {
		return ""
	}

	b, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(b)
}

// CheckFileIsValid reports whether path exists and is a regular file
func CheckFileIsValid(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil // File does not exist
		}
		return false, err // Some other error occurred
	}
	return info.Mode().IsRegular(), nil
}

// ReadLines returns the non blank lines of r with surrounding space trimmed
func ReadLines(r io.Reader) ([]string, error) {
	lines := []string{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

var (
	Red    = color.New(color.FgRed).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Bold   = color.New(color.Bold).SprintFunc()
)
