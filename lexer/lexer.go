package lexer

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Lexer struct {
	content []rune
	lower   cases.Caser
}

type stat struct {
	token string
	freq  int
}

// NewLexer creates a new Lexer
func NewLexer(content string) *Lexer {
	return &Lexer{
		content: []rune(content),
		lower:   cases.Lower(language.Und),
	}
}

// TrimLeft trims empty spaces from the left of the content
func (l *Lexer) TrimLeft() {
	for len(l.content) > 0 && unicode.IsSpace(l.content[0]) {
		l.content = l.content[1:]
	}
}

// Chop chops the content by n and returns the chopped content
func (l *Lexer) Chop(n int) (token []rune) {
	token = l.content[:n]
	l.content = l.content[n:]
	return token
}

// ChopWhile chops the content while the predicate f returns true
func (l *Lexer) ChopWhile(f func(rune) bool) (token []rune) {
	n := 0
	for n < len(l.content) && f(l.content[n]) {
		n += 1
	}
	return l.Chop(n)
}

// NextToken returns the next token, words are lower cased but not stemmed
func (l *Lexer) NextToken() []rune {

	l.TrimLeft()

	if len(l.content) == 0 {
		return nil
	}
	if unicode.IsNumber(l.content[0]) {
		return l.ChopWhile(unicode.IsNumber)
	}
	if unicode.IsLetter(l.content[0]) {
		term := l.ChopWhile(func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsNumber(r)
		})

		return []rune(l.lower.String(string(term)))
	}
	return l.Chop(1)
}

// Next returns the next token as a string
func (l *Lexer) Next() (string, error) {

	token := l.NextToken()
	if token == nil {
		return "EOF", errors.New("no more tokens")
	}
	return string(token), nil
}

// ParseLinks parses a html string and returns all the links as a slice of strings
func ParseLinks(htmlContent string) []string {
	links := []string{}
	nodes, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		fmt.Println(err)
		return links
	}
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, a := range n.Attr {
				if a.Key == "href" {
					links = append(links, a.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(nodes)
	return links
}

// ParseHtmlTextContent parses a html string and returns the text content of the document.
// Script and style bodies are skipped.
func ParseHtmlTextContent(htmlContent string) string {
	var content strings.Builder
	skip := 0

	d := html.NewTokenizer(strings.NewReader(htmlContent))
	for {
		tt := d.Next()
		switch tt {
		case html.ErrorToken:
			return content.String()
		case html.StartTagToken:
			if name, _ := d.TagName(); isHiddenTag(string(name)) {
				skip += 1
			}
		case html.EndTagToken:
			if name, _ := d.TagName(); isHiddenTag(string(name)) && skip > 0 {
				skip -= 1
			}
		case html.TextToken:
			if skip == 0 {
				content.Write(d.Text())
				content.WriteByte(' ')
			}
		}
	}
}

func isHiddenTag(name string) bool {
	return name == "script" || name == "style"
}

// MapToSortedSlice sorts a term count map by descending count, ties by term
func MapToSortedSlice(m map[string]int) (stats []stat) {
	for k, v := range m {
		stats = append(stats, stat{token: k, freq: v})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].freq == stats[j].freq {
			return stats[i].token < stats[j].token
		}
		return stats[i].freq > stats[j].freq
	})

	return stats
}

// Token returns the term of a stat
func (s stat) Token() string { return s.token }

// Freq returns the count of a stat
func (s stat) Freq() int { return s.freq }
