package webcrawler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deanrtaylor1/gobayes/lexer"
	"github.com/deanrtaylor1/gobayes/logger"
	"github.com/deanrtaylor1/gobayes/util"
)

const maxBodySize = 10 << 20

var ErrInvalidSeed = errors.New("invalid seed url")

// Trainer receives the text of every crawled page
type Trainer interface {
	Train(text string, label string) error
}

// Fetcher downloads pages and extracts their text content
type Fetcher struct {
	Client *http.Client
}

// NewFetcher returns a Fetcher whose requests time out after timeout
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{Client: &http.Client{Timeout: timeout}}
}

// CrawlOptions controls a crawl started from Seed
type CrawlOptions struct {
	Seed        string
	Label       string
	MaxPages    int
	Concurrency int
}

// Add a helper function to extract the domain name from a URL
func extractDomain(rawURL string) string {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsedURL.Host
}

// ParseSeed checks that rawURL is an absolute http(s) URL with a host
func ParseSeed(rawURL string) (*url.URL, error) {
	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidSeed, rawURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("%w %q: scheme must be http or https", ErrInvalidSeed, rawURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("%w %q: missing host", ErrInvalidSeed, rawURL)
	}
	return parsed, nil
}

// FetchText returns the text content of a single page
func (f *Fetcher) FetchText(ctx context.Context, pageURL string) (string, error) {
	page, err := f.fetchPage(ctx, pageURL)
	if err != nil {
		return "", err
	}
	return page.Content, nil
}

type fetchedPage struct {
	util.IndexedData
	links []string
}

func (f *Fetcher) fetchPage(ctx context.Context, pageURL string) (*fetchedPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error building request for %s: %w", pageURL, err)
	}

	client := http.DefaultClient
	if f != nil && f.Client != nil {
		client = f.Client
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error accessing site: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("error accessing site %s: %s", pageURL, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("error reading html response body: %w", err)
	}

	page := &fetchedPage{IndexedData: util.IndexedData{URL: pageURL}}
	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "html") {
		page.Content = string(body)
		return page, nil
	}

	page.Content = lexer.ParseHtmlTextContent(string(body))
	page.links = lexer.ParseLinks(string(body))
	return page, nil
}

// CrawlLabel walks the pages reachable from opts.Seed on the same host,
// breadth first, and trains the text of each under opts.Label. Pages that
// fail to download are logged and skipped; a training error stops the crawl.
// It returns the number of pages trained.
func CrawlLabel(ctx context.Context, fetcher *Fetcher, trainer Trainer, opts CrawlOptions) (int, error) {
	seed, err := ParseSeed(opts.Seed)
	if err != nil {
		return 0, err
	}
	domain := seed.Host
	if opts.MaxPages < 1 {
		opts.MaxPages = 1
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}

	logger.WithField("domain", domain).Infof("crawling for label %q", opts.Label)
	start := time.Now()

	var mu sync.Mutex
	visited := map[string]bool{opts.Seed: true}
	queue := []string{opts.Seed}
	trained := 0

	for len(queue) > 0 {
		var next []string

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.Concurrency)
		for _, pageURL := range queue {
			g.Go(func() error {
				page, err := fetcher.fetchPage(gctx, pageURL)
				if err != nil {
					if gctx.Err() != nil {
						return gctx.Err()
					}
					logger.HandleError(err)
					return nil
				}

				if err := trainer.Train(page.Content, opts.Label); err != nil {
					return fmt.Errorf("error training %s: %w", pageURL, err)
				}

				mu.Lock()
				defer mu.Unlock()
				trained += 1
				for _, link := range page.links {
					resolved, ok := resolveLink(pageURL, link)
					if !ok || visited[resolved] || extractDomain(resolved) != domain {
						continue
					}
					if len(visited) >= opts.MaxPages {
						break
					}
					visited[resolved] = true
					next = append(next, resolved)
				}
				logger.WithField("page", pageName(pageURL)).Debugf("trained %d characters", len(page.Content))
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return trained, err
		}
		queue = next
	}

	logger.WithFields(logrus.Fields{
		"domain": domain,
		"label":  opts.Label,
	}).Infof("finished crawling %d pages in %dMs", trained, time.Since(start).Milliseconds())
	return trained, nil
}

// resolveLink makes link absolute against the page it was found on
func resolveLink(pageURL string, link string) (string, bool) {
	if shouldIgnoreLink(link) {
		return "", false
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", false
	}
	parsedLink, err := url.Parse(link)
	if err != nil {
		return "", false
	}
	if !parsedLink.IsAbs() {
		parsedLink = base.ResolveReference(parsedLink)
	}
	if parsedLink.Scheme != "http" && parsedLink.Scheme != "https" {
		return "", false
	}
	return parsedLink.String(), true
}

func pageName(pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return pageURL
	}
	if name := urlToName(parsed.Path); name != "" {
		return name
	}
	return parsed.Host
}

func urlToName(urlPath string) string {
	// Remove common file extensions
	urlPath = strings.TrimSuffix(urlPath, ".html")
	urlPath = strings.TrimSuffix(urlPath, ".php")
	urlPath = strings.TrimSuffix(urlPath, ".asp")

	// Split the path into components
	components := strings.Split(urlPath, "/")
	// Create a Caser for title casing in English without lowercasing the entire string first
	caser := cases.Title(language.English, cases.NoLower)

	for i, component := range components {
		component = strings.ReplaceAll(component, "-", " ")
		component = strings.ReplaceAll(component, "_", " ")

		components[i] = caser.String(component)
	}

	// If the last component is empty, remove it
	if len(components) > 0 && components[len(components)-1] == "" {
		components = components[:len(components)-1]
	}

	// Skip the first component and join the remaining components with " > "
	if len(components) > 1 {
		return strings.Join(components[1:], " > ")
	}

	return ""
}

var ignoredExtensions = map[string]bool{
	".zip": true, ".tar": true, ".gz": true, ".rar": true, ".7z": true,
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".bmp": true, ".svg": true, ".webp": true,
	".mp3": true, ".wav": true, ".ogg": true, ".flac": true, ".m4a": true,
	".mp4": true, ".avi": true, ".mkv": true, ".flv": true, ".mov": true, ".wmv": true, ".webm": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true, ".ppt": true, ".pptx": true, ".pages": true, ".key": true, ".numbers": true,
	".exe": true, ".msi": true, ".bin": true, ".dmg": true, ".apk": true, ".deb": true, ".rpm": true,
	".ttf": true, ".otf": true, ".woff": true, ".woff2": true,
}

func shouldIgnoreLink(link string) bool {
	parsedURL, err := url.Parse(link)
	if err != nil {
		return true
	}

	// Check if the URL contains a fragment
	if parsedURL.Fragment != "" {
		return true
	}

	// Check if the URL has a file extension in the ignoredExtensions map
	fileExtension := filepath.Ext(parsedURL.Path)
	if _, ok := ignoredExtensions[fileExtension]; ok {
		return true
	}

	return false
}
