package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/deanrtaylor1/gobayes/classifier"
	"github.com/deanrtaylor1/gobayes/logger"
	"github.com/deanrtaylor1/gobayes/tfidf"
	webcrawler "github.com/deanrtaylor1/gobayes/web-crawler"
)

const (
	maxRequestBody = 1 << 20
	labelTerms     = 5
)

type Response struct {
	Message string `json:"message"`
}

type TrainRequest struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

type TrainResponse struct {
	Message       string `json:"message"`
	TrainingCount int    `json:"training_count"`
}

type GuessRequest struct {
	Text string `json:"text"`
}

type GuessResponse struct {
	Message string `json:"message"`
	Label   string `json:"label"`
}

type CrawlRequest struct {
	Label    string `json:"label"`
	URL      string `json:"url"`
	MaxPages int    `json:"max_pages"`
}

type LabelData struct {
	Name       string   `json:"name"`
	Vocabulary int      `json:"vocabulary"`
	Terms      []string `json:"terms"`
}

type LabelsResponse struct {
	Message       string      `json:"message"`
	TrainingCount int         `json:"training_count"`
	Data          []LabelData `json:"data"`
}

// Options configures the crawl endpoint
type Options struct {
	Fetcher          *webcrawler.Fetcher
	CrawlMaxPages    int
	CrawlConcurrency int
}

type handler struct {
	model *classifier.Locked
	opts  Options
	// crawls run past the request, they are cancelled with this context
	ctx context.Context
}

// NewHandler returns the API handler for model. Crawls started through it
// stop when ctx is cancelled.
func NewHandler(ctx context.Context, model *classifier.Locked, opts Options) http.Handler {
	if opts.Fetcher == nil {
		opts.Fetcher = webcrawler.NewFetcher(10 * time.Second)
	}
	if opts.CrawlMaxPages < 1 {
		opts.CrawlMaxPages = 50
	}
	return &handler{model: model, opts: opts, ctx: ctx}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		logger.HandleError(fmt.Errorf("unable to marshal json: %w", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(jsonBytes); err != nil {
		logger.HandleError(err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, &Response{Message: message})
}

func decodeBody(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

// writeClassifierError maps a classifier error onto a response
func writeClassifierError(w http.ResponseWriter, err error) {
	if errors.Is(err, classifier.ErrStem) {
		writeMessage(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	logger.HandleError(err)
	writeMessage(w, http.StatusInternalServerError, "internal error")
}

// Server route to train a single document
func (h *handler) handleApiTrain(w http.ResponseWriter, r *http.Request) {
	var req TrainRequest
	if err := decodeBody(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.model.Train(req.Text, req.Label); err != nil {
		writeClassifierError(w, err)
		return
	}

	logger.WithField("label", req.Label).Debugf("trained %d characters", len(req.Text))
	writeJSON(w, http.StatusOK, &TrainResponse{
		Message:       fmt.Sprintf("Trained label %q", req.Label),
		TrainingCount: h.model.TrainingCount(),
	})
}

// Server route to guess the label of a text
func (h *handler) handleApiGuess(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req GuessRequest
	if err := decodeBody(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	label, err := h.model.Guess(req.Text)
	if err != nil {
		writeClassifierError(w, err)
		return
	}

	message := "No matching label"
	if label != "" {
		message = fmt.Sprintf("Guessed in %d Ms", time.Since(start).Milliseconds())
	}
	writeJSON(w, http.StatusOK, &GuessResponse{Message: message, Label: label})
}

// Server route to list the labels and their vocabulary sizes
func (h *handler) handleApiLabels(w http.ResponseWriter, r *http.Request) {
	labels := h.model.Labels()
	tables := make(map[string]tfidf.TermFreq, len(labels))
	for _, label := range labels {
		tables[label] = tfidf.TermFreq(h.model.Terms(label))
	}

	data := make([]LabelData, 0, len(labels))
	for _, label := range labels {
		terms := []string{}
		for _, ts := range tfidf.DistinctiveTerms(tables, label, labelTerms) {
			terms = append(terms, ts.Term)
		}
		data = append(data, LabelData{Name: label, Vocabulary: len(tables[label]), Terms: terms})
	}

	writeJSON(w, http.StatusOK, &LabelsResponse{
		Message:       "Available labels",
		TrainingCount: h.model.TrainingCount(),
		Data:          data,
	})
}

// Server route to initialize a crawl on a go routine, every page is trained under the label
func (h *handler) handleApiCrawl(w http.ResponseWriter, r *http.Request) {
	var req CrawlRequest
	if err := decodeBody(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if _, err := webcrawler.ParseSeed(req.URL); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid URL, expected an absolute http(s) URL")
		return
	}

	maxPages := req.MaxPages
	if maxPages < 1 || maxPages > h.opts.CrawlMaxPages {
		maxPages = h.opts.CrawlMaxPages
	}

	go func() {
		_, err := webcrawler.CrawlLabel(h.ctx, h.opts.Fetcher, h.model, webcrawler.CrawlOptions{
			Seed:        req.URL,
			Label:       req.Label,
			MaxPages:    maxPages,
			Concurrency: h.opts.CrawlConcurrency,
		})
		if err != nil {
			logger.HandleError(err)
		}
	}()

	writeMessage(w, http.StatusAccepted, fmt.Sprintf("Crawling %v for label %q", req.URL, req.Label))
}

// Route handler
func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger.Debugf("%s %s", r.Method, r.URL.Path)
	switch {
	case r.Method == "POST" && r.URL.Path == "/api/train":
		h.handleApiTrain(w, r)
	case r.Method == "POST" && r.URL.Path == "/api/guess":
		h.handleApiGuess(w, r)
	case r.Method == "POST" && r.URL.Path == "/api/crawl":
		h.handleApiCrawl(w, r)
	case r.Method == "GET" && r.URL.Path == "/api/labels":
		h.handleApiLabels(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, "404 Not Found")
	}
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Listening on %s...", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}
