package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/deanrtaylor1/gobayes/classifier"
	"github.com/deanrtaylor1/gobayes/lexer"
	"github.com/deanrtaylor1/gobayes/util"
	webcrawler "github.com/deanrtaylor1/gobayes/web-crawler"
)

//CLI Interface of gobayes

const (
	optionTrain  = "○ Train"
	optionGuess  = "○ Guess"
	optionCrawl  = "○ Train from URL"
	optionLabels = "○ Show labels"
	optionExit   = "○ Exit"

	topTerms = 5

	crawlTimeout = 10 * time.Second
)

var menu = []string{optionTrain, optionGuess, optionCrawl, optionLabels, optionExit}

// Prompter asks the user for input
type Prompter interface {
	Select(message string, options []string) (string, error)
	Input(message string) (string, error)
}

// SurveyPrompter prompts on the terminal
type SurveyPrompter struct{}

func (SurveyPrompter) Select(message string, options []string) (string, error) {
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}

	var selected string
	err := survey.AskOne(prompt, &selected)
	return selected, err
}

func (SurveyPrompter) Input(message string) (string, error) {
	prompt := &survey.Input{
		Message: message,
	}

	var input string
	err := survey.AskOne(prompt, &input)
	return input, err
}

// Session is one interactive run against a model
type Session struct {
	Model    *classifier.Locked
	Prompter Prompter
	Out      io.Writer
	Fetcher  *webcrawler.Fetcher
	Crawl    webcrawler.CrawlOptions
}

// Utility function to show the user the current state of the model
func (s *Session) logStatus() {
	labels := s.Model.Labels()
	fmt.Fprintln(s.Out, util.Green(fmt.Sprintf("%v labels | %v documents trained", len(labels), s.Model.TrainingCount())))
}

// Clean up the CLI response to remove the bullet point
func formatCliResponse(response string) string {
	return strings.Replace(response, "○ ", "", -1)
}

// Run shows the menu until the user exits or interrupts the prompt
func (s *Session) Run(ctx context.Context) error {
	s.logStatus()
	for {
		selected, err := s.Prompter.Select("What would you like to do?", menu)
		if err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}

		switch selected {
		case optionTrain:
			err = s.train()
		case optionGuess:
			err = s.guess()
		case optionCrawl:
			err = s.crawl(ctx)
		case optionLabels:
			s.showLabels()
		case optionExit:
			return nil
		default:
			fmt.Fprintln(s.Out, util.Red("Unknown option "+formatCliResponse(selected)))
		}

		if err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			if !errors.Is(err, classifier.ErrStem) {
				return err
			}
			fmt.Fprintln(s.Out, util.Red(err.Error()))
		}
	}
}

func (s *Session) train() error {
	label, err := s.Prompter.Input("Label:")
	if err != nil {
		return err
	}
	text, err := s.Prompter.Input("Text:")
	if err != nil {
		return err
	}

	if err := s.Model.Train(text, label); err != nil {
		return err
	}
	s.logStatus()
	return nil
}

func (s *Session) guess() error {
	text, err := s.Prompter.Input("Text to classify:")
	if err != nil {
		return err
	}

	label, err := s.Model.Guess(text)
	if err != nil {
		return err
	}

	if label == "" {
		fmt.Fprintln(s.Out, util.Yellow("No matching label"))
		return nil
	}
	fmt.Fprintf(s.Out, "Guess: %s\n", util.Cyan(label))
	return nil
}

func (s *Session) crawl(ctx context.Context) error {
	label, err := s.Prompter.Input("Label:")
	if err != nil {
		return err
	}
	site, err := s.Prompter.Input("Enter a website to crawl:")
	if err != nil {
		return err
	}

	if _, err := webcrawler.ParseSeed(site); err != nil {
		fmt.Fprintln(s.Out, util.Red("Error parsing URL, please check the domain"))
		return nil
	}

	fetcher := s.Fetcher
	if fetcher == nil {
		fetcher = webcrawler.NewFetcher(crawlTimeout)
	}

	opts := s.Crawl
	opts.Seed = site
	opts.Label = label
	n, err := webcrawler.CrawlLabel(ctx, fetcher, s.Model, opts)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		// pages trained before the failure stay in the model
		fmt.Fprintln(s.Out, util.Red(fmt.Sprintf("Crawl stopped after %d pages: %v", n, err)))
		s.logStatus()
		return nil
	}
	fmt.Fprintf(s.Out, "Trained %d pages as %s\n", n, util.Cyan(label))
	s.logStatus()
	return nil
}

func (s *Session) showLabels() {
	labels := s.Model.Labels()
	if len(labels) == 0 {
		fmt.Fprintln(s.Out, util.Yellow("No labels trained yet"))
		return
	}

	for _, label := range labels {
		stats := lexer.MapToSortedSlice(s.Model.Terms(label))
		terms := []string{}
		for i := 0; i < len(stats) && i < topTerms; i++ {
			terms = append(terms, fmt.Sprintf("%s(%d)", stats[i].Token(), stats[i].Freq()))
		}
		fmt.Fprintf(s.Out, "%s %d terms: %s\n", util.Bold(label), len(stats), strings.Join(terms, " "))
	}
}
