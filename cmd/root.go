package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/deanrtaylor1/gobayes/classifier"
	"github.com/deanrtaylor1/gobayes/config"
	"github.com/deanrtaylor1/gobayes/corpus"
	"github.com/deanrtaylor1/gobayes/lexer"
	"github.com/deanrtaylor1/gobayes/logger"
	"github.com/deanrtaylor1/gobayes/stemmer"
	"github.com/deanrtaylor1/gobayes/util"
	webcrawler "github.com/deanrtaylor1/gobayes/web-crawler"
)

var (
	configPath string
	logLevel   string
	stemmerOpt string
	language   string
	corpusPath string
)

var rootCmd = &cobra.Command{
	Use:   "gobayes",
	Short: "gobayes - a simple text classifier written in Go",
	Long: `gobayes trains a single label text classifier from labelled documents
and guesses the most likely label for new text.

Training documents are listed in a YAML or TOML corpus file. The trained
model lives in memory for the life of the command.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&stemmerOpt, "stemmer", "", "stemmer backend (snowball, porter, none)")
	rootCmd.PersistentFlags().StringVar(&language, "language", "", "stemmer language ("+strings.Join(stemmer.Languages(), ", ")+")")
	rootCmd.PersistentFlags().StringVar(&corpusPath, "corpus", "", "corpus file to train from (.yaml, .yml or .toml)")
}

// loadConfig reads the config file and applies the flags that were set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := requireFile("config", configPath); err != nil {
		return nil, err
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("stemmer") {
		cfg.Stemmer = stemmerOpt
	}
	if flags.Changed("language") {
		cfg.Language = language
	}
	if flags.Changed("corpus") {
		cfg.Corpus = corpusPath
	}

	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if err := requireFile("corpus", cfg.Corpus); err != nil {
		return nil, err
	}
	return cfg, nil
}

// requireFile fails unless path is empty or names a regular file
func requireFile(kind string, path string) error {
	if path == "" {
		return nil
	}
	ok, err := util.CheckFileIsValid(path)
	if err != nil {
		return fmt.Errorf("unable to read %s file %s: %w", kind, path, err)
	}
	if !ok {
		return fmt.Errorf("%s file %s does not exist or is not a regular file", kind, path)
	}
	return nil
}

// buildModel creates the model described by cfg and trains it on the
// configured corpus. The returned function releases the stemmer.
func buildModel(ctx context.Context, cfg *config.Config) (*classifier.Locked, func(), error) {
	s, closeStemmer, err := stemmer.New(cfg.Stemmer, cfg.Language)
	if err != nil {
		return nil, nil, err
	}

	tokenizer := lexer.NewTokenizer(lexer.WithPunctuation(cfg.Tokenize.Punctuation))
	model := classifier.NewLocked(classifier.NewModel(tokenizer, s))

	if cfg.Corpus == "" {
		logger.Warnf("no corpus configured, starting with an empty model")
		return model, closeStemmer, nil
	}

	c, err := corpus.Load(cfg.Corpus)
	if err != nil {
		closeStemmer()
		return nil, nil, err
	}

	n, err := c.Train(ctx, model, webcrawler.NewFetcher(cfg.Crawl.Timeout))
	if err != nil {
		closeStemmer()
		return nil, nil, fmt.Errorf("failed to train corpus %s: %w", cfg.Corpus, err)
	}
	logger.WithFields(logrus.Fields{
		"corpus": cfg.Corpus,
		"labels": strings.Join(c.Labels(), ","),
	}).Infof("trained %d documents", n)
	return model, closeStemmer, nil
}

