package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deanrtaylor1/gobayes/cli"
	webcrawler "github.com/deanrtaylor1/gobayes/web-crawler"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"cli"},
	Short:   "Train and query the classifier from an interactive prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		model, closeModel, err := buildModel(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeModel()

		session := &cli.Session{
			Model:    model,
			Prompter: cli.SurveyPrompter{},
			Out:      cmd.OutOrStdout(),
			Fetcher:  webcrawler.NewFetcher(cfg.Crawl.Timeout),
			Crawl: webcrawler.CrawlOptions{
				MaxPages:    cfg.Crawl.MaxPages,
				Concurrency: cfg.Crawl.Concurrency,
			},
		}
		return session.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
