package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/deanrtaylor1/gobayes/server"
	webcrawler "github.com/deanrtaylor1/gobayes/web-crawler"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the classifier over HTTP",
	Long: `Start an HTTP server with the train, guess, crawl and labels endpoints.
The model starts from the corpus when one is given, empty otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr = serveAddr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		model, closeModel, err := buildModel(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeModel()

		handler := server.NewHandler(ctx, model, server.Options{
			Fetcher:          webcrawler.NewFetcher(cfg.Crawl.Timeout),
			CrawlMaxPages:    cfg.Crawl.MaxPages,
			CrawlConcurrency: cfg.Crawl.Concurrency,
		})
		return server.Serve(ctx, cfg.Addr, handler)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "address to listen on")
	rootCmd.AddCommand(serveCmd)
}
