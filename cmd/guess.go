package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deanrtaylor1/gobayes/util"
)

var guessCmd = &cobra.Command{
	Use:   "guess [TEXT...]",
	Short: "Guess the label of each text",
	Long: `Train from the corpus and print the guessed label of every TEXT argument.
With no arguments each non blank line of standard input is classified.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Corpus == "" {
			return fmt.Errorf("a corpus is required, use --corpus or the corpus config key")
		}

		model, closeModel, err := buildModel(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeModel()

		texts := args
		if len(texts) == 0 {
			texts, err = util.ReadLines(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read standard input: %w", err)
			}
		}

		out := cmd.OutOrStdout()
		for _, text := range texts {
			label, err := model.Guess(text)
			if err != nil {
				return err
			}
			if len(texts) == 1 {
				fmt.Fprintln(out, label)
				continue
			}
			fmt.Fprintf(out, "%s\t%s\n", label, text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guessCmd)
}
