package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deanrtaylor1/gobayes/tfidf"
	"github.com/deanrtaylor1/gobayes/util"
)

var (
	labelsTop  int
	labelsJSON bool
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "List the labels trained from the corpus",
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

		labels := model.Labels()
		tables := make(map[string]tfidf.TermFreq, len(labels))
		for _, label := range labels {
			tables[label] = tfidf.TermFreq(model.Terms(label))
		}

		out := cmd.OutOrStdout()
		if labelsJSON {
			vocabulary := make(map[string]int, len(labels))
			for _, label := range labels {
				vocabulary[label] = model.Vocabulary(label)
			}
			js := util.MapToJSON(vocabulary)
			if js == "" {
				js = "{}"
			}
			fmt.Fprintln(out, js)
			return nil
		}

		for _, label := range labels {
			if labelsTop < 1 {
				fmt.Fprintf(out, "%s\t%d\n", label, model.Vocabulary(label))
				continue
			}
			terms := []string{}
			for _, ts := range tfidf.DistinctiveTerms(tables, label, labelsTop) {
				terms = append(terms, ts.Term)
			}
			fmt.Fprintf(out, "%s\t%d\t%s\n", label, model.Vocabulary(label), strings.Join(terms, " "))
		}
		fmt.Fprintln(out, util.Green(fmt.Sprintf("%d documents trained", model.TrainingCount())))
		return nil
	},
}

func init() {
	labelsCmd.Flags().IntVar(&labelsTop, "top", 0, "also print the N most distinctive terms of each label (tf-idf)")
	labelsCmd.Flags().BoolVar(&labelsJSON, "json", false, "print a JSON object of label to vocabulary size")
	rootCmd.AddCommand(labelsCmd)
}
