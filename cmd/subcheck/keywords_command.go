package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"subcheck/internal/config"
	"subcheck/internal/crossref"
)

func newKeywordsCommand(ctx *commandContext) *cobra.Command {
	var thresholdFlag float64
	var keywordsFlag []string
	var filterFlag string
	var failOnIssues bool

	cmd := &cobra.Command{
		Use:   "keywords PATH [RANGE]",
		Short: "Resolve keyword references by free-text search",
		Long: "Scans episode folders under PATH for keyword references (e.g. \"preview 12\")\n" +
			"and resolves each by searching the referenced episode's script for the\n" +
			"surrounding line text. Without RANGE every numbered folder is scanned.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			root, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			var folders []int
			if len(args) == 2 {
				if folders, err = parseFolderRange(args[1]); err != nil {
					return err
				}
			}
			filter, err := crossref.ParseFilter(filterFlag)
			if err != nil {
				return err
			}

			threshold := cfg.Matching.SimilarityThreshold
			if cmd.Flags().Changed("threshold") {
				threshold = thresholdFlag
			}
			if threshold < 0 || threshold > 100 {
				return fmt.Errorf("threshold must be between 0 and 100, got %v", threshold)
			}
			keywords := cfg.Reference.Keywords
			if cmd.Flags().Changed("keyword") {
				keywords = keywordsFlag
			}

			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			results, err := crossref.RunKeywords(crossref.Options{
				Root:      root,
				Folders:   folders,
				Threshold: threshold,
				Keywords:  keywords,
				Logger:    logger,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderReport(out, styleFor(out), filter.Apply(results), crossref.Summarize(results))

			if failOnIssues && crossref.HasIssues(results) {
				return errors.New("differences or unresolved references found")
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&thresholdFlag, "threshold", 95, "Similarity threshold for the similar classification (0-100); when unset, matching.similarity_threshold from the config applies")
	cmd.Flags().StringSliceVar(&keywordsFlag, "keyword", nil, "Keyword literals to search for (repeatable)")
	cmd.Flags().StringVar(&filterFlag, "filter", "all", "Show only matching results: all, matched, exact, similar, different, not-found")
	cmd.Flags().BoolVar(&failOnIssues, "fail-on-issues", false, "Exit non-zero when any reference is different or not found")
	return cmd
}
