package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"subcheck/internal/config"
	"subcheck/internal/crossref"
)

func newCrossrefCommand(ctx *commandContext) *cobra.Command {
	var thresholdFlag float64
	var markerFlag string
	var filterFlag string
	var failOnIssues bool

	cmd := &cobra.Command{
		Use:   "crossref PATH RANGE",
		Short: "Resolve explicit reference tags across episode folders",
		Long: "Scans the episode folders in RANGE under PATH for explicit reference tags\n" +
			"(e.g. CR-03-[5,6]), resolves each against the referenced episode's script,\n" +
			"and classifies how faithfully the lines match.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			root, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			folders, err := parseFolderRange(args[1])
			if err != nil {
				return err
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
			marker := cfg.Reference.Marker
			if cmd.Flags().Changed("marker") {
				marker = markerFlag
			}

			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			results, err := crossref.RunExplicit(crossref.Options{
				Root:      root,
				Folders:   folders,
				Threshold: threshold,
				Marker:    marker,
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
	cmd.Flags().StringVar(&markerFlag, "marker", "", "Explicit reference tag marker")
	cmd.Flags().StringVar(&filterFlag, "filter", "all", "Show only matching results: all, matched, exact, similar, different, not-found")
	cmd.Flags().BoolVar(&failOnIssues, "fail-on-issues", false, "Exit non-zero when any reference is different or not found")
	return cmd
}
