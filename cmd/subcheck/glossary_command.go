package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"subcheck/internal/config"
	"subcheck/internal/glossary"
)

func newGlossaryCommand(ctx *commandContext) *cobra.Command {
	var ratioFlag float64

	cmd := &cobra.Command{
		Use:   "glossary TERMS_FILE TEXT_FILE",
		Short: "Flag near-miss spellings of glossary terms",
		Long: "Reads glossary terms (one per line) from TERMS_FILE and flags words in\n" +
			"TEXT_FILE that nearly match a term without equaling it, which usually\n" +
			"indicates a typo or an unapproved variant spelling.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			terms, err := readTerms(args[0])
			if err != nil {
				return err
			}
			textPath, err := config.ExpandPath(args[1])
			if err != nil {
				return err
			}
			content, err := os.ReadFile(textPath)
			if err != nil {
				return fmt.Errorf("read text file: %w", err)
			}

			ratio := cfg.Glossary.RatioThreshold
			if cmd.Flags().Changed("ratio") {
				ratio = ratioFlag
			}
			if ratio < 0 || ratio > 100 {
				return fmt.Errorf("ratio must be between 0 and 100, got %v", ratio)
			}

			findings := glossary.Check(terms, string(content), ratio)
			out := cmd.OutOrStdout()
			if len(findings) == 0 {
				fmt.Fprintln(out, "No near misses found.")
				return nil
			}

			fmt.Fprintln(out, findingsTable(findings))
			fmt.Fprintf(out, "%d near miss(es) found\n", len(findings))
			return nil
		},
	}

	cmd.Flags().Float64Var(&ratioFlag, "ratio", glossary.DefaultThreshold, "Similarity threshold for flagging a near miss (0-100); when unset, glossary.ratio_threshold from the config applies")
	return cmd
}

// findingsTable renders near misses with line and score right-aligned.
func findingsTable(findings []glossary.Finding) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Line", "Word", "Term", "Score", "Context"})
	for _, f := range findings {
		tw.AppendRow(table.Row{
			strconv.Itoa(f.Line),
			f.Word,
			f.Term,
			strconv.FormatFloat(f.Score, 'f', 1, 64),
			f.Context,
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func readTerms(path string) ([]string, error) {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("read terms file: %w", err)
	}
	var terms []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		terms = append(terms, line)
	}
	return terms, nil
}
