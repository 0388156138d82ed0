package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"akordish/internal/sheet"
)

type lineReport struct {
	Line   int    `json:"line"`
	Kind   string `json:"kind"`
	Chords int    `json:"chords"`
	Tokens int    `json:"tokens"`
	Text   string `json:"text"`
}

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "classify [file|-]",
		Short: "Show how each line of a sheet is classified",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}
			classifier, err := ctx.classifier()
			if err != nil {
				return err
			}
			reports := classifyLines(classifier, doc)

			if jsonOutput {
				return writeJSON(cmd, reports)
			}
			rows := make([][]string, 0, len(reports))
			for _, r := range reports {
				ratio := "-"
				if r.Tokens > 0 {
					ratio = fmt.Sprintf("%d/%d", r.Chords, r.Tokens)
				}
				rows = append(rows, []string{strconv.Itoa(r.Line), r.Kind, ratio, truncate(r.Text, 60)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Line", "Kind", "Chords", "Text"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func classifyLines(classifier sheet.Classifier, text string) []lineReport {
	doc := classifier.Parse(strings.TrimSuffix(text, "\n"))
	reports := make([]lineReport, 0, len(doc.Lines))
	for i, line := range doc.Lines {
		chords, total := classifier.Ratio(line.Raw)
		reports = append(reports, lineReport{
			Line:   i + 1,
			Kind:   line.Kind.String(),
			Chords: chords,
			Tokens: total,
			Text:   line.Raw,
		})
	}
	return reports
}
