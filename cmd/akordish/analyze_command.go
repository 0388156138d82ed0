package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"akordish/internal/pitch"
	"akordish/internal/sheet"
	"akordish/internal/spelling"
)

type analysisReport struct {
	Spelling string      `json:"spelling"`
	Source   string      `json:"source"`
	Key      string      `json:"key,omitempty"`
	Flats    int         `json:"flats"`
	Sharps   int         `json:"sharps"`
	Stats    sheet.Stats `json:"stats"`
	Chords   []string    `json:"chords"`
}

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var key string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "analyze [file|-]",
		Short: "Report the spelling a sheet would be transposed with",
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
			report := analyze(classifier, doc, key)

			if jsonOutput {
				return writeJSON(cmd, report)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Spelling: %s (%s)\n", report.Spelling, describeSource(report))
			fmt.Fprintf(out, "Accidentals: %d flats, %d sharps\n", report.Flats, report.Sharps)
			fmt.Fprintf(out, "Lines: %d chord, %d lyric, %d empty\n",
				report.Stats.ChordLines, report.Stats.LyricLines, report.Stats.EmptyLines)
			fmt.Fprintf(out, "Chords: %d block, %d inline", report.Stats.BlockChords, report.Stats.InlineChords)
			if report.Stats.RelaxedChords > 0 {
				fmt.Fprintf(out, " (%d shorthand)", report.Stats.RelaxedChords)
			}
			fmt.Fprintln(out)
			if len(report.Chords) > 0 {
				fmt.Fprintf(out, "Distinct: %s\n", strings.Join(report.Chords, " "))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "Key the sheet is written in")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func analyze(classifier sheet.Classifier, doc, key string) analysisReport {
	decision := spelling.Decide(doc, key)
	flats, sharps := spelling.Counts(doc)
	_, stats := sheet.NewFormatter(classifier).FormatWithStats(doc, 0, pitch.Sharp)

	seen := map[string]struct{}{}
	chords := []string{}
	for _, sym := range classifier.Parse(doc).Chords() {
		name := sym.String()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		chords = append(chords, name)
	}

	return analysisReport{
		Spelling: decision.Policy.String(),
		Source:   string(decision.Source),
		Key:      strings.TrimSpace(key),
		Flats:    flats,
		Sharps:   sharps,
		Stats:    stats,
		Chords:   chords,
	}
}

func describeSource(r analysisReport) string {
	switch spelling.Source(r.Source) {
	case spelling.SourceKey:
		return "from key " + r.Key
	case spelling.SourceDocument:
		return "from accidentals in the sheet"
	default:
		return "default"
	}
}
