package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"akordish/internal/fileutil"
	"akordish/internal/transpose"
)

type transposeOptions struct {
	shift    int
	to       string
	key      string
	spelling string
	write    bool
	backup   bool
	color    string
}

func newTransposeCommand(ctx *commandContext) *cobra.Command {
	var opts transposeOptions

	cmd := &cobra.Command{
		Use:   "transpose [file|-]",
		Short: "Shift every chord in a sheet by semitones or to a target key",
		Long: `Transpose a chord sheet read from a file or stdin.

Chords written above lyrics and chords in [brackets] are both shifted. Lyrics,
section labels and anything else that is not a chord pass through unchanged.`,
		Example: `  akordish transpose song.txt --shift 2
  akordish transpose song.txt --key G --to Bb
  cat song.txt | akordish transpose --shift -3 --spelling flat`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("shift") && strings.TrimSpace(opts.to) == "" {
				return errors.New("either --shift or --to is required")
			}
			if cmd.Flags().Changed("shift") && strings.TrimSpace(opts.to) != "" {
				return errors.New("--shift and --to are mutually exclusive")
			}
			mode, err := parseColorMode(opts.color)
			if err != nil {
				return err
			}
			svc, err := ctx.transposeService(cmd)
			if err != nil {
				return err
			}
			req := transpose.Request{
				Shift:       opts.shift,
				OriginalKey: opts.key,
				TargetKey:   opts.to,
				Spelling:    opts.spelling,
			}

			if opts.write {
				return runTransposeInPlace(cmd, svc, req, args, opts.backup)
			}

			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}
			req.Document = doc
			res, err := svc.Transpose(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := res.Text
			if mode.enabled(cmd.OutOrStdout()) {
				classifier, err := ctx.classifier()
				if err != nil {
					return err
				}
				out = highlightChords(out, classifier)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVarP(&opts.shift, "shift", "s", 0, "Semitones to shift (negative shifts down)")
	cmd.Flags().StringVar(&opts.to, "to", "", "Target key; requires --key")
	cmd.Flags().StringVarP(&opts.key, "key", "k", "", "Key the sheet is written in")
	cmd.Flags().StringVar(&opts.spelling, "spelling", "", "Accidentals to use: auto, sharp, or flat (default from config)")
	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "Rewrite the file in place instead of printing")
	cmd.Flags().BoolVar(&opts.backup, "backup", false, "With --write, keep a copy of the original as <file>.orig")
	cmd.Flags().StringVar(&opts.color, "color", string(colorAuto), "Highlight chords: auto, always, or never")
	return cmd
}

func runTransposeInPlace(cmd *cobra.Command, svc *transpose.Service, req transpose.Request, args []string, backup bool) error {
	if len(args) == 0 || args[0] == "-" {
		return errors.New("--write needs a file argument")
	}
	path := args[0]

	var res transpose.Result
	transform := func(current []byte) ([]byte, error) {
		req.Document = string(current)
		var err error
		res, err = svc.Transpose(cmd.Context(), req)
		if err != nil {
			return nil, err
		}
		return []byte(res.Text), nil
	}
	if backup {
		saved, err := fileutil.RewriteLockedWithBackup(path, ".orig", transform)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved original to %s\n", saved)
	} else if err := fileutil.RewriteLocked(path, transform); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Transposed %s by %+d semitones (%s, %d chords)\n",
		path, res.Shift, res.Policy, res.Stats.Chords())
	return nil
}
