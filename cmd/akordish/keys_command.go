package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"akordish/internal/pitch"
	"akordish/internal/spelling"
)

func newKeysCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "keys FROM TO",
		Short:       "Show the semitone shift between two keys",
		Example:     "  akordish keys G Bb\n  akordish keys \"F# minor\" Em",
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := pitch.ParseKey(args[0])
			if err != nil {
				return fmt.Errorf("from key: %w", err)
			}
			to, err := pitch.ParseKey(args[1])
			if err != nil {
				return fmt.Errorf("to key: %w", err)
			}
			shift := pitch.Interval(from, to)
			up := int(to.Tonic.Shift(-int(from.Tonic)))
			down := up - pitch.Count
			if up == 0 {
				down = 0
			}
			rows := [][]string{{
				from.String(),
				to.String(),
				fmt.Sprintf("%+d", shift),
				"+" + strconv.Itoa(up),
				strconv.Itoa(down),
				spelling.Policy("", args[1]).String(),
			}}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"From", "To", "Shift", "Up", "Down", "Spelling"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}
}
