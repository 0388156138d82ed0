package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"akordish/internal/catalog"
	"akordish/internal/textutil"
	"akordish/internal/transpose"
)

func newSongCommand(ctx *commandContext) *cobra.Command {
	songCmd := &cobra.Command{
		Use:   "song",
		Short: "Manage the song catalog",
	}
	songCmd.AddCommand(newSongAddCommand(ctx))
	songCmd.AddCommand(newSongListCommand(ctx))
	songCmd.AddCommand(newSongShowCommand(ctx))
	songCmd.AddCommand(newSongTransposeCommand(ctx))
	songCmd.AddCommand(newSongExportCommand(ctx))
	songCmd.AddCommand(newSongDeleteCommand(ctx))
	return songCmd
}

func newSongAddCommand(ctx *commandContext) *cobra.Command {
	var song catalog.Song

	cmd := &cobra.Command{
		Use:   "add [file|-]",
		Short: "Add a sheet to the catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readDocument(cmd, args)
			if err != nil {
				return err
			}
			song.Body = body
			return ctx.withCatalog(func(store *catalog.Store) error {
				added, err := store.Add(cmd.Context(), song)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added song %d: %s\n", added.ID, added.DisplayTitle())
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&song.Title, "title", "t", "", "Song title")
	cmd.Flags().StringVarP(&song.Artist, "artist", "a", "", "Performing artist")
	cmd.Flags().StringVarP(&song.OriginalKey, "key", "k", "", "Key the sheet is written in")
	cmd.Flags().StringVar(&song.EasyKey, "easy-key", "", "Simpler key to play the song in")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

type songSummary struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist,omitempty"`
	OriginalKey string `json:"original_key,omitempty"`
	EasyKey     string `json:"easy_key,omitempty"`
	EasyShift   *int   `json:"easy_shift,omitempty"`
}

func summarize(song *catalog.Song) songSummary {
	s := songSummary{
		ID:          song.ID,
		Title:       song.Title,
		Artist:      song.Artist,
		OriginalKey: song.OriginalKey,
		EasyKey:     song.EasyKey,
	}
	if shift, ok := song.EasyShift(); ok {
		s.EasyShift = &shift
	}
	return s
}

func newSongListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog songs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(func(store *catalog.Store) error {
				songs, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput {
					summaries := make([]songSummary, 0, len(songs))
					for _, song := range songs {
						summaries = append(summaries, summarize(song))
					}
					return writeJSON(cmd, summaries)
				}
				if len(songs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Catalog is empty")
					return nil
				}
				rows := make([][]string, 0, len(songs))
				for _, song := range songs {
					easy := "-"
					if shift, ok := song.EasyShift(); ok {
						easy = fmt.Sprintf("%s (%+d)", song.EasyKey, shift)
					}
					rows = append(rows, []string{
						strconv.FormatInt(song.ID, 10),
						truncate(song.DisplayTitle(), 50),
						dashIfEmpty(song.OriginalKey),
						easy,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Song", "Key", "Easy key"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newSongShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Print a catalog song",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSongID(args[0])
			if err != nil {
				return err
			}
			return ctx.withCatalog(func(store *catalog.Store) error {
				song, err := store.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, song.DisplayTitle())
				if song.OriginalKey != "" {
					fmt.Fprintf(out, "Key: %s", song.OriginalKey)
					if song.EasyKey != "" {
						fmt.Fprintf(out, " (easy: %s)", song.EasyKey)
					}
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out)
				fmt.Fprint(out, ensureTrailingNewline(song.Body))
				return nil
			})
		},
	}
}

func newSongTransposeCommand(ctx *commandContext) *cobra.Command {
	var (
		shift    int
		to       string
		easy     bool
		spelling string
	)

	cmd := &cobra.Command{
		Use:   "transpose ID",
		Short: "Print a catalog song in another key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSongID(args[0])
			if err != nil {
				return err
			}
			chosen := 0
			for _, set := range []bool{cmd.Flags().Changed("shift"), to != "", easy} {
				if set {
					chosen++
				}
			}
			if chosen != 1 {
				return errors.New("exactly one of --shift, --to, or --easy is required")
			}
			svc, err := ctx.transposeService(cmd)
			if err != nil {
				return err
			}
			return ctx.withCatalog(func(store *catalog.Store) error {
				song, err := store.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				req := transpose.Request{
					Document:    song.Body,
					Shift:       shift,
					OriginalKey: song.OriginalKey,
					TargetKey:   to,
					Spelling:    spelling,
				}
				if easy {
					if song.EasyKey == "" {
						return fmt.Errorf("song %d has no easy key", song.ID)
					}
					req.TargetKey = song.EasyKey
				}
				res, err := svc.Transpose(cmd.Context(), req)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), ensureTrailingNewline(res.Text))
				return err
			})
		},
	}
	cmd.Flags().IntVarP(&shift, "shift", "s", 0, "Semitones to shift")
	cmd.Flags().StringVar(&to, "to", "", "Target key")
	cmd.Flags().BoolVar(&easy, "easy", false, "Transpose to the stored easy key")
	cmd.Flags().StringVar(&spelling, "spelling", "", "Accidentals to use: auto, sharp, or flat")
	return cmd
}

func newSongExportCommand(ctx *commandContext) *cobra.Command {
	var dir string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "export ID",
		Short: "Write a catalog song to a text file named after it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSongID(args[0])
			if err != nil {
				return err
			}
			return ctx.withCatalog(func(store *catalog.Store) error {
				song, err := store.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				name := textutil.SanitizeFileName(song.DisplayTitle())
				if name == "" {
					name = fmt.Sprintf("song-%d", song.ID)
				}
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create export directory: %w", err)
				}
				target := filepath.Join(dir, name+".txt")
				flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
				if !overwrite {
					flags = os.O_CREATE | os.O_WRONLY | os.O_EXCL
				}
				file, err := os.OpenFile(target, flags, 0o644)
				if err != nil {
					if errors.Is(err, os.ErrExist) {
						return fmt.Errorf("%s already exists (use --overwrite to replace it)", target)
					}
					return fmt.Errorf("create export file: %w", err)
				}
				if _, err := file.WriteString(song.Body); err != nil {
					_ = file.Close()
					return fmt.Errorf("write export file: %w", err)
				}
				if err := file.Close(); err != nil {
					return fmt.Errorf("close export file: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported song %d to %s\n", song.ID, target)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory to write into")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing file")
	return cmd
}

func newSongDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Remove a song from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSongID(args[0])
			if err != nil {
				return err
			}
			return ctx.withCatalog(func(store *catalog.Store) error {
				if err := store.Delete(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted song %d\n", id)
				return nil
			})
		},
	}
}

func parseSongID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid song id %q", value)
	}
	return id, nil
}

func dashIfEmpty(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func ensureTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
