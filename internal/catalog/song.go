package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"akordish/internal/pitch"
	"akordish/internal/textutil"
)

// Song is one catalog entry.
type Song struct {
	ID          int64
	Title       string
	Artist      string
	OriginalKey string
	EasyKey     string
	Body        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EasyShift returns the semitone shift from the original key to the easy key.
// It reports false when either key is missing or unparseable.
func (s Song) EasyShift() (int, bool) {
	from, err := pitch.ParseKey(s.OriginalKey)
	if err != nil {
		return 0, false
	}
	to, err := pitch.ParseKey(s.EasyKey)
	if err != nil {
		return 0, false
	}
	return pitch.Interval(from, to), true
}

// DisplayTitle renders "Title - Artist" in title case. Titles in scripts
// without case pass through unchanged.
func (s Song) DisplayTitle() string {
	caser := cases.Title(language.Und)
	title := caser.String(s.Title)
	if s.Artist == "" {
		return title
	}
	return title + " - " + caser.String(s.Artist)
}

func (s *Song) normalize() {
	s.Title = textutil.NormalizeSpace(s.Title)
	s.Artist = textutil.NormalizeSpace(s.Artist)
	s.OriginalKey = strings.TrimSpace(s.OriginalKey)
	s.EasyKey = strings.TrimSpace(s.EasyKey)
}

func (s Song) validate() error {
	if s.Title == "" {
		return errors.New("song title is required")
	}
	if strings.TrimSpace(s.Body) == "" {
		return errors.New("song body is required")
	}
	if s.OriginalKey != "" {
		if _, err := pitch.ParseKey(s.OriginalKey); err != nil {
			return fmt.Errorf("original key: %w", err)
		}
	}
	if s.EasyKey != "" {
		if s.OriginalKey == "" {
			return errors.New("easy key requires an original key")
		}
		if _, err := pitch.ParseKey(s.EasyKey); err != nil {
			return fmt.Errorf("easy key: %w", err)
		}
	}
	return nil
}
