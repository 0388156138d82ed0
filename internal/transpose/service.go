package transpose

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"akordish/internal/config"
	"akordish/internal/logging"
	"akordish/internal/pitch"
	"akordish/internal/sheet"
	"akordish/internal/spelling"
)

var (
	// ErrEmptyDocument indicates a request without any sheet text.
	ErrEmptyDocument = errors.New("empty document")
	// ErrShiftOutOfRange indicates a shift outside the window with clamping disabled.
	ErrShiftOutOfRange = errors.New("shift out of range")
	// ErrInvalidSpelling indicates a spelling mode other than auto, sharp or flat.
	ErrInvalidSpelling = errors.New("invalid spelling")
)

// Request describes one transposition.
type Request struct {
	Document string
	// Shift is ignored when TargetKey is set.
	Shift       int
	OriginalKey string
	// TargetKey derives the shift from OriginalKey, which must then be set.
	TargetKey string
	// Spelling is "auto", "sharp" or "flat". Empty uses the configured default.
	Spelling string
}

// Result is a transposed sheet plus how it was produced.
type Result struct {
	Text string
	// Requested is the shift before clamping.
	Requested int
	Shift     int
	Policy    pitch.SpellingPolicy
	// PolicySource is "explicit", or the spelling.Source of an automatic decision.
	PolicySource string
	Stats        sheet.Stats
	RequestID    string
}

// Service transposes sheets under one configuration.
type Service struct {
	settings  config.Transpose
	formatter sheet.Formatter
	logger    *slog.Logger
	newID     func() string
}

// New builds a Service. A nil cfg uses config.Default and a nil logger discards output.
func New(cfg *config.Config, logger *slog.Logger) *Service {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	classifier := sheet.Classifier{
		Threshold: cfg.Classifier.ChordLineThreshold,
		Relaxed:   cfg.Classifier.RelaxedFallback,
	}
	return &Service{
		settings:  cfg.Transpose,
		formatter: sheet.NewFormatter(classifier),
		logger:    logging.NewComponentLogger(logger, "transpose"),
		newID:     uuid.NewString,
	}
}

// Transpose validates req, shifts the sheet, and reports the outcome.
func (s *Service) Transpose(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if strings.TrimSpace(req.Document) == "" {
		return Result{}, ErrEmptyDocument
	}

	rid, ok := logging.RequestIDFromContext(ctx)
	if !ok {
		rid = s.newID()
		ctx = logging.WithRequestID(ctx, rid)
	}
	logger := logging.WithContext(ctx, s.logger)

	requested, err := requestedShift(req)
	if err != nil {
		return Result{}, err
	}
	shift, err := s.Clamp(requested)
	if err != nil {
		return Result{}, err
	}

	policy, source, reason, err := s.resolvePolicy(req)
	if err != nil {
		return Result{}, err
	}
	logger.Info("spelling policy resolved", logging.Args(append(
		logging.DecisionAttrs("spelling_policy", policy.String(), reason),
		logging.Int("shift", shift),
		logging.Int("requested_shift", requested),
	)...)...)

	text, stats := s.formatter.FormatWithStats(req.Document, shift, policy)
	logger.Debug("sheet transposed",
		logging.Int("chord_lines", stats.ChordLines),
		logging.Int("chords", stats.Chords()),
		logging.Int("relaxed_chords", stats.RelaxedChords),
	)

	return Result{
		Text:         text,
		Requested:    requested,
		Shift:        shift,
		Policy:       policy,
		PolicySource: source,
		Stats:        stats,
		RequestID:    rid,
	}, nil
}

func requestedShift(req Request) (int, error) {
	if strings.TrimSpace(req.TargetKey) == "" {
		return req.Shift, nil
	}
	if strings.TrimSpace(req.OriginalKey) == "" {
		return 0, fmt.Errorf("target key %q requires an original key", req.TargetKey)
	}
	shift, err := pitch.IntervalBetween(req.OriginalKey, req.TargetKey)
	if err != nil {
		return 0, fmt.Errorf("derive shift: %w", err)
	}
	return shift, nil
}

// Clamp maps shift into the configured window. With clamping enabled an
// out-of-window shift is moved by whole octaves, preferring the smallest
// movement and the request's direction on ties. Otherwise it is rejected.
func (s *Service) Clamp(shift int) (int, error) {
	lo, hi := s.settings.MinShift, s.settings.MaxShift
	if shift >= lo && shift <= hi {
		return shift, nil
	}
	if !s.settings.Clamp {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrShiftOutOfRange, shift, lo, hi)
	}
	best, found := 0, false
	first := lo + ((shift-lo)%pitch.Count+pitch.Count)%pitch.Count
	for c := first; c <= hi; c += pitch.Count {
		if !found || closer(c, best, shift) {
			best, found = c, true
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: no octave of %d fits [%d, %d]", ErrShiftOutOfRange, shift, lo, hi)
	}
	return best, nil
}

func closer(candidate, current, requested int) bool {
	ca, cu := abs(candidate), abs(current)
	if ca != cu {
		return ca < cu
	}
	return (candidate > 0) == (requested > 0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (s *Service) resolvePolicy(req Request) (pitch.SpellingPolicy, string, string, error) {
	mode := config.NormalizeSpelling(req.Spelling)
	if strings.TrimSpace(req.Spelling) == "" {
		mode = s.settings.Spelling
	}
	switch mode {
	case config.SpellingSharp:
		return pitch.Sharp, "explicit", "spelling set to sharp", nil
	case config.SpellingFlat:
		return pitch.Flat, "explicit", "spelling set to flat", nil
	case config.SpellingAuto:
	default:
		return 0, "", "", fmt.Errorf("%w: %q", ErrInvalidSpelling, req.Spelling)
	}

	key := req.OriginalKey
	if _, err := pitch.ParseKey(req.TargetKey); err == nil {
		key = req.TargetKey
	}
	d := spelling.Decide(req.Document, key)
	var reason string
	switch d.Source {
	case spelling.SourceKey:
		reason = fmt.Sprintf("key %s", strings.TrimSpace(key))
	case spelling.SourceDocument:
		reason = fmt.Sprintf("sheet has %d flats and %d sharps", d.Flats, d.Sharps)
	default:
		reason = "no key or accidentals, defaulting to sharps"
	}
	return d.Policy, string(d.Source), reason, nil
}
