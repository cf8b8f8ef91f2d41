package texttile

import (
	"github.com/hupe1980/texttile/model"
)

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithGroupSize sets the pseudo-sentence size w: the number of raw tokens per
// group. Must be positive; New fails otherwise.
//
// Smaller groups give a finer-grained score curve, larger groups a more stable
// one. Hearst's experiments used w=20.
func WithGroupSize(w int) Option {
	return func(s *Segmenter) {
		s.groupSize = w
	}
}

// WithBlockSize sets the maximum block half-width k: how many pseudo-sentences
// on each side of a gap are aggregated for comparison. Must be positive; New
// fails otherwise. Windows shrink automatically near the ends of the text.
func WithBlockSize(k int) Option {
	return func(s *Segmenter) {
		s.blockSize = k
	}
}

// WithStopwords sets the stop-word predicate applied to raw surface forms.
// Passing nil disables stop-word filtering entirely.
//
// The default is english.IsStopword.
func WithStopwords(fn model.StopwordFunc) Option {
	return func(s *Segmenter) {
		s.isStopword = fn
	}
}

// WithLemmatizer sets the word canonicalization function applied to the
// tokens that survive stop-word filtering. Passing nil keeps words unchanged.
//
// The default is english.Lemma (Snowball stemming).
func WithLemmatizer(fn model.LemmaFunc) Option {
	return func(s *Segmenter) {
		s.lemma = fn
	}
}

// WithSmoothing configures the mean filter applied to the score curve before
// depth scoring: window width and number of rounds. A width of one or less, or
// zero rounds, disables smoothing.
func WithSmoothing(width, rounds int) Option {
	return func(s *Segmenter) {
		s.smoothingWidth = width
		s.smoothingRounds = rounds
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(s *Segmenter) {
		if logger == nil {
			logger = NoopLogger()
		}
		s.logger = logger
	}
}
