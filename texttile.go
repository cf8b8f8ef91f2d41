package texttile

import (
	"fmt"

	"github.com/hupe1980/texttile/boundary"
	"github.com/hupe1980/texttile/cohesion"
	"github.com/hupe1980/texttile/english"
	"github.com/hupe1980/texttile/model"
	"github.com/hupe1980/texttile/tokenize"
)

// Default parameters, following Hearst's published settings.
const (
	DefaultGroupSize       = 20
	DefaultBlockSize       = 10
	DefaultSmoothingWidth  = 3
	DefaultSmoothingRounds = 1
)

// Segmenter runs the full TextTiling pipeline with a fixed configuration.
// It holds no per-document state; the same Segmenter can score any number of
// documents and always produces identical output for identical input.
type Segmenter struct {
	groupSize       int
	blockSize       int
	smoothingWidth  int
	smoothingRounds int
	isStopword      model.StopwordFunc
	lemma           model.LemmaFunc
	logger          *Logger
}

// New creates a Segmenter. Without options it uses Hearst's parameters and the
// english package's language services.
func New(opts ...Option) (*Segmenter, error) {
	s := &Segmenter{
		groupSize:       DefaultGroupSize,
		blockSize:       DefaultBlockSize,
		smoothingWidth:  DefaultSmoothingWidth,
		smoothingRounds: DefaultSmoothingRounds,
		isStopword:      english.IsStopword,
		lemma:           english.Lemma,
		logger:          NoopLogger(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.groupSize <= 0 {
		return nil, fmt.Errorf("group size %d: %w", s.groupSize, tokenize.ErrInvalidGroupSize)
	}
	if s.blockSize <= 0 {
		return nil, fmt.Errorf("block size %d: %w", s.blockSize, cohesion.ErrInvalidBlockSize)
	}

	return s, nil
}

// GapScores tokenizes text and returns the raw cohesion score at every gap
// between consecutive pseudo-sentences, one score per gap in order. Use this
// instead of Segment to run a custom boundary decision on top of the core.
func (s *Segmenter) GapScores(text string) ([]float64, error) {
	res, err := tokenize.Tokenize(text, s.groupSize, s.isStopword, s.lemma)
	if err != nil {
		return nil, err
	}

	scores, err := cohesion.BlockScores(s.blockSize, res.Groups, res.Vocabulary)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("scored gaps",
		"groups", len(res.Groups),
		"vocabulary", len(res.Vocabulary),
		"gaps", len(scores),
	)

	return scores, nil
}

// Segment runs the whole pipeline and returns the token indices of the
// paragraph breaks where topic shifts were detected, in ascending order.
//
// Documents that are too short to produce at least two pseudo-sentences, or
// that have no internal paragraph breaks to snap to, yield an empty result.
func (s *Segmenter) Segment(text string) ([]int, error) {
	res, err := tokenize.Tokenize(text, s.groupSize, s.isStopword, s.lemma)
	if err != nil {
		return nil, err
	}

	scores, err := cohesion.BlockScores(s.blockSize, res.Groups, res.Vocabulary)
	if err != nil {
		return nil, err
	}

	smoothed := boundary.Smooth(scores, s.smoothingWidth, s.smoothingRounds)
	depths := boundary.DepthScores(smoothed)
	gaps := boundary.Select(depths)
	bounds := boundary.Snap(gaps, s.groupSize, res.ParagraphBreaks)

	s.logger.Debug("segmented",
		"groups", len(res.Groups),
		"gaps", len(scores),
		"candidates", len(gaps),
		"boundaries", len(bounds),
	)

	return bounds, nil
}
