package cohesion

import (
	"errors"
	"math"

	"github.com/hupe1980/texttile/model"
)

// ErrInvalidBlockSize is returned when the block half-width is not positive.
var ErrInvalidBlockSize = errors.New("block size must be positive")

// BlockScores computes one similarity score per internal gap of the
// pseudo-sentence sequence, in ascending gap order.
//
// At gap i (between groups i-1 and i) the effective half-width is
// min(i, k, len(groups)-i); the window of that many groups before the gap is
// compared against the window after it. Only words in vocab contribute to the
// similarity. When both windows hold no vocabulary words at all the score is 0,
// never NaN.
//
// The result has len(groups)-1 entries; fewer than two groups yield an empty
// result. k <= 0 is the only error.
func BlockScores(k int, groups []model.Counts, vocab model.Vocabulary) ([]float64, error) {
	if k <= 0 {
		return nil, ErrInvalidBlockSize
	}
	if len(groups) < 2 {
		return nil, nil
	}

	scores := make([]float64, 0, len(groups)-1)

	// Window aggregates are maintained incrementally. All four extents are
	// nondecreasing in i (the before-window is [i-c, i), the after-window
	// [i, i+c), and c = min(i, k, n-i)), so each group enters and leaves each
	// aggregate at most once over the whole pass.
	var (
		before = make(model.Counts)
		after  = make(model.Counts)

		bLo, bHi = 0, 0
		aLo, aHi = 1, 1
	)

	for i := 1; i < len(groups); i++ {
		c := min(i, k, len(groups)-i)

		for bHi < i {
			before.Merge(groups[bHi])
			bHi++
		}
		for bLo < i-c {
			before.Subtract(groups[bLo])
			bLo++
		}
		for aHi < i+c {
			after.Merge(groups[aHi])
			aHi++
		}
		for aLo < i {
			after.Subtract(groups[aLo])
			aLo++
		}

		scores = append(scores, similarity(before, after, vocab))
	}

	return scores, nil
}

// similarity is the cosine-style score over the vocabulary basis. Iterating
// the window contents instead of the full vocabulary is equivalent: words
// absent from a window contribute zero to every sum.
func similarity(before, after model.Counts, vocab model.Vocabulary) float64 {
	var numerator, beforeSum, afterSum float64

	for word, bn := range before {
		if !vocab.Contains(word) {
			continue
		}
		beforeSum += float64(bn * bn)
		if an, ok := after[word]; ok {
			numerator += float64(bn * an)
		}
	}
	for word, an := range after {
		if vocab.Contains(word) {
			afterSum += float64(an * an)
		}
	}

	denominator := math.Sqrt(beforeSum * afterSum)
	if denominator == 0 {
		denominator = 1
	}

	return numerator / denominator
}
