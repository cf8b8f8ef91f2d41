package boundary

import (
	"math"
	"slices"
)

// Smooth applies a mean filter of the given width to scores, rounds times.
// The window is clipped at both ends of the sequence. A width of one or less,
// or zero rounds, returns an unmodified copy.
func Smooth(scores []float64, width, rounds int) []float64 {
	out := slices.Clone(scores)
	if width <= 1 || rounds <= 0 {
		return out
	}

	half := width / 2
	cur := out
	for round := 0; round < rounds; round++ {
		next := make([]float64, len(cur))
		for i := range cur {
			lo := max(0, i-half)
			hi := min(len(cur), i+half+1)

			var sum float64
			for _, s := range cur[lo:hi] {
				sum += s
			}
			next[i] = sum / float64(hi-lo)
		}
		cur = next
	}
	return cur
}

// DepthScores computes the depth of every gap: the sum of the climbs from the
// gap's score up to the nearest peak on each side, where a peak is reached by
// following the curve while it does not descend.
func DepthScores(scores []float64) []float64 {
	depths := make([]float64, len(scores))

	for i, s := range scores {
		left := s
		for j := i - 1; j >= 0 && scores[j] >= left; j-- {
			left = scores[j]
		}
		right := s
		for j := i + 1; j < len(scores) && scores[j] >= right; j++ {
			right = scores[j]
		}
		depths[i] = (left - s) + (right - s)
	}

	return depths
}

// Select returns the indices of gaps whose depth exceeds the cutoff
// mean - stddev/2 over all depths. Adjacent candidates collapse to the deeper
// one, so no two selected gaps touch.
func Select(depths []float64) []int {
	if len(depths) == 0 {
		return nil
	}

	var mean float64
	for _, d := range depths {
		mean += d
	}
	mean /= float64(len(depths))

	var variance float64
	for _, d := range depths {
		variance += (d - mean) * (d - mean)
	}
	variance /= float64(len(depths))

	cutoff := mean - math.Sqrt(variance)/2

	var picked []int
	for i, d := range depths {
		if d <= cutoff {
			continue
		}
		if n := len(picked); n > 0 && i-picked[n-1] == 1 {
			if d > depths[picked[n-1]] {
				picked[n-1] = i
			}
			continue
		}
		picked = append(picked, i)
	}
	return picked
}

// Snap maps selected gaps to paragraph breaks. Gap index g (an index into the
// score sequence) sits after pseudo-sentence g, at token index (g+1)*w; each
// gap moves to the closest recorded break, ties going to the earlier one.
// The result is sorted and free of duplicates. Without recorded breaks there
// is nothing to snap to and the result is empty.
func Snap(gaps []int, w int, paragraphBreaks []int) []int {
	if len(gaps) == 0 || len(paragraphBreaks) == 0 {
		return nil
	}

	var out []int
	for _, g := range gaps {
		tokenIndex := (g + 1) * w

		best := paragraphBreaks[0]
		for _, pb := range paragraphBreaks[1:] {
			if abs(pb-tokenIndex) < abs(best-tokenIndex) {
				best = pb
			}
		}
		if len(out) == 0 || out[len(out)-1] != best {
			out = append(out, best)
		}
	}

	slices.Sort(out)
	return slices.Compact(out)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
