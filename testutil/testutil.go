// Package testutil provides testing utilities for texttile.
//
// This package is intended for use in tests only. It provides a naive
// reference implementation of block scoring (ground truth for the incremental
// scorer) and a seeded generator for synthetic documents.
package testutil

import (
	"math"
	"math/rand"
	"strings"

	"github.com/hupe1980/texttile/model"
)

// NaiveBlockScores recomputes every window aggregate from scratch per gap.
// It is the correctness reference for cohesion.BlockScores: asymptotically
// worse, trivially auditable.
func NaiveBlockScores(k int, groups []model.Counts, vocab model.Vocabulary) []float64 {
	var scores []float64

	for i := 1; i < len(groups); i++ {
		c := min(i, k, len(groups)-i)

		before := make(model.Counts)
		for _, g := range groups[i-c : i] {
			before.Merge(g)
		}
		after := make(model.Counts)
		for _, g := range groups[i : i+c] {
			after.Merge(g)
		}

		var numerator, beforeSum, afterSum float64
		for word := range vocab {
			numerator += float64(before[word] * after[word])
			beforeSum += float64(before[word] * before[word])
			afterSum += float64(after[word] * after[word])
		}

		denominator := math.Sqrt(beforeSum * afterSum)
		if denominator == 0 {
			denominator = 1
		}
		scores = append(scores, numerator/denominator)
	}

	return scores
}

// RNG encapsulates a seeded random number generator for reproducible fixtures.
type RNG struct {
	rand *rand.Rand
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{rand: rand.New(rand.NewSource(seed))}
}

// Document generates a synthetic multi-topic document: one paragraph per
// topic, each paragraph wordsPerTopic words drawn from that topic's own small
// lexicon. Adjacent paragraphs share no vocabulary, so every topic seam is a
// genuine cohesion trough.
func (r *RNG) Document(topics int, wordsPerTopic int, lexiconSize int) string {
	var b strings.Builder

	for topic := 0; topic < topics; topic++ {
		if topic > 0 {
			b.WriteString("\n\n")
		}
		for i := 0; i < wordsPerTopic; i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(topicWord(topic, r.rand.Intn(lexiconSize)))
		}
	}

	return b.String()
}

// topicWord builds a distinct pronounceable word for (topic, index).
func topicWord(topic, index int) string {
	const letters = "bcdfghjklmnp"

	var b strings.Builder
	b.WriteByte(letters[topic%len(letters)])
	b.WriteByte('a')
	b.WriteByte(letters[index%len(letters)])
	b.WriteByte('o')
	b.WriteByte(letters[(index/len(letters))%len(letters)])
	return b.String()
}
