package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounts_Merge(t *testing.T) {
	a := Counts{"cat": 2, "dog": 1}
	b := Counts{"dog": 3, "fox": 1}

	a.Merge(b)

	assert.Equal(t, Counts{"cat": 2, "dog": 4, "fox": 1}, a)
	// other side untouched
	assert.Equal(t, Counts{"dog": 3, "fox": 1}, b)
}

func TestCounts_Subtract(t *testing.T) {
	a := Counts{"cat": 2, "dog": 4, "fox": 1}

	a.Subtract(Counts{"dog": 4, "fox": 1, "cat": 1})

	assert.Equal(t, Counts{"cat": 1}, a)

	// zeroed entries must be gone, not present with count 0
	_, ok := a["dog"]
	assert.False(t, ok)
}

func TestCounts_MergeSubtractRoundTrip(t *testing.T) {
	a := Counts{"cat": 1, "sat": 1}
	b := Counts{"mat": 2, "cat": 1}

	sum := a.Clone()
	sum.Merge(b)
	sum.Subtract(b)

	assert.Equal(t, a, sum)
}

func TestVocabulary(t *testing.T) {
	v := make(Vocabulary)
	v.Add("cat")
	v.Add("cat")

	assert.True(t, v.Contains("cat"))
	assert.False(t, v.Contains("dog"))
	assert.Len(t, v, 1)
}
