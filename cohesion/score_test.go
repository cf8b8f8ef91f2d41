package cohesion

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/texttile/model"
	"github.com/hupe1980/texttile/testutil"
	"github.com/hupe1980/texttile/tokenize"
)

func vocabOf(words ...string) model.Vocabulary {
	v := make(model.Vocabulary, len(words))
	for _, w := range words {
		v.Add(w)
	}
	return v
}

func TestBlockScores_InvalidBlockSize(t *testing.T) {
	groups := []model.Counts{{"cat": 1}, {"dog": 1}}

	for _, k := range []int{0, -3} {
		_, err := BlockScores(k, groups, vocabOf("cat", "dog"))
		assert.ErrorIs(t, err, ErrInvalidBlockSize)
	}
}

func TestBlockScores_TooFewGroups(t *testing.T) {
	vocab := vocabOf("cat")

	scores, err := BlockScores(2, nil, vocab)
	require.NoError(t, err)
	assert.Empty(t, scores)

	scores, err = BlockScores(2, []model.Counts{{"cat": 1}}, vocab)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestBlockScores_DisjointWindows(t *testing.T) {
	// the two-paragraph scenario: groups share no vocabulary at either gap
	groups := []model.Counts{
		{"cat": 1, "sat": 1},
		{"mat": 1},
		{"dog": 1, "ran": 1, "fast": 1},
	}

	scores, err := BlockScores(1, groups, vocabOf("cat", "sat", "mat", "dog", "ran", "fast"))
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0}, scores)
}

func TestBlockScores_HandComputed(t *testing.T) {
	groups := []model.Counts{
		{"cat": 2},
		{"cat": 1, "dog": 1},
		{"dog": 2},
		{"dog": 1, "fox": 1},
	}
	vocab := vocabOf("cat", "dog", "fox")

	scores, err := BlockScores(2, groups, vocab)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	// gap 1: {cat:2} vs {cat:1,dog:1} -> 2 / sqrt(4*2)
	assert.InDelta(t, 0.70711, scores[0], 1e-5)
	// gap 2: full half-width 2, {cat:3,dog:1} vs {dog:3,fox:1} -> 3 / sqrt(10*10)
	assert.InDelta(t, 0.3, scores[1], 1e-5)
	// gap 3: {dog:2} vs {dog:1,fox:1} -> 2 / sqrt(4*2)
	assert.InDelta(t, 0.70711, scores[2], 1e-5)
}

func TestBlockScores_WordsOutsideVocabularyIgnored(t *testing.T) {
	// group contents are lemmatized but the vocabulary holds raw forms, so a
	// lemma that never occurs as a raw token contributes nothing
	groups := []model.Counts{{"run": 1}, {"run": 1}}

	scores, err := BlockScores(1, groups, vocabOf("running"))
	require.NoError(t, err)

	assert.Equal(t, []float64{0}, scores)
}

func TestBlockScores_IdenticalWindows(t *testing.T) {
	groups := []model.Counts{
		{"cat": 1, "dog": 2},
		{"cat": 1, "dog": 2},
	}

	scores, err := BlockScores(1, groups, vocabOf("cat", "dog"))
	require.NoError(t, err)
	require.Len(t, scores, 1)

	assert.InDelta(t, 1.0, scores[0], 1e-12)
}

func TestBlockScores_MatchesNaiveReference(t *testing.T) {
	text := testutil.NewRNG(1).Document(4, 60, 12)

	res, err := tokenize.Tokenize(text, 5, nil, nil)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(res.Groups), 2)

	for _, k := range []int{1, 2, 3, 10, 100} {
		scores, err := BlockScores(k, res.Groups, res.Vocabulary)
		require.NoError(t, err)

		want := testutil.NaiveBlockScores(k, res.Groups, res.Vocabulary)
		require.Len(t, scores, len(res.Groups)-1)
		require.Len(t, want, len(scores))

		for i := range want {
			assert.InDelta(t, want[i], scores[i], 1e-9, "k=%d gap=%d", k, i)
		}
	}
}

func TestBlockScores_Bounds(t *testing.T) {
	text := testutil.NewRNG(7).Document(3, 80, 8)

	res, err := tokenize.Tokenize(text, 4, nil, nil)
	require.NoError(t, err)

	scores, err := BlockScores(6, res.Groups, res.Vocabulary)
	require.NoError(t, err)

	for i, s := range scores {
		assert.GreaterOrEqual(t, s, 0.0, "gap %d", i)
		assert.LessOrEqual(t, s, 1.0, "gap %d", i)
	}
}

func TestBlockScores_ReversalSymmetry(t *testing.T) {
	text := testutil.NewRNG(42).Document(3, 50, 10)

	res, err := tokenize.Tokenize(text, 5, nil, nil)
	require.NoError(t, err)

	forward, err := BlockScores(3, res.Groups, res.Vocabulary)
	require.NoError(t, err)

	reversedGroups := slices.Clone(res.Groups)
	slices.Reverse(reversedGroups)
	backward, err := BlockScores(3, reversedGroups, res.Vocabulary)
	require.NoError(t, err)

	require.Len(t, backward, len(forward))
	for i := range forward {
		assert.InDelta(t, forward[i], backward[len(backward)-1-i], 1e-9)
	}
}
