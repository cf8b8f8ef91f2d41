package tokenize

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/hupe1980/texttile/model"
)

// ErrInvalidGroupSize is returned when the pseudo-sentence size is not positive.
var ErrInvalidGroupSize = errors.New("pseudo-sentence size must be positive")

// wordPattern matches a run of letters optionally joined to further runs by
// single internal hyphens or apostrophes ("mother-in-law", "don't"). Anything
// else is a separator.
var wordPattern = regexp.MustCompile(`[a-z]+(?:[-'][a-z]+)*`)

// Result holds the three outputs of tokenization.
type Result struct {
	// Groups is the ordered sequence of pseudo-sentences, each a word→count
	// mapping of its surviving content tokens (stop words removed, lemmatized).
	Groups []model.Counts

	// Vocabulary is the set of distinct raw non-stop-word tokens in the text.
	Vocabulary model.Vocabulary

	// ParagraphBreaks lists cumulative token counts marking "a paragraph ends
	// after the token at this position". The break after the last paragraph is
	// never recorded.
	ParagraphBreaks []int
}

// Tokenize splits text into pseudo-sentences of w raw tokens each.
//
// Stop-word filtering is applied to surface forms before lemmatization; this
// ordering is part of the contract. Either service may be nil: a nil isStopword
// keeps every word, a nil lemma leaves words unchanged.
//
// Empty input yields empty outputs, not an error.
func Tokenize(text string, w int, isStopword model.StopwordFunc, lemma model.LemmaFunc) (*Result, error) {
	if w <= 0 {
		return nil, ErrInvalidGroupSize
	}
	if isStopword == nil {
		isStopword = func(string) bool { return false }
	}
	if lemma == nil {
		lemma = func(word string) string { return word }
	}

	folded := cases.Fold().String(text)

	var (
		tokens []string
		breaks []int
	)
	for _, paragraph := range strings.Split(folded, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			continue
		}
		tokens = append(tokens, wordPattern.FindAllString(paragraph, -1)...)
		breaks = append(breaks, len(tokens))
	}
	if len(breaks) > 0 {
		// no group follows the end of the last paragraph
		breaks = breaks[:len(breaks)-1]
	}

	vocab := make(model.Vocabulary, len(tokens))
	for _, tok := range tokens {
		if !isStopword(tok) {
			vocab.Add(tok)
		}
	}

	var groups []model.Counts
	for rest := tokens; len(rest) >= w; rest = rest[w:] {
		group := make(model.Counts, w)
		for _, tok := range rest[:w] {
			if isStopword(tok) {
				continue
			}
			group.Add(lemma(tok), 1)
		}
		groups = append(groups, group)
	}
	// a trailing group with fewer than w tokens is dropped

	return &Result{Groups: groups, Vocabulary: vocab, ParagraphBreaks: breaks}, nil
}
