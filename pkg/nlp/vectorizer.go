package nlp

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// Vectorizer maps token sequences to bag-of-words count vectors. The
// vocabulary is sorted and a token's position in it is its feature index.
type Vectorizer struct {
	vocabulary []string
	index      map[string]int
}

func FitVectorizer(docs [][]string) (*Vectorizer, error) {
	vocabulary := lo.Uniq(lo.Flatten(docs))
	sort.Strings(vocabulary)

	return NewVectorizer(vocabulary)
}

// NewVectorizer restores a vectorizer from a previously fitted vocabulary.
func NewVectorizer(vocabulary []string) (*Vectorizer, error) {
	if len(vocabulary) == 0 {
		return nil, ErrEmptyVocabulary
	}

	index := make(map[string]int, len(vocabulary))
	for i, tok := range vocabulary {
		if i > 0 && vocabulary[i-1] >= tok {
			return nil, fmt.Errorf("%w: %q after %q", ErrUnorderedVocabulary, tok, vocabulary[i-1])
		}
		index[tok] = i
	}

	return &Vectorizer{
		vocabulary: append([]string(nil), vocabulary...),
		index:      index,
	}, nil
}

func (v *Vectorizer) Size() int {
	return len(v.vocabulary)
}

func (v *Vectorizer) Vocabulary() []string {
	return append([]string(nil), v.vocabulary...)
}

// Transform counts vocabulary tokens. Unknown tokens are ignored.
func (v *Vectorizer) Transform(tokens []string) []float64 {
	vec := make([]float64, len(v.vocabulary))
	for _, tok := range tokens {
		if i, ok := v.index[tok]; ok {
			vec[i]++
		}
	}
	return vec
}
