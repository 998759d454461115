package nlp

import "errors"

var (
	ErrEmptyVocabulary     = errors.New("vocabulary is empty")
	ErrUnorderedVocabulary = errors.New("vocabulary is not sorted and unique")
	ErrUnresolvedLanguage  = errors.New("language must be resolved before building a normalizer")
)
