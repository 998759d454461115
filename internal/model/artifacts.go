package model

import (
	"fmt"
	"slices"

	"ChatbotGolang/internal/catalog"
	"ChatbotGolang/pkg/bayes"
	"ChatbotGolang/pkg/nlp"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
)

const (
	ClassifierArtifact = "chatbot_model.json"
	VectorizerArtifact = "vectorizer.json"
	WordsArtifact      = "words.json"
	ClassesArtifact    = "classes.json"
)

// ArtifactNames is the complete set; a WARM start needs all of them.
var ArtifactNames = []string{ClassifierArtifact, VectorizerArtifact, WordsArtifact, ClassesArtifact}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type vectorizerArtifact struct {
	Language     nlp.Language `json:"language"`
	IgnoreTokens []string     `json:"ignore_tokens"`
	Vocabulary   []string     `json:"vocabulary"`
}

// Encode serializes a trained context into the artifact set.
func Encode(c *Context) (map[string][]byte, error) {
	parts := map[string]interface{}{
		ClassifierArtifact: c.classifier.Params(),
		VectorizerArtifact: vectorizerArtifact{
			Language:     c.normalizer.Language(),
			IgnoreTokens: nlp.IgnoreTokens(),
			Vocabulary:   c.vectorizer.Vocabulary(),
		},
		WordsArtifact:   c.vectorizer.Vocabulary(),
		ClassesArtifact: c.labels,
	}

	blobs := make(map[string][]byte, len(parts))
	for name, v := range parts {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", name, err)
		}
		blobs[name] = data
	}
	return blobs, nil
}

// Decode rebuilds a context from the artifact set and checks it against the
// catalog so that every label can be answered.
func Decode(blobs map[string][]byte, c *catalog.Catalog) (*Context, error) {
	var (
		params  bayes.Params
		vec     vectorizerArtifact
		words   []string
		classes []string
	)

	targets := map[string]interface{}{
		ClassifierArtifact: &params,
		VectorizerArtifact: &vec,
		WordsArtifact:      &words,
		ClassesArtifact:    &classes,
	}
	for name, target := range targets {
		data, ok := blobs[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s is missing", ErrCorruptArtifacts, name)
		}
		if err := json.Unmarshal(data, target); err != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", ErrCorruptArtifacts, name, err)
		}
	}

	if !slices.Equal(words, vec.Vocabulary) {
		return nil, fmt.Errorf("%w: %s does not match the vectorizer vocabulary", ErrCorruptArtifacts, WordsArtifact)
	}
	if len(vec.IgnoreTokens) > 0 && !slices.Equal(vec.IgnoreTokens, nlp.IgnoreTokens()) {
		return nil, fmt.Errorf("%w: vectorizer was trained with a different punctuation set", ErrCorruptArtifacts)
	}

	if dups := lo.FindDuplicates(classes); len(dups) > 0 {
		return nil, fmt.Errorf("%w: labels %v appear more than once", ErrCorruptArtifacts, dups)
	}
	for _, tag := range classes {
		if _, ok := c.Lookup(tag); !ok {
			return nil, fmt.Errorf("%w: label %q is not in the intent catalog", ErrCorruptArtifacts, tag)
		}
	}

	normalizer, err := nlp.NewNormalizer(vec.Language)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptArtifacts, err)
	}
	vectorizer, err := nlp.NewVectorizer(vec.Vocabulary)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptArtifacts, err)
	}
	classifier, err := bayes.FromParams(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptArtifacts, err)
	}

	return newContext(normalizer, vectorizer, classifier, classes)
}
