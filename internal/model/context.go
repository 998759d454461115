// Package model owns the trained pipeline: the normalizer, the vectorizer,
// the Naive Bayes classifier and the label set. A Context is built once at
// startup, by training or by loading artifacts, and is read-only afterwards.
package model

import (
	"errors"
	"fmt"

	"ChatbotGolang/pkg/bayes"
	"ChatbotGolang/pkg/nlp"
)

var ErrCorruptArtifacts = errors.New("model artifacts are inconsistent")

type Prediction struct {
	Tag    string
	Label  int
	Tokens []string
}

type Context struct {
	normalizer *nlp.Normalizer
	vectorizer *nlp.Vectorizer
	classifier *bayes.Model
	labels     []string
}

func newContext(n *nlp.Normalizer, v *nlp.Vectorizer, m *bayes.Model, labels []string) (*Context, error) {
	if m.NumClasses() != len(labels) {
		return nil, fmt.Errorf("%w: classifier has %d classes for %d labels", ErrCorruptArtifacts, m.NumClasses(), len(labels))
	}
	if m.NumFeatures() != v.Size() {
		return nil, fmt.Errorf("%w: classifier has %d features for a vocabulary of %d", ErrCorruptArtifacts, m.NumFeatures(), v.Size())
	}

	return &Context{
		normalizer: n,
		vectorizer: v,
		classifier: m,
		labels:     append([]string(nil), labels...),
	}, nil
}

// Classify always yields one of the known labels; an empty or fully unknown
// message falls back to the class with the highest prior.
func (c *Context) Classify(text string) (Prediction, error) {
	tokens := c.normalizer.Normalize(text)

	label, err := c.classifier.Predict(c.vectorizer.Transform(tokens))
	if err != nil {
		return Prediction{}, err
	}

	return Prediction{
		Tag:    c.labels[label],
		Label:  label,
		Tokens: tokens,
	}, nil
}

func (c *Context) Labels() []string {
	return append([]string(nil), c.labels...)
}

func (c *Context) Vocabulary() []string {
	return c.vectorizer.Vocabulary()
}

func (c *Context) Language() nlp.Language {
	return c.normalizer.Language()
}
