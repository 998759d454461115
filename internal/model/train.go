package model

import (
	"fmt"

	"ChatbotGolang/internal/catalog"
	"ChatbotGolang/pkg/bayes"
	"ChatbotGolang/pkg/nlp"

	"github.com/samber/lo"
)

// Train fits a fresh pipeline on the catalog patterns. LanguageAuto is
// resolved from the patterns themselves.
func Train(c *catalog.Catalog, language nlp.Language) (*Context, error) {
	labels := c.Labels()
	if len(labels) == 0 {
		return nil, fmt.Errorf("intent catalog has no patterns to train on")
	}

	if language == nlp.LanguageAuto {
		language = nlp.DetectLanguage(c.Patterns())
	}

	normalizer, err := nlp.NewNormalizer(language)
	if err != nil {
		return nil, err
	}

	docs := c.Documents()
	tokens := lo.Map(docs, func(d catalog.Document, _ int) []string {
		return normalizer.Normalize(d.Text)
	})

	vectorizer, err := nlp.FitVectorizer(tokens)
	if err != nil {
		return nil, fmt.Errorf("fit vectorizer: %w", err)
	}

	labelIndex := make(map[string]int, len(labels))
	for i, tag := range labels {
		labelIndex[tag] = i
	}

	X := lo.Map(tokens, func(t []string, _ int) []float64 { return vectorizer.Transform(t) })
	y := lo.Map(docs, func(d catalog.Document, _ int) int { return labelIndex[d.Tag] })

	classifier, err := bayes.Train(X, y, len(labels), bayes.DefaultAlpha)
	if err != nil {
		return nil, fmt.Errorf("train classifier: %w", err)
	}

	return newContext(normalizer, vectorizer, classifier, labels)
}
