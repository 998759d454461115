package model

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"ChatbotGolang/internal/catalog"
	"ChatbotGolang/pkg/nlp"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `{
  "intents": [
    {"tag": "greeting", "patterns": ["hi", "hello"], "responses": ["Hi there!", "Hello!"]},
    {"tag": "goodbye", "patterns": ["bye", "see you later", "goodbye"], "responses": ["Goodbye!", "See you!"]},
    {"tag": "unreachable", "patterns": [], "responses": ["never"]}
  ]
}`

var heldOut = []string{"", "hello", "HELLO!!", "see you", "hi, bye", "completely unrelated words", "?¿!"}

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse(strings.NewReader(testCatalog), validator.New())
	require.NoError(t, err)
	return c
}

func shippedCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load(filepath.Join("..", "..", "intents.json"), validator.New())
	require.NoError(t, err)
	return c
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestTrain_GreetingScenario(t *testing.T) {
	req := require.New(t)

	mc, err := Train(newTestCatalog(t), nlp.LanguageEnglish)
	req.NoError(err)
	req.Equal([]string{"greeting", "goodbye"}, mc.Labels())

	p, err := mc.Classify("hello")
	req.NoError(err)
	req.Equal("greeting", p.Tag)
	req.Equal(0, p.Label)
	req.Equal([]string{"hello"}, p.Tokens)
}

func TestTrain_EmptyMessageFallsBackToMajorityIntent(t *testing.T) {
	mc, err := Train(newTestCatalog(t), nlp.LanguageEnglish)
	require.NoError(t, err)

	p, err := mc.Classify("")
	require.NoError(t, err)
	assert.Empty(t, p.Tokens)
	assert.Equal(t, "goodbye", p.Tag)
}

func TestTrain_IsIdempotent(t *testing.T) {
	c := newTestCatalog(t)

	first, err := Train(c, nlp.LanguageEnglish)
	require.NoError(t, err)
	second, err := Train(c, nlp.LanguageEnglish)
	require.NoError(t, err)

	assert.Equal(t, first.Vocabulary(), second.Vocabulary())
	assert.Equal(t, first.Labels(), second.Labels())
}

func TestClassify_AlwaysReturnsAKnownLabel(t *testing.T) {
	mc, err := Train(newTestCatalog(t), nlp.LanguageEnglish)
	require.NoError(t, err)

	for _, input := range heldOut {
		p, err := mc.Classify(input)
		require.NoError(t, err)
		assert.Contains(t, mc.Labels(), p.Tag, "input %q", input)
	}
}

func TestTrain_AutoLanguageOnShippedCatalog(t *testing.T) {
	req := require.New(t)

	mc, err := Train(shippedCatalog(t), nlp.LanguageAuto)
	req.NoError(err)
	req.Equal(nlp.LanguageSpanish, mc.Language())

	tests := map[string]string{
		"hola":           "saludo",
		"Muchas gracias": "agradecimiento",
		"adiós":          "despedida",
	}
	for input, want := range tests {
		p, err := mc.Classify(input)
		req.NoError(err)
		req.Equal(want, p.Tag, "input %q", input)
	}
}

func TestTrain_NoPatterns(t *testing.T) {
	c, err := catalog.Parse(strings.NewReader(`{"intents":[{"tag":"a","patterns":[],"responses":["x"]}]}`), validator.New())
	require.NoError(t, err)

	_, err = Train(c, nlp.LanguageEnglish)
	require.Error(t, err)
}

func TestTrain_OnlyPunctuationPatterns(t *testing.T) {
	c, err := catalog.Parse(strings.NewReader(`{"intents":[{"tag":"a","patterns":["?!"],"responses":["x"]}]}`), validator.New())
	require.NoError(t, err)

	_, err = Train(c, nlp.LanguageEnglish)
	require.ErrorIs(t, err, nlp.ErrEmptyVocabulary)
}
