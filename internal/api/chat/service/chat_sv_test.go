package chatService

import (
	"ChatbotGolang/internal/api/chat"
	"ChatbotGolang/internal/catalog"
	"ChatbotGolang/internal/model"
	"ChatbotGolang/pkg/nlp"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const greetingCatalog = `{
  "intents": [
    {"tag": "greeting", "patterns": ["hi", "hello"], "responses": ["Hi there!", "Hello!"]},
    {"tag": "goodbye", "patterns": ["bye", "see you later", "goodbye"], "responses": ["Goodbye!", "See you!"]}
  ]
}`

type stubClassifier struct {
	prediction model.Prediction
	err        error
}

func (s stubClassifier) Classify(string) (model.Prediction, error) {
	return s.prediction, s.err
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse(strings.NewReader(greetingCatalog), validator.New())
	require.NoError(t, err)
	return c
}

func TestReply_AnswersFromPredictedIntent(t *testing.T) {
	c := newCatalog(t)
	mc, err := model.Train(c, nlp.LanguageEnglish)
	require.NoError(t, err)

	svc := New(quietLogger(), mc, catalog.NewSelector(c))

	for i := 0; i < 20; i++ {
		res, err := svc.Reply(context.Background(), "hello")
		require.NoError(t, err)
		assert.Contains(t, []string{"Hi there!", "Hello!"}, res.Response)
	}
}

func TestReply_EmptyMessageStillAnswers(t *testing.T) {
	c := newCatalog(t)
	mc, err := model.Train(c, nlp.LanguageEnglish)
	require.NoError(t, err)

	svc := New(quietLogger(), mc, catalog.NewSelector(c, catalog.WithRandom(func(int) int { return 0 })))

	res, err := svc.Reply(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Goodbye!", res.Response)
}

func TestReply_Failures(t *testing.T) {
	c := newCatalog(t)

	tests := []struct {
		name       string
		classifier IClassifier
		want       error
	}{
		{
			name:       "classifier error",
			classifier: stubClassifier{err: errors.New("dimension mismatch")},
			want:       chat.ErrClassifyMessage,
		},
		{
			name:       "predicted tag missing from catalog",
			classifier: stubClassifier{prediction: model.Prediction{Tag: "weather"}},
			want:       chat.ErrIntentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(quietLogger(), tt.classifier, catalog.NewSelector(c))

			res, err := svc.Reply(context.Background(), "anything")
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
