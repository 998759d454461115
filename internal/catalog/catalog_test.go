package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ChatbotGolang/internal/entity"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `{
  "intents": [
    {"tag": "greeting", "patterns": ["hi", "hello"], "responses": ["Hi there!", "Hello!"]},
    {"tag": "goodbye", "patterns": ["bye", "see you later"], "responses": ["Goodbye!"]},
    {"tag": "fallback", "patterns": [], "responses": ["Sorry?"]}
  ]
}`

func TestParse(t *testing.T) {
	req := require.New(t)

	c, err := Parse(strings.NewReader(sampleCatalog), validator.New())
	req.NoError(err)

	req.Len(c.Intents(), 3)
	req.Equal([]string{"greeting", "goodbye"}, c.Labels())
	req.Equal([]string{"hi", "hello", "bye", "see you later"}, c.Patterns())
	req.Equal(Document{Text: "bye", Tag: "goodbye"}, c.Documents()[2])

	intent, ok := c.Lookup("goodbye")
	req.True(ok)
	req.Equal([]string{"Goodbye!"}, intent.Responses)

	_, ok = c.Lookup("unknown")
	req.False(ok)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "malformed json", input: `{"intents": [`, wantErr: ErrInvalidCatalog},
		{name: "no intents", input: `{"intents": []}`, wantErr: ErrInvalidCatalog},
		{name: "missing tag", input: `{"intents": [{"patterns": ["hi"], "responses": ["hey"]}]}`, wantErr: ErrInvalidCatalog},
		{name: "no responses", input: `{"intents": [{"tag": "a", "patterns": ["hi"], "responses": []}]}`, wantErr: ErrInvalidCatalog},
		{name: "blank response", input: `{"intents": [{"tag": "a", "patterns": ["hi"], "responses": [""]}]}`, wantErr: ErrInvalidCatalog},
		{
			name:    "duplicate tag",
			input:   `{"intents": [{"tag": "a", "patterns": ["hi"], "responses": ["x"]}, {"tag": "a", "patterns": ["yo"], "responses": ["y"]}]}`,
			wantErr: ErrDuplicateTag,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), validator.New())
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "intents.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o600))

	c, err := Load(path, validator.New())
	require.NoError(t, err)
	assert.Len(t, c.Intents(), 3)

	_, err = Load(filepath.Join(dir, "missing.json"), validator.New())
	require.Error(t, err)
}

func TestLoad_ShippedCatalog(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "intents.json"), validator.New())
	require.NoError(t, err)
	assert.NotEmpty(t, c.Labels())
}

func TestNew_WithoutValidatorStillRejectsDuplicates(t *testing.T) {
	_, err := New([]entity.Intent{
		{Tag: "a", Responses: []string{"x"}},
		{Tag: "a", Responses: []string{"y"}},
	}, nil)
	require.ErrorIs(t, err, ErrDuplicateTag)
}
