package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input    string
		expected Language
		wantErr  bool
	}{
		{input: "", expected: LanguageAuto},
		{input: "auto", expected: LanguageAuto},
		{input: " Spanish ", expected: LanguageSpanish},
		{input: "ENGLISH", expected: LanguageEnglish},
		{input: "none", expected: LanguageNone},
		{input: "latin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLanguage(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetectLanguage(t *testing.T) {
	spanish := []string{
		"Hola, ¿cómo estás?",
		"Buenos días, quisiera saber el horario de atención de la biblioteca",
		"Muchas gracias por la ayuda, hasta luego",
	}
	english := []string{
		"Hello, how are you doing today?",
		"I would like to know the opening hours of the library",
		"Thank you very much for the help, see you later",
	}

	assert.Equal(t, LanguageSpanish, DetectLanguage(spanish))
	assert.Equal(t, LanguageEnglish, DetectLanguage(english))
	assert.Equal(t, LanguageNone, DetectLanguage(nil))
}
