package nlp

import (
	"strings"
	"unicode"

	"github.com/blevesearch/segment"
	"github.com/blevesearch/snowballstem"
	"golang.org/x/text/unicode/norm"
)

var ignoreTokens = []string{"?", "!", "¿", "¡", ".", ","}

// IgnoreTokens returns the punctuation dropped from every token stream.
func IgnoreTokens() []string {
	return append([]string(nil), ignoreTokens...)
}

type Normalizer struct {
	language Language
	stem     stemFunc
	ignore   map[string]struct{}
}

// NewNormalizer builds a normalizer for a concrete language. LanguageAuto must
// be resolved with DetectLanguage first.
func NewNormalizer(language Language) (*Normalizer, error) {
	lang, err := ParseLanguage(string(language))
	if err != nil {
		return nil, err
	}
	if lang == LanguageAuto {
		return nil, ErrUnresolvedLanguage
	}

	ignore := make(map[string]struct{}, len(ignoreTokens))
	for _, tok := range ignoreTokens {
		ignore[tok] = struct{}{}
	}

	return &Normalizer{
		language: lang,
		stem:     stemmers[lang],
		ignore:   ignore,
	}, nil
}

func (n *Normalizer) Language() Language {
	return n.language
}

// Normalize splits text into lowercase word tokens reduced to their stem.
// Whitespace and ignored punctuation never reach the output.
func (n *Normalizer) Normalize(text string) []string {
	tokens := make([]string, 0)

	text = norm.NFC.String(strings.ToLower(text))
	if strings.TrimSpace(text) == "" {
		return tokens
	}

	seg := segment.NewWordSegmenter(strings.NewReader(text))
	for seg.Segment() {
		tok := seg.Text()
		if strings.TrimFunc(tok, unicode.IsSpace) == "" {
			continue
		}
		if _, skip := n.ignore[tok]; skip {
			continue
		}

		if seg.Type() == segment.Letter {
			tok = n.lemma(tok)
		}
		tokens = append(tokens, tok)
	}

	return tokens
}

func (n *Normalizer) lemma(word string) string {
	if n.stem == nil {
		return word
	}

	env := snowballstem.NewEnv(word)
	n.stem(env)
	if stemmed := env.Current(); stemmed != "" {
		return stemmed
	}
	return word
}
