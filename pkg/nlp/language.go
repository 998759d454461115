package nlp

import (
	"fmt"
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/blevesearch/snowballstem"
	"github.com/blevesearch/snowballstem/english"
	"github.com/blevesearch/snowballstem/french"
	"github.com/blevesearch/snowballstem/german"
	"github.com/blevesearch/snowballstem/italian"
	"github.com/blevesearch/snowballstem/portuguese"
	"github.com/blevesearch/snowballstem/spanish"
)

type Language string

const (
	LanguageAuto       Language = "auto"
	LanguageNone       Language = "none"
	LanguageEnglish    Language = "english"
	LanguageSpanish    Language = "spanish"
	LanguageFrench     Language = "french"
	LanguagePortuguese Language = "portuguese"
	LanguageItalian    Language = "italian"
	LanguageGerman     Language = "german"
)

type stemFunc func(env *snowballstem.Env) bool

var stemmers = map[Language]stemFunc{
	LanguageEnglish:    english.Stem,
	LanguageSpanish:    spanish.Stem,
	LanguageFrench:     french.Stem,
	LanguagePortuguese: portuguese.Stem,
	LanguageItalian:    italian.Stem,
	LanguageGerman:     german.Stem,
}

var detected = map[whatlanggo.Lang]Language{
	whatlanggo.Eng: LanguageEnglish,
	whatlanggo.Spa: LanguageSpanish,
	whatlanggo.Fra: LanguageFrench,
	whatlanggo.Por: LanguagePortuguese,
	whatlanggo.Ita: LanguageItalian,
	whatlanggo.Deu: LanguageGerman,
}

func ParseLanguage(value string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(value)))
	switch lang {
	case "":
		return LanguageAuto, nil
	case LanguageAuto, LanguageNone:
		return lang, nil
	}

	if _, ok := stemmers[lang]; !ok {
		return "", fmt.Errorf("unsupported normalizer language %q", value)
	}
	return lang, nil
}

// DetectLanguage guesses the language of a corpus as a whole. Languages
// without a stemmer resolve to LanguageNone.
func DetectLanguage(texts []string) Language {
	corpus := strings.TrimSpace(strings.Join(texts, ". "))
	if corpus == "" {
		return LanguageNone
	}

	info := whatlanggo.Detect(corpus)
	if lang, ok := detected[info.Lang]; ok {
		return lang
	}
	return LanguageNone
}
