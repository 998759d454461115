package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"ChatbotGolang/internal/entity"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
)

var (
	ErrIntentNotFound = errors.New("no intent for tag")
	ErrDuplicateTag   = errors.New("duplicate intent tag")
	ErrInvalidCatalog = errors.New("invalid intent catalog")
)

// Document is one training example: a pattern and the tag it belongs to.
type Document struct {
	Text string
	Tag  string
}

// Catalog is the read-only set of intents the bot knows about.
type Catalog struct {
	intents []entity.Intent
	byTag   map[string]int
}

func Load(path string, validate *validator.Validate) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open intent catalog: %w", err)
	}
	defer f.Close()

	c, err := Parse(f, validate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func Parse(r io.Reader, validate *validator.Validate) (*Catalog, error) {
	var file entity.IntentFile
	if err := jsoniter.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	return New(file.Intents, validate)
}

func New(intents []entity.Intent, validate *validator.Validate) (*Catalog, error) {
	if validate != nil {
		if err := validate.Struct(entity.IntentFile{Intents: intents}); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}
	}

	if dup := lo.FindDuplicatesBy(intents, func(i entity.Intent) string { return i.Tag }); len(dup) > 0 {
		tags := lo.Map(dup, func(i entity.Intent, _ int) string { return i.Tag })
		return nil, fmt.Errorf("%w: %s", ErrDuplicateTag, strings.Join(tags, ", "))
	}

	byTag := make(map[string]int, len(intents))
	for i, intent := range intents {
		byTag[intent.Tag] = i
	}

	return &Catalog{
		intents: intents,
		byTag:   byTag,
	}, nil
}

func (c *Catalog) Intents() []entity.Intent {
	return c.intents
}

func (c *Catalog) Lookup(tag string) (entity.Intent, bool) {
	i, ok := c.byTag[tag]
	if !ok {
		return entity.Intent{}, false
	}
	return c.intents[i], true
}

// Labels lists, in catalog order, the tags of intents with at least one
// pattern. Intents without patterns can never be predicted.
func (c *Catalog) Labels() []string {
	return lo.FilterMap(c.intents, func(i entity.Intent, _ int) (string, bool) {
		return i.Tag, len(i.Patterns) > 0
	})
}

func (c *Catalog) Documents() []Document {
	return lo.FlatMap(c.intents, func(i entity.Intent, _ int) []Document {
		return lo.Map(i.Patterns, func(p string, _ int) Document {
			return Document{Text: p, Tag: i.Tag}
		})
	})
}

func (c *Catalog) Patterns() []string {
	return lo.Map(c.Documents(), func(d Document, _ int) string { return d.Text })
}
