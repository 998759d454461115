package model

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ChatbotGolang/internal/artifact"
	"ChatbotGolang/internal/catalog"
	"ChatbotGolang/pkg/log"
	"ChatbotGolang/pkg/nlp"

	"github.com/sirupsen/logrus"
)

type State string

const (
	// StateCold means no complete artifact set existed and the model was trained.
	StateCold State = "cold"
	// StateWarm means the model was loaded from persisted artifacts.
	StateWarm State = "warm"
)

type Bootstrapper struct {
	log      *logrus.Logger
	store    artifact.Store
	catalog  *catalog.Catalog
	language nlp.Language
}

func NewBootstrapper(logger *logrus.Logger, store artifact.Store, c *catalog.Catalog, language nlp.Language) *Bootstrapper {
	return &Bootstrapper{
		log:      logger,
		store:    store,
		catalog:  c,
		language: language,
	}
}

// Start loads the persisted model, or trains and persists one when any
// artifact is missing.
func (b *Bootstrapper) Start(ctx context.Context) (*Context, State, error) {
	blobs, err := b.store.Load(ctx, ArtifactNames)
	switch {
	case err == nil:
		mc, err := Decode(blobs, b.catalog)
		if err != nil {
			return nil, "", err
		}

		b.log.WithFields(log.Fields{
			"store":    b.store.Name(),
			"labels":   len(mc.labels),
			"features": mc.vectorizer.Size(),
			"language": mc.Language(),
		}).Info("Model loaded successfully")
		return mc, StateWarm, nil

	case errors.Is(err, artifact.ErrNotFound):
		b.log.WithFields(log.Fields{
			"store":  b.store.Name(),
			"reason": err.Error(),
		}).Info("No complete model artifacts, training from intent catalog")

	default:
		return nil, "", fmt.Errorf("load model artifacts from %s: %w", b.store.Name(), err)
	}

	start := time.Now()
	mc, err := Train(b.catalog, b.language)
	if err != nil {
		return nil, "", err
	}

	encoded, err := Encode(mc)
	if err != nil {
		return nil, "", err
	}
	if err := b.store.Save(ctx, encoded); err != nil {
		return nil, "", fmt.Errorf("save model artifacts to %s: %w", b.store.Name(), err)
	}

	b.log.WithFields(log.Fields{
		"store":       b.store.Name(),
		"labels":      len(mc.labels),
		"features":    mc.vectorizer.Size(),
		"language":    mc.Language(),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Training completed and model saved")

	return mc, StateCold, nil
}
