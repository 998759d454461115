package config

import (
	"ChatbotGolang/database/postgres"
	"ChatbotGolang/internal/artifact"
	artifactRepository "ChatbotGolang/internal/artifact/repository"
	"ChatbotGolang/pkg/redis"
	"ChatbotGolang/pkg/s3"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// NewArtifactStore opens the backend named by ARTIFACT_STORE. The returned
// closer releases its connections and is never nil.
func NewArtifactStore(ctx context.Context, env Env, logger *logrus.Logger) (artifact.Store, func() error, error) {
	noop := func() error { return nil }

	kind, err := artifact.ParseKind(env.ArtifactStore)
	if err != nil {
		return nil, noop, err
	}

	switch kind {
	case artifact.KindS3:
		client, err := s3.New()
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create S3 client: %w", err)
		}
		return artifact.NewS3Store(client, env.ArtifactPrefix), noop, nil

	case artifact.KindRedis:
		client, err := redis.New()
		if err != nil {
			return nil, noop, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return artifact.NewRedisStore(client, env.ArtifactPrefix), client.Close, nil

	case artifact.KindPostgres:
		db, err := postgres.New()
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create database connection: %w", err)
		}
		store, err := artifact.NewPostgresStore(ctx, artifactRepository.New(db, logger))
		if err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		return store, db.Close, nil

	default:
		store, err := artifact.NewFileStore(env.ArtifactDir)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil
	}
}
