package artifact

import (
	"context"
	"fmt"
	"time"

	artifactRepository "ChatbotGolang/internal/artifact/repository"
	"ChatbotGolang/internal/entity"

	"github.com/samber/lo"
)

// PostgresStore keeps artifacts as rows of model_artifacts and saves the whole
// set inside one transaction.
type PostgresStore struct {
	repo artifactRepository.Repository
}

func NewPostgresStore(ctx context.Context, repo artifactRepository.Repository) (*PostgresStore, error) {
	client, err := repo.NewClient(false)
	if err != nil {
		return nil, err
	}
	if err := client.Artifacts.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure model_artifacts schema: %w", err)
	}
	return &PostgresStore{repo: repo}, nil
}

func (s *PostgresStore) Name() string {
	return "postgres:model_artifacts"
}

func (s *PostgresStore) Load(ctx context.Context, names []string) (map[string][]byte, error) {
	client, err := s.repo.NewClient(false)
	if err != nil {
		return nil, err
	}

	rows, err := client.Artifacts.GetArtifactsByNames(ctx, names)
	if err != nil {
		return nil, err
	}

	byName := lo.SliceToMap(rows, func(a entity.ModelArtifact) (string, []byte) {
		return a.Name, a.Data
	})
	for _, name := range names {
		if _, ok := byName[name]; !ok {
			return nil, missing(name)
		}
	}
	return byName, nil
}

func (s *PostgresStore) Save(ctx context.Context, blobs map[string][]byte) error {
	client, err := s.repo.NewClient(true)
	if err != nil {
		return err
	}
	defer client.Rollback()

	now := time.Now()
	for name, data := range blobs {
		err := client.Artifacts.UpsertArtifact(ctx, entity.ModelArtifact{
			Name:      name,
			Data:      data,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("upsert %s: %w", name, err)
		}
	}

	return client.Commit()
}
