//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../../mocks/mock_store.go -package=mocks

// Package artifact persists the serialized model artifacts. Every backend
// treats the artifact set as a unit: Load succeeds only when all requested
// names are present.
package artifact

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("artifact not found")

type Store interface {
	Load(ctx context.Context, names []string) (map[string][]byte, error)
	Save(ctx context.Context, blobs map[string][]byte) error
	Name() string
}

type Kind string

const (
	KindFile     Kind = "file"
	KindS3       Kind = "s3"
	KindRedis    Kind = "redis"
	KindPostgres Kind = "postgres"
)

func ParseKind(value string) (Kind, error) {
	switch kind := Kind(strings.ToLower(strings.TrimSpace(value))); kind {
	case "":
		return KindFile, nil
	case KindFile, KindS3, KindRedis, KindPostgres:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown artifact store %q", value)
	}
}

func missing(name string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, name)
}
