package artifact

import (
	"context"
	"errors"

	"ChatbotGolang/pkg/s3"
)

type S3Store struct {
	client s3.ItfS3
	prefix string
}

func NewS3Store(client s3.ItfS3, prefix string) *S3Store {
	return &S3Store{client: client, prefix: prefix}
}

func (s *S3Store) Name() string {
	return "s3:" + s.prefix
}

func (s *S3Store) Load(ctx context.Context, names []string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(names))
	for _, name := range names {
		data, err := s.client.GetObject(ctx, s.prefix+name)
		if errors.Is(err, s3.ErrObjectNotFound) {
			return nil, missing(name)
		}
		if err != nil {
			return nil, err
		}
		out[name] = data
	}
	return out, nil
}

func (s *S3Store) Save(ctx context.Context, blobs map[string][]byte) error {
	for name, data := range blobs {
		if err := s.client.PutObject(ctx, s.prefix+name, data); err != nil {
			return err
		}
	}
	return nil
}
