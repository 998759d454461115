package artifact

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps one file per artifact inside a directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Name() string {
	return "file:" + s.dir
}

func (s *FileStore) Load(_ context.Context, names []string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			return nil, missing(name)
		}
		if err != nil {
			return nil, fmt.Errorf("read artifact %s: %w", name, err)
		}
		out[name] = data
	}
	return out, nil
}

// Save writes each artifact to a temporary file and renames it into place so
// a crash never leaves a truncated artifact behind.
func (s *FileStore) Save(_ context.Context, blobs map[string][]byte) error {
	for name, data := range blobs {
		tmp, err := os.CreateTemp(s.dir, "."+name+".*")
		if err != nil {
			return fmt.Errorf("create temp for %s: %w", name, err)
		}

		if _, err := tmp.Write(data); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return fmt.Errorf("write artifact %s: %w", name, err)
		}
		if err := tmp.Close(); err != nil {
			os.Remove(tmp.Name())
			return fmt.Errorf("close artifact %s: %w", name, err)
		}
		if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
			os.Remove(tmp.Name())
			return fmt.Errorf("rename artifact %s: %w", name, err)
		}
	}
	return nil
}
