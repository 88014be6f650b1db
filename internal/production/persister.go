package production

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/comalice/valuekit/internal/primitives"
)

// FilePersister stores arena snapshots as one file per name in dir.
type FilePersister[T any] struct {
	dir   string
	codec Codec
}

// NewFilePersister creates a FilePersister, ensuring the directory exists.
func NewFilePersister[T any](dir string, codec Codec) (*FilePersister[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &FilePersister[T]{dir: dir, codec: codec}, nil
}

// NewJSONPersister creates a FilePersister using JSON serialization.
func NewJSONPersister[T any](dir string) (*FilePersister[T], error) {
	return NewFilePersister[T](dir, JSONCodec{})
}

// NewYAMLPersister creates a FilePersister using YAML serialization.
func NewYAMLPersister[T any](dir string) (*FilePersister[T], error) {
	return NewFilePersister[T](dir, YAMLCodec{})
}

// NewTOMLPersister creates a FilePersister using TOML serialization.
func NewTOMLPersister[T any](dir string) (*FilePersister[T], error) {
	return NewFilePersister[T](dir, TOMLCodec{})
}

// Path returns the file a snapshot named name is stored in.
func (p *FilePersister[T]) Path(name string) string {
	return filepath.Join(p.dir, name+"."+p.codec.Ext())
}

func (p *FilePersister[T]) Save(ctx context.Context, name string, arena *primitives.Arena[T]) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validName(name); err != nil {
		return err
	}

	data, err := p.codec.Marshal(arena.Snapshot())
	if err != nil {
		return fmt.Errorf("%s marshal: %w", p.codec.Ext(), err)
	}

	fn := p.Path(name)
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}

	return nil
}

// Load reads a snapshot and rebuilds the arena, rejecting snapshots whose
// nodes reference later nodes.
func (p *FilePersister[T]) Load(ctx context.Context, name string) (*primitives.Arena[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validName(name); err != nil {
		return nil, err
	}

	fn := p.Path(name)
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("tree %q: %w", name, os.ErrNotExist)
		}
		return nil, fmt.Errorf("read %s: %w", fn, err)
	}

	var snapshot primitives.ArenaSnapshot[T]
	if err := p.codec.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%s unmarshal: %w", p.codec.Ext(), err)
	}
	arena, err := primitives.ArenaFromSnapshot(snapshot)
	if err != nil {
		return nil, fmt.Errorf("snapshot validation after load: %w", err)
	}

	return arena, nil
}

func validName(name string) error {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("invalid snapshot name %q", name)
	}
	return nil
}
