package file

import (
	"os"
	"path/filepath"
	"taskTracker/internal/repository/snapshot"

	"github.com/pkg/errors"
)

const filePerm = 0o600

// Persister хранит снапшот одним JSON-документом на диске.
// Запись атомарная: временный файл, fsync, rename, fsync каталога.
type Persister struct {
	path string
}

func NewPersister(path string) (*Persister, error) {
	if path == "" {
		return nil, errors.New("snapshot path is empty")
	}
	return &Persister{path: path}, nil
}

func (p *Persister) Path() string {
	return p.path
}

func (p *Persister) Load() (snapshot.Snapshot, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return snapshot.Snapshot{}, snapshot.ErrNotFound
		}
		return snapshot.Snapshot{}, errors.Wrapf(err, "read %s", p.path)
	}

	snap, err := snapshot.Decode(data)
	if err != nil {
		return snapshot.Snapshot{}, errors.Wrapf(err, "decode %s", p.path)
	}
	return snap, nil
}

func (p *Persister) Save(snap snapshot.Snapshot) error {
	data, err := snapshot.Encode(snap)
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}
	return errors.Wrapf(writeFileAtomic(p.path, data, filePerm), "write %s", p.path)
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true

	return syncDir(dir)
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.Sync()
}
