package app

import (
	"os"

	"go.uber.org/zap"
)

// PreviousTracker persists the single-slot "previous profile" record.
type PreviousTracker struct {
	path string
	log  *zap.Logger
}

func NewPreviousTracker(path string, log *zap.Logger) *PreviousTracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &PreviousTracker{path: path, log: log}
}

// Read returns "" when no previous profile has been recorded.
func (t *PreviousTracker) Read() (string, error) {
	name, err := readNameFile(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return name, nil
}

func (t *PreviousTracker) Save(name string) error {
	current, err := t.Read()
	if err != nil {
		return err
	}
	if current == name {
		t.log.Debug("previous profile unchanged", zap.String("previous", name))
		return nil
	}
	t.log.Debug("saving previous profile", zap.String("previous", name), zap.String("path", t.path))
	return writeFileAtomic(t.path, []byte(name), 0o600)
}
