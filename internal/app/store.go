package app

import (
	"errors"
	"os/exec"

	"go.uber.org/zap"
)

var errStoreCommand = errors.New("profile store command failed")

// ProfileStore is the high-level view of the external profile store.
type ProfileStore interface {
	ListProfiles() ([]string, error)
	ActiveProfile() (string, error)
	Activate(name string) error
	Delete(name string) error
}

// RecordStore manipulates the on-disk profile records directly, bypassing the
// store's own commands. RemoveRecord is destructive and irreversible.
type RecordStore interface {
	RecordExists(name string) (bool, error)
	RemoveRecord(name string) error
	MoveRecord(oldName, newName string) error
}

// Backend bundles both capability sets of one store.
type Backend interface {
	ProfileStore
	RecordStore
}

func storeFor(cfg Config, paths Paths, log *zap.Logger) (Backend, error) {
	records := recordFiles{dir: paths.RecordDir}
	switch cfg.Store {
	case StoreFiles:
		return &fileStore{recordFiles: records, activePath: paths.ActivePath}, nil
	case StoreGcloud:
		return newGcloudStore(cfg.GcloudPath, records, log), nil
	default:
		if _, err := exec.LookPath(cfg.GcloudPath); err != nil {
			log.Debug("gcloud binary not found, using on-disk store", zap.String("gcloud", cfg.GcloudPath))
			return &fileStore{recordFiles: records, activePath: paths.ActivePath}, nil
		}
		return newGcloudStore(cfg.GcloudPath, records, log), nil
	}
}
