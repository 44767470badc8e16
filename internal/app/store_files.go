package app

import (
	"fmt"
	"os"
)

// fileStore reads and writes gcloud's configuration directory directly.
type fileStore struct {
	recordFiles
	activePath string
}

func (s *fileStore) ListProfiles() ([]string, error) {
	return s.listRecords()
}

func (s *fileStore) ActiveProfile() (string, error) {
	name, err := readNameFile(s.activePath)
	if err != nil && !os.IsNotExist(err) {
		return "", err
	}
	if name != "" {
		return name, nil
	}
	// gcloud falls back to "default" when active_config is absent.
	ok, err := s.RecordExists("default")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: no active profile, no configurations exist yet", errStoreCommand)
	}
	return "default", nil
}

func (s *fileStore) Activate(name string) error {
	ok, err := s.RecordExists(name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownProfile, name)
	}
	return writeFileAtomic(s.activePath, []byte(name), 0o600)
}

func (s *fileStore) Delete(name string) error {
	ok, err := s.RecordExists(name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownProfile, name)
	}
	return s.RemoveRecord(name)
}
