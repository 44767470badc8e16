package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const recordPrefix = "config_"

type recordFiles struct {
	dir string
}

func (r recordFiles) recordPath(name string) string {
	return filepath.Join(r.dir, recordPrefix+name)
}

func (r recordFiles) listRecords() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		core := strings.TrimPrefix(entry.Name(), recordPrefix)
		if core == entry.Name() || core == "" {
			continue
		}
		names = append(names, core)
	}
	sort.Strings(names)
	return names, nil
}

func (r recordFiles) RecordExists(name string) (bool, error) {
	if err := validateProfileName(name); err != nil {
		return false, err
	}
	info, err := os.Stat(r.recordPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

func (r recordFiles) RemoveRecord(name string) error {
	if err := validateProfileName(name); err != nil {
		return err
	}
	err := os.Remove(r.recordPath(name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (r recordFiles) MoveRecord(oldName, newName string) error {
	if err := validateProfileName(oldName); err != nil {
		return err
	}
	if err := validateProfileName(newName); err != nil {
		return err
	}
	if err := os.Rename(r.recordPath(oldName), r.recordPath(newName)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w %q", ErrUnknownProfile, oldName)
		}
		return err
	}
	return nil
}
