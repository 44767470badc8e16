package app

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

var errActiveConfiguration = errors.New("configuration is active")

type commandRunner func(name string, args ...string) (stdout []byte, stderr []byte, err error)

func runCommand(name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// gcloudStore delegates the high-level operations to the gcloud binary. Raw
// record operations act on the configurations directory.
type gcloudStore struct {
	recordFiles
	binary string
	run    commandRunner
	log    *zap.Logger
}

func newGcloudStore(binary string, records recordFiles, log *zap.Logger) *gcloudStore {
	return &gcloudStore{recordFiles: records, binary: binary, run: runCommand, log: log}
}

func (s *gcloudStore) gcloud(args ...string) (string, error) {
	full := append([]string{"config", "configurations"}, args...)
	s.log.Debug("running gcloud", zap.String("binary", s.binary), zap.Strings("args", full))
	stdout, stderr, err := s.run(s.binary, full...)
	if err != nil {
		msg := strings.TrimSpace(string(stderr))
		if strings.Contains(msg, "does not exist") {
			return "", fmt.Errorf("%w: %s", ErrUnknownProfile, msg)
		}
		if strings.Contains(msg, "is set as active") {
			return "", fmt.Errorf("%w: %w: %s", errStoreCommand, errActiveConfiguration, msg)
		}
		return "", fmt.Errorf("%w: gcloud %s: %s", errStoreCommand, strings.Join(args, " "), firstNonEmpty(msg, err.Error()))
	}
	return string(stdout), nil
}

func (s *gcloudStore) ListProfiles() ([]string, error) {
	out, err := s.gcloud("list", "--format=value(name)")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

func (s *gcloudStore) ActiveProfile() (string, error) {
	out, err := s.gcloud("list", "--filter=is_active:true", "--format=value(name)")
	if err != nil {
		return "", err
	}
	lines := splitLines(out)
	if len(lines) == 0 {
		return "", fmt.Errorf("%w: no active configuration reported", errStoreCommand)
	}
	return lines[0], nil
}

func (s *gcloudStore) Activate(name string) error {
	_, err := s.gcloud("activate", name)
	return err
}

// Delete asks gcloud to delete the configuration. gcloud refuses to delete the
// active one, so that record is removed directly; active_config is left
// pointing at it, which gcloud resolves on its next activation.
func (s *gcloudStore) Delete(name string) error {
	_, err := s.gcloud("delete", name, "--quiet")
	if !errors.Is(err, errActiveConfiguration) {
		return err
	}
	exists, existsErr := s.RecordExists(name)
	if existsErr != nil {
		return existsErr
	}
	if !exists {
		return err
	}
	s.log.Debug("gcloud refused to delete active configuration, removing record", zap.String("profile", name))
	return s.RemoveRecord(name)
}

func splitLines(out string) []string {
	lines := strings.Split(out, "\n")
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
